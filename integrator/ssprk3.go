package integrator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/fvweno/utils"
)

// Operator is a semi discrete system dQ/dt = -L(Q). BoundaryConditions refreshes the ghost cells of Q
// in place, RHS overwrites L.
type Operator interface {
	BoundaryConditions(Q []float64)
	RHS(Q, L []float64) error
}

// RungeKutta3SSP is the three stage, third order strong stability preserving scheme of Shu and Osher.
// Stage buffers are sized once for a fixed state length.
type RungeKutta3SSP struct {
	Q1, Q2, L []float64
	pm        *utils.PartitionMap
}

func NewRungeKutta3SSP(size, parallelDegree int) (rk *RungeKutta3SSP) {
	rk = &RungeKutta3SSP{
		Q1: make([]float64, size),
		Q2: make([]float64, size),
		L:  make([]float64, size),
		pm: utils.NewPartitionMap(utils.ParallelDegree(parallelDegree, size), size),
	}
	return
}

// Step advances Q by one step of size dt in place. Q is left untouched when a stage fails.
func (rk *RungeKutta3SSP) Step(op Operator, Q []float64, dt float64) (err error) {
	if len(Q) != len(rk.L) {
		panic("state length does not match integrator buffers")
	}
	// SSP RK Stage 1: Q1 = Q - dt*L(Q)
	if err = rk.evaluate(op, Q); err != nil {
		return
	}
	if err = rk.update(func(q, q1, q2, l []float64) {
		floats.AddScaledTo(q1, q, -dt, l)
	}, Q); err != nil {
		return
	}

	// SSP RK Stage 2: Q2 = 3/4*Q + 1/4*(Q1 - dt*L(Q1))
	if err = rk.evaluate(op, rk.Q1); err != nil {
		return
	}
	if err = rk.update(func(q, q1, q2, l []float64) {
		floats.AddScaledTo(q2, q1, -dt, l)
		floats.Scale(0.25, q2)
		floats.AddScaled(q2, 0.75, q)
	}, Q); err != nil {
		return
	}

	// SSP RK Stage 3: Q = 1/3*Q + 2/3*(Q2 - dt*L(Q2))
	if err = rk.evaluate(op, rk.Q2); err != nil {
		return
	}
	if err = rk.update(func(q, q1, q2, l []float64) {
		floats.AddScaled(q2, -dt, l)
		floats.Scale(1./3., q)
		floats.AddScaled(q, 2./3., q2)
	}, Q); err != nil {
		return
	}
	op.BoundaryConditions(Q)
	return
}

func (rk *RungeKutta3SSP) evaluate(op Operator, Q []float64) (err error) {
	op.BoundaryConditions(Q)
	err = op.RHS(Q, rk.L)
	return
}

// update applies a stage to each partition's sub slices of Q and the stage buffers
func (rk *RungeKutta3SSP) update(stage func(q, q1, q2, l []float64), Q []float64) error {
	return rk.pm.Run(func(bn, kMin, kMax int) error {
		stage(Q[kMin:kMax], rk.Q1[kMin:kMax], rk.Q2[kMin:kMax], rk.L[kMin:kMax])
		return nil
	})
}
