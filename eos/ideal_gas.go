package eos

import (
	"math"

	"github.com/notargets/fvweno/types"
)

// State is a conserved state vector: density, x momentum, y momentum, total energy per unit volume.
// One dimensional problems carry a zero y momentum.
type State [4]float64

// IdealGas is a calorically perfect gas. It is immutable once built and is passed explicitly into
// every conversion and flux call.
type IdealGas struct {
	Gamma float64
	gm1   float64
}

func NewIdealGas(gamma float64) (g *IdealGas, err error) {
	if !(gamma > 1) || math.IsInf(gamma, 0) {
		err = types.NewConfigurationError("ideal gas", "specific heat ratio must be > 1, have %v", gamma)
		return
	}
	g = &IdealGas{Gamma: gamma, gm1: gamma - 1}
	return
}

// Primitive holds the derived quantities of a conserved state
type Primitive struct {
	Rho, U, V, P float64
	A            float64 // Sound speed
	H            float64 // Total enthalpy per unit mass
	E            float64 // Total energy per unit volume
}

func (g *IdealGas) Pressure(q State) (p float64) {
	var (
		rho, rhoU, rhoV, E = q[0], q[1], q[2], q[3]
	)
	p = g.gm1 * (E - 0.5*(rhoU*rhoU+rhoV*rhoV)/rho)
	return
}

// Primitives converts a conserved state, rejecting non-positive density or pressure.
func (g *IdealGas) Primitives(q State) (pr Primitive, err error) {
	var (
		rho = q[0]
	)
	if !(rho > 0) || math.IsInf(rho, 0) {
		err = types.NewInvalidStateError("primitives", -1, "density = %v", rho)
		return
	}
	pr.Rho = rho
	pr.U, pr.V = q[1]/rho, q[2]/rho
	pr.E = q[3]
	pr.P = g.Pressure(q)
	if !(pr.P > 0) || math.IsInf(pr.P, 0) {
		err = types.NewInvalidStateError("primitives", -1, "pressure = %v (density = %v)", pr.P, rho)
		return
	}
	pr.A = math.Sqrt(g.Gamma * pr.P / rho)
	pr.H = (pr.E + pr.P) / rho
	return
}

func (g *IdealGas) Conserved(rho, u, v, p float64) (q State) {
	q = State{rho, rho * u, rho * v, p/g.gm1 + 0.5*rho*(u*u+v*v)}
	return
}

func (g *IdealGas) Conserved1D(rho, u, p float64) (q [3]float64) {
	q = [3]float64{rho, rho * u, p/g.gm1 + 0.5*rho*u*u}
	return
}

// Lift1D places a 1D state (rho, rhoU, E) into a State with zero y momentum
func Lift1D(q []float64) State {
	return State{q[0], q[1], 0, q[2]}
}

// FluxPrimitive returns the physical flux projected onto normal for an already converted state.
func (g *IdealGas) FluxPrimitive(q State, pr Primitive, normal [2]float64) (F State) {
	var (
		vn = pr.U*normal[0] + pr.V*normal[1]
	)
	F = State{
		q[0] * vn,
		q[1]*vn + pr.P*normal[0],
		q[2]*vn + pr.P*normal[1],
		(q[3] + pr.P) * vn,
	}
	return
}

func (g *IdealGas) Flux(q State, normal [2]float64) (F State, err error) {
	var pr Primitive
	if pr, err = g.Primitives(q); err != nil {
		return
	}
	F = g.FluxPrimitive(q, pr, normal)
	return
}

// FluxXY returns the x and y physical fluxes of a state.
func (g *IdealGas) FluxXY(q State) (Fx, Fy State, err error) {
	var pr Primitive
	if pr, err = g.Primitives(q); err != nil {
		return
	}
	Fx = g.FluxPrimitive(q, pr, [2]float64{1, 0})
	Fy = g.FluxPrimitive(q, pr, [2]float64{0, 1})
	return
}

// MaxWaveSpeed is |u|+a along x and |v|+a along y
func (g *IdealGas) MaxWaveSpeed(q State) (sx, sy float64, err error) {
	var pr Primitive
	if pr, err = g.Primitives(q); err != nil {
		return
	}
	sx, sy = math.Abs(pr.U)+pr.A, math.Abs(pr.V)+pr.A
	return
}
