package Euler1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/fvweno/FV1D"
	"github.com/notargets/fvweno/InputParameters"
	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/integrator"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/sod_shock_tube"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
	"github.com/notargets/fvweno/weno"
)

// Euler solves the one dimensional Euler equations with WENO reconstruction and SSP RK3
type Euler struct {
	CFL, FinalTime float64
	MaxIterations  int
	Case           CaseType
	Gas            *eos.IdealGas
	Grid           *FV1D.Grid1D
	Residual       *FV1D.Residual1D
	RK             *integrator.RungeKutta3SSP
	Exact          *sod_shock_tube.ExactRiemann // Nil unless the case is a Riemann problem
	Q              []float64                    // Conserved variables, FV1D.NComp per cell, ghosts included
	Time, DT       float64
	Iteration      int
	Verbose        bool
	LogFrequency   int
}

func NewEuler(ip *InputParameters.InputParameters1D, verbose bool) (c *Euler, err error) {
	var (
		method   weno.Method
		ft       riemann.FluxType
		bcL, bcR types.BCFLAG
	)
	c = &Euler{
		CFL:           ip.CFL,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		Verbose:       verbose,
		LogFrequency:  50,
	}
	if method, ft, bcL, bcR, err = ip.Resolve(); err != nil {
		return nil, err
	}
	if c.Case, err = NewCaseType(ip.InitType); err != nil {
		return nil, err
	}
	if c.Case == DOUBLE_RAREFACTION && ft == riemann.FLUX_Roe {
		return nil, types.NewConfigurationError("flux", "%s flux has no positive intermediate state for %s, "+
			"use an HLL type flux", ft.Print(), c.Case.Print())
	}
	c.LimitCFL(verbose)
	if c.Gas, err = eos.NewIdealGas(ip.Gamma); err != nil {
		return nil, err
	}
	if c.Grid, err = FV1D.NewGrid1D(ip.K, method.Radius(), ip.XMin, ip.XMax); err != nil {
		return nil, err
	}
	if c.Residual, err = FV1D.NewResidual1D(c.Grid, c.Gas, method, ft, bcL, bcR, ip.ParallelDegree); err != nil {
		return nil, err
	}
	if ip.Epsilon > 0 {
		c.Residual.Recon = c.Residual.Recon.WithEpsilon(ip.Epsilon)
	}
	c.Q = make([]float64, c.Grid.NX*FV1D.NComp)
	c.RK = integrator.NewRungeKutta3SSP(len(c.Q), ip.ParallelDegree)
	if err = c.InitializeSolution(); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Euler Equations in 1 Dimension\n")
		fmt.Printf("Using %d go routines in parallel\n", c.Residual.ParallelDegree())
		fmt.Printf("Solving %s\n", c.Case.Print())
		fmt.Printf("Algorithm: %s reconstruction, %s flux\n", method.Print(), ft.Print())
		fmt.Printf("CFL = %8.4f, Num Cells K = %d, Grid %s\n\n\n", c.CFL, c.Grid.K, c.Grid)
	}
	return
}

func (c *Euler) LimitCFL(verbose bool) {
	CFLMax := c.Case.MaxCFL()
	if CFLMax > 0 && c.CFL > CFLMax {
		if verbose {
			fmt.Printf("Input CFL is higher than max CFL for this case\nReplacing with Max CFL: %8.2f\n", CFLMax)
		}
		c.CFL = CFLMax
	}
}

// CalculateDT is CFL*dx/max(|u|+a) from the current state
func (c *Euler) CalculateDT() (dt float64, err error) {
	var (
		lambda float64
	)
	if lambda, err = c.Residual.MaxWaveSpeed(c.Q); err != nil {
		return 0, types.WithLocation(err, -1, c.Time)
	}
	if !(lambda > 0) {
		err = types.NewDegeneracyError("time step", -1, "maximum wave speed = %v", lambda)
		return
	}
	dt = c.CFL * c.Grid.DX / lambda
	return
}

// Advance takes one SSP RK3 step of size dt and checks the new state
func (c *Euler) Advance(dt float64) (err error) {
	if err = c.RK.Step(c.Residual, c.Q, dt); err != nil {
		return types.WithLocation(err, -1, c.Time)
	}
	c.Time += dt
	c.DT = dt
	c.Iteration++
	err = c.CheckPositivity()
	return
}

// CheckPositivity rejects any interior cell with non positive density or pressure
func (c *Euler) CheckPositivity() (err error) {
	g := c.Grid
	for i := g.R; i < g.NX-g.R; i++ {
		if _, err = c.Gas.Primitives(eos.Lift1D(c.Q[i*FV1D.NComp:])); err != nil {
			return types.WithLocation(err, i, c.Time)
		}
	}
	return
}

// Run advances to FinalTime, the last step is clipped to land on it exactly
func (c *Euler) Run() (err error) {
	var (
		dt       float64
		finished = c.CheckIfFinished()
		elapsed  time.Duration
		start    time.Time
	)
	if c.Verbose {
		c.PrintInitialization()
	}
	for !finished {
		if dt, err = c.CalculateDT(); err != nil {
			return
		}
		last := c.Time+dt >= c.FinalTime
		if last {
			dt = c.FinalTime - c.Time
		}
		start = time.Now()
		if err = c.Advance(dt); err != nil {
			return
		}
		elapsed += time.Since(start)
		if last {
			c.Time = c.FinalTime
		}
		finished = c.CheckIfFinished()
		if c.Verbose && (finished || c.Iteration%c.LogFrequency == 0 || c.Iteration == 1) {
			c.PrintUpdate()
		}
	}
	if c.Verbose {
		c.PrintFinal(elapsed)
	}
	return
}

func (c *Euler) CheckIfFinished() (finished bool) {
	if c.Time >= c.FinalTime || (c.MaxIterations > 0 && c.Iteration >= c.MaxIterations) {
		finished = true
	}
	return
}

// Profile holds per cell primitive fields with the ghost cells stripped
type Profile struct {
	X, Rho, U, P, E, A []float64
}

func (c *Euler) InteriorProfile() (pf Profile, err error) {
	var (
		g = c.Grid
		K = g.K
	)
	pf = Profile{X: g.InteriorX(),
		Rho: make([]float64, K), U: make([]float64, K), P: make([]float64, K),
		E: make([]float64, K), A: make([]float64, K),
	}
	for k := 0; k < K; k++ {
		var (
			i  = k + g.R
			pr eos.Primitive
		)
		if pr, err = c.Gas.Primitives(eos.Lift1D(c.Q[i*FV1D.NComp:])); err != nil {
			return pf, types.WithLocation(err, i, c.Time)
		}
		pf.Rho[k], pf.U[k], pf.P[k], pf.E[k], pf.A[k] = pr.Rho, pr.U, pr.P, pr.E, pr.A
	}
	return
}

func (c *Euler) PrintInitialization() {
	if c.MaxIterations > 0 {
		fmt.Printf("Solving until finaltime = %8.5f or Max Iterations = %d\n", c.FinalTime, c.MaxIterations)
	} else {
		fmt.Printf("Solving until finaltime = %8.5f\n", c.FinalTime)
	}
	fmt.Printf("    iter    time      dt")
	fmt.Printf("       Res0       Res1       Res2")
	fmt.Printf("         L1         L2\n")
}

// PrintUpdate reports the largest residual of each variable from the last RK stage
func (c *Euler) PrintUpdate() {
	var (
		format = "%11.4e"
		g      = c.Grid
		l1, l2 float64
	)
	fmt.Printf("%8d%8.5f%8.5f", c.Iteration, c.Time, c.DT)
	for n := 0; n < FV1D.NComp; n++ {
		var maxR float64
		for i := g.R; i < g.NX-g.R; i++ {
			maxR = math.Max(maxR, math.Abs(c.RK.L[i*FV1D.NComp+n]))
		}
		fmt.Printf(format, maxR)
		l1 = math.Max(l1, maxR)
		l2 += maxR * maxR
	}
	fmt.Printf(format, l1)
	fmt.Printf(format, math.Sqrt(l2)/float64(FV1D.NComp))
	fmt.Printf("\n")
}

func (c *Euler) PrintFinal(elapsed time.Duration) {
	if c.Iteration == 0 {
		fmt.Printf("\nNo iterations taken\n")
		return
	}
	rate := float64(elapsed.Microseconds()) / (float64(c.Grid.K * c.Iteration))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, c.Iteration)
	fmt.Printf("Memory usage: %s\n", utils.GetMemUsage())
}
