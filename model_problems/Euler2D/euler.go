package Euler2D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/fvweno/FV2D"
	"github.com/notargets/fvweno/InputParameters"
	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/integrator"
	"github.com/notargets/fvweno/model_problems/Euler2D/isentropic_vortex"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/sod_shock_tube"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
)

// Euler solves the two dimensional Euler equations on a uniform structured grid with first order cell
// states, the HLLE or two dimensional HLLE corner flux, and SSP RK3
type Euler struct {
	CFL, FinalTime float64
	MaxIterations  int
	Case           InitType
	FluxType       riemann.FluxType2D
	Gas            *eos.IdealGas
	Grid           *FV2D.Grid2D
	Residual       *FV2D.Residual2D
	RK             *integrator.RungeKutta3SSP
	FS             *FreeStream
	Exact          *sod_shock_tube.ExactRiemann // Planar shock tube only
	Vortex         *isentropic_vortex.IVortex   // Isentropic vortex only
	Q              []float64                    // Conserved variables, FV2D.NComp per cell, ghosts included
	Time, DT       float64
	Iteration      int
	Verbose        bool
	LogFrequency   int
}

func NewEuler(ip *InputParameters.InputParameters2D, verbose bool) (c *Euler, err error) {
	var (
		bcs [4]types.BCFLAG
	)
	c = &Euler{
		CFL:           ip.CFL,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		Verbose:       verbose,
		LogFrequency:  50,
	}
	if c.FluxType, bcs, err = ip.Resolve(); err != nil {
		return nil, err
	}
	if c.Case, err = NewInitType(ip.InitType); err != nil {
		return nil, err
	}
	if c.Gas, err = eos.NewIdealGas(ip.Gamma); err != nil {
		return nil, err
	}
	if c.Grid, err = FV2D.NewGrid2D(ip.M+2, ip.N+2, ip.XMin, ip.XMax, ip.YMin, ip.YMax); err != nil {
		return nil, err
	}
	bc := FV2D.Boundaries{West: bcs[0], East: bcs[1], South: bcs[2], North: bcs[3]}
	if c.Residual, err = FV2D.NewResidual2D(c.Grid, c.Gas, c.FluxType, bc, ip.ParallelDegree); err != nil {
		return nil, err
	}
	c.FS = NewFreeStream(c.Gas, ip.Minf, ip.Alpha)
	c.Q = make([]float64, c.Grid.M*c.Grid.N*FV2D.NComp)
	c.RK = integrator.NewRungeKutta3SSP(len(c.Q), ip.ParallelDegree)
	if err = c.InitializeSolution(); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Euler Equations in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel\n", c.Residual.ParallelDegree())
		fmt.Printf("Solving %s\n", c.Case.Print())
		if c.Case == FREESTREAM {
			fmt.Printf("Mach Infinity = %8.5f, Angle of Attack = %8.5f\n", c.FS.Minf, c.FS.Alpha)
		}
		fmt.Printf("Algorithm: %s\n", c.FluxType.Print())
		fmt.Printf("Boundaries: West %s, East %s, South %s, North %s\n", bc.West, bc.East, bc.South, bc.North)
		fmt.Printf("CFL = %8.4f, Grid %s\n\n\n", c.CFL, c.Grid)
	}
	return
}

// CalculateDT is CFL*min(dx/max(|u|+a), dy/max(|v|+a)) from the current state
func (c *Euler) CalculateDT() (dt float64, err error) {
	var (
		sx, sy float64
	)
	if sx, sy, err = c.Residual.MaxWaveSpeed(c.Q); err != nil {
		return 0, types.WithLocation(err, -1, c.Time)
	}
	if !(sx > 0) || !(sy > 0) {
		err = types.NewDegeneracyError("time step", -1, "maximum wave speeds = %v, %v", sx, sy)
		return
	}
	dt = c.CFL * math.Min(c.Grid.DX/sx, c.Grid.DY/sy)
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
	for j := 1; j < g.N-1; j++ {
		for i := 1; i < g.M-1; i++ {
			k := g.Index(i, j)
			if _, err = c.Gas.Primitives(c.cell(k)); err != nil {
				return types.WithLocation(err, k, c.Time)
			}
		}
	}
	return
}

func (c *Euler) cell(k int) (q eos.State) {
	copy(q[:], c.Q[k*FV2D.NComp:(k+1)*FV2D.NComp])
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

// Profile holds per cell primitive fields of the interior, row by row from the south
type Profile struct {
	M, N                  int
	X, Y, Rho, U, V, P, A []float64
}

func (c *Euler) InteriorProfile() (pf Profile, err error) {
	var (
		g    = c.Grid
		M, N = g.M - 2, g.N - 2
		nc   = M * N
	)
	pf = Profile{M: M, N: N,
		X: make([]float64, nc), Y: make([]float64, nc),
		Rho: make([]float64, nc), U: make([]float64, nc), V: make([]float64, nc),
		P: make([]float64, nc), A: make([]float64, nc),
	}
	for j := 1; j < g.N-1; j++ {
		for i := 1; i < g.M-1; i++ {
			var (
				n  = (j-1)*M + i - 1
				k  = g.Index(i, j)
				pr eos.Primitive
			)
			if pr, err = c.Gas.Primitives(c.cell(k)); err != nil {
				return pf, types.WithLocation(err, k, c.Time)
			}
			pf.X[n], pf.Y[n] = g.Center(i, j)
			pf.Rho[n], pf.U[n], pf.V[n], pf.P[n], pf.A[n] = pr.Rho, pr.U, pr.V, pr.P, pr.A
		}
	}
	return
}

// GetFlowFunction evaluates a derived quantity over the interior, in the layout of InteriorProfile
func (c *Euler) GetFlowFunction(ff eos.FlowFunction) (f []float64) {
	g := c.Grid
	f = make([]float64, 0, (g.M-2)*(g.N-2))
	for j := 1; j < g.N-1; j++ {
		for i := 1; i < g.M-1; i++ {
			f = append(f, c.Gas.GetFlowFunction(c.cell(g.Index(i, j)), ff))
		}
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
	fmt.Printf("       Res3         L1         L2\n")
}

// PrintUpdate reports the largest residual of each variable from the last RK stage
func (c *Euler) PrintUpdate() {
	var (
		format = "%11.4e"
		g      = c.Grid
		l1, l2 float64
	)
	fmt.Printf("%8d%8.5f%8.5f", c.Iteration, c.Time, c.DT)
	for n := 0; n < FV2D.NComp; n++ {
		var maxR float64
		for j := 1; j < g.N-1; j++ {
			for i := 1; i < g.M-1; i++ {
				maxR = math.Max(maxR, math.Abs(c.RK.L[g.Index(i, j)*FV2D.NComp+n]))
			}
		}
		fmt.Printf(format, maxR)
		l1 = math.Max(l1, maxR)
		l2 += maxR * maxR
	}
	fmt.Printf(format, l1)
	fmt.Printf(format, math.Sqrt(l2)/4.)
	fmt.Printf("\n")
}

func (c *Euler) PrintFinal(elapsed time.Duration) {
	if c.Iteration == 0 {
		fmt.Printf("\nNo iterations taken\n")
		return
	}
	cells := (c.Grid.M - 2) * (c.Grid.N - 2)
	rate := float64(elapsed.Microseconds()) / (float64(cells * c.Iteration))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, c.Iteration)
	fmt.Printf("Memory usage: %s\n", utils.GetMemUsage())
}
