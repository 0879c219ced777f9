package FV1D

import (
	"math"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
	"github.com/notargets/fvweno/weno"
)

// NComp is the number of conserved variables per 1D cell: density, momentum, energy.
const NComp = 3

// Residual1D assembles L(Q) = (F_{i+1/2} - F_{i-1/2})/dx over a Grid1D. Q and L are flat with
// Q[i*NComp+n] holding component n of cell i.
type Residual1D struct {
	Grid            *Grid1D
	Gas             *eos.IdealGas
	Recon           *weno.Reconstructor
	Solver          *riemann.Solver
	BCLeft, BCRight types.BCFLAG
	F               []eos.State // Face fluxes, overwritten every evaluation
	facePM, cellPM  *utils.PartitionMap
	stencils        [][]float64 // One scratch stencil per face bucket
	maxSpeed        []float64   // One partial maximum per cell bucket
}

func NewResidual1D(grid *Grid1D, gas *eos.IdealGas, method weno.Method, ft riemann.FluxType,
	bcLeft, bcRight types.BCFLAG, parallelDegree int) (r *Residual1D, err error) {
	r = &Residual1D{
		Grid:    grid,
		Gas:     gas,
		BCLeft:  bcLeft,
		BCRight: bcRight,
		F:       make([]eos.State, grid.K+1),
	}
	if grid.R < method.Radius() {
		err = types.NewConfigurationError("residual 1D",
			"%s needs %d ghost cells, grid has %d", method.Print(), method.Radius(), grid.R)
		return nil, err
	}
	if grid.K < grid.R {
		err = types.NewConfigurationError("residual 1D",
			"%d interior cells cannot fill %d ghost cells", grid.K, grid.R)
		return nil, err
	}
	if (bcLeft == types.BC_Periodic) != (bcRight == types.BC_Periodic) {
		err = types.NewConfigurationError("residual 1D",
			"periodic boundaries must be paired, have %s and %s", bcLeft, bcRight)
		return nil, err
	}
	for _, bc := range []types.BCFLAG{bcLeft, bcRight} {
		if bc == types.BC_None {
			return nil, types.NewConfigurationError("residual 1D", "boundary condition is not set")
		}
	}
	if r.Recon, err = weno.NewReconstructor(method); err != nil {
		return nil, err
	}
	if r.Solver, err = riemann.NewSolver(gas, ft); err != nil {
		return nil, err
	}
	var (
		nFaces = len(r.F)
	)
	r.facePM = utils.NewPartitionMap(utils.ParallelDegree(parallelDegree, nFaces), nFaces)
	r.cellPM = utils.NewPartitionMap(utils.ParallelDegree(parallelDegree, grid.NX), grid.NX)
	r.stencils = make([][]float64, r.facePM.ParallelDegree)
	for bn := range r.stencils {
		r.stencils[bn] = make([]float64, r.Recon.Width())
	}
	r.maxSpeed = make([]float64, r.cellPM.ParallelDegree)
	return
}

func (r *Residual1D) ParallelDegree() int {
	return r.facePM.ParallelDegree
}

// BoundaryConditions fills the ghost cells at both ends from the interior. Outflow extrapolates the
// edge cell, walls reflect about the boundary face.
func (r *Residual1D) BoundaryConditions(Q []float64) {
	var (
		g = r.Grid
	)
	for k := 0; k < g.R; k++ {
		var (
			ghostL, ghostR = g.R - 1 - k, g.NX - g.R + k
		)
		switch r.BCLeft {
		case types.BC_Periodic:
			copyCell(Q, ghostL, g.NX-g.R-1-k, 1)
		case types.BC_Wall:
			copyCell(Q, ghostL, g.R+k, -1)
		default:
			copyCell(Q, ghostL, g.R, 1)
		}
		switch r.BCRight {
		case types.BC_Periodic:
			copyCell(Q, ghostR, g.R+k, 1)
		case types.BC_Wall:
			copyCell(Q, ghostR, g.NX-g.R-1-k, -1)
		default:
			copyCell(Q, ghostR, g.NX-g.R-1, 1)
		}
	}
}

func copyCell(Q []float64, to, from int, momentumSign float64) {
	Q[to*NComp] = Q[from*NComp]
	Q[to*NComp+1] = momentumSign * Q[from*NComp+1]
	Q[to*NComp+2] = Q[from*NComp+2]
}

// MaxWaveSpeed returns max(|u|+a) over all cells, rejecting any invalid cell state
func (r *Residual1D) MaxWaveSpeed(Q []float64) (lambda float64, err error) {
	err = r.cellPM.Run(func(bn, kMin, kMax int) (err error) {
		r.maxSpeed[bn] = 0
		for i := kMin; i < kMax; i++ {
			var sx float64
			if sx, _, err = r.Gas.MaxWaveSpeed(eos.Lift1D(Q[i*NComp:])); err != nil {
				return types.WithLocation(err, i, 0)
			}
			r.maxSpeed[bn] = math.Max(r.maxSpeed[bn], sx)
		}
		return
	})
	for _, s := range r.maxSpeed {
		lambda = math.Max(lambda, s)
	}
	return
}

// RHS overwrites L with the flux divergence of Q. Ghost cells of Q must be current.
func (r *Residual1D) RHS(Q, L []float64) (err error) {
	var (
		g         = r.Grid
		lambdaMax float64
	)
	if lambdaMax, err = r.MaxWaveSpeed(Q); err != nil {
		return
	}
	if err = r.facePM.Run(func(bn, kMin, kMax int) (err error) {
		for f := kMin; f < kMax; f++ {
			var qL, qR eos.State
			if qL, qR, err = r.faceStates(Q, f, r.stencils[bn]); err != nil {
				return types.WithLocation(err, f, 0)
			}
			if r.F[f], err = r.Solver.Flux(qL, qR, [2]float64{1, 0}, lambdaMax); err != nil {
				return types.WithLocation(err, f, 0)
			}
		}
		return
	}); err != nil {
		return
	}
	oodx := 1. / g.DX
	err = r.cellPM.Run(func(bn, kMin, kMax int) error {
		for i := kMin; i < kMax; i++ {
			if !g.Interior(i) {
				L[i*NComp], L[i*NComp+1], L[i*NComp+2] = 0, 0, 0
				continue
			}
			var (
				fW, fE = &r.F[i-g.R], &r.F[i-g.R+1]
			)
			L[i*NComp] = (fE[0] - fW[0]) * oodx
			L[i*NComp+1] = (fE[1] - fW[1]) * oodx
			L[i*NComp+2] = (fE[3] - fW[3]) * oodx
		}
		return nil
	})
	return
}

// faceStates reconstructs both sides of face f componentwise. On a non periodic domain edge the
// exterior side is replaced by the interior face state, mirrored for a wall.
func (r *Residual1D) faceStates(Q []float64, f int, s []float64) (qL, qR eos.State, err error) {
	var (
		face  = r.Grid.Faces[f]
		first = face.Left - len(s)/2 + 1
		lr    [2][NComp]float64
	)
	for n := 0; n < NComp; n++ {
		for m := range s {
			s[m] = Q[(first+m)*NComp+n]
		}
		if lr[0][n], lr[1][n], err = r.Recon.Face(s); err != nil {
			return
		}
	}
	qL, qR = eos.Lift1D(lr[0][:]), eos.Lift1D(lr[1][:])
	switch {
	case face.Edge < 0 && r.BCLeft != types.BC_Periodic:
		qL = exterior(qR, r.BCLeft)
	case face.Edge > 0 && r.BCRight != types.BC_Periodic:
		qR = exterior(qL, r.BCRight)
	}
	return
}

func exterior(q eos.State, bc types.BCFLAG) eos.State {
	if bc == types.BC_Wall {
		q[1] = -q[1]
	}
	return q
}
