package FV2D

import (
	"math"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
)

const NComp = 4

// Boundaries holds the policy on each side of the domain
type Boundaries struct {
	West, East, South, North types.BCFLAG
}

// Residual2D assembles L(Q) = (F_E - F_W)/dx + (G_N - G_S)/dy from first order cell states. With the
// HLLE2d flux every face flux is the Simpson blend of the HLLE face flux and the corner fluxes at its
// two ends.
type Residual2D struct {
	Grid     *Grid2D
	Gas      *eos.IdealGas
	Solver   *riemann.Solver
	FluxType riemann.FluxType2D
	BC       Boundaries
	F, G     []eos.State // X and Y face fluxes
	CF, CG   []eos.State // Corner fluxes
	xPM, yPM *utils.PartitionMap
	cornerPM *utils.PartitionMap
	cellPM   *utils.PartitionMap
	maxSpeed [][2]float64
}

func NewResidual2D(grid *Grid2D, gas *eos.IdealGas, ft riemann.FluxType2D, bc Boundaries,
	parallelDegree int) (r *Residual2D, err error) {
	for _, b := range []types.BCFLAG{bc.West, bc.East, bc.South, bc.North} {
		switch b {
		case types.BC_Out, types.BC_Wall:
		default:
			err = types.NewConfigurationError("residual 2D", "unsupported boundary condition %s", b)
			return
		}
	}
	if ft != riemann.FLUX2D_HLLE1d && ft != riemann.FLUX2D_HLLE2d {
		err = types.NewConfigurationError("residual 2D", "unknown 2D flux type %d", ft)
		return
	}
	r = &Residual2D{
		Grid:     grid,
		Gas:      gas,
		FluxType: ft,
		BC:       bc,
		F:        make([]eos.State, len(grid.XFaces)),
		G:        make([]eos.State, len(grid.YFaces)),
	}
	if r.Solver, err = riemann.NewSolver(gas, riemann.FLUX_HLLE); err != nil {
		return nil, err
	}
	if ft == riemann.FLUX2D_HLLE2d {
		r.CF = make([]eos.State, len(grid.Corners))
		r.CG = make([]eos.State, len(grid.Corners))
	}
	newPM := func(n int) *utils.PartitionMap {
		return utils.NewPartitionMap(utils.ParallelDegree(parallelDegree, n), n)
	}
	r.xPM, r.yPM = newPM(len(grid.XFaces)), newPM(len(grid.YFaces))
	r.cornerPM = newPM(len(grid.Corners))
	r.cellPM = newPM(grid.M * grid.N)
	r.maxSpeed = make([][2]float64, r.cellPM.ParallelDegree)
	return
}

func cell(Q []float64, k int) (q eos.State) {
	copy(q[:], Q[k*NComp:(k+1)*NComp])
	return
}

// BoundaryConditions fills the ghost layer, including the four corner ghost cells, from the nearest
// interior cell. Walls reverse the wall normal momentum.
func (r *Residual2D) BoundaryConditions(Q []float64) {
	var (
		g      = r.Grid
		M, N   = g.M, g.N
		sW, sE = wallSign(r.BC.West), wallSign(r.BC.East)
		sS, sN = wallSign(r.BC.South), wallSign(r.BC.North)
	)
	set := func(to, from int, su, sv float64) {
		Q[to*NComp] = Q[from*NComp]
		Q[to*NComp+1] = su * Q[from*NComp+1]
		Q[to*NComp+2] = sv * Q[from*NComp+2]
		Q[to*NComp+3] = Q[from*NComp+3]
	}
	for j := 1; j < N-1; j++ {
		set(g.Index(0, j), g.Index(1, j), sW, 1)
		set(g.Index(M-1, j), g.Index(M-2, j), sE, 1)
	}
	for i := 1; i < M-1; i++ {
		set(g.Index(i, 0), g.Index(i, 1), 1, sS)
		set(g.Index(i, N-1), g.Index(i, N-2), 1, sN)
	}
	set(g.Index(0, 0), g.Index(1, 1), sW, sS)
	set(g.Index(M-1, 0), g.Index(M-2, 1), sE, sS)
	set(g.Index(0, N-1), g.Index(1, N-2), sW, sN)
	set(g.Index(M-1, N-1), g.Index(M-2, N-2), sE, sN)
}

// MaxWaveSpeed returns max(|u|+a) and max(|v|+a) over all cells, rejecting any invalid cell state
func (r *Residual2D) MaxWaveSpeed(Q []float64) (sx, sy float64, err error) {
	err = r.cellPM.Run(func(bn, kMin, kMax int) (err error) {
		r.maxSpeed[bn] = [2]float64{}
		for k := kMin; k < kMax; k++ {
			var x, y float64
			if x, y, err = r.Gas.MaxWaveSpeed(cell(Q, k)); err != nil {
				return types.WithLocation(err, k, 0)
			}
			r.maxSpeed[bn][0] = math.Max(r.maxSpeed[bn][0], x)
			r.maxSpeed[bn][1] = math.Max(r.maxSpeed[bn][1], y)
		}
		return
	})
	for _, s := range r.maxSpeed {
		sx, sy = math.Max(sx, s[0]), math.Max(sy, s[1])
	}
	return
}

// RHS overwrites L with the flux divergence of Q. Ghost cells of Q must be current.
func (r *Residual2D) RHS(Q, L []float64) (err error) {
	var (
		g = r.Grid
	)
	if _, _, err = r.MaxWaveSpeed(Q); err != nil {
		return
	}
	if err = r.faceFluxes(Q, g.XFaces, r.F, r.xPM, [2]float64{1, 0}, r.BC.West, r.BC.East); err != nil {
		return
	}
	if err = r.faceFluxes(Q, g.YFaces, r.G, r.yPM, [2]float64{0, 1}, r.BC.South, r.BC.North); err != nil {
		return
	}
	if r.FluxType == riemann.FLUX2D_HLLE2d {
		if err = r.cornerPM.Run(func(bn, kMin, kMax int) (err error) {
			for c := kMin; c < kMax; c++ {
				cn := g.Corners[c]
				if r.CF[c], r.CG[c], err = riemann.CornerFlux(r.Gas,
					cell(Q, cn.SW), cell(Q, cn.SE), cell(Q, cn.NW), cell(Q, cn.NE)); err != nil {
					return types.WithLocation(err, c, 0)
				}
			}
			return
		}); err != nil {
			return
		}
		if err = blend(g.XFaces, r.F, r.CF, r.xPM); err != nil {
			return
		}
		if err = blend(g.YFaces, r.G, r.CG, r.yPM); err != nil {
			return
		}
	}
	var (
		oodx, oody = 1. / g.DX, 1. / g.DY
	)
	err = r.cellPM.Run(func(bn, kMin, kMax int) error {
		for k := kMin; k < kMax; k++ {
			if !g.Interior(k) {
				for n := 0; n < NComp; n++ {
					L[k*NComp+n] = 0
				}
				continue
			}
			var (
				i, j   = g.IJ(k)
				fW, fE = &r.F[g.XFaceIndex(i-1, j)], &r.F[g.XFaceIndex(i, j)]
				gS, gN = &r.G[g.YFaceIndex(i, j-1)], &r.G[g.YFaceIndex(i, j)]
			)
			for n := 0; n < NComp; n++ {
				L[k*NComp+n] = (fE[n]-fW[n])*oodx + (gN[n]-gS[n])*oody
			}
		}
		return nil
	})
	return
}

// faceFluxes evaluates the HLLE flux on every face of one orientation. On a domain edge the exterior
// state is a copy of the interior cell state, mirrored for a wall.
func (r *Residual2D) faceFluxes(Q []float64, faces []Face2D, F []eos.State, pm *utils.PartitionMap,
	normal [2]float64, bcLo, bcHi types.BCFLAG) (err error) {
	return pm.Run(func(bn, kMin, kMax int) (err error) {
		for f := kMin; f < kMax; f++ {
			var (
				face   = faces[f]
				qL, qR = cell(Q, face.Lo), cell(Q, face.Hi)
			)
			switch face.Edge {
			case -1:
				qL = exterior(qR, bcLo, normal)
			case 1:
				qR = exterior(qL, bcHi, normal)
			}
			if F[f], err = r.Solver.Flux(qL, qR, normal, 0); err != nil {
				return types.WithLocation(err, f, 0)
			}
		}
		return
	})
}

func wallSign(bc types.BCFLAG) float64 {
	if bc == types.BC_Wall {
		return -1
	}
	return 1
}

func exterior(q eos.State, bc types.BCFLAG, normal [2]float64) eos.State {
	if bc == types.BC_Wall {
		if normal[0] != 0 {
			q[1] = -q[1]
		} else {
			q[2] = -q[2]
		}
	}
	return q
}

func blend(faces []Face2D, F, C []eos.State, pm *utils.PartitionMap) error {
	return pm.Run(func(bn, kMin, kMax int) error {
		for f := kMin; f < kMax; f++ {
			F[f] = riemann.SimpsonBlend(C[faces[f].CornerLo], F[f], C[faces[f].CornerHi])
		}
		return nil
	})
}

func (r *Residual2D) ParallelDegree() int {
	return r.cellPM.ParallelDegree
}
