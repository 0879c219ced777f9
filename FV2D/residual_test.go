package FV2D

import (
	"errors"
	"testing"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outflow = Boundaries{types.BC_Out, types.BC_Out, types.BC_Out, types.BC_Out}

func setup(t *testing.T, M, N int, ft riemann.FluxType2D, bc Boundaries, np int) (r *Residual2D, Q, L []float64) {
	t.Helper()
	gas, err := eos.NewIdealGas(1.4)
	require.NoError(t, err)
	grid, err := NewGrid2D(M, N, 0, 1, 0, 1)
	require.NoError(t, err)
	r, err = NewResidual2D(grid, gas, ft, bc, np)
	require.NoError(t, err)
	Q, L = make([]float64, M*N*NComp), make([]float64, M*N*NComp)
	return
}

func fill(r *Residual2D, Q []float64, prim func(x, y float64) (rho, u, v, p float64)) {
	g := r.Grid
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.M; i++ {
			q := r.Gas.Conserved(prim(g.Center(i, j)))
			copy(Q[g.Index(i, j)*NComp:], q[:])
		}
	}
	r.BoundaryConditions(Q)
}

// Lax Liu configuration 3, four shocks meeting at the center
func quadrants(x, y float64) (rho, u, v, p float64) {
	switch {
	case x >= 0.5 && y >= 0.5:
		return 1.5, 0, 0, 1.5
	case x < 0.5 && y >= 0.5:
		return 0.5323, 1.206, 0, 0.3
	case x < 0.5 && y < 0.5:
		return 0.138, 1.206, 1.206, 0.029
	default:
		return 0.5323, 0, 1.206, 0.3
	}
}

func TestGrid2D(t *testing.T) {
	g, err := NewGrid2D(5, 4, 0, 3, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1, g.DX, 1e-15)
	assert.InDelta(t, 1, g.DY, 1e-15)
	assert.Len(t, g.XFaces, 4*2)
	assert.Len(t, g.YFaces, 3*3)
	assert.Len(t, g.Corners, 4*3)
	x, y := g.Center(1, 1)
	assert.InDelta(t, 0.5, x, 1e-15)
	assert.InDelta(t, 0.5, y, 1e-15)

	// Face east of (2,1) joins (2,1) and (3,1) and runs between the corners south and north of it
	f := g.XFaces[g.XFaceIndex(2, 1)]
	assert.Equal(t, g.Index(2, 1), f.Lo)
	assert.Equal(t, g.Index(3, 1), f.Hi)
	assert.Equal(t, Corner2D{SW: g.Index(2, 0), SE: g.Index(3, 0), NW: g.Index(2, 1), NE: g.Index(3, 1)},
		g.Corners[f.CornerLo])
	assert.Equal(t, Corner2D{SW: g.Index(2, 1), SE: g.Index(3, 1), NW: g.Index(2, 2), NE: g.Index(3, 2)},
		g.Corners[f.CornerHi])
	assert.Equal(t, -1, g.XFaces[g.XFaceIndex(0, 2)].Edge)
	assert.Equal(t, 1, g.XFaces[g.XFaceIndex(3, 2)].Edge)
	assert.Equal(t, 0, f.Edge)

	fy := g.YFaces[g.YFaceIndex(1, 0)]
	assert.Equal(t, g.Index(1, 0), fy.Lo)
	assert.Equal(t, g.Index(1, 1), fy.Hi)
	assert.Equal(t, -1, fy.Edge)
	assert.Equal(t, g.Index(0, 0), g.Corners[fy.CornerLo].SW)
	assert.Equal(t, g.Index(1, 0), g.Corners[fy.CornerHi].SW)

	for k := 0; k < 20; k++ {
		i, j := g.IJ(k)
		assert.Equal(t, k, g.Index(i, j))
	}
	assert.True(t, g.Interior(g.Index(3, 2)))
	assert.False(t, g.Interior(g.Index(4, 2)))

	_, err = NewGrid2D(2, 10, 0, 1, 0, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = NewGrid2D(10, 10, 0, 1, 1, 0)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestUniformStateZeroResidual(t *testing.T) {
	for _, ft := range []riemann.FluxType2D{riemann.FLUX2D_HLLE1d, riemann.FLUX2D_HLLE2d} {
		for _, prim := range [][4]float64{{1, 0, 0, 1}, {0.8, 0.5, -0.3, 1.2}, {1.4, 3, 2, 1}} {
			r, Q, L := setup(t, 8, 7, ft, outflow, 1)
			fill(r, Q, func(x, y float64) (float64, float64, float64, float64) {
				return prim[0], prim[1], prim[2], prim[3]
			})
			require.NoError(t, r.RHS(Q, L))
			for k, l := range L {
				assert.Equalf(t, 0., l, "%s index %d", ft, k)
			}
		}
	}
}

func TestCornerBlendConsistency(t *testing.T) {
	r, Q, L := setup(t, 6, 6, riemann.FLUX2D_HLLE2d, outflow, 1)
	fill(r, Q, func(x, y float64) (float64, float64, float64, float64) { return 0.9, 0.4, 0.7, 1.1 })
	require.NoError(t, r.RHS(Q, L))
	Fx, Fy, err := r.Gas.FluxXY(r.Gas.Conserved(0.9, 0.4, 0.7, 1.1))
	require.NoError(t, err)
	for _, F := range r.F {
		for n := range F {
			assert.InDelta(t, Fx[n], F[n], 1e-12)
		}
	}
	for _, G := range r.G {
		for n := range G {
			assert.InDelta(t, Fy[n], G[n], 1e-12)
		}
	}
}

func TestConservation(t *testing.T) {
	for _, ft := range []riemann.FluxType2D{riemann.FLUX2D_HLLE1d, riemann.FLUX2D_HLLE2d} {
		r, Q, L := setup(t, 12, 12, ft, outflow, 1)
		fill(r, Q, quadrants)
		require.NoError(t, r.RHS(Q, L))
		var (
			g        = r.Grid
			sum, bnd [NComp]float64
		)
		for k := 0; k < g.M*g.N; k++ {
			for n := 0; n < NComp; n++ {
				sum[n] += L[k*NComp+n] * g.DX * g.DY
			}
		}
		for f, face := range g.XFaces {
			for n := 0; n < NComp; n++ {
				bnd[n] += float64(face.Edge) * r.F[f][n] * g.DY
			}
		}
		for f, face := range g.YFaces {
			for n := 0; n < NComp; n++ {
				bnd[n] += float64(face.Edge) * r.G[f][n] * g.DX
			}
		}
		for n := 0; n < NComp; n++ {
			assert.InDeltaf(t, bnd[n], sum[n], 1e-12, "%s component %d", ft, n)
		}
	}
}

func TestPlanarData(t *testing.T) {
	// Data varying only in x gives identical rows and no y momentum residual
	r, Q, L := setup(t, 14, 6, riemann.FLUX2D_HLLE2d, outflow, 1)
	fill(r, Q, func(x, y float64) (float64, float64, float64, float64) {
		if x < 0.5 {
			return 1, 0, 0, 1
		}
		return 0.125, 0, 0, 0.1
	})
	require.NoError(t, r.RHS(Q, L))
	g := r.Grid
	row := func(j int) []float64 { return L[g.Index(1, j)*NComp : g.Index(g.M-1, j)*NComp] }
	for j := 2; j < g.N-1; j++ {
		assert.Equal(t, row(1), row(j))
	}
	for i := 1; i < g.M-1; i++ {
		assert.Equal(t, 0., L[g.Index(i, 2)*NComp+2])
	}
	assert.NotEqual(t, 0., L[g.Index(6, 2)*NComp])
}

func TestTransposeSymmetry(t *testing.T) {
	var (
		r, Q, L    = setup(t, 10, 10, riemann.FLUX2D_HLLE2d, outflow, 1)
		rt, Qt, Lt = setup(t, 10, 10, riemann.FLUX2D_HLLE2d, outflow, 1)
	)
	fill(r, Q, quadrants)
	fill(rt, Qt, func(x, y float64) (float64, float64, float64, float64) {
		rho, u, v, p := quadrants(y, x)
		return rho, v, u, p
	})
	require.NoError(t, r.RHS(Q, L))
	require.NoError(t, rt.RHS(Qt, Lt))
	g := r.Grid
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.M; i++ {
			k, kt := g.Index(i, j), g.Index(j, i)
			assert.InDelta(t, L[k*NComp], Lt[kt*NComp], 1e-12)
			assert.InDelta(t, L[k*NComp+1], Lt[kt*NComp+2], 1e-12)
			assert.InDelta(t, L[k*NComp+2], Lt[kt*NComp+1], 1e-12)
			assert.InDelta(t, L[k*NComp+3], Lt[kt*NComp+3], 1e-12)
		}
	}
}

func TestParallelDeterminism(t *testing.T) {
	r1, Q1, L1 := setup(t, 17, 13, riemann.FLUX2D_HLLE2d, outflow, 1)
	fill(r1, Q1, quadrants)
	require.NoError(t, r1.RHS(Q1, L1))
	for _, np := range []int{2, 5, 16} {
		rN, QN, LN := setup(t, 17, 13, riemann.FLUX2D_HLLE2d, outflow, np)
		fill(rN, QN, quadrants)
		require.NoError(t, rN.RHS(QN, LN))
		assert.Equal(t, L1, LN)
	}
}

func TestWallBoundaries(t *testing.T) {
	walls := Boundaries{types.BC_Wall, types.BC_Wall, types.BC_Wall, types.BC_Wall}
	r, Q, L := setup(t, 6, 6, riemann.FLUX2D_HLLE1d, walls, 1)
	fill(r, Q, func(x, y float64) (float64, float64, float64, float64) { return 1, 0.3, -0.2, 1 })
	g := r.Grid
	assert.InDelta(t, -Q[g.Index(1, 2)*NComp+1], Q[g.Index(0, 2)*NComp+1], 1e-15)
	assert.InDelta(t, Q[g.Index(1, 2)*NComp+2], Q[g.Index(0, 2)*NComp+2], 1e-15)
	assert.InDelta(t, -Q[g.Index(2, 4)*NComp+2], Q[g.Index(2, 5)*NComp+2], 1e-15)
	assert.InDelta(t, -Q[g.Index(4, 4)*NComp+1], Q[g.Index(5, 5)*NComp+1], 1e-15)
	assert.InDelta(t, -Q[g.Index(4, 4)*NComp+2], Q[g.Index(5, 5)*NComp+2], 1e-15)
	require.NoError(t, r.RHS(Q, L))
	// No mass crosses a wall
	for f, face := range g.XFaces {
		if face.Edge != 0 {
			assert.InDelta(t, 0, r.F[f][0], 1e-15)
		}
	}
	for f, face := range g.YFaces {
		if face.Edge != 0 {
			assert.InDelta(t, 0, r.G[f][0], 1e-15)
		}
	}
}

func TestErrors(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	grid, _ := NewGrid2D(6, 6, 0, 1, 0, 1)
	_, err := NewResidual2D(grid, gas, riemann.FLUX2D_HLLE2d,
		Boundaries{types.BC_Periodic, types.BC_Periodic, types.BC_Out, types.BC_Out}, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = NewResidual2D(grid, gas, riemann.FluxType2D(7), outflow, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	r, Q, L := setup(t, 6, 6, riemann.FLUX2D_HLLE2d, outflow, 1)
	fill(r, Q, quadrants)
	Q[r.Grid.Index(3, 3)*NComp+3] = 0
	err = r.RHS(Q, L)
	assert.True(t, errors.Is(err, types.ErrInvalidState))
}
