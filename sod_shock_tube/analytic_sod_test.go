package sod_shock_tube

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/fvweno/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	er := SodShockTube()
	require.NotNil(t, er)
	assert.InDelta(t, 0.30313, er.PStar, 1e-5)
	assert.InDelta(t, 0.92745, er.UStar, 1e-5)
	assert.InDelta(t, 0.42632, er.RhoStarL, 1e-5)
	assert.InDelta(t, 0.26557, er.RhoStarR, 1e-5)

	w := er.Waves(0.1)
	assert.InDelta(t, 0.38168, w[0], 1e-4)
	assert.InDelta(t, 0.6752, w[4], 1e-4)
	assert.Equal(t, w[3], w[4])
	w = er.Waves(0.2)
	assert.InDelta(t, 0.8504, w[4], 1e-4)
	assert.InDelta(t, 0.5+0.2*er.UStar, w[2], 1e-12)

	X, Rho, P, U, E := SOD_calc(0.1)
	assert.Len(t, X, 10)
	assert.Equal(t, 0., X[0])
	assert.Equal(t, 1., X[9])
	rhoCheck := []float64{1, 1, 1, 0.42632, 0.42632, 0.42632, 0.26557, 0.26557, 0.125, 0.125}
	for i := range rhoCheck {
		assert.InDeltaf(t, rhoCheck[i], Rho[i], 1e-3, "point %d at x = %v", i, X[i])
	}
	assert.InDelta(t, 0.1, P[9], 1e-15)
	assert.InDelta(t, 0., U[0], 1e-15)
	assert.InDelta(t, 1/(0.4*1), E[0], 1e-14)
}

func TestToroProblems(t *testing.T) {
	// Test problems 2 and 3 of Toro, chapter 4
	er, err := NewExactRiemann(1.4, 1, -2, 0.4, 1, 2, 0.4, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.00189, er.PStar, 1e-5)
	assert.InDelta(t, 0, er.UStar, 1e-10)
	assert.InDelta(t, 0.02185, er.RhoStarL, 1e-5)

	er, err = NewExactRiemann(1.4, 1, 0, 1000, 1, 0, 0.01, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 460.894, er.PStar, 1e-3)
	assert.InDelta(t, 19.5975, er.UStar, 1e-4)
	assert.InDelta(t, 0.57506, er.RhoStarL, 1e-4)
	assert.InDelta(t, 5.99924, er.RhoStarR, 1e-4)
	assert.Less(t, er.Iterations, 100)
}

func TestSampleContinuity(t *testing.T) {
	// The rarefaction fan joins the left and star states continuously
	er := SodShockTube()
	w := er.Waves(1)
	for _, edge := range []float64{w[0], w[1]} {
		xi := edge - er.X0
		r1, u1, p1 := er.Sample(xi - 1e-10)
		r2, u2, p2 := er.Sample(xi + 1e-10)
		assert.InDelta(t, r1, r2, 1e-8)
		assert.InDelta(t, u1, u2, 1e-8)
		assert.InDelta(t, p1, p2, 1e-8)
	}
	Rho, _, _, _ := er.Profile(0, []float64{0.25, 0.75})
	assert.Equal(t, []float64{1, 0.125}, Rho)
}

func TestErrors(t *testing.T) {
	_, err := NewExactRiemann(1.4, 1, -20, 0.4, 1, 20, 0.4, 0.5)
	assert.True(t, errors.Is(err, types.ErrInvalidState), "vacuum")
	_, err = NewExactRiemann(1.4, -1, 0, 1, 1, 0, 1, 0.5)
	assert.True(t, errors.Is(err, types.ErrInvalidState))
	_, err = NewExactRiemann(1, 1, 0, 1, 1, 0, 1, 0.5)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestNorms(t *testing.T) {
	er := SodShockTube()
	var (
		K  = 100
		dx = 1. / float64(K)
		X  = make([]float64, K)
	)
	for i := range X {
		X[i] = (float64(i) + 0.5) * dx
	}
	Rho, _, _ := er.CellAverages(0.2, X, dx, 16)
	Point, _, _, _ := er.Profile(0.2, X)
	assert.Less(t, L1Error(Rho, Point, dx), 5e-3)
	assert.Equal(t, 0., L1Error(Rho, Rho, dx))
	// Mass is conserved: the exact averages integrate to the initial mass
	var mass float64
	for _, r := range Rho {
		mass += r * dx
	}
	assert.InDelta(t, 0.5*1+0.5*0.125, mass, 1e-3)
	assert.False(t, math.IsNaN(mass))
}
