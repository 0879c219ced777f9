package riemann

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFluxes = []FluxType{FLUX_HLLE, FLUX_HLLC, FLUX_Roe, FLUX_LaxFriedrichs, FLUX_Rusanov, FLUX_AUSM}

func nearVec(t *testing.T, a, b eos.State, tol float64, msg ...interface{}) {
	t.Helper()
	for n := range a {
		assert.InDeltaf(t, a[n], b[n], tol, "component %d of %v vs %v %v", n, a, b, msg)
	}
}

func TestFluxNames(t *testing.T) {
	for label, want := range map[string]FluxType{
		"HLLE": FLUX_HLLE, "hllc": FLUX_HLLC, "Roe": FLUX_Roe, "lf": FLUX_LaxFriedrichs,
		"rusanov": FLUX_Rusanov, " ausm ": FLUX_AUSM,
	} {
		ft, err := NewFluxType(label)
		require.NoError(t, err)
		assert.Equal(t, want, ft)
	}
	_, err := NewFluxType("godunov")
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	assert.Equal(t, "AUSM+", FLUX_AUSM.String())

	ft2, err := NewFluxType2D("HLLE2D")
	require.NoError(t, err)
	assert.Equal(t, FLUX2D_HLLE2d, ft2)
	_, err = NewFluxType2D("roe2d")
	assert.Error(t, err)
}

func TestConsistency(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	states := []eos.State{
		gas.Conserved(1, 0, 0, 1),
		gas.Conserved(0.5, 0.3, -0.2, 0.8),
		gas.Conserved(1.2, 3, 0.5, 1), // supersonic in x
		gas.Conserved(0.9, -2.5, -1.5, 0.7),
	}
	normals := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0.6, 0.8}}
	for _, ft := range allFluxes {
		s, err := NewSolver(gas, ft)
		require.NoError(t, err)
		for _, q := range states {
			for _, n := range normals {
				Fphys, err := gas.Flux(q, n)
				require.NoError(t, err)
				F, err := s.Flux(q, q, n, 2)
				require.NoError(t, err)
				nearVec(t, F, Fphys, 1e-12, ft.String(), n)
			}
		}
	}
}

func TestConservativeAntisymmetry(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	var (
		qL = gas.Conserved(1, 0.75, 0.1, 1)
		qR = gas.Conserved(0.125, -0.2, 0.3, 0.1)
		n  = [2]float64{0.6, 0.8}
		mn = [2]float64{-0.6, -0.8}
	)
	for _, ft := range allFluxes {
		s, _ := NewSolver(gas, ft)
		F, err := s.Flux(qL, qR, n, 0)
		require.NoError(t, err)
		Fr, err := s.Flux(qR, qL, mn, 0)
		require.NoError(t, err)
		for i := range F {
			assert.InDeltaf(t, F[i], -Fr[i], 1e-12, "%s component %d", ft, i)
		}
	}
}

func TestStationaryContact(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	var (
		qL = gas.Conserved(1, 0, 0, 1)
		qR = gas.Conserved(0.125, 0, 0, 1)
	)
	for _, ft := range []FluxType{FLUX_HLLC, FLUX_AUSM} {
		s, _ := NewSolver(gas, ft)
		F, err := s.Flux(qL, qR, [2]float64{1, 0}, 0)
		require.NoError(t, err)
		nearVec(t, F, eos.State{0, 1, 0, 0}, 1e-13, ft.String())
	}
	// HLLE smears the contact
	s, _ := NewSolver(gas, FLUX_HLLE)
	F, err := s.Flux(qL, qR, [2]float64{1, 0}, 0)
	require.NoError(t, err)
	assert.Greater(t, F[0], 0.)
}

func TestInvalidStates(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	good := gas.Conserved(1, 0, 0, 1)
	bad := []eos.State{
		{-1, 0, 0, 2.5},
		{0, 0, 0, 2.5},
		{1, 0, 0, -1},
		{1, 3, 0, 1}, // kinetic energy exceeds total energy
	}
	for _, ft := range allFluxes {
		s, _ := NewSolver(gas, ft)
		for _, q := range bad {
			_, err := s.Flux(good, q, [2]float64{1, 0}, 1)
			assert.Truef(t, errors.Is(err, types.ErrInvalidState), "%s: %v", ft, err)
			_, err = s.Flux(q, good, [2]float64{1, 0}, 1)
			assert.True(t, errors.Is(err, types.ErrInvalidState))
		}
	}
	_, _, err := CornerFlux(gas, good, good, bad[0], good)
	assert.True(t, errors.Is(err, types.ErrInvalidState))
	_, err = NewSolver(gas, FluxType(99))
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestCornerFlux(t *testing.T) {
	gas, _ := eos.NewIdealGas(1.4)
	t.Run("uniform", func(t *testing.T) {
		for _, q := range []eos.State{gas.Conserved(1, 0.2, -0.4, 1), gas.Conserved(0.3, 4, 3, 0.2)} {
			F, G, err := CornerFlux(gas, q, q, q, q)
			require.NoError(t, err)
			Fx, Fy, _ := gas.FluxXY(q)
			nearVec(t, F, Fx, 1e-12)
			nearVec(t, G, Fy, 1e-12)
			nearVec(t, SimpsonBlend(F, Fx, F), Fx, 1e-12)
		}
	})
	t.Run("x only variation reduces to HLLE", func(t *testing.T) {
		var (
			qL = gas.Conserved(1, 0.75, 0, 1)
			qR = gas.Conserved(0.125, 0, 0, 0.1)
		)
		s, _ := NewSolver(gas, FLUX_HLLE)
		Fh, err := s.Flux(qL, qR, [2]float64{1, 0}, 0)
		require.NoError(t, err)
		F, _, err := CornerFlux(gas, qL, qR, qL, qR)
		require.NoError(t, err)
		nearVec(t, F, Fh, 1e-12)
	})
	t.Run("y only variation reduces to HLLE", func(t *testing.T) {
		var (
			qS = gas.Conserved(1, 0, 0.75, 1)
			qN = gas.Conserved(0.125, 0, 0, 0.1)
		)
		s, _ := NewSolver(gas, FLUX_HLLE)
		Gh, err := s.Flux(qS, qN, [2]float64{0, 1}, 0)
		require.NoError(t, err)
		_, G, err := CornerFlux(gas, qS, qS, qN, qN)
		require.NoError(t, err)
		nearVec(t, G, Gh, 1e-12)
	})
	t.Run("simpson weights", func(t *testing.T) {
		F := SimpsonBlend(eos.State{6, 0, 0, 0}, eos.State{0, 1.5, 0, 0}, eos.State{0, 0, 0, 12})
		nearVec(t, F, eos.State{1, 1, 0, 2}, 1e-15)
	})
}

func TestHLLBlendDegenerateSpeeds(t *testing.T) {
	var (
		L = &faceState{Q: eos.State{1, 0, 0, 2.5}, F: eos.State{0, 1, 0, 0}}
		R = &faceState{Q: eos.State{0.125, 0, 0, 0.25}, F: eos.State{0, 0.1, 0, 0}}
	)
	for _, speeds := range [][2]float64{
		{math.NaN(), 1}, {-1, math.NaN()}, {math.NaN(), math.NaN()}, {0.5, 0.5}, {1, -1},
	} {
		_, err := hllBlend(speeds[0], speeds[1], L, R)
		require.Error(t, err, "%v", speeds)
		assert.True(t, errors.Is(err, types.ErrNumericDegeneracy), "%v", err)
		assert.False(t, errors.Is(err, types.ErrInvalidState))
	}
	F, err := hllBlend(-1, 1, L, R)
	require.NoError(t, err)
	assert.InDelta(t, 0.4375, F[0], 1.e-15)
}
