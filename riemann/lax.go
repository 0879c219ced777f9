package riemann

import (
	"math"

	"github.com/notargets/fvweno/eos"
)

func maxVF(K *faceState) float64 {
	return math.Abs(K.Pr.U) + K.Pr.A
}

// Global Lax Friedrichs, the dissipation speed never drops below the local one
func laxFriedrichs(_ *eos.IdealGas, L, R *faceState, lambdaMax float64) (F eos.State, err error) {
	return centralFlux(L, R, math.Max(lambdaMax, math.Max(maxVF(L), maxVF(R)))), nil
}

// Rusanov, or local Lax Friedrichs
func rusanov(_ *eos.IdealGas, L, R *faceState, _ float64) (F eos.State, err error) {
	return centralFlux(L, R, math.Max(maxVF(L), maxVF(R))), nil
}

func centralFlux(L, R *faceState, alpha float64) (F eos.State) {
	for n := 0; n < 4; n++ {
		F[n] = 0.5*(L.F[n]+R.F[n]) - 0.5*alpha*(R.Q[n]-L.Q[n])
	}
	return
}
