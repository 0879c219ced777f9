package riemann

import (
	"math"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
)

// Two wave HLL flux with Einfeldt signal speeds from Roe averages
func hlle(g *eos.IdealGas, L, R *faceState, _ float64) (F eos.State, err error) {
	var ra roeAverage
	if ra, err = newRoeAverage(g, &L.Pr, &R.Pr); err != nil {
		return
	}
	var (
		SL = utils.Min3(L.Pr.U-L.Pr.A, ra.U-ra.A, 0)
		SR = utils.Max3(R.Pr.U+R.Pr.A, ra.U+ra.A, 0)
	)
	switch {
	case SL >= 0:
		F = L.F
	case SR <= 0:
		F = R.F
	default:
		F, err = hllBlend(SL, SR, L, R)
	}
	return
}

// HLLC restores the contact wave dropped by HLL (Toro, Spruce and Speares)
func hllc(g *eos.IdealGas, L, R *faceState, _ float64) (F eos.State, err error) {
	var ra roeAverage
	if ra, err = newRoeAverage(g, &L.Pr, &R.Pr); err != nil {
		return
	}
	var (
		rhoL, uL, pL = L.Pr.Rho, L.Pr.U, L.Pr.P
		rhoR, uR, pR = R.Pr.Rho, R.Pr.U, R.Pr.P
		SL           = math.Min(uL-L.Pr.A, ra.U-ra.A)
		SR           = math.Max(uR+R.Pr.A, ra.U+ra.A)
	)
	if SL >= 0 {
		F = L.F
		return
	}
	if SR <= 0 {
		F = R.F
		return
	}
	den := rhoL*(SL-uL) - rhoR*(SR-uR)
	if den == 0 || math.IsNaN(den) {
		err = types.NewDegeneracyError("hllc", -1, "contact speed denominator = %v", den)
		return
	}
	SM := (pR - pL + rhoL*uL*(SL-uL) - rhoR*uR*(SR-uR)) / den
	starFlux := func(S float64, K *faceState) (Fs eos.State, err error) {
		var (
			rho, u, v, p = K.Pr.Rho, K.Pr.U, K.Pr.V, K.Pr.P
			dS           = S - SM
		)
		if dS == 0 {
			err = types.NewDegeneracyError("hllc", -1, "contact speed equals signal speed %v", S)
			return
		}
		var (
			factor = rho * (S - u) / dS
			Qs     = eos.State{
				factor,
				factor * SM,
				factor * v,
				factor * (K.Q[3]/rho + (SM-u)*(SM+p/(rho*(S-u)))),
			}
		)
		for n := 0; n < 4; n++ {
			Fs[n] = K.F[n] + S*(Qs[n]-K.Q[n])
		}
		return
	}
	if SM >= 0 {
		return starFlux(SL, L)
	}
	return starFlux(SR, R)
}
