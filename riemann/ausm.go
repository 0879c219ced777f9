package riemann

import (
	"math"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/utils"
)

const (
	ausmBeta  = 1. / 8.
	ausmAlpha = 3. / 16.
)

// AUSM+ of Liou, interface sound speed is the arithmetic mean
func ausmPlus(_ *eos.IdealGas, L, R *faceState, _ float64) (F eos.State, err error) {
	var (
		aHalf  = 0.5 * (L.Pr.A + R.Pr.A)
		ML, MR = L.Pr.U / aHalf, R.Pr.U / aHalf
		mHalf  = machSplit(ML, 1) + machSplit(MR, -1)
		pHalf  = pressureSplit(ML, 1)*L.Pr.P + pressureSplit(MR, -1)*R.Pr.P
		mPlus  = aHalf * math.Max(mHalf, 0)
		mMinus = aHalf * math.Min(mHalf, 0)
	)
	phiL := eos.State{L.Pr.Rho, L.Q[1], L.Q[2], L.Pr.Rho * L.Pr.H}
	phiR := eos.State{R.Pr.Rho, R.Q[1], R.Q[2], R.Pr.Rho * R.Pr.H}
	for n := 0; n < 4; n++ {
		F[n] = mPlus*phiL[n] + mMinus*phiR[n]
	}
	F[1] += pHalf
	return
}

// sign = 1 gives the M+ polynomial, -1 gives M-
func machSplit(M, sign float64) float64 {
	if math.Abs(M) >= 1 {
		return 0.5 * (M + sign*math.Abs(M))
	}
	return sign*0.25*utils.POW(M+sign, 2) + sign*ausmBeta*utils.POW(M*M-1, 2)
}

func pressureSplit(M, sign float64) float64 {
	if math.Abs(M) >= 1 {
		if M*sign > 0 {
			return 1
		}
		return 0
	}
	return 0.25*utils.POW(M+sign, 2)*(2-sign*M) + sign*ausmAlpha*M*utils.POW(M*M-1, 2)
}
