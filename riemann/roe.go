package riemann

import (
	"math"

	"github.com/notargets/fvweno/eos"
)

// Roe flux with the Harten entropy correction on all three wave families
func roe(g *eos.IdealGas, L, R *faceState, _ float64) (F eos.State, err error) {
	var ra roeAverage
	if ra, err = newRoeAverage(g, &L.Pr, &R.Pr); err != nil {
		return
	}
	var (
		rho, u, v, h, c = ra.Rho, ra.U, ra.V, ra.H, ra.A
		c2              = c * c
		dRho            = R.Pr.Rho - L.Pr.Rho
		dU, dV, dP      = R.Pr.U - L.Pr.U, R.Pr.V - L.Pr.V, R.Pr.P - L.Pr.P
		delta           = c / 20
	)
	// Phi modifies the eigenvalues to eliminate expansion shocks
	phi := func(eig float64) (res float64) {
		absLam := math.Abs(eig)
		if absLam > delta {
			res = absLam
		} else {
			res = (eig*eig + delta*delta) / (2 * delta)
		}
		return
	}
	dW1 := phi(u-c) * (-0.5*(rho*dU)/c + 0.5*dP/c2)
	dW2 := phi(u) * (dRho - dP/c2)
	dW3 := phi(u) * rho * dV
	dW4 := phi(u+c) * (0.5*(rho*dU)/c + 0.5*dP/c2)
	for n := 0; n < 4; n++ {
		F[n] = 0.5 * (L.F[n] + R.F[n])
	}
	F[0] -= 0.5 * (dW1 + dW2 + dW4)
	F[1] -= 0.5 * (dW1*(u-c) + dW2*u + dW4*(u+c))
	F[2] -= 0.5 * (dW1*v + dW2*v + dW3 + dW4*v)
	F[3] -= 0.5 * (dW1*(h-u*c) + 0.5*dW2*(u*u+v*v) + dW3*v + dW4*(h+u*c))
	return
}
