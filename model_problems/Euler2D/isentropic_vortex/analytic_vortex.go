package isentropic_vortex

import (
	"math"

	"github.com/notargets/fvweno/eos"
)

// IVortex is the isentropic vortex of strength Beta centered at (X0, Y0) at t = 0, convected by a
// uniform stream Ufs along x. It is an exact smooth solution of the Euler equations for Gas.
type IVortex struct {
	Gas          *eos.IdealGas
	Beta, X0, Y0 float64
	Ufs          float64
}

func NewIVortex(gas *eos.IdealGas, Beta, X0, Y0 float64, UfsO ...float64) (iv *IVortex) {
	iv = &IVortex{Gas: gas, Beta: Beta, X0: X0, Y0: Y0, Ufs: 1}
	if len(UfsO) > 0 {
		iv.Ufs = UfsO[0]
	}
	return
}

// Primitives is the exact flow at (x, y) and time t. The temperature deficit follows the swirl
// magnitude, so p = rho^Gamma holds everywhere.
func (iv *IVortex) Primitives(t, x, y float64) (pr eos.Primitive) {
	var (
		gamma  = iv.Gas.Gamma
		dx, dy = x - iv.Ufs*t - iv.X0, y - iv.Y0
		swirl  = iv.Beta * math.Exp(1-dx*dx-dy*dy) / (2 * math.Pi)
		T      = 1 - (gamma-1)*swirl*swirl/(4*gamma)
	)
	pr.U = iv.Ufs - swirl*dy
	pr.V = swirl * dx
	pr.Rho = math.Pow(T, 1/(gamma-1))
	pr.P = pr.Rho * T
	pr.A = math.Sqrt(gamma * T)
	return
}

// State is the exact conserved state at (x, y) and time t
func (iv *IVortex) State(t, x, y float64) eos.State {
	pr := iv.Primitives(t, x, y)
	return iv.Gas.Conserved(pr.Rho, pr.U, pr.V, pr.P)
}

// MinDensity is the density at the vortex core, the smallest anywhere in the flow
func (iv *IVortex) MinDensity() float64 {
	return iv.Primitives(0, iv.X0, iv.Y0).Rho
}
