package sod_shock_tube

import (
	"math"

	"github.com/notargets/fvweno/types"
	"gonum.org/v1/gonum/floats"
)

// ExactRiemann is the exact solution of the Riemann problem for an ideal gas, the initial
// discontinuity sits at X0 at time zero.
type ExactRiemann struct {
	Gamma              float64
	RhoL, UL, PL       float64
	RhoR, UR, PR       float64
	X0                 float64
	PStar, UStar       float64
	RhoStarL, RhoStarR float64
	aL, aR             float64
	Iterations         int
}

func NewExactRiemann(gamma, rhoL, uL, pL, rhoR, uR, pR, x0 float64) (er *ExactRiemann, err error) {
	if !(gamma > 1) {
		err = types.NewConfigurationError("exact riemann", "specific heat ratio must be > 1, have %v", gamma)
		return
	}
	for _, v := range []float64{rhoL, pL, rhoR, pR} {
		if !(v > 0) || math.IsInf(v, 0) {
			err = types.NewInvalidStateError("exact riemann", -1,
				"left (%v, %v, %v) right (%v, %v, %v)", rhoL, uL, pL, rhoR, uR, pR)
			return
		}
	}
	er = &ExactRiemann{
		Gamma: gamma,
		RhoL:  rhoL, UL: uL, PL: pL,
		RhoR: rhoR, UR: uR, PR: pR,
		X0: x0,
		aL: math.Sqrt(gamma * pL / rhoL),
		aR: math.Sqrt(gamma * pR / rhoR),
	}
	// Pressure positivity condition, otherwise the solution contains vacuum
	if 2*(er.aL+er.aR)/(gamma-1) <= uR-uL {
		err = types.NewInvalidStateError("exact riemann", -1,
			"initial states generate vacuum, du = %v", uR-uL)
		return nil, err
	}
	if err = er.solveStar(); err != nil {
		return nil, err
	}
	return
}

// SodShockTube is the classic Sod problem on [0,1] with the diaphragm at 0.5
func SodShockTube() (er *ExactRiemann) {
	er, _ = NewExactRiemann(1.4, 1, 0, 1, 0.125, 0, 0.1, 0.5)
	return
}

// waveFunction is the pressure function f_K(p) of one side and its derivative
func (er *ExactRiemann) waveFunction(p, rho, pK, a float64) (f, df float64) {
	var (
		g = er.Gamma
	)
	if p > pK { // Shock
		var (
			A = 2 / ((g + 1) * rho)
			B = (g - 1) / (g + 1) * pK
			q = math.Sqrt(A / (p + B))
		)
		f = (p - pK) * q
		df = q * (1 - 0.5*(p-pK)/(p+B))
		return
	}
	// Rarefaction
	pr := p / pK
	f = 2 * a / (g - 1) * (math.Pow(pr, (g-1)/(2*g)) - 1)
	df = 1 / (rho * a) * math.Pow(pr, -(g+1)/(2*g))
	return
}

func (er *ExactRiemann) solveStar() (err error) {
	var (
		g      = er.Gamma
		du     = er.UR - er.UL
		tol    = 1.e-12
		maxIts = 100
	)
	// Primitive variable guess, floored to stay positive
	p := 0.5*(er.PL+er.PR) - 0.125*du*(er.RhoL+er.RhoR)*(er.aL+er.aR)
	p = math.Max(p, tol)
	for er.Iterations = 1; er.Iterations <= maxIts; er.Iterations++ {
		fL, dfL := er.waveFunction(p, er.RhoL, er.PL, er.aL)
		fR, dfR := er.waveFunction(p, er.RhoR, er.PR, er.aR)
		pNew := p - (fL+fR+du)/(dfL+dfR)
		if pNew < 0 {
			pNew = tol
		}
		change := 2 * math.Abs(pNew-p) / (pNew + p)
		p = pNew
		if change < tol {
			fL, _ = er.waveFunction(p, er.RhoL, er.PL, er.aL)
			fR, _ = er.waveFunction(p, er.RhoR, er.PR, er.aR)
			er.PStar = p
			er.UStar = 0.5*(er.UL+er.UR) + 0.5*(fR-fL)
			er.RhoStarL = er.starDensity(er.RhoL, er.PL)
			er.RhoStarR = er.starDensity(er.RhoR, er.PR)
			return
		}
	}
	err = types.NewDegeneracyError("exact riemann", -1,
		"star pressure did not converge in %d iterations (gamma = %v)", maxIts, g)
	return
}

func (er *ExactRiemann) starDensity(rho, pK float64) float64 {
	var (
		g  = er.Gamma
		pr = er.PStar / pK
	)
	if pr > 1 {
		gr := (g - 1) / (g + 1)
		return rho * (pr + gr) / (gr*pr + 1)
	}
	return rho * math.Pow(pr, 1/g)
}

// Waves returns the positions at time t of the left wave head and tail, the contact and the right
// wave tail and head. Head and tail coincide for a shock.
func (er *ExactRiemann) Waves(t float64) (x [5]float64) {
	var (
		g = er.Gamma
	)
	if er.PStar > er.PL {
		s := er.UL - er.aL*math.Sqrt((g+1)/(2*g)*er.PStar/er.PL+(g-1)/(2*g))
		x[0], x[1] = s, s
	} else {
		x[0] = er.UL - er.aL
		x[1] = er.UStar - er.aL*math.Pow(er.PStar/er.PL, (g-1)/(2*g))
	}
	x[2] = er.UStar
	if er.PStar > er.PR {
		s := er.UR + er.aR*math.Sqrt((g+1)/(2*g)*er.PStar/er.PR+(g-1)/(2*g))
		x[3], x[4] = s, s
	} else {
		x[3] = er.UStar + er.aR*math.Pow(er.PStar/er.PR, (g-1)/(2*g))
		x[4] = er.UR + er.aR
	}
	for i := range x {
		x[i] = er.X0 + x[i]*t
	}
	return
}

// Sample returns the primitive state on the ray xi = (x - X0)/t
func (er *ExactRiemann) Sample(xi float64) (rho, u, p float64) {
	var (
		g  = er.Gamma
		g1 = (g - 1) / (g + 1)
	)
	if xi <= er.UStar {
		if er.PStar > er.PL {
			s := er.UL - er.aL*math.Sqrt((g+1)/(2*g)*er.PStar/er.PL+(g-1)/(2*g))
			if xi <= s {
				return er.RhoL, er.UL, er.PL
			}
			return er.RhoStarL, er.UStar, er.PStar
		}
		var (
			head = er.UL - er.aL
			tail = er.UStar - er.aL*math.Pow(er.PStar/er.PL, (g-1)/(2*g))
		)
		switch {
		case xi <= head:
			return er.RhoL, er.UL, er.PL
		case xi >= tail:
			return er.RhoStarL, er.UStar, er.PStar
		}
		c := 2/(g+1) + g1/er.aL*(er.UL-xi)
		rho = er.RhoL * math.Pow(c, 2/(g-1))
		u = 2 / (g + 1) * (er.aL + (g-1)/2*er.UL + xi)
		p = er.PL * math.Pow(c, 2*g/(g-1))
		return
	}
	if er.PStar > er.PR {
		s := er.UR + er.aR*math.Sqrt((g+1)/(2*g)*er.PStar/er.PR+(g-1)/(2*g))
		if xi >= s {
			return er.RhoR, er.UR, er.PR
		}
		return er.RhoStarR, er.UStar, er.PStar
	}
	var (
		head = er.UR + er.aR
		tail = er.UStar + er.aR*math.Pow(er.PStar/er.PR, (g-1)/(2*g))
	)
	switch {
	case xi >= head:
		return er.RhoR, er.UR, er.PR
	case xi <= tail:
		return er.RhoStarR, er.UStar, er.PStar
	}
	c := 2/(g+1) - g1/er.aR*(er.UR-xi)
	rho = er.RhoR * math.Pow(c, 2/(g-1))
	u = 2 / (g + 1) * (-er.aR + (g-1)/2*er.UR + xi)
	p = er.PR * math.Pow(c, 2*g/(g-1))
	return
}

// Profile evaluates the solution at time t on the points X. E is the specific internal energy.
func (er *ExactRiemann) Profile(t float64, X []float64) (Rho, U, P, E []float64) {
	Rho, U, P, E = make([]float64, len(X)), make([]float64, len(X)), make([]float64, len(X)), make([]float64, len(X))
	for i, x := range X {
		if t <= 0 {
			if x < er.X0 {
				Rho[i], U[i], P[i] = er.RhoL, er.UL, er.PL
			} else {
				Rho[i], U[i], P[i] = er.RhoR, er.UR, er.PR
			}
		} else {
			Rho[i], U[i], P[i] = er.Sample((x - er.X0) / t)
		}
		E[i] = P[i] / ((er.Gamma - 1) * Rho[i])
	}
	return
}

// CellAverages integrates the solution over uniform cells centered on X with width dx, using
// nSub midpoint samples per cell.
func (er *ExactRiemann) CellAverages(t float64, X []float64, dx float64, nSub int) (Rho, U, P []float64) {
	var (
		sub = make([]float64, nSub)
	)
	Rho, U, P = make([]float64, len(X)), make([]float64, len(X)), make([]float64, len(X))
	for i, x := range X {
		for s := range sub {
			sub[s] = x - 0.5*dx + (float64(s)+0.5)*dx/float64(nSub)
		}
		r, u, p, _ := er.Profile(t, sub)
		Rho[i], U[i], P[i] = floats.Sum(r)/float64(nSub), floats.Sum(u)/float64(nSub), floats.Sum(p)/float64(nSub)
	}
	return
}

// SOD_calc returns the Sod solution at time t sampled either side of each wave, suitable for a line
// plot on [0,1].
func SOD_calc(t float64) (X, Rho, P, U, E []float64) {
	var (
		er  = SodShockTube()
		w   = er.Waves(t)
		tol = 1.e-8
	)
	X = []float64{0}
	for i, x := range w {
		if i > 0 && x == w[i-1] {
			continue
		}
		X = append(X, x-tol, x+tol)
	}
	X = append(X, 1)
	Rho, U, P, E = er.Profile(t, X)
	return
}

// L1Error is the discrete L1 norm of the difference of two cell profiles on a uniform grid
func L1Error(computed, exact []float64, dx float64) float64 {
	return floats.Distance(computed, exact, 1) * dx
}
