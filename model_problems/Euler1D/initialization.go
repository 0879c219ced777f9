package Euler1D

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/fvweno/sod_shock_tube"
	"github.com/notargets/fvweno/types"
)

type CaseType uint8

const (
	SOD CaseType = iota
	LAX
	SHU_OSHER
	DOUBLE_RAREFACTION
	DENSITY_WAVE
)

var (
	CaseNames = map[string]CaseType{
		"sod":               SOD,
		"lax":               LAX,
		"shuosher":          SHU_OSHER,
		"shu-osher":         SHU_OSHER,
		"123":               DOUBLE_RAREFACTION,
		"doublerarefaction": DOUBLE_RAREFACTION,
		"densitywave":       DENSITY_WAVE,
	}
	CasePrintNames = []string{"Sod Shock Tube", "Lax Shock Tube", "Shu Osher Shock Entropy Interaction",
		"123 Double Rarefaction", "Advected Density Wave"}
)

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func NewCaseType(label string) (ct CaseType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if ct, ok = CaseNames[label]; !ok {
		err = types.NewConfigurationError("init", "unable to use init type named %q, must be one of %v",
			label, keys())
	}
	return
}

func keys() (k []string) {
	for key := range CaseNames {
		k = append(k, key)
	}
	sort.Strings(k)
	return
}

// riemannStates returns the left and right primitive states (rho, u, p) of the shock tube cases
func (ct CaseType) riemannStates() (left, right [3]float64, ok bool) {
	switch ct {
	case SOD:
		return [3]float64{1, 0, 1}, [3]float64{0.125, 0, 0.1}, true
	case LAX:
		return [3]float64{0.445, 0.698, 3.528}, [3]float64{0.5, 0, 0.571}, true
	case DOUBLE_RAREFACTION:
		return [3]float64{1, -2, 0.4}, [3]float64{1, 2, 0.4}, true
	}
	return
}

// MaxCFL is the largest CFL a case runs at without losing positivity, zero when unlimited. The near
// vacuum between the two rarefactions of the 123 case needs a smaller step.
func (ct CaseType) MaxCFL() float64 {
	if ct == DOUBLE_RAREFACTION {
		return 0.2
	}
	return 0
}

func (c *Euler) diaphragm() float64 {
	g := c.Grid
	if c.Case == SHU_OSHER {
		return g.XMin + 0.1*(g.XMax-g.XMin)
	}
	return 0.5 * (g.XMin + g.XMax)
}

func (c *Euler) waveNumber() float64 {
	return 2 * math.Pi / (c.Grid.XMax - c.Grid.XMin)
}

// InitializeSolution sets every cell, ghosts included, to the cell average of the initial condition
func (c *Euler) InitializeSolution() (err error) {
	var (
		g  = c.Grid
		x0 = c.diaphragm()
	)
	if left, right, ok := c.Case.riemannStates(); ok {
		if c.Exact, err = sod_shock_tube.NewExactRiemann(c.Gas.Gamma,
			left[0], left[1], left[2], right[0], right[1], right[2], x0); err != nil {
			return
		}
	}
	for i, x := range g.X {
		var rho, u, p float64
		switch c.Case {
		case SOD, LAX, DOUBLE_RAREFACTION:
			left, right, _ := c.Case.riemannStates()
			st := right
			if x < x0 {
				st = left
			}
			rho, u, p = st[0], st[1], st[2]
		case SHU_OSHER:
			if x < x0 {
				rho, u, p = 3.857143, 2.629369, 10.33333
			} else {
				rho, u, p = 1+0.2*math.Sin(5*x), 0, 1
			}
		case DENSITY_WAVE:
			rho, u, p = c.densityWaveAverage(x, 0), 1, 1
		default:
			return types.NewConfigurationError("init", "unknown case %d", c.Case)
		}
		q := c.Gas.Conserved1D(rho, u, p)
		copy(c.Q[i*3:], q[:])
	}
	c.Residual.BoundaryConditions(c.Q)
	return
}

// densityWaveAverage is the exact cell average of rho = 1 + 0.2 sin(k(x - t)) over the cell at x
func (c *Euler) densityWaveAverage(x, t float64) float64 {
	var (
		k  = c.waveNumber()
		dx = c.Grid.DX
		x1 = c.Grid.XMin
	)
	return 1 + 0.2*(math.Cos(k*(x-0.5*dx-t-x1))-math.Cos(k*(x+0.5*dx-t-x1)))/(k*dx)
}

// ExactDensity returns the exact interior cell averaged density at the current time, if the case has
// a closed form solution
func (c *Euler) ExactDensity() (rho []float64, err error) {
	var (
		X = c.Grid.InteriorX()
	)
	switch {
	case c.Exact != nil:
		rho, _, _ = c.Exact.CellAverages(c.Time, X, c.Grid.DX, 16)
	case c.Case == DENSITY_WAVE:
		rho = make([]float64, len(X))
		for i, x := range X {
			rho[i] = c.densityWaveAverage(x, c.Time)
		}
	default:
		err = fmt.Errorf("no exact solution for %s", c.Case.Print())
	}
	return
}
