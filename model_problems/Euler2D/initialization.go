package Euler2D

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/fvweno/FV2D"
	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/model_problems/Euler2D/isentropic_vortex"
	"github.com/notargets/fvweno/sod_shock_tube"
	"github.com/notargets/fvweno/types"
)

type InitType uint8

const (
	FREESTREAM InitType = iota
	SHOCKTUBE
	QUADRANT3
	QUADRANT6
	IVORTEX
)

var (
	InitNames = map[string]InitType{
		"freestream": FREESTREAM,
		"fs":         FREESTREAM,
		"shocktube":  SHOCKTUBE,
		"sod":        SHOCKTUBE,
		"quadrant3":  QUADRANT3,
		"quadrant6":  QUADRANT6,
		"ivortex":    IVORTEX,
	}
	InitPrintNames = []string{"Uniform Freestream", "Planar Sod Shock Tube",
		"Lax Liu Riemann Configuration 3", "Lax Liu Riemann Configuration 6", "Isentropic Vortex"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		keys := make([]string, 0, len(InitNames))
		for key := range InitNames {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		err = types.NewConfigurationError("init", "unable to use init type named %q, must be one of %v",
			label, keys)
	}
	return
}

// quadrantStates are the primitive states (rho, u, v, p) in the NE, NW, SW, SE quadrants
func (it InitType) quadrantStates() (st [4][4]float64) {
	switch it {
	case QUADRANT3:
		st = [4][4]float64{
			{1.5, 0, 0, 1.5},
			{0.5323, 1.206, 0, 0.3},
			{0.138, 1.206, 1.206, 0.029},
			{0.5323, 0, 1.206, 0.3},
		}
	case QUADRANT6:
		st = [4][4]float64{
			{1, 0.75, -0.5, 1},
			{2, 0.75, 0.5, 1},
			{1, -0.75, 0.5, 1},
			{3, -0.75, -0.5, 1},
		}
	}
	return
}

// FreeStream is the uniform state of unit density and unit sound speed at Mach Minf, flow angle Alpha
type FreeStream struct {
	Minf, Alpha float64
	Qinf        eos.State
}

func NewFreeStream(gas *eos.IdealGas, Minf, Alpha float64) (fs *FreeStream) {
	var (
		uinf = Minf * math.Cos(Alpha*math.Pi/180.)
		vinf = Minf * math.Sin(Alpha*math.Pi/180.)
	)
	fs = &FreeStream{
		Minf:  Minf,
		Alpha: Alpha,
		Qinf:  gas.Conserved(1, uinf, vinf, 1/gas.Gamma),
	}
	return
}

func (c *Euler) center() (x0, y0 float64) {
	g := c.Grid
	return 0.5 * (g.XMin + g.XMax), 0.5 * (g.YMin + g.YMax)
}

// InitializeSolution sets every cell, ghosts included, from the initial condition at its center
func (c *Euler) InitializeSolution() (err error) {
	var (
		g      = c.Grid
		x0, y0 = c.center()
	)
	switch c.Case {
	case SHOCKTUBE:
		if c.Exact, err = sod_shock_tube.NewExactRiemann(c.Gas.Gamma, 1, 0, 1, 0.125, 0, 0.1, x0); err != nil {
			return
		}
	case IVORTEX:
		c.Vortex = isentropic_vortex.NewIVortex(c.Gas, 5, x0, y0)
	}
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.M; i++ {
			var (
				x, y = g.Center(i, j)
				q    eos.State
			)
			switch c.Case {
			case FREESTREAM:
				q = c.FS.Qinf
			case SHOCKTUBE:
				if x < x0 {
					q = c.Gas.Conserved(1, 0, 0, 1)
				} else {
					q = c.Gas.Conserved(0.125, 0, 0, 0.1)
				}
			case QUADRANT3, QUADRANT6:
				var (
					st = c.Case.quadrantStates()
					s  int
				)
				switch {
				case x >= x0 && y >= y0:
					s = 0
				case x < x0 && y >= y0:
					s = 1
				case x < x0:
					s = 2
				default:
					s = 3
				}
				q = c.Gas.Conserved(st[s][0], st[s][1], st[s][2], st[s][3])
			case IVORTEX:
				q = c.Vortex.State(0, x, y)
			default:
				return types.NewConfigurationError("init", "unknown case %d", c.Case)
			}
			copy(c.Q[g.Index(i, j)*FV2D.NComp:], q[:])
		}
	}
	c.Residual.BoundaryConditions(c.Q)
	return
}

// ExactDensity returns the exact interior density at the current time in the layout of
// InteriorProfile, for the cases that have one
func (c *Euler) ExactDensity() (rho []float64, err error) {
	var (
		g      = c.Grid
		rowRho []float64
	)
	if c.Case == SHOCKTUBE {
		X := make([]float64, g.M-2)
		for i := range X {
			X[i], _ = g.Center(i+1, 1)
		}
		rowRho, _, _ = c.Exact.CellAverages(c.Time, X, g.DX, 16)
	}
	rho = make([]float64, 0, (g.M-2)*(g.N-2))
	for j := 1; j < g.N-1; j++ {
		for i := 1; i < g.M-1; i++ {
			x, y := g.Center(i, j)
			switch c.Case {
			case FREESTREAM:
				rho = append(rho, c.FS.Qinf[0])
			case SHOCKTUBE:
				rho = append(rho, rowRho[i-1])
			case IVORTEX:
				rho = append(rho, c.Vortex.Primitives(c.Time, x, y).Rho)
			default:
				return nil, fmt.Errorf("no exact solution for %s", c.Case.Print())
			}
		}
	}
	return
}
