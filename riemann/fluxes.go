package riemann

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/types"
)

type FluxType uint8

const (
	FLUX_HLLE FluxType = iota
	FLUX_HLLC
	FLUX_Roe
	FLUX_LaxFriedrichs
	FLUX_Rusanov
	FLUX_AUSM
)

var (
	FluxNames = map[string]FluxType{
		"hlle":    FLUX_HLLE,
		"hllc":    FLUX_HLLC,
		"roe":     FLUX_Roe,
		"lf":      FLUX_LaxFriedrichs,
		"lax":     FLUX_LaxFriedrichs,
		"rus":     FLUX_Rusanov,
		"rusanov": FLUX_Rusanov,
		"ausm":    FLUX_AUSM,
	}
	FluxPrintNames = []string{"HLLE", "HLLC", "Roe", "Lax Friedrichs", "Rusanov", "AUSM+"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func (ft FluxType) String() string {
	if int(ft) >= len(FluxPrintNames) {
		return fmt.Sprintf("FluxType(%d)", ft)
	}
	return ft.Print()
}

func NewFluxType(label string) (ft FluxType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if ft, ok = FluxNames[label]; !ok {
		err = types.NewConfigurationError("flux", "unable to use flux named %q", label)
	}
	return
}

// faceState is one side of a face in the face normal frame: U is the normal velocity, V the tangential.
type faceState struct {
	Q  eos.State
	Pr eos.Primitive
	F  eos.State // Physical flux through the face
}

type fluxFunc func(g *eos.IdealGas, L, R *faceState, lambdaMax float64) (F eos.State, err error)

// Solver evaluates the numerical flux through a face with unit normal. The flux family is resolved
// once, here, into a function pointer.
type Solver struct {
	Gas  *eos.IdealGas
	Type FluxType
	calc fluxFunc
}

func NewSolver(gas *eos.IdealGas, ft FluxType) (s *Solver, err error) {
	s = &Solver{Gas: gas, Type: ft}
	switch ft {
	case FLUX_HLLE:
		s.calc = hlle
	case FLUX_HLLC:
		s.calc = hllc
	case FLUX_Roe:
		s.calc = roe
	case FLUX_LaxFriedrichs:
		s.calc = laxFriedrichs
	case FLUX_Rusanov:
		s.calc = rusanov
	case FLUX_AUSM:
		s.calc = ausmPlus
	default:
		s, err = nil, types.NewConfigurationError("flux", "unknown flux type %d", ft)
	}
	return
}

// Flux returns the numerical flux from qL to qR through a face with unit normal. lambdaMax is the
// global maximum wave speed, used only by the Lax Friedrichs flux.
func (s *Solver) Flux(qL, qR eos.State, normal [2]float64, lambdaMax float64) (F eos.State, err error) {
	var (
		L, R faceState
	)
	if err = s.prepare(&L, qL, normal); err != nil {
		return
	}
	if err = s.prepare(&R, qR, normal); err != nil {
		return
	}
	var Fn eos.State
	if Fn, err = s.calc(s.Gas, &L, &R, lambdaMax); err != nil {
		return
	}
	F = unrotate(Fn, normal)
	return
}

func (s *Solver) prepare(fs *faceState, q eos.State, normal [2]float64) (err error) {
	fs.Q = rotate(q, normal)
	if fs.Pr, err = s.Gas.Primitives(fs.Q); err != nil {
		return
	}
	fs.F = s.Gas.FluxPrimitive(fs.Q, fs.Pr, [2]float64{1, 0})
	return
}

// rotate expresses momentum in (normal, tangent) components
func rotate(q eos.State, n [2]float64) eos.State {
	return eos.State{q[0], q[1]*n[0] + q[2]*n[1], -q[1]*n[1] + q[2]*n[0], q[3]}
}

func unrotate(f eos.State, n [2]float64) eos.State {
	return eos.State{f[0], f[1]*n[0] - f[2]*n[1], f[1]*n[1] + f[2]*n[0], f[3]}
}

type roeAverage struct {
	Rho, U, V, H, A float64
}

func newRoeAverage(g *eos.IdealGas, L, R *eos.Primitive) (ra roeAverage, err error) {
	var (
		sL, sR = math.Sqrt(L.Rho), math.Sqrt(R.Rho)
		den    = sL + sR
	)
	ra.Rho = sL * sR
	ra.U = (sL*L.U + sR*R.U) / den
	ra.V = (sL*L.V + sR*R.V) / den
	ra.H = (sL*L.H + sR*R.H) / den
	c2 := (g.Gamma - 1) * (ra.H - 0.5*(ra.U*ra.U+ra.V*ra.V))
	if !(c2 > 0) || math.IsInf(c2, 0) {
		err = types.NewDegeneracyError("roe average", -1, "sound speed squared = %v", c2)
		return
	}
	ra.A = math.Sqrt(c2)
	return
}

func hllBlend(SL, SR float64, L, R *faceState) (F eos.State, err error) {
	den := SR - SL
	if !(den > 0) {
		err = types.NewDegeneracyError("hll blend", -1, "S_R - S_L = %v", den)
		return
	}
	for n := 0; n < 4; n++ {
		F[n] = (SR*L.F[n] - SL*R.F[n] + SL*SR*(R.Q[n]-L.Q[n])) / den
	}
	return
}
