package riemann

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/types"
)

type FluxType2D uint8

const (
	FLUX2D_HLLE1d FluxType2D = iota // Dimension by dimension HLLE on each face
	FLUX2D_HLLE2d                   // HLLE faces blended with genuinely 2D corner fluxes
)

var (
	Flux2DNames = map[string]FluxType2D{
		"hlle1d": FLUX2D_HLLE1d,
		"hlle":   FLUX2D_HLLE1d,
		"hlle2d": FLUX2D_HLLE2d,
	}
	Flux2DPrintNames = []string{"HLLE 1D", "HLLE 2D"}
)

func (ft FluxType2D) Print() (txt string) {
	txt = Flux2DPrintNames[ft]
	return
}

func (ft FluxType2D) String() string {
	if int(ft) >= len(Flux2DPrintNames) {
		return fmt.Sprintf("FluxType2D(%d)", ft)
	}
	return ft.Print()
}

func NewFluxType2D(label string) (ft FluxType2D, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if ft, ok = Flux2DNames[label]; !ok {
		err = types.NewConfigurationError("flux", "unable to use 2D flux named %q", label)
	}
	return
}

type cornerCell struct {
	Q      eos.State
	Pr     eos.Primitive
	Fx, Fy eos.State
}

func newCornerCell(g *eos.IdealGas, q eos.State) (c cornerCell, err error) {
	c.Q = q
	if c.Pr, err = g.Primitives(q); err != nil {
		return
	}
	c.Fx = g.FluxPrimitive(q, c.Pr, [2]float64{1, 0})
	c.Fy = g.FluxPrimitive(q, c.Pr, [2]float64{0, 1})
	return
}

// CornerFlux is the HLLE strongly interacting state evaluated at the vertex shared by four cells.
// It returns the x flux F* and y flux G* at the corner. Signal speeds bracket the four cell states
// and the Roe averages of the four edge sharing pairs, and are clamped to contain zero.
func CornerFlux(g *eos.IdealGas, sw, se, nw, ne eos.State) (F, G eos.State, err error) {
	var (
		cells [4]cornerCell
	)
	for i, q := range [4]eos.State{sw, se, nw, ne} {
		if cells[i], err = newCornerCell(g, q); err != nil {
			return
		}
	}
	var (
		SW, SE, NW, NE = &cells[0], &cells[1], &cells[2], &cells[3]
		rS, rN, rW, rE roeAverage
	)
	if rS, err = newRoeAverage(g, &SW.Pr, &SE.Pr); err != nil {
		return
	}
	if rN, err = newRoeAverage(g, &NW.Pr, &NE.Pr); err != nil {
		return
	}
	if rW, err = newRoeAverage(g, &SW.Pr, &NW.Pr); err != nil {
		return
	}
	if rE, err = newRoeAverage(g, &SE.Pr, &NE.Pr); err != nil {
		return
	}
	var (
		sWest  = minOf(0, SW.Pr.U-SW.Pr.A, NW.Pr.U-NW.Pr.A, rS.U-rS.A, rN.U-rN.A)
		sEast  = maxOf(0, SE.Pr.U+SE.Pr.A, NE.Pr.U+NE.Pr.A, rS.U+rS.A, rN.U+rN.A)
		sSouth = minOf(0, SW.Pr.V-SW.Pr.A, SE.Pr.V-SE.Pr.A, rW.V-rW.A, rE.V-rE.A)
		sNorth = maxOf(0, NW.Pr.V+NW.Pr.A, NE.Pr.V+NE.Pr.A, rW.V+rW.A, rE.V+rE.A)
		dx, dy = sEast - sWest, sNorth - sSouth
	)
	if !(dx > 0) || !(dy > 0) {
		err = types.NewDegeneracyError("corner flux", -1, "signal speed spans %v, %v", dx, dy)
		return
	}
	// Wall states are HLL averages along each wall, then one more HLL across the walls
	var (
		Uw, Ue, Us, Un eos.State
		Fw, Fe, Gs, Gn eos.State
	)
	for n := 0; n < 4; n++ {
		Uw[n] = (sNorth*NW.Q[n] - sSouth*SW.Q[n]) / dy
		Ue[n] = (sNorth*NE.Q[n] - sSouth*SE.Q[n]) / dy
		Fw[n] = (sNorth*NW.Fx[n] - sSouth*SW.Fx[n]) / dy
		Fe[n] = (sNorth*NE.Fx[n] - sSouth*SE.Fx[n]) / dy
		Us[n] = (sEast*SE.Q[n] - sWest*SW.Q[n]) / dx
		Un[n] = (sEast*NE.Q[n] - sWest*NW.Q[n]) / dx
		Gs[n] = (sEast*SE.Fy[n] - sWest*SW.Fy[n]) / dx
		Gn[n] = (sEast*NE.Fy[n] - sWest*NW.Fy[n]) / dx
	}
	for n := 0; n < 4; n++ {
		F[n] = (sEast*Fw[n] - sWest*Fe[n] + sWest*sEast*(Ue[n]-Uw[n])) / dx
		G[n] = (sNorth*Gs[n] - sSouth*Gn[n] + sSouth*sNorth*(Un[n]-Us[n])) / dy
	}
	return
}

// SimpsonBlend integrates a flux along a face from its two end corners and the face midpoint
func SimpsonBlend(cornerLo, face, cornerHi eos.State) (F eos.State) {
	for n := 0; n < 4; n++ {
		F[n] = (cornerLo[n] + 4*face[n] + cornerHi[n]) / 6
	}
	return
}

func minOf(vals ...float64) (m float64) {
	m = vals[0]
	for _, v := range vals[1:] {
		m = math.Min(m, v)
	}
	return
}

func maxOf(vals ...float64) (m float64) {
	m = vals[0]
	for _, v := range vals[1:] {
		m = math.Max(m, v)
	}
	return
}
