package FV1D

import (
	"fmt"

	"github.com/notargets/fvweno/types"
)

// Grid1D is a uniform line of cells with R ghost cells at each end. Cell i is centered at X[i], the
// interior cells are [R, NX-R).
type Grid1D struct {
	K, R, NX       int // Interior cells, ghost width, total cells
	XMin, XMax, DX float64
	X              []float64
	Faces          []Face1D
}

// Face1D joins cell Left to cell Right = Left+1. Edge is -1 on the left domain boundary, +1 on the
// right, 0 otherwise.
type Face1D struct {
	Left, Right int
	X           float64
	Edge        int
}

func NewGrid1D(K, R int, xMin, xMax float64) (g *Grid1D, err error) {
	if K < 1 || R < 1 {
		err = types.NewConfigurationError("grid 1D",
			"%d cells is too small for ghost width %d (nx = %d <= 2R)", K, R, K+2*R)
		return
	}
	if !(xMax > xMin) {
		err = types.NewConfigurationError("grid 1D", "domain [%v, %v] is empty", xMin, xMax)
		return
	}
	g = &Grid1D{
		K: K, R: R, NX: K + 2*R,
		XMin: xMin, XMax: xMax,
		DX: (xMax - xMin) / float64(K),
	}
	g.X = make([]float64, g.NX)
	for i := range g.X {
		g.X[i] = xMin + (float64(i-R)+0.5)*g.DX
	}
	// Faces between interior cells and at both domain boundaries
	g.Faces = make([]Face1D, K+1)
	for f := range g.Faces {
		face := &g.Faces[f]
		face.Left, face.Right = f+R-1, f+R
		face.X = xMin + float64(f)*g.DX
		switch f {
		case 0:
			face.Edge = -1
		case K:
			face.Edge = 1
		}
	}
	return
}

// Interior reports whether cell i carries a meaningful residual
func (g *Grid1D) Interior(i int) bool {
	return i >= g.R && i < g.NX-g.R
}

// InteriorX returns the cell centers with the ghost cells stripped
func (g *Grid1D) InteriorX() (x []float64) {
	x = make([]float64, g.K)
	copy(x, g.X[g.R:g.NX-g.R])
	return
}

func (g *Grid1D) String() string {
	return fmt.Sprintf("[%v, %v] K = %d, R = %d, dx = %8.5f", g.XMin, g.XMax, g.K, g.R, g.DX)
}
