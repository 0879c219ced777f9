package FV2D

import (
	"fmt"

	"github.com/notargets/fvweno/types"
)

// Grid2D is an M x N array of uniform cells that includes one layer of ghost cells on every side.
// Cell (i,j) is stored at k = j*M + i, the interior is [1, M-1) x [1, N-1).
type Grid2D struct {
	M, N                   int
	XMin, XMax, YMin, YMax float64
	DX, DY                 float64
	XFaces, YFaces         []Face2D
	Corners                []Corner2D
}

// Face2D joins cell Lo (west or south) to cell Hi (east or north). CornerLo and CornerHi are the
// corners at the two ends of the face, ordered along the face.
type Face2D struct {
	Lo, Hi             int
	CornerLo, CornerHi int
	Edge               int // -1 on the west or south boundary, +1 on east or north, 0 inside
}

// Corner2D is the vertex shared by four cells
type Corner2D struct {
	SW, SE, NW, NE int
}

func NewGrid2D(M, N int, xMin, xMax, yMin, yMax float64) (g *Grid2D, err error) {
	if M < 3 || N < 3 {
		err = types.NewConfigurationError("grid 2D",
			"%d x %d cells leaves no interior inside one ghost layer", M, N)
		return
	}
	if !(xMax > xMin) || !(yMax > yMin) {
		err = types.NewConfigurationError("grid 2D",
			"domain [%v, %v] x [%v, %v] is empty", xMin, xMax, yMin, yMax)
		return
	}
	g = &Grid2D{
		M: M, N: N,
		XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax,
		DX: (xMax - xMin) / float64(M-2),
		DY: (yMax - yMin) / float64(N-2),
	}
	g.Corners = make([]Corner2D, (M-1)*(N-1))
	for j := 0; j < N-1; j++ {
		for i := 0; i < M-1; i++ {
			g.Corners[g.CornerIndex(i, j)] = Corner2D{
				SW: g.Index(i, j), SE: g.Index(i+1, j),
				NW: g.Index(i, j+1), NE: g.Index(i+1, j+1),
			}
		}
	}
	g.XFaces = make([]Face2D, (M-1)*(N-2))
	for j := 1; j < N-1; j++ {
		for i := 0; i < M-1; i++ {
			face := &g.XFaces[g.XFaceIndex(i, j)]
			face.Lo, face.Hi = g.Index(i, j), g.Index(i+1, j)
			face.CornerLo, face.CornerHi = g.CornerIndex(i, j-1), g.CornerIndex(i, j)
			face.Edge = edge(i, M-2)
		}
	}
	g.YFaces = make([]Face2D, (M-2)*(N-1))
	for j := 0; j < N-1; j++ {
		for i := 1; i < M-1; i++ {
			face := &g.YFaces[g.YFaceIndex(i, j)]
			face.Lo, face.Hi = g.Index(i, j), g.Index(i, j+1)
			face.CornerLo, face.CornerHi = g.CornerIndex(i-1, j), g.CornerIndex(i, j)
			face.Edge = edge(j, N-2)
		}
	}
	return
}

func edge(lo, last int) int {
	switch lo {
	case 0:
		return -1
	case last:
		return 1
	}
	return 0
}

func (g *Grid2D) Index(i, j int) int {
	return j*g.M + i
}

// IJ is the inverse of Index
func (g *Grid2D) IJ(k int) (i, j int) {
	return k % g.M, k / g.M
}

// CornerIndex addresses the corner at the north east of cell (i,j)
func (g *Grid2D) CornerIndex(i, j int) int {
	return j*(g.M-1) + i
}

// XFaceIndex addresses the face east of cell (i,j), j must be an interior row
func (g *Grid2D) XFaceIndex(i, j int) int {
	return (j-1)*(g.M-1) + i
}

// YFaceIndex addresses the face north of cell (i,j), i must be an interior column
func (g *Grid2D) YFaceIndex(i, j int) int {
	return j*(g.M-2) + i - 1
}

func (g *Grid2D) Interior(k int) bool {
	i, j := g.IJ(k)
	return i > 0 && i < g.M-1 && j > 0 && j < g.N-1
}

// Center is the cell center of (i,j), ghost cells lie outside the domain
func (g *Grid2D) Center(i, j int) (x, y float64) {
	x = g.XMin + (float64(i)-0.5)*g.DX
	y = g.YMin + (float64(j)-0.5)*g.DY
	return
}

func (g *Grid2D) String() string {
	return fmt.Sprintf("[%v, %v] x [%v, %v], %d x %d interior cells, dx = %8.5f, dy = %8.5f",
		g.XMin, g.XMax, g.YMin, g.YMax, g.M-2, g.N-2, g.DX, g.DY)
}
