package weno

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/utils"
)

/*
	Face reconstruction from cell averages.

	A face stencil holds 2R cell averages, s[R-1] is the cell left of the face and s[R] the cell right of it.
	The left state uses s[0:2R-1], the right state is the mirror image of the same formula applied to
	s[2R-1] down to s[1].

	Reconstruction is applied to each conserved variable independently. Full characteristic-wise WENO
	(projection onto the eigenvectors of the flux Jacobian before weighting) is not done, so mild
	oscillations can remain at strong shocks for the 7th order stencils.
*/

type Method uint8

const (
	WENO5 Method = iota
	WENO7
	Poly5
	Poly7
)

var (
	MethodNames = map[string]Method{
		"weno5": WENO5,
		"weno7": WENO7,
		"poly5": Poly5,
		"poly7": Poly7,
	}
	MethodPrintNames = []string{"WENO5", "WENO7", "Poly5", "Poly7"}
)

const DefaultEpsilon = 1.e-6

func (m Method) Print() (txt string) {
	txt = MethodPrintNames[m]
	return
}

func (m Method) String() string {
	if int(m) >= len(MethodPrintNames) {
		return fmt.Sprintf("Method(%d)", m)
	}
	return m.Print()
}

func NewMethod(label string) (m Method, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if m, ok = MethodNames[label]; !ok {
		err = types.NewConfigurationError("reconstruction", "unable to use reconstruction named %q", label)
	}
	return
}

// Radius is the ghost cell width R needed by the stencil
func (m Method) Radius() int {
	switch m {
	case WENO7, Poly7:
		return 4
	default:
		return 3
	}
}

func (m Method) Order() int {
	return 2*m.Radius() - 1
}

func (m Method) IsWENO() bool {
	return m == WENO5 || m == WENO7
}

type Reconstructor struct {
	Method  Method
	Epsilon float64
	width   int
	left    func(v []float64, eps float64) (float64, error)
	right   func(v []float64, eps float64) (float64, error)
}

func NewReconstructor(m Method) (r *Reconstructor, err error) {
	r = &Reconstructor{
		Method:  m,
		Epsilon: DefaultEpsilon,
		width:   2 * m.Radius(),
	}
	switch m {
	case WENO5:
		r.left, r.right = weno5Left, weno5Right
	case WENO7:
		r.left, r.right = weno7Left, weno7Right
	case Poly5:
		r.left, r.right = poly5Left, poly5Right
	case Poly7:
		r.left, r.right = poly7Left, poly7Right
	default:
		r, err = nil, types.NewConfigurationError("reconstruction", "unknown reconstruction method %d", m)
	}
	return
}

// WithEpsilon returns a copy using a different weight regularization constant
func (r *Reconstructor) WithEpsilon(eps float64) *Reconstructor {
	cp := *r
	cp.Epsilon = eps
	return &cp
}

// Width is the number of cell averages in a face stencil
func (r *Reconstructor) Width() int {
	return r.width
}

// Face reconstructs the two states at the face in the middle of stencil s
func (r *Reconstructor) Face(s []float64) (qL, qR float64, err error) {
	if len(s) != r.width {
		panic(fmt.Errorf("stencil width %d does not match %s width %d", len(s), r.Method, r.width))
	}
	if qL, err = r.left(s, r.Epsilon); err != nil {
		return
	}
	qR, err = r.right(s, r.Epsilon)
	return
}

func normalize(a []float64, p []float64) (f float64, err error) {
	var sum, num float64
	for k := range a {
		sum += a[k]
		num += a[k] * p[k]
	}
	if !(sum > 0) || !utils.IsFinite(sum) || !utils.IsFinite(num) {
		err = types.NewDegeneracyError("weno weights", -1, "sum of nonlinear weights = %v", sum)
		return
	}
	f = num / sum
	return
}

func weno5Left(s []float64, eps float64) (float64, error) {
	return weno5(s[0], s[1], s[2], s[3], s[4], eps)
}

func weno5Right(s []float64, eps float64) (float64, error) {
	return weno5(s[5], s[4], s[3], s[2], s[1], eps)
}

// Jiang and Shu, v2 is the upwind cell and the face lies between v2 and v3
func weno5(v0, v1, v2, v3, v4, eps float64) (f float64, err error) {
	const c13o12 = 13. / 12.
	var (
		p = [3]float64{
			(2*v0 - 7*v1 + 11*v2) / 6,
			(-v1 + 5*v2 + 2*v3) / 6,
			(2*v2 + 5*v3 - v4) / 6,
		}
		beta = [3]float64{
			c13o12*utils.POW(v0-2*v1+v2, 2) + 0.25*utils.POW(v0-4*v1+3*v2, 2),
			c13o12*utils.POW(v1-2*v2+v3, 2) + 0.25*utils.POW(v1-v3, 2),
			c13o12*utils.POW(v2-2*v3+v4, 2) + 0.25*utils.POW(3*v2-4*v3+v4, 2),
		}
		d = [3]float64{0.1, 0.6, 0.3}
		a [3]float64
	)
	for k := range a {
		a[k] = d[k] / utils.POW(eps+beta[k], 2)
	}
	return normalize(a[:], p[:])
}

func weno7Left(s []float64, eps float64) (float64, error) {
	return weno7(s[0], s[1], s[2], s[3], s[4], s[5], s[6], eps)
}

func weno7Right(s []float64, eps float64) (float64, error) {
	return weno7(s[7], s[6], s[5], s[4], s[3], s[2], s[1], eps)
}

// Balsara and Shu, v3 is the upwind cell and the face lies between v3 and v4
func weno7(v0, v1, v2, v3, v4, v5, v6, eps float64) (f float64, err error) {
	var (
		p = [4]float64{
			(-3*v0 + 13*v1 - 23*v2 + 25*v3) / 12,
			(v1 - 5*v2 + 13*v3 + 3*v4) / 12,
			(-v2 + 7*v3 + 7*v4 - v5) / 12,
			(3*v3 + 13*v4 - 5*v5 + v6) / 12,
		}
		beta = [4]float64{
			v0*(547*v0-3882*v1+4642*v2-1854*v3) + v1*(7043*v1-17246*v2+7042*v3) +
				v2*(11003*v2-9402*v3) + 2107*v3*v3,
			v1*(267*v1-1642*v2+1602*v3-494*v4) + v2*(2843*v2-5966*v3+1922*v4) +
				v3*(3443*v3-2522*v4) + 547*v4*v4,
			v2*(547*v2-2522*v3+1922*v4-494*v5) + v3*(3443*v3-5966*v4+1602*v5) +
				v4*(2843*v4-1642*v5) + 267*v5*v5,
			v3*(2107*v3-9402*v4+7042*v5-1854*v6) + v4*(11003*v4-17246*v5+4642*v6) +
				v5*(7043*v5-3882*v6) + 547*v6*v6,
		}
		d = [4]float64{1. / 35., 12. / 35., 18. / 35., 4. / 35.}
		a [4]float64
	)
	for k := range a {
		// The quadratic forms are non-negative, rounding can leave a tiny negative remainder
		a[k] = d[k] / utils.POW(eps+math.Abs(beta[k]), 2)
	}
	return normalize(a[:], p[:])
}

func poly5Left(s []float64, _ float64) (float64, error) {
	return poly5(s[0], s[1], s[2], s[3], s[4]), nil
}

func poly5Right(s []float64, _ float64) (float64, error) {
	return poly5(s[5], s[4], s[3], s[2], s[1]), nil
}

// The linear weights applied to the WENO5 candidates
func poly5(v0, v1, v2, v3, v4 float64) float64 {
	return (2*v0 - 13*v1 + 47*v2 + 27*v3 - 3*v4) / 60
}

func poly7Left(s []float64, _ float64) (float64, error) {
	return poly7(s[0], s[1], s[2], s[3], s[4], s[5], s[6]), nil
}

func poly7Right(s []float64, _ float64) (float64, error) {
	return poly7(s[7], s[6], s[5], s[4], s[3], s[2], s[1]), nil
}

func poly7(v0, v1, v2, v3, v4, v5, v6 float64) float64 {
	return (-3*v0 + 25*v1 - 101*v2 + 319*v3 + 214*v4 - 38*v5 + 4*v6) / 420
}
