package InputParameters

import (
	"errors"
	"testing"

	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/weno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse1D(t *testing.T) {
	input := []byte(`
########################################
Title: "Shu Osher"
CFL: 0.4
FinalTime: 1.8
XMin: -5
XMax: 5
K: 400
Reconstruction: weno5
FluxType: Roe
InitType: ShuOsher
BCLeft: Out
BCRight: Wall
########################################
`)
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse(input))
	assert.Equal(t, "Shu Osher", ip.Title)
	assert.Equal(t, 400, ip.K)
	assert.Equal(t, 1.4, ip.Gamma, "unset keys keep their defaults")
	assert.Equal(t, -5., ip.XMin)

	method, ft, bcL, bcR, err := ip.Resolve()
	require.NoError(t, err)
	assert.Equal(t, weno.WENO5, method)
	assert.Equal(t, riemann.FLUX_Roe, ft)
	assert.Equal(t, types.BC_Out, bcL)
	assert.Equal(t, types.BC_Wall, bcR)
}

func TestResolve1DErrors(t *testing.T) {
	for _, modify := range []func(ip *InputParameters1D){
		func(ip *InputParameters1D) { ip.CFL = 0 },
		func(ip *InputParameters1D) { ip.FinalTime = -1 },
		func(ip *InputParameters1D) { ip.Gamma = 1 },
		func(ip *InputParameters1D) { ip.XMax = ip.XMin },
		func(ip *InputParameters1D) { ip.K = 0 },
		func(ip *InputParameters1D) { ip.Reconstruction = "ENO3" },
		func(ip *InputParameters1D) { ip.FluxType = "exact" },
		func(ip *InputParameters1D) { ip.BCRight = "inflow" },
		func(ip *InputParameters1D) { ip.MaxIterations = -3 },
		func(ip *InputParameters1D) { ip.Epsilon = -1e-6 },
	} {
		ip := NewInputParameters1D()
		modify(ip)
		_, _, _, _, err := ip.Resolve()
		assert.True(t, errors.Is(err, types.ErrConfiguration), "%v", err)
	}
	_, _, _, _, err := NewInputParameters1D().Resolve()
	assert.NoError(t, err)
}

func TestParse2D(t *testing.T) {
	input := []byte(`
Title: "Quadrants"
M: 64
N: 32
FluxType: HLLE1d
InitType: Quadrant6
BCs:
  West: Wall
  North: Out
`)
	ip := NewInputParameters2D()
	require.NoError(t, ip.Parse(input))
	assert.Equal(t, 64, ip.M)
	assert.Equal(t, 32, ip.N)
	ft, bcs, err := ip.Resolve()
	require.NoError(t, err)
	assert.Equal(t, riemann.FLUX2D_HLLE1d, ft)
	assert.Equal(t, [4]types.BCFLAG{types.BC_Wall, types.BC_Out, types.BC_Out, types.BC_Out}, bcs)

	ip.BCs["Top"] = "Wall"
	_, _, err = ip.Resolve()
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	delete(ip.BCs, "Top")
	ip.YMax = ip.YMin
	_, _, err = ip.Resolve()
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}
