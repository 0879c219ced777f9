package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	studies, err := readCSV(strings.NewReader(`Title,NumCells,Method,CFL,RhoL1,RhoLinf
DensityWave,50,WENO5,0.5,3.2e-4,5.0e-4
DensityWave,100,WENO5,0.5,1.0e-5,1.5625e-5
DensityWave,200,WENO5,0.5,3.125e-7,4.8828125e-7
DensityWave,50,Poly7,0.5,1.0e-3,2.0e-3
DensityWave,100,Poly7,0.5,7.8125e-6,1.5625e-5
`))
	require.NoError(t, err)
	require.Len(t, studies, 2)
	cs := studies["DensityWaveWENO5"]
	assert.Equal(t, []int{50, 100, 200}, cs.numCells)
	l1, linf, err := cs.Orders()
	require.NoError(t, err)
	assert.InDelta(t, 5, l1, 1.e-9)
	assert.InDelta(t, 5, linf, 1.e-9)
	l1, _, err = studies["DensityWavePoly7"].Orders()
	require.NoError(t, err)
	assert.InDelta(t, 7, l1, 1.e-9)

	_, err = readCSV(strings.NewReader("Title,NumCells,Method,CFL,RhoL1,RhoLinf\nSod,fifty,WENO5,0.5,1,1\n"))
	assert.Error(t, err)
}
