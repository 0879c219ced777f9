package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProfile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, []string{"x", "rho"}, []float64{0.25, 0.75}, []float64{1, 0.125}))
	assert.Equal(t, "x,rho\n0.25,1\n0.75,0.125\n", buf.String())

	assert.Error(t, WriteProfile(&buf, []string{"x"}, []float64{0}, []float64{1}))
	assert.Error(t, WriteProfile(&buf, []string{"x", "rho"}, []float64{0}, []float64{1, 2}))
	_, _, err := ReadProfile(strings.NewReader("x,rho\n0.1,abc\n"))
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	var (
		dir  = t.TempDir()
		x    = make([]float64, 500)
		rho  = make([]float64, 500)
		size = map[string]int64{}
	)
	for i := range x {
		x[i] = (float64(i) + 0.5) / 500
		rho[i] = 1
		if x[i] > 0.5 {
			rho[i] = 0.125
		}
	}
	for _, name := range []string{"sod.csv", "sod.csv.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, []string{"x", "rho"}, x, rho))
		names, cols, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "rho"}, names)
		assert.Equal(t, x, cols[0])
		assert.Equal(t, rho, cols[1])
		fi, err := os.Stat(path)
		require.NoError(t, err)
		size[name] = fi.Size()
	}
	assert.Less(t, size["sod.csv.zst"], size["sod.csv"])
}
