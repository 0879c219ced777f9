package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ConvergenceOrder is the least squares slope of log(err) against log(h), the observed order of
// accuracy of a refinement study.
func ConvergenceOrder(h, err []float64) (order float64, e error) {
	if len(h) != len(err) || len(h) < 2 {
		e = fmt.Errorf("need at least two matching samples, have %d spacings and %d errors", len(h), len(err))
		return
	}
	var (
		logH   = make([]float64, len(h))
		logErr = make([]float64, len(err))
	)
	for i := range h {
		if !(h[i] > 0) || !(err[i] > 0) {
			e = fmt.Errorf("spacing and error must be positive, have h[%d] = %v, err[%d] = %v", i, h[i], i, err[i])
			return
		}
		logH[i], logErr[i] = math.Log(h[i]), math.Log(err[i])
	}
	_, order = stat.LinearRegression(logH, logErr, nil, false)
	return
}
