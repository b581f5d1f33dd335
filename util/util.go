package util

import (
	"math"
)

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	switch n {
	case 0:
		return out
	case 1:
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Full returns n copies of v.
func Full(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Circle samples a circle of radius r around (cx, cy) at parameters t.
func Circle(t []float64, r, cx, cy float64) (x, y []float64) {
	x = make([]float64, len(t))
	y = make([]float64, len(t))
	for i, v := range t {
		x[i] = cx + r*math.Cos(v)
		y[i] = cy + r*math.Sin(v)
	}
	return x, y
}
