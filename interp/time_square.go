package interp

import (
	"fmt"
	"math"
)

// timeSquare interpolates z = x*y^2 linearly on each interval and returns
// y = sqrt(z/x). Nodes must have x[0] > 0 and y > 0.
type timeSquare struct {
	xs, ys []float64
}

func newTimeSquare(nodes NodeSet) (timeSquare, error) {
	if nodes.First() <= 0 {
		return timeSquare{}, fmt.Errorf("%w: %s requires positive x-values, x[0] = %v", ErrDomain, TimeSquareInterpolator, nodes.First())
	}
	for i, y := range nodes.ys {
		if y <= 0 {
			return timeSquare{}, fmt.Errorf("%w: %s requires positive y-values, y[%d] = %v", ErrDomain, TimeSquareInterpolator, i, y)
		}
	}
	return timeSquare{xs: nodes.xs, ys: nodes.ys}, nil
}

// terms returns the lower weight w, the endpoint values a, b of z and the interval width.
func (t timeSquare) terms(x float64, i int) (w, a, b, h float64) {
	x1, x2, w := interval(t.xs, x, i)
	y1, y2 := t.ys[i], t.ys[i+1]
	return w, x1 * y1 * y1, x2 * y2 * y2, x2 - x1
}

func (t timeSquare) value(x float64, i int) float64 {
	w, a, b, _ := t.terms(x, i)
	return math.Sqrt((w*a + (1-w)*b) / x)
}

// firstDerivative of sqrt(z/x) is (z' - y^2) / (2xy) with z' the interval slope.
func (t timeSquare) firstDerivative(x float64, i int) float64 {
	w, a, b, h := t.terms(x, i)
	y := math.Sqrt((w*a + (1-w)*b) / x)
	slope := (b - a) / h
	return (slope - y*y) / (2 * x * y)
}

func (t timeSquare) sensitivity(x float64, i int, out []float64) {
	w, a, b, _ := t.terms(x, i)
	y := math.Sqrt((w*a + (1-w)*b) / x)
	out[i] = w * t.xs[i] * t.ys[i] / (x * y)
	out[i+1] = (1 - w) * t.xs[i+1] * t.ys[i+1] / (x * y)
}

func (t timeSquare) derivativeSensitivity(x float64, i int, out []float64) {
	w, a, b, h := t.terms(x, i)
	y := math.Sqrt((w*a + (1-w)*b) / x)
	slope := (b - a) / h
	d := (slope - y*y) / (2 * x * y)

	s1 := w * t.xs[i] * t.ys[i] / (x * y)
	s2 := (1 - w) * t.xs[i+1] * t.ys[i+1] / (x * y)
	dSlope1 := -2 * t.xs[i] * t.ys[i] / h
	dSlope2 := 2 * t.xs[i+1] * t.ys[i+1] / h

	out[i] = (dSlope1-2*y*s1)/(2*x*y) - d*s1/y
	out[i+1] = (dSlope2-2*y*s2)/(2*x*y) - d*s2/y
}
