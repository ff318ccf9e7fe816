package interp

import (
	"fmt"
	"math"
)

type linear struct {
	xs, ys []float64
}

func (l linear) value(x float64, i int) float64 {
	_, _, w := interval(l.xs, x, i)
	return w*l.ys[i] + (1-w)*l.ys[i+1]
}

func (l linear) firstDerivative(_ float64, i int) float64 {
	return (l.ys[i+1] - l.ys[i]) / (l.xs[i+1] - l.xs[i])
}

func (l linear) sensitivity(x float64, i int, out []float64) {
	_, _, w := interval(l.xs, x, i)
	out[i] = w
	out[i+1] = 1 - w
}

func (l linear) derivativeSensitivity(_ float64, i int, out []float64) {
	h := l.xs[i+1] - l.xs[i]
	out[i] = -1 / h
	out[i+1] = 1 / h
}

// logLinear interpolates ln(y) linearly. Nodes must have y > 0.
type logLinear struct {
	xs, ys, logs []float64
}

func newLogLinear(nodes NodeSet) (logLinear, error) {
	logs := make([]float64, nodes.Len())
	for i, y := range nodes.ys {
		if y <= 0 {
			return logLinear{}, fmt.Errorf("%w: %s requires positive y-values, y[%d] = %v", ErrDomain, LogLinearInterpolator, i, y)
		}
		logs[i] = math.Log(y)
	}
	return logLinear{xs: nodes.xs, ys: nodes.ys, logs: logs}, nil
}

func (l logLinear) value(x float64, i int) float64 {
	_, _, w := interval(l.xs, x, i)
	return math.Exp(w*l.logs[i] + (1-w)*l.logs[i+1])
}

func (l logLinear) logSlope(i int) float64 {
	return (l.logs[i+1] - l.logs[i]) / (l.xs[i+1] - l.xs[i])
}

func (l logLinear) firstDerivative(x float64, i int) float64 {
	return l.value(x, i) * l.logSlope(i)
}

func (l logLinear) sensitivity(x float64, i int, out []float64) {
	_, _, w := interval(l.xs, x, i)
	y := l.value(x, i)
	out[i] = w * y / l.ys[i]
	out[i+1] = (1 - w) * y / l.ys[i+1]
}

func (l logLinear) derivativeSensitivity(x float64, i int, out []float64) {
	_, _, w := interval(l.xs, x, i)
	h := l.xs[i+1] - l.xs[i]
	y := l.value(x, i)
	g := l.logSlope(i)
	s1 := w * y / l.ys[i]
	s2 := (1 - w) * y / l.ys[i+1]
	out[i] = s1*g - y/(h*l.ys[i])
	out[i+1] = s2*g + y/(h*l.ys[i+1])
}
