package interp

import "fmt"

// Bound is an interpolator attached to a node set and two extrapolators.
//
// A Bound is immutable after construction and safe for concurrent use.
type Bound struct {
	interpolator Interpolator
	left, right  Extrapolator
	nodes        NodeSet

	rule     rule
	leftExt  boundExtrapolator
	rightExt boundExtrapolator
}

// Eval returns the curve value at x. Values outside the node range come from
// the left or right extrapolator.
func (b *Bound) Eval(x float64) float64 {
	switch {
	case x < b.nodes.First():
		return b.leftExt.value(x)
	case x > b.nodes.Last():
		return b.rightExt.value(x)
	default:
		return b.rule.value(x, b.nodes.lowerIndex(x))
	}
}

// EvalAll evaluates the curve at every x. If an output slice is given the
// result is written to it (and still returned as a convenience). It must be
// at least len(xs) long; EvalAll panics otherwise.
//
// If more than one output slice is provided, only the first is used.
func (b *Bound) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	if len(out[0]) < len(xs) {
		panic(fmt.Sprintf("interp: EvalAll output length %d is shorter than input length %d", len(out[0]), len(xs)))
	}
	for i, x := range xs {
		out[0][i] = b.Eval(x)
	}
	return out[0]
}

// FirstDerivative returns the analytic derivative at x. At a node shared by two
// intervals the derivative of the interval starting at that node is used, and
// at the last node that of the last interval.
func (b *Bound) FirstDerivative(x float64) float64 {
	switch {
	case x < b.nodes.First():
		return b.leftExt.firstDerivative(x)
	case x > b.nodes.Last():
		return b.rightExt.firstDerivative(x)
	default:
		return b.rule.firstDerivative(x, b.nodes.lowerIndex(x))
	}
}

// ParameterSensitivity returns d(Eval(x))/d(y[i]) for every node i.
func (b *Bound) ParameterSensitivity(x float64) []float64 {
	out := make([]float64, b.nodes.Len())
	switch {
	case x < b.nodes.First():
		b.leftExt.sensitivity(x, out)
	case x > b.nodes.Last():
		b.rightExt.sensitivity(x, out)
	default:
		b.rule.sensitivity(x, b.nodes.lowerIndex(x), out)
	}
	return out
}

// Nodes returns the bound node set.
func (b *Bound) Nodes() NodeSet { return b.nodes }

// Interpolator returns the interior interpolation family.
func (b *Bound) Interpolator() Interpolator { return b.interpolator }

// LeftExtrapolator returns the extrapolator used below the first node.
func (b *Bound) LeftExtrapolator() Extrapolator { return b.left }

// RightExtrapolator returns the extrapolator used above the last node.
func (b *Bound) RightExtrapolator() Extrapolator { return b.right }
