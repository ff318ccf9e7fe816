// Package interp binds interpolation and extrapolation strategies to curve
// nodes and evaluates values, first derivatives and node sensitivities.
package interp

import (
	"fmt"
)

// Interpolator identifies an interpolation family by its registered name.
//
// The zero value is not a valid interpolator.
type Interpolator string

const (
	// TimeSquareInterpolator interpolates x*y^2 linearly and recovers y = sqrt(z/x).
	// Typically used on (time, volatility) nodes so that total variance is linear in time.
	TimeSquareInterpolator Interpolator = "TimeSquare"
	// LinearInterpolator interpolates y linearly.
	LinearInterpolator Interpolator = "Linear"
	// LogLinearInterpolator interpolates ln(y) linearly, as for discount factors.
	LogLinearInterpolator Interpolator = "LogLinear"
)

// rule is the interior behaviour of an interpolation family on interval i,
// where xs[i] <= x <= xs[i+1].
type rule interface {
	value(x float64, i int) float64
	firstDerivative(x float64, i int) float64
	// sensitivity writes d(value)/d(y[j]) into out; out is zeroed by the caller.
	sensitivity(x float64, i int, out []float64)
	// derivativeSensitivity writes d(firstDerivative)/d(y[j]) into out.
	derivativeSensitivity(x float64, i int, out []float64)
}

// Name returns the registered name.
func (ip Interpolator) Name() string { return string(ip) }

func (ip Interpolator) String() string { return string(ip) }

// Bind validates the nodes and returns an evaluator that uses left and right
// outside [x[0], x[n-1]].
func (ip Interpolator) Bind(x, y []float64, left, right Extrapolator) (*Bound, error) {
	nodes, err := NewNodeSet(x, y)
	if err != nil {
		return nil, err
	}
	return ip.BindNodes(nodes, left, right)
}

// BindNodes is Bind for an already validated node set.
func (ip Interpolator) BindNodes(nodes NodeSet, left, right Extrapolator) (*Bound, error) {
	if nodes.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidNodeSet, nodes.Len())
	}
	r, err := ip.newRule(nodes)
	if err != nil {
		return nil, err
	}
	leftExt, err := left.bindLeft(nodes, r)
	if err != nil {
		return nil, fmt.Errorf("left extrapolator: %w", err)
	}
	rightExt, err := right.bindRight(nodes, r)
	if err != nil {
		return nil, fmt.Errorf("right extrapolator: %w", err)
	}
	return &Bound{
		interpolator: ip,
		left:         left,
		right:        right,
		nodes:        nodes,
		rule:         r,
		leftExt:      leftExt,
		rightExt:     rightExt,
	}, nil
}

func (ip Interpolator) newRule(nodes NodeSet) (rule, error) {
	switch ip {
	case TimeSquareInterpolator:
		return newTimeSquare(nodes)
	case LinearInterpolator:
		return linear{xs: nodes.xs, ys: nodes.ys}, nil
	case LogLinearInterpolator:
		return newLogLinear(nodes)
	default:
		return nil, fmt.Errorf("%w: interpolator %q", ErrUnknownStrategyName, string(ip))
	}
}

// MarshalText encodes the interpolator as its name.
func (ip Interpolator) MarshalText() ([]byte, error) {
	if _, err := LookupInterpolator(string(ip)); err != nil {
		return nil, err
	}
	return []byte(ip), nil
}

// UnmarshalText resolves a name through the registry.
func (ip *Interpolator) UnmarshalText(text []byte) error {
	v, err := LookupInterpolator(string(text))
	if err != nil {
		return err
	}
	*ip = v
	return nil
}

// interval returns the bracketing nodes and the weight of the lower node.
func interval(xs []float64, x float64, i int) (x1, x2, w float64) {
	x1, x2 = xs[i], xs[i+1]
	w = (x2 - x) / (x2 - x1)
	return x1, x2, w
}
