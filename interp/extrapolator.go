package interp

import "fmt"

// Extrapolator identifies the behaviour of a curve outside its node range.
type Extrapolator string

const (
	// FlatExtrapolator holds the boundary node value constant.
	FlatExtrapolator Extrapolator = "Flat"
	// LinearExtrapolator continues along the tangent of the interior curve at the boundary node.
	LinearExtrapolator Extrapolator = "Linear"
)

// boundExtrapolator evaluates one side of a bound curve.
type boundExtrapolator interface {
	value(x float64) float64
	firstDerivative(x float64) float64
	sensitivity(x float64, out []float64)
}

// Name returns the registered name.
func (e Extrapolator) Name() string { return string(e) }

func (e Extrapolator) String() string { return string(e) }

func (e Extrapolator) bindLeft(nodes NodeSet, r rule) (boundExtrapolator, error) {
	return e.bind(nodes, r, 0, 0)
}

func (e Extrapolator) bindRight(nodes NodeSet, r rule) (boundExtrapolator, error) {
	n := nodes.Len()
	return e.bind(nodes, r, n-1, n-2)
}

// bind anchors the extrapolator at node index using the interior rule on interval.
func (e Extrapolator) bind(nodes NodeSet, r rule, index, interval int) (boundExtrapolator, error) {
	switch e {
	case FlatExtrapolator:
		return flat{y: nodes.ys[index], index: index}, nil
	case LinearExtrapolator:
		x0 := nodes.xs[index]
		dSens := make([]float64, nodes.Len())
		r.derivativeSensitivity(x0, interval, dSens)
		return linearExtrapolator{
			x0:    x0,
			y0:    nodes.ys[index],
			slope: r.firstDerivative(x0, interval),
			index: index,
			dSens: dSens,
		}, nil
	default:
		return nil, fmt.Errorf("%w: extrapolator %q", ErrUnknownStrategyName, string(e))
	}
}

// MarshalText encodes the extrapolator as its name.
func (e Extrapolator) MarshalText() ([]byte, error) {
	if _, err := LookupExtrapolator(string(e)); err != nil {
		return nil, err
	}
	return []byte(e), nil
}

// UnmarshalText resolves a name through the registry.
func (e *Extrapolator) UnmarshalText(text []byte) error {
	v, err := LookupExtrapolator(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type flat struct {
	y     float64
	index int
}

func (f flat) value(float64) float64 { return f.y }

func (f flat) firstDerivative(float64) float64 { return 0 }

func (f flat) sensitivity(_ float64, out []float64) { out[f.index] = 1 }

type linearExtrapolator struct {
	x0, y0, slope float64
	index         int
	dSens         []float64
}

func (l linearExtrapolator) value(x float64) float64 {
	return l.y0 + l.slope*(x-l.x0)
}

func (l linearExtrapolator) firstDerivative(float64) float64 { return l.slope }

func (l linearExtrapolator) sensitivity(x float64, out []float64) {
	dx := x - l.x0
	for j, d := range l.dSens {
		out[j] = dx * d
	}
	out[l.index] += 1
}
