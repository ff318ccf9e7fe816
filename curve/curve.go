package curve

import (
	"fmt"
	"time"

	"github.com/meenmo/mocurve/interp"
	"github.com/meenmo/mocurve/utils"
)

// Curve is a named, bound interpolated curve.
type Curve struct {
	def       Definition
	bound     *interp.Bound
	labels    []string
	valuation time.Time
	dayCount  utils.DayCount
	dated     bool
}

// Sensitivity is the bucketed sensitivity of a curve value to its node values.
type Sensitivity struct {
	CurveName string    `json:"curve"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

// Build resolves the nodes and binds the definition's strategies.
func (d Definition) Build() (*Curve, error) {
	r, err := d.resolve()
	if err != nil {
		return nil, fmt.Errorf("curve %q: %w", d.Name, err)
	}
	bound, err := d.Interpolator.Bind(r.xs, r.ys, d.LeftExtrapolator, d.RightExtrapolator)
	if err != nil {
		return nil, fmt.Errorf("curve %q: %w", d.Name, err)
	}
	def := d
	def.Nodes = append([]Node(nil), d.Nodes...)
	return &Curve{
		def:       def,
		bound:     bound,
		labels:    r.labels,
		valuation: r.valuation,
		dayCount:  r.dayCount,
		dated:     r.dated,
	}, nil
}

// Name returns the curve name.
func (c *Curve) Name() string { return c.def.Name }

// Definition returns a copy of the definition the curve was built from.
func (c *Curve) Definition() Definition {
	def := c.def
	def.Nodes = append([]Node(nil), c.def.Nodes...)
	return def
}

// Bound returns the underlying evaluator.
func (c *Curve) Bound() *interp.Bound { return c.bound }

// Labels returns the node labels in node order.
func (c *Curve) Labels() []string { return append([]string(nil), c.labels...) }

// YValue returns the curve value at x.
func (c *Curve) YValue(x float64) float64 { return c.bound.Eval(x) }

// FirstDerivative returns dy/dx at x.
func (c *Curve) FirstDerivative(x float64) float64 { return c.bound.FirstDerivative(x) }

// Sensitivity returns the node sensitivities of the value at x.
func (c *Curve) Sensitivity(x float64) Sensitivity {
	return Sensitivity{
		CurveName: c.def.Name,
		Labels:    c.Labels(),
		Values:    c.bound.ParameterSensitivity(x),
	}
}

// XAt converts a date to the curve's x-axis. Only curves with a valuation date
// support dates.
func (c *Curve) XAt(date time.Time) (float64, error) {
	if !c.dated {
		return 0, fmt.Errorf("curve %q has no valuation date", c.def.Name)
	}
	return utils.YearFraction(c.valuation, date, c.dayCount)
}

// YValueAt returns the curve value at a date.
func (c *Curve) YValueAt(date time.Time) (float64, error) {
	x, err := c.XAt(date)
	if err != nil {
		return 0, err
	}
	return c.bound.Eval(x), nil
}
