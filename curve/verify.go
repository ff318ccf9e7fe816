package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/meenmo/mocurve/config"
)

// Tolerances bound the verification checks.
type Tolerances struct {
	Node       float64
	Derivative float64
	Bump       float64
}

// TolerancesFromConfig reads the check tolerances from cfg.
func TolerancesFromConfig(cfg config.Config) Tolerances {
	return Tolerances{
		Node:       cfg.NodeTolerance,
		Derivative: cfg.DerivativeTolerance,
		Bump:       cfg.BumpSize,
	}
}

// Failure describes one failed check. A check that could not be evaluated
// carries Error and leaves Want and Got zero.
type Failure struct {
	Check string  `json:"check"`
	X     float64 `json:"x"`
	Want  float64 `json:"want"`
	Got   float64 `json:"got"`
	Error string  `json:"error,omitempty"`
}

func (f Failure) String() string {
	if f.Error != "" {
		return fmt.Sprintf("%s at x=%g: %s", f.Check, f.X, f.Error)
	}
	return fmt.Sprintf("%s at x=%g: want %g, got %g", f.Check, f.X, f.Want, f.Got)
}

// Report is the outcome of Verify.
type Report struct {
	Curve    string    `json:"curve"`
	Checks   int       `json:"checks"`
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// DefaultProbes returns the midpoint of every interval plus one point beyond
// each end, one interval width away.
func DefaultProbes(c *Curve) []float64 {
	xs := c.bound.Nodes().XValues()
	n := len(xs)
	probes := make([]float64, 0, n+1)
	probes = append(probes, xs[0]-(xs[1]-xs[0]))
	for i := 0; i+1 < n; i++ {
		probes = append(probes, 0.5*(xs[i]+xs[i+1]))
	}
	probes = append(probes, xs[n-1]+(xs[n-1]-xs[n-2]))
	return probes
}

// Verify checks node reproduction, the analytic derivative against a central
// finite difference and the node sensitivities against bumped rebinds.
// Probes closer than tol.Bump to a node skip the derivative check.
func Verify(c *Curve, probes []float64, tol Tolerances) Report {
	b := c.bound
	nodes := b.Nodes()
	xs, ys := nodes.XValues(), nodes.YValues()
	rep := Report{Curve: c.Name()}

	for i := range xs {
		rep.Checks++
		if got := b.Eval(xs[i]); math.Abs(got-ys[i]) > tol.Node {
			rep.Failures = append(rep.Failures, Failure{Check: "node", X: xs[i], Want: ys[i], Got: got})
		}
	}

	for _, x := range probes {
		if !nearNode(xs, x, tol.Bump) {
			rep.Checks++
			want := fd.Derivative(b.Eval, x, &fd.Settings{Formula: fd.Central, Step: tol.Bump})
			got := b.FirstDerivative(x)
			if math.Abs(got-want) > tol.Derivative*math.Max(1, math.Abs(want)) {
				rep.Failures = append(rep.Failures, Failure{Check: "derivative", X: x, Want: want, Got: got})
			}
		}

		rep.Checks++
		want, err := bumpedSensitivity(c, xs, ys, x, tol.Bump)
		if err != nil {
			rep.Failures = append(rep.Failures, Failure{Check: "sensitivity", X: x, Error: err.Error()})
			continue
		}
		got := b.ParameterSensitivity(x)
		scale := math.Max(1, floats.Norm(want, math.Inf(1)))
		diff := append([]float64(nil), got...)
		floats.Sub(diff, want)
		if worst := floats.Norm(diff, math.Inf(1)); worst > tol.Derivative*scale {
			j := floats.MaxIdx(absolute(diff))
			rep.Failures = append(rep.Failures, Failure{Check: fmt.Sprintf("sensitivity[%s]", c.labels[j]), X: x, Want: want[j], Got: got[j]})
		}
	}
	return rep
}

// bumpedSensitivity rebinds the curve with each node value bumped up and down.
func bumpedSensitivity(c *Curve, xs, ys []float64, x, h float64) ([]float64, error) {
	b := c.bound
	out := make([]float64, len(ys))
	bumped := append([]float64(nil), ys...)
	for j := range ys {
		bumped[j] = ys[j] + h
		up, err := b.Interpolator().Bind(xs, bumped, b.LeftExtrapolator(), b.RightExtrapolator())
		if err != nil {
			return nil, err
		}
		bumped[j] = ys[j] - h
		dn, err := b.Interpolator().Bind(xs, bumped, b.LeftExtrapolator(), b.RightExtrapolator())
		if err != nil {
			return nil, err
		}
		bumped[j] = ys[j]
		out[j] = (up.Eval(x) - dn.Eval(x)) / (2 * h)
	}
	return out, nil
}

func nearNode(xs []float64, x, h float64) bool {
	for _, n := range xs {
		if math.Abs(x-n) <= h {
			return true
		}
	}
	return false
}

func absolute(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = math.Abs(f)
	}
	return out
}
