package curve

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/mocurve/interp"
	"github.com/meenmo/mocurve/utils"
)

// Format is the encoding of a curve definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrInvalidDefinition is returned for definitions that cannot be resolved to nodes.
var ErrInvalidDefinition = errors.New("invalid curve definition")

// FormatFromPath picks the format from the file extension; anything that is not
// .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Definition is the persisted form of an interpolated curve. Strategies are
// referenced by registry name.
type Definition struct {
	Name              string              `yaml:"name" json:"name"`
	Interpolator      interp.Interpolator `yaml:"interpolator,omitempty" json:"interpolator,omitempty"`
	LeftExtrapolator  interp.Extrapolator `yaml:"left_extrapolator,omitempty" json:"left_extrapolator,omitempty"`
	RightExtrapolator interp.Extrapolator `yaml:"right_extrapolator,omitempty" json:"right_extrapolator,omitempty"`
	// ValuationDate anchors dated nodes (YYYY-MM-DD).
	ValuationDate string `yaml:"valuation_date,omitempty" json:"valuation_date,omitempty"`
	// DayCount converts dated nodes to year fractions; defaults to ACT/365F.
	DayCount string `yaml:"day_count,omitempty" json:"day_count,omitempty"`
	Nodes    []Node `yaml:"nodes" json:"nodes"`
}

// Node is one curve node. Exactly one of X, Tenor or Date locates it on the
// x-axis. X and Y accept numbers or numeric strings.
type Node struct {
	X     any    `yaml:"x,omitempty" json:"x,omitempty"`
	Tenor string `yaml:"tenor,omitempty" json:"tenor,omitempty"`
	Date  string `yaml:"date,omitempty" json:"date,omitempty"`
	Y     any    `yaml:"y" json:"y"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// ParseDefinitions decodes either a single definition or a list of them.
func ParseDefinitions(data []byte, format Format) ([]Definition, error) {
	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var defs []Definition
			if err := json.Unmarshal(trimmed, &defs); err != nil {
				return nil, err
			}
			return defs, nil
		}
		var def Definition
		if err := json.Unmarshal(trimmed, &def); err != nil {
			return nil, err
		}
		return []Definition{def}, nil
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		doc := root.Content[0]
		if doc.Kind == yaml.SequenceNode {
			var defs []Definition
			if err := doc.Decode(&defs); err != nil {
				return nil, err
			}
			return defs, nil
		}
		var def Definition
		if err := doc.Decode(&def); err != nil {
			return nil, err
		}
		return []Definition{def}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", string(format))
	}
}

// Marshal encodes the definition in the given format.
func (d Definition) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported format %q", string(format))
	}
}

// WithDefaults fills in missing strategy names.
func (d Definition) WithDefaults(ip interp.Interpolator, left, right interp.Extrapolator) Definition {
	if d.Interpolator == "" {
		d.Interpolator = ip
	}
	if d.LeftExtrapolator == "" {
		d.LeftExtrapolator = left
	}
	if d.RightExtrapolator == "" {
		d.RightExtrapolator = right
	}
	return d
}

// resolved holds node coordinates ready for binding.
type resolved struct {
	xs, ys    []float64
	labels    []string
	valuation time.Time
	dayCount  utils.DayCount
	dated     bool
}

func (d Definition) resolve() (resolved, error) {
	dc, err := utils.ParseDayCount(d.DayCount)
	if err != nil {
		return resolved{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	r := resolved{
		xs:       make([]float64, len(d.Nodes)),
		ys:       make([]float64, len(d.Nodes)),
		labels:   make([]string, len(d.Nodes)),
		dayCount: dc,
	}
	if d.ValuationDate != "" {
		r.valuation, err = utils.ParseDate(d.ValuationDate)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: valuation_date: %v", ErrInvalidDefinition, err)
		}
		r.dated = true
	}

	for i, n := range d.Nodes {
		x, label, err := n.resolveX(r)
		if err != nil {
			return resolved{}, fmt.Errorf("node %d: %w", i, err)
		}
		y, err := toFloat(n.Y)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: node %d: invalid y %v", ErrInvalidDefinition, i, n.Y)
		}
		if n.Label != "" {
			label = n.Label
		}
		r.xs[i], r.ys[i], r.labels[i] = x, y, label
	}
	return r, nil
}

func (n Node) resolveX(r resolved) (float64, string, error) {
	set := 0
	for _, ok := range []bool{n.X != nil, n.Tenor != "", n.Date != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return 0, "", fmt.Errorf("%w: exactly one of x, tenor or date is required", ErrInvalidDefinition)
	}

	switch {
	case n.Tenor != "":
		x, err := utils.TenorToYears(n.Tenor)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
		return x, strings.ToUpper(strings.TrimSpace(n.Tenor)), nil
	case n.Date != "":
		if !r.dated {
			return 0, "", fmt.Errorf("%w: dated node without valuation_date", ErrInvalidDefinition)
		}
		date, err := utils.ParseDate(n.Date)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
		x, err := utils.YearFraction(r.valuation, date, r.dayCount)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
		return x, n.Date, nil
	default:
		x, err := toFloat(n.X)
		if err != nil {
			return 0, "", fmt.Errorf("%w: invalid x %v", ErrInvalidDefinition, n.X)
		}
		return x, strconv.FormatFloat(x, 'g', -1, 64), nil
	}
}

// toFloat accepts numbers and numeric strings. cast would map booleans to 0 and 1.
func toFloat(v any) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, errors.New("missing value")
	case bool:
		return 0, fmt.Errorf("boolean %v is not a number", v)
	}
	return cast.ToFloat64E(v)
}
