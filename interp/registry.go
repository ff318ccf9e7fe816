package interp

import (
	"fmt"
	"sort"
)

// Category selects the strategy kind in Lookup.
type Category string

const (
	CategoryInterpolator Category = "interpolator"
	CategoryExtrapolator Category = "extrapolator"
)

// Strategy is implemented by Interpolator and Extrapolator.
type Strategy interface {
	Name() string
}

var (
	_ Strategy = Interpolator("")
	_ Strategy = Extrapolator("")
)

// Populated once here and never written afterwards.
var (
	interpolators = map[string]Interpolator{}
	extrapolators = map[string]Extrapolator{}
)

func init() {
	for _, ip := range []Interpolator{TimeSquareInterpolator, LinearInterpolator, LogLinearInterpolator} {
		interpolators[ip.Name()] = ip
	}
	for _, e := range []Extrapolator{FlatExtrapolator, LinearExtrapolator} {
		extrapolators[e.Name()] = e
	}
}

// LookupInterpolator returns the interpolator registered under name.
func LookupInterpolator(name string) (Interpolator, error) {
	ip, ok := interpolators[name]
	if !ok {
		return "", fmt.Errorf("%w: interpolator %q", ErrUnknownStrategyName, name)
	}
	return ip, nil
}

// LookupExtrapolator returns the extrapolator registered under name.
func LookupExtrapolator(name string) (Extrapolator, error) {
	e, ok := extrapolators[name]
	if !ok {
		return "", fmt.Errorf("%w: extrapolator %q", ErrUnknownStrategyName, name)
	}
	return e, nil
}

// Lookup resolves name within category.
func Lookup(category Category, name string) (Strategy, error) {
	var (
		s   Strategy
		err error
	)
	switch category {
	case CategoryInterpolator:
		s, err = LookupInterpolator(name)
	case CategoryExtrapolator:
		s, err = LookupExtrapolator(name)
	default:
		err = fmt.Errorf("%w: category %q", ErrUnknownStrategyName, string(category))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// InterpolatorNames returns the registered interpolator names in sorted order.
func InterpolatorNames() []string {
	names := make([]string, 0, len(interpolators))
	for name := range interpolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExtrapolatorNames returns the registered extrapolator names in sorted order.
func ExtrapolatorNames() []string {
	names := make([]string, 0, len(extrapolators))
	for name := range extrapolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
