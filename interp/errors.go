package interp

import "errors"

var (
	// ErrInvalidNodeSet is returned when node counts, lengths or ordering are invalid.
	ErrInvalidNodeSet = errors.New("invalid node set")

	// ErrUnknownStrategyName is returned when an interpolator or extrapolator name is not registered.
	ErrUnknownStrategyName = errors.New("unknown strategy name")

	// ErrDomain is returned for non-finite inputs or values outside a family's domain.
	ErrDomain = errors.New("domain error")
)
