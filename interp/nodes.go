package interp

import (
	"fmt"
	"math"
	"sort"
)

// NodeSet is an immutable, strictly increasing set of (x, y) nodes.
type NodeSet struct {
	xs []float64
	ys []float64
}

// NewNodeSet validates and copies the supplied values.
//
// Fails with ErrInvalidNodeSet when the lengths differ, fewer than two nodes are
// given, or x is not strictly increasing, and with ErrDomain when any value is NaN
// or infinite.
func NewNodeSet(x, y []float64) (NodeSet, error) {
	if len(x) != len(y) {
		return NodeSet{}, fmt.Errorf("%w: %d x-values but %d y-values", ErrInvalidNodeSet, len(x), len(y))
	}
	if len(x) < 2 {
		return NodeSet{}, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidNodeSet, len(x))
	}
	for i := range x {
		if !isFinite(x[i]) {
			return NodeSet{}, fmt.Errorf("%w: x[%d] = %v is not finite", ErrDomain, i, x[i])
		}
		if !isFinite(y[i]) {
			return NodeSet{}, fmt.Errorf("%w: y[%d] = %v is not finite", ErrDomain, i, y[i])
		}
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return NodeSet{}, fmt.Errorf("%w: x[%d] = %v is not greater than x[%d] = %v", ErrInvalidNodeSet, i, x[i], i-1, x[i-1])
		}
	}
	return NodeSet{xs: cloneFloats(x), ys: cloneFloats(y)}, nil
}

// Len returns the number of nodes.
func (n NodeSet) Len() int { return len(n.xs) }

// X returns the i-th x-value.
func (n NodeSet) X(i int) float64 { return n.xs[i] }

// Y returns the i-th y-value.
func (n NodeSet) Y(i int) float64 { return n.ys[i] }

// XValues returns a copy of the x-values.
func (n NodeSet) XValues() []float64 { return cloneFloats(n.xs) }

// YValues returns a copy of the y-values.
func (n NodeSet) YValues() []float64 { return cloneFloats(n.ys) }

// First returns the smallest x-value.
func (n NodeSet) First() float64 { return n.xs[0] }

// Last returns the largest x-value.
func (n NodeSet) Last() float64 { return n.xs[len(n.xs)-1] }

// lowerIndex returns the interval i with xs[i] <= x < xs[i+1], clamped to [0, n-2].
// The last node belongs to the last interval.
func (n NodeSet) lowerIndex(x float64) int {
	// First index with xs[i] > x.
	idx := sort.Search(len(n.xs), func(i int) bool {
		return n.xs[i] > x
	})
	switch {
	case idx <= 0:
		return 0
	case idx >= len(n.xs):
		return len(n.xs) - 2
	default:
		return idx - 1
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
