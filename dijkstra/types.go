package dijkstra

import (
	"errors"
	"math"
	"slices"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil *matrix.CostMatrix was passed.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrSourceOutOfRange indicates a source index outside the matrix.
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrTargetOutOfRange indicates a target index outside the matrix.
	ErrTargetOutOfRange = errors.New("dijkstra: target index out of range")

	// ErrUnreachable indicates that no path links source and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Unreachable is the distance reported for vertices never reached. A reached
// vertex may also sit at this distance; use Distance's flag or PathTo to tell.
const Unreachable int64 = math.MaxInt64

// Options configures a solver run.
//
// MaxCost – vertices whose distance would exceed this cap are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxCost int64
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxCost bounds the exploration radius. Vertices farther than max from
// the source are reported unreachable.
// Panics with ErrBadMaxCost on a negative max.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.MaxInt64}
}

// Route is an ordered sequence of vertex indices, origin first and
// destination last, together with its total cost under the matrix it was
// computed on.
type Route struct {
	Path []int
	Cost int64
}

// Len returns the number of vertices on the route (not its cost).
func (r Route) Len() int { return len(r.Path) }

// Empty reports whether the route holds no vertex at all.
func (r Route) Empty() bool { return len(r.Path) == 0 }

// Origin returns the first vertex, or -1 for an empty route.
func (r Route) Origin() int {
	if r.Empty() {
		return -1
	}
	return r.Path[0]
}

// Destination returns the last vertex, or -1 for an empty route.
func (r Route) Destination() int {
	if r.Empty() {
		return -1
	}
	return r.Path[len(r.Path)-1]
}

// Tree is the result of a single-source run: the best distance and the best
// full path to every vertex. A Tree is immutable once returned.
type Tree struct {
	source int
	dist   []int64
	paths  [][]int
}

// Source returns the source vertex of the run.
func (t *Tree) Source() int { return t.source }

// Size returns the number of vertices covered by the tree.
func (t *Tree) Size() int { return len(t.dist) }

// Distance returns the shortest distance to target and whether it was reached.
func (t *Tree) Distance(target int) (int64, bool) {
	if target < 0 || target >= len(t.dist) {
		return Unreachable, false
	}

	return t.dist[target], t.paths[target] != nil
}

// PathTo returns the best route from the source to target.
// The returned Path is a copy owned by the caller.
func (t *Tree) PathTo(target int) (Route, error) {
	if target < 0 || target >= len(t.dist) {
		return Route{}, ErrTargetOutOfRange
	}
	if t.paths[target] == nil {
		return Route{}, ErrUnreachable
	}

	return Route{Path: slices.Clone(t.paths[target]), Cost: t.dist[target]}, nil
}
