// Package subway defines the transit Graph, its Vertex (station) and Arc
// (mirrored edge record) types, and the sentinel errors shared by every
// mutation and query on the store.
//
// Errors:
//
//	ErrEmptyName        - station name is the empty string.
//	ErrNoLines          - station declared with no line numbers.
//	ErrInvalidLine      - line number is not positive.
//	ErrDuplicateName    - station name already present.
//	ErrInvalidIndex     - vertex index outside [0, Size()).
//	ErrStationRemoved   - vertex index refers to a tombstoned station.
//	ErrCostsMismatch    - adjacent indices and costs differ in length.
//	ErrBadCost          - arc cost below 1.
//	ErrSelfLoop         - both endpoints of an arc are the same vertex.
//	ErrArcNotFound      - no arc links the two vertices.
//	ErrArcExists        - arc already carries the requested line.
//	ErrLineNotServed    - arc does not carry the requested line.
//	ErrStationNotFound  - station name not present.
package subway

import (
	"errors"
	"slices"
)

// Sentinel errors for graph store operations.
var (
	// ErrEmptyName indicates that a station was inserted without a name.
	ErrEmptyName = errors.New("subway: station name is empty")

	// ErrNoLines indicates that a station was inserted without any line number.
	ErrNoLines = errors.New("subway: station has no lines")

	// ErrInvalidLine indicates a line number ≤ 0. Zero is reserved as "no line yet".
	ErrInvalidLine = errors.New("subway: line number must be positive")

	// ErrDuplicateName indicates that a station with the same name already exists.
	ErrDuplicateName = errors.New("subway: duplicate station name")

	// ErrInvalidIndex indicates a vertex index outside the current valid range.
	ErrInvalidIndex = errors.New("subway: vertex index out of range")

	// ErrStationRemoved indicates an operation referenced a tombstoned station.
	ErrStationRemoved = errors.New("subway: station has been removed")

	// ErrCostsMismatch indicates that adjacent indices and costs have different lengths.
	ErrCostsMismatch = errors.New("subway: adjacent indices and costs differ in length")

	// ErrBadCost indicates an arc cost below 1.
	ErrBadCost = errors.New("subway: arc cost must be at least 1")

	// ErrSelfLoop indicates an arc from a station to itself.
	ErrSelfLoop = errors.New("subway: self-loop not allowed")

	// ErrArcNotFound indicates that no arc links the two vertices.
	ErrArcNotFound = errors.New("subway: arc not found")

	// ErrArcExists indicates that the arc already carries the requested line.
	ErrArcExists = errors.New("subway: arc already serves line")

	// ErrLineNotServed indicates that the arc does not carry the requested line.
	ErrLineNotServed = errors.New("subway: arc does not serve line")

	// ErrStationNotFound indicates a lookup by an unknown station name.
	ErrStationNotFound = errors.New("subway: station not found")
)

// Arc is one direction of an undirected edge, stored in the source vertex's
// adjacency list. Arcs are always created in mirrored pairs; both records of
// a pair carry the same Cost and the same Lines.
type Arc struct {
	// To is the index of the adjacent vertex.
	To int

	// Cost is the travel cost of the segment (≥ 1).
	Cost int64

	// Lines holds the line numbers serving this segment, sorted ascending.
	// It may be empty when two neighboring stations share no line.
	Lines []int
}

// Serves reports whether line is one of the arc's serving lines.
func (a Arc) Serves(line int) bool {
	_, ok := slices.BinarySearch(a.Lines, line)
	return ok
}

// Vertex is one station of the network.
type Vertex struct {
	// Name is unique within its Graph.
	Name string

	// Lines holds the station's line numbers, sorted ascending, no duplicates.
	// More than one line marks a transfer station.
	Lines []int

	Latitude  float64
	Longitude float64

	// Arcs is the adjacency list in insertion order.
	Arcs []Arc

	// Removed marks a tombstoned station. Its index stays reserved.
	Removed bool
}

// IsTransfer reports whether the station belongs to more than one line.
func (v *Vertex) IsTransfer() bool { return len(v.Lines) > 1 }

// OnLine reports whether the station belongs to line.
func (v *Vertex) OnLine(line int) bool {
	_, ok := slices.BinarySearch(v.Lines, line)
	return ok
}

// arcTo returns the position of the arc targeting to, or -1.
func (v *Vertex) arcTo(to int) int {
	for i := range v.Arcs {
		if v.Arcs[i].To == to {
			return i
		}
	}

	return -1
}

// Graph is the in-memory station store.
//
// vertices is append-only: indices handed out by Insert are stable for the
// lifetime of the Graph, removals leave a tombstone behind. index maps the
// name of every live station to its vertex index.
//
// Graph is not safe for concurrent mutation; callers own it exclusively.
type Graph struct {
	vertices   []*Vertex
	index      map[string]int
	generation uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// normalizeLines returns a sorted copy of lines without duplicates.
// Every element must be positive.
func normalizeLines(lines []int) ([]int, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	out := slices.Clone(lines)
	for _, l := range out {
		if l <= 0 {
			return nil, ErrInvalidLine
		}
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// intersectLines returns the sorted intersection of two sorted line sets.
func intersectLines(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
