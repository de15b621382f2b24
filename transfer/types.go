package transfer

import (
	"errors"

	"github.com/katalvlaran/lvmetro/subway"
)

// Sentinel errors returned by Minimize.
var (
	ErrNilGraph         = errors.New("transfer: graph is nil")
	ErrEmptyPath        = errors.New("transfer: path is empty")
	ErrInconsistentPath = errors.New("transfer: consecutive stations are not linked")
	ErrUnservedSegment  = errors.New("transfer: segment is served by no line")
	ErrInvalidLine      = errors.New("transfer: segment line is not positive")
)

// NoLine is the current line before boarding. Real line numbers are ≥ 1.
const NoLine = 0

// ArcFinder looks up the arc linking two stations in either direction.
// *subway.Graph satisfies it.
type ArcFinder interface {
	ArcBetween(i, j int) (subway.Arc, bool)
}

// Leg marks a station where a line is boarded and the line taken from there.
type Leg struct {
	Vertex int
	Line   int
}

// Plan is the line assignment for a route.
//
// Boarding is the origin and the first line ridden; it is the zero Leg for a
// single-station route. Transfers lists every change, in route order, and
// never includes the origin. Count == len(Transfers).
type Plan struct {
	Boarding  Leg
	Transfers []Leg
	Count     int
}

// TransferVertices returns the stations where a change happens.
func (p Plan) TransferVertices() []int {
	out := make([]int, len(p.Transfers))
	for i, t := range p.Transfers {
		out[i] = t.Vertex
	}

	return out
}

// LinesTaken returns the line taken after each transfer.
func (p Plan) LinesTaken() []int {
	out := make([]int, len(p.Transfers))
	for i, t := range p.Transfers {
		out[i] = t.Line
	}

	return out
}

// Lines returns every line ridden, boarding line first. Empty when the
// route never leaves the origin.
func (p Plan) Lines() []int {
	if p.Boarding.Line == NoLine {
		return nil
	}

	return append([]int{p.Boarding.Line}, p.LinesTaken()...)
}
