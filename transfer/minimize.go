package transfer

import (
	"fmt"
)

// Minimize returns the plan with the fewest line changes along path.
//
// Steps:
//  1. Validate inputs; a single-station path needs no line at all.
//  2. Resolve the serving lines of every hop, failing fast on a gap.
//  3. Search hop by hop from NoLine and build the plan from the best suffix.
func Minimize(g ArcFinder, path []int) (Plan, error) {
	// 1) Validation.
	if g == nil {
		return Plan{}, ErrNilGraph
	}
	if len(path) == 0 {
		return Plan{}, ErrEmptyPath
	}
	if len(path) == 1 {
		return Plan{Transfers: []Leg{}}, nil
	}

	// 2) Segment lines.
	hops := make([][]int, len(path)-1)
	for k := range hops {
		a, ok := g.ArcBetween(path[k], path[k+1])
		if !ok {
			return Plan{}, fmt.Errorf("hop %d (%d→%d): %w", k, path[k], path[k+1], ErrInconsistentPath)
		}
		if len(a.Lines) == 0 {
			return Plan{}, fmt.Errorf("hop %d (%d→%d): %w", k, path[k], path[k+1], ErrUnservedSegment)
		}
		for _, line := range a.Lines {
			if line <= NoLine {
				return Plan{}, fmt.Errorf("hop %d (%d→%d) line %d: %w", k, path[k], path[k+1], line, ErrInvalidLine)
			}
		}
		hops[k] = a.Lines
	}

	// 3) Search. Hop 0 always changes from NoLine, so legs[0] is the boarding.
	s := &searcher{path: path, hops: hops, memo: make(map[state]suffix)}
	best := s.best(0, NoLine)

	return Plan{
		Boarding:  best.legs[0],
		Transfers: append([]Leg{}, best.legs[1:]...),
		Count:     best.changes - 1,
	}, nil
}

// state identifies a sub-search: next hop to ride and the line arrived on.
type state struct {
	hop  int
	line int
}

// suffix is the best way to finish the route from some state. Values are
// never mutated after construction, so memo entries can be shared freely.
type suffix struct {
	changes int
	legs    []Leg
}

type searcher struct {
	path []int
	hops [][]int
	memo map[state]suffix
}

// best returns the first minimal suffix from (k, cur) in line order.
func (s *searcher) best(k, cur int) suffix {
	if k == len(s.hops) {
		return suffix{}
	}
	key := state{hop: k, line: cur}
	if r, ok := s.memo[key]; ok {
		return r
	}

	var (
		found bool
		out   suffix
	)
	for _, line := range s.hops[k] {
		var cand suffix
		if line == cur {
			cand = s.best(k+1, cur)
		} else {
			rest := s.best(k+1, line)
			legs := make([]Leg, 0, len(rest.legs)+1)
			legs = append(legs, Leg{Vertex: s.path[k], Line: line})
			cand = suffix{changes: rest.changes + 1, legs: append(legs, rest.legs...)}
		}
		if !found || cand.changes < out.changes {
			out, found = cand, true
		}
	}
	s.memo[key] = out

	return out
}
