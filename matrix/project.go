// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmetro/subway"
)

// Policy selects how arcs are weighted when projecting a graph.
type Policy int

const (
	// Unweighted writes 1 for every arc, so path cost equals hop count.
	Unweighted Policy = iota

	// Weighted writes each arc's true travel cost.
	Weighted
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	if p == Weighted {
		return "weighted"
	}

	return "unweighted"
}

// PolicyFor maps a "use cost weighting" flag to a Policy.
func PolicyFor(weighted bool) Policy {
	if weighted {
		return Weighted
	}

	return Unweighted
}

// ArcSource is the read-only view of a graph the projector needs.
// *subway.Graph satisfies it.
type ArcSource interface {
	Size() int
	Vertices() []*subway.Vertex
}

// Project converts g into a dense symmetric cost matrix.
//
// Stage 1 (Validate): g non-nil.
// Stage 2 (Prepare): allocate a zeroed Size()×Size() matrix.
// Stage 3 (Execute): for every arc set both [src][dst] and [dst][src].
//
// The result is symmetric, non-negative, and zero on the diagonal and for
// every non-adjacent pair. A graph of size 0 yields a valid empty matrix.
// The matrix is a disposable snapshot: it does not track later graph changes.
//
// Complexity: O(V² + E) time, O(V²) memory.
func Project(g ArcSource, policy Policy) (*CostMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.Size()
	m, err := NewCostMatrix(n)
	if err != nil {
		return nil, err
	}

	for src, v := range g.Vertices() {
		for _, a := range v.Arcs {
			if a.To < 0 || a.To >= n {
				return nil, fmt.Errorf("project %d→%d: %w", src, a.To, ErrBadArc)
			}
			w := a.Cost
			if policy == Unweighted {
				w = 1
			}
			m.data[src*n+a.To] = w
			m.data[a.To*n+src] = w
		}
	}

	return m, nil
}
