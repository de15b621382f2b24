// File: methods_arcs.go
// Role: Arc lifecycle & queries: ArcBetween/ArcCost/UpdateArcCost/RemoveArc/Connect.
// Invariant:
//   - Arcs live in mirrored pairs (i→j in i's list, j→i in j's list) with equal
//     Cost and equal Lines. Every mutation here updates both records before returning.
//   - At most one pair links any two stations; extra lines merge into its Lines.

package subway

import (
	"fmt"
	"slices"
)

// linkPair appends the mirrored arc pair i↔j. Each record gets its own copy of lines.
func (g *Graph) linkPair(i, j int, cost int64, lines []int) {
	g.vertices[i].Arcs = append(g.vertices[i].Arcs, Arc{To: j, Cost: cost, Lines: slices.Clone(lines)})
	g.vertices[j].Arcs = append(g.vertices[j].Arcs, Arc{To: i, Cost: cost, Lines: slices.Clone(lines)})
}

// setPairCost writes cost into both records of the pair i↔j, whichever exist.
// Reports whether any record was found.
func (g *Graph) setPairCost(i, j int, cost int64) bool {
	found := false
	if pos := g.vertices[i].arcTo(j); pos >= 0 {
		g.vertices[i].Arcs[pos].Cost = cost
		found = true
	}
	if pos := g.vertices[j].arcTo(i); pos >= 0 {
		g.vertices[j].Arcs[pos].Cost = cost
		found = true
	}

	return found
}

// pair validates i and j as two distinct live stations.
func (g *Graph) pair(i, j int) (*Vertex, *Vertex, error) {
	vi, err := g.live(i)
	if err != nil {
		return nil, nil, err
	}
	vj, err := g.live(j)
	if err != nil {
		return nil, nil, err
	}
	if i == j {
		return nil, nil, fmt.Errorf("vertex %d: %w", i, ErrSelfLoop)
	}

	return vi, vj, nil
}

// ArcBetween returns the arc linking i and j, looking first in i's adjacency
// list and then in j's. The returned Arc is a copy oriented i→j.
// Invalid indices simply report false.
func (g *Graph) ArcBetween(i, j int) (Arc, bool) {
	if i < 0 || i >= len(g.vertices) || j < 0 || j >= len(g.vertices) {
		return Arc{}, false
	}
	if pos := g.vertices[i].arcTo(j); pos >= 0 {
		a := g.vertices[i].Arcs[pos]
		return Arc{To: j, Cost: a.Cost, Lines: slices.Clone(a.Lines)}, true
	}
	if pos := g.vertices[j].arcTo(i); pos >= 0 {
		a := g.vertices[j].Arcs[pos]
		return Arc{To: j, Cost: a.Cost, Lines: slices.Clone(a.Lines)}, true
	}

	return Arc{}, false
}

// ArcCost returns the cost of the arc linking i and j.
func (g *Graph) ArcCost(i, j int) (int64, error) {
	if _, _, err := g.pair(i, j); err != nil {
		return 0, err
	}
	a, ok := g.ArcBetween(i, j)
	if !ok {
		return 0, fmt.Errorf("arc %d-%d: %w", i, j, ErrArcNotFound)
	}

	return a.Cost, nil
}

// UpdateArcCost sets the cost of the arc pair i↔j to cost.
//
// Unlike a silent no-op, a missing arc is reported as ErrArcNotFound so the
// caller can tell an update from a miss.
func (g *Graph) UpdateArcCost(i, j int, cost int64) error {
	if _, _, err := g.pair(i, j); err != nil {
		return err
	}
	if cost < 1 {
		return fmt.Errorf("arc %d-%d: %w", i, j, ErrBadCost)
	}
	if !g.setPairCost(i, j, cost) {
		return fmt.Errorf("arc %d-%d: %w", i, j, ErrArcNotFound)
	}
	g.generation++

	return nil
}

// RemoveArc withdraws line from the arc pair i↔j. When no serving line is
// left the pair is unlinked from both adjacency lists. An arc that serves no
// line at all (stations with disjoint line sets linked by Insert) is unlinked
// whatever line is given.
func (g *Graph) RemoveArc(i, j, line int) error {
	vi, vj, err := g.pair(i, j)
	if err != nil {
		return err
	}
	pi, pj := vi.arcTo(j), vj.arcTo(i)
	if pi < 0 && pj < 0 {
		return fmt.Errorf("arc %d-%d: %w", i, j, ErrArcNotFound)
	}
	a, _ := g.ArcBetween(i, j)
	if len(a.Lines) > 0 && !a.Serves(line) {
		return fmt.Errorf("arc %d-%d line %d: %w", i, j, line, ErrLineNotServed)
	}

	dropLine := func(v *Vertex, pos int) {
		if pos < 0 {
			return
		}
		arc := &v.Arcs[pos]
		if k, ok := slices.BinarySearch(arc.Lines, line); ok {
			arc.Lines = slices.Delete(arc.Lines, k, k+1)
		}
		if len(arc.Lines) == 0 {
			v.Arcs = slices.Delete(v.Arcs, pos, pos+1)
		}
	}
	dropLine(vi, pi)
	dropLine(vj, pj)
	g.generation++

	return nil
}

// Connect links i and j on line.
//
// If an arc already joins them and carries line, ErrArcExists is returned.
// If it joins them on other lines, line is merged into both records and the
// cost is kept. Otherwise a new pair with cost 1 and Lines {line} is created.
// Both stations join line.
func (g *Graph) Connect(i, j, line int) error {
	vi, vj, err := g.pair(i, j)
	if err != nil {
		return err
	}
	if line <= 0 {
		return ErrInvalidLine
	}
	pi, pj := vi.arcTo(j), vj.arcTo(i)
	switch {
	case pi < 0 && pj < 0:
		g.linkPair(i, j, 1, []int{line})
	case (pi >= 0 && vi.Arcs[pi].Serves(line)) || (pj >= 0 && vj.Arcs[pj].Serves(line)):
		return fmt.Errorf("arc %d-%d line %d: %w", i, j, line, ErrArcExists)
	default:
		if pi >= 0 {
			vi.Arcs[pi].Lines = insertSorted(vi.Arcs[pi].Lines, line)
		}
		if pj >= 0 {
			vj.Arcs[pj].Lines = insertSorted(vj.Arcs[pj].Lines, line)
		}
	}
	vi.Lines = insertSorted(vi.Lines, line)
	vj.Lines = insertSorted(vj.Lines, line)
	g.generation++

	return nil
}
