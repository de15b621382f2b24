// File: methods_vertices.go
// Role: Station lifecycle & queries: Insert/IndexOf/VertexAt/Vertices/Size,
//       line bookkeeping (AddLine, TotalLines, Lines) and tombstone removal.
// Determinism:
//   - Vertices() returns stations in index (insertion) order.
//   - Lines() returns line numbers ascending.

package subway

import (
	"fmt"
	"slices"
)

// Insert adds a new station and links it to already-inserted stations.
//
// adjacent[i] is linked with cost costs[i]. Every adjacent index must be
// smaller than Size() at call time, so a station can only link to stations
// inserted before it; seed data must be ordered accordingly. The serving
// lines of each new arc pair are the intersection of the two stations' line
// sets. An adjacent index listed twice yields one arc pair (later cost wins).
//
// Steps:
//  1. Validate name, uniqueness, lines, costs and every adjacent index.
//  2. Append the vertex and register its name.
//  3. Build mirrored arcs to each adjacent vertex.
//
// On error the graph is left untouched.
// Returns the index assigned to the new station.
// Complexity: O(L log L + A·deg) where A = len(adjacent).
func (g *Graph) Insert(name string, lines []int, latitude, longitude float64, adjacent []int, costs []int64) (int, error) {
	// 1) Validation, no mutation before this block completes.
	if name == "" {
		return -1, ErrEmptyName
	}
	if _, ok := g.index[name]; ok {
		return -1, fmt.Errorf("insert %q: %w", name, ErrDuplicateName)
	}
	norm, err := normalizeLines(lines)
	if err != nil {
		return -1, fmt.Errorf("insert %q: %w", name, err)
	}
	if len(adjacent) != len(costs) {
		return -1, fmt.Errorf("insert %q: %w", name, ErrCostsMismatch)
	}
	n := len(g.vertices)
	for i, adj := range adjacent {
		if adj < 0 || adj >= n {
			return -1, fmt.Errorf("insert %q: adjacent %d: %w", name, adj, ErrInvalidIndex)
		}
		if g.vertices[adj].Removed {
			return -1, fmt.Errorf("insert %q: adjacent %d: %w", name, adj, ErrStationRemoved)
		}
		if costs[i] < 1 {
			return -1, fmt.Errorf("insert %q: cost %d: %w", name, costs[i], ErrBadCost)
		}
	}

	// 2) Register the station.
	v := &Vertex{
		Name:      name,
		Lines:     norm,
		Latitude:  latitude,
		Longitude: longitude,
		Arcs:      make([]Arc, 0, len(adjacent)),
	}
	g.vertices = append(g.vertices, v)
	g.index[name] = n

	// 3) Mirrored arcs. Duplicated adjacent entries only refresh the cost.
	for i, adj := range adjacent {
		if pos := v.arcTo(adj); pos >= 0 {
			g.setPairCost(n, adj, costs[i])
			continue
		}
		shared := intersectLines(norm, g.vertices[adj].Lines)
		g.linkPair(n, adj, costs[i], shared)
	}
	g.generation++

	return n, nil
}

// IndexOf returns the index of the live station called name.
// Complexity: O(1)
func (g *Graph) IndexOf(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// VertexAt returns the station at index i.
// The pointer aliases graph storage; callers must not mutate Arcs directly,
// use UpdateArcCost, RemoveArc or Connect so mirrored records stay in sync.
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("vertex %d: %w", i, ErrInvalidIndex)
	}

	return g.vertices[i], nil
}

// Size returns the number of vertex slots, tombstones included.
func (g *Graph) Size() int { return len(g.vertices) }

// Vertices returns the stations in index order. The slice is a fresh copy;
// the vertices are shared.
func (g *Graph) Vertices() []*Vertex {
	return slices.Clone(g.vertices)
}

// Generation returns a counter bumped by every successful mutation.
// Equal generations mean an unchanged graph.
func (g *Graph) Generation() uint64 { return g.generation }

// IsTransfer reports whether station i belongs to more than one line.
func (g *Graph) IsTransfer(i int) (bool, error) {
	v, err := g.VertexAt(i)
	if err != nil {
		return false, err
	}

	return v.IsTransfer(), nil
}

// AddLine threads line through the existing station i.
// Adding a line the station already has is a no-op.
func (g *Graph) AddLine(i, line int) error {
	v, err := g.live(i)
	if err != nil {
		return err
	}
	if line <= 0 {
		return ErrInvalidLine
	}
	if v.OnLine(line) {
		return nil
	}
	v.Lines = insertSorted(v.Lines, line)
	g.generation++

	return nil
}

// TotalLines returns the number of distinct line numbers across all stations.
// Complexity: O(V·L)
func (g *Graph) TotalLines() int {
	seen := make(map[int]struct{})
	for _, v := range g.vertices {
		if v.Removed {
			continue
		}
		for _, l := range v.Lines {
			seen[l] = struct{}{}
		}
	}

	return len(seen)
}

// Lines returns the distinct line numbers across all stations, ascending.
func (g *Graph) Lines() []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, v := range g.vertices {
		if v.Removed {
			continue
		}
		for _, l := range v.Lines {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	slices.Sort(out)

	return out
}

// RemoveStation tombstones station i.
//
// Every arc pair touching i is detached, the name is released for reuse and
// the slot stays reserved, so all other indices remain valid. A tombstoned
// station is isolated: it projects to an all-zero matrix row and can never be
// reached by a route.
func (g *Graph) RemoveStation(i int) error {
	v, err := g.live(i)
	if err != nil {
		return err
	}
	for _, a := range v.Arcs {
		nb := g.vertices[a.To]
		if pos := nb.arcTo(i); pos >= 0 {
			nb.Arcs = slices.Delete(nb.Arcs, pos, pos+1)
		}
	}
	v.Arcs = nil
	v.Removed = true
	delete(g.index, v.Name)
	g.generation++

	return nil
}

// live returns station i if it exists and is not tombstoned.
func (g *Graph) live(i int) (*Vertex, error) {
	v, err := g.VertexAt(i)
	if err != nil {
		return nil, err
	}
	if v.Removed {
		return nil, fmt.Errorf("vertex %d: %w", i, ErrStationRemoved)
	}

	return v, nil
}

// insertSorted adds x to the sorted slice s, keeping order.
func insertSorted(s []int, x int) []int {
	pos, found := slices.BinarySearch(s, x)
	if found {
		return s
	}

	return slices.Insert(s, pos, x)
}
