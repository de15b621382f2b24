// Package dijkstra computes single-source shortest paths over a dense
// matrix.CostMatrix and reconstructs the best route to any destination.
//
// Overview:
//
//   - ShortestPaths runs Dijkstra from one source to every reachable vertex and
//     returns a Tree; Tree.PathTo extracts the route to one destination.
//   - ShortestPath is the one-shot convenience for a single (source, target) query.
//   - Only strictly positive matrix entries are edges; zero means "not adjacent".
//
// Path storage:
//
//   - Every vertex owns its best-known full path. When an edge relaxation
//     strictly improves a vertex, that vertex's path is replaced by a copy of
//     the current vertex's path with the neighbor appended. No predecessor
//     chasing is needed afterwards.
//
// Determinism:
//
//   - Relaxation uses strict "<", so among equal-cost paths the first one
//     found is kept.
//   - Neighbors are scanned in ascending column order, and heap ties are
//     broken by push order, so identical inputs always give identical routes.
//
// Complexity:
//
//   - Time:  O(V² + E log V) for the matrix scan plus heap traffic,
//     plus O(V·P) for path copies where P is the longest path.
//   - Space: O(V·P) for stored paths, O(E) for the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:        nil *matrix.CostMatrix.
//   - ErrSourceOutOfRange: source index outside [0, n).
//   - ErrTargetOutOfRange: target index outside [0, n).
//   - ErrUnreachable:      the target is not connected to the source, or every
//     route to it costs more than math.MaxInt64.
//   - ErrBadMaxCost:       WithMaxCost given a negative cap (panics).
//
// An empty (0×0) matrix is not an error: ShortestPath returns an empty Route.
//
// Thread safety:
//
//   - Calls share no state; a CostMatrix may be read by concurrent queries
//     as long as nobody writes to it.
package dijkstra
