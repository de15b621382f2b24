// Package matrix projects a subway graph into a dense n×n cost matrix.
//
// Two policies are supported:
//
//   - Unweighted: every arc costs 1, so path cost counts hops.
//   - Weighted:   every arc carries its travel cost.
//
// A projection is a snapshot: later graph mutations do not reach it.
// Cell [i][j] == 0 means "no arc" for i != j; the diagonal is always 0.
// Tombstoned stations project as all-zero rows and columns.
//
// Matrices are O(V²) memory, which suits networks of a few hundred stations.
package matrix
