// Package dijkstra_test validates the solver against hand-checked graphs, an
// independent Dijkstra implementation, and breadth-first hop counts.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	oracle "github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmetro/dijkstra"
	"github.com/katalvlaran/lvmetro/matrix"
	"github.com/katalvlaran/lvmetro/subway"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// lineGraph is A─3─B─2─C─5─D, C on lines 1 and 2.
func lineGraph(t testing.TB) *subway.Graph {
	t.Helper()
	g := subway.NewGraph()
	for _, st := range []struct {
		name  string
		lines []int
		adj   []int
		costs []int64
	}{
		{"A", []int{1}, nil, nil},
		{"B", []int{1}, []int{0}, []int64{3}},
		{"C", []int{1, 2}, []int{1}, []int64{2}},
		{"D", []int{2}, []int{2}, []int64{5}},
	} {
		_, err := g.Insert(st.name, st.lines, 0, 0, st.adj, st.costs)
		require.NoError(t, err)
	}

	return g
}

// randomGraph inserts n stations, each linked to up to three earlier ones.
func randomGraph(t testing.TB, rng *rand.Rand, n int) *subway.Graph {
	t.Helper()
	g := subway.NewGraph()
	for i := 0; i < n; i++ {
		var adj []int
		var costs []int64
		if i > 0 {
			links := 1 + rng.Intn(3)
			for k := 0; k < links; k++ {
				adj = append(adj, rng.Intn(i))
				costs = append(costs, int64(1+rng.Intn(9)))
			}
		}
		// Every fifth station starts a disconnected island.
		if i > 0 && i%5 == 0 && rng.Intn(2) == 0 {
			adj, costs = nil, nil
		}
		_, err := g.Insert(fmt.Sprintf("S%d", i), []int{1 + rng.Intn(4)}, 0, 0, adj, costs)
		require.NoError(t, err)
	}

	return g
}

func project(t testing.TB, g *subway.Graph, p matrix.Policy) *matrix.CostMatrix {
	t.Helper()
	m, err := matrix.Project(g, p)
	require.NoError(t, err)

	return m
}

// pathCost sums matrix weights along path, failing on any non-edge hop.
func pathCost(t testing.TB, m *matrix.CostMatrix, path []int) int64 {
	t.Helper()
	var sum int64
	for i := 0; i+1 < len(path); i++ {
		w, err := m.At(path[i], path[i+1])
		require.NoError(t, err)
		require.Positive(t, w, "hop %d→%d is not an edge", path[i], path[i+1])
		sum += w
	}

	return sum
}

// hops runs a plain BFS and returns the hop distance, or -1.
func hops(m *matrix.CostMatrix, s, d int) int {
	dist := make([]int, m.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, w := range m.Row(u) {
			if w > 0 && dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist[d]
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilMatrix(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 0, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilMatrix)
	_, err = dijkstra.ShortestPaths(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilMatrix)
}

func TestShortestPath_EmptyMatrixIsEmptyResult(t *testing.T) {
	m, err := matrix.NewCostMatrix(0)
	require.NoError(t, err)
	r, err := dijkstra.ShortestPath(m, 0, 0)
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, -1, r.Origin())
}

func TestShortestPath_IndexRange(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Weighted)
	_, err := dijkstra.ShortestPath(m, 4, 0)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.ShortestPath(m, 0, -1)
	assert.ErrorIs(t, err, dijkstra.ErrTargetOutOfRange)
}

func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.WithMaxCost(-1)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

func TestShortestPath_LineWeighted(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Weighted)
	r, err := dijkstra.ShortestPath(m, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Path)
	assert.Equal(t, int64(10), r.Cost)
	assert.Equal(t, 4, r.Len())
}

func TestShortestPath_LineHopCount(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Unweighted)
	r, err := dijkstra.ShortestPath(m, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Path)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, int64(3), r.Cost)
}

func TestShortestPath_SameVertex(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Weighted)
	r, err := dijkstra.ShortestPath(m, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Path)
	assert.Zero(t, r.Cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := lineGraph(t)
	_, err := g.Insert("Island", []int{9}, 0, 0, nil, nil)
	require.NoError(t, err)
	m := project(t, g, matrix.Weighted)
	_, err = dijkstra.ShortestPath(m, 0, 4)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	tree, err := dijkstra.ShortestPaths(m, 0)
	require.NoError(t, err)
	d, ok := tree.Distance(4)
	assert.False(t, ok)
	assert.Equal(t, dijkstra.Unreachable, d)
}

// A─huge─B─huge─C: the sum does not fit in int64, so C is out of reach
// until a representable detour A─5─D─5─C exists.
func TestShortestPath_HugeCostsDoNotOverflow(t *testing.T) {
	const huge = math.MaxInt64/2 + 1
	g := subway.NewGraph()
	_, err := g.Insert("A", []int{1}, 0, 0, nil, nil)
	require.NoError(t, err)
	_, err = g.Insert("B", []int{1}, 0, 0, []int{0}, []int64{huge})
	require.NoError(t, err)
	_, err = g.Insert("C", []int{1}, 0, 0, []int{1}, []int64{huge})
	require.NoError(t, err)

	r, err := dijkstra.ShortestPath(project(t, g, matrix.Weighted), 0, 2)
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.True(t, r.Empty())

	_, err = g.Insert("D", []int{1}, 0, 0, []int{0, 2}, []int64{5, 5})
	require.NoError(t, err)
	r, err = dijkstra.ShortestPath(project(t, g, matrix.Weighted), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, r.Path)
	assert.Equal(t, int64(10), r.Cost)
}

// A single arc may cost math.MaxInt64; its far end is still reached.
func TestShortestPath_MaxInt64ArcIsReachable(t *testing.T) {
	g := subway.NewGraph()
	_, err := g.Insert("A", []int{1}, 0, 0, nil, nil)
	require.NoError(t, err)
	_, err = g.Insert("B", []int{1}, 0, 0, []int{0}, []int64{math.MaxInt64})
	require.NoError(t, err)
	m := project(t, g, matrix.Weighted)

	r, err := dijkstra.ShortestPath(m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, r.Path)
	assert.Equal(t, int64(math.MaxInt64), r.Cost)

	tree, err := dijkstra.ShortestPaths(m, 1)
	require.NoError(t, err)
	d, ok := tree.Distance(0)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), d)
}

// Square with a cheap detour: A─1─B─1─C and A─5─C.
// Weighted picks the detour, hop count picks the direct link.
func TestShortestPath_PolicyChangesRoute(t *testing.T) {
	g := subway.NewGraph()
	_, err := g.Insert("A", []int{1}, 0, 0, nil, nil)
	require.NoError(t, err)
	_, err = g.Insert("B", []int{1}, 0, 0, []int{0}, []int64{1})
	require.NoError(t, err)
	_, err = g.Insert("C", []int{1}, 0, 0, []int{1, 0}, []int64{1, 5})
	require.NoError(t, err)

	r, err := dijkstra.ShortestPath(project(t, g, matrix.Weighted), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.Path)
	assert.Equal(t, int64(2), r.Cost)

	r, err = dijkstra.ShortestPath(project(t, g, matrix.Unweighted), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, r.Path)
}

// Two equal-cost routes 0→1→3 and 0→2→3: the first one found wins.
func TestShortestPath_TieKeepsFirstFound(t *testing.T) {
	g := subway.NewGraph()
	_, _ = g.Insert("S", []int{1}, 0, 0, nil, nil)
	_, _ = g.Insert("L", []int{1}, 0, 0, []int{0}, []int64{2})
	_, _ = g.Insert("R", []int{1}, 0, 0, []int{0}, []int64{2})
	_, err := g.Insert("T", []int{1}, 0, 0, []int{1, 2}, []int64{2, 2})
	require.NoError(t, err)

	m := project(t, g, matrix.Weighted)
	for i := 0; i < 5; i++ {
		r, err := dijkstra.ShortestPath(m, 0, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 3}, r.Path)
	}
}

func TestShortestPath_MaxCost(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Weighted)
	tree, err := dijkstra.ShortestPaths(m, 0, dijkstra.WithMaxCost(5))
	require.NoError(t, err)
	d, ok := tree.Distance(2)
	assert.True(t, ok)
	assert.Equal(t, int64(5), d)
	_, err = tree.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestTree_PathToReturnsCopy(t *testing.T) {
	m := project(t, lineGraph(t), matrix.Weighted)
	tree, err := dijkstra.ShortestPaths(m, 0)
	require.NoError(t, err)
	r, err := tree.PathTo(3)
	require.NoError(t, err)
	r.Path[0] = 99
	again, err := tree.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, again.Path)
}

// ------------------------------------------------------------------------
// 3. Properties on random graphs
// ------------------------------------------------------------------------

func TestShortestPath_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 10; round++ {
		g := randomGraph(t, rng, 25)
		m := project(t, g, matrix.Weighted)

		o := oracle.NewGraph()
		for i := 0; i < m.Size(); i++ {
			o.AddVertex(i)
		}
		for i := 0; i < m.Size(); i++ {
			for j, w := range m.Row(i) {
				if w > 0 {
					require.NoError(t, o.AddArc(i, j, w))
				}
			}
		}

		for s := 0; s < m.Size(); s += 3 {
			tree, err := dijkstra.ShortestPaths(m, s)
			require.NoError(t, err)
			for d := 0; d < m.Size(); d++ {
				r, err := tree.PathTo(d)
				if s == d {
					require.NoError(t, err)
					assert.Equal(t, []int{s}, r.Path)
					continue
				}
				best, oerr := o.Shortest(s, d)
				if oerr != nil {
					assert.ErrorIs(t, err, dijkstra.ErrUnreachable, "s=%d d=%d", s, d)
					continue
				}
				require.NoError(t, err, "s=%d d=%d", s, d)
				assert.Equal(t, best.Distance, r.Cost, "s=%d d=%d", s, d)
				assert.Equal(t, s, r.Origin())
				assert.Equal(t, d, r.Destination())
				assert.Equal(t, r.Cost, pathCost(t, m, r.Path))
			}
		}
	}
}

func TestShortestPath_UnweightedIsMinimalHops(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 10; round++ {
		g := randomGraph(t, rng, 20)
		m := project(t, g, matrix.Unweighted)
		for s := 0; s < m.Size(); s++ {
			for d := 0; d < m.Size(); d++ {
				want := hops(m, s, d)
				r, err := dijkstra.ShortestPath(m, s, d)
				if want < 0 {
					assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, want+1, r.Len(), "s=%d d=%d", s, d)
				pathCost(t, m, r.Path)
			}
		}
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGraph(t, rng, 30)
	m := project(t, g, matrix.Weighted)
	first, err1 := dijkstra.ShortestPath(m, 0, 29)
	for i := 0; i < 5; i++ {
		again, err2 := dijkstra.ShortestPath(project(t, g, matrix.Weighted), 0, 29)
		assert.Equal(t, err1, err2)
		assert.Equal(t, first, again)
	}
}

// ------------------------------------------------------------------------
// 4. Benchmarks
// ------------------------------------------------------------------------

func BenchmarkShortestPath(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := randomGraph(b, rng, 400)
	m := project(b, g, matrix.Weighted)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(m, 0, 399)
	}
}
