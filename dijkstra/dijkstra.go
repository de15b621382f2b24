package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmetro/matrix"
)

// ShortestPaths computes shortest distances and full paths from source to
// every vertex of m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. An empty matrix returns an empty Tree and no error.
//  3. source must lie in [0, n) (ErrSourceOutOfRange).
//
// Complexity:
//
//   - Time:  O(V² + E log V)
//   - Space: O(V·P + E)
func ShortestPaths(m *matrix.CostMatrix, source int, opts ...Option) (*Tree, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Size()
	if n == 0 {
		return &Tree{source: source}, nil
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source %d of %d: %w", source, n, ErrSourceOutOfRange)
	}

	// 3) Run.
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		paths:   make([][]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return &Tree{source: source, dist: r.dist, paths: r.paths}, nil
}

// ShortestPath returns the best route from source to target.
//
// An empty matrix yields an empty Route and a nil error. source == target
// yields the single-vertex route with cost 0. A disconnected target yields
// ErrUnreachable.
func ShortestPath(m *matrix.CostMatrix, source, target int, opts ...Option) (Route, error) {
	if m == nil {
		return Route{}, ErrNilMatrix
	}
	if m.Size() == 0 {
		return Route{}, nil
	}
	if target < 0 || target >= m.Size() {
		return Route{}, fmt.Errorf("target %d of %d: %w", target, m.Size(), ErrTargetOutOfRange)
	}

	t, err := ShortestPaths(m, source, opts...)
	if err != nil {
		return Route{}, err
	}

	return t.PathTo(target)
}

// runner holds the mutable state for a single execution.
type runner struct {
	m       *matrix.CostMatrix // read-only input
	options Options
	dist    []int64 // best-known distance per vertex
	paths   [][]int // best-known full path per vertex
	visited []bool  // finalized vertices
	pq      nodePQ  // lazy min-heap
	seq     uint64  // push counter, breaks heap ties by insertion order
}

// init sets every distance to Unreachable, then seeds the source.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[source] = 0
	r.paths[source] = []int{source}

	heap.Init(&r.pq)
	r.push(source, 0)
}

// process pops the closest unfinalized vertex until the heap drains or the
// next distance exceeds MaxCost.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry for a vertex finalized earlier.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id, item.dist)
	}
}

// relax scans row u of the matrix and improves every unvisited neighbor.
// Sums that would overflow int64 are never relaxed. A vertex is reached
// once it owns a path, so a distance of exactly math.MaxInt64 still counts.
func (r *runner) relax(u int, d int64) {
	row := r.m.Row(u)
	for v, w := range row {
		if w <= 0 || r.visited[v] || w > math.MaxInt64-d {
			continue
		}
		newDist := d + w
		if newDist > r.options.MaxCost {
			continue
		}
		if r.paths[v] != nil && newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist

		// Copy the whole path: v owns its route from now on.
		p := make([]int, len(r.paths[u])+1)
		copy(p, r.paths[u])
		p[len(p)-1] = v
		r.paths[v] = p

		r.push(v, newDist)
	}
}

func (r *runner) push(id int, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
