// Package planner owns the route-query lifecycle over one subway.Graph:
// project the graph, run the solver, minimize transfers, and hand the
// caller a complete Itinerary.
//
// A Planner holds no global state; construct one per graph and pass it to
// whatever drives queries. It is not safe for concurrent use while the
// graph is being mutated.
package planner

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/bluele/gcache"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmetro/dijkstra"
	"github.com/katalvlaran/lvmetro/matrix"
	"github.com/katalvlaran/lvmetro/subway"
	"github.com/katalvlaran/lvmetro/transfer"
)

// Sentinel errors returned by the planner. Errors from the subway, dijkstra
// and transfer packages are passed through wrapped, so errors.Is works on them too.
var (
	ErrNilGraph       = errors.New("planner: graph is nil")
	ErrEmptyGraph     = errors.New("planner: graph has no stations")
	ErrUnknownStation = errors.New("planner: unknown station")
)

// DefaultCacheSize is the number of routes kept by a Planner built without
// WithCacheSize.
const DefaultCacheSize = 256

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for query traces (debug level).
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCacheSize sets how many routes are memoized. 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(p *Planner) { p.cacheSize = n }
}

// Planner answers route queries on a graph.
type Planner struct {
	g         *subway.Graph
	logger    *log.Logger
	cacheSize int
	cache     gcache.Cache // nil when disabled
}

// routeKey identifies a cached route. Including the graph generation makes
// every mutation invalidate earlier entries.
type routeKey struct {
	generation  uint64
	origin      int
	destination int
	weighted    bool
}

// New creates a Planner for g.
func New(g *subway.Graph, opts ...Option) *Planner {
	p := &Planner{
		g:         g,
		logger:    log.New(io.Discard),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cacheSize > 0 {
		p.cache = gcache.New(p.cacheSize).LRU().Build()
	}

	return p
}

// Graph returns the graph the planner queries.
func (p *Planner) Graph() *subway.Graph { return p.g }

// FindShortestPath returns the best route between two station indices.
// weighted selects true travel cost; otherwise the route minimizes the
// number of stations.
//
// Outcomes:
//   - ErrEmptyGraph when the graph holds no station.
//   - subway.ErrInvalidIndex / subway.ErrStationRemoved for bad endpoints.
//   - dijkstra.ErrUnreachable when no path exists.
func (p *Planner) FindShortestPath(origin, destination int, weighted bool) (dijkstra.Route, error) {
	if err := p.checkEndpoints(origin, destination); err != nil {
		return dijkstra.Route{}, err
	}

	key := routeKey{
		generation:  p.g.Generation(),
		origin:      origin,
		destination: destination,
		weighted:    weighted,
	}
	if r, ok := p.cached(key); ok {
		p.logger.Debug("route cache hit", "origin", origin, "destination", destination, "weighted", weighted)
		return r, nil
	}

	policy := matrix.PolicyFor(weighted)
	m, err := matrix.Project(p.g, policy)
	if err != nil {
		return dijkstra.Route{}, fmt.Errorf("project: %w", err)
	}
	r, err := dijkstra.ShortestPath(m, origin, destination)
	if err != nil {
		p.logger.Debug("no route", "origin", origin, "destination", destination, "policy", policy, "err", err)
		return dijkstra.Route{}, fmt.Errorf("route %d→%d: %w", origin, destination, err)
	}
	p.logger.Debug("route found", "origin", origin, "destination", destination, "policy", policy,
		"stations", r.Len(), "cost", r.Cost)

	if p.cache != nil {
		if err := p.cache.Set(key, r); err != nil {
			p.logger.Debug("route not cached", "origin", origin, "destination", destination, "err", err)
		}
	}

	return dijkstra.Route{Path: slices.Clone(r.Path), Cost: r.Cost}, nil
}

// FindMinimalTransferPlan returns the line assignment with the fewest
// changes along path.
func (p *Planner) FindMinimalTransferPlan(path []int) (transfer.Plan, error) {
	if p.g == nil {
		return transfer.Plan{}, ErrNilGraph
	}
	plan, err := transfer.Minimize(p.g, path)
	if err != nil {
		p.logger.Error("transfer search failed", "path", path, "err", err)
		return transfer.Plan{}, err
	}
	p.logger.Debug("transfer plan", "transfers", plan.Count, "lines", plan.Lines())

	return plan, nil
}

// Itinerary is a resolved query: the route, its transfer plan and the
// station names along it.
type Itinerary struct {
	Route    dijkstra.Route
	Plan     transfer.Plan
	Stations []string
}

// Query resolves station names, finds the route and its transfer plan.
func (p *Planner) Query(originName, destinationName string, weighted bool) (*Itinerary, error) {
	if p.g == nil {
		return nil, ErrNilGraph
	}
	origin, ok := p.g.IndexOf(originName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, originName)
	}
	destination, ok := p.g.IndexOf(destinationName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, destinationName)
	}

	r, err := p.FindShortestPath(origin, destination, weighted)
	if err != nil {
		return nil, err
	}
	plan, err := p.FindMinimalTransferPlan(r.Path)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(r.Path))
	for i, idx := range r.Path {
		v, err := p.g.VertexAt(idx)
		if err != nil {
			return nil, err
		}
		names[i] = v.Name
	}

	return &Itinerary{Route: r, Plan: plan, Stations: names}, nil
}

func (p *Planner) checkEndpoints(origin, destination int) error {
	if p.g == nil {
		return ErrNilGraph
	}
	if p.g.Size() == 0 {
		return ErrEmptyGraph
	}
	for _, i := range [2]int{origin, destination} {
		v, err := p.g.VertexAt(i)
		if err != nil {
			return err
		}
		if v.Removed {
			return fmt.Errorf("vertex %d: %w", i, subway.ErrStationRemoved)
		}
	}

	return nil
}

func (p *Planner) cached(key routeKey) (dijkstra.Route, bool) {
	if p.cache == nil {
		return dijkstra.Route{}, false
	}
	v, err := p.cache.Get(key)
	if err != nil {
		return dijkstra.Route{}, false
	}
	r, ok := v.(dijkstra.Route)
	if !ok {
		return dijkstra.Route{}, false
	}

	return dijkstra.Route{Path: slices.Clone(r.Path), Cost: r.Cost}, true
}
