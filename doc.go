// Package lvmetro is an in-memory routing core for subway networks:
// stations served by numbered lines, linked by costed bidirectional arcs.
//
// Everything is organized under small packages:
//
//	subway/    - Graph store: stations, mirrored arcs, lines, tombstone removal
//	matrix/    - projection of a Graph to a dense cost matrix (hop or weighted)
//	dijkstra/  - single-source shortest paths over a cost matrix
//	transfer/  - line assignment with the fewest changes along a route
//	planner/   - query lifecycle: project, solve, minimize transfers, cache
//	nearby/    - nearest stations to a coordinate (R-tree + haversine)
//	seed/      - YAML/TOML network descriptions and graph building
//
// Quick ASCII example:
//
//	A ─3─ B ─2─ C ─5─ D
//	└─ line 1 ──┘└ line 2 ┘
//
// The cheapest A→D route is A,B,C,D with cost 10; it boards line 1 at A
// and changes once, to line 2 at C.
//
//	go install github.com/katalvlaran/lvmetro/cmd/lvmetro@latest
package lvmetro
