// Package nearby finds stations close to a geographic point.
//
// An Index snapshots the live stations of a subway.Graph into an R-tree.
// Coordinates are projected with an equirectangular approximation centred on
// the network's mean latitude, which is accurate to well under a percent at
// city scale. The tree only narrows candidates; reported distances are
// great-circle metres.
//
// The Index does not follow later graph mutations. Rebuild it after
// inserting or removing stations.
package nearby

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"

	"github.com/katalvlaran/lvmetro/subway"
)

// metersPerDegree is the length of one degree of latitude on the
// orb.EarthRadius sphere.
const metersPerDegree = orb.EarthRadius * math.Pi / 180

// boxSlack widens search boxes to absorb projection error far from the
// mean latitude.
const boxSlack = 1.1

// Hit is one station found by a lookup.
type Hit struct {
	Index  int
	Name   string
	Meters float64
}

type station struct {
	name  string
	point orb.Point
}

// Index answers nearest-station queries.
type Index struct {
	tree     rtree.RTreeG[int]
	stations map[int]station
	cosLat   float64
}

// NewIndex builds an Index over the live stations of g. A nil or empty
// graph yields an empty Index.
func NewIndex(g *subway.Graph) *Index {
	idx := &Index{stations: make(map[int]station), cosLat: 1}
	if g == nil {
		return idx
	}

	var sum float64
	live := 0
	for _, v := range g.Vertices() {
		if !v.Removed {
			sum += v.Latitude
			live++
		}
	}
	if live == 0 {
		return idx
	}
	idx.cosLat = math.Cos(sum / float64(live) * math.Pi / 180)

	for i, v := range g.Vertices() {
		if v.Removed {
			continue
		}
		p := orb.Point{v.Longitude, v.Latitude}
		idx.stations[i] = station{name: v.Name, point: p}
		xy := idx.project(p)
		idx.tree.Insert(xy, xy, i)
	}

	return idx
}

// Len reports the number of indexed stations.
func (idx *Index) Len() int { return idx.tree.Len() }

// Nearest returns up to k stations closest to (lat, lon), nearest first.
func (idx *Index) Nearest(lat, lon float64, k int) []Hit {
	if k <= 0 || idx.tree.Len() == 0 {
		return nil
	}
	origin := orb.Point{lon, lat}
	xy := idx.project(origin)

	hits := make([]Hit, 0, k)
	idx.tree.Nearby(
		boxDist(xy),
		func(_, _ [2]float64, i int, _ float64) bool {
			hits = append(hits, idx.hit(i, origin))
			return len(hits) < k
		},
	)
	sortHits(hits)

	return hits
}

// Within returns every station no farther than meters from (lat, lon),
// nearest first.
func (idx *Index) Within(lat, lon, meters float64) []Hit {
	if meters < 0 || idx.tree.Len() == 0 {
		return nil
	}
	origin := orb.Point{lon, lat}
	xy := idx.project(origin)
	r := meters * boxSlack

	var hits []Hit
	idx.tree.Search(
		[2]float64{xy[0] - r, xy[1] - r},
		[2]float64{xy[0] + r, xy[1] + r},
		func(_, _ [2]float64, i int) bool {
			if h := idx.hit(i, origin); h.Meters <= meters {
				hits = append(hits, h)
			}
			return true
		},
	)
	sortHits(hits)

	return hits
}

// project maps a lon/lat point to planar metres.
func (idx *Index) project(p orb.Point) [2]float64 {
	return [2]float64{p.Lon() * metersPerDegree * idx.cosLat, p.Lat() * metersPerDegree}
}

func (idx *Index) hit(i int, origin orb.Point) Hit {
	s := idx.stations[i]
	return Hit{Index: i, Name: s.name, Meters: geo.DistanceHaversine(origin, s.point)}
}

// boxDist ranks tree nodes and items by squared planar distance from p.
func boxDist(p [2]float64) func(min, max [2]float64, _ int, _ bool) float64 {
	return func(min, max [2]float64, _ int, _ bool) float64 {
		var d float64
		for a := 0; a < 2; a++ {
			switch {
			case p[a] < min[a]:
				d += (min[a] - p[a]) * (min[a] - p[a])
			case p[a] > max[a]:
				d += (p[a] - max[a]) * (p[a] - max[a])
			}
		}
		return d
	}
}

// sortHits orders by distance, then index for equal distances.
func sortHits(hits []Hit) {
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Meters != hits[b].Meters {
			return hits[a].Meters < hits[b].Meters
		}
		return hits[a].Index < hits[b].Index
	})
}
