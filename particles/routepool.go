package particles

import (
	"math"

	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
	"github.com/trafficsim/engine/sssp"
)

// BuildRoutePool buckets od by destination, builds one reverse Dijkstra tree
// per bucket over the final assignment's edge times, and reconstructs every
// OD pair's path from its bucket's tree. Empty paths are skipped. The pool
// is capped at RoutePoolCap; if it ends up empty, one route per open edge is
// used instead, up to the same cap (spec section 4.8).
func BuildRoutePool(g *roadnet.Graph, od []demand.Pair, edgeMetrics []assignment.EdgeMetric) RoutePool {
	times := floorTimes(edgeMetrics)

	buckets := make(map[int][]demand.Pair)
	for _, pair := range od {
		buckets[pair.Dest] = append(buckets[pair.Dest], pair)
	}

	var routes []Route
	for dest, pairs := range buckets {
		if len(routes) >= RoutePoolCap {
			break
		}

		tree := sssp.ReverseTree(g, times, dest)
		for _, pair := range pairs {
			if len(routes) >= RoutePoolCap {
				break
			}

			path := sssp.Path(g, tree, pair.Origin)
			if len(path) == 0 {
				continue
			}
			routes = append(routes, Route(path))
		}
	}

	if len(routes) == 0 {
		routes = fallbackRoutes(g, edgeMetrics)
	}

	return RoutePool{Routes: routes}
}

// floorTimes copies edge times from edgeMetrics, flooring every finite
// value at minEdgeTimeSeconds (spec section 4.8). Non-finite (closed) times
// pass through unchanged so the reverse tree still treats them as
// impassable.
func floorTimes(edgeMetrics []assignment.EdgeMetric) []float64 {
	times := make([]float64, len(edgeMetrics))
	for i, em := range edgeMetrics {
		if math.IsInf(em.Time, 1) {
			times[i] = em.Time
			continue
		}
		times[i] = math.Max(em.Time, minEdgeTimeSeconds)
	}

	return times
}

// fallbackRoutes returns one single-edge route per open edge, up to
// RoutePoolCap, for use when the OD-derived pool comes back empty (e.g. a
// fully disconnected network).
func fallbackRoutes(g *roadnet.Graph, edgeMetrics []assignment.EdgeMetric) []Route {
	var routes []Route
	for i := range g.Edges {
		if len(routes) >= RoutePoolCap {
			break
		}
		if i < len(edgeMetrics) && edgeMetrics[i].Closed {
			continue
		}
		routes = append(routes, Route{i})
	}

	return routes
}
