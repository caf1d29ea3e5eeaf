package roadnet

import (
	"fmt"
	"math"
	"sort"
)

// repairConnectivity enforces the connectivity invariant of spec section 3:
// the undirected closure of the graph must be a single component. Residual
// components, ordered largest-first, are wired to the primary component by
// a pair of synthetic connector edges between their nearest cross-component
// node pair (brute force, acceptable at this scale per spec section 4.2).
func repairConnectivity(g *Graph) {
	components := undirectedComponents(g)
	if len(components) <= 1 {
		return
	}

	sort.Slice(components, func(i, j int) bool { return len(components[i]) > len(components[j]) })

	primary := components[0]
	builder := &graphBuilder{graph: g}
	for _, comp := range components[1:] {
		u, v := nearestCrossComponentPair(g, primary, comp)
		connectPair(builder, u, v)
		primary = append(primary, comp...)
	}
}

// undirectedComponents returns every connected component of the graph's
// undirected closure (an edge u->v implies u and v are connected regardless
// of direction), as lists of node indices.
func undirectedComponents(g *Graph) [][]int {
	undirectedAdj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		undirectedAdj[e.From] = append(undirectedAdj[e.From], e.To)
		undirectedAdj[e.To] = append(undirectedAdj[e.To], e.From)
	}

	visited := make([]bool, len(g.Nodes))
	var components [][]int
	for start := range g.Nodes {
		if visited[start] {
			continue
		}

		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			comp = append(comp, n)
			for _, nb := range undirectedAdj[n] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		components = append(components, comp)
	}

	return components
}

// nearestCrossComponentPair brute-force scans every (u in a, v in b) pair
// and returns the one with minimum haversine distance.
func nearestCrossComponentPair(g *Graph, a, b []int) (int, int) {
	best := math.Inf(1)
	bestU, bestV := a[0], b[0]
	for _, u := range a {
		pu := nodePoint(g, u)
		for _, v := range b {
			d := geoDistance(pu, nodePoint(g, v))
			if d < best {
				best = d
				bestU, bestV = u, v
			}
		}
	}

	return bestU, bestV
}

func nodePoint(g *Graph, idx int) Point {
	key := g.Nodes[idx].Key
	return Point{Lng: float64(key.Lng) / snapScale, Lat: float64(key.Lat) / snapScale}
}

func geoDistance(a, b Point) float64 {
	return segmentLengthM([]Point{a, b})
}

// connectPair adds a bidirected pair of synthetic connector edges between u
// and v at connector speed/capacity, attributed to ConnectorFeatureIndex so
// they never appear in feature-level metrics and can never be closed.
func connectPair(b *graphBuilder, u, v int) {
	coords := []Point{nodePoint(b.graph, u), nodePoint(b.graph, v)}
	lengthM := segmentLengthM(coords)
	if lengthM <= 1 {
		lengthM = 1.0001
	}
	speedMps := connectorSpec.speedKmh * kmhToMps
	t0 := lengthM / speedMps

	id := fmt.Sprintf("connector_%d_%d_a", u, v)
	b.addEdge(Edge{
		ID: id, FeatureIndex: ConnectorFeatureIndex, From: u, To: v,
		Coords: coords, LengthM: lengthM, Highway: connectorHighwayClass,
		SpeedMps: speedMps, Capacity: connectorSpec.capacity, T0: t0,
	})
	id2 := fmt.Sprintf("connector_%d_%d_b", u, v)
	b.addEdge(Edge{
		ID: id2, FeatureIndex: ConnectorFeatureIndex, From: v, To: u,
		Coords: reversed(coords), LengthM: lengthM, Highway: connectorHighwayClass,
		SpeedMps: speedMps, Capacity: connectorSpec.capacity, T0: t0,
	})
}
