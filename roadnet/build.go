package roadnet

import (
	"fmt"
	"math"

	"github.com/trafficsim/engine/geo"
)

// snapScale is the 1e-4 degree rounding grid nodes are snapped to (spec
// section 3, "Node").
const snapScale = 1e4

// BuildResult wraps a freshly built Graph together with the diagnostic
// tallies spec section 7 calls for ("Invalid input geometry ... counted in
// a diagnostic tally"). These counters are informational only; they never
// gate any invariant.
type BuildResult struct {
	Graph           *Graph
	SkippedFeatures int // features with fewer than two valid vertices
}

// Build ingests a feature collection into a bidirected, connectivity-
// repaired Graph (spec section 4.2). Features with fewer than two finite
// coordinates are dropped (their FeatureIndex never appears in the graph).
func Build(features []Feature) (BuildResult, error) {
	builder := &graphBuilder{
		graph: &Graph{
			nodeIndex:    make(map[NodeKey]int),
			featureEdges: make(map[int][]int),
		},
	}

	skipped := 0
	for featureIdx, f := range features {
		valid := validCoords(f.Coords)
		if len(valid) < 2 {
			skipped++
			continue
		}
		builder.ingestFeature(featureIdx, f, valid)
	}

	if len(builder.graph.Edges) == 0 {
		return BuildResult{}, ErrNoValidFeatures
	}

	builder.graph.BBox = bboxOf(builder.allCoords)
	repairConnectivity(builder.graph)

	return BuildResult{Graph: builder.graph, SkippedFeatures: skipped}, nil
}

// graphBuilder accumulates state while Build ingests features, before the
// Graph is handed back as an immutable value.
type graphBuilder struct {
	graph     *Graph
	allCoords []Point // every valid vertex seen, for the bounding box.
}

// validCoords filters out coordinates with a non-finite component.
func validCoords(coords []Point) []Point {
	out := make([]Point, 0, len(coords))
	for _, c := range coords {
		if isFinite(c.Lng) && isFinite(c.Lat) {
			out = append(out, c)
		}
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func snap(p Point) NodeKey {
	return NodeKey{
		Lng: int64(math.Round(p.Lng * snapScale)),
		Lat: int64(math.Round(p.Lat * snapScale)),
	}
}

// nodeFor returns the node index for key, creating a new Node if one does
// not already exist.
func (b *graphBuilder) nodeFor(key NodeKey) int {
	if idx, ok := b.graph.nodeIndex[key]; ok {
		return idx
	}

	idx := len(b.graph.Nodes)
	b.graph.Nodes = append(b.graph.Nodes, Node{ID: idx, Key: key})
	b.graph.nodeIndex[key] = idx
	b.graph.Out = append(b.graph.Out, nil)

	return idx
}

// ingestFeature emits a forward/backward edge pair for every consecutive
// vertex pair of one feature's polyline.
func (b *graphBuilder) ingestFeature(featureIdx int, f Feature, coords []Point) {
	b.allCoords = append(b.allCoords, coords...)

	_, spec := resolveHighway(f.Highway)
	speedMps := spec.speedKmh * kmhToMps

	for seg := 0; seg+1 < len(coords); seg++ {
		fromKey := snap(coords[seg])
		toKey := snap(coords[seg+1])
		from := b.nodeFor(fromKey)
		to := b.nodeFor(toKey)
		if from == to {
			continue
		}

		segCoords := []Point{coords[seg], coords[seg+1]}
		lengthM := segmentLengthM(segCoords)
		if lengthM <= 1 {
			lengthM = 1.0001 // preserve the LengthM > 1 invariant for near-coincident snaps.
		}
		t0 := lengthM / speedMps

		fwdID := fmt.Sprintf("%d_%d_a", featureIdx, seg)
		revID := fmt.Sprintf("%d_%d_b", featureIdx, seg)

		b.addEdge(Edge{
			ID: fwdID, FeatureIndex: featureIdx, From: from, To: to,
			Coords: segCoords, LengthM: lengthM, Highway: f.Highway,
			SpeedMps: speedMps, Capacity: spec.capacity, T0: t0,
		})
		b.addEdge(Edge{
			ID: revID, FeatureIndex: featureIdx, From: to, To: from,
			Coords: reversed(segCoords), LengthM: lengthM, Highway: f.Highway,
			SpeedMps: speedMps, Capacity: spec.capacity, T0: t0,
		})
	}
}

func (b *graphBuilder) addEdge(e Edge) {
	idx := len(b.graph.Edges)
	b.graph.Edges = append(b.graph.Edges, e)
	b.graph.Out[e.From] = append(b.graph.Out[e.From], idx)
	if e.FeatureIndex != ConnectorFeatureIndex {
		b.graph.featureEdges[e.FeatureIndex] = append(b.graph.featureEdges[e.FeatureIndex], idx)
	}
}

func reversed(coords []Point) []Point {
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}

	return out
}

func segmentLengthM(coords []Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(coords); i++ {
		total += geo.HaversineM(toGeoPoint(coords[i]), toGeoPoint(coords[i+1]))
	}

	return total
}

func toGeoPoint(p Point) geo.Point { return geo.Point{Lng: p.Lng, Lat: p.Lat} }

func bboxOf(coords []Point) BBox {
	if len(coords) == 0 {
		// Fallback box centered on a downtown anchor (spec section 4.2).
		return BBox{MinLng: -0.05, MaxLng: 0.05, MinLat: -0.05, MaxLat: 0.05}
	}

	b := BBox{MinLng: coords[0].Lng, MaxLng: coords[0].Lng, MinLat: coords[0].Lat, MaxLat: coords[0].Lat}
	for _, c := range coords[1:] {
		if c.Lng < b.MinLng {
			b.MinLng = c.Lng
		}
		if c.Lng > b.MaxLng {
			b.MaxLng = c.Lng
		}
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
	}

	return b
}
