package roadnet_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/trafficsim/engine/roadnet"
)

// randomGridFeature draws a short polyline whose vertices sit on a coarse
// integer grid, so adjacent features frequently share a snapped node the
// way real intersecting streets do.
func randomGridFeature(t *rapid.T, tag string) roadnet.Feature {
	n := rapid.IntRange(2, 4).Draw(t, tag+"_len")
	coords := make([]roadnet.Point, n)
	for i := range coords {
		lng := rapid.IntRange(0, 4).Draw(t, tag+"_lng")
		lat := rapid.IntRange(0, 4).Draw(t, tag+"_lat")
		coords[i] = roadnet.Point{Lng: float64(lng) * 0.01, Lat: float64(lat) * 0.01}
	}

	classes := []string{"residential", "service", "tertiary", "road"}
	class := classes[rapid.IntRange(0, len(classes)-1).Draw(t, tag+"_class")]

	return roadnet.Feature{Highway: class, Coords: coords}
}

// TestBuild_RapidGraphDuality is a randomized companion to
// TestBuild_GraphDuality (spec section 8 property 1): every directed edge
// Build produces has a reverse counterpart of identical length and T0,
// across arbitrarily shaped (valid) input feature collections.
func TestBuild_RapidGraphDuality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(t, "featureCount")
		features := make([]roadnet.Feature, count)
		for i := range features {
			features[i] = randomGridFeature(t, "f")
		}

		res, err := roadnet.Build(features)
		if err != nil {
			// An all-degenerate draw (every vertex collapses to the same
			// snapped node) is the only way Build legitimately errors here.
			return
		}

		g := res.Graph
		for _, e := range g.Edges {
			found := false
			for _, other := range g.Edges {
				if other.From == e.To && other.To == e.From {
					if floatsClose(other.LengthM, e.LengthM, 1e-6) && floatsClose(other.T0, e.T0, 1e-9) {
						found = true
						break
					}
				}
			}
			if !found {
				t.Fatalf("edge %s (%d->%d) has no matching reverse counterpart", e.ID, e.From, e.To)
			}
		}
	})
}

// TestBuild_RapidConnectivity is a randomized companion to
// TestBuild_Connectivity (spec section 8 property 2): Build's connectivity
// repair pass always leaves a single undirected component, regardless of
// how fragmented the input feature set is.
func TestBuild_RapidConnectivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(t, "featureCount")
		features := make([]roadnet.Feature, count)
		for i := range features {
			features[i] = randomGridFeature(t, "f")
		}

		res, err := roadnet.Build(features)
		if err != nil {
			return
		}

		g := res.Graph
		if g.NumNodes() == 0 {
			return
		}

		undirected := make([][]int, g.NumNodes())
		for _, e := range g.Edges {
			undirected[e.From] = append(undirected[e.From], e.To)
			undirected[e.To] = append(undirected[e.To], e.From)
		}

		visited := make([]bool, g.NumNodes())
		queue := []int{0}
		visited[0] = true
		count2 := 1
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for _, nb := range undirected[n] {
				if !visited[nb] {
					visited[nb] = true
					count2++
					queue = append(queue, nb)
				}
			}
		}

		if count2 != g.NumNodes() {
			t.Fatalf("undirected closure has %d reachable nodes, want all %d", count2, g.NumNodes())
		}
	})
}

func floatsClose(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
