package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficsim/engine/roadnet"
	"github.com/trafficsim/engine/sssp"
)

// grid3x3 builds a 3x3 residential grid (12 directed-pair edges before
// connectivity repair, which is a no-op here since the grid is already
// connected) matching spec section 8 scenario S2.
func grid3x3(t *testing.T) (*roadnet.Graph, map[string]int) {
	t.Helper()

	var features []roadnet.Feature
	coordAt := func(r, c int) roadnet.Point {
		return roadnet.Point{Lng: float64(c) * 0.01, Lat: float64(r) * 0.01}
	}

	// Horizontal roads.
	for r := 0; r < 3; r++ {
		features = append(features, roadnet.Feature{
			Highway: "residential",
			Coords:  []roadnet.Point{coordAt(r, 0), coordAt(r, 1), coordAt(r, 2)},
		})
	}
	// Vertical roads.
	for c := 0; c < 3; c++ {
		features = append(features, roadnet.Feature{
			Highway: "residential",
			Coords:  []roadnet.Point{coordAt(0, c), coordAt(1, c), coordAt(2, c)},
		})
	}

	res, err := roadnet.Build(features)
	require.NoError(t, err)

	ids := make(map[string]int)
	for i, n := range res.Graph.Nodes {
		lng := float64(n.Key.Lng) / 10000
		lat := float64(n.Key.Lat) / 10000
		r := int(math.Round(lat / 0.01))
		c := int(math.Round(lng / 0.01))
		ids[key(r, c)] = i
	}

	return res.Graph, ids
}

func key(r, c int) string {
	return string(rune('A'+r)) + string(rune('0'+c))
}

func freeFlowTimes(g *roadnet.Graph) []float64 {
	times := make([]float64, g.NumEdges())
	for i, e := range g.Edges {
		times[i] = e.T0
	}

	return times
}

func TestForward_ManhattanPathOnGrid(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)

	nw := ids[key(0, 0)]
	se := ids[key(2, 2)]

	path := sssp.Forward(g, times, nw, se)
	require.NotEmpty(t, path)
	assert.Len(t, path, 4) // NW -> SE is 4 hops on a 3x3 grid

	// First edge leaves nw, last edge arrives at se.
	assert.Equal(t, nw, g.EdgeAt(path[0]).From)
	assert.Equal(t, se, g.EdgeAt(path[len(path)-1]).To)
}

func TestForward_SameOriginDest(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)
	n := ids[key(1, 1)]
	assert.Equal(t, []int{}, sssp.Forward(g, times, n, n))
}

func TestForward_Unreachable_WhenAllOutgoingClosed(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)
	origin := ids[key(0, 0)]
	for _, edgeIdx := range g.Out[origin] {
		times[edgeIdx] = math.Inf(1)
	}

	path := sssp.Forward(g, times, origin, ids[key(2, 2)])
	assert.Nil(t, path)
}

func TestReverseTree_ConsistentWithForward(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)

	nw := ids[key(0, 0)]
	se := ids[key(2, 2)]

	tree := sssp.ReverseTree(g, times, se)
	path := sssp.Path(g, tree, nw)

	require.NotEmpty(t, path)
	assert.Equal(t, nw, g.EdgeAt(path[0]).From)
	assert.Equal(t, se, g.EdgeAt(path[len(path)-1]).To)

	fwd := sssp.Forward(g, times, nw, se)
	assert.Len(t, path, len(fwd))
}

func TestReverseTree_SameOriginDest(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)
	n := ids[key(1, 1)]

	tree := sssp.ReverseTree(g, times, n)
	assert.Equal(t, []int{}, sssp.Path(g, tree, n))
}

func TestReverseTree_UnreachableReturnsNil(t *testing.T) {
	g, ids := grid3x3(t)
	times := freeFlowTimes(g)
	dest := ids[key(2, 2)]
	origin := ids[key(0, 0)]
	for _, edgeIdx := range g.Out[origin] {
		times[edgeIdx] = math.Inf(1)
	}

	tree := sssp.ReverseTree(g, times, dest)
	assert.Nil(t, sssp.Path(g, tree, origin))
}
