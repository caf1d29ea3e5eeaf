package particles_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/particles"
	"github.com/trafficsim/engine/roadnet"
)

func straightRoad(t *testing.T) *roadnet.Graph {
	t.Helper()
	features := []roadnet.Feature{
		{Highway: "residential", Coords: []roadnet.Point{{Lng: 0, Lat: 0}, {Lng: 0, Lat: 0.003}}},
	}
	res, err := roadnet.Build(features)
	require.NoError(t, err)

	return res.Graph
}

func openMetrics(g *roadnet.Graph) []assignment.EdgeMetric {
	metrics := make([]assignment.EdgeMetric, g.NumEdges())
	for i, e := range g.Edges {
		metrics[i] = assignment.EdgeMetric{Time: e.T0, DelayFactor: 1, Closed: false}
	}

	return metrics
}

func TestBuildRoutePool_ReconstructsPaths(t *testing.T) {
	g := straightRoad(t)
	od := []demand.Pair{{Origin: 0, Dest: g.NumNodes() - 1}}

	pool := particles.BuildRoutePool(g, od, openMetrics(g))
	require.Len(t, pool.Routes, 1)
	assert.NotEmpty(t, pool.Routes[0])
}

func TestBuildRoutePool_FallsBackWhenEmpty(t *testing.T) {
	g := straightRoad(t)

	pool := particles.BuildRoutePool(g, nil, openMetrics(g))
	assert.Len(t, pool.Routes, g.NumEdges())
}

func TestNewPool_TargetClampedToMinimum(t *testing.T) {
	g := straightRoad(t)
	pool := particles.RoutePool{Routes: []particles.Route{{0}}}
	src := demand.NewSource(1)

	p := particles.NewPool(g, pool, src)
	assert.Len(t, p.Particles, 40)
}

// TestParticle_StaysOnEdge locks in spec section 8 property 9: a particle's
// position always lies within ±1 m of its current edge.
func TestParticle_StaysOnEdge(t *testing.T) {
	g := straightRoad(t)
	od := []demand.Pair{{Origin: 0, Dest: g.NumNodes() - 1}}
	metrics := openMetrics(g)
	pool := particles.BuildRoutePool(g, od, metrics)
	src := demand.NewSource(42)

	p := particles.NewPool(g, pool, src)
	require.NotEmpty(t, p.Particles)

	particle := &p.Particles[0]
	for i := 0; i < 50; i++ {
		particles.Step(particle, g, pool, metrics, 0.1, src)

		route := pool.Routes[particle.RouteIdx]
		if particle.Cursor >= len(route) {
			continue
		}
		edge := g.EdgeAt(route[particle.Cursor])
		dist := distanceToSegment(g, edge, particle.Position)
		assert.LessOrEqual(t, dist, 1.0+1e-6)
	}
}

func distanceToSegment(g *roadnet.Graph, edge roadnet.Edge, pos particles.Position) float64 {
	from := g.NodeAt(edge.From).Key
	to := g.NodeAt(edge.To).Key

	fx, fy := float64(from.Lng)/1e4, float64(from.Lat)/1e4
	tx, ty := float64(to.Lng)/1e4, float64(to.Lat)/1e4

	// Degenerate-segment guard: treat as a point.
	dx, dy := tx-fx, ty-fy
	if dx == 0 && dy == 0 {
		return haversineApprox(fx, fy, pos.Lng, pos.Lat)
	}

	tpar := ((pos.Lng-fx)*dx + (pos.Lat-fy)*dy) / (dx*dx + dy*dy)
	if tpar < 0 {
		tpar = 0
	}
	if tpar > 1 {
		tpar = 1
	}
	projLng := fx + tpar*dx
	projLat := fy + tpar*dy

	return haversineApprox(projLng, projLat, pos.Lng, pos.Lat)
}

// haversineApprox is a minimal great-circle approximation sufficient for
// sub-metre assertions in this test, independent of package geo.
func haversineApprox(lng1, lat1, lng2, lat2 float64) float64 {
	const earthRadiusM = 6371000.0
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
