package particles_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/particles"
	"github.com/trafficsim/engine/roadnet"
)

// TestParticle_RapidStaysOnEdge is a randomized companion to
// TestParticle_StaysOnEdge (spec section 8 property 9): for any sequence of
// valid step durations, a particle's reported position never strays more
// than 1 m from the edge it currently occupies.
func TestParticle_RapidStaysOnEdge(t *testing.T) {
	features := []roadnet.Feature{
		{Highway: "residential", Coords: []roadnet.Point{{Lng: 0, Lat: 0}, {Lng: 0, Lat: 0.003}}},
	}
	res, err := roadnet.Build(features)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := res.Graph

	od := []demand.Pair{{Origin: 0, Dest: g.NumNodes() - 1}}
	metrics := openMetrics(g)
	pool := particles.BuildRoutePool(g, od, metrics)

	rapid.Check(t, func(rt *rapid.T) {
		src := demand.NewSource(int64(rapid.IntRange(1, 1<<30).Draw(rt, "seed")))

		p := particles.NewPool(g, pool, src)
		if len(p.Particles) == 0 {
			return
		}

		particle := &p.Particles[0]
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			dt := rapid.Float64Range(0.001, 1.0).Draw(rt, "dt")
			particles.Step(particle, g, pool, metrics, dt, src)

			route := pool.Routes[particle.RouteIdx]
			if particle.Cursor >= len(route) {
				continue
			}
			edge := g.EdgeAt(route[particle.Cursor])
			dist := distanceToSegment(g, edge, particle.Position)
			if dist > 1.0+1e-6 {
				rt.Fatalf("step %d: particle strayed %v m from its edge", i, dist)
			}
		}
	})
}
