package particles

import (
	"math"

	"github.com/google/uuid"

	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
)

// NewPool instantiates the particle population for pool: target =
// clamp(max(40, round(0.14*|pool|)), 40, 420) particles, each assigned a
// random route, a random edge along it, and a random initial progress in
// [0, 0.8*edgeLength] (spec section 4.8). Returns an empty Pool if pool has
// no routes.
func NewPool(g *roadnet.Graph, pool RoutePool, src *demand.Source) Pool {
	if len(pool.Routes) == 0 {
		return Pool{}
	}

	target := particleTarget(len(pool.Routes))
	particles := make([]Particle, target)
	for i := range particles {
		particles[i] = newParticle(g, pool, src)
	}

	return Pool{Particles: particles}
}

// particleTarget implements clamp(max(40, round(0.14*poolSize)), 40, 420).
func particleTarget(poolSize int) int {
	target := int(math.Round(targetFraction * float64(poolSize)))
	if target < targetMinParticles {
		target = targetMinParticles
	}
	if target > targetMaxParticles {
		target = targetMaxParticles
	}

	return target
}

// newParticle assigns a fresh random route, edge cursor and progress,
// computing the resulting world position by interpolation.
func newParticle(g *roadnet.Graph, pool RoutePool, src *demand.Source) Particle {
	p := Particle{ID: uuid.NewString()}
	assignRandomRoute(&p, g, pool, src)

	return p
}

// assignRandomRoute picks a random route and a random edge cursor along it,
// sets progress to a random fraction of that edge's length, and recomputes
// the particle's position. Used both at creation and on reassignment.
func assignRandomRoute(p *Particle, g *roadnet.Graph, pool RoutePool, src *demand.Source) {
	p.RouteIdx = src.Intn(len(pool.Routes))
	route := pool.Routes[p.RouteIdx]
	p.Cursor = src.Intn(len(route))

	edge := g.EdgeAt(route[p.Cursor])
	p.Progress = src.Float64() * progressFraction * edge.LengthM
	p.Position = interpolate(g, edge, p.Progress)
}

// Step advances p by dtSeconds, clamped to [minDtSeconds, maxDtSeconds],
// against the given route pool and the latest edge metrics (spec section
// 4.8). If p's current edge is closed or non-finite, p is reassigned a new
// random route; up to maxReassignHops reassignments are attempted per call.
// Step returns true if it exhausted every hop without landing on a usable
// edge, leaving p in place for the next tick (spec section 7, "Exhausted
// route pool during stepping") — the caller is responsible for logging that
// condition, since this package has no logger of its own.
func Step(p *Particle, g *roadnet.Graph, pool RoutePool, edgeMetrics []assignment.EdgeMetric, dtSeconds float64, src *demand.Source) bool {
	if len(pool.Routes) == 0 {
		return true
	}

	dt := clampDt(dtSeconds)

	hops := 0
	for hops < maxReassignHops {
		route := pool.Routes[p.RouteIdx]
		if p.Cursor >= len(route) {
			assignRandomRoute(p, g, pool, src)
			hops++
			continue
		}

		edgeIdx := route[p.Cursor]
		em := edgeMetrics[edgeIdx]
		if em.Closed || !validTime(em.Time) {
			assignRandomRoute(p, g, pool, src)
			hops++
			continue
		}

		advance(p, g, pool, edgeMetrics, em, dt, src)
		return false
	}

	return true
}

// advance moves p along its current edge by speed*dt, rolling over into
// subsequent route edges (or reassigning on route exhaustion) as needed.
func advance(p *Particle, g *roadnet.Graph, pool RoutePool, edgeMetrics []assignment.EdgeMetric, em assignment.EdgeMetric, dt float64, src *demand.Source) {
	route := pool.Routes[p.RouteIdx]
	edge := g.EdgeAt(route[p.Cursor])

	speed := math.Min(maxSpeedMps, math.Max(minSpeedMps, edge.LengthM/em.Time)) * speedBoost
	p.Progress += speed * dt

	limit := len(route) + 1
	for p.Progress >= edge.LengthM && limit > 0 {
		p.Progress -= edge.LengthM
		p.Cursor++
		limit--

		if p.Cursor >= len(route) {
			assignRandomRoute(p, g, pool, src)
			return
		}

		route = pool.Routes[p.RouteIdx]
		nextIdx := route[p.Cursor]
		if edgeMetrics[nextIdx].Closed || !validTime(edgeMetrics[nextIdx].Time) {
			assignRandomRoute(p, g, pool, src)
			return
		}
		edge = g.EdgeAt(nextIdx)
	}

	p.Position = interpolate(g, edge, p.Progress)
}

// interpolate returns the position progressM along edge, linearly
// interpolated between its endpoint nodes (spec section 4.8, spec section 8
// property 9).
func interpolate(g *roadnet.Graph, edge roadnet.Edge, progressM float64) Position {
	from := nodePosition(g, edge.From)
	to := nodePosition(g, edge.To)

	frac := 0.0
	if edge.LengthM > 0 {
		frac = progressM / edge.LengthM
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	return Position{
		Lng: from.Lng + frac*(to.Lng-from.Lng),
		Lat: from.Lat + frac*(to.Lat-from.Lat),
	}
}

// nodePosition decodes a node's 1e-4-degree-rounded key back to [lng, lat].
func nodePosition(g *roadnet.Graph, nodeIdx int) Position {
	key := g.NodeAt(nodeIdx).Key

	return Position{Lng: float64(key.Lng) / 1e4, Lat: float64(key.Lat) / 1e4}
}

func validTime(t float64) bool {
	return !math.IsInf(t, 0) && !math.IsNaN(t) && t > 0
}

func clampDt(dt float64) float64 {
	if dt < minDtSeconds {
		return minDtSeconds
	}
	if dt > maxDtSeconds {
		return maxDtSeconds
	}

	return dt
}
