package engine

import "github.com/trafficsim/engine/particles"

// AdvanceParticles steps every particle in the current pool by dtSeconds
// against the current route pool and edge metrics (spec section 4.8). It
// is meant to be called on a fixed-cadence external timer (spec section 5
// names ≈90ms); Engine itself does not run a timer for this tick, matching
// the "lazy, finite, restartable sequence" delivery model of spec section
// 6 rather than an internal goroutine loop.
func (e *Engine) AdvanceParticles(dtSeconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.graph == nil {
		return
	}

	pts := e.particlePool.Particles
	exhausted := 0
	for i := range pts {
		if particles.Step(&pts[i], e.graph, e.routePool, e.result.EdgeMetrics, dtSeconds, e.src) {
			exhausted++
		}
	}

	if exhausted > 0 {
		e.log.Warn().
			Str("tag", logTagParticle).
			Int("exhausted", exhausted).
			Int("particles", len(pts)).
			Msg("particle exhausted route pool during stepping")
	}
}
