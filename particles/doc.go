// Package particles builds the capped route pool from an OD set and an
// assignment result, instantiates a particle population over that pool, and
// steps particles along their routes at BPR-derived speeds (spec section
// 4.8).
//
// A Route is an ordered edge-index slice. A Particle carries an id, its
// route, a cursor into that route, along-edge progress in metres, and its
// current interpolated position. Stepping and re-routing never allocate a
// new route slice per particle per tick; reassignment just swaps the
// particle's route index and picks a new random cursor along that route.
package particles

// RoutePoolCap is the hard cap on the number of routes retained (spec
// section 4.8).
const RoutePoolCap = 1600

// minEdgeTimeSeconds floors an edge's assigned time before it feeds the
// reverse-tree build, avoiding zero-cost loops in degenerate inputs (spec
// section 4.8).
const minEdgeTimeSeconds = 0.05

// targetMinParticles, targetMaxParticles and targetFraction compute the
// particle-pool size target: clamp(max(40, round(0.14*|pool|)), 40, 420)
// (spec section 4.8).
const (
	targetMinParticles = 40
	targetMaxParticles = 420
	targetFraction     = 0.14
)

// minDtSeconds, maxDtSeconds clamp the per-tick time delta (spec section 4.8).
const (
	minDtSeconds = 0.01
	maxDtSeconds = 0.3
)

// minSpeedMps, maxSpeedMps and speedBoost compute per-edge particle speed:
// min(30, max(1.2, lengthM/time_s)) * 1.25 (spec section 4.8).
const (
	minSpeedMps = 1.2
	maxSpeedMps = 30
	speedBoost  = 1.25
)

// maxReassignHops bounds how many times a particle may be reassigned within
// one Step call before it is left in place for the next tick (spec section
// 4.8, spec section 7 "Exhausted route pool during stepping").
const maxReassignHops = 6

// progressFraction bounds a freshly (re)assigned particle's initial
// along-edge progress to [0, 0.8*edgeLength] (spec section 4.8).
const progressFraction = 0.8
