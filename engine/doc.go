// Package engine implements the orchestrator (spec section 4.9): the
// debounced recompute pipeline tying together roadnet, sssp, demand,
// closure, assignment, reach and particles.
//
// An Engine owns the immutable graph, the current closure inputs, the OD
// and probe samples, the route pool, the particle pool, and the latest
// published Snapshot. All mutating entry points (LoadNetwork,
// SetManualToggle, SetBuildingRings, Recompute) run to completion
// synchronously on the calling goroutine; ScheduleRecompute defers a
// Recompute using the epoch-counter debounce pattern described in spec
// section 9. The published Snapshot is copy-on-publish: Snapshot() returns
// an independent value, never a live alias into engine-owned state, so a
// recompute running concurrently with a reader never tears a consumer's
// view.
package engine

import "github.com/rs/zerolog"

// logTag values stamp every structured log line emitted by a recompute
// stage (spec section 7).
const (
	logTagGraphBuild = "GRAPH_BUILD"
	logTagAssign     = "ASSIGN"
	logTagRoutePool  = "ROUTE_POOL"
	logTagParticle   = "PARTICLE"
)

// discardLogger is the Engine default when no WithLogger option is supplied.
var discardLogger = zerolog.Nop()
