package engine

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/closure"
	"github.com/trafficsim/engine/geo"
	"github.com/trafficsim/engine/particles"
	"github.com/trafficsim/engine/reach"
)

// Recompute merges manual and geometric closures, resamples OD if the
// effective closure signature changed, runs assignment and reachability
// concurrently, and rebuilds the route and particle pools (spec section
// 4.9). It never returns an error to the caller: on any internal failure
// the previously published state is retained and the failure is logged
// (spec section 7).
func (e *Engine) Recompute() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.recomputeLocked()
}

// recomputeLocked is Recompute's body, callable while e.mu is already held
// (LoadNetwork calls it directly after building the graph).
func (e *Engine) recomputeLocked() {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Str("tag", logTagAssign).
				Interface("panic", r).
				Msg("recompute failed, retaining last published snapshot")
		}
	}()

	if e.graph == nil {
		return // missing road network: silent no-op (spec section 7).
	}

	start := time.Now()

	geometric := closure.DetectGeometric(e.features, e.rings)
	effective := closure.Merge(geometric, e.manualClosed)

	signature := closureSignature(effective)
	if !e.haveSignature || signature != e.lastSignature {
		e.od = sampleOD(e.graph, effective, e.src)
		e.lastSignature = signature
		e.haveSignature = true
	}

	var result assignment.Result
	var labeling reach.Labeling

	var eg errgroup.Group
	eg.Go(func() error {
		result = assignment.Run(e.graph, e.od, effective, e.iterations)
		return nil
	})
	eg.Go(func() error {
		labeling = reach.Label(e.graph, effective)
		return nil
	})
	_ = eg.Wait() // neither goroutine returns an error; Wait only blocks until both finish.

	e.log.Info().
		Str("tag", logTagAssign).
		Int("unreachableAssignment", result.Unreachable).
		Float64("totalVolumeEdge", result.TotalVolumeEdge).
		Msg("assignment complete")

	e.routePool = particles.BuildRoutePool(e.graph, e.od, result.EdgeMetrics)
	e.particlePool = particles.NewPool(e.graph, e.routePool, e.src)

	e.log.Info().
		Str("tag", logTagRoutePool).
		Int("routes", len(e.routePool.Routes)).
		Int("particles", len(e.particlePool.Particles)).
		Msg("route and particle pools rebuilt")

	e.result = result
	e.unreachable = reach.CountUnreachable(labeling, e.probe)
	e.lastRuntime = time.Since(start)
}

// SetManualToggle flips featureIndex's manual-closure membership and
// schedules a recompute (spec section 4.9).
func (e *Engine) SetManualToggle(featureIndex int) {
	e.mu.Lock()
	if _, ok := e.manualClosed[featureIndex]; ok {
		delete(e.manualClosed, featureIndex)
	} else {
		e.manualClosed[featureIndex] = struct{}{}
	}
	e.mu.Unlock()

	e.ScheduleRecompute(DefaultDebounceMs)
}

// SetBuildingRings replaces the geometric-closure ring set from raw
// building-footprint vertex rings and schedules a recompute (spec section
// 4.9). Rings with fewer than three distinct vertices are dropped and
// counted in the skipped-rings diagnostic tally (spec section 7, "Invalid
// input geometry ... counted in a diagnostic tally").
func (e *Engine) SetBuildingRings(rawRings [][]geo.Point) {
	rings := make([]closure.Ring, 0, len(rawRings))
	skipped := 0
	for _, points := range rawRings {
		ring, ok := closure.NewRing(points)
		if !ok {
			skipped++
			continue
		}
		rings = append(rings, ring)
	}

	e.mu.Lock()
	e.rings = rings
	e.skippedRings = skipped
	e.mu.Unlock()

	e.log.Info().
		Str("tag", logTagGraphBuild).
		Int("rings", len(rings)).
		Int("skippedRings", skipped).
		Msg("building rings updated")

	e.ScheduleRecompute(DefaultDebounceMs)
}
