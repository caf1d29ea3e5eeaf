package engine

import (
	"time"

	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
)

// LoadNetwork builds the graph, generates the initial OD and probe sets,
// runs a baseline assignment with no closures, builds the route and
// particle pools, and publishes the first snapshot (spec section 4.9). It
// is the only entry point that may return an error: a malformed road
// network is a load-time contract violation, not a recoverable recompute
// failure.
func (e *Engine) LoadNetwork(features []roadnet.Feature) error {
	res, err := roadnet.Build(features)
	if err != nil {
		e.log.Error().Str("tag", logTagGraphBuild).Err(err).Msg("failed to build road graph")
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.graph = res.Graph
	e.features = features
	e.manualClosed = make(map[int]struct{})
	e.rings = nil
	e.haveSignature = false
	e.skippedFeatures = res.SkippedFeatures
	e.skippedRings = 0

	e.log.Info().
		Str("tag", logTagGraphBuild).
		Int("nodes", res.Graph.NumNodes()).
		Int("directedEdges", res.Graph.NumEdges()).
		Int("skippedFeatures", res.SkippedFeatures).
		Msg("road graph built")

	e.probe = demand.GenerateReachabilityProbe(res.Graph)
	e.loadedAt = time.Now()

	e.recomputeLocked()

	return nil
}
