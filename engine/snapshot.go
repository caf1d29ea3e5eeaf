package engine

import (
	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/particles"
)

// ParticlePosition is one particle's published position (spec section 6,
// "Particle output").
type ParticlePosition struct {
	ID       string
	Position particles.Position
}

// Snapshot is the copy-on-publish view a consumer reads (spec section 6).
// Every field is an independent copy; mutating it never affects Engine
// state.
type Snapshot struct {
	EdgeMetrics    []assignment.EdgeMetric
	FeatureMetrics map[int]assignment.FeatureMetric
	Particles      []ParticlePosition

	Nodes            int
	DirectedEdges    int
	Trips            int
	ProbeTrips       int
	ClosureSeedNodes int
	RuntimeMs        float64
	Unreachable      int

	// SkippedFeatures and SkippedRings are non-normative diagnostic tallies
	// of malformed input geometry dropped at load/ring-update time (spec
	// section 7).
	SkippedFeatures int
	SkippedRings    int
}

// Snapshot returns a deep copy of the most recently published state (spec
// section 5, "consumers must treat them as read-only snapshots").
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		EdgeMetrics:      append([]assignment.EdgeMetric(nil), e.result.EdgeMetrics...),
		FeatureMetrics:   cloneFeatureMetrics(e.result.FeatureMetrics),
		Particles:        cloneParticlePositions(e.particlePool),
		Nodes:            graphNodeCount(e),
		DirectedEdges:    graphEdgeCount(e),
		Trips:            len(e.od),
		ProbeTrips:       len(e.probe),
		ClosureSeedNodes: len(closureAdjacentNodes(e.graph, e.manualClosed)),
		RuntimeMs:        float64(e.lastRuntime.Microseconds()) / 1000.0,
		Unreachable:      e.unreachable,
		SkippedFeatures:  e.skippedFeatures,
		SkippedRings:     e.skippedRings,
	}
}

func graphNodeCount(e *Engine) int {
	if e.graph == nil {
		return 0
	}
	return e.graph.NumNodes()
}

func graphEdgeCount(e *Engine) int {
	if e.graph == nil {
		return 0
	}
	return e.graph.NumEdges()
}

func cloneFeatureMetrics(src map[int]assignment.FeatureMetric) map[int]assignment.FeatureMetric {
	out := make(map[int]assignment.FeatureMetric, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

func cloneParticlePositions(pool particles.Pool) []ParticlePosition {
	out := make([]ParticlePosition, len(pool.Particles))
	for i, p := range pool.Particles {
		out[i] = ParticlePosition{ID: p.ID, Position: p.Position}
	}

	return out
}
