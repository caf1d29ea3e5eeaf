package assignment

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
	"github.com/trafficsim/engine/sssp"
)

// Run executes iterations rounds of all-or-nothing BPR assignment (spec
// section 4.6). closed is the effective closed-feature-index set (manual
// union geometric, already merged by the caller).
func Run(g *roadnet.Graph, od []demand.Pair, closed map[int]struct{}, iterations int) Result {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	numEdges := g.NumEdges()
	edgeClosed := closedEdgeMask(g, closed)

	volumes := make([]float64, numEdges)
	times := make([]float64, numEdges)
	unreachable := 0

	for iter := 0; iter < iterations; iter++ {
		recomputeTimes(g, volumes, edgeClosed, times)

		nextVolumes := make([]float64, numEdges)
		unreachable = 0
		for _, pair := range od {
			path := sssp.Forward(g, times, pair.Origin, pair.Dest)
			if path == nil {
				unreachable++
				continue
			}
			for _, edgeIdx := range path {
				nextVolumes[edgeIdx]++
			}
		}
		volumes = nextVolumes
	}

	// Recompute times one final time so reported edge times reflect the
	// last assignment's volumes (spec section 4.6).
	recomputeTimes(g, volumes, edgeClosed, times)

	edgeMetrics := make([]EdgeMetric, numEdges)
	for i := range edgeMetrics {
		e := g.EdgeAt(i)
		edgeMetrics[i] = EdgeMetric{
			Volume:      int(volumes[i]),
			Time:        times[i],
			DelayFactor: delayFactor(times[i], e.T0),
			Closed:      edgeClosed[i],
		}
	}

	return Result{
		EdgeMetrics:     edgeMetrics,
		FeatureMetrics:  aggregateFeatureMetrics(g, edgeMetrics),
		Unreachable:     unreachable,
		TotalVolumeEdge: floats.Sum(volumes),
	}
}

// closedEdgeMask marks every edge whose owning feature is in the closed
// set. Connector edges (FeatureIndex == roadnet.ConnectorFeatureIndex) can
// never be closed (spec section 3).
func closedEdgeMask(g *roadnet.Graph, closed map[int]struct{}) []bool {
	mask := make([]bool, g.NumEdges())
	for i, e := range g.Edges {
		if e.FeatureIndex == roadnet.ConnectorFeatureIndex {
			continue
		}
		if _, ok := closed[e.FeatureIndex]; ok {
			mask[i] = true
		}
	}

	return mask
}

// recomputeTimes fills times[e] = BPR(t0, volume, capacity) for every open
// edge, and +Inf for every closed edge (spec section 4.6, step 1).
func recomputeTimes(g *roadnet.Graph, volumes []float64, closed []bool, times []float64) {
	for i, e := range g.Edges {
		if closed[i] {
			times[i] = math.Inf(1)
			continue
		}
		times[i] = bprTime(e.T0, volumes[i], e.Capacity)
	}
}

// aggregateFeatureMetrics sums/max/ORs edge metrics into per-feature
// metrics, skipping connector edges (spec section 4.6).
func aggregateFeatureMetrics(g *roadnet.Graph, edgeMetrics []EdgeMetric) map[int]FeatureMetric {
	out := make(map[int]FeatureMetric)
	for i, e := range g.Edges {
		if e.FeatureIndex == roadnet.ConnectorFeatureIndex {
			continue
		}

		fm := out[e.FeatureIndex]
		em := edgeMetrics[i]
		fm.Volume += em.Volume
		if em.DelayFactor > fm.DelayFactor {
			fm.DelayFactor = em.DelayFactor
		}
		fm.Closed = fm.Closed || em.Closed
		out[e.FeatureIndex] = fm
	}

	return out
}
