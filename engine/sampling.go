package engine

import (
	"math"

	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
)

// baseTripCountMin, baseTripCountMax bound the base OD trip count (spec
// section 4.9).
const (
	baseTripCountMin = 220
	baseTripCountMax = 520
)

// closureExtraMin, closureExtraFractionBase, closureExtraFractionPerClosed
// and closureExtraFractionCap compute the additional closure-adjacent trip
// count (spec section 4.9).
const (
	closureExtraMin               = 120
	closureExtraFractionBase      = 0.35
	closureExtraFractionPerClosed = 0.08
	closureExtraFractionCap       = 1.5
)

// baseTripCount implements clamp(round(|edges|/25), 220, 520) (spec section
// 4.9).
func baseTripCount(g *roadnet.Graph) int {
	n := int(math.Round(float64(g.NumEdges()) / 25))
	if n < baseTripCountMin {
		return baseTripCountMin
	}
	if n > baseTripCountMax {
		return baseTripCountMax
	}

	return n
}

// sampleOD generates the base OD set plus, when the closed set is non-empty
// and touches the graph, an additional batch of trips originating near the
// closure (spec section 4.9).
func sampleOD(g *roadnet.Graph, closed map[int]struct{}, src *demand.Source) []demand.Pair {
	base := baseTripCount(g)
	od := demand.GenerateOD(g, base, src)

	adjacent := closureAdjacentNodes(g, closed)
	if len(closed) == 0 || len(adjacent) == 0 {
		return od
	}

	fraction := closureExtraFractionBase + closureExtraFractionPerClosed*float64(len(closed))
	if fraction > closureExtraFractionCap {
		fraction = closureExtraFractionCap
	}
	extra := int(math.Round(float64(base) * fraction))
	if extra < closureExtraMin {
		extra = closureExtraMin
	}

	extraOD := demand.GenerateODFromOrigins(g, extra, adjacent, src)

	return append(od, extraOD...)
}

// closureAdjacentNodes returns the node indices touched by at least one
// edge of a closed feature.
func closureAdjacentNodes(g *roadnet.Graph, closed map[int]struct{}) []int {
	if len(closed) == 0 {
		return nil
	}

	seen := make(map[int]struct{})
	var nodes []int
	for featureIdx := range closed {
		for _, edgeIdx := range g.EdgesForFeature(featureIdx) {
			e := g.EdgeAt(edgeIdx)
			for _, n := range [2]int{e.From, e.To} {
				if _, ok := seen[n]; !ok {
					seen[n] = struct{}{}
					nodes = append(nodes, n)
				}
			}
		}
	}

	return nodes
}
