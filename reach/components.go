package reach

import (
	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/roadnet"
)

// Labeling is the result of component-labeling the undirected open subgraph:
// Component[nodeIdx] is that node's component id. Two nodes are reachable
// from each other iff they share a component id.
type Labeling struct {
	Component []int
	Count     int
}

// Label builds the undirected neighbour map over open edges only (closed
// features excluded) and flood-fills component ids (spec section 4.7).
// closed is the effective (manual union geometric) closed-feature-index set;
// connector edges (roadnet.ConnectorFeatureIndex) are never closed.
func Label(g *roadnet.Graph, closed map[int]struct{}) Labeling {
	n := g.NumNodes()
	adj := openUndirectedAdjacency(g, closed)

	component := make([]int, n)
	for i := range component {
		component[i] = -1
	}

	next := 0
	for start := 0; start < n; start++ {
		if component[start] != -1 {
			continue
		}

		queue := []int{start}
		component[start] = next
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if component[v] == -1 {
					component[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return Labeling{Component: component, Count: next}
}

// openUndirectedAdjacency builds an undirected neighbour list skipping any
// edge whose feature is in the closed set.
func openUndirectedAdjacency(g *roadnet.Graph, closed map[int]struct{}) [][]int {
	adj := make([][]int, g.NumNodes())
	for _, e := range g.Edges {
		if e.FeatureIndex != roadnet.ConnectorFeatureIndex {
			if _, ok := closed[e.FeatureIndex]; ok {
				continue
			}
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj
}

// CountUnreachable counts how many probe pairs have endpoints in different
// components, or whose endpoint indices fall outside the labeling entirely
// (spec section 4.7).
func CountUnreachable(l Labeling, probes []demand.Pair) int {
	count := 0
	for _, p := range probes {
		if !validIndex(l, p.Origin) || !validIndex(l, p.Dest) {
			count++
			continue
		}
		if l.Component[p.Origin] != l.Component[p.Dest] {
			count++
		}
	}

	return count
}

func validIndex(l Labeling, idx int) bool {
	return idx >= 0 && idx < len(l.Component)
}
