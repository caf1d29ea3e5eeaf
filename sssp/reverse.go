package sssp

import (
	"container/heap"
	"math"

	"github.com/trafficsim/engine/roadnet"
)

// Tree is a full shortest-path tree toward one destination: Dist[u] is the
// shortest time from u to Dest, and NextEdge[u] is the outgoing edge index
// to take from u to make progress toward Dest (spec section 4.3).
// NextEdge[u] == -1 means u cannot reach Dest.
type Tree struct {
	Dest     int
	Dist     []float64
	NextEdge []int
}

// ReverseTree builds a Tree rooted at dest by running Dijkstra over the
// graph's reverse adjacency: instead of exploring out of the source, it
// explores into the destination, relaxing edges in the direction that
// shortens "distance to dest."
func ReverseTree(g *roadnet.Graph, times []float64, dest int) Tree {
	n := g.NumNodes()
	in := reverseAdjacency(g)

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[dest] = 0

	next := make([]int, n)
	for i := range next {
		next[i] = -1
	}

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &item{node: dest, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*item)
		v := top.node
		if visited[v] {
			continue
		}
		if top.dist > dist[v] {
			continue
		}
		visited[v] = true

		for _, edgeIdx := range in[v] {
			t := times[edgeIdx]
			if math.IsInf(t, 1) {
				continue
			}

			e := g.EdgeAt(edgeIdx)
			newDist := dist[v] + t
			if newDist < dist[e.From] {
				dist[e.From] = newDist
				next[e.From] = edgeIdx
				heap.Push(&pq, &item{node: e.From, dist: newDist})
			}
		}
	}

	return Tree{Dest: dest, Dist: dist, NextEdge: next}
}

// reverseAdjacency groups edge indices by their destination node, so
// ReverseTree can walk "into" a node the way Forward walks "out of" one.
func reverseAdjacency(g *roadnet.Graph) [][]int {
	in := make([][]int, g.NumNodes())
	for idx, e := range g.Edges {
		in[e.To] = append(in[e.To], idx)
	}

	return in
}

// Path reconstructs the edge-index path from origin to t.Dest, bounded by
// |nodes|+1 hops to guarantee termination even against a corrupted tree
// (spec section 4.3). Returns nil if origin cannot reach t.Dest or the walk
// fails to terminate within the hop bound.
func Path(g *roadnet.Graph, t Tree, origin int) []int {
	if origin == t.Dest {
		return []int{}
	}
	if math.IsInf(t.Dist[origin], 1) {
		return nil
	}

	var path []int
	cur := origin
	limit := g.NumNodes() + 1
	for cur != t.Dest && limit > 0 {
		edgeIdx := t.NextEdge[cur]
		if edgeIdx < 0 {
			return nil
		}
		path = append(path, edgeIdx)
		cur = g.EdgeAt(edgeIdx).To
		limit--
	}

	if cur != t.Dest {
		return nil
	}

	return path
}
