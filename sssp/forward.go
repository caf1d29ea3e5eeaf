package sssp

import (
	"container/heap"
	"math"

	"github.com/trafficsim/engine/roadnet"
)

// Forward runs single-pair Dijkstra from origin to dest using the supplied
// per-edge times, returning the ordered list of edge indices realizing the
// shortest path. Returns an empty (nil) slice if dest is unreachable from
// origin. Ties among edges of equal time are broken by the order edges
// appear in the graph's outgoing adjacency (spec section 4.3).
func Forward(g *roadnet.Graph, times []float64, origin, dest int) []int {
	if origin == dest {
		return []int{}
	}

	n := g.NumNodes()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[origin] = 0

	prevEdge := make([]int, n)
	for i := range prevEdge {
		prevEdge[i] = -1
	}

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &item{node: origin, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*item)
		u := top.node
		if visited[u] {
			continue
		}
		if top.dist > dist[u] {
			continue // stale entry
		}
		visited[u] = true
		if u == dest {
			break
		}

		for _, edgeIdx := range g.Out[u] {
			e := g.EdgeAt(edgeIdx)
			t := times[edgeIdx]
			if math.IsInf(t, 1) {
				continue
			}

			newDist := dist[u] + t
			if newDist < dist[e.To] {
				dist[e.To] = newDist
				prevEdge[e.To] = edgeIdx
				heap.Push(&pq, &item{node: e.To, dist: newDist})
			}
		}
	}

	if math.IsInf(dist[dest], 1) {
		return nil
	}

	return reconstructForward(g, prevEdge, origin, dest)
}

// reconstructForward walks prevEdge backward from dest to origin and
// reverses the result into origin-to-dest order.
func reconstructForward(g *roadnet.Graph, prevEdge []int, origin, dest int) []int {
	var path []int
	cur := dest
	limit := g.NumNodes() + 1
	for cur != origin && limit > 0 {
		edgeIdx := prevEdge[cur]
		if edgeIdx < 0 {
			return nil
		}
		path = append(path, edgeIdx)
		cur = g.EdgeAt(edgeIdx).From
		limit--
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
