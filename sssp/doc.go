// Package sssp implements single-source shortest paths over a roadnet.Graph
// using a binary min-heap Dijkstra, in both directions needed by the rest of
// the engine: a single-pair forward search (for traffic assignment) and a
// single-destination reverse shortest-path tree (for the route pool).
//
// Both variants share the same lazy-decrease-key heap discipline as the
// teacher's dijkstra package: push duplicate entries instead of mutating the
// heap in place, and discard a popped entry if its distance is stale.
//
// Edge times are supplied by the caller as a []float64 aligned to
// roadnet.Graph.Edges; an edge whose time is +Inf (closed) is never
// relaxed.
package sssp
