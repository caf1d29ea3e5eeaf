// Package reach implements the reachability checker (spec section 4.7): an
// undirected component labeling of the open subgraph, used to count how many
// probe pairs have become disconnected by the current closure set.
//
// It runs independently of package assignment — no shortest-path time map is
// needed, only which edges are open — so an unreachable count is available
// even before assignment finishes (spec section 4.7).
package reach
