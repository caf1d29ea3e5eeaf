// Package assignment implements iterative all-or-nothing traffic
// assignment with BPR (Bureau of Public Roads) delay (spec section 4.6).
//
// Each iteration computes a travel time per edge from its current volume,
// re-routes every OD pair with single-pair Dijkstra (package sssp) against
// those times, and replaces the volume array with the freshly counted one.
// After the configured number of iterations, edge times are recomputed one
// final time so the reported metrics reflect the last assignment, and
// per-feature volume/delay/closed values are aggregated from their
// constituent edges (connectors, FeatureIndex == roadnet.ConnectorFeatureIndex,
// are excluded from feature-level aggregation).
package assignment

// DefaultIterations is the default iteration count (spec section 4.6).
const DefaultIterations = 2

// bprAlpha and bprBeta are the classic BPR function constants:
// t = t0 * (1 + alpha*(v/c)^beta).
const (
	bprAlpha = 0.15
	bprBeta  = 4.0
)

// DelayFactorMin and DelayFactorMax bound every reported delay factor
// (spec section 8, test property 4).
const (
	DelayFactorMin = 1.0
	DelayFactorMax = 3.0
)
