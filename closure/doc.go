// Package closure detects which road features are blocked by user-placed
// building polygons, and merges that geometric closure set with manually
// toggled feature indices (spec section 4.5).
//
// Only outer rings are considered; a multipolygon contributes one Ring per
// polygon. Each line feature is bbox-prefiltered against every ring before
// the exact point-in-ring / segment-intersection tests run, the same
// cheap-test-before-expensive-test idiom as gridgraph's island expansion.
package closure

import "github.com/trafficsim/engine/geo"

// Ring is one closed building-footprint outer ring together with its
// precomputed bounding box.
type Ring struct {
	Points []geo.Point
	BBox   geo.BBox
}

// NewRing closes an open ring by duplicating its first vertex if needed,
// and drops rings with fewer than three distinct vertices (spec section 6).
// Returns ok=false for a ring that cannot be used.
func NewRing(points []geo.Point) (Ring, bool) {
	distinct := countDistinct(points)
	if distinct < 3 {
		return Ring{}, false
	}

	closed := points
	if len(points) == 0 || points[0] != points[len(points)-1] {
		closed = append(append([]geo.Point{}, points...), points[0])
	}

	return Ring{Points: closed, BBox: geo.BBoxOf(closed)}, true
}

func countDistinct(points []geo.Point) int {
	seen := make(map[geo.Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}

	return len(seen)
}
