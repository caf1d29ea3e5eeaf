package closure

import (
	"github.com/trafficsim/engine/geo"
	"github.com/trafficsim/engine/roadnet"
)

// DetectGeometric returns the set of feature indices whose polyline enters
// or crosses any ring (spec section 4.5). For each feature, the bbox
// prefilter skips rings that cannot possibly overlap; otherwise the
// feature is tested against the ring by first checking whether any vertex
// lies inside the ring, then falling back to full segment/segment
// intersection.
func DetectGeometric(features []roadnet.Feature, rings []Ring) map[int]struct{} {
	closed := make(map[int]struct{})

	for idx, f := range features {
		coords := toGeoPoints(f.Coords)
		if len(coords) < 2 {
			continue
		}
		featureBox := geo.BBoxOf(coords)

		for _, ring := range rings {
			if !geo.BBoxesIntersect(featureBox, ring.BBox) {
				continue
			}
			if featureCrossesRing(coords, ring) {
				closed[idx] = struct{}{}
				break // first match marks the feature closed; move to the next feature.
			}
		}
	}

	return closed
}

// featureCrossesRing tests (a) whether any polyline vertex lies inside the
// ring, then (b) every polyline segment against every ring segment for a
// proper or collinear intersection.
func featureCrossesRing(coords []geo.Point, ring Ring) bool {
	for _, v := range coords {
		if geo.PointInRing(v, ring.Points) {
			return true
		}
	}

	for i := 0; i+1 < len(coords); i++ {
		for j := 0; j+1 < len(ring.Points); j++ {
			if geo.SegmentsIntersect(coords[i], coords[i+1], ring.Points[j], ring.Points[j+1]) {
				return true
			}
		}
	}

	return false
}

func toGeoPoints(coords []roadnet.Point) []geo.Point {
	out := make([]geo.Point, len(coords))
	for i, c := range coords {
		out[i] = geo.Point{Lng: c.Lng, Lat: c.Lat}
	}

	return out
}

// Merge unions the geometric closure set with the manually toggled feature
// index set (spec section 3, "Closure set"). Neither input is mutated.
func Merge(geometric map[int]struct{}, manual map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(geometric)+len(manual))
	for idx := range geometric {
		out[idx] = struct{}{}
	}
	for idx := range manual {
		out[idx] = struct{}{}
	}

	return out
}
