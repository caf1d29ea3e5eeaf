// Package geo implements the geometric primitives shared by every other
// package in this module: geodesic distance, point-to-segment projection,
// segment intersection, and ray-casting point-in-polygon tests.
//
// What:
//
//   - HaversineM computes great-circle distance between two lng/lat points.
//   - SegmentDistanceM / PolylineDistanceM project a point onto a segment
//     (or the nearest segment of a polyline) and return the geodesic
//     distance to that projection.
//   - BBoxOf / BBoxesIntersect give a cheap pre-filter before exact tests.
//   - SegmentsIntersect and PointInRing implement the exact geometric
//     predicates the closure detector (package closure) relies on.
//
// All coordinates are [lng, lat] pairs in degrees, matching the external
// line-feature/building-ring input described by the engine's data model.
// Earth radius is fixed at 6,371,000 metres. All comparisons are inclusive;
// degenerate (zero-length) segments collapse to the point case.
package geo

// EarthRadiusM is the mean Earth radius in metres, used by HaversineM.
const EarthRadiusM = 6371000.0

// Epsilon is the tolerance used by the cross-product based intersection
// tests to treat near-zero determinants as exactly zero (collinear).
const Epsilon = 1e-9
