package geo

import "math"

// cross returns the z-component of the cross product (b-o) x (c-o), i.e.
// the signed area of the parallelogram spanned by o->b and o->c.
func cross(o, b, c Point) float64 {
	return (b.Lng-o.Lng)*(c.Lat-o.Lat) - (b.Lat-o.Lat)*(c.Lng-o.Lng)
}

// onSegment reports whether point q, known to be collinear with p-r, lies
// within the closed bounding box of segment p-r.
func onSegment(p, q, r Point) bool {
	return q.Lng <= math.Max(p.Lng, r.Lng)+Epsilon && q.Lng >= math.Min(p.Lng, r.Lng)-Epsilon &&
		q.Lat <= math.Max(p.Lat, r.Lat)+Epsilon && q.Lat >= math.Min(p.Lat, r.Lat)-Epsilon
}

// SegmentsIntersect reports whether segments a-b and c-d intersect, properly
// or collinearly, using signed cross products with an epsilon of 1e-9 and
// explicit collinear-on-segment fallbacks. Degenerate zero-length segments
// are treated as points.
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	// General proper-crossing case: a,b straddle line cd and c,d straddle line ab.
	if ((d1 > Epsilon && d2 < -Epsilon) || (d1 < -Epsilon && d2 > Epsilon)) &&
		((d3 > Epsilon && d4 < -Epsilon) || (d3 < -Epsilon && d4 > Epsilon)) {
		return true
	}

	// Collinear-on-segment fallbacks.
	if math.Abs(d1) <= Epsilon && onSegment(c, a, d) {
		return true
	}
	if math.Abs(d2) <= Epsilon && onSegment(c, b, d) {
		return true
	}
	if math.Abs(d3) <= Epsilon && onSegment(a, c, b) {
		return true
	}
	if math.Abs(d4) <= Epsilon && onSegment(a, d, b) {
		return true
	}

	return false
}

// PointInRing reports whether p lies inside or on the boundary of the
// closed polygon ring, using even-odd ray casting with explicit on-edge
// detection. ring is expected to be closed (ring[0] == ring[len-1]) or will
// be treated as implicitly closed by wrapping the last vertex to the first.
func PointInRing(p Point, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a := ring[j]
		b := ring[i]

		// Explicit on-edge detection: if p lies exactly on edge a-b, count it as inside.
		if onSegment(a, p, b) && math.Abs(cross(a, b, p)) <= Epsilon {
			return true
		}

		// Even-odd ray-casting test: does the horizontal ray from p cross edge a-b?
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			xIntersect := (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lng
			if p.Lng < xIntersect {
				inside = !inside
			}
		}

		j = i
	}

	return inside
}
