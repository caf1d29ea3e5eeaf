package geo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a geographic coordinate in [lng, lat] degrees order, matching the
// external line-feature/building-ring input format.
type Point struct {
	Lng float64
	Lat float64
}

// vec converts a Point to an r2.Vec so the projection arithmetic in
// SegmentDistanceM can use gonum's vector operations instead of hand-rolled
// float-pair algebra.
func (p Point) vec() r2.Vec { return r2.Vec{X: p.Lng, Y: p.Lat} }

func fromVec(v r2.Vec) Point { return Point{Lng: v.X, Lat: v.Y} }

// HaversineM returns the great-circle distance between a and b in metres.
func HaversineM(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusM * math.Asin(math.Sqrt(h))
}

// SegmentDistanceM returns the geodesic distance in metres from p to the
// segment a-b, projecting p onto the segment with the projection parameter
// clamped to [0, 1] and then taking the haversine distance to that
// projected point. Degenerate (zero-length) segments collapse to the
// point-to-point case.
func SegmentDistanceM(p, a, b Point) float64 {
	ab := r2.Sub(b.vec(), a.vec())
	abLenSq := r2.Dot(ab, ab)
	if abLenSq == 0 {
		return HaversineM(p, a)
	}

	ap := r2.Sub(p.vec(), a.vec())
	t := r2.Dot(ap, ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	proj := r2.Add(a.vec(), r2.Scale(t, ab))

	return HaversineM(p, fromVec(proj))
}

// PolylineDistanceM returns the minimum SegmentDistanceM over every
// consecutive pair of coords. Returns +Inf for a polyline with fewer than
// two points.
func PolylineDistanceM(p Point, coords []Point) float64 {
	if len(coords) < 2 {
		return math.Inf(1)
	}

	best := math.Inf(1)
	for i := 0; i+1 < len(coords); i++ {
		if d := SegmentDistanceM(p, coords[i], coords[i+1]); d < best {
			best = d
		}
	}

	return best
}

// SegmentLengthM returns the total geodesic length of a polyline, summing
// HaversineM over consecutive vertex pairs.
func SegmentLengthM(coords []Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(coords); i++ {
		total += HaversineM(coords[i], coords[i+1])
	}

	return total
}

// BBox is an axis-aligned bounding box in lng/lat degrees.
type BBox struct {
	MinLng, MinLat float64
	MaxLng, MaxLat float64
}

// BBoxOf returns the bounding box enclosing coords. Returns the zero BBox
// for an empty slice.
func BBoxOf(coords []Point) BBox {
	if len(coords) == 0 {
		return BBox{}
	}

	b := BBox{
		MinLng: coords[0].Lng, MaxLng: coords[0].Lng,
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
	}
	for _, c := range coords[1:] {
		if c.Lng < b.MinLng {
			b.MinLng = c.Lng
		}
		if c.Lng > b.MaxLng {
			b.MaxLng = c.Lng
		}
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
	}

	return b
}

// BBoxesIntersect reports whether a and b overlap, inclusive of shared
// boundaries.
func BBoxesIntersect(a, b BBox) bool {
	if a.MaxLng < b.MinLng || b.MaxLng < a.MinLng {
		return false
	}
	if a.MaxLat < b.MinLat || b.MaxLat < a.MinLat {
		return false
	}

	return true
}
