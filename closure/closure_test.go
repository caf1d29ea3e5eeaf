package closure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficsim/engine/closure"
	"github.com/trafficsim/engine/geo"
	"github.com/trafficsim/engine/roadnet"
)

func TestNewRing_DropsTooFewVertices(t *testing.T) {
	_, ok := closure.NewRing([]geo.Point{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 1}})
	assert.False(t, ok)
}

func TestNewRing_AutoCloses(t *testing.T) {
	r, ok := closure.NewRing([]geo.Point{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 0}, {Lng: 1, Lat: 1}})
	require.True(t, ok)
	assert.Equal(t, r.Points[0], r.Points[len(r.Points)-1])
}

// TestDetectGeometric_S5 matches spec section 8 scenario S5: a rectangular ring
// enclosing the midpoint of a feature marks that feature closed.
func TestDetectGeometric_S5(t *testing.T) {
	features := []roadnet.Feature{
		{Highway: "residential", Coords: []roadnet.Point{{Lng: 0, Lat: 0}, {Lng: 0, Lat: 2}}},
	}

	ring, ok := closure.NewRing([]geo.Point{
		{Lng: -1, Lat: 0.8}, {Lng: 1, Lat: 0.8}, {Lng: 1, Lat: 1.2}, {Lng: -1, Lat: 1.2},
	})
	require.True(t, ok)

	closed := closure.DetectGeometric(features, []closure.Ring{ring})
	assert.Contains(t, closed, 0)
}

func TestDetectGeometric_NoOverlap(t *testing.T) {
	features := []roadnet.Feature{
		{Highway: "residential", Coords: []roadnet.Point{{Lng: 0, Lat: 0}, {Lng: 0, Lat: 2}}},
	}
	ring, ok := closure.NewRing([]geo.Point{
		{Lng: 100, Lat: 100}, {Lng: 101, Lat: 100}, {Lng: 101, Lat: 101}, {Lng: 100, Lat: 101},
	})
	require.True(t, ok)

	closed := closure.DetectGeometric(features, []closure.Ring{ring})
	assert.Empty(t, closed)
}

func TestMerge_UnionsSets(t *testing.T) {
	geoSet := map[int]struct{}{1: {}, 2: {}}
	manual := map[int]struct{}{2: {}, 3: {}}

	merged := closure.Merge(geoSet, manual)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, merged)
}
