package closure_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/trafficsim/engine/closure"
)

func randomIndexSet(t *rapid.T, tag string) map[int]struct{} {
	size := rapid.IntRange(0, 8).Draw(t, tag+"_size")
	set := make(map[int]struct{}, size)
	for i := 0; i < size; i++ {
		idx := rapid.IntRange(0, 20).Draw(t, tag+"_idx")
		set[idx] = struct{}{}
	}

	return set
}

// TestMerge_RapidIdempotent is a randomized companion to spec section 8
// property 7 (closure idempotence): merging the same manual set twice in a
// row over an unchanged geometric set yields the same closure set both
// times.
func TestMerge_RapidIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		geometric := randomIndexSet(t, "geo")
		manual := randomIndexSet(t, "manual")

		first := closure.Merge(geometric, manual)
		second := closure.Merge(geometric, manual)

		if len(first) != len(second) {
			t.Fatalf("Merge is not idempotent: first has %d entries, second has %d", len(first), len(second))
		}
		for idx := range first {
			if _, ok := second[idx]; !ok {
				t.Fatalf("Merge is not idempotent: %d present in first, missing from second", idx)
			}
		}
	})
}

// TestMerge_RapidIsSuperset asserts the merged closure set always contains
// every index from both inputs, and never an index absent from both — the
// union property the engine relies on when folding geometric and manual
// closures together.
func TestMerge_RapidIsSuperset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		geometric := randomIndexSet(t, "geo")
		manual := randomIndexSet(t, "manual")

		merged := closure.Merge(geometric, manual)

		for idx := range geometric {
			if _, ok := merged[idx]; !ok {
				t.Fatalf("merged set missing geometric index %d", idx)
			}
		}
		for idx := range manual {
			if _, ok := merged[idx]; !ok {
				t.Fatalf("merged set missing manual index %d", idx)
			}
		}
		for idx := range merged {
			_, inGeo := geometric[idx]
			_, inManual := manual[idx]
			if !inGeo && !inManual {
				t.Fatalf("merged set contains %d, present in neither input", idx)
			}
		}
	})
}
