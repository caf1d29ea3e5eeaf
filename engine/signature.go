package engine

import (
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// closureSignature hashes the sorted closed-feature-index list so Recompute
// can detect whether the effective closure set actually changed before
// resampling OD (spec section 4.9: "If its signature differs from the last
// signature, resample OD").
func closureSignature(closed map[int]struct{}) uint64 {
	sorted := make([]int, 0, len(closed))
	for idx := range closed {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)

	h, err := hashstructure.Hash(sorted, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure.Hash on a []int cannot fail; a non-nil error here
		// would indicate a library contract violation, not a runtime
		// condition the orchestrator should recover from gracefully.
		panic(err)
	}

	return h
}
