// Package demand builds origin-destination pairs for traffic assignment
// (spec section 4.4) and the deterministic reachability probe set (spec
// section 3, "Reachability probe set").
//
// Origins are drawn from the outer margin of the graph's bounding box (or,
// when closure-adjacent sampling is requested, from a caller-supplied node
// set); destinations are drawn by weighted choice from ten fixed downtown
// anchors snapped to their nearest graph node. Sampling is deterministic
// when driven by a seeded Source, mirroring the teacher's builder package's
// cfg.rng threading.
package demand

import "errors"

// ErrGiveUp names the case where the generator exhausts its attempt budget
// (5x the requested count) without finding enough distinct
// origin/destination pairs. The generators in this package do not return
// it: they return the pairs found so far, so a short slice is how a caller
// sees that case (spec section 7, "Empty OD sample").
var ErrGiveUp = errors.New("demand: exhausted sampling attempts")
