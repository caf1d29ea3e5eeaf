package demand

import (
	"math/rand"
	"time"
)

// Source is a seedable PRNG source threaded through OD and particle
// sampling so both share one determinism knob (spec section 6,
// "Determinism knobs"), mirroring the teacher builder package's cfg.rng.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded deterministically. A seed of 0 falls
// back to a time-based seed (spec section 6 describes the PRNG seed as
// optional).
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Intn returns a pseudo-random int in [0, n).
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }
