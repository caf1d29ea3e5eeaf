package demand

import (
	"math"

	"github.com/trafficsim/engine/roadnet"
)

const (
	probeMin = 1200
	probeMax = 3200
	// probeSampleFraction ties the probe size to graph size (spec section 3).
	probeSampleFraction = 0.35
)

// hashSeedA, hashSeedB, hashSeedC are the exact constants spec section 4.4
// and the design notes (section 9) require: frac(sin(seed*A+B)*C). This is
// an observable contract — test property 10 depends on the formula being
// bit-for-bit stable across runs.
const (
	hashSeedA = 12.9898
	hashSeedB = 78.233
	hashSeedC = 43758.5453
)

// unitHash returns a deterministic pseudo-random value in [0, 1) for seed,
// using the classic GLSL "frac(sin(x)*C)" trick so the probe set is stable
// across runs and independent of any *Source PRNG state.
func unitHash(seed float64) float64 {
	v := math.Sin(seed*hashSeedA+hashSeedB) * hashSeedC
	return v - math.Floor(v)
}

// probeCount clamps the target probe size to [probeMin, probeMax].
func probeCount(numNodes int) int {
	n := int(math.Round(probeSampleFraction * float64(numNodes)))
	if n < probeMin {
		n = probeMin
	}
	if n > probeMax {
		n = probeMax
	}

	return n
}

// GenerateReachabilityProbe deterministically samples up to
// clamp(round(0.35*|nodes|), 1200, 3200) OD pairs: for each origin at a
// regular stride over the node list, a destination is chosen from the
// weighted downtown anchor set using the reproducible sin-based unit hash
// (spec section 3, "Reachability probe set"; spec section 4.4). The result
// is computed once per graph load and never resampled on closure change.
func GenerateReachabilityProbe(g *roadnet.Graph) []Pair {
	n := g.NumNodes()
	if n == 0 {
		return nil
	}

	target := probeCount(n)
	if target > n {
		target = n
	}
	stride := n / target
	if stride < 1 {
		stride = 1
	}

	destNodes, destWeights := weightedAnchorNodes(g)
	if len(destNodes) == 0 {
		return nil
	}
	sum := 0.0
	for _, w := range destWeights {
		sum += w
	}

	var pairs []Pair
	for i := 0; i < n && len(pairs) < target; i += stride {
		origin := i
		h := unitHash(float64(i))
		dest := destNodes[len(destNodes)-1]
		if sum > 0 {
			cum := 0.0
			pick := h * sum
			for j, w := range destWeights {
				cum += w
				if pick <= cum {
					dest = destNodes[j]
					break
				}
			}
		}
		if origin == dest {
			continue
		}
		pairs = append(pairs, Pair{Origin: origin, Dest: dest})
	}

	return pairs
}
