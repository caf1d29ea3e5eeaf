package demand

import "github.com/trafficsim/engine/roadnet"

// Pair is one origin-destination trip request (spec section 3, "OD pair").
type Pair struct {
	Origin int
	Dest   int
}

// outerMarginFraction is the 14% lng/lat margin band spec section 3
// describes for origin sampling.
const outerMarginFraction = 0.14

// maxAttemptsFactor bounds sampling attempts at 5x the requested count
// before giving up (spec section 4.4).
const maxAttemptsFactor = 5

// outerMarginNodes returns node indices lying within the outer 14% lng/lat
// margin band of the graph's bounding box.
func outerMarginNodes(g *roadnet.Graph) []int {
	w := g.BBox.MaxLng - g.BBox.MinLng
	h := g.BBox.MaxLat - g.BBox.MinLat
	marginW := outerMarginFraction * w
	marginH := outerMarginFraction * h

	var band []int
	for i, n := range g.Nodes {
		lng := float64(n.Key.Lng) / 1e4
		lat := float64(n.Key.Lat) / 1e4
		if lng <= g.BBox.MinLng+marginW || lng >= g.BBox.MaxLng-marginW ||
			lat <= g.BBox.MinLat+marginH || lat >= g.BBox.MaxLat-marginH {
			band = append(band, i)
		}
	}

	return band
}

func allNodeIndices(g *roadnet.Graph) []int {
	all := make([]int, g.NumNodes())
	for i := range all {
		all[i] = i
	}

	return all
}

// GenerateOD draws up to count OD pairs: origins uniformly from the outer
// 14% margin band (falling back to every node when the band is empty),
// destinations by weighted choice from the downtown anchor set. Rejects
// self-pairs; gives up after 5*count attempts, returning however many
// distinct pairs were found (spec section 4.4, spec section 7 "Empty OD
// sample").
func GenerateOD(g *roadnet.Graph, count int, src *Source) []Pair {
	origins := outerMarginNodes(g)
	if len(origins) == 0 {
		origins = allNodeIndices(g)
	}

	return GenerateODFromOrigins(g, count, origins, src)
}

// GenerateODFromOrigins is GenerateOD with a caller-supplied origin node
// set, used to concentrate trips near closure sites (spec section 4.4).
func GenerateODFromOrigins(g *roadnet.Graph, count int, originNodes []int, src *Source) []Pair {
	if count <= 0 || len(originNodes) == 0 {
		return nil
	}

	destNodes, destWeights := weightedAnchorNodes(g)
	if len(destNodes) == 0 {
		return nil
	}

	pairs := make([]Pair, 0, count)
	attempts := 0
	maxAttempts := maxAttemptsFactor * count
	for len(pairs) < count && attempts < maxAttempts {
		attempts++
		origin := originNodes[src.Intn(len(originNodes))]
		dest := pickWeighted(src, destNodes, destWeights)
		if origin == dest {
			continue
		}
		pairs = append(pairs, Pair{Origin: origin, Dest: dest})
	}

	return pairs
}
