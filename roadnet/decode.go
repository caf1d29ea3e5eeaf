package roadnet

import (
	"github.com/goccy/go-json"
)

// rawFeature mirrors the external line-feature input (spec section 6): a
// polyline of [lng, lat] pairs plus a highway attribute that may be a bare
// string or an ordered list of strings, and an optional name.
type rawFeature struct {
	Coords  [][2]float64    `json:"coords"`
	Highway json.RawMessage `json:"highway"`
	Name    string          `json:"name,omitempty"`
}

// DecodeFeatures parses a JSON-encoded feature collection into Features
// ready for Build. It resolves the highway attribute's string-or-list
// ambiguity (first non-empty value wins) so every downstream consumer only
// ever sees a single canonical string.
func DecodeFeatures(data []byte) ([]Feature, error) {
	var raw []rawFeature
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	features := make([]Feature, len(raw))
	for i, rf := range raw {
		coords := make([]Point, len(rf.Coords))
		for j, c := range rf.Coords {
			coords[j] = Point{Lng: c[0], Lat: c[1]}
		}

		features[i] = Feature{
			Coords:  coords,
			Highway: decodeHighway(rf.Highway),
			Name:    rf.Name,
		}
	}

	return features, nil
}

// decodeHighway resolves the highway field whether it was encoded as a bare
// string or a JSON array of strings.
func decodeHighway(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return firstHighwayClass(list)
	}

	return ""
}

// EncodeFeatures is the inverse of DecodeFeatures, used by callers that need
// to round-trip a Graph's originating features (e.g. test fixtures).
func EncodeFeatures(features []Feature) ([]byte, error) {
	raw := make([]rawFeature, len(features))
	for i, f := range features {
		coords := make([][2]float64, len(f.Coords))
		for j, c := range f.Coords {
			coords[j] = [2]float64{c.Lng, c.Lat}
		}

		highwayJSON, err := json.Marshal(f.Highway)
		if err != nil {
			return nil, err
		}

		raw[i] = rawFeature{Coords: coords, Highway: highwayJSON, Name: f.Name}
	}

	return json.Marshal(raw)
}
