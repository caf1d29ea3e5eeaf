package roadnet

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizer canonicalizes highway tag strings (Unicode-safe lowercasing)
// before the speed/capacity table lookup, so "Motorway", "MOTORWAY", and
// "motorway" all resolve to the same highwaySpec.
var normalizer = cases.Lower(language.Und)

// resolveHighway returns the canonical class name and its speed/capacity
// spec. Unrecognized, empty, or null classes map to "road" (spec section 3).
func resolveHighway(raw string) (string, highwaySpec) {
	class := normalizer.String(raw)
	if spec, ok := highwayTable[class]; ok {
		return class, spec
	}

	return "road", highwayTable["road"]
}

// firstHighwayClass extracts the usable class string from either a single
// string or an ordered list of strings, where the first non-empty element
// wins (spec section 6: "highway" attribute may be a string or a list).
func firstHighwayClass(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
