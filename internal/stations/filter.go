package stations

import (
	"strings"

	"golang.org/x/text/cases"
)

// Apply returns the stations matching f, preserving input order. Criteria are
// applied in sequence (search term, connection type, minimum plugs) and each
// one only narrows the result. An empty filter returns a copy of all
// stations.
func Apply(all []Station, f Filter) []Station {
	result := make([]Station, len(all))
	copy(result, all)

	if f.SearchTerm != "" {
		fold := cases.Fold()
		term := fold.String(f.SearchTerm)
		result = keep(result, func(s Station) bool {
			return strings.Contains(fold.String(s.Address), term) ||
				strings.Contains(fold.String(s.Name), term)
		})
	}

	if f.ConnectionType != "" {
		result = keep(result, func(s Station) bool {
			return s.ConnectionType == f.ConnectionType
		})
	}

	if f.MinPlugs > 0 {
		result = keep(result, func(s Station) bool {
			return s.Plugs >= f.MinPlugs
		})
	}

	return result
}

// keep filters in place.
func keep(list []Station, pred func(Station) bool) []Station {
	out := list[:0]
	for _, s := range list {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
