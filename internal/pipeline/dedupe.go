package pipeline

import (
	"strings"

	"github.com/anibitri/diagram-ar/internal/label"
)

// deduplicateByLabel collapses components that received identical
// names, keeping the highest-confidence instance of each.
//
// Grouping is case-insensitive. Sentinel labels — component_N
// placeholders, "Unknown", "Unlabeled" — are never grouped: the same
// sentinel on two components says labeling failed twice, not that the
// components are the same thing. Ties keep the first-encountered
// member, and the output preserves the original relative order of all
// retained components.
func deduplicateByLabel(components []Component) []Component {
	best := make(map[string]int, len(components))
	keep := make([]bool, len(components))

	for i, comp := range components {
		if label.IsSentinel(comp.Label) {
			keep[i] = true
			continue
		}

		key := strings.ToLower(strings.TrimSpace(comp.Label))
		prev, seen := best[key]
		if !seen {
			best[key] = i
			keep[i] = true
			continue
		}
		if comp.Confidence > components[prev].Confidence {
			keep[prev] = false
			best[key] = i
			keep[i] = true
		}
	}

	kept := make([]Component, 0, len(components))
	for i, comp := range components {
		if keep[i] {
			kept = append(kept, comp)
		}
	}
	return kept
}
