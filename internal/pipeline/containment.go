package pipeline

import "github.com/anibitri/diagram-ar/internal/geometry"

// deduplicateContained removes boxes that span multiple real components.
//
// After overlap resolution there can still be pairs where one box fully
// contains another but IoU stayed below the suppression threshold
// because the outer box is much larger. In architecture diagrams these
// outer boxes are usually bad proposals spanning several components. In
// nested/hierarchical diagrams, however, a large box containing exactly
// one child is typically a genuine parent, so it is kept.
//
// For each segment P the set of segments geometrically contained in P
// (pure containment, ContainmentMargin tolerance, no area-ratio gate)
// is evaluated against a single fixed snapshot of the input list —
// never recomputed after intervening removals — so the outcome is
// independent of input order:
//
//   - two or more children: P spans multiple components, remove it
//   - one child filling more than SingleChildFillRatio of P: P is a
//     near-duplicate expansion of the child, remove it
//   - one small child: genuine container, keep both
//   - no children: keep P
func deduplicateContained(segments []Segment, cfg Config) []Segment {
	if len(segments) < 2 {
		return segments
	}

	remove := make([]bool, len(segments))
	for i, p := range segments {
		var children []geometry.Box
		for j, other := range segments {
			if i == j {
				continue
			}
			if geometry.Contains(p.Box, other.Box, cfg.ContainmentMargin) {
				children = append(children, other.Box)
			}
		}

		switch {
		case len(children) >= 2:
			remove[i] = true
		case len(children) == 1:
			parentArea := p.Box.Area()
			if parentArea > 0 && children[0].Area()/parentArea > cfg.SingleChildFillRatio {
				remove[i] = true
			}
		}
	}

	kept := make([]Segment, 0, len(segments))
	for i, seg := range segments {
		if !remove[i] {
			kept = append(kept, seg)
		}
	}
	return kept
}
