package pipeline

import (
	"sort"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// resolveOverlaps removes full-image background detections, then runs
// nesting-aware duplicate suppression.
//
// Phase A: a segment covering at least ContainerMinAreaRatio of the
// image that geometrically contains at least ContainerMinChildren other
// segments is the page or canvas background, not a component, and is
// dropped. If that removes everything, the whole set is restored — an
// empty result from background removal means the gate misfired.
//
// Phase B: remaining segments are processed in descending-confidence
// order (ties broken by larger area, so the result is deterministic
// regardless of input order). For a pair exceeding IoUThreshold: when
// the boxes differ in area by at least NestingSizeRatio and the smaller
// lies inside the larger, they are a genuine parent/child pair and both
// survive; otherwise they are duplicate detections of one component and
// the lower-confidence one is dropped.
func resolveOverlaps(segments []Segment, imgArea float64, cfg Config) []Segment {
	if len(segments) == 0 {
		return nil
	}

	ordered := make([]Segment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Confidence != ordered[j].Confidence {
			return ordered[i].Confidence > ordered[j].Confidence
		}
		return ordered[i].Box.Area() > ordered[j].Box.Area()
	})

	nonBackground := removeBackground(ordered, imgArea, cfg)
	if len(nonBackground) == 0 {
		nonBackground = ordered
	}

	kept := make([]Segment, 0, len(nonBackground))
	for _, seg := range nonBackground {
		keep := true
		for _, prev := range kept {
			if geometry.IoU(seg.Box, prev.Box) <= cfg.IoUThreshold {
				continue
			}
			if isNested(seg.Box, prev.Box, cfg) {
				// Encapsulation, not duplication: keep both.
				continue
			}
			keep = false
			break
		}
		if keep {
			kept = append(kept, seg)
		}
	}

	return kept
}

// removeBackground drops segments that are ratio-gated containers of
// many other detections.
func removeBackground(segments []Segment, imgArea float64, cfg Config) []Segment {
	kept := make([]Segment, 0, len(segments))
	for i, seg := range segments {
		if seg.Box.Area() < imgArea*cfg.ContainerMinAreaRatio {
			kept = append(kept, seg)
			continue
		}

		children := 0
		for j, other := range segments {
			if i == j {
				continue
			}
			if containsGated(seg.Box, other.Box, cfg.BackgroundContainMargin) {
				children++
			}
		}

		if children < cfg.ContainerMinChildren {
			kept = append(kept, seg)
		}
	}
	return kept
}

// containsGated is the background-removal containment test: geometric
// containment with a pixel tolerance, plus an area gate so two
// similar-sized overlapping boxes never count as container and
// contained.
func containsGated(outer, inner geometry.Box, margin float64) bool {
	if !geometry.Contains(outer, inner, margin) {
		return false
	}
	return outer.Area() > inner.Area()*2.0
}

// isNested reports whether one box is encapsulated in the other: the
// areas differ by at least NestingSizeRatio and the smaller box lies
// within the larger, up to NestingMargin pixels of detection slack.
func isNested(a, b geometry.Box, cfg Config) bool {
	areaA := a.Area()
	areaB := b.Area()
	smaller := areaA
	if areaB < smaller {
		smaller = areaB
	}
	if smaller == 0 {
		return false
	}

	larger := areaA
	if areaB > larger {
		larger = areaB
	}
	if larger/smaller < cfg.NestingSizeRatio {
		// Similar-sized boxes overlap as duplicates, not as nesting.
		return false
	}

	outer, inner := a, b
	if areaB > areaA {
		outer, inner = b, a
	}
	return geometry.Contains(outer, inner, cfg.NestingMargin)
}
