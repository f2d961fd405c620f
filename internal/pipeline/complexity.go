package pipeline

import (
	"context"
	"sync"

	"github.com/anibitri/diagram-ar/internal/imaging"
)

// filterByComplexity drops visually blank, background-like regions.
//
// Detections at or above ComplexityBypassArea of the image pass
// unconditionally: solid-colored real components (a CPU block, a filled
// node) have low variance and few edges but are not artifacts, and at
// that size a blank detection would already have been caught as
// background. Smaller detections must show either enough grayscale
// variance or enough edge content — either metric alone suffices, so a
// flat-filled component with a crisp outline still passes.
//
// Measured values and the pass/fail outcome go to the trace sink; the
// decision itself never depends on tracing. Per-segment measurement is
// independent and parallelized like tightening.
func filterByComplexity(ctx context.Context, gray *imaging.Gray, segments []Segment, cfg Config, trace Trace) []Segment {
	if len(segments) == 0 {
		return nil
	}

	imgArea := float64(gray.Width) * float64(gray.Height)
	passed := make([]bool, len(segments))

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.TightenWorkers)
	for i := range segments {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			seg := segments[i]
			if seg.Box.Area()/imgArea >= cfg.ComplexityBypassArea {
				passed[i] = true
				return
			}

			variance := gray.StdDev(seg.Box)
			edgeDensity := gray.EdgeDensity(seg.Box, cfg.EdgeGradientThreshold)
			passed[i] = variance >= cfg.MinColorVariance || edgeDensity >= cfg.MinEdgeDensity
			trace.SegmentComplexity(seg.Box, variance, edgeDensity, passed[i])
		}(i)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return segments
	}

	kept := make([]Segment, 0, len(segments))
	for i, seg := range segments {
		if passed[i] {
			kept = append(kept, seg)
		}
	}
	return kept
}
