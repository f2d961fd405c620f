package pipeline

import (
	"context"
	"sync"

	"github.com/anibitri/diagram-ar/internal/geometry"
	"github.com/anibitri/diagram-ar/internal/imaging"
)

// tightenSegments shrinks each box inward to its actual visual content.
//
// Region proposers often produce boxes that extend past the real
// component edges into surrounding whitespace. For each box the median
// luminance of its outermost one-pixel ring is taken as the local
// background reference; each side is then trimmed inward one row or
// column at a time while the mean absolute deviation from the reference
// stays below TightenBGThreshold, up to TightenMargin of that dimension
// per side.
//
// If the tightened box falls below MinDimension in either dimension or
// its aspect ratio now exceeds MaxAspectRatio, the result is discarded
// and the original box kept unchanged.
//
// Per-segment work is independent and reads only the shared immutable
// luminance raster, so segments are processed by a bounded worker pool.
// Results are written by index; the output order and content are
// identical regardless of parallelism degree.
func tightenSegments(ctx context.Context, gray *imaging.Gray, segments []Segment, cfg Config) []Segment {
	if len(segments) == 0 {
		return nil
	}

	tightened := make([]Segment, len(segments))

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
			tightened[i] = tightenOne(gray, segments[i], cfg)
		}(i)
	}
	wg.Wait()

	if ctx.Err() != nil {
		// Partial results are never surfaced on cancellation.
		return segments
	}
	return tightened
}

func tightenOne(gray *imaging.Gray, seg Segment, cfg Config) Segment {
	box := seg.Box
	w := box.Width()
	h := box.Height()

	// Boxes this small have no margin worth scanning.
	if w < 10 || h < 10 {
		return seg
	}

	maxTrimX := int(float64(w) * cfg.TightenMargin)
	maxTrimY := int(float64(h) * cfg.TightenMargin)

	bg := gray.BorderMedian(box)

	trimLeft := 0
	for i := 0; i < maxTrimX && i < w-1; i++ {
		if gray.ColumnDeviation(box, box.X1+i, bg) > cfg.TightenBGThreshold {
			break
		}
		trimLeft = i + 1
	}

	trimRight := 0
	for i := 0; i < maxTrimX && i < w-1; i++ {
		if gray.ColumnDeviation(box, box.X2-1-i, bg) > cfg.TightenBGThreshold {
			break
		}
		trimRight = i + 1
	}

	trimTop := 0
	for i := 0; i < maxTrimY && i < h-1; i++ {
		if gray.RowDeviation(box, box.Y1+i, bg) > cfg.TightenBGThreshold {
			break
		}
		trimTop = i + 1
	}

	trimBottom := 0
	for i := 0; i < maxTrimY && i < h-1; i++ {
		if gray.RowDeviation(box, box.Y2-1-i, bg) > cfg.TightenBGThreshold {
			break
		}
		trimBottom = i + 1
	}

	newBox := geometry.Box{
		X1: box.X1 + trimLeft,
		Y1: box.Y1 + trimTop,
		X2: box.X2 - trimRight,
		Y2: box.Y2 - trimBottom,
	}

	if newBox.Width() < cfg.MinDimension || newBox.Height() < cfg.MinDimension {
		return seg
	}
	if newBox.AspectRatio() > cfg.MaxAspectRatio {
		return seg
	}
	if newBox == box {
		return seg
	}

	return Segment{Box: newBox, Confidence: seg.Confidence, Tightened: true}
}
