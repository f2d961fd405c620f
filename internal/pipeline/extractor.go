package pipeline

import (
	"context"
	"image"
	"sync"

	"github.com/anibitri/diagram-ar/internal/imaging"
	"github.com/anibitri/diagram-ar/internal/label"
	"github.com/anibitri/diagram-ar/internal/proposer"
)

// labelCropMaxSide is the longest crop side sent to the labeler.
// Vision models work on small fixed input resolutions; larger crops
// only add transfer cost.
const labelCropMaxSide = 224

// Extractor runs the full extraction pipeline: raw region proposals in,
// clean normalized labeled components out.
//
// The proposer and labeler are expensive process-wide resources,
// injected once at construction and shared by reference across
// invocations. An Extractor holds no per-run state: Extract is a pure
// function of its inputs and safe for concurrent calls.
type Extractor struct {
	proposer proposer.RegionProposer
	labeler  label.Labeler
	cfg      Config
	trace    Trace
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTrace attaches a diagnostic event sink. Tracing is observability
// only and never influences any filtering decision.
func WithTrace(t Trace) Option {
	return func(e *Extractor) { e.trace = t }
}

// New creates an Extractor. The configuration is validated here, before
// any image is processed; an invalid threshold fails fast with an error
// wrapping ErrInvalidConfig.
//
// A nil labeler is allowed: components then keep their component_N
// placeholder labels.
func New(p proposer.RegionProposer, l label.Labeler, cfg Config, opts ...Option) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{
		proposer: p,
		labeler:  l,
		cfg:      cfg,
		trace:    nopTrace{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.trace == nil {
		e.trace = nopTrace{}
	}
	return e, nil
}

// Extract turns one image into its component list.
//
// Stage order is fixed: segment filtering, box tightening, overlap
// resolution, containment deduplication, complexity filtering,
// normalization, labeling, label deduplication, and finally the
// MaxComponents cap. Each stage consumes the previous stage's full
// output; a segment dropped by one stage is never re-examined.
//
// A proposer failure is fatal and surfaces as *ProposerError. Labeler
// failures are isolated per component: the affected component gets the
// "Unknown" sentinel and the run continues.
func (e *Extractor) Extract(ctx context.Context, img image.Image) ([]Component, error) {
	if img == nil {
		return nil, ErrInvalidImage
	}
	imgWidth, imgHeight := imaging.Dimensions(img)
	if imgWidth <= 0 || imgHeight <= 0 {
		return nil, ErrInvalidImage
	}

	detections, err := e.proposer.Propose(ctx, img)
	if err != nil {
		return nil, &ProposerError{Err: err}
	}

	segments := make([]Segment, 0, len(detections))
	for _, d := range detections {
		segments = append(segments, Segment{Box: d.Box, Confidence: d.Confidence})
	}

	filtered := filterSegments(segments, imgWidth, imgHeight, e.cfg)
	e.trace.StageComplete("segment_filter", len(segments), len(filtered))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gray := imaging.NewGray(img)

	if e.cfg.TightenBoxes {
		tightened := tightenSegments(ctx, gray, filtered, e.cfg)
		e.trace.StageComplete("box_tighten", len(filtered), len(tightened))
		filtered = tightened
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	imgArea := float64(imgWidth) * float64(imgHeight)
	unique := resolveOverlaps(filtered, imgArea, e.cfg)
	e.trace.StageComplete("overlap_resolve", len(filtered), len(unique))

	deduped := deduplicateContained(unique, e.cfg)
	e.trace.StageComplete("containment_dedup", len(unique), len(deduped))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	complexEnough := filterByComplexity(ctx, gray, deduped, e.cfg, e.trace)
	e.trace.StageComplete("complexity_filter", len(deduped), len(complexEnough))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	components := normalizeSegments(complexEnough, imgWidth, imgHeight)
	e.trace.StageComplete("normalize", len(complexEnough), len(components))

	if e.labeler != nil {
		if err := e.labelComponents(ctx, img, components); err != nil {
			return nil, err
		}
	}

	final := deduplicateByLabel(components)
	e.trace.StageComplete("label_dedup", len(components), len(final))

	if len(final) > e.cfg.MaxComponents {
		final = final[:e.cfg.MaxComponents]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return final, nil
}

// labelComponents assigns sanitized labels to all components in place.
//
// Calls run through a bounded worker pool; every call carries an
// independent timeout, and results correlate back to their component by
// index, never by response arrival order. A failed, timed-out, or empty
// answer yields the "Unknown" sentinel for that one component only.
func (e *Extractor) labelComponents(ctx context.Context, img image.Image, components []Component) error {
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.cfg.LabelWorkers)

	for i := range components {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			components[i].Label = e.labelOne(ctx, img, components[i])
		}(i)
	}
	wg.Wait()

	return ctx.Err()
}

func (e *Extractor) labelOne(ctx context.Context, img image.Image, comp Component) string {
	crop, err := imaging.Crop(img, comp.PixelBox())
	if err != nil {
		return label.Sentinel
	}
	crop = imaging.FitForLabel(crop, labelCropMaxSide)

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.LabelTimeout)
	defer cancel()

	raw, err := e.labeler.Label(callCtx, crop)
	if err != nil {
		return label.Sentinel
	}
	return label.Sanitize(raw)
}
