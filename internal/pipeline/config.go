package pipeline

import (
	"fmt"
	"time"
)

// Config holds every tunable threshold of the extraction pipeline.
//
// All values are empirically tuned policy rather than derived constants,
// so they are exposed as named fields instead of hard-coded literals.
// A Config is read-only for the duration of an invocation; the same
// Config can serve concurrent extractions.
type Config struct {
	// ConfidenceThreshold is the minimum detection confidence admitted
	// by the segment filter.
	ConfidenceThreshold float64

	// MinBoxArea is the minimum absolute box area in square pixels.
	MinBoxArea float64

	// MinAreaRatio and MaxAreaRatio bound box area relative to the
	// whole image.
	MinAreaRatio float64
	MaxAreaRatio float64

	// MaxAspectRatio is the maximum longer-side/shorter-side ratio,
	// applied both at filtering and when validating a tightened box.
	MaxAspectRatio float64

	// MinDimension is the minimum box width and height in pixels.
	MinDimension int

	// EdgeExcludeMargin is the normalized distance from an image edge
	// within which small detections are treated as border artifacts.
	EdgeExcludeMargin float64

	// BorderArtifactAreaRatio is the area ratio below which a
	// border-hugging detection is rejected. Larger detections near
	// edges are genuine components and are kept.
	BorderArtifactAreaRatio float64

	// TightenBoxes enables the box tightening stage.
	TightenBoxes bool

	// TightenMargin is the maximum fraction of a box dimension that may
	// be trimmed from each side.
	TightenMargin float64

	// TightenBGThreshold is the mean absolute luminance deviation from
	// the border reference below which a row or column counts as empty
	// margin.
	TightenBGThreshold float64

	// IoUThreshold is the overlap above which two boxes are either
	// duplicates or a nested pair.
	IoUThreshold float64

	// NestingSizeRatio is the minimum area ratio between two
	// overlapping boxes for them to count as genuine parent/child
	// nesting rather than duplicate detections.
	NestingSizeRatio float64

	// NestingMargin is the pixel tolerance when testing whether the
	// smaller of a nested pair lies inside the larger.
	NestingMargin float64

	// ContainerMinAreaRatio and ContainerMinChildren identify
	// full-image background detections: a box covering at least the
	// area ratio and containing at least that many other detections.
	ContainerMinAreaRatio float64
	ContainerMinChildren  int

	// BackgroundContainMargin is the pixel tolerance for the
	// background-removal containment test.
	BackgroundContainMargin float64

	// ContainmentMargin is the pixel tolerance for the pure geometric
	// containment test used by containment deduplication.
	ContainmentMargin float64

	// SingleChildFillRatio is the child/parent area ratio above which a
	// single-child container is a near-duplicate expansion of its child
	// rather than a genuine parent.
	SingleChildFillRatio float64

	// MinColorVariance is the minimum grayscale standard deviation for
	// a small region to count as visually complex.
	MinColorVariance float64

	// MinEdgeDensity is the minimum fraction of edge pixels for a small
	// region to count as visually complex.
	MinEdgeDensity float64

	// EdgeGradientThreshold is the gradient magnitude above which a
	// pixel counts as an edge pixel for the density test.
	EdgeGradientThreshold float64

	// ComplexityBypassArea is the image-area fraction at or above which
	// a detection skips the complexity check entirely. Large
	// solid-colored components are real even when textureless.
	ComplexityBypassArea float64

	// MaxComponents caps the final component list.
	MaxComponents int

	// ProximityThreshold is the normalized center distance below which
	// two components are considered related for overlay connections.
	ProximityThreshold float64

	// LabelTimeout bounds each individual labeler call. A timed-out
	// call yields the "Unknown" sentinel for that one component.
	LabelTimeout time.Duration

	// LabelWorkers is the number of concurrent labeler calls. 1
	// reproduces strictly sequential labeling.
	LabelWorkers int

	// TightenWorkers bounds the per-segment parallelism of the
	// tightening and complexity stages.
	TightenWorkers int
}

// DefaultConfig returns the tuned defaults for technical diagrams.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold:     0.35,
		MinBoxArea:              1000,
		MinAreaRatio:            0.004,
		MaxAreaRatio:            0.85,
		MaxAspectRatio:          4.0,
		MinDimension:            30,
		EdgeExcludeMargin:       0.02,
		BorderArtifactAreaRatio: 0.008,
		TightenBoxes:            true,
		TightenMargin:           0.15,
		TightenBGThreshold:      12,
		IoUThreshold:            0.45,
		NestingSizeRatio:        1.8,
		NestingMargin:           20,
		ContainerMinAreaRatio:   0.55,
		ContainerMinChildren:    5,
		BackgroundContainMargin: 10,
		ContainmentMargin:       15,
		SingleChildFillRatio:    0.40,
		MinColorVariance:        10.0,
		MinEdgeDensity:          0.01,
		EdgeGradientThreshold:   8,
		ComplexityBypassArea:    0.015,
		MaxComponents:           50,
		ProximityThreshold:      0.15,
		LabelTimeout:            30 * time.Second,
		LabelWorkers:            1,
		TightenWorkers:          4,
	}
}

// Validate checks the configuration before any image is processed.
// Invalid thresholds fail fast with an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fail("confidence_threshold %v outside [0,1]", c.ConfidenceThreshold)
	}
	if c.MinBoxArea < 0 {
		return fail("min_box_area %v is negative", c.MinBoxArea)
	}
	if c.MinAreaRatio < 0 || c.MinAreaRatio > 1 {
		return fail("min_area_ratio %v outside [0,1]", c.MinAreaRatio)
	}
	if c.MaxAreaRatio <= 0 || c.MaxAreaRatio > 1 {
		return fail("max_area_ratio %v outside (0,1]", c.MaxAreaRatio)
	}
	if c.MinAreaRatio >= c.MaxAreaRatio {
		return fail("min_area_ratio %v >= max_area_ratio %v", c.MinAreaRatio, c.MaxAreaRatio)
	}
	if c.MaxAspectRatio < 1 {
		return fail("max_aspect_ratio %v below 1", c.MaxAspectRatio)
	}
	if c.MinDimension < 1 {
		return fail("min_dimension %d below 1", c.MinDimension)
	}
	if c.EdgeExcludeMargin < 0 || c.EdgeExcludeMargin >= 0.5 {
		return fail("edge_exclude_margin %v outside [0,0.5)", c.EdgeExcludeMargin)
	}
	if c.BorderArtifactAreaRatio < 0 || c.BorderArtifactAreaRatio > 1 {
		return fail("border_artifact_area_ratio %v outside [0,1]", c.BorderArtifactAreaRatio)
	}
	if c.TightenMargin < 0 || c.TightenMargin >= 0.5 {
		return fail("tighten_margin %v outside [0,0.5)", c.TightenMargin)
	}
	if c.TightenBGThreshold < 0 {
		return fail("tighten_bg_threshold %v is negative", c.TightenBGThreshold)
	}
	if c.IoUThreshold <= 0 || c.IoUThreshold >= 1 {
		return fail("iou_threshold %v outside (0,1)", c.IoUThreshold)
	}
	if c.NestingSizeRatio < 1 {
		return fail("nesting_size_ratio %v below 1", c.NestingSizeRatio)
	}
	if c.ContainerMinAreaRatio <= 0 || c.ContainerMinAreaRatio > 1 {
		return fail("container_min_area_ratio %v outside (0,1]", c.ContainerMinAreaRatio)
	}
	if c.ContainerMinChildren < 1 {
		return fail("container_min_children %d below 1", c.ContainerMinChildren)
	}
	if c.SingleChildFillRatio <= 0 || c.SingleChildFillRatio >= 1 {
		return fail("single_child_fill_ratio %v outside (0,1)", c.SingleChildFillRatio)
	}
	if c.MinColorVariance < 0 {
		return fail("min_color_variance %v is negative", c.MinColorVariance)
	}
	if c.MinEdgeDensity < 0 || c.MinEdgeDensity > 1 {
		return fail("min_edge_density %v outside [0,1]", c.MinEdgeDensity)
	}
	if c.EdgeGradientThreshold < 0 {
		return fail("edge_gradient_threshold %v is negative", c.EdgeGradientThreshold)
	}
	if c.ComplexityBypassArea < 0 || c.ComplexityBypassArea > 1 {
		return fail("complexity_bypass_area %v outside [0,1]", c.ComplexityBypassArea)
	}
	if c.MaxComponents < 1 {
		return fail("max_components %d below 1", c.MaxComponents)
	}
	if c.ProximityThreshold < 0 {
		return fail("proximity_threshold %v is negative", c.ProximityThreshold)
	}
	if c.LabelTimeout <= 0 {
		return fail("label_timeout %v not positive", c.LabelTimeout)
	}
	if c.LabelWorkers < 1 {
		return fail("label_workers %d below 1", c.LabelWorkers)
	}
	if c.TightenWorkers < 1 {
		return fail("tighten_workers %d below 1", c.TightenWorkers)
	}

	return nil
}
