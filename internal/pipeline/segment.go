package pipeline

import "github.com/anibitri/diagram-ar/internal/geometry"

// Segment is a candidate bounding box with detection confidence, at any
// point between raw proposal intake and final normalization.
//
// Segments are immutable once produced by a stage: each stage returns a
// new slice rather than mutating its input, and a segment dropped by an
// earlier stage is never re-examined by a later one.
type Segment struct {
	// Box is the candidate region in pixel coordinates.
	Box geometry.Box

	// Confidence is the proposer's detection confidence in [0, 1].
	Confidence float64

	// Tightened records whether the box was shrunk to its visual
	// content by the tightening stage.
	Tightened bool
}

// Component is a finalized, normalized, labeled detection — the
// pipeline's output unit.
//
// All geometric fields are image-normalized to [0, 1]: a component at
// X=0.1, Width=0.2 spans from 10% to 30% of the image width regardless
// of the source resolution.
type Component struct {
	// ID is a stable opaque identifier for this component.
	ID string `json:"id"`

	// Label is the component's display name. Until labeling it holds a
	// component_N placeholder; a failed labeling attempt yields the
	// "Unknown" sentinel.
	Label string `json:"label"`

	// Confidence is the detection confidence carried over from the
	// surviving segment, in [0, 1].
	Confidence float64 `json:"confidence"`

	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// box retains the pixel-space region for label cropping. It is
	// internal provenance and never serialized.
	box geometry.Box
}

// PixelBox returns the pixel-space region the component was derived
// from. Exposed for crop extraction during labeling and for tests.
func (c Component) PixelBox() geometry.Box {
	return c.box
}
