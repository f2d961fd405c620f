package geometry

import "math"

// Box represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive for iteration)
//
// A valid Box satisfies X1 < X2 and Y1 < Y2.
type Box struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Width returns the horizontal extent in pixels (X2 - X1).
func (b Box) Width() int {
	return b.X2 - b.X1
}

// Height returns the vertical extent in pixels (Y2 - Y1).
func (b Box) Height() int {
	return b.Y2 - b.Y1
}

// Area returns the box's area in square pixels.
func (b Box) Area() float64 {
	return float64(b.Width()) * float64(b.Height())
}

// Valid reports whether the box has positive width and height.
func (b Box) Valid() bool {
	return b.X1 < b.X2 && b.Y1 < b.Y2
}

// AspectRatio returns the ratio of the longer side to the shorter side.
// Always >= 1.0 for a valid box. Degenerate dimensions are clamped to 1
// to avoid division by zero.
func (b Box) AspectRatio() float64 {
	w := float64(b.Width())
	h := float64(b.Height())
	longer := math.Max(w, h)
	shorter := math.Max(math.Min(w, h), 1)
	return longer / shorter
}

// Center returns the center point of the box.
func (b Box) Center() (x, y float64) {
	return float64(b.X1+b.X2) / 2, float64(b.Y1+b.Y2) / 2
}

// IoU computes the Intersection over Union of two boxes.
//
// Returns a value in [0, 1]: 0 for disjoint boxes, 1 for identical boxes.
// Degenerate boxes (zero union area) yield 0.
func IoU(a, b Box) float64 {
	x1 := math.Max(float64(a.X1), float64(b.X1))
	y1 := math.Max(float64(a.Y1), float64(b.Y1))
	x2 := math.Min(float64(a.X2), float64(b.X2))
	y2 := math.Min(float64(a.Y2), float64(b.Y2))

	if x2 < x1 || y2 < y1 {
		return 0.0
	}

	inter := (x2 - x1) * (y2 - y1)
	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0.0
	}
	return inter / union
}

// Contains reports whether outer geometrically contains inner, allowing
// each inner edge to extend up to margin pixels past the corresponding
// outer edge. Pure geometric containment: there is no area-ratio gate.
func Contains(outer, inner Box, margin float64) bool {
	return float64(outer.X1) <= float64(inner.X1)+margin &&
		float64(outer.Y1) <= float64(inner.Y1)+margin &&
		float64(outer.X2) >= float64(inner.X2)-margin &&
		float64(outer.Y2) >= float64(inner.Y2)-margin
}
