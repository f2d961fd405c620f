// Package geometry provides the rectangle primitives shared by the
// extraction pipeline: bounding boxes, intersection-over-union, and
// geometric containment.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Boxes use inclusive top-left and exclusive bottom-right corners
//
// # Containment vs. Nesting
//
// Contains is purely geometric: box A contains box B when B's bounds lie
// within A's, up to a pixel tolerance. It deliberately carries no
// area-ratio requirement; callers that need a size gate (for example to
// tell genuine parent/child nesting apart from duplicate detections)
// apply their own ratio checks on top.
package geometry
