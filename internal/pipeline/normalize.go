package pipeline

import (
	"fmt"

	"github.com/google/uuid"
)

// normalizeSegments converts surviving pixel-space segments into
// Components with [0,1] image-normalized coordinates.
//
// Pure arithmetic; no rejection happens here. Each component receives a
// fresh opaque ID and a component_N placeholder label (N is its 1-based
// position) that stands until the labeling stage replaces it.
func normalizeSegments(segments []Segment, imgWidth, imgHeight int) []Component {
	w := float64(imgWidth)
	h := float64(imgHeight)

	components := make([]Component, 0, len(segments))
	for i, seg := range segments {
		boxW := float64(seg.Box.Width())
		boxH := float64(seg.Box.Height())
		cx, cy := seg.Box.Center()

		components = append(components, Component{
			ID:         uuid.NewString(),
			Label:      fmt.Sprintf("component_%d", i+1),
			Confidence: seg.Confidence,
			X:          float64(seg.Box.X1) / w,
			Y:          float64(seg.Box.Y1) / h,
			Width:      boxW / w,
			Height:     boxH / h,
			CenterX:    cx / w,
			CenterY:    cy / h,
			box:        seg.Box,
		})
	}
	return components
}
