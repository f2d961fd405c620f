package pipeline

// filterSegments rejects structurally invalid raw detections.
//
// A segment is dropped when any of the following hold:
//   - confidence below ConfidenceThreshold
//   - area below MinBoxArea or below MinAreaRatio of the image
//   - area above MaxAreaRatio of the image (background-sized)
//   - aspect ratio above MaxAspectRatio (lines, thin slivers)
//   - width or height below MinDimension
//   - the box hugs an image edge within EdgeExcludeMargin and its area
//     ratio is below BorderArtifactAreaRatio (grid artifacts, partial
//     elements, decorations — large components near edges are kept)
//
// Pure function; order-preserving; no side effects.
func filterSegments(segments []Segment, imgWidth, imgHeight int, cfg Config) []Segment {
	imgArea := float64(imgWidth) * float64(imgHeight)
	filtered := make([]Segment, 0, len(segments))

	for _, seg := range segments {
		if !seg.Box.Valid() {
			continue
		}

		area := seg.Box.Area()
		areaRatio := area / imgArea

		if seg.Confidence < cfg.ConfidenceThreshold {
			continue
		}
		if area < cfg.MinBoxArea {
			continue
		}
		if areaRatio < cfg.MinAreaRatio {
			continue
		}
		if areaRatio > cfg.MaxAreaRatio {
			continue
		}
		if seg.Box.AspectRatio() > cfg.MaxAspectRatio {
			continue
		}
		if seg.Box.Width() < cfg.MinDimension || seg.Box.Height() < cfg.MinDimension {
			continue
		}

		if areaRatio < cfg.BorderArtifactAreaRatio {
			normX1 := float64(seg.Box.X1) / float64(imgWidth)
			normY1 := float64(seg.Box.Y1) / float64(imgHeight)
			normX2 := float64(seg.Box.X2) / float64(imgWidth)
			normY2 := float64(seg.Box.Y2) / float64(imgHeight)
			m := cfg.EdgeExcludeMargin
			if normX1 < m || normY1 < m || normX2 > 1.0-m || normY2 > 1.0-m {
				continue
			}
		}

		filtered = append(filtered, seg)
	}

	return filtered
}
