package proposer

import (
	"context"
	"image"
	"sort"

	"github.com/anibitri/diagram-ar/internal/geometry"
	"github.com/anibitri/diagram-ar/internal/imaging"
)

// Local is a RegionProposer that finds candidate regions on the CPU,
// with no segmentation service: it detects axis-aligned rectangular
// contours, which is what most technical diagrams draw their components
// as. Quality is below a learned model — rotated shapes, rounded
// corners, and touching components confuse it — but the downstream
// pipeline is built to absorb noisy proposals.
type Local struct {
	// MinArea is the smallest contour bounding-box area reported, in
	// square pixels.
	MinArea int

	// Tolerance is the minimum rectangularity in [0,1]: how closely the
	// contour length matches its bounding-box perimeter.
	Tolerance float64

	// GradThreshold is the luminance gradient magnitude above which a
	// pixel counts as an edge pixel.
	GradThreshold float64
}

// NewLocal returns a local proposer with defaults tuned for diagrams.
func NewLocal() *Local {
	return &Local{
		MinArea:       500,
		Tolerance:     0.5,
		GradThreshold: 30,
	}
}

// Propose detects rectangular contours and reports their bounding boxes
// as detections. Confidence is the contour's rectangularity, so clean
// boxes rank above ragged shapes. Results are ordered by area, largest
// first.
func (l *Local) Propose(ctx context.Context, img image.Image) ([]RawDetection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gray := imaging.NewGray(img)
	edges := edgeMap(gray, l.GradThreshold)

	var detections []RawDetection
	visited := make([]bool, gray.Width*gray.Height)
	for y := 0; y < gray.Height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x < gray.Width; x++ {
			idx := y*gray.Width + x
			if !edges[idx] || visited[idx] {
				continue
			}

			box, contourLen := traceComponent(edges, visited, gray.Width, gray.Height, x, y)
			if int(box.Area()) < l.MinArea {
				continue
			}

			perimeter := 2 * (box.Width() + box.Height())
			diff := contourLen - perimeter
			if diff < 0 {
				diff = -diff
			}
			rectangularity := 1.0 - float64(diff)/float64(perimeter)
			if rectangularity < l.Tolerance {
				continue
			}
			if rectangularity > 1 {
				rectangularity = 1
			}

			detections = append(detections, RawDetection{
				Box:        box,
				Confidence: rectangularity,
			})
		}
	}

	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Box.Area() > detections[j].Box.Area()
	})
	return detections, nil
}

// edgeMap marks pixels whose backward-difference gradient magnitude
// exceeds the threshold.
func edgeMap(gray *imaging.Gray, gradThreshold float64) []bool {
	edges := make([]bool, gray.Width*gray.Height)
	for y := 0; y < gray.Height; y++ {
		for x := 0; x < gray.Width; x++ {
			v := gray.At(x, y)
			var dx, dy float64
			if x > 0 {
				dx = v - gray.At(x-1, y)
			}
			if y > 0 {
				dy = v - gray.At(x, y-1)
			}
			if dx*dx+dy*dy > gradThreshold*gradThreshold {
				edges[y*gray.Width+x] = true
			}
		}
	}
	return edges
}

// traceComponent flood-fills one 8-connected group of edge pixels,
// returning its bounding box and pixel count. Iterative with an
// explicit stack; recursion would overflow on long contours.
func traceComponent(edges, visited []bool, width, height, startX, startY int) (geometry.Box, int) {
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	count := 0

	stack := []int{startY*width + startX}
	visited[stack[0]] = true
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		x := idx % width
		y := idx / width
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				nidx := ny*width + nx
				if edges[nidx] && !visited[nidx] {
					visited[nidx] = true
					stack = append(stack, nidx)
				}
			}
		}
	}

	return geometry.Box{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}, count
}
