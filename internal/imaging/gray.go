package imaging

import (
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	"gonum.org/v1/gonum/stat"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// Gray is a float64 luminance raster derived from a source image.
//
// Values are in the 0-255 range, stored row-major. All pipeline pixel
// statistics (border reference, per-side deviation scans, intensity
// variance, edge density) operate on this representation so the
// grayscale conversion happens once per invocation.
//
// A Gray is immutable after construction and safe for concurrent reads,
// which is what allows per-segment work to run in parallel without
// synchronization.
type Gray struct {
	Width  int
	Height int
	pix    []float64
}

// NewGray converts an image to a luminance raster.
//
// Conversion is delegated to bild's grayscale filter, which uses
// standard luminance weighting, so every stage sees the same intensity
// values regardless of the source color model.
func NewGray(img image.Image) *Gray {
	grayed := effect.Grayscale(img)
	bounds := grayed.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g := &Gray{
		Width:  width,
		Height: height,
		pix:    make([]float64, width*height),
	}

	for y := 0; y < height; y++ {
		row := grayed.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < width; x++ {
			// R, G and B are equal after grayscale conversion; read R.
			g.pix[y*width+x] = float64(grayed.Pix[row+x*4])
		}
	}

	return g
}

// At returns the luminance at (x, y). Coordinates outside the raster are
// clamped to the nearest edge pixel.
func (g *Gray) At(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= g.Width {
		x = g.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.Height {
		y = g.Height - 1
	}
	return g.pix[y*g.Width+x]
}

// clip constrains a box to the raster bounds.
func (g *Gray) clip(b geometry.Box) geometry.Box {
	if b.X1 < 0 {
		b.X1 = 0
	}
	if b.Y1 < 0 {
		b.Y1 = 0
	}
	if b.X2 > g.Width {
		b.X2 = g.Width
	}
	if b.Y2 > g.Height {
		b.Y2 = g.Height
	}
	return b
}

// BorderMedian returns the median luminance of the outermost one-pixel
// ring of the given box. The ring is the local background reference for
// box tightening: rows and columns whose deviation from it stays low are
// treated as empty margin.
func (g *Gray) BorderMedian(b geometry.Box) float64 {
	b = g.clip(b)
	if !b.Valid() {
		return 0
	}

	ring := make([]float64, 0, 2*(b.Width()+b.Height()))
	for x := b.X1; x < b.X2; x++ {
		ring = append(ring, g.At(x, b.Y1), g.At(x, b.Y2-1))
	}
	for y := b.Y1; y < b.Y2; y++ {
		ring = append(ring, g.At(b.X1, y), g.At(b.X2-1, y))
	}

	sort.Float64s(ring)
	return stat.Quantile(0.5, stat.Empirical, ring, nil)
}

// ColumnDeviation returns the mean absolute deviation from ref of the
// pixels in column x of the box (x is an absolute image coordinate).
func (g *Gray) ColumnDeviation(b geometry.Box, x int, ref float64) float64 {
	b = g.clip(b)
	if !b.Valid() {
		return 0
	}

	var sum float64
	for y := b.Y1; y < b.Y2; y++ {
		sum += math.Abs(g.At(x, y) - ref)
	}
	return sum / float64(b.Height())
}

// RowDeviation returns the mean absolute deviation from ref of the
// pixels in row y of the box (y is an absolute image coordinate).
func (g *Gray) RowDeviation(b geometry.Box, y int, ref float64) float64 {
	b = g.clip(b)
	if !b.Valid() {
		return 0
	}

	var sum float64
	for x := b.X1; x < b.X2; x++ {
		sum += math.Abs(g.At(x, y) - ref)
	}
	return sum / float64(b.Width())
}

// StdDev returns the population standard deviation of the luminance
// inside the box. Low values indicate a flat, background-like region.
func (g *Gray) StdDev(b geometry.Box) float64 {
	b = g.clip(b)
	if !b.Valid() {
		return 0
	}

	values := make([]float64, 0, b.Width()*b.Height())
	for y := b.Y1; y < b.Y2; y++ {
		for x := b.X1; x < b.X2; x++ {
			values = append(values, g.At(x, y))
		}
	}
	return stat.PopStdDev(values, nil)
}

// EdgeDensity returns the fraction of pixels inside the box whose
// gradient magnitude exceeds gradThreshold.
//
// The gradient is a simple backward difference in each axis: the first
// row and column of the box see a zero difference in that axis, matching
// a prepend-style finite difference. This is deliberately cheaper than a
// full Sobel pass; the density only feeds a coarse blank-region test.
func (g *Gray) EdgeDensity(b geometry.Box, gradThreshold float64) float64 {
	b = g.clip(b)
	if !b.Valid() {
		return 0
	}

	total := b.Width() * b.Height()
	edgePixels := 0
	for y := b.Y1; y < b.Y2; y++ {
		for x := b.X1; x < b.X2; x++ {
			v := g.At(x, y)
			var dx, dy float64
			if x > b.X1 {
				dx = v - g.At(x-1, y)
			}
			if y > b.Y1 {
				dy = v - g.At(x, y-1)
			}
			if math.Sqrt(dx*dx+dy*dy) > gradThreshold {
				edgePixels++
			}
		}
	}
	return float64(edgePixels) / float64(total)
}
