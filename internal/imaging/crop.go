package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// Crop extracts the rectangular region described by box from an image.
func Crop(img image.Image, box geometry.Box) (image.Image, error) {
	bounds := img.Bounds()
	if box.X1 < bounds.Min.X || box.Y1 < bounds.Min.Y || box.X2 > bounds.Max.X || box.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			box.X1, box.Y1, box.X2, box.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if !box.Valid() {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(box.X1, box.Y1, box.X2, box.Y2)), nil
}

// FitForLabel shrinks a crop so its longer side is at most maxSide
// pixels, preserving aspect ratio with Lanczos resampling. Crops already
// within the limit are returned unchanged.
//
// Vision labelers work on small fixed input resolutions; sending a large
// crop only adds encode and transfer cost without improving the answer.
func FitForLabel(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	if w >= h {
		return imaging.Resize(img, maxSide, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxSide, imaging.Lanczos)
}
