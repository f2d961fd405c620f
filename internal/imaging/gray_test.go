package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// createBoxedImage builds a white canvas with a filled dark rectangle.
func createBoxedImage(width, height int, rect geometry.Box) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x >= rect.X1 && x < rect.X2 && y >= rect.Y1 && y < rect.Y2 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func TestNewGray(t *testing.T) {
	img := createBoxedImage(100, 100, geometry.Box{X1: 40, Y1: 40, X2: 60, Y2: 60})
	gray := NewGray(img)

	if gray.Width != 100 || gray.Height != 100 {
		t.Fatalf("dimensions: got %dx%d, want 100x100", gray.Width, gray.Height)
	}
	if v := gray.At(0, 0); v != 255 {
		t.Errorf("white pixel: got %v, want 255", v)
	}
	if v := gray.At(50, 50); v != 0 {
		t.Errorf("black pixel: got %v, want 0", v)
	}
}

func TestGray_AtClamps(t *testing.T) {
	img := createSolidImage(10, 10, color.White)
	gray := NewGray(img)

	if v := gray.At(-5, -5); v != 255 {
		t.Errorf("clamped negative coordinates: got %v, want 255", v)
	}
	if v := gray.At(100, 100); v != 255 {
		t.Errorf("clamped overflow coordinates: got %v, want 255", v)
	}
}

func TestGray_BorderMedian(t *testing.T) {
	// Dark content well inside the box; the outermost ring is white.
	img := createBoxedImage(100, 100, geometry.Box{X1: 40, Y1: 40, X2: 60, Y2: 60})
	gray := NewGray(img)

	median := gray.BorderMedian(geometry.Box{X1: 20, Y1: 20, X2: 80, Y2: 80})
	if median != 255 {
		t.Errorf("border median: got %v, want 255", median)
	}
}

func TestGray_RowColumnDeviation(t *testing.T) {
	img := createBoxedImage(100, 100, geometry.Box{X1: 40, Y1: 20, X2: 60, Y2: 80})
	gray := NewGray(img)
	box := geometry.Box{X1: 20, Y1: 20, X2: 80, Y2: 80}

	// Column 30 is entirely white inside the box.
	if dev := gray.ColumnDeviation(box, 30, 255); dev != 0 {
		t.Errorf("white column deviation: got %v, want 0", dev)
	}

	// Column 50 crosses the dark rect for the full box height.
	if dev := gray.ColumnDeviation(box, 50, 255); dev != 255 {
		t.Errorf("dark column deviation: got %v, want 255", dev)
	}

	// Row 50 is white except for the 20px dark band: 20/60 of it.
	want := 255.0 * 20.0 / 60.0
	if dev := gray.RowDeviation(box, 50, 255); math.Abs(dev-want) > 1e-9 {
		t.Errorf("mixed row deviation: got %v, want %v", dev, want)
	}
}

func TestGray_StdDev(t *testing.T) {
	uniform := NewGray(createSolidImage(50, 50, color.White))
	if sd := uniform.StdDev(geometry.Box{X1: 0, Y1: 0, X2: 50, Y2: 50}); sd != 0 {
		t.Errorf("uniform stddev: got %v, want 0", sd)
	}

	// Half black, half white: population stddev is exactly 127.5.
	img := createBoxedImage(100, 100, geometry.Box{X1: 0, Y1: 0, X2: 50, Y2: 100})
	gray := NewGray(img)
	sd := gray.StdDev(geometry.Box{X1: 0, Y1: 0, X2: 100, Y2: 100})
	if math.Abs(sd-127.5) > 1.0 {
		t.Errorf("half-and-half stddev: got %v, want ~127.5", sd)
	}
}

func TestGray_EdgeDensity(t *testing.T) {
	uniform := NewGray(createSolidImage(50, 50, color.White))
	if d := uniform.EdgeDensity(geometry.Box{X1: 0, Y1: 0, X2: 50, Y2: 50}, 8); d != 0 {
		t.Errorf("uniform edge density: got %v, want 0", d)
	}

	// A vertical black/white boundary produces one column of edge
	// pixels inside the box.
	img := createBoxedImage(100, 100, geometry.Box{X1: 0, Y1: 0, X2: 50, Y2: 100})
	gray := NewGray(img)
	d := gray.EdgeDensity(geometry.Box{X1: 0, Y1: 0, X2: 100, Y2: 100}, 8)
	if d <= 0 {
		t.Errorf("boundary edge density: got %v, want > 0", d)
	}
	if d > 0.05 {
		t.Errorf("boundary edge density: got %v, want a thin edge (<= 0.05)", d)
	}
}
