package overlay

import "github.com/lucasb-eyer/go-colorful"

// Colors returns n visually distinct render colors as "#RRGGBB" hex
// strings, one per component, for drawing overlay boxes.
//
// Palette generation prefers go-colorful's perceptually spread happy
// palette; when the generator cannot satisfy the request (it can fail
// for large n), evenly spaced hues at fixed saturation and value stand
// in, which still keeps neighboring components tellable apart.
func Colors(n int) []string {
	if n <= 0 {
		return nil
	}

	palette, err := colorful.HappyPalette(n)
	if err != nil {
		palette = make([]colorful.Color, n)
		for i := range palette {
			hue := float64(i) * 360.0 / float64(n)
			palette[i] = colorful.Hsv(hue, 0.85, 0.90)
		}
	}

	hex := make([]string, n)
	for i, c := range palette {
		hex[i] = c.Hex()
	}
	return hex
}
