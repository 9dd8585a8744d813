package sketch

import (
	"image"
	"image/color"
)

// Image renders the active grid area as an NRGBA image scaled up by the
// given integer factor, with transparent cells left fully transparent.
// Factors below 1 render at one pixel per cell.
func (s *Sketch) Image(factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}

	size := s.gridSize * factor
	m := image.NewNRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var px color.NRGBA
			if c, ok := s.ResolveColor(s.PixelAt(x/factor, y/factor)); ok {
				r, g, b := c.RGB()
				px = color.NRGBA{R: r, G: g, B: b, A: 0xff}
			}
			m.SetNRGBA(x, y, px)
		}
	}

	return m
}
