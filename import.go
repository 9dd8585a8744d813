package bitmap16dx

import (
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"github.com/bodgit/bitmap16dx/palette"
	"github.com/bodgit/bitmap16dx/sketch"
)

// ImportImage converts an arbitrary image into the active document: scaled
// down to the requested grid size with nearest-neighbor sampling, reduced
// to at most paletteSize colors and loaded as an unsaved sketch. Source
// pixels that end up fully transparent stay transparent.
func (d *DX) ImportImage(r io.Reader, gridSize, paletteSize int) error {
	m, _, err := image.Decode(r)
	if err != nil {
		return err
	}

	s := sketch.New()
	if err := s.SetGridSize(gridSize); err != nil {
		return err
	}

	// Scale down to the logical grid
	small := image.NewNRGBA(image.Rect(0, 0, gridSize, gridSize))
	draw.NearestNeighbor.Scale(small, small.Bounds(), m, m.Bounds(), draw.Src, nil)

	// Reduce to the palette budget
	q := quantize.MedianCutQuantizer{}
	quantized := q.Quantize(make(color.Palette, 0, paletteSize), small)

	indexed := image.NewPaletted(small.Bounds(), quantized)
	draw.Draw(indexed, indexed.Bounds(), small, image.Point{}, draw.Src)

	p := palette.Palette{Name: "IMPORTED", Size: paletteSize}
	for i, c := range quantized {
		r, g, b, _ := c.RGBA()
		p.Colors[i] = palette.FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	for i := len(quantized); i < palette.Slots; i++ {
		p.Colors[i] = p.Colors[i%len(quantized)]
	}
	if err := s.SetPalette(p); err != nil {
		return err
	}

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if small.NRGBAAt(x, y).A == 0 {
				continue
			}
			if err := s.SetPixel(x, y, indexed.ColorIndexAt(x, y)+1); err != nil {
				return err
			}
		}
	}

	d.sketch = s
	d.filename = ""
	d.empty = true
	d.cursorX, d.cursorY = 0, 0
	d.color = 1

	d.logger.Debug("imported image", "grid", gridSize, "colors", len(quantized))
	return nil
}
