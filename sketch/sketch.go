/*
Package sketch implements the BitMap16 DX sketch document and its on-disk
codec.

A sketch is an indexed bitmap drawn against a palette of up to 16 colors.
Pixel values 1 through 16 select a palette color and 0 is transparent. The
grid is always stored at its full 16 by 16 capacity; in 8 by 8 mode only
the top left quarter is addressable and the remaining cells ride along
untouched, so nothing is lost by toggling between the two resolutions.

The file format is written as an optional leading format version byte, the
grid size, the palette size, 16 big-endian RGB565 palette colors and
finally 256 pixel index bytes in row-major order. There is no compression
so the resulting file is either 290 (legacy, without the version byte) or
291 bytes in size, and the length alone is what distinguishes the two
revisions.
*/
package sketch

import (
	"errors"

	"github.com/bodgit/bitmap16dx/palette"
)

const (
	// GridCapacity is the stored grid dimension; documents always carry a
	// full 16 by 16 pixel grid regardless of the active grid size.
	GridCapacity = 16

	// Grid sizes a document can be edited at.
	GridSmall = 8
	GridLarge = 16

	// MaxIndex is the highest pixel value; 0 is transparent.
	MaxIndex = 16

	// Version is the current file format revision.
	Version = 2

	// FileSizeV1 and FileSizeV2 are the only valid on-disk sizes. A file
	// of any other length is corrupt.
	FileSizeV1 = 2 + palette.Slots*2 + numPixels
	FileSizeV2 = FileSizeV1 + 1

	numPixels = GridCapacity * GridCapacity
)

var (
	errBounds      = errors.New("sketch: coordinates outside the active grid")
	errBadIndex    = errors.New("sketch: pixel index out of range")
	errGridSize    = errors.New("sketch: grid size must be 8 or 16")
	errPaletteSize = errors.New("sketch: palette size must be 4, 8 or 16")
)

// Sketch is a single document. The zero value is unusable; start from New
// or one of the decoding functions.
type Sketch struct {
	pixels      [numPixels]byte
	gridSize    int
	paletteSize int
	colors      [palette.Slots]palette.Color
}

// New returns a blank 16 by 16 sketch with a full-size palette of black.
// Callers normally apply a real palette straight away.
func New() *Sketch {
	return &Sketch{
		gridSize:    GridLarge,
		paletteSize: palette.Slots,
	}
}

// GridSize returns the active edit resolution, 8 or 16.
func (s *Sketch) GridSize() int {
	return s.gridSize
}

// SetGridSize switches the edit resolution without touching pixel data.
func (s *Sketch) SetGridSize(n int) error {
	if n != GridSmall && n != GridLarge {
		return errGridSize
	}
	s.gridSize = n
	return nil
}

// PaletteSize returns the number of drawable colors, normally 4, 8 or 16.
func (s *Sketch) PaletteSize() int {
	return s.paletteSize
}

// SetPalette applies a palette to the document: its nominal size and all
// 16 color slots. Pixel data is left untouched; indices beyond the new
// size simply collapse differently when resolved.
func (s *Sketch) SetPalette(p palette.Palette) error {
	if p.Size != 4 && p.Size != 8 && p.Size != 16 {
		return errPaletteSize
	}
	s.paletteSize = p.Size
	s.colors = p.Colors
	return nil
}

// Color returns the palette color backing logical index i in [1, 16], or
// zero for anything else.
func (s *Sketch) Color(i int) palette.Color {
	if i < 1 || i > palette.Slots {
		return 0
	}
	return s.colors[i-1]
}

// Colors returns a copy of all 16 palette color slots.
func (s *Sketch) Colors() [palette.Slots]palette.Color {
	return s.colors
}

// PixelAt returns the index stored at (x, y), or 0 outside the grid
// capacity.
func (s *Sketch) PixelAt(x, y int) byte {
	if x < 0 || x >= GridCapacity || y < 0 || y >= GridCapacity {
		return 0
	}
	return s.pixels[y*GridCapacity+x]
}

// SetPixel stores index at (x, y). Coordinates outside the active grid and
// indices beyond MaxIndex are rejected.
func (s *Sketch) SetPixel(x, y int, index byte) error {
	if x < 0 || x >= s.gridSize || y < 0 || y >= s.gridSize {
		return errBounds
	}
	if index > MaxIndex {
		return errBadIndex
	}
	s.pixels[y*GridCapacity+x] = index
	return nil
}

// Pixels returns a copy of the full 16 by 16 pixel grid.
func (s *Sketch) Pixels() [GridCapacity * GridCapacity]byte {
	return s.pixels
}

// SetPixels replaces the full 16 by 16 pixel grid.
func (s *Sketch) SetPixels(pixels [GridCapacity * GridCapacity]byte) {
	s.pixels = pixels
}

// Clear zeroes the entire 16 by 16 grid.
func (s *Sketch) Clear() {
	s.pixels = [numPixels]byte{}
}

// ClearRegion zeroes only the active grid area, leaving the margin
// untouched in 8 by 8 mode.
func (s *Sketch) ClearRegion() {
	for y := 0; y < s.gridSize; y++ {
		for x := 0; x < s.gridSize; x++ {
			s.pixels[y*GridCapacity+x] = 0
		}
	}
}

// Normalize applies the load-time repairs the device firmware performs on
// decoded documents: palette sizes of 0 or above 16 become 16, grid sizes
// other than 8 or 16 become 16.
func (s *Sketch) Normalize() {
	if s.paletteSize == 0 || s.paletteSize > palette.Slots {
		s.paletteSize = palette.Slots
	}
	if s.gridSize != GridSmall && s.gridSize != GridLarge {
		s.gridSize = GridLarge
	}
}

// CollapseIndex maps a pixel index onto a palette of the given size.
// Transparent stays transparent and indices already within range return
// unchanged; anything beyond aliases back in with ((index-1) mod size)+1,
// so a full 16 index pixel grid survives a switch to a 4 or 8 color
// palette without being rewritten.
func CollapseIndex(index byte, size int) byte {
	if index == 0 {
		return 0
	}
	if int(index) <= size {
		return index
	}
	return byte((int(index)-1)%size) + 1
}

// ResolveColor maps a pixel index to its concrete palette color. The
// second return is false for transparent pixels and for indices beyond
// MaxIndex, which have no color at all.
func (s *Sketch) ResolveColor(index byte) (palette.Color, bool) {
	if index == 0 || index > MaxIndex {
		return 0, false
	}
	if s.paletteSize > 0 && s.paletteSize < palette.Slots && int(index) > s.paletteSize {
		index = CollapseIndex(index, s.paletteSize)
	}
	return s.colors[index-1], true
}
