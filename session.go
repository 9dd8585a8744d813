package bitmap16dx

import (
	"github.com/bodgit/bitmap16dx/sketch"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *DX) clampCursor() {
	d.cursorX = clamp(d.cursorX, 0, d.sketch.GridSize()-1)
	d.cursorY = clamp(d.cursorY, 0, d.sketch.GridSize()-1)
}

// Cursor returns the cursor position.
func (d *DX) Cursor() (x, y int) {
	return d.cursorX, d.cursorY
}

// SetCursor moves the cursor, clamping it into the active grid.
func (d *DX) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
	d.clampCursor()
}

// SelectedColor returns the drawing color index, in [1, 16].
func (d *DX) SelectedColor() byte {
	return d.color
}

// SetSelectedColor picks the drawing color index, clamped into [1, 16].
// Indices beyond the palette size are legal and collapse when resolved.
func (d *DX) SetSelectedColor(index byte) {
	d.color = byte(clamp(int(index), 1, sketch.MaxIndex))
}

// Plot draws the selected color at (x, y), arming the undo slot with the
// state beforehand.
func (d *DX) Plot(x, y int) error {
	d.SaveUndo()
	return d.sketch.SetPixel(x, y, d.color)
}

// Erase makes the cell at (x, y) transparent, arming the undo slot with
// the state beforehand.
func (d *DX) Erase(x, y int) error {
	d.SaveUndo()
	return d.sketch.SetPixel(x, y, 0)
}

// Fill flood fills from (x, y) with the selected color, arming the undo
// slot with the state beforehand. It reports the number of cells painted.
func (d *DX) Fill(x, y int) int {
	d.SaveUndo()
	return d.sketch.FloodFill(x, y, d.color)
}

// ClearCanvas wipes the active grid area, arming the undo slot with the
// state beforehand. The margin outside an 8 by 8 grid is preserved.
func (d *DX) ClearCanvas() {
	d.SaveUndo()
	d.sketch.ClearRegion()
}

// ApplyPalette applies the named catalog palette to the active document.
// Pixel data and the selected color are untouched; indices beyond the new
// palette size collapse when resolved rather than being rewritten.
func (d *DX) ApplyPalette(name string) error {
	p, ok := d.catalog.Find(name)
	if !ok {
		return ErrPaletteUnknown
	}

	if err := d.sketch.SetPalette(p); err != nil {
		return err
	}

	d.logger.Debug("applied palette", "name", p.Name, "size", p.Size)
	return nil
}

// ToggleGridSize flips the document between 8 by 8 and 16 by 16 and
// returns the new size. Pixels outside a shrunken grid are retained, and
// the cursor is clamped back into bounds.
func (d *DX) ToggleGridSize() int {
	size := sketch.GridLarge
	if d.sketch.GridSize() == sketch.GridLarge {
		size = sketch.GridSmall
	}

	d.sketch.SetGridSize(size)
	d.clampCursor()

	return size
}
