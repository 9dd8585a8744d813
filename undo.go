package bitmap16dx

import (
	"github.com/bodgit/bitmap16dx/palette"
	"github.com/bodgit/bitmap16dx/sketch"
)

// snapshot is the single undo slot. A drawing snapshot carries only the
// pixel grid; the delete path also records the palette and grid size so a
// restore can resurrect the whole document. A paletteSize of zero marks a
// plain drawing snapshot.
type snapshot struct {
	pixels      [sketch.GridCapacity * sketch.GridCapacity]byte
	colors      [palette.Slots]palette.Color
	gridSize    int
	paletteSize int
}

// SaveUndo snapshots the full canvas ahead of a mutation, unconditionally
// replacing whatever the slot held. The whole 16 by 16 grid is captured
// so a later grid size toggle cannot desynchronize the margin.
func (d *DX) SaveUndo() {
	d.undo = &snapshot{
		pixels: d.sketch.Pixels(),
	}
}

// HasUndo reports whether a snapshot is armed.
func (d *DX) HasUndo() bool {
	return d.undo != nil
}

// RestoreUndo puts the armed snapshot back onto the canvas and empties
// the slot, so a second restore without an intervening change reports
// ErrNoUndo. A snapshot taken by a document delete also restores the
// palette and grid size, clamping the cursor back into bounds.
func (d *DX) RestoreUndo() error {
	if d.undo == nil {
		return ErrNoUndo
	}

	snap := d.undo
	d.undo = nil

	if snap.gridSize > 0 {
		d.sketch.SetGridSize(snap.gridSize)
		d.clampCursor()
	}

	d.sketch.SetPixels(snap.pixels)

	if snap.paletteSize > 0 {
		d.sketch.SetPalette(palette.Palette{
			Size:   snap.paletteSize,
			Colors: snap.colors,
		})
	}

	d.logger.Debug("restored undo snapshot")
	return nil
}
