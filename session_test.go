package bitmap16dx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/bitmap16dx/prefs"
	"github.com/bodgit/bitmap16dx/sketch"
	"github.com/bodgit/bitmap16dx/storage"
)

// testStore returns a preference store backed by a throwaway database.
func testStore(t *testing.T) *prefs.Store {
	t.Helper()

	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// testDX returns a session backed by a card in a fresh directory, along
// with the card root.
func testDX(t *testing.T) (*DX, string) {
	t.Helper()

	root := t.TempDir()
	return New(storage.NewDir(root), testStore(t)), root
}

func TestNewSession(t *testing.T) {
	d, _ := testDX(t)

	assert.Equal(t, 16, d.Sketch().GridSize())
	assert.Equal(t, 16, d.Sketch().PaletteSize())
	assert.True(t, d.Empty())
	assert.Equal(t, "", d.Filename())
	assert.Equal(t, byte(1), d.SelectedColor())
	assert.False(t, d.HasUndo())

	// The default palette is the first catalog entry
	assert.Equal(t, d.Catalog().At(0).Colors[0], d.Sketch().Color(1))
}

func TestPlotAndErase(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(3)
	require.NoError(t, d.Plot(2, 2))
	assert.Equal(t, byte(3), d.Sketch().PixelAt(2, 2))

	require.NoError(t, d.Erase(2, 2))
	assert.Equal(t, byte(0), d.Sketch().PixelAt(2, 2))

	assert.Error(t, d.Plot(-1, 0))
	assert.Error(t, d.Plot(16, 16))
}

func TestSetSelectedColor(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(0)
	assert.Equal(t, byte(1), d.SelectedColor())

	d.SetSelectedColor(200)
	assert.Equal(t, byte(16), d.SelectedColor())

	d.SetSelectedColor(7)
	assert.Equal(t, byte(7), d.SelectedColor())
}

func TestSetCursor(t *testing.T) {
	d, _ := testDX(t)

	d.SetCursor(20, -5)
	x, y := d.Cursor()
	assert.Equal(t, 15, x)
	assert.Equal(t, 0, y)
}

func TestFill(t *testing.T) {
	d, _ := testDX(t)

	d.ToggleGridSize()
	d.SetSelectedColor(5)

	assert.Equal(t, 64, d.Fill(3, 3))
	assert.Equal(t, byte(5), d.Sketch().PixelAt(0, 0))

	// Filling arms undo with the state beforehand
	require.NoError(t, d.RestoreUndo())
	assert.Equal(t, byte(0), d.Sketch().PixelAt(0, 0))
}

func TestToggleGridSize(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(4)
	require.NoError(t, d.Plot(12, 12))
	d.SetCursor(15, 15)

	assert.Equal(t, 8, d.ToggleGridSize())

	// The cursor is clamped but the margin pixels survive
	x, y := d.Cursor()
	assert.Equal(t, 7, x)
	assert.Equal(t, 7, y)
	assert.Equal(t, byte(4), d.Sketch().PixelAt(12, 12))

	assert.Equal(t, 16, d.ToggleGridSize())
	assert.Equal(t, byte(4), d.Sketch().PixelAt(12, 12))
}

func TestApplyPalette(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(9)
	require.NoError(t, d.Plot(1, 1))

	require.NoError(t, d.ApplyPalette("GAME BOY"))

	gb, ok := d.Catalog().Find("GAME BOY")
	require.True(t, ok)
	assert.Equal(t, 4, d.Sketch().PaletteSize())
	assert.Equal(t, gb.Colors[0], d.Sketch().Color(1))

	// Pixels and the selected color ride through unchanged
	assert.Equal(t, byte(9), d.Sketch().PixelAt(1, 1))
	assert.Equal(t, byte(9), d.SelectedColor())

	assert.ErrorIs(t, d.ApplyPalette("NO SUCH PALETTE"), ErrPaletteUnknown)
}

func TestClearCanvas(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(2)
	require.NoError(t, d.Plot(12, 12))
	require.NoError(t, d.Plot(3, 3))

	d.ToggleGridSize()
	d.ClearCanvas()

	assert.Equal(t, byte(0), d.Sketch().PixelAt(3, 3))
	assert.Equal(t, byte(2), d.Sketch().PixelAt(12, 12))
}

func TestUndoEmpty(t *testing.T) {
	d, _ := testDX(t)

	assert.False(t, d.HasUndo())
	assert.ErrorIs(t, d.RestoreUndo(), ErrNoUndo)
}

func TestUndoRestoreOnce(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(3)
	require.NoError(t, d.Plot(4, 4))
	require.True(t, d.HasUndo())

	require.NoError(t, d.RestoreUndo())
	assert.Equal(t, byte(0), d.Sketch().PixelAt(4, 4))

	// The slot only holds one restore
	assert.False(t, d.HasUndo())
	assert.ErrorIs(t, d.RestoreUndo(), ErrNoUndo)
}

func TestUndoSecondSnapshotWins(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(3)
	require.NoError(t, d.Plot(0, 0))
	require.NoError(t, d.Plot(1, 0))

	// The second plot replaced the first snapshot
	require.NoError(t, d.RestoreUndo())
	assert.Equal(t, byte(3), d.Sketch().PixelAt(0, 0))
	assert.Equal(t, byte(0), d.Sketch().PixelAt(1, 0))
}

func TestUndoCoversFullGrid(t *testing.T) {
	d, _ := testDX(t)

	d.SetSelectedColor(5)
	require.NoError(t, d.Plot(12, 12))

	// Arm undo while editing at 8 by 8, clearing nothing outside it
	d.ToggleGridSize()
	require.NoError(t, d.Plot(0, 0))
	d.ToggleGridSize()

	require.NoError(t, d.RestoreUndo())

	// The snapshot carried the whole 16 by 16 grid, margin included
	assert.Equal(t, byte(0), d.Sketch().PixelAt(0, 0))
	assert.Equal(t, byte(5), d.Sketch().PixelAt(12, 12))
}

func TestDeleteArmsUndo(t *testing.T) {
	d, _ := testDX(t)

	// Save a small document with a distinctive palette
	d.ToggleGridSize()
	require.NoError(t, d.ApplyPalette("GAME BOY"))
	d.SetSelectedColor(2)
	require.NoError(t, d.Plot(5, 5))

	name, err := d.Save()
	require.NoError(t, err)

	// Move on to a fresh full-size document
	d.NewSketch()
	d.SetCursor(15, 15)
	require.NoError(t, d.Delete(name))
	require.True(t, d.HasUndo())

	sketches, err := d.Sketches()
	require.NoError(t, err)
	assert.Len(t, sketches, 0)

	// Restoring brings back the pixels, palette and grid size, and the
	// cursor is clamped back inside the smaller grid
	require.NoError(t, d.RestoreUndo())
	assert.Equal(t, 8, d.Sketch().GridSize())
	assert.Equal(t, 4, d.Sketch().PaletteSize())
	assert.Equal(t, byte(2), d.Sketch().PixelAt(5, 5))

	gb, ok := d.Catalog().Find("GAME BOY")
	require.True(t, ok)
	assert.Equal(t, gb.Colors[0], d.Sketch().Color(1))

	x, y := d.Cursor()
	assert.LessOrEqual(t, x, 7)
	assert.LessOrEqual(t, y, 7)

	// The restored document saves under a fresh name
	saved, err := d.SaveAsNew()
	require.NoError(t, err)
	assert.NotEqual(t, name, saved)

	sketches, err = d.Sketches()
	require.NoError(t, err)
	assert.Len(t, sketches, 1)
}

func TestDrawingUndoKeepsPalette(t *testing.T) {
	d, _ := testDX(t)

	// A plain drawing snapshot leaves grid size and palette alone
	require.NoError(t, d.ApplyPalette("PICO-8"))
	d.SetSelectedColor(8)
	require.NoError(t, d.Plot(0, 0))
	require.NoError(t, d.ApplyPalette("GAME BOY"))

	require.NoError(t, d.RestoreUndo())

	assert.Equal(t, byte(0), d.Sketch().PixelAt(0, 0))
	assert.Equal(t, 4, d.Sketch().PaletteSize(), "drawing undo does not restore palettes")
}

func TestNewSketchKeepsUndo(t *testing.T) {
	d, _ := testDX(t)

	require.NoError(t, d.Plot(0, 0))
	d.NewSketch()

	assert.True(t, d.HasUndo())
	assert.Equal(t, sketch.GridLarge, d.Sketch().GridSize())
}
