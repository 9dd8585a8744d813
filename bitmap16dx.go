/*
Package bitmap16dx is a library for maintaining the sketches, palettes
and exports of the BitMap16 DX pixel art device.

A DX value is one editing session: it owns the single active sketch
document, the undo slot, the palette catalog and the storage card and
preference store everything is persisted against. All drawing operations
go through the session so that bounds, palette collapse and undo arming
stay consistent with what the device itself does.
*/
package bitmap16dx

import (
	"github.com/hashicorp/go-hclog"

	"github.com/bodgit/bitmap16dx/mem"
	"github.com/bodgit/bitmap16dx/palette"
	"github.com/bodgit/bitmap16dx/prefs"
	"github.com/bodgit/bitmap16dx/sketch"
	"github.com/bodgit/bitmap16dx/storage"
)

// defaultHeapBudget is sized after the device's free heap at boot; the
// widest export pipeline fits with room to spare.
const defaultHeapBudget = 128 << 10

// DX is a device editing session.
type DX struct {
	card    storage.Card
	prefs   *prefs.Store
	catalog *palette.Catalog
	logger  hclog.Logger
	heap    *mem.Heap

	sketch   *sketch.Sketch
	filename string
	empty    bool
	cursorX  int
	cursorY  int
	color    byte

	undo *snapshot
}

// New returns a session on the given card and preference store with no
// logging.
func New(card storage.Card, store *prefs.Store) *DX {
	return NewWithLogger(card, store, nil)
}

// NewWithLogger returns a session logging through the provided logger. A
// nil logger is valid and logs nothing. The session starts out on a blank
// sketch carrying the default palette.
func NewWithLogger(card storage.Card, store *prefs.Store, logger hclog.Logger) *DX {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	d := &DX{
		card:    card,
		prefs:   store,
		catalog: palette.NewCatalog(),
		logger:  logger,
		heap:    mem.New(defaultHeapBudget),
	}
	d.NewSketch()

	return d
}

// Sketch returns the active document.
func (d *DX) Sketch() *sketch.Sketch {
	return d.sketch
}

// Filename returns the name the active document was loaded from or saved
// to, empty for a document that has never been saved.
func (d *DX) Filename() string {
	return d.filename
}

// Empty reports whether the active document has never been saved.
func (d *DX) Empty() bool {
	return d.empty
}

// Catalog returns the palette catalog.
func (d *DX) Catalog() *palette.Catalog {
	return d.catalog
}
