package bitmap16dx

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bodgit/bitmap16dx/palette"
	"github.com/bodgit/bitmap16dx/sketch"
	"github.com/bodgit/bitmap16dx/storage"
)

const (
	sketchPrefix = "sketch_"
	sketchExt    = ".dat"
	paletteExt   = ".hex"

	// counterKey is the durable sketch numbering counter.
	counterKey = "sketchCounter"
)

// SketchInfo describes one saved sketch on the card.
type SketchInfo struct {
	Name    string
	Number  int
	ModTime time.Time
}

func (d *DX) mount() error {
	if err := d.card.Mount(); err != nil {
		d.logger.Error("card mount failed", "error", err)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// NewSketch replaces the active document with a blank 16 by 16 canvas
// carrying the default palette. The undo slot is left alone.
func (d *DX) NewSketch() {
	s := sketch.New()
	s.SetPalette(d.catalog.At(0))

	d.sketch = s
	d.filename = ""
	d.empty = true
	d.cursorX, d.cursorY = 0, 0
	d.color = 1
}

// Sketches lists the saved sketches on the card, newest first. Files that
// do not follow the sketch naming scheme or have an impossible size are
// left out.
func (d *DX) Sketches() ([]SketchInfo, error) {
	if err := d.mount(); err != nil {
		return nil, err
	}

	entries, err := d.card.List(storage.SketchDir)
	if err != nil {
		return nil, err
	}

	list := make([]SketchInfo, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name, sketchPrefix) || !strings.HasSuffix(entry.Name, sketchExt) {
			continue
		}
		if entry.Size != sketch.FileSizeV1 && entry.Size != sketch.FileSizeV2 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(entry.Name, sketchPrefix), sketchExt))
		if err != nil || n <= 0 {
			continue
		}
		list = append(list, SketchInfo{
			Name:    entry.Name,
			Number:  n,
			ModTime: entry.ModTime,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Number > list[j].Number
	})

	return list, nil
}

// nextSketchNumber increments the durable counter. A fresh counter is
// seeded from the highest numbered file already on the card so that
// reformatting the preference store can never reissue a live name.
func (d *DX) nextSketchNumber() (int, error) {
	n, err := d.prefs.Uint32(counterKey)
	if err != nil {
		return 0, err
	}

	if n == 0 {
		list, err := d.Sketches()
		if err != nil {
			return 0, err
		}
		for _, info := range list {
			if uint32(info.Number) > n {
				n = uint32(info.Number)
			}
		}
	}

	n++
	if err := d.prefs.PutUint32(counterKey, n); err != nil {
		return 0, err
	}

	return int(n), nil
}

// Save writes the active document to the card, minting a counter-named
// file for a document that has never been saved. It returns the filename.
func (d *DX) Save() (string, error) {
	if err := d.mount(); err != nil {
		return "", err
	}

	if d.filename == "" {
		n, err := d.nextSketchNumber()
		if err != nil {
			return "", err
		}
		d.filename = fmt.Sprintf("%s%d%s", sketchPrefix, n, sketchExt)
	}

	b, err := d.sketch.MarshalBinary()
	if err != nil {
		return "", err
	}

	if err := d.card.WriteFile(path.Join(storage.SketchDir, d.filename), b); err != nil {
		return "", err
	}

	d.empty = false
	d.logger.Debug("saved sketch", "name", d.filename)

	return d.filename, nil
}

// SaveAsNew writes the active document to the card under a freshly minted
// name, leaving any file it was loaded from alone.
func (d *DX) SaveAsNew() (string, error) {
	d.filename = ""
	return d.Save()
}

// Open loads the named sketch into the session. The current document is
// untouched if anything fails.
func (d *DX) Open(name string) error {
	if err := d.mount(); err != nil {
		return err
	}

	b, err := d.card.ReadFile(path.Join(storage.SketchDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}

	s := new(sketch.Sketch)
	if err := s.UnmarshalBinary(b); err != nil {
		return err
	}
	s.Normalize()

	d.sketch = s
	d.filename = name
	d.empty = false
	d.color = 1
	d.clampCursor()

	d.logger.Debug("loaded sketch", "name", name)
	return nil
}

// Delete removes a saved sketch, first arming the undo slot with its full
// contents so the deletion can be reversed once, typically followed by
// RestoreUndo and SaveAsNew.
func (d *DX) Delete(name string) error {
	if err := d.mount(); err != nil {
		return err
	}

	full := path.Join(storage.SketchDir, name)

	b, err := d.card.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}

	victim := new(sketch.Sketch)
	if err := victim.UnmarshalBinary(b); err != nil {
		return err
	}
	victim.Normalize()

	d.undo = &snapshot{
		pixels:      victim.Pixels(),
		colors:      victim.Colors(),
		gridSize:    victim.GridSize(),
		paletteSize: victim.PaletteSize(),
	}

	if err := d.card.Remove(full); err != nil {
		return err
	}

	d.logger.Debug("deleted sketch", "name", name)
	return nil
}

// LoadCatalog loads user palettes from the card on top of the built-ins.
// It reports how many loaded and how many .hex files were rejected or
// dropped because the catalog filled up.
func (d *DX) LoadCatalog() (loaded, skipped int, err error) {
	if err := d.mount(); err != nil {
		return 0, 0, err
	}

	entries, err := d.card.List(storage.PaletteDir)
	if err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name) != paletteExt {
			continue
		}

		b, err := d.card.ReadFile(path.Join(storage.PaletteDir, entry.Name))
		if err != nil {
			d.logger.Warn("unreadable palette", "name", entry.Name, "error", err)
			skipped++
			continue
		}

		p, err := palette.ParseHex(palette.NameFromFile(entry.Name), b)
		if err != nil {
			d.logger.Warn("rejected palette", "name", entry.Name, "error", err)
			skipped++
			continue
		}
		p.User = true

		if !d.catalog.Add(p) {
			d.logger.Warn("catalog full", "name", entry.Name)
			skipped++
			continue
		}
		loaded++
	}

	d.logger.Info("palette catalog loaded", "loaded", loaded, "skipped", skipped)
	return loaded, skipped, nil
}
