package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	mountAttempts = 3
	mountDelay    = 100 * time.Millisecond
)

// Dir is a Card backed by a directory tree.
type Dir struct {
	root    string
	mounted bool
}

// NewDir returns an unmounted card rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Mount probes for the card root, retrying a fixed number of times with a
// short delay for media that appears late, then creates the layout
// directories. Once mounted it is a no-op.
func (d *Dir) Mount() error {
	if d.mounted {
		return nil
	}

	var err error
	for attempt := 0; attempt < mountAttempts; attempt++ {
		if _, err = os.Stat(d.root); err == nil {
			break
		}
		if attempt < mountAttempts-1 {
			time.Sleep(mountDelay)
		}
	}
	if err != nil {
		return err
	}

	for _, dir := range []string{SketchDir, ExportDir, ScreenshotDir, PaletteDir} {
		if err := os.MkdirAll(filepath.Join(d.root, dir), 0o755); err != nil {
			return err
		}
	}

	d.mounted = true
	return nil
}

func (d *Dir) path(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}

// ReadFile returns the contents of the named file.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.path(name))
}

// WriteFile writes b to a temporary file alongside the target and renames
// it into place, so a failed or short write never replaces previous
// contents.
func (d *Dir) WriteFile(name string, b []byte) error {
	full := d.path(name)

	f, err := os.CreateTemp(filepath.Dir(full), ".write-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	n, err := f.Write(b)
	if err == nil && n != len(b) {
		err = ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, full)
}

// Exists reports whether the named file or directory is present.
func (d *Dir) Exists(name string) (bool, error) {
	if _, err := os.Stat(d.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Mkdir creates the named directory if missing.
func (d *Dir) Mkdir(name string) error {
	return os.MkdirAll(d.path(name), 0o755)
}

// Remove deletes the named file.
func (d *Dir) Remove(name string) error {
	return os.Remove(d.path(name))
}

// List returns the plain files directly under dir.
func (d *Dir) List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(d.path(dir))
	if err != nil {
		return nil, err
	}

	list := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		list = append(list, Entry{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return list, nil
}
