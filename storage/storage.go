/*
Package storage abstracts the SD card filesystem the device core reads
and writes. All operations are synchronous and return explicit errors;
the only retry anywhere is the bounded mount probe.
*/
package storage

import (
	"errors"
	"time"
)

// Layout directories created on mount, relative to the card root.
const (
	SketchDir     = "sketches"
	ExportDir     = "exports"
	ScreenshotDir = "screenshots"
	PaletteDir    = "palettes"
)

// ErrShortWrite is returned when fewer bytes than expected reach storage.
var ErrShortWrite = errors.New("storage: short write")

// Entry describes one file in a directory listing.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Card is the storage collaborator the device core drives. Paths are
// slash-separated and relative to the card root.
type Card interface {
	// Mount makes the card ready, creating the layout directories.
	Mount() error

	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the named file with b.
	WriteFile(name string, b []byte) error

	// Exists reports whether the named file is present.
	Exists(name string) (bool, error)

	// Mkdir creates the named directory if missing.
	Mkdir(name string) error

	// Remove deletes the named file.
	Remove(name string) error

	// List returns the plain files directly under dir.
	List(dir string) ([]Entry, error)
}
