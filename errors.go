package bitmap16dx

import "errors"

var (
	// ErrStorageUnavailable is returned when the card cannot be mounted.
	ErrStorageUnavailable = errors.New("bitmap16dx: storage unavailable")

	// ErrNotFound is returned when the requested sketch does not exist.
	ErrNotFound = errors.New("bitmap16dx: sketch not found")

	// ErrNoUndo reports an empty undo slot. It is a benign outcome, not a
	// failure.
	ErrNoUndo = errors.New("bitmap16dx: nothing to undo")

	// ErrNamespaceExhausted is returned when no free export filename
	// remains below the probe bound.
	ErrNamespaceExhausted = errors.New("bitmap16dx: no free filenames left")

	// ErrPaletteUnknown is returned when a named palette is not in the
	// catalog.
	ErrPaletteUnknown = errors.New("bitmap16dx: unknown palette")
)
