package sketch

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/bodgit/bitmap16dx/palette"
)

// ErrCorrupt is returned when sketch data has an impossible length or an
// unsupported format version.
var ErrCorrupt = errors.New("sketch: corrupt sketch data")

// Config holds the header of a sketch document.
type Config struct {
	Version     int
	GridSize    int
	PaletteSize int
}

// classify validates the overall length and returns the format version
// along with the offset of the grid size byte.
func classify(b []byte) (version, offset int, err error) {
	switch len(b) {
	case FileSizeV1:
		return 1, 0, nil
	case FileSizeV2:
		if b[0] != Version {
			return 0, 0, ErrCorrupt
		}
		return Version, 1, nil
	default:
		return 0, 0, ErrCorrupt
	}
}

// UnmarshalBinary decodes a sketch from its on-disk form. The length
// selects the format revision: 290 bytes is the legacy layout with no
// version byte, 291 bytes carries a leading version byte which must match
// Version. Any other length is corrupt. A failed decode leaves the
// receiver untouched.
func (s *Sketch) UnmarshalBinary(b []byte) error {
	_, offset, err := classify(b)
	if err != nil {
		return err
	}

	var d Sketch
	d.gridSize = int(b[offset])
	d.paletteSize = int(b[offset+1])
	for i := range d.colors {
		d.colors[i] = palette.Color(binary.BigEndian.Uint16(b[offset+2+i*2:]))
	}
	copy(d.pixels[:], b[offset+2+palette.Slots*2:])

	*s = d
	return nil
}

// Decode reads a sketch document from r, accepting both the legacy 290
// byte layout and the current 291 byte layout.
func Decode(r io.Reader) (*Sketch, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := new(Sketch)
	if err := s.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeConfig returns the format version and dimensions of a sketch
// document without decoding the pixel grid.
func DecodeConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	version, offset, err := classify(b)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Version:     version,
		GridSize:    int(b[offset]),
		PaletteSize: int(b[offset+1]),
	}, nil
}
