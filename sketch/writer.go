package sketch

import (
	"bytes"
	"encoding/binary"
	"io"
)

// MarshalBinary encodes the sketch in the current on-disk form, always
// exactly FileSizeV2 bytes.
func (s *Sketch) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(FileSizeV2)

	// Write out the version and dimensions
	b.WriteByte(Version)
	b.WriteByte(byte(s.gridSize))
	b.WriteByte(byte(s.paletteSize))

	// Write out the palette colors
	for _, c := range s.colors {
		if err := binary.Write(b, binary.BigEndian, uint16(c)); err != nil {
			return nil, err
		}
	}

	// Write out the pixel grid
	if _, err := b.Write(s.pixels[:]); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Encode writes the sketch document to w in the current format.
func Encode(w io.Writer, s *Sketch) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}

	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}

	return nil
}
