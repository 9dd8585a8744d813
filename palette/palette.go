/*
Package palette implements the BitMap16 DX color palette catalog.

A palette is a named table of 4, 8, or 16 RGB565 colors. Every palette
carries 16 concrete color slots; palettes with fewer than 16 colors repeat
cyclically so that a slot lookup for any index agrees with the modulo
collapse rule used by the sketch editor. The catalog holds the 13 built-in
palettes shipped in the device firmware and can be extended at boot with
user palettes parsed from Lospec .hex files, up to 32 entries in total.
*/
package palette

import (
	"bufio"
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Slots is the number of concrete color slots every palette carries,
	// regardless of its nominal size.
	Slots = 16

	// MaxCatalog bounds the catalog; loading stops once it is reached.
	MaxCatalog = 32

	maxNameLength = 31
)

var errColorCount = errors.New("palette: color count must be 4, 8 or 16")

// Color is a packed RGB565 color.
type Color uint16

// FromRGB packs 8-bit channels into RGB565.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB unpacks to 8-bit channels, replicating the high bits into the low
// bits so that full intensity maps back to 0xff.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1f)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements the color.Color interface. The alpha channel is always
// fully opaque; transparency is a property of pixel index 0, not of any
// palette entry.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// Palette is a named table of drawable colors. Size is the nominal color
// count; the remaining slots hold cyclic repeats of the leading colors.
type Palette struct {
	Name   string
	Size   int
	Colors [Slots]Color
	User   bool
}

// ParseHex parses a Lospec .hex palette: one RRGGBB color per line, an
// optional leading #, blank lines and // comments ignored. Lines that are
// not exactly six hex digits are skipped and reading stops after 16
// colors. The file is rejected unless it yields exactly 4, 8 or 16 colors.
func ParseHex(name string, data []byte) (Palette, error) {
	p := Palette{Name: name}

	n := 0
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() && n < Slots {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimPrefix(line, "#")
		if len(line) != 6 {
			continue
		}
		rgb, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			continue
		}
		p.Colors[n] = FromRGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
		n++
	}
	if err := s.Err(); err != nil {
		return Palette{}, err
	}

	if n != 4 && n != 8 && n != 16 {
		return Palette{}, errColorCount
	}
	p.Size = n

	// Fill the remaining slots cyclically
	for i := n; i < Slots; i++ {
		p.Colors[i] = p.Colors[i%n]
	}

	return p, nil
}

// NameFromFile derives a palette name from a .hex filename: the stem,
// uppercased, with dashes and underscores turned into spaces.
func NameFromFile(name string) string {
	s := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	if len(s) > maxNameLength {
		s = s[:maxNameLength]
	}
	return s
}
