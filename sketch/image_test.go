package sketch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/bitmap16dx/palette"
)

func TestImage(t *testing.T) {
	s := New()
	require.NoError(t, s.SetGridSize(GridSmall))

	p := palette.Palette{Name: "TEST", Size: 4}
	p.Colors[0] = palette.FromRGB(0xff, 0x00, 0x00)
	p.Colors[1] = palette.FromRGB(0x00, 0xff, 0x00)
	for i := 2; i < palette.Slots; i++ {
		p.Colors[i] = p.Colors[i%2]
	}
	require.NoError(t, s.SetPalette(p))

	require.NoError(t, s.SetPixel(0, 0, 1))
	require.NoError(t, s.SetPixel(1, 0, 2))

	m := s.Image(2)
	require.Equal(t, 16, m.Bounds().Dx())
	require.Equal(t, 16, m.Bounds().Dy())

	// Each cell becomes a 2 by 2 block
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, m.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, m.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, m.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, m.NRGBAAt(3, 1))

	// Untouched cells are fully transparent
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(4, 4))
}

func TestImageDefaultFactor(t *testing.T) {
	s := New()

	m := s.Image(0)
	assert.Equal(t, 16, m.Bounds().Dx())
	assert.Equal(t, 16, m.Bounds().Dy())
}
