package pngenc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeImage runs a whole image through the encoder and returns the
// encoded bytes.
func encodeImage(t *testing.T, m *image.NRGBA, buf []byte, level int) []byte {
	t.Helper()

	var e Encoder
	require.NoError(t, e.Open(buf))

	width, height := m.Bounds().Dx(), m.Bounds().Dy()
	require.NoError(t, e.Begin(width, height, level))

	line := make([]byte, width*4)
	for y := 0; y < height; y++ {
		copy(line, m.Pix[y*m.Stride:y*m.Stride+width*4])
		require.NoError(t, e.AddLine(line))
	}

	n, err := e.Close()
	require.NoError(t, err)
	require.Greater(t, n, 0)

	return buf[:n]
}

func testImage(width, height int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(0xff)
			if (x+y)%5 == 0 {
				a = 0
			}
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 40),
				G: uint8(y * 40),
				B: uint8(x * y),
				A: a,
			})
		}
	}
	return m
}

func TestEncode(t *testing.T) {
	m := testImage(5, 4)

	encoded := encodeImage(t, m, make([]byte, 4096), DefaultLevel)

	decoded, err := png.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)

	require.Equal(t, m.Bounds(), decoded.Bounds())

	got, ok := decoded.(*image.NRGBA)
	require.True(t, ok)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, m.NRGBAAt(x, y), got.NRGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestEncodeLevels(t *testing.T) {
	m := testImage(16, 16)

	for _, level := range []int{0, DefaultLevel, 9} {
		encoded := encodeImage(t, m, make([]byte, 8192), level)

		decoded, err := png.Decode(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, m.Bounds(), decoded.Bounds())
	}
}

func TestEncodeReuse(t *testing.T) {
	buf := make([]byte, 4096)

	var e Encoder
	for i := 0; i < 2; i++ {
		require.NoError(t, e.Open(buf))
		require.NoError(t, e.Begin(2, 2, DefaultLevel))

		line := make([]byte, 2*4)
		require.NoError(t, e.AddLine(line))
		require.NoError(t, e.AddLine(line))

		n, err := e.Close()
		require.NoError(t, err)

		_, err = png.Decode(bytes.NewReader(buf[:n]))
		require.NoError(t, err)
	}
}

func reason(t *testing.T, err error) int {
	t.Helper()

	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	return encErr.Reason
}

func TestOpenEmptyBuffer(t *testing.T) {
	var e Encoder
	assert.Equal(t, ReasonBadArgument, reason(t, e.Open(nil)))
}

func TestBeginBadArguments(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	assert.Equal(t, ReasonBadArgument, reason(t, e.Begin(0, 4, DefaultLevel)))

	require.NoError(t, e.Open(make([]byte, 4096)))
	assert.Equal(t, ReasonBadArgument, reason(t, e.Begin(4, -1, DefaultLevel)))

	require.NoError(t, e.Open(make([]byte, 4096)))
	assert.Equal(t, ReasonBadArgument, reason(t, e.Begin(4, 4, 99)))
}

func TestBeginTwice(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	require.NoError(t, e.Begin(4, 4, DefaultLevel))
	assert.Equal(t, ReasonBadState, reason(t, e.Begin(4, 4, DefaultLevel)))
}

func TestAddLineBadState(t *testing.T) {
	var e Encoder
	assert.Equal(t, ReasonBadState, reason(t, e.AddLine(make([]byte, 16))))
}

func TestAddLineBadSize(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	require.NoError(t, e.Begin(4, 4, DefaultLevel))

	assert.Equal(t, ReasonBadLineSize, reason(t, e.AddLine(make([]byte, 15))))
	assert.Equal(t, ReasonBadLineSize, reason(t, e.AddLine(make([]byte, 17))))
}

func TestAddLineTooMany(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	require.NoError(t, e.Begin(2, 1, DefaultLevel))

	line := make([]byte, 2*4)
	require.NoError(t, e.AddLine(line))
	assert.Equal(t, ReasonTooManyLines, reason(t, e.AddLine(line)))
}

func TestCloseShortImage(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	require.NoError(t, e.Begin(2, 3, DefaultLevel))
	require.NoError(t, e.AddLine(make([]byte, 2*4)))

	_, err := e.Close()
	assert.Equal(t, ReasonShortImage, reason(t, err))
}

func TestCloseTwice(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 4096)))
	require.NoError(t, e.Begin(1, 1, DefaultLevel))
	require.NoError(t, e.AddLine(make([]byte, 4)))

	_, err := e.Close()
	require.NoError(t, err)

	_, err = e.Close()
	assert.Equal(t, ReasonBadState, reason(t, err))
}

func TestBufferFull(t *testing.T) {
	// Too small for even the signature and header
	var e Encoder
	require.NoError(t, e.Open(make([]byte, 16)))
	assert.Equal(t, ReasonBufferFull, reason(t, e.Begin(4, 4, DefaultLevel)))

	// Room for the headers but not the pixel stream
	require.NoError(t, e.Open(make([]byte, 64)))
	require.NoError(t, e.Begin(16, 16, DefaultLevel))

	line := make([]byte, 16*4)
	for y := 0; y < 16; y++ {
		if err := e.AddLine(line); err != nil {
			assert.Equal(t, ReasonBufferFull, reason(t, err))
			return
		}
	}

	_, err := e.Close()
	assert.Equal(t, ReasonBufferFull, reason(t, err))
}
