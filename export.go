package bitmap16dx

import (
	"fmt"
	"path"

	"github.com/bodgit/bitmap16dx/palette"
	"github.com/bodgit/bitmap16dx/pngenc"
	"github.com/bodgit/bitmap16dx/storage"
)

const (
	// pngBufferSize matches the fixed encode buffer on the device; every
	// canvas and screenshot compresses well inside it.
	pngBufferSize = 16384

	// displaySize is the scaled export edge, matching the on-device
	// canvas preview.
	displaySize = 128

	// encoderFootprint approximates the compressor state held for the
	// duration of an encode.
	encoderFootprint = 100 << 10

	// maxProbe bounds the search for a free export filename.
	maxProbe = 10000

	exportPattern     = "dx_%04d.png"
	screenshotPattern = "screenshot_%04d.png"
)

// FrameSource supplies rendered RGB565 pixels for the screenshot path,
// typically backed by the display framebuffer.
type FrameSource interface {
	// Size returns the frame dimensions.
	Size() (width, height int)

	// ReadRect copies a w by h rectangle of RGB565 pixels at (x, y) into
	// dst in row-major order.
	ReadRect(x, y, w, h int, dst []uint16) error
}

// probeName finds the first unused filename matching the pattern, giving
// up after the probe bound.
func (d *DX) probeName(dir, pattern string) (string, error) {
	for i := 0; i < maxProbe; i++ {
		name := path.Join(dir, fmt.Sprintf(pattern, i))
		ok, err := d.card.Exists(name)
		if err != nil {
			return "", err
		}
		if !ok {
			return name, nil
		}
	}
	return "", ErrNamespaceExhausted
}

// ExportCanvas encodes the active canvas as a PNG on the card, either at
// native grid size or scaled up to the 128 pixel preview size. It returns
// the filename and the encoded byte size. Every buffer is drawn from the
// session heap and released again on all paths.
func (d *DX) ExportCanvas(scale bool) (string, int, error) {
	if err := d.mount(); err != nil {
		return "", 0, err
	}

	out, err := d.heap.Alloc("output", pngBufferSize)
	if err != nil {
		return "", 0, err
	}
	defer out.Free()

	size := d.sketch.GridSize()
	factor := 1
	if scale {
		size = displaySize
		factor = displaySize / d.sketch.GridSize()
	}

	line, err := d.heap.Alloc("rgb line", size*3)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if line != nil {
			line.Free()
		}
	}()

	enc, err := d.heap.Reserve("encoder", encoderFootprint)
	if err != nil {
		return "", 0, err
	}
	defer enc.Free()

	var png pngenc.Encoder
	if err := png.Open(out.Bytes()); err != nil {
		return "", 0, err
	}

	// Trade the RGB line buffer for an RGBA one; the budget cannot carry
	// both at once
	line.Free()
	if line, err = d.heap.Alloc("rgba line", size*4); err != nil {
		return "", 0, err
	}

	if err := png.Begin(size, size, pngenc.DefaultLevel); err != nil {
		return "", 0, err
	}

	row := line.Bytes()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var r, g, b, a uint8
			if c, ok := d.sketch.ResolveColor(d.sketch.PixelAt(x/factor, y/factor)); ok {
				r, g, b = c.RGB()
				a = 0xff
			}
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = a
		}
		if err := png.AddLine(row); err != nil {
			png.Close()
			return "", 0, err
		}
	}

	n, err := png.Close()
	if err != nil {
		return "", 0, err
	}

	name, err := d.probeName(storage.ExportDir, exportPattern)
	if err != nil {
		return "", 0, err
	}

	if err := d.card.WriteFile(name, out.Bytes()[:n]); err != nil {
		return "", 0, err
	}

	d.logger.Info("exported canvas", "name", name, "bytes", n)
	return name, n, nil
}

// Screenshot encodes the full frame from src as a PNG on the card and
// returns the filename and the encoded byte size.
func (d *DX) Screenshot(src FrameSource) (string, int, error) {
	if err := d.mount(); err != nil {
		return "", 0, err
	}

	width, height := src.Size()

	out, err := d.heap.Alloc("output", pngBufferSize)
	if err != nil {
		return "", 0, err
	}
	defer out.Free()

	line, err := d.heap.Alloc("line", width*4)
	if err != nil {
		return "", 0, err
	}
	defer line.Free()

	frame, err := d.heap.Alloc16("frame", width)
	if err != nil {
		return "", 0, err
	}
	defer frame.Free()

	enc, err := d.heap.Reserve("encoder", encoderFootprint)
	if err != nil {
		return "", 0, err
	}
	defer enc.Free()

	var png pngenc.Encoder
	if err := png.Open(out.Bytes()); err != nil {
		return "", 0, err
	}
	if err := png.Begin(width, height, pngenc.DefaultLevel); err != nil {
		return "", 0, err
	}

	row := line.Bytes()
	pixels := frame.Uint16s()
	for y := 0; y < height; y++ {
		if err := src.ReadRect(0, y, width, 1, pixels); err != nil {
			png.Close()
			return "", 0, err
		}
		for x := 0; x < width; x++ {
			r, g, b := palette.Color(pixels[x]).RGB()
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 0xff
		}
		if err := png.AddLine(row); err != nil {
			png.Close()
			return "", 0, err
		}
	}

	n, err := png.Close()
	if err != nil {
		return "", 0, err
	}

	name, err := d.probeName(storage.ScreenshotDir, screenshotPattern)
	if err != nil {
		return "", 0, err
	}

	if err := d.card.WriteFile(name, out.Bytes()[:n]); err != nil {
		return "", 0, err
	}

	d.logger.Info("saved screenshot", "name", name, "bytes", n)
	return name, n, nil
}
