package pngenc

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zlib"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encoder streams one PNG image into a fixed buffer. Open binds the
// buffer, Begin writes the image header, AddLine consumes one RGBA
// scanline per call and Close finalizes the stream and reports the total
// encoded size. An encoder can be reused by calling Open again.
type Encoder struct {
	buf  []byte
	n    int
	full bool

	width  int
	height int
	line   int

	idat int
	zw   *zlib.Writer

	open  bool
	begun bool
}

// sink adapts the bounded buffer for the compressor.
type sink struct {
	e *Encoder
}

func (s sink) Write(p []byte) (int, error) {
	if err := s.e.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (e *Encoder) write(p []byte) error {
	if e.n+len(p) > len(e.buf) {
		e.full = true
		return errFull
	}
	copy(e.buf[e.n:], p)
	e.n += len(p)
	return nil
}

func (e *Encoder) writeChunk(name string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:], uint32(len(data)))
	copy(header[4:], name)

	if err := e.write(header[:]); err != nil {
		return err
	}
	if err := e.write(data); err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())

	return e.write(sum[:])
}

// deflateError distinguishes the buffer running out from the compressor
// failing in its own right.
func (e *Encoder) deflateError(op string) error {
	if e.full {
		return &Error{Op: op, Reason: ReasonBufferFull}
	}
	return &Error{Op: op, Reason: ReasonDeflate}
}

// Open binds the destination buffer and resets the encoder.
func (e *Encoder) Open(buf []byte) error {
	if len(buf) == 0 {
		return &Error{Op: "open", Reason: ReasonBadArgument}
	}
	*e = Encoder{buf: buf, open: true}
	return nil
}

// Begin writes the PNG signature and header for a width by height 8-bit
// RGBA image and starts the compressed pixel stream at the given deflate
// level.
func (e *Encoder) Begin(width, height, level int) error {
	if !e.open || e.begun {
		return &Error{Op: "begin", Reason: ReasonBadState}
	}
	if width <= 0 || height <= 0 {
		return &Error{Op: "begin", Reason: ReasonBadArgument}
	}

	if err := e.write(signature); err != nil {
		return &Error{Op: "begin", Reason: ReasonBufferFull}
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha
	if err := e.writeChunk("IHDR", ihdr[:]); err != nil {
		return &Error{Op: "begin", Reason: ReasonBufferFull}
	}

	// The IDAT length is patched in Close once the compressed size is
	// known
	e.idat = e.n
	if err := e.write([]byte{0, 0, 0, 0, 'I', 'D', 'A', 'T'}); err != nil {
		return &Error{Op: "begin", Reason: ReasonBufferFull}
	}

	zw, err := zlib.NewWriterLevel(sink{e}, level)
	if err != nil {
		return &Error{Op: "begin", Reason: ReasonBadArgument}
	}

	e.zw = zw
	e.width, e.height = width, height
	e.begun = true

	return nil
}

// AddLine appends one scanline of width RGBA pixels, exactly height of
// them per image, in top-to-bottom order.
func (e *Encoder) AddLine(line []byte) error {
	if !e.begun {
		return &Error{Op: "add line", Reason: ReasonBadState}
	}
	if len(line) != e.width*4 {
		return &Error{Op: "add line", Reason: ReasonBadLineSize}
	}
	if e.line >= e.height {
		return &Error{Op: "add line", Reason: ReasonTooManyLines}
	}

	// Every scanline is stored with filter type none
	if _, err := e.zw.Write([]byte{0}); err != nil {
		return e.deflateError("add line")
	}
	if _, err := e.zw.Write(line); err != nil {
		return e.deflateError("add line")
	}

	e.line++
	return nil
}

// Close flushes the compressor, finalizes the image and returns the total
// number of bytes used in the buffer. The encoder is left closed whether
// or not it succeeds.
func (e *Encoder) Close() (int, error) {
	if !e.begun {
		return 0, &Error{Op: "close", Reason: ReasonBadState}
	}
	e.open, e.begun = false, false

	if e.line != e.height {
		return 0, &Error{Op: "close", Reason: ReasonShortImage}
	}

	err := e.zw.Close()
	e.zw = nil
	if err != nil {
		return 0, e.deflateError("close")
	}

	// Patch the IDAT length now the compressed size is known
	binary.BigEndian.PutUint32(e.buf[e.idat:], uint32(e.n-e.idat-8))

	crc := crc32.NewIEEE()
	crc.Write(e.buf[e.idat+4 : e.n])

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	if err := e.write(sum[:]); err != nil {
		return 0, &Error{Op: "close", Reason: ReasonBufferFull}
	}

	if err := e.writeChunk("IEND", nil); err != nil {
		return 0, &Error{Op: "close", Reason: ReasonBufferFull}
	}

	return e.n, nil
}
