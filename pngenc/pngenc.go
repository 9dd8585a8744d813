/*
Package pngenc implements a line-oriented PNG encoder that writes into a
caller-provided byte buffer.

The encoder produces 8-bit RGBA images only, with a single IDAT chunk and
unfiltered scanlines submitted one at a time in top-to-bottom order. It
never allocates output storage of its own: the caller hands it a fixed
buffer up front and gets back the number of bytes used, which keeps an
encode viable under a hard memory ceiling and makes every failure
observable as a stable numeric reason code.
*/
package pngenc

import (
	"errors"
	"fmt"
)

// DefaultLevel is the deflate level used by the device export pipeline.
const DefaultLevel = 3

// Reason codes carried by Error. They are negative so a caller juggling
// encoded sizes and failures can never mistake one for the other.
const (
	ReasonBufferFull   = -1
	ReasonBadArgument  = -2
	ReasonBadLineSize  = -3
	ReasonTooManyLines = -4
	ReasonShortImage   = -5
	ReasonDeflate      = -6
	ReasonBadState     = -7
)

// Error reports a failed encoder call along with its reason code.
type Error struct {
	Op     string
	Reason int
}

func (e *Error) Error() string {
	return fmt.Sprintf("pngenc: %s: reason %d", e.Op, e.Reason)
}

var errFull = errors.New("pngenc: buffer full")
