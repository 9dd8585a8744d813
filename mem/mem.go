/*
Package mem provides explicit allocation accounting against a fixed byte
budget, standing in for the constrained device heap the export pipeline
was designed around. Buffers are acquired and released by hand so that
peak usage stays observable and a test can force a failure at any single
allocation point by shrinking the budget.
*/
package mem

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is the failure every exhausted allocation resolves to
// under errors.Is.
var ErrOutOfMemory = errors.New("mem: out of memory")

// AllocError reports which named buffer could not be allocated.
type AllocError struct {
	Buffer string
	Size   int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("mem: no room for %d byte %s buffer", e.Size, e.Buffer)
}

func (e *AllocError) Is(target error) bool {
	return target == ErrOutOfMemory
}

// Heap tracks live allocations against a fixed budget.
type Heap struct {
	budget int
	live   int
	peak   int
}

// New returns a heap with the given byte budget.
func New(budget int) *Heap {
	return &Heap{budget: budget}
}

// Reserve accounts for an allocation without providing backing storage,
// for footprints owned elsewhere such as encoder state.
func (h *Heap) Reserve(name string, size int) (*Block, error) {
	if size < 0 || h.live+size > h.budget {
		return nil, &AllocError{Buffer: name, Size: size}
	}

	h.live += size
	if h.live > h.peak {
		h.peak = h.live
	}

	return &Block{heap: h, name: name, size: size}, nil
}

// Alloc acquires a named byte buffer of the given size.
func (h *Heap) Alloc(name string, size int) (*Block, error) {
	b, err := h.Reserve(name, size)
	if err != nil {
		return nil, err
	}
	b.buf = make([]byte, size)
	return b, nil
}

// Alloc16 acquires a named buffer of count 16-bit words, accounted at two
// bytes per word.
func (h *Heap) Alloc16(name string, count int) (*Block, error) {
	b, err := h.Reserve(name, count*2)
	if err != nil {
		return nil, err
	}
	b.buf16 = make([]uint16, count)
	return b, nil
}

// Live returns the byte count currently allocated.
func (h *Heap) Live() int {
	return h.live
}

// Peak returns the highest live byte count seen.
func (h *Heap) Peak() int {
	return h.peak
}

// Block is a single live allocation.
type Block struct {
	heap  *Heap
	name  string
	size  int
	buf   []byte
	buf16 []uint16
	freed bool
}

// Bytes returns the backing byte buffer, nil for reservations and 16-bit
// blocks.
func (b *Block) Bytes() []byte {
	return b.buf
}

// Uint16s returns the backing 16-bit buffer, nil for anything not
// allocated with Alloc16.
func (b *Block) Uint16s() []uint16 {
	return b.buf16
}

// Size returns the accounted size of the block in bytes.
func (b *Block) Size() int {
	return b.size
}

// Free releases the allocation. Freeing a block twice panics.
func (b *Block) Free() {
	if b.freed {
		panic("mem: double free of " + b.name + " buffer")
	}
	b.freed = true
	b.heap.live -= b.size
	b.buf = nil
	b.buf16 = nil
}
