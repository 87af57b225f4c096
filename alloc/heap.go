package alloc

import (
	"fmt"

	"github.com/joshuapare/strlist/internal/layout"
)

// Heap allocates from the Go heap and keeps byte accounting.
type Heap struct {
	meter
}

// NewHeap returns an empty heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// AllocBlock implements Allocator.
func (h *Heap) AllocBlock(capacity int) ([][]byte, error) {
	n, err := layout.BlockBytes(capacity)
	if err != nil {
		return nil, fmt.Errorf("heap: %w: %w", ErrBadSize, err)
	}
	slots := make([][]byte, capacity)
	h.addBlock(n)
	return slots, nil
}

// FreeBlock implements Allocator.
func (h *Heap) FreeBlock(slots [][]byte) {
	n, err := layout.BlockBytes(len(slots))
	if err != nil {
		return
	}
	clear(slots)
	h.dropBlock(n)
}

// AllocString implements Allocator.
func (h *Heap) AllocString(n int) ([]byte, error) {
	if n < layout.TerminatorSize {
		return nil, fmt.Errorf("heap: string of %d bytes: %w", n, ErrBadSize)
	}
	b := make([]byte, n)
	h.addString(n)
	return b, nil
}

// FreeString implements Allocator.
func (h *Heap) FreeString(b []byte) {
	if b == nil {
		return
	}
	h.dropString(cap(b))
}

// Stats implements Allocator.
func (h *Heap) Stats() Stats {
	return h.st
}
