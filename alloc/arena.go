package alloc

import (
	"errors"
	"fmt"

	"github.com/joshuapare/strlist/internal/buf"
	"github.com/joshuapare/strlist/internal/layout"
)

// DefaultChunkSize is the arena chunk size used when none is given.
const DefaultChunkSize = 64 << 10

// Arena bump-allocates string buffers out of mapped chunks.
//
// Key characteristics:
//   - O(1) string allocation: carve from the current chunk or map a new one
//   - Free only drops accounting; space is reclaimed when the arena drains
//   - Requests larger than the chunk size get a dedicated chunk
//   - MaxChunks bounds the number of mappings; past it requests fail with ErrNoSpace
//
// Strings handed out by an arena are invalid after Close.
type Arena struct {
	meter

	chunkSize int
	maxChunks int // 0 means unbounded
	chunks    []chunk
	cur       int // index of the chunk being carved
	closed    bool
}

type chunk struct {
	mem []byte
	off int
}

// NewArena returns an arena that maps chunkSize-byte chunks on demand, at most
// maxChunks of them (0 for no limit). A chunkSize <= 0 selects DefaultChunkSize.
func NewArena(chunkSize, maxChunks int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize, maxChunks: maxChunks}
}

// AllocBlock implements Allocator. Slot blocks live on the Go heap.
func (a *Arena) AllocBlock(capacity int) ([][]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	n, err := layout.BlockBytes(capacity)
	if err != nil {
		return nil, fmt.Errorf("arena: %w: %w", ErrBadSize, err)
	}
	slots := make([][]byte, capacity)
	a.addBlock(n)
	return slots, nil
}

// FreeBlock implements Allocator.
func (a *Arena) FreeBlock(slots [][]byte) {
	n, err := layout.BlockBytes(len(slots))
	if err != nil {
		return
	}
	clear(slots)
	a.dropBlock(n)
}

// AllocString implements Allocator.
func (a *Arena) AllocString(n int) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if n < layout.TerminatorSize {
		return nil, fmt.Errorf("arena: string of %d bytes: %w", n, ErrBadSize)
	}
	need := layout.Align8(n)
	if need < n {
		return nil, fmt.Errorf("arena: string of %d bytes: %w", n, ErrBadSize)
	}

	c, err := a.chunkFor(need)
	if err != nil {
		return nil, err
	}
	s, ok := buf.Slice(c.mem, c.off, n)
	if !ok {
		return nil, fmt.Errorf("arena: carve %d bytes at %d: %w", n, c.off, ErrBadSize)
	}
	c.off += need
	clear(s)
	a.addString(n)
	return s, nil
}

// FreeString implements Allocator.
func (a *Arena) FreeString(b []byte) {
	if b == nil {
		return
	}
	a.dropString(cap(b))
	if a.st.Strings == 0 {
		a.rewind()
	}
}

// Stats implements Allocator.
func (a *Arena) Stats() Stats {
	return a.st
}

// Close unmaps every chunk. Strings obtained from the arena must not be used
// afterwards. Closing twice is a no-op.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	var errs []error
	for i := range a.chunks {
		if err := unmapChunk(a.chunks[i].mem); err != nil {
			errs = append(errs, err)
		}
		a.chunks[i].mem = nil
	}
	a.chunks = nil
	a.st.Mapped = 0
	return errors.Join(errs...)
}

// chunkFor returns a chunk with at least need free bytes, mapping one if required.
// Requests up to the chunk size are carved from cur onwards. Larger ones may use
// any chunk with enough room left, which after a rewind includes the dedicated
// chunks mapped for earlier large requests; they never move cur.
func (a *Arena) chunkFor(need int) (*chunk, error) {
	if need <= a.chunkSize {
		for ; a.cur < len(a.chunks); a.cur++ {
			if c := &a.chunks[a.cur]; len(c.mem)-c.off >= need {
				return c, nil
			}
		}
	} else {
		for i := range a.chunks {
			if c := &a.chunks[i]; len(c.mem)-c.off >= need {
				return c, nil
			}
		}
	}

	if a.maxChunks > 0 && len(a.chunks) >= a.maxChunks {
		return nil, fmt.Errorf("arena: %d chunks mapped: %w", len(a.chunks), ErrNoSpace)
	}
	mem, err := mapChunk(max(a.chunkSize, need))
	if err != nil {
		return nil, fmt.Errorf("arena: %w: %w", ErrNoSpace, err)
	}
	a.st.Mapped += len(mem)
	a.chunks = append(a.chunks, chunk{mem: mem})
	last := len(a.chunks) - 1
	if need <= a.chunkSize {
		a.cur = last
	}
	return &a.chunks[last], nil
}

// rewind makes every mapped chunk available again once no string is live.
func (a *Arena) rewind() {
	for i := range a.chunks {
		a.chunks[i].off = 0
	}
	a.cur = 0
}
