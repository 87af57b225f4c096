package alloc

import (
	"fmt"

	"github.com/joshuapare/strlist/internal/buf"
	"github.com/joshuapare/strlist/internal/layout"
)

// Budget wraps an Allocator and refuses requests that would raise the bytes in
// use above Limit. A refused request has no effect on the wrapped allocator.
//
// Similar in spirit to a NoFree wrapper: it changes policy, not mechanism.
type Budget struct {
	inner Allocator
	limit int
	used  int
}

// NewBudget limits inner to limit bytes. A nil inner allocator means a new Heap.
func NewBudget(inner Allocator, limit int) *Budget {
	if inner == nil {
		inner = NewHeap()
	}
	return &Budget{inner: inner, limit: limit}
}

// Limit returns the configured byte limit.
func (b *Budget) Limit() int { return b.limit }

// SetLimit changes the byte limit. Lowering it below the bytes in use does not
// free anything; it only makes further requests fail.
func (b *Budget) SetLimit(limit int) { b.limit = limit }

// Remaining returns how many more bytes may be allocated.
func (b *Budget) Remaining() int {
	if b.used >= b.limit {
		return 0
	}
	return b.limit - b.used
}

// AllocBlock implements Allocator.
func (b *Budget) AllocBlock(capacity int) ([][]byte, error) {
	n, err := layout.BlockBytes(capacity)
	if err != nil {
		return nil, fmt.Errorf("budget: %w: %w", ErrBadSize, err)
	}
	if err := b.reserve(n); err != nil {
		return nil, fmt.Errorf("budget: block of %d slots: %w", capacity, err)
	}
	slots, err := b.inner.AllocBlock(capacity)
	if err != nil {
		b.used -= n
		return nil, err
	}
	return slots, nil
}

// FreeBlock implements Allocator.
func (b *Budget) FreeBlock(slots [][]byte) {
	if n, err := layout.BlockBytes(len(slots)); err == nil {
		b.used -= n
	}
	b.inner.FreeBlock(slots)
}

// AllocString implements Allocator.
func (b *Budget) AllocString(n int) ([]byte, error) {
	if n < layout.TerminatorSize {
		return nil, fmt.Errorf("budget: string of %d bytes: %w", n, ErrBadSize)
	}
	if err := b.reserve(n); err != nil {
		return nil, fmt.Errorf("budget: string of %d bytes: %w", n, err)
	}
	s, err := b.inner.AllocString(n)
	if err != nil {
		b.used -= n
		return nil, err
	}
	return s, nil
}

// FreeString implements Allocator.
func (b *Budget) FreeString(s []byte) {
	if s == nil {
		return
	}
	b.used -= cap(s)
	b.inner.FreeString(s)
}

// Stats implements Allocator. It reports the wrapped allocator's accounting.
func (b *Budget) Stats() Stats {
	return b.inner.Stats()
}

func (b *Budget) reserve(n int) error {
	next, ok := buf.AddOverflowSafe(b.used, n)
	if !ok || next > b.limit {
		return fmt.Errorf("%w (limit %d, in use %d, requested %d)", ErrNoSpace, b.limit, b.used, n)
	}
	b.used = next
	return nil
}
