// Package layout describes how a string list is accounted in memory.
//
// A list's storage is treated as one C-layout block:
//
//	Offset        Size              Description
//	0x00          WordSize          size: number of live elements
//	WordSize      WordSize          capacity: number of allocated slots
//	HeaderSize    capacity*SlotSize slots, one owned string reference each
//
// Each element is an independent buffer of len+1 bytes whose last byte is the
// NUL terminator. The helpers here compute those sizes with overflow checking
// and implement the growth arithmetic.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	"github.com/joshuapare/strlist/internal/buf"
)

const (
	// WordSize is the size of one header field or slot (a machine word).
	WordSize = bits.UintSize / 8

	// HeaderWords is the number of header fields: size, then capacity.
	HeaderWords = 2

	// HeaderSize is the byte size of the header region preceding the slots.
	HeaderSize = HeaderWords * WordSize

	// SlotSize is the byte size of one element slot.
	SlotSize = WordSize

	// TerminatorSize is the number of bytes reserved after each string's content.
	TerminatorSize = 1

	// alignMask rounds arena carve-outs to 8 bytes.
	alignMask = 7
)

// ErrOverflow indicates a size computation does not fit in an int.
var ErrOverflow = errors.New("layout: size overflow")

// BlockBytes returns the number of bytes a block with the given capacity
// occupies: the header plus capacity slots.
//
//	BlockBytes(0) = HeaderSize
//	BlockBytes(3) = HeaderSize + 3*SlotSize
func BlockBytes(capacity int) (int, error) {
	n, err := buf.Span(HeaderSize, capacity, SlotSize)
	if err != nil {
		return 0, fmt.Errorf("block of %d slots: %w: %w", capacity, ErrOverflow, err)
	}
	return n, nil
}

// StringBytes returns the allocation size of a string with n content bytes.
func StringBytes(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("string of %d bytes: %w", n, ErrOverflow)
	}
	total, ok := buf.AddOverflowSafe(n, TerminatorSize)
	if !ok {
		return 0, fmt.Errorf("string of %d bytes: %w", n, ErrOverflow)
	}
	return total, nil
}

// NextCapacity returns the capacity after one growth step: 2*old + 1.
// The +1 guarantees progress from an empty block.
func NextCapacity(old int) (int, error) {
	doubled, ok := buf.MulOverflowSafe(old, 2)
	if !ok {
		return 0, fmt.Errorf("grow from %d slots: %w", old, ErrOverflow)
	}
	next, ok := buf.AddOverflowSafe(doubled, 1)
	if !ok {
		return 0, fmt.Errorf("grow from %d slots: %w", old, ErrOverflow)
	}
	// A capacity whose block size overflows is as unusable as an overflowing capacity.
	if _, err := BlockBytes(next); err != nil {
		return 0, err
	}
	return next, nil
}

// Align8 returns n aligned up to the next 8-byte boundary.
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + alignMask) & ^alignMask
}

// ContentLen returns the length of s up to, not including, its first NUL byte.
// A string without a NUL is taken whole.
func ContentLen(s []byte) int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}
