// Package buf contains overflow-checked arithmetic and bounds helpers shared by
// the layout and allocator code.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe returns a+b, or ok = false if the sum does not fit in an int.
func AddOverflowSafe(a, b int) (sum int, ok bool) {
	sum = a + b
	// Operands of equal sign can only overflow into the opposite sign.
	if (a < 0) == (b < 0) && (sum < 0) != (a < 0) {
		return 0, false
	}
	return sum, true
}

// MulOverflowSafe returns a*b, or ok = false if the product does not fit in an
// int. Every count * elementSize computation goes through it.
func MulOverflowSafe(a, b int) (product int, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	product = a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// Span returns offset + count*elementSize, the end of a run of count fixed-size
// elements that starts at offset. Negative inputs and overflow are reported as
// errors naming the failing term.
//
//	end, err := buf.Span(headerSize, capacity, slotSize)
//	if err != nil {
//	    return 0, fmt.Errorf("block: %w", err)
//	}
func Span(offset, count, elementSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elementSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elementSize)
	}

	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}

	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
// The result's capacity is clipped to n so appends never spill into the
// neighbouring region.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}
