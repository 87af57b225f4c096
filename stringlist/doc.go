// Package stringlist implements a growable list of owned, NUL-terminated byte
// strings.
//
// # Overview
//
// A List owns one slot block and one buffer per element. The block is obtained
// from an alloc.Allocator and accounted as a C-layout allocation: a two-word
// header (size, capacity) followed by one word per slot. Each element buffer
// holds the string's bytes plus a NUL terminator. Size and capacity are plain
// fields of the List; callers hold a *List that stays valid across growth.
//
// # Growth
//
// Add grows the block exactly when size == capacity, to 2*capacity+1 slots.
// The live slots are copied into the new block and the old block is released.
// If the allocator refuses, the list is left exactly as it was.
//
// # Errors
//
// Every operation validates its arguments before touching the list. A nil or
// destroyed list, a nil string or a nil destination yields an error matching
// ErrInvalidArgument; allocator refusal yields an error matching
// ErrResourceExhausted. A failed operation never leaves a partial mutation
// behind.
//
//	l, err := stringlist.New(nil)
//	if err != nil {
//	    return err
//	}
//	defer stringlist.Destroy(&l)
//
//	_ = l.AddString("beta")
//	_ = l.AddString("alpha")
//	_ = l.Sort()
//	first, _ := l.At(0) // "alpha"
//
// # Strings
//
// Elements are raw bytes compared byte-lexicographically. A string ends at its
// first NUL byte, so input is cut there when copied in.
//
// # Thread Safety
//
// A List is not safe for concurrent use.
package stringlist
