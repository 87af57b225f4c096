// Package alloc provides the storage providers behind a string list.
//
// # Overview
//
// A list needs two kinds of storage: a slot block (the element array, accounted
// together with its size/capacity header) and one buffer per element string,
// sized to the content plus a NUL terminator. The Allocator interface hands out
// and takes back both, and keeps byte accounting in the layout of
// internal/layout so callers can reason about memory use.
//
// # Implementations
//
// Heap: plain Go allocation with accounting. The default.
//
// Budget: wraps another allocator and refuses any request that would push the
// bytes in use past a fixed limit. Used to bound memory and to exercise the
// failure paths of list operations.
//
// Arena: string buffers are bump-allocated out of anonymous memory mappings
// (golang.org/x/sys/unix on linux and darwin, heap chunks elsewhere). Slot
// blocks stay on the Go heap because they hold references the collector must
// see. Freeing a string only drops its accounting; once every string is freed
// the arena rewinds and reuses its chunks.
//
// # Usage Example
//
//	a := alloc.NewBudget(alloc.NewHeap(), 1<<20)
//	slots, err := a.AllocBlock(7)
//	if err != nil {
//	    return err
//	}
//	defer a.FreeBlock(slots)
//
//	s, err := a.AllocString(len("hello") + 1)
//	if err != nil {
//	    return err
//	}
//	copy(s, "hello")
//
// # Thread Safety
//
// Allocator instances are not thread-safe. A list and its allocator belong to
// one goroutine at a time.
package alloc
