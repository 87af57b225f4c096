package alloc

import "errors"

var (
	// ErrNoSpace indicates the allocator refused a request because its limit was reached.
	ErrNoSpace = errors.New("alloc: no space left")

	// ErrBadSize indicates a request for a negative or otherwise impossible size.
	ErrBadSize = errors.New("alloc: bad allocation size")

	// ErrClosed indicates a request against an arena that has been closed.
	ErrClosed = errors.New("alloc: arena closed")
)
