package stringlist

import (
	"iter"
	"log/slog"

	"github.com/joshuapare/strlist/alloc"
)

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

// List is a growable list of owned NUL-terminated byte strings.
//
// The zero value is not usable; create lists with New or Init.
type List struct {
	// header
	size     int
	capacity int

	// slots has exactly capacity entries; slots[:size] are live and each
	// holds a buffer ending in its NUL terminator. The rest are nil.
	slots [][]byte

	a         alloc.Allocator
	dedup     DedupStrategy
	sortBy    SortStrategy
	log       *slog.Logger
	destroyed bool
}

// New returns an empty list. A nil opts uses DefaultOptions.
func New(opts *Options) (*List, error) {
	o := resolve(opts)
	if o.InitialCapacity < 0 {
		return nil, invalidArg("init", "negative initial capacity")
	}
	l := &List{
		a:      o.Allocator,
		dedup:  o.Dedup,
		sortBy: o.Sort,
		log:    o.Logger,
	}
	if err := l.installBlock(o.InitialCapacity); err != nil {
		return nil, exhausted("init", err)
	}
	return l, nil
}

// Init creates a list and stores it in *out. On failure *out is left untouched.
func Init(out **List, opts *Options) error {
	if out == nil {
		return invalidArg("init", "nil destination")
	}
	l, err := New(opts)
	if err != nil {
		return err
	}
	*out = l
	return nil
}

// Destroy frees every element and the slot block of *lp, then sets *lp to nil.
// Any other reference to the same list observes it as destroyed.
func Destroy(lp **List) error {
	if lp == nil {
		return invalidArg("destroy", "nil list reference")
	}
	if err := (*lp).check("destroy"); err != nil {
		return err
	}
	l := *lp
	n := l.size
	l.releaseStorage()
	l.destroyed = true
	l.log.Debug("stringlist destroyed", "freed", n)
	*lp = nil
	return nil
}

// IsEmpty reports whether the list has no elements. An invalid list reports
// true alongside the error.
func (l *List) IsEmpty() (bool, error) {
	if err := l.check("is_empty"); err != nil {
		return true, err
	}
	return l.size == 0, nil
}

// Size returns the number of elements.
func (l *List) Size() (int, error) {
	if err := l.check("size"); err != nil {
		return 0, err
	}
	return l.size, nil
}

// Capacity returns the number of allocated slots.
func (l *List) Capacity() (int, error) {
	if err := l.check("capacity"); err != nil {
		return 0, err
	}
	return l.capacity, nil
}

// At returns element i without its terminator. The slice aliases list storage:
// it is read-only and valid until the next mutating call.
func (l *List) At(i int) ([]byte, error) {
	if err := l.check("at"); err != nil {
		return nil, err
	}
	if err := l.checkIndex("at", i); err != nil {
		return nil, err
	}
	s := content(l.slots[i])
	return s[:len(s):len(s)], nil
}

// CString returns element i including its NUL terminator, with the same
// aliasing rules as At.
func (l *List) CString(i int) ([]byte, error) {
	if err := l.check("cstring"); err != nil {
		return nil, err
	}
	if err := l.checkIndex("cstring", i); err != nil {
		return nil, err
	}
	s := l.slots[i]
	return s[:len(s):len(s)], nil
}

// Strings copies every element out as a Go string.
func (l *List) Strings() ([]string, error) {
	if err := l.check("strings"); err != nil {
		return nil, err
	}
	out := make([]string, l.size)
	for i := range l.size {
		out[i] = string(content(l.slots[i]))
	}
	return out, nil
}

// All iterates over the live elements with their indices. Yielded slices follow
// the aliasing rules of At. An invalid list yields nothing.
func (l *List) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if l.check("all") != nil {
			return
		}
		for i := 0; i < l.size; i++ {
			s := content(l.slots[i])
			if !yield(i, s[:len(s):len(s)]) {
				return
			}
		}
	}
}

// Stats reports the accounting of the list's allocator.
func (l *List) Stats() (alloc.Stats, error) {
	if err := l.check("stats"); err != nil {
		return alloc.Stats{}, err
	}
	return l.a.Stats(), nil
}

// content strips the terminator from a slot buffer.
func content(slot []byte) []byte {
	return slot[:len(slot)-1]
}
