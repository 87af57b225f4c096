package stringlist

import (
	"github.com/joshuapare/strlist/internal/layout"
)

// installBlock gives a list without storage an empty block of capacity slots.
func (l *List) installBlock(capacity int) error {
	slots, err := l.a.AllocBlock(capacity)
	if err != nil {
		return err
	}
	l.slots = slots
	l.size = 0
	l.capacity = capacity
	return nil
}

// releaseStorage frees the live strings and the block. The list is left with
// no storage; the caller either destroys it or installs a new block.
func (l *List) releaseStorage() {
	for i := 0; i < l.size; i++ {
		l.a.FreeString(l.slots[i])
	}
	l.a.FreeBlock(l.slots)
	l.slots = nil
	l.size = 0
	l.capacity = 0
}

// adopt moves src's storage into l. src must share l's allocator and ends up
// destroyed.
func (l *List) adopt(src *List) {
	l.slots, l.size, l.capacity = src.slots, src.size, src.capacity
	src.slots, src.size, src.capacity = nil, 0, 0
	src.destroyed = true
}

// ensureRoom grows the block when every slot is in use.
func (l *List) ensureRoom() error {
	if l.size < l.capacity {
		return nil
	}
	next, err := layout.NextCapacity(l.capacity)
	if err != nil {
		return err
	}
	return l.growTo(next)
}

// growTo moves the block to one of newCap slots. The old block's capacity slots
// are carried over. On error the list is unchanged.
func (l *List) growTo(newCap int) error {
	slots, err := l.a.AllocBlock(newCap)
	if err != nil {
		return err
	}
	copy(slots, l.slots[:l.capacity])
	old, oldCap := l.slots, l.capacity
	l.slots = slots
	l.capacity = newCap
	l.a.FreeBlock(old)
	l.log.Debug("stringlist grow", "from", oldCap, "to", newCap, "size", l.size)
	return nil
}

// Reserve grows the list so it holds at least n slots. It never shrinks.
func (l *List) Reserve(n int) error {
	if err := l.check("reserve"); err != nil {
		return err
	}
	if n < 0 {
		return invalidArg("reserve", "negative capacity")
	}
	if n <= l.capacity {
		return nil
	}
	if _, err := layout.BlockBytes(n); err != nil {
		return exhausted("reserve", err)
	}
	if err := l.growTo(n); err != nil {
		return exhausted("reserve", err)
	}
	return nil
}
