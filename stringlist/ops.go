package stringlist

import (
	"bytes"

	"github.com/joshuapare/strlist/internal/layout"
)

// Add appends a copy of s. s is cut at its first NUL byte.
//
// The copy is allocated before the block is grown; if either allocation fails
// both are undone and the list is unchanged.
func (l *List) Add(s []byte) error {
	if err := l.check("add"); err != nil {
		return err
	}
	if err := checkString("add", "string", s); err != nil {
		return err
	}
	if err := l.add(s); err != nil {
		return exhausted("add", err)
	}
	return nil
}

// AddString appends a copy of s. It is Add for callers holding a Go string.
func (l *List) AddString(s string) error {
	if err := l.check("add"); err != nil {
		return err
	}
	if err := l.add([]byte(s)); err != nil {
		return exhausted("add", err)
	}
	return nil
}

func (l *List) add(s []byte) error {
	s = s[:layout.ContentLen(s)]
	n, err := layout.StringBytes(len(s))
	if err != nil {
		return err
	}
	str, err := l.a.AllocString(n)
	if err != nil {
		return err
	}
	copy(str, s)
	str[len(s)] = 0

	if err := l.ensureRoom(); err != nil {
		l.a.FreeString(str)
		return err
	}
	l.slots[l.size] = str
	l.size++
	return nil
}

// Remove deletes every element equal to s, keeping the others in order.
// Removing a value that is not present is a no-op.
func (l *List) Remove(s []byte) error {
	if err := l.check("remove"); err != nil {
		return err
	}
	if err := checkString("remove", "string", s); err != nil {
		return err
	}
	if l.size == 0 {
		return nil
	}
	key := s[:layout.ContentLen(s)]

	kept := 0
	for r := 0; r < l.size; r++ {
		slot := l.slots[r]
		if bytes.Equal(content(slot), key) {
			l.a.FreeString(slot)
			continue
		}
		l.slots[kept] = slot
		kept++
	}
	clear(l.slots[kept:l.size])
	l.size = kept
	return nil
}

// IndexOf returns the index of the first element equal to s, or NotFound.
// An invalid argument also reports NotFound.
func (l *List) IndexOf(s []byte) (int, error) {
	if err := l.check("index_of"); err != nil {
		return NotFound, err
	}
	if err := checkString("index_of", "string", s); err != nil {
		return NotFound, err
	}
	return l.indexOf(s[:layout.ContentLen(s)]), nil
}

func (l *List) indexOf(key []byte) int {
	for i := 0; i < l.size; i++ {
		if bytes.Equal(content(l.slots[i]), key) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether some element equals s.
func (l *List) Contains(s []byte) (bool, error) {
	i, err := l.IndexOf(s)
	if err != nil {
		return false, err
	}
	return i != NotFound, nil
}
