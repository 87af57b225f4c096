package stringlist

import (
	"bytes"

	"github.com/joshuapare/strlist/internal/buf"
	"github.com/joshuapare/strlist/internal/layout"
)

// ReplaceInStrings replaces, in every element, each non-overlapping occurrence
// of before with after, scanning left to right and resuming after the inserted
// text. Both arguments are cut at their first NUL byte. An empty before changes
// nothing.
//
// An element whose result fits its buffer is rewritten in place; a longer one is
// moved to a new buffer. All new buffers are obtained before any element is
// touched, so a failed call leaves the list unchanged.
func (l *List) ReplaceInStrings(before, after []byte) error {
	if err := l.check("replace_in_strings"); err != nil {
		return err
	}
	if err := checkString("replace_in_strings", "before", before); err != nil {
		return err
	}
	if err := checkString("replace_in_strings", "after", after); err != nil {
		return err
	}

	// Copies, since either may alias an element rewritten below.
	old := bytes.Clone(before[:layout.ContentLen(before)])
	repl := bytes.Clone(after[:layout.ContentLen(after)])
	if len(old) == 0 || l.size == 0 {
		return nil
	}

	edits, err := l.planReplace(old, repl)
	if err != nil {
		return exhausted("replace_in_strings", err)
	}
	for _, e := range edits {
		l.applyEdit(e, old, repl)
	}
	return nil
}

// edit is the pending rewrite of one element.
type edit struct {
	idx    int
	pos    []int  // match offsets within the element's content
	newLen int    // content length after replacement
	dst    []byte // replacement buffer when the result outgrows the element; nil otherwise
}

// planReplace finds every element that changes and allocates the buffers that
// have to move. On error nothing has been allocated.
func (l *List) planReplace(old, repl []byte) ([]edit, error) {
	var edits []edit
	undo := func() {
		for _, e := range edits {
			if e.dst != nil {
				l.a.FreeString(e.dst)
			}
		}
	}

	for i := 0; i < l.size; i++ {
		s := content(l.slots[i])
		if len(s) == 0 {
			continue
		}
		pos := matches(s, old)
		if len(pos) == 0 {
			continue
		}
		newLen, err := replacedLen(len(s), len(pos), len(old), len(repl))
		if err != nil {
			undo()
			return nil, err
		}
		e := edit{idx: i, pos: pos, newLen: newLen}
		if newLen+layout.TerminatorSize > cap(l.slots[i]) {
			n, err := layout.StringBytes(newLen)
			if err != nil {
				undo()
				return nil, err
			}
			dst, err := l.a.AllocString(n)
			if err != nil {
				undo()
				return nil, err
			}
			e.dst = dst
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func (l *List) applyEdit(e edit, old, repl []byte) {
	slot := l.slots[e.idx]
	s := content(slot)

	switch {
	case e.dst != nil:
		n := splice(e.dst, s, e.pos, old, repl)
		e.dst[n] = 0
		l.a.FreeString(slot)
		l.slots[e.idx] = e.dst
	case e.newLen <= len(s):
		n := splice(slot, s, e.pos, old, repl)
		slot = slot[:n+layout.TerminatorSize]
		slot[n] = 0
		l.slots[e.idx] = slot
	default:
		slot = slot[:e.newLen+layout.TerminatorSize]
		spliceBackward(slot, len(s), e.pos, old, repl)
		slot[e.newLen] = 0
		l.slots[e.idx] = slot
	}
}

// matches returns the start offsets of the non-overlapping occurrences of old
// in s, found left to right.
func matches(s, old []byte) []int {
	var pos []int
	for i := 0; i+len(old) <= len(s); {
		j := bytes.Index(s[i:], old)
		if j < 0 {
			break
		}
		pos = append(pos, i+j)
		i += j + len(old)
	}
	return pos
}

// replacedLen is n + count*(len(repl)-len(old)) with overflow checking.
func replacedLen(n, count, oldLen, replLen int) (int, error) {
	delta, ok := buf.MulOverflowSafe(count, replLen-oldLen)
	if !ok {
		return 0, layout.ErrOverflow
	}
	total, ok := buf.AddOverflowSafe(n, delta)
	if !ok {
		return 0, layout.ErrOverflow
	}
	return total, nil
}

// splice writes s with the matches at pos replaced into dst, left to right, and
// returns the content length written. dst may share storage with s when the
// result is no longer than s: the write cursor never passes the read cursor.
func splice(dst, s []byte, pos []int, old, repl []byte) int {
	w, r := 0, 0
	for _, p := range pos {
		w += copy(dst[w:], s[r:p])
		w += copy(dst[w:], repl)
		r = p + len(old)
	}
	w += copy(dst[w:], s[r:])
	return w
}

// spliceBackward rewrites the first n bytes of b in place when the result is
// longer than n but still fits b. It fills from the right so no unread byte is
// overwritten.
func spliceBackward(b []byte, n int, pos []int, old, repl []byte) {
	src := n
	dst := n + len(pos)*(len(repl)-len(old))
	for k := len(pos) - 1; k >= 0; k-- {
		tail := pos[k] + len(old)
		dst -= src - tail
		copy(b[dst:], b[tail:src])
		dst -= len(repl)
		copy(b[dst:], repl)
		src = pos[k]
	}
}
