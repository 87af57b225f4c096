package stringlist

import (
	"bytes"
	"slices"
)

// Sort orders the elements ascending by byte-lexicographic comparison of their
// full contents. Lists of zero or one element are left alone.
func (l *List) Sort() error {
	if err := l.check("sort"); err != nil {
		return err
	}
	if l.size < 2 {
		return nil
	}
	live := l.slots[:l.size]
	switch l.sortBy {
	case SortStandard:
		slices.SortFunc(live, compareSlots)
	default:
		selectionSort(live)
	}
	return nil
}

func compareSlots(a, b []byte) int {
	return bytes.Compare(content(a), content(b))
}

// selectionSort swaps the minimum of the unsorted tail into place on each pass.
// Not stable, but equal elements are indistinguishable.
func selectionSort(s [][]byte) {
	for i := 0; i < len(s)-1; i++ {
		lo := i
		for j := i + 1; j < len(s); j++ {
			if compareSlots(s[j], s[lo]) < 0 {
				lo = j
			}
		}
		s[i], s[lo] = s[lo], s[i]
	}
}

// IsSorted reports whether the elements are in ascending order.
func (l *List) IsSorted() (bool, error) {
	if err := l.check("is_sorted"); err != nil {
		return false, err
	}
	return slices.IsSortedFunc(l.slots[:l.size], compareSlots), nil
}
