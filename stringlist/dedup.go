package stringlist

// RemoveDuplicates keeps only the first occurrence of every distinct element,
// preserving their relative order.
//
// The result is built in a fresh block from the same allocator. Only once it
// is complete is the old storage freed and the new storage adopted, so on
// failure the list is unchanged. The *List handle stays the same.
func (l *List) RemoveDuplicates() error {
	if err := l.check("remove_duplicates"); err != nil {
		return err
	}

	res := &List{a: l.a, dedup: l.dedup, sortBy: l.sortBy, log: l.log}
	if err := res.installBlock(0); err != nil {
		return exhausted("remove_duplicates", err)
	}

	var err error
	switch l.dedup {
	case DedupHash:
		err = l.dedupHash(res)
	default:
		err = l.dedupScan(res)
	}
	if err != nil {
		res.releaseStorage()
		res.destroyed = true
		return exhausted("remove_duplicates", err)
	}

	before := l.size
	l.releaseStorage()
	l.adopt(res)
	l.log.Debug("stringlist dedup", "strategy", l.dedup.String(), "before", before, "after", l.size)
	return nil
}

func (l *List) dedupScan(res *List) error {
	for i := 0; i < l.size; i++ {
		s := content(l.slots[i])
		if res.indexOf(s) != NotFound {
			continue
		}
		if err := res.add(s); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) dedupHash(res *List) error {
	seen := make(map[string]struct{}, l.size)
	for i := 0; i < l.size; i++ {
		s := content(l.slots[i])
		if _, ok := seen[string(s)]; ok {
			continue
		}
		seen[string(s)] = struct{}{}
		if err := res.add(s); err != nil {
			return err
		}
	}
	return nil
}
