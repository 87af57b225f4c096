package stringlist

// Argument checks run before any element operation touches the list.

func (l *List) check(op string) error {
	if l == nil {
		return invalidArg(op, "nil list")
	}
	if l.destroyed {
		return invalidArg(op, "list destroyed")
	}
	return nil
}

func checkString(op, name string, s []byte) error {
	if s == nil {
		return invalidArg(op, "nil "+name)
	}
	return nil
}

func (l *List) checkIndex(op string, i int) error {
	if i < 0 || i >= l.size {
		return invalidArg(op, "index out of range")
	}
	return nil
}
