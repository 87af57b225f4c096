package stringlist

import (
	"errors"
	"strings"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	KindInvalidArgument   ErrKind = iota + 1 // nil/destroyed list, nil string, nil destination, bad index
	KindResourceExhausted                    // allocator refused or a size overflowed
)

func (k ErrKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindResourceExhausted:
		return "resource exhausted"
	default:
		return "unknown error"
	}
}

// Error is a typed error with the failing operation and an optional cause.
type Error struct {
	Kind ErrKind
	Op   string // operation name, e.g. "add"
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("stringlist: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels: any *Error of the same Kind matches
// ErrInvalidArgument or ErrResourceExhausted.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrResourceExhausted = &Error{Kind: KindResourceExhausted}
)

// KindOf returns the kind of err, or 0 if err carries no *Error.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func invalidArg(op, msg string) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Msg: msg}
}

func exhausted(op string, cause error) error {
	return &Error{Kind: KindResourceExhausted, Op: op, Err: cause}
}
