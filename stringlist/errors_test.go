package stringlist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/strlist/alloc"
)

func TestError_Message(t *testing.T) {
	err := invalidArg("add", "nil string")
	assert.Equal(t, "stringlist: add: invalid argument: nil string", err.Error())

	err = exhausted("add", alloc.ErrNoSpace)
	assert.Equal(t, "stringlist: add: resource exhausted: alloc: no space left", err.Error())

	assert.Equal(t, "stringlist: invalid argument", ErrInvalidArgument.Error())
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestError_KindMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", invalidArg("sort", "nil list"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, KindInvalidArgument, KindOf(err))

	err = exhausted("add", alloc.ErrNoSpace)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.ErrorIs(t, err, alloc.ErrNoSpace)
	assert.Equal(t, KindResourceExhausted, KindOf(err))

	assert.Equal(t, ErrKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "unknown error", ErrKind(0).String())
}

func TestError_OpErrorsDoNotMatchEachOther(t *testing.T) {
	a := invalidArg("add", "nil string")
	b := invalidArg("remove", "nil string")
	assert.False(t, errors.Is(a, b))
}
