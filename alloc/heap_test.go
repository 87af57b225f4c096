package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/strlist/internal/layout"
)

func TestHeap_AccountsBlocksAndStrings(t *testing.T) {
	h := NewHeap()

	slots, err := h.AllocBlock(3)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	s, err := h.AllocString(6)
	require.NoError(t, err)
	require.Len(t, s, 6)
	require.Equal(t, 6, cap(s))

	st := h.Stats()
	assert.Equal(t, 1, st.Blocks)
	assert.Equal(t, 1, st.Strings)
	assert.Equal(t, layout.HeaderSize+3*layout.SlotSize+6, st.InUse)

	h.FreeString(s)
	h.FreeBlock(slots)

	st = h.Stats()
	assert.Zero(t, st.Blocks)
	assert.Zero(t, st.Strings)
	assert.Zero(t, st.InUse)
	assert.Equal(t, layout.HeaderSize+3*layout.SlotSize+6, st.Peak)
}

func TestHeap_EmptyBlockIsHeaderOnly(t *testing.T) {
	h := NewHeap()
	slots, err := h.AllocBlock(0)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Equal(t, layout.HeaderSize, h.Stats().InUse)
}

func TestHeap_ResliceKeepsAccounting(t *testing.T) {
	h := NewHeap()
	s, err := h.AllocString(10)
	require.NoError(t, err)

	h.FreeString(s[:3])
	assert.Zero(t, h.Stats().InUse)
}

func TestHeap_RejectsBadSizes(t *testing.T) {
	h := NewHeap()

	_, err := h.AllocString(0)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = h.AllocBlock(-1)
	require.ErrorIs(t, err, ErrBadSize)

	assert.Equal(t, Stats{}, h.Stats())
}
