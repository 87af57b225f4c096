package stringlist

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/strlist/alloc"
	"github.com/joshuapare/strlist/internal/layout"
)

func TestGrowth_CapacitySequence(t *testing.T) {
	l := newTestList(t, nil)
	wantCaps := []int{1, 3, 3, 7, 7, 7, 7, 15}
	for i, want := range wantCaps {
		require.NoError(t, l.AddString(fmt.Sprint(i)))
		c, err := l.Capacity()
		require.NoError(t, err)
		assert.Equal(t, want, c, "capacity after %d adds", i+1)
	}
}

func TestGrowth_PreservesElements(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newTestList(t, &Options{Logger: logger})

	const n = 100
	for i := range n {
		require.NoError(t, l.AddString(fmt.Sprintf("element-%03d", i)))
		// Everything added so far survives every move of the block.
		for j := 0; j <= i; j += 17 {
			got, err := l.At(j)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("element-%03d", j), string(got))
		}
	}
	require.Equal(t, n, sizeOf(t, l))
	for i := range n {
		got, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("element-%03d", i), string(got))
	}

	// 1, 3, 7, 15, 31, 63, 127
	assert.Equal(t, 7, strings.Count(logs.String(), "stringlist grow"))
}

func TestGrowth_OldBlockIsReleased(t *testing.T) {
	h := alloc.NewHeap()
	l := newTestList(t, &Options{Allocator: h})
	addAll(t, l, "a", "b", "c", "d")
	assert.Equal(t, 1, h.Stats().Blocks)
}

func TestReserve(t *testing.T) {
	l := newTestList(t, nil)
	require.NoError(t, l.Reserve(10))
	c, err := l.Capacity()
	require.NoError(t, err)
	assert.Equal(t, 10, c)

	addAll(t, l, "x", "y")
	require.NoError(t, l.Reserve(4))
	c, err = l.Capacity()
	require.NoError(t, err)
	assert.Equal(t, 10, c, "reserve never shrinks")
	assert.Equal(t, []string{"x", "y"}, contents(t, l))

	err = l.Reserve(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFailure_InitExhausted(t *testing.T) {
	var l *List
	err := Init(&l, &Options{Allocator: alloc.NewBudget(nil, layout.HeaderSize-1)})
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.ErrorIs(t, err, alloc.ErrNoSpace)
	assert.Nil(t, l)
}

func TestFailure_InitOverflow(t *testing.T) {
	_, err := New(&Options{InitialCapacity: int(^uint(0) >> 2)})
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.ErrorIs(t, err, layout.ErrOverflow)
}

func TestFailure_AddGrowthRefused(t *testing.T) {
	b := alloc.NewBudget(nil, layout.HeaderSize+2)
	l := newTestList(t, &Options{Allocator: b})

	err := l.AddString("a")
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.ErrorIs(t, err, alloc.ErrNoSpace)

	assert.Zero(t, sizeOf(t, l))
	c, err := l.Capacity()
	require.NoError(t, err)
	assert.Zero(t, c)
	st := b.Stats()
	assert.Equal(t, layout.HeaderSize, st.InUse, "the string copy must be returned")
	assert.Zero(t, st.Strings)
}

func TestFailure_AddStringRefused(t *testing.T) {
	b := alloc.NewBudget(nil, 1<<10)
	l := newTestList(t, &Options{Allocator: b})
	addAll(t, l, "first")

	st, err := l.Stats()
	require.NoError(t, err)
	b.SetLimit(st.InUse)

	err = l.AddString("second")
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, []string{"first"}, contents(t, l))
	c, err := l.Capacity()
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	b.SetLimit(1 << 10)
	require.NoError(t, l.AddString("second"))
	assert.Equal(t, []string{"first", "second"}, contents(t, l))
}

func TestFailure_ReplaceIsAllOrNothing(t *testing.T) {
	b := alloc.NewBudget(nil, 1<<10)
	l := newTestList(t, &Options{Allocator: b})
	addAll(t, l, "ab", "cab", "abab")

	st, err := l.Stats()
	require.NoError(t, err)
	// Room for the first moved element but not the rest.
	b.SetLimit(st.InUse + len("aXXXb") + 1)

	err = l.ReplaceInStrings([]byte("a"), []byte("aXXX"))
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, []string{"ab", "cab", "abab"}, contents(t, l))

	after, err := l.Stats()
	require.NoError(t, err)
	assert.Equal(t, st.InUse, after.InUse, "buffers taken during planning are returned")

	b.SetLimit(1 << 10)
	require.NoError(t, l.ReplaceInStrings([]byte("a"), []byte("aXXX")))
	assert.Equal(t, []string{"aXXXb", "caXXXb", "aXXXbaXXXb"}, contents(t, l))
}

func TestFailure_RemoveDuplicatesRefused(t *testing.T) {
	for _, strategy := range dedupStrategies {
		t.Run(strategy.String(), func(t *testing.T) {
			b := alloc.NewBudget(nil, 1<<10)
			l := newTestList(t, &Options{Allocator: b, Dedup: strategy})
			addAll(t, l, "a", "b", "a", "c", "b")

			st, err := l.Stats()
			require.NoError(t, err)
			// Enough to take the first element, not to grow again for the second.
			b.SetLimit(st.InUse + 2*(layout.HeaderSize+layout.SlotSize))

			err = l.RemoveDuplicates()
			require.ErrorIs(t, err, ErrResourceExhausted)
			assert.Equal(t, []string{"a", "b", "a", "c", "b"}, contents(t, l))

			after, err := l.Stats()
			require.NoError(t, err)
			assert.Equal(t, st.InUse, after.InUse)
			assert.Equal(t, 1, after.Blocks)
		})
	}
}

func TestArenaBackedList(t *testing.T) {
	a := alloc.NewArena(128, 0)
	defer func() { require.NoError(t, a.Close()) }()

	l, err := New(&Options{Allocator: a, Sort: SortStandard})
	require.NoError(t, err)

	for i := range 50 {
		require.NoError(t, l.AddString(fmt.Sprintf("%02d", 49-i)))
	}
	require.NoError(t, l.ReplaceInStrings([]byte("0"), []byte("zero")))
	require.NoError(t, l.Sort())
	require.NoError(t, l.RemoveDuplicates())

	got := contents(t, l)
	require.Len(t, got, 50)
	assert.Equal(t, "11", got[0])
	assert.Equal(t, "zerozero", got[49])

	require.NoError(t, Destroy(&l))
	st := a.Stats()
	assert.Zero(t, st.InUse)
	assert.Zero(t, st.Strings)
}

func TestArenaBackedList_LongStringChurn(t *testing.T) {
	a := alloc.NewArena(64, 4)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	l := newTestList(t, &Options{Allocator: a})
	long := bytes.Repeat([]byte("x"), 300)
	for i := range 32 {
		require.NoError(t, l.Add(long), "round %d", i)
		require.NoError(t, l.Remove(long), "round %d", i)
	}

	empty, err := l.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
	st := a.Stats()
	assert.Zero(t, st.Strings)
	block, err := layout.BlockBytes(l.capacity)
	require.NoError(t, err)
	assert.Equal(t, block, st.InUse)
}
