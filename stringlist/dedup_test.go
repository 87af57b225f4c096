package stringlist

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/strlist/alloc"
)

var dedupStrategies = []DedupStrategy{DedupScan, DedupHash}

func TestRemoveDuplicates(t *testing.T) {
	for _, strategy := range dedupStrategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestList(t, &Options{Dedup: strategy})
			addAll(t, l, "1", "2", "0", "0", "1", "0", "2", "1", "2", "1", "0")

			require.NoError(t, l.RemoveDuplicates())
			assert.Equal(t, []string{"1", "2", "0"}, contents(t, l))
		})
	}
}

func TestRemoveDuplicates_KeepsHandle(t *testing.T) {
	l := newTestList(t, nil)
	addAll(t, l, "a", "a")
	alias := l

	require.NoError(t, l.RemoveDuplicates())
	assert.Same(t, alias, l)
	assert.Equal(t, []string{"a"}, contents(t, alias))
}

func TestRemoveDuplicates_EmptyList(t *testing.T) {
	for _, strategy := range dedupStrategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestList(t, &Options{Dedup: strategy})
			require.NoError(t, l.RemoveDuplicates())
			assert.Zero(t, sizeOf(t, l))
		})
	}
}

func TestRemoveDuplicates_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		input := make([]string, r.IntN(60))
		for i := range input {
			input[i] = strconv.Itoa(r.IntN(15))
		}

		var want []string
		seen := map[string]bool{}
		for _, s := range input {
			if !seen[s] {
				seen[s] = true
				want = append(want, s)
			}
		}

		for _, strategy := range dedupStrategies {
			l := newTestList(t, &Options{Dedup: strategy})
			addAll(t, l, input...)
			require.NoError(t, l.RemoveDuplicates())

			got := contents(t, l)
			assert.Equal(t, len(want), len(got), "round %d %s", round, strategy)
			if len(want) == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, want, got, "round %d %s", round, strategy)
		}
	}
}

func TestRemoveDuplicates_NoLeak(t *testing.T) {
	h := alloc.NewHeap()
	l, err := New(&Options{Allocator: h})
	require.NoError(t, err)
	addAll(t, l, "a", "b", "a", "b", "c")

	require.NoError(t, l.RemoveDuplicates())
	st := h.Stats()
	assert.Equal(t, 1, st.Blocks)
	assert.Equal(t, 3, st.Strings)

	require.NoError(t, Destroy(&l))
	assert.Zero(t, h.Stats().InUse)
}
