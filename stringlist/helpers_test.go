package stringlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestList creates a list that is destroyed when the test ends, unless the
// test destroyed it already.
func newTestList(t *testing.T, opts *Options) *List {
	t.Helper()
	l, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		if !l.destroyed {
			_ = Destroy(&l)
		}
	})
	return l
}

func addAll(t *testing.T, l *List, values ...string) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, l.AddString(v), "add %q", v)
	}
}

func contents(t *testing.T, l *List) []string {
	t.Helper()
	got, err := l.Strings()
	require.NoError(t, err)
	return got
}

func sizeOf(t *testing.T, l *List) int {
	t.Helper()
	n, err := l.Size()
	require.NoError(t, err)
	return n
}
