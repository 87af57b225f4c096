package stringlist

import (
	"log/slog"

	"github.com/joshuapare/strlist/alloc"
)

// DedupStrategy selects how RemoveDuplicates finds earlier occurrences.
// Both strategies produce the same list.
type DedupStrategy int

const (
	// DedupScan looks each element up in the result with IndexOf. O(n^2).
	DedupScan DedupStrategy = iota

	// DedupHash remembers seen elements in a set. O(n) lookups, extra memory
	// outside the allocator.
	DedupHash
)

func (s DedupStrategy) String() string {
	switch s {
	case DedupScan:
		return "scan"
	case DedupHash:
		return "hash"
	default:
		return "unknown"
	}
}

// SortStrategy selects the algorithm used by Sort. Both yield ascending
// byte-lexicographic order.
type SortStrategy int

const (
	// SortSelection is an in-place selection sort. O(n^2) comparisons, at most n-1 swaps.
	SortSelection SortStrategy = iota

	// SortStandard uses slices.SortFunc. O(n log n).
	SortStandard
)

func (s SortStrategy) String() string {
	switch s {
	case SortSelection:
		return "selection"
	case SortStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Options configures a List.
type Options struct {
	// Allocator provides slot blocks and string buffers.
	// Default: a fresh alloc.Heap
	Allocator alloc.Allocator

	// InitialCapacity is the number of slots allocated by New.
	// Default: 0
	InitialCapacity int

	// Dedup selects the RemoveDuplicates strategy.
	// Default: DedupScan
	Dedup DedupStrategy

	// Sort selects the Sort algorithm.
	// Default: SortSelection
	Sort SortStrategy

	// Logger receives debug events (growth, dedup, destroy).
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() *Options {
	return &Options{
		Allocator:       alloc.NewHeap(),
		InitialCapacity: 0,
		Dedup:           DedupScan,
		Sort:            SortSelection,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// resolve fills unset fields of opts with defaults without modifying opts.
func resolve(opts *Options) Options {
	if opts == nil {
		return *DefaultOptions()
	}
	o := *opts
	if o.Allocator == nil {
		o.Allocator = alloc.NewHeap()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
