package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/joshuapare/strlist/alloc"
	"github.com/joshuapare/strlist/cmd/strlistctl/logger"
	"github.com/joshuapare/strlist/internal/buf"
	"github.com/joshuapare/strlist/internal/mmfile"
	"github.com/joshuapare/strlist/internal/textenc"
	"github.com/joshuapare/strlist/stringlist"
)

// session is a list loaded from one input, plus the allocator state it owns.
type session struct {
	input string
	list  *stringlist.List
	alloc  alloc.Allocator
	arena  *alloc.Arena
	budget *alloc.Budget
}

// listOptions builds list options from the global flags.
func listOptions() *stringlist.Options {
	opts := stringlist.DefaultOptions()
	opts.Logger = logger.L
	return opts
}

// newAllocator picks the allocator named by --arena, --max-bytes and --op-bytes.
func newAllocator() (alloc.Allocator, *alloc.Arena, *alloc.Budget) {
	var a alloc.Allocator
	var arena *alloc.Arena
	if useArena {
		arena = alloc.NewArena(alloc.DefaultChunkSize, 0)
		a = arena
	} else {
		a = alloc.NewHeap()
	}
	if maxBytes <= 0 && opBytes <= 0 {
		return a, arena, nil
	}
	limit := maxBytes
	if limit <= 0 {
		limit = math.MaxInt
	}
	budget := alloc.NewBudget(a, limit)
	return budget, arena, budget
}

// openSession reads path ("-" for stdin), decodes it, and adds every line to
// a new list built with opts.
func openSession(path string, opts *stringlist.Options) (*session, error) {
	a, arena, budget := newAllocator()
	opts.Allocator = a

	s := &session{input: path, alloc: a, arena: arena, budget: budget}
	list, err := stringlist.New(opts)
	if err != nil {
		s.closeArena()
		return nil, s.refused(fmt.Errorf("create list: %w", err))
	}
	s.list = list

	if err := s.load(path); err != nil {
		s.Close()
		return nil, s.refused(err)
	}
	n, _ := s.list.Size()
	logger.Info("input loaded", "input", path, "lines", n, "encoding", encodingName)
	printVerbose("Loaded %d line(s) from %s\n", n, path)

	if opBytes > 0 {
		s.limitOperation(opBytes)
	}
	return s, nil
}

// limitOperation caps the budget at the bytes in use plus extra, so the
// command's operation may allocate at most extra more bytes.
func (s *session) limitOperation(extra int) {
	inUse := s.alloc.Stats().InUse
	limit := s.budget.Limit()
	if next, ok := buf.AddOverflowSafe(inUse, extra); ok && next < limit {
		limit = next
	}
	s.budget.SetLimit(limit)
	logger.Debug("operation budget set", "in_use", inUse, "limit", limit)
}

// refused logs err when a byte limit caused it. err is returned unchanged.
func (s *session) refused(err error) error {
	if stringlist.KindOf(err) == stringlist.KindResourceExhausted && s.budget != nil {
		logger.Warn("byte limit reached", "input", s.input, "limit", s.budget.Limit(), "err", err)
	}
	return err
}

// opError wraps a failed list operation, logging refusals by the byte limit.
func (s *session) opError(op string, err error) error {
	return s.refused(fmt.Errorf("%s: %w", op, err))
}

func (s *session) load(path string) error {
	if path == "-" {
		r, err := textenc.NewReader(os.Stdin, encodingName)
		if err != nil {
			return err
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return s.addLines(data)
	}

	f, err := mmfile.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	data, err := textenc.Decode(f.Bytes(), encodingName)
	if err != nil {
		return err
	}
	// Lines are copied into the list, so the mapping may go away after this.
	return s.addLines(data)
}

func (s *session) addLines(data []byte) error {
	for i, line := range textenc.Lines(data) {
		if err := s.list.Add(line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// Close destroys the list and unmaps the arena, if any.
func (s *session) Close() error {
	var errs []error
	if s.list != nil {
		if err := stringlist.Destroy(&s.list); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.closeArena(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *session) closeArena() error {
	if s.arena == nil {
		return nil
	}
	err := s.arena.Close()
	s.arena = nil
	return err
}

// listOutput is the JSON shape shared by commands that print the list.
type listOutput struct {
	Input    string   `json:"input"`
	Size     int      `json:"size"`
	Capacity int      `json:"capacity"`
	Strings  []string `json:"strings"`
}

// printList writes the list one element per line, or as JSON with --json.
func (s *session) printList() error {
	strs, err := s.list.Strings()
	if err != nil {
		return err
	}
	if jsonOut {
		size, _ := s.list.Size()
		capacity, _ := s.list.Capacity()
		return printJSON(listOutput{
			Input:    s.input,
			Size:     size,
			Capacity: capacity,
			Strings:  strs,
		})
	}
	for _, str := range strs {
		printInfo("%s\n", str)
	}
	return nil
}
