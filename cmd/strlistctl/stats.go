package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <input>",
		Short: "Show list and allocation statistics",
		Long: `The stats command loads the input and reports the list's size and
capacity together with the allocator's accounting: live blocks and strings,
bytes in use, the peak, bytes mapped when --arena is set, and the byte limit
with what remains of it when --max-bytes or --op-bytes is set.

Example:
  strlistctl stats words.txt
  strlistctl stats words.txt --arena --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type statsOutput struct {
	Input    string `json:"input"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Empty    bool   `json:"empty"`
	Blocks   int    `json:"blocks"`
	Strings  int    `json:"strings"`
	InUse    int    `json:"bytes_in_use"`
	Peak     int    `json:"peak_bytes"`
	Mapped   int    `json:"mapped_bytes"`

	// Set only when a byte limit is in force.
	Limit     int `json:"limit_bytes,omitempty"`
	Remaining int `json:"remaining_bytes,omitempty"`
}

func runStats(args []string) error {
	s, err := openSession(args[0], listOptions())
	if err != nil {
		return err
	}
	defer s.Close()

	size, err := s.list.Size()
	if err != nil {
		return s.opError("stats", err)
	}
	capacity, _ := s.list.Capacity()
	empty, _ := s.list.IsEmpty()
	st, err := s.list.Stats()
	if err != nil {
		return s.opError("stats", err)
	}

	out := statsOutput{
		Input:    args[0],
		Size:     size,
		Capacity: capacity,
		Empty:    empty,
		Blocks:   st.Blocks,
		Strings:  st.Strings,
		InUse:    st.InUse,
		Peak:     st.Peak,
		Mapped:   st.Mapped,
	}
	if s.budget != nil {
		out.Limit = s.budget.Limit()
		out.Remaining = s.budget.Remaining()
	}
	if jsonOut {
		return printJSON(out)
	}

	printInfo("Input:        %s\n", out.Input)
	printInfo("Size:         %d\n", out.Size)
	printInfo("Capacity:     %d\n", out.Capacity)
	printInfo("Empty:        %t\n", out.Empty)
	printInfo("Blocks:       %d\n", out.Blocks)
	printInfo("Strings:      %d\n", out.Strings)
	printInfo("Bytes in use: %d\n", out.InUse)
	printInfo("Peak bytes:   %d\n", out.Peak)
	if useArena {
		printInfo("Mapped bytes: %d\n", out.Mapped)
	}
	if s.budget != nil {
		printInfo("Limit bytes:  %d\n", out.Limit)
		printInfo("Remaining:    %d\n", out.Remaining)
	}
	return nil
}
