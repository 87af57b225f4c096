package main

import (
	"fmt"

	"github.com/joshuapare/strlist/stringlist"
	"github.com/spf13/cobra"
)

var (
	dedupStrategy string
)

func init() {
	cmd := newDedupCmd()
	cmd.Flags().StringVar(&dedupStrategy, "strategy", "scan", "Duplicate detection: scan or hash")
	rootCmd.AddCommand(cmd)
}

func newDedupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedup <input>",
		Short: "Drop repeated lines, keeping first occurrences",
		Long: `The dedup command prints the input with every repeated line removed.
The first occurrence of each line is kept and the original order is preserved.

Example:
  strlistctl dedup words.txt
  strlistctl dedup words.txt --strategy hash --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedup(args)
		},
	}
	return cmd
}

func runDedup(args []string) error {
	strategy, err := parseDedupStrategy(dedupStrategy)
	if err != nil {
		return err
	}
	opts := listOptions()
	opts.Dedup = strategy

	s, err := openSession(args[0], opts)
	if err != nil {
		return err
	}
	defer s.Close()

	before, _ := s.list.Size()
	if err := s.list.RemoveDuplicates(); err != nil {
		return s.opError("dedup", err)
	}
	after, _ := s.list.Size()
	printVerbose("Removed %d duplicate(s) with %s\n", before-after, strategy)
	return s.printList()
}

func parseDedupStrategy(name string) (stringlist.DedupStrategy, error) {
	switch name {
	case "", "scan":
		return stringlist.DedupScan, nil
	case "hash":
		return stringlist.DedupHash, nil
	default:
		return 0, fmt.Errorf("unknown dedup strategy %q (want scan or hash)", name)
	}
}
