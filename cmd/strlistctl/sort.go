package main

import (
	"fmt"

	"github.com/joshuapare/strlist/stringlist"
	"github.com/spf13/cobra"
)

var (
	sortAlgorithm string
)

func init() {
	cmd := newSortCmd()
	cmd.Flags().StringVar(&sortAlgorithm, "algorithm", "selection", "Sort algorithm: selection or standard")
	rootCmd.AddCommand(cmd)
}

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <input>",
		Short: "Sort lines in byte order",
		Long: `The sort command loads every line of the input and prints them in
ascending byte-lexicographic order. Uppercase ASCII sorts before lowercase.

Example:
  strlistctl sort words.txt
  strlistctl sort words.txt --algorithm standard
  cat words.txt | strlistctl sort -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(args)
		},
	}
	return cmd
}

func runSort(args []string) error {
	strategy, err := parseSortStrategy(sortAlgorithm)
	if err != nil {
		return err
	}
	opts := listOptions()
	opts.Sort = strategy

	s, err := openSession(args[0], opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.list.Sort(); err != nil {
		return s.opError("sort", err)
	}
	printVerbose("Sorted with %s\n", strategy)
	return s.printList()
}

func parseSortStrategy(name string) (stringlist.SortStrategy, error) {
	switch name {
	case "", "selection":
		return stringlist.SortSelection, nil
	case "standard":
		return stringlist.SortStandard, nil
	default:
		return 0, fmt.Errorf("unknown sort algorithm %q (want selection or standard)", name)
	}
}
