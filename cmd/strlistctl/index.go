package main

import (
	"github.com/joshuapare/strlist/stringlist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newIndexCmd())
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <input> <value>",
		Short: "Print the position of the first line equal to a value",
		Long: `The index command prints the zero-based position of the first line
that equals value, or -1 when no line does.

Example:
  strlistctl index words.txt apple
  strlistctl index words.txt apple --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(args)
		},
	}
	return cmd
}

type indexOutput struct {
	Input string `json:"input"`
	Value string `json:"value"`
	Index int    `json:"index"`
	Found bool   `json:"found"`
}

func runIndex(args []string) error {
	s, err := openSession(args[0], listOptions())
	if err != nil {
		return err
	}
	defer s.Close()

	idx, err := s.list.IndexOf([]byte(args[1]))
	if err != nil {
		return s.opError("index", err)
	}
	if jsonOut {
		return printJSON(indexOutput{
			Input: args[0],
			Value: args[1],
			Index: idx,
			Found: idx != stringlist.NotFound,
		})
	}
	printInfo("%d\n", idx)
	return nil
}
