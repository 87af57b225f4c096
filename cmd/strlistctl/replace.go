package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplaceCmd())
}

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <input> <before> <after>",
		Short: "Replace a substring in every line",
		Long: `The replace command rewrites every line, replacing each non-overlapping
occurrence of before with after. Matching runs left to right and resumes after
the inserted text, so replacements are never rescanned. An empty before leaves
the input unchanged.

Example:
  strlistctl replace words.txt ab ba
  strlistctl replace hosts.txt .example.com "" --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
	return cmd
}

func runReplace(args []string) error {
	s, err := openSession(args[0], listOptions())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.list.ReplaceInStrings([]byte(args[1]), []byte(args[2])); err != nil {
		return s.opError("replace", err)
	}
	return s.printList()
}
