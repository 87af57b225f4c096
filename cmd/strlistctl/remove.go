package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <input> <value>",
		Short: "Drop every line equal to a value",
		Long: `The remove command prints the input without any line that is exactly
equal to value. Order of the remaining lines is preserved.

Example:
  strlistctl remove words.txt apple`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	s, err := openSession(args[0], listOptions())
	if err != nil {
		return err
	}
	defer s.Close()

	before, _ := s.list.Size()
	if err := s.list.Remove([]byte(args[1])); err != nil {
		return s.opError("remove", err)
	}
	after, _ := s.list.Size()
	printVerbose("Removed %d line(s) equal to %q\n", before-after, args[1])
	return s.printList()
}
