package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/strlist/cmd/strlistctl/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	encodingName string
	maxBytes     int
	opBytes      int
	useArena     bool
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "strlistctl",
	Short: "Load text lines into a string list and transform them",
	Long: `strlistctl reads newline-separated input into a string list and runs a
single list operation on it: sort, de-duplicate, remove, look up, replace, or
report allocation statistics. Input can be any file or "-" for stdin, decoded
from a legacy encoding when --encoding is given.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{
			Enabled: verbose || logFile != "",
			Level:   slog.LevelDebug,
			LogFile: logFile,
		})
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encodingName, "encoding", "raw", "Input encoding (raw, utf-8, windows-1252, iso-8859-1, utf-16le, utf-16be)")
	rootCmd.PersistentFlags().
		IntVar(&maxBytes, "max-bytes", 0, "Fail once the list holds more than this many bytes (0 = unlimited)")
	rootCmd.PersistentFlags().
		IntVar(&opBytes, "op-bytes", 0, "Bytes the operation may allocate after the input is loaded (0 = unlimited)")
	rootCmd.PersistentFlags().
		BoolVar(&useArena, "arena", false, "Allocate strings from an mmap-backed arena")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Write debug logs as JSON to this file")
}

func execute() {
	if err := run(os.Args[1:]); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// run executes the command line in args. PersistentPostRunE is skipped when a
// command fails, so the failure is logged and the log file closed here.
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "args", args, "err", err)
		_ = logger.Close()
	}
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
