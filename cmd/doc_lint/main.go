// Package main provides the entry point for the doc-lint CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doc-lint <path-or-glob>...",
	Short: "Lint Markdown documentation",
	Long: "doc-lint validates Markdown documentation trees: YAML frontmatter presence and schema, " +
		"heading structure per document type, and relative link and anchor resolution.",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runLint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// commandError carries the process exit code a failed command asks for.
type commandError struct {
	Code int
	Err  error
}

func (e *commandError) Error() string {
	return e.Err.Error()
}

func (e *commandError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps a command failure to the process exit code. Untagged
// errors are invocation failures (bad flags, unknown paths, bad config) and
// exit with 2; lint findings tag themselves with code 1.
func exitCodeFor(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return 2
}
