// Package cli holds the leaguelogic command tree.
package cli

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// All linker flags will be set at build time.
var (
	version = "dev"
	commit  = "none"
)

var errorColor = color.New(color.FgRed, color.Bold)

// NewRootCommand builds the leaguelogic command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "leaguelogic",
		Short: "LeagueLogic tooling: OpenAPI checks and tip log summaries",
		Long: `Command line companion to the LeagueLogic investor dashboard.

Examples:
  # Validate the API description in the working directory
  leaguelogic check

  # Validate a specific file
  leaguelogic check api/openapi.yaml

  # Print the dashboard tiles using the configured source
  leaguelogic summary`,
		Version:       version + " (" + commit + ")",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newCheckCommand(), newSummaryCommand())
	return root
}

// Execute runs the command tree with args and returns the process exit code.
// Failures are printed in red on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = errorColor.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
