package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/leaguelogic/internal/specchecker"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate an OpenAPI document (default " + specchecker.DefaultFile + ")",
		Long: `Load a YAML OpenAPI document and validate it against the OpenAPI rules.

Prints "<file> is valid." on success. On failure the first violation is printed
on stderr and the command exits with status 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := specchecker.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := specchecker.CheckFile(cmd.Context(), path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
			return err
		},
	}
}
