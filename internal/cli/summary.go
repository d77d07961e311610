package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/okian/leaguelogic/internal/adapters/source"
	app "github.com/okian/leaguelogic/internal/app"
	"github.com/okian/leaguelogic/internal/config"
	"github.com/okian/leaguelogic/internal/domain/summary"
	"github.com/okian/leaguelogic/pkg/logger"
)

func newSummaryCommand() *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard metric tiles for the configured tip log",
		Long: `Run the same load and aggregation as the dashboard and print the four
metric tiles as a table. The source is taken from LEAGUELOGIC_* configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			settings := cfg.SourceSettings()
			if demo {
				settings.Kind = source.KindDemo
			}
			src, err := source.Open(settings)
			if err != nil {
				return err
			}

			svc := app.New(
				app.WithLogger(logger.Get().Named("cli")),
				app.WithSource(src),
				app.WithColumns(cfg.ColumnNames()),
				app.WithRenderTimeout(cfg.RenderTimeout()),
			)
			snap, err := svc.Compute(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Source: %s (%d tips)\n", snap.Source, snap.Summary.Total); err != nil {
				return err
			}
			return printTiles(out, snap.Summary.Tiles())
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in sample tip log")
	return cmd
}

// printTiles renders tiles as a two-column table.
func printTiles(w io.Writer, tiles []summary.Tile) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(tiles))
	for _, t := range tiles {
		data = append(data, []string{t.Label, t.Value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
