package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/engine"
	"github.com/piwi3910/LoadPack/internal/export"
)

func newCompareCmd(root *rootOpts) *cobra.Command {
	var input inputOpts
	var chart string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Pack the same items under alternative scenarios",
		Long:  `Compare packs the items with the current settings, with rotation toggled and in the transposed container, and reports which scenario wastes the least area.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			container, err := input.resolveContainer(cfg, root.loadInventory)
			if err != nil {
				return err
			}
			items, err := input.items(cmd, cfg, logger)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			scenarios := engine.BuildDefaultScenarios(container, input.settings(cfg))
			results, err := engine.CompareScenarios(scenarios, items, engine.WithLogger(logger))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

			printComparison(out, results)

			if chart != "" {
				if err := export.ExportComparisonChartFile(chart, results); err != nil {
					return fmt.Errorf("failed to write chart: %w", err)
				}
				printNewline(out)
				printFile(out, chart)
			}
			return nil
		},
	}

	input.addFlags(cmd)
	cmd.Flags().StringVar(&chart, "chart", "", "write an HTML bar chart of the comparison")
	return cmd
}

func printComparison(w io.Writer, results []engine.ComparisonResult) {
	printTitle(w, "Scenario comparison")
	fmt.Fprintf(w, "  %-28s %8s %10s %12s %10s\n", "Scenario", "Placed", "Unplaced", "Wasted area", "Efficiency")
	for _, r := range results {
		fmt.Fprintf(w, "  %-28s %8d %10d %12g %9.1f%%\n",
			r.Scenario.Name, r.PlacedCount, r.UnplacedCount, r.WastedArea, r.Efficiency)
	}
	if best, ok := engine.Best(results); ok {
		printNewline(w)
		printSuccess(w, "Best: %s (wasted area %g)", best.Scenario.Name, best.WastedArea)
	}
}
