package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/LoadPack/internal/engine"
)

// ExportComparisonChart renders an HTML bar chart of wasted area and placed
// item count per scenario.
func ExportComparisonChart(w io.Writer, results []engine.ComparisonResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no scenarios to chart")
	}

	names := make([]string, 0, len(results))
	waste := make([]opts.BarData, 0, len(results))
	placed := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		names = append(names, r.Scenario.Name)
		waste = append(waste, opts.BarData{Value: r.WastedArea})
		placed = append(placed, opts.BarData{Value: r.PlacedCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Scenario Comparison",
			Subtitle: "Wasted area and placed items per scenario",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)
	bar.SetXAxis(names).
		AddSeries("Wasted area", waste).
		AddSeries("Placed items", placed)

	return bar.Render(w)
}

// ExportComparisonChartFile writes the comparison chart to an HTML file.
func ExportComparisonChartFile(path string, results []engine.ComparisonResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	return ExportComparisonChart(f, results)
}
