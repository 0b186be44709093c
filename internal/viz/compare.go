// Package viz - algorithm comparison reports.
package viz

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// AlgoStat captures one algorithm's outcome for the comparison report.
type AlgoStat struct {
	// Algo is the display name, e.g. "dijkstra".
	Algo string
	// Cost is the total route cost, zero when no route was found.
	Cost int64
	// Expanded counts the nodes the run settled.
	Expanded int
	// Found reports whether a route exists.
	Found bool
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// CompareReport renders an HTML page with two bar charts over the same
// algorithms: total route cost and expanded node counts.
func CompareReport(w io.Writer, stats []AlgoStat, title string) error {
	names := make([]string, len(stats))
	costs := make([]opts.BarData, len(stats))
	expanded := make([]opts.BarData, len(stats))
	for i, st := range stats {
		names[i] = st.Algo
		if !st.Found {
			names[i] = st.Algo + " (no path)"
		}
		costs[i] = opts.BarData{Value: st.Cost}
		expanded[i] = opts.BarData{Value: st.Expanded}
	}

	costBar := charts.NewBar()
	costBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Route cost", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	costBar.SetXAxis(names).
		AddSeries("cost", costs,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	expBar := charts.NewBar()
	expBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Expanded nodes", Subtitle: elapsedSubtitle(stats)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	expBar.SetXAxis(names).
		AddSeries("expanded", expanded,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(costBar, expBar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("viz: render report: %w", err)
	}

	return nil
}

// elapsedSubtitle folds the run durations into one subtitle line.
func elapsedSubtitle(stats []AlgoStat) string {
	sub := ""
	for i, st := range stats {
		if i > 0 {
			sub += "  "
		}
		sub += fmt.Sprintf("%s %s", st.Algo, st.Elapsed.Round(time.Microsecond))
	}

	return sub
}
