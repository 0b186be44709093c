package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/field"
	"github.com/katalvlaran/heatpath/internal/viz"
	"github.com/katalvlaran/heatpath/raster"
	"github.com/katalvlaran/heatpath/search"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	start string // "X,Y" start position; required for single images
	end   string // "X,Y" end position; required for single images
	reach int    // sideways drift for frame sequences
	axis  string // forced axis for frame sequences
	out   string // output HTML report path
}

// newCompareCmd creates the compare command: every applicable algorithm
// runs on the same input and the outcomes land in one HTML report.
func newCompareCmd() *cobra.Command {
	opts := compareOpts{
		reach: defaultReach,
		axis:  defaultAxis,
		out:   "compare.html",
	}

	cmd := &cobra.Command{
		Use:   "compare IMAGE...",
		Short: "Run every applicable algorithm on one input and report the outcomes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("reach") && cfg.Reach != nil {
				opts.reach = *cfg.Reach
			}
			if !cmd.Flags().Changed("axis") && cfg.Axis != "" {
				opts.axis = cfg.Axis
			}

			return runCompare(cmd.Context(), cmd.OutOrStdout(), args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start position X,Y (single image: required)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end position X,Y (single image: required)")
	cmd.Flags().IntVar(&opts.reach, "reach", opts.reach, "sideways cells reachable per forced step")
	cmd.Flags().StringVar(&opts.axis, "axis", opts.axis, "forced axis for sequences: x, y, layer")
	cmd.Flags().StringVar(&opts.out, "out", opts.out, "output HTML report path")

	return cmd
}

// runCompare fans the applicable algorithms out over goroutines, prints a
// result table, and renders the report.
func runCompare(ctx context.Context, out io.Writer, images []string, opts *compareOpts) error {
	logger := loggerFromContext(ctx)

	run, algos, title, err := compareRunner(images, opts)
	if err != nil {
		return err
	}

	stats := make([]viz.AlgoStat, len(algos))
	errs := make([]error, len(algos))
	var wg sync.WaitGroup
	for i, algo := range algos {
		wg.Add(1)
		go func(i int, algo search.Algo) {
			defer wg.Done()
			began := time.Now()
			cost, expanded, found, rerr := run(algo)
			stats[i] = viz.AlgoStat{
				Algo:     algo.String(),
				Cost:     cost,
				Expanded: expanded,
				Found:    found,
				Elapsed:  time.Since(began),
			}
			errs[i] = rerr
		}(i, algo)
	}
	wg.Wait()
	for _, rerr := range errs {
		if rerr != nil {
			return rerr
		}
	}

	for _, st := range stats {
		logger.Info("run complete", "algo", st.Algo, "cost", st.Cost,
			"expanded", st.Expanded, "found", st.Found, "elapsed", st.Elapsed)
		if st.Found {
			fmt.Fprintf(out, "%-10s cost=%-8d expanded=%-9d time=%s\n",
				st.Algo, st.Cost, st.Expanded, st.Elapsed.Round(time.Microsecond))
			continue
		}
		fmt.Fprintf(out, "%-10s no path  expanded=%-9d time=%s\n",
			st.Algo, st.Expanded, st.Elapsed.Round(time.Microsecond))
	}

	fh, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err = viz.CompareReport(fh, stats, title); err != nil {
		fh.Close()
		return err
	}
	if err = fh.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	fmt.Fprintf(out, "Saved report to %s\n", opts.out)

	return nil
}

// compareRunner builds the per-algorithm closure for the given input: all
// three algorithms across one image, Dijkstra and A* across a sequence.
func compareRunner(images []string, opts *compareOpts) (func(search.Algo) (int64, int, bool, error), []search.Algo, string, error) {
	if len(images) == 1 {
		if opts.start == "" || opts.end == "" {
			return nil, nil, "", errors.New("start and end positions are required for single images")
		}
		sx, sy, err := parsePoint(opts.start)
		if err != nil {
			return nil, nil, "", err
		}
		ex, ey, err := parsePoint(opts.end)
		if err != nil {
			return nil, nil, "", err
		}
		f, err := raster.Load(images[0])
		if err != nil {
			return nil, nil, "", err
		}

		run := func(algo search.Algo) (int64, int, bool, error) {
			res, rerr := search.Field(f, field.Pos2{X: sx, Y: sy}, field.Pos2{X: ex, Y: ey},
				search.WithAlgorithm(algo))
			return res.Cost, res.Expanded, res.Found, rerr
		}
		title := fmt.Sprintf("%s, %s to %s", images[0], opts.start, opts.end)

		return run, []search.Algo{search.Dijkstra, search.AStar, search.Fringe}, title, nil
	}

	axis, err := field.ParseAxis(opts.axis)
	if err != nil {
		return nil, nil, "", err
	}
	v, err := raster.LoadVolume(images)
	if err != nil {
		return nil, nil, "", err
	}

	run := func(algo search.Algo) (int64, int, bool, error) {
		res, rerr := search.Volume(v,
			search.WithAlgorithm(algo),
			search.WithReach(opts.reach),
			search.WithAxis(axis),
		)
		return res.Cost, res.Expanded, res.Found, rerr
	}
	title := fmt.Sprintf("%d frames, axis %s, reach %d", len(images), opts.axis, opts.reach)

	return run, []search.Algo{search.Dijkstra, search.AStar}, title, nil
}
