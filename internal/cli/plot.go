package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/field"
	"github.com/katalvlaran/heatpath/internal/viz"
	"github.com/katalvlaran/heatpath/raster"
	"github.com/katalvlaran/heatpath/search"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	algo  string // algorithm name
	start string // "X,Y" start position
	end   string // "X,Y" end position
	out   string // output PNG path
}

// newPlotCmd creates the plot command: a heatmap rendering of one cost
// field with the found route drawn as a line.
func newPlotCmd() *cobra.Command {
	opts := plotOpts{
		algo: defaultAlgo,
		out:  "heatmap.png",
	}

	cmd := &cobra.Command{
		Use:   "plot IMAGE",
		Short: "Render a cost-field heatmap with the found route drawn on top",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("algo") && cfg.Algo != "" {
				opts.algo = cfg.Algo
			}

			return runPlot(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.algo, "algo", opts.algo, "algorithm: dijkstra, astar, fringe")
	cmd.Flags().StringVar(&opts.start, "start", "", "start position X,Y (required)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end position X,Y (required)")
	cmd.Flags().StringVar(&opts.out, "out", opts.out, "output PNG path")

	return cmd
}

// runPlot routes across the image and saves the heatmap. A missing route
// still renders the field, just without the polyline.
func runPlot(ctx context.Context, out io.Writer, path string, opts *plotOpts) error {
	logger := loggerFromContext(ctx)

	if opts.start == "" || opts.end == "" {
		return errors.New("start and end positions are required for plotting")
	}
	sx, sy, err := parsePoint(opts.start)
	if err != nil {
		return err
	}
	ex, ey, err := parsePoint(opts.end)
	if err != nil {
		return err
	}
	algo, err := search.ParseAlgo(opts.algo)
	if err != nil {
		return err
	}

	f, err := raster.Load(path)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	res, err := search.Field(f, field.Pos2{X: sx, Y: sy}, field.Pos2{X: ex, Y: ey},
		search.WithAlgorithm(algo))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Routed %d×%d field, expanded %d nodes", f.Width(), f.Height(), res.Expanded))

	if res.Found {
		fmt.Fprintf(out, "Path found with cost: %d\n", res.Cost)
	} else {
		fmt.Fprintln(out, "No path found!")
	}

	title := fmt.Sprintf("%s (%s)", filepath.Base(path), algo)
	if err = viz.SaveHeatmapPNG(opts.out, f, res.Path, title); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved plot to %s\n", opts.out)

	return nil
}
