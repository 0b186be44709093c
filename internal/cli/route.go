package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/field"
	"github.com/katalvlaran/heatpath/raster"
	"github.com/katalvlaran/heatpath/search"
)

const (
	defaultAlgo      = "astar"
	defaultAxis      = "layer"
	defaultReach     = 1
	defaultOutputDir = "/tmp"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	algo      string // algorithm name: dijkstra, astar, fringe
	start     string // "X,Y" start position; required for single images
	end       string // "X,Y" end position; required for single images
	reach     int    // sideways drift allowed per forced step
	axis      string // forced axis for frame sequences: x, y, layer
	outputDir string // directory for overlaid frames and route.txt
}

// newRouteCmd creates the route command. One input image routes in 2-D
// mode; several images stack into a volume and route frame to frame.
func newRouteCmd() *cobra.Command {
	opts := routeOpts{
		algo:      defaultAlgo,
		reach:     defaultReach,
		axis:      defaultAxis,
		outputDir: defaultOutputDir,
	}

	cmd := &cobra.Command{
		Use:   "route IMAGE...",
		Short: "Find a minimum-cost route across one image or a frame sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRouteConfig(cmd, configFromContext(cmd.Context()), &opts)

			return runRoute(cmd.Context(), cmd.OutOrStdout(), args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.algo, "algo", opts.algo, "algorithm: dijkstra, astar, fringe")
	cmd.Flags().StringVar(&opts.start, "start", "", "start position X,Y (single image: required; sequence: frame 0)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end position X,Y (single image: required; sequence: last frame)")
	cmd.Flags().IntVar(&opts.reach, "reach", opts.reach, "sideways cells reachable per forced step")
	cmd.Flags().StringVar(&opts.axis, "axis", opts.axis, "forced axis for sequences: x, y, layer")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", opts.outputDir, "directory for overlaid frames and route.txt")

	return cmd
}

// applyRouteConfig fills flag defaults from the loaded config file. Flags
// the user set explicitly always win.
func applyRouteConfig(cmd *cobra.Command, cfg *fileConfig, opts *routeOpts) {
	if !cmd.Flags().Changed("algo") && cfg.Algo != "" {
		opts.algo = cfg.Algo
	}
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		opts.outputDir = cfg.OutputDir
	}
	if !cmd.Flags().Changed("reach") && cfg.Reach != nil {
		opts.reach = *cfg.Reach
	}
	if !cmd.Flags().Changed("axis") && cfg.Axis != "" {
		opts.axis = cfg.Axis
	}
}

// runRoute dispatches between single-image and frame-sequence routing.
func runRoute(ctx context.Context, out io.Writer, images []string, opts *routeOpts) error {
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	algo, err := search.ParseAlgo(opts.algo)
	if err != nil {
		return err
	}

	if len(images) == 1 {
		return routeImage(ctx, out, images[0], algo, opts)
	}

	return routeFrames(ctx, out, images, algo, opts)
}

// routeImage routes across a single image between explicit endpoints.
func routeImage(ctx context.Context, out io.Writer, path string, algo search.Algo, opts *routeOpts) error {
	logger := loggerFromContext(ctx)
	fmt.Fprintf(out, "Running 2D pathfinding on %s\n", path)

	if opts.start == "" {
		return errors.New("start position is required for 2D pathfinding")
	}
	if opts.end == "" {
		return errors.New("end position is required for 2D pathfinding")
	}
	sx, sy, err := parsePoint(opts.start)
	if err != nil {
		return err
	}
	ex, ey, err := parsePoint(opts.end)
	if err != nil {
		return err
	}

	f, err := raster.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("decoded image", "width", f.Width(), "height", f.Height())

	p := newProgress(logger)
	res, err := search.Field(f, field.Pos2{X: sx, Y: sy}, field.Pos2{X: ex, Y: ey},
		search.WithAlgorithm(algo))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Routed %d×%d field, expanded %d nodes", f.Width(), f.Height(), res.Expanded))

	if !res.Found {
		fmt.Fprintln(out, "No path found!")
		return nil
	}
	fmt.Fprintf(out, "Path found with cost: %d\n", res.Cost)

	src, err := raster.LoadImage(path)
	if err != nil {
		return err
	}
	outPath := filepath.Join(opts.outputDir, filepath.Base(path))
	if err = raster.Save(outPath, raster.Overlay(src, res.Path)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved result to %s\n", outPath)

	return nil
}

// routeFrames stacks the images into a volume and routes along the forced
// axis, then writes route.txt and one overlaid copy of every frame.
func routeFrames(ctx context.Context, out io.Writer, images []string, algo search.Algo, opts *routeOpts) error {
	logger := loggerFromContext(ctx)
	fmt.Fprintf(out, "Running temporal routing on %d frames\n", len(images))
	fmt.Fprintf(out, "Reach: %d, Axis: %s\n", opts.reach, opts.axis)

	if algo == search.Fringe {
		return errors.New("fringe is not supported for temporal routing; use dijkstra or astar")
	}
	axis, err := field.ParseAxis(opts.axis)
	if err != nil {
		return err
	}

	v, err := raster.LoadVolume(images)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Volume shape: [%d, %d, %d]\n", v.Layers(), v.Height(), v.Width())

	searchOpts := []search.Option{
		search.WithAlgorithm(algo),
		search.WithReach(opts.reach),
		search.WithAxis(axis),
	}
	if opts.start != "" {
		sx, sy, perr := parsePoint(opts.start)
		if perr != nil {
			return perr
		}
		start := field.Pos3{X: sx, Y: sy, Layer: 0}
		searchOpts = append(searchOpts, search.WithStarts(start))
		fmt.Fprintf(out, "Start positions: [%v]\n", start)
	} else {
		fmt.Fprintln(out, "Using default start positions (all positions at axis=0)")
	}
	if opts.end != "" {
		ex, ey, perr := parsePoint(opts.end)
		if perr != nil {
			return perr
		}
		end := field.Pos3{X: ex, Y: ey, Layer: v.Layers() - 1}
		searchOpts = append(searchOpts, search.WithEnds(end))
		fmt.Fprintf(out, "End positions: [%v]\n", end)
	} else {
		fmt.Fprintln(out, "Using default end positions (all positions at axis=-1)")
	}

	p := newProgress(logger)
	res, err := search.Volume(v, searchOpts...)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Routed %d-frame volume, expanded %d nodes", v.Layers(), res.Expanded))

	if !res.Found {
		fmt.Fprintln(out, "No path found!")
		return nil
	}
	fmt.Fprintf(out, "Path found with cost: %d\n", res.Cost)
	fmt.Fprintf(out, "Path length: %d points\n", len(res.Path))

	routePath := filepath.Join(opts.outputDir, "route.txt")
	if err = saveRouteFile(routePath, res.Path, len(images), res.Cost); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved route to %s\n", routePath)

	for frame, imgPath := range images {
		src, lerr := raster.LoadImage(imgPath)
		if lerr != nil {
			return lerr
		}
		outPath := filepath.Join(opts.outputDir, filepath.Base(imgPath))
		if err = raster.Save(outPath, raster.Overlay(src, framePoints(res.Path, frame))); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Saved %d frames to %s\n", len(images), opts.outputDir)

	return nil
}

// framePoints picks the route positions belonging to one frame, in route
// order.
func framePoints(path []field.Pos3, frame int) []field.Pos2 {
	var pts []field.Pos2
	for _, p := range path {
		if p.Layer == frame {
			pts = append(pts, field.Pos2{X: p.X, Y: p.Y})
		}
	}

	return pts
}

// parsePoint parses an "X,Y" flag value.
func parsePoint(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid position %q (expected X,Y)", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("invalid position %q (expected X,Y)", s)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("invalid position %q (expected X,Y)", s)
	}

	return x, y, nil
}
