package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/heatpath/field"
)

// writeRouteFile emits the plain-text route format: a commented header with
// the totals, then one line per frame listing that frame's x y pairs in
// route order. Frames the route never visits still get their line.
func writeRouteFile(w io.Writer, path []field.Pos3, frames int, cost int64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Route file: each line contains the frame number and x y coordinates for that frame")
	fmt.Fprintln(bw, "# Format: frame_number x1 y1 x2 y2 ...")
	fmt.Fprintf(bw, "# Total cost: %d\n", cost)
	fmt.Fprintf(bw, "# Total path length: %d points\n", len(path))

	for frame := 0; frame < frames; frame++ {
		fmt.Fprintf(bw, "%d", frame)
		for _, p := range path {
			if p.Layer == frame {
				fmt.Fprintf(bw, " %d %d", p.X, p.Y)
			}
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// saveRouteFile writes the route format into a file.
func saveRouteFile(path string, route []field.Pos3, frames int, cost int64) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create route file: %w", err)
	}

	if err = writeRouteFile(fh, route, frames, cost); err != nil {
		fh.Close()
		return fmt.Errorf("write route file: %w", err)
	}
	if err = fh.Close(); err != nil {
		return fmt.Errorf("close route file: %w", err)
	}

	return nil
}
