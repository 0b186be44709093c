// Package viz renders routed cost fields as plots and HTML reports.
package viz

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/heatpath/field"
)

const (
	// paletteColors is the number of discrete colors in the heatmap ramp.
	paletteColors = 100
	// plotSide is the rendered square plot size.
	plotSide = 7 * vg.Inch
)

// costGrid adapts a cost field to the plotter grid contract. Plot rows grow
// upward while image rows grow downward, so Z flips the row index to keep
// the image's top row at the top of the plot.
type costGrid struct {
	f *field.Field
}

func (g costGrid) Dims() (c, r int) { return g.f.Width(), g.f.Height() }

func (g costGrid) Z(c, r int) float64 { return float64(g.f.Cost(c, g.f.Height()-1-r)) }

func (g costGrid) X(c int) float64 { return float64(c) }

func (g costGrid) Y(r int) float64 { return float64(r) }

// Heatmap builds a heatmap plot of the field with the route, if any, drawn
// as a black polyline on top.
func Heatmap(f *field.Field, route []field.Pos2, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pal := moreland.SmoothBlueRed().Palette(paletteColors)
	p.Add(plotter.NewHeatMap(costGrid{f: f}, pal))

	if len(route) > 1 {
		pts := make(plotter.XYs, len(route))
		for i, rp := range route {
			pts[i].X = float64(rp.X)
			pts[i].Y = float64(f.Height() - 1 - rp.Y)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("viz: route line: %w", err)
		}
		line.Color = color.RGBA{A: 255}
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("route", line)
		p.Legend.Top = true
	}

	return p, nil
}

// WriteHeatmapPNG renders the heatmap as PNG bytes into w.
func WriteHeatmapPNG(w io.Writer, f *field.Field, route []field.Pos2, title string) error {
	p, err := Heatmap(f, route, title)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(plotSide, plotSide, "png")
	if err != nil {
		return fmt.Errorf("viz: render heatmap: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("viz: write heatmap: %w", err)
	}

	return nil
}

// SaveHeatmapPNG renders the heatmap straight into a PNG file.
func SaveHeatmapPNG(path string, f *field.Field, route []field.Pos2, title string) error {
	p, err := Heatmap(f, route, title)
	if err != nil {
		return err
	}
	if err = p.Save(plotSide, plotSide, path); err != nil {
		return fmt.Errorf("viz: save heatmap %s: %w", path, err)
	}

	return nil
}
