package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/heatpath/raster"
)

func TestPlotCommandWritesHeatmap(t *testing.T) {
	dir := t.TempDir()
	frame := writeFrame(t, dir, "map.png", [][]uint8{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	outPath := filepath.Join(dir, "heat.png")

	out, err := runCommand(t, newPlotCmd(), frame,
		"--start", "0,0", "--end", "2,0", "--out", outPath)
	if err != nil {
		t.Fatalf("plot error: %v\noutput:\n%s", err, out)
	}

	for _, want := range []string{
		"Path found with cost:",
		"Saved plot to " + outPath,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	img, err := raster.LoadImage(outPath)
	if err != nil {
		t.Fatalf("LoadImage(plot) error: %v", err)
	}
	if img.Bounds().Empty() {
		t.Error("plot image has empty bounds")
	}
}

func TestPlotCommandRendersWithoutRoute(t *testing.T) {
	dir := t.TempDir()
	frame := writeFrame(t, dir, "sealed.png", [][]uint8{
		{1, 255, 1},
		{1, 255, 1},
	})
	outPath := filepath.Join(dir, "heat.png")

	out, err := runCommand(t, newPlotCmd(), frame,
		"--start", "0,0", "--end", "2,0", "--out", outPath)
	if err != nil {
		t.Fatalf("plot error: %v\noutput:\n%s", err, out)
	}

	// The field still renders, just without the route polyline.
	if !strings.Contains(out, "No path found!") {
		t.Errorf("output missing the no-path message:\n%s", out)
	}
	if _, err = raster.LoadImage(outPath); err != nil {
		t.Errorf("LoadImage(plot) error: %v", err)
	}
}

func TestPlotCommandMissingEndpoints(t *testing.T) {
	dir := t.TempDir()
	frame := writeFrame(t, dir, "map.png", [][]uint8{{0, 0}})

	_, err := runCommand(t, newPlotCmd(), frame)
	if err == nil {
		t.Fatal("plot without endpoints should fail")
	}
	if !strings.Contains(err.Error(), "start and end positions are required") {
		t.Errorf("error = %q, want mention of the missing endpoints", err)
	}
}
