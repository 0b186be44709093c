// Package search_test provides lightweight testing helpers shared across
// *_test.go files in this package: fixture constructors, path-cost
// recomputation, and structural route checks.
package search_test

import (
	"testing"

	"github.com/katalvlaran/heatpath/field"
)

// mustField builds a Field from rows and fails the test on error.
func mustField(t *testing.T, rows [][]uint8) *field.Field {
	t.Helper()
	f, err := field.NewField(rows)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	return f
}

// mustVolume builds a Volume from layers and fails the test on error.
func mustVolume(t *testing.T, layers [][][]uint8) *field.Volume {
	t.Helper()
	v, err := field.NewVolume(layers)
	if err != nil {
		t.Fatalf("NewVolume failed: %v", err)
	}

	return v
}

// uniformLayers builds layers×h×w cells all holding v.
func uniformLayers(layers, h, w int, v uint8) [][][]uint8 {
	out := make([][][]uint8, layers)
	for l := 0; l < layers; l++ {
		rows := make([][]uint8, h)
		for y := 0; y < h; y++ {
			row := make([]uint8, w)
			for x := 0; x < w; x++ {
				row[x] = v
			}
			rows[y] = row
		}
		out[l] = rows
	}

	return out
}

// sumPath2 recomputes a route's cost from the field, start inclusive.
func sumPath2(f *field.Field, path []field.Pos2) int64 {
	var total int64
	for _, p := range path {
		total += int64(f.Cost(p.X, p.Y))
	}

	return total
}

// sumPath3 recomputes a route's cost from the volume, start inclusive.
func sumPath3(v *field.Volume, path []field.Pos3) int64 {
	var total int64
	for _, p := range path {
		total += int64(v.Cost(p))
	}

	return total
}

// checkForcedAdvance asserts the structural route invariants: the forced
// coordinate grows by exactly 1 per step and the in-slice Chebyshev
// displacement never exceeds reach.
func checkForcedAdvance(t *testing.T, path []field.Pos3, axis field.Axis, reach int) {
	t.Helper()
	var prev, cur field.Pos3
	for i := 1; i < len(path); i++ {
		prev, cur = path[i-1], path[i]
		if axis.Coord(cur) != axis.Coord(prev)+1 {
			t.Fatalf("step %d: forced axis %v moved %d → %d; want +1", i, axis, axis.Coord(prev), axis.Coord(cur))
		}
		if d := freeChebyshev(prev, cur, axis); d > reach {
			t.Fatalf("step %d: in-slice displacement %d exceeds reach %d (%v → %v)", i, d, reach, prev, cur)
		}
	}
}

// freeChebyshev is the Chebyshev distance over the two non-forced
// dimensions.
func freeChebyshev(a, b field.Pos3, axis field.Axis) int {
	var d1, d2 int
	switch axis {
	case field.AxisX:
		d1, d2 = a.Y-b.Y, a.Layer-b.Layer
	case field.AxisY:
		d1, d2 = a.X-b.X, a.Layer-b.Layer
	default:
		d1, d2 = a.X-b.X, a.Y-b.Y
	}
	if d1 < 0 {
		d1 = -d1
	}
	if d2 < 0 {
		d2 = -d2
	}
	if d2 > d1 {
		d1 = d2
	}

	return d1
}
