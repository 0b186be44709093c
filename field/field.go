package field

import "fmt"

// Field is an immutable 2-D grid of byte traversal costs. Cells are stored
// row-major; (x,y) addresses column x of row y. Construction deep-copies the
// input, and no mutation is exposed afterwards, so a Field may be read
// concurrently by any number of searches.
type Field struct {
	width, height int
	cells         []uint8
	minCost       uint8
}

// NewField constructs a Field from a non-empty, rectangular 2-D slice laid
// out as values[y][x]. The input is deep-copied.
// Returns ErrEmptyField if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewField(values [][]uint8) (*Field, error) {
	// 1) Reject empty input before touching any row.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyField
	}
	h, w := len(values), len(values[0])

	// 2) Verify every row matches the width of the first.
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// 3) Flatten with a deep copy so later caller mutation cannot leak in.
	cells := make([]uint8, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return newField(w, h, cells), nil
}

// NewFieldFlat constructs a Field from a flat row-major slice of length
// width×height. The input is copied.
// Returns ErrBadDimensions for non-positive extents and ErrLengthMismatch
// when the slice length disagrees with the extents.
// Complexity: O(W×H) time and memory.
func NewFieldFlat(width, height int, values []uint8) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrLengthMismatch, len(values), width, height)
	}

	cells := make([]uint8, len(values))
	copy(cells, values)

	return newField(width, height, cells), nil
}

// newField wraps an already-validated cell slice and records the minimum
// passable cost, the scaling factor used by admissible heuristics.
func newField(width, height int, cells []uint8) *Field {
	f := &Field{width: width, height: height, cells: cells}
	f.minCost = minPassable(cells)

	return f
}

// minPassable returns the smallest cost among non-wall cells, or 0 when
// every cell is impassable.
func minPassable(cells []uint8) uint8 {
	min := Impassable
	for _, c := range cells {
		if c < min {
			min = c
		}
	}
	if min == Impassable {
		return 0
	}

	return min
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Size returns the total cell count, width×height.
func (f *Field) Size() int { return f.width * f.height }

// MinCost returns the smallest cost among passable cells (0 if the field has
// a zero-cost cell, or if no cell is passable at all). Heuristic scaling
// uses this value to stay admissible.
func (f *Field) MinCost() uint8 { return f.minCost }

// InBounds reports whether (x,y) lies within the field boundaries.
// Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the cost at (x,y), or ErrOutOfBounds when the position lies
// outside the field. Complexity: O(1).
func (f *Field) At(x, y int) (uint8, error) {
	if !f.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d field", ErrOutOfBounds, x, y, f.width, f.height)
	}

	return f.cells[y*f.width+x], nil
}

// Cost returns the cost at (x,y) without an error path. The caller must have
// established bounds beforehand (move generation only emits in-bounds
// positions); a violation is an internal defect and panics.
func (f *Field) Cost(x, y int) uint8 {
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("field: internal lookup out of bounds: (%d,%d) in %dx%d", x, y, f.width, f.height))
	}

	return f.cells[y*f.width+x]
}

// Passable reports whether the in-bounds cell (x,y) can be entered.
func (f *Field) Passable(x, y int) bool {
	return f.Cost(x, y) != Impassable
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (f *Field) Index(x, y int) int {
	return y*f.width + x
}

// Coord converts a row-major index back to (x,y).
// Complexity: O(1).
func (f *Field) Coord(idx int) (x, y int) {
	return idx % f.width, idx / f.width
}
