// Package field defines core types and sentinel errors for cost fields,
// cost volumes, and the movement rules over them.
package field

import (
	"errors"
	"fmt"
	"math"
)

// Impassable is the cell value treated as a hard wall. Moves never enter an
// impassable cell, and a start or end placed on one yields "no path".
const Impassable uint8 = math.MaxUint8

// Sentinel errors for field and volume construction and lookup.
var (
	// ErrEmptyField indicates the input grid has no rows or no columns.
	ErrEmptyField = errors.New("field: cost grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("field: width and height must be positive")
	// ErrLengthMismatch indicates a flat value slice whose length does not
	// equal width×height.
	ErrLengthMismatch = errors.New("field: flat value count must equal width*height")
	// ErrEmptyVolume indicates a volume with no layers.
	ErrEmptyVolume = errors.New("field: volume must have at least one layer")
	// ErrLayerMismatch indicates layers of differing width or height.
	ErrLayerMismatch = errors.New("field: all layers must share the same dimensions")
	// ErrOutOfBounds indicates a lookup outside the field or volume extents.
	ErrOutOfBounds = errors.New("field: position out of bounds")
	// ErrUnknownAxis indicates an axis name that is not x, y, or layer.
	ErrUnknownAxis = errors.New("field: unknown axis")
)

// Pos2 is an integer cell coordinate on a 2-D field.
type Pos2 struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Pos2) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Pos3 is an integer cell coordinate inside a 3-D volume. Layer indexes the
// stacking dimension (frame order for image sequences).
type Pos3 struct {
	X, Y, Layer int
}

// String renders the position as "(x,y,layer)".
func (p Pos3) String() string { return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Layer) }

// Axis selects which volume dimension is forced-monotonic during routing.
// The zero-based values match the conventional 0=x, 1=y, 2=layer numbering.
type Axis uint8

const (
	// AxisX forces movement along the column dimension.
	AxisX Axis = iota
	// AxisY forces movement along the row dimension.
	AxisY
	// AxisLayer forces movement along the stacking (time) dimension.
	// This is the default for temporal routing.
	AxisLayer
)

// String returns the lowercase axis name: "x", "y", or "layer".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisLayer:
		return "layer"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the three defined axes.
func (a Axis) Valid() bool { return a <= AxisLayer }

// Coord returns p's coordinate along axis a.
func (a Axis) Coord(p Pos3) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Layer
	}
}

// ParseAxis converts an axis name into an Axis value. Accepted names are
// "x", "y", "layer", and "time" (an alias for layer). Unknown names return
// ErrUnknownAxis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "layer", "time":
		return AxisLayer, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected x, y, or layer)", ErrUnknownAxis, s)
	}
}
