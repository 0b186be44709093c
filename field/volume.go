package field

import "fmt"

// Volume is an immutable 3-D stack of byte traversal costs indexed
// (layer, row, col). Layer 0 is the first frame of a sequence. Storage is a
// single flat slice in layer-major order; positions are implicit in
// coordinates, so no per-node allocation ever happens.
type Volume struct {
	width, height, layers int
	cells                 []uint8
	minCost               uint8
}

// NewVolume constructs a Volume from layers[layer][y][x]. Every layer must
// be non-empty, rectangular, and share the dimensions of the first layer.
// The input is deep-copied.
// Returns ErrEmptyVolume, ErrEmptyField, ErrNonRectangular, or
// ErrLayerMismatch (each wrapped with the offending layer).
// Complexity: O(W×H×L) time and memory.
func NewVolume(layers [][][]uint8) (*Volume, error) {
	// 1) At least one layer.
	if len(layers) == 0 {
		return nil, ErrEmptyVolume
	}

	// 2) Validate the first layer and fix the shared dimensions.
	if len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, fmt.Errorf("%w: layer 0", ErrEmptyField)
	}
	h, w := len(layers[0]), len(layers[0][0])

	// 3) Validate every layer against those dimensions while flattening.
	cells := make([]uint8, 0, w*h*len(layers))
	for l, layer := range layers {
		if len(layer) != h {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrLayerMismatch, l, len(layer), h)
		}
		for y, row := range layer {
			if len(row) != w {
				return nil, fmt.Errorf("%w: layer %d row %d has %d cells, want %d", ErrNonRectangular, l, y, len(row), w)
			}
			cells = append(cells, row...)
		}
	}

	return newVolume(w, h, len(layers), cells), nil
}

// NewVolumeFromFields stacks already-built fields into a Volume, layer 0
// first. All fields must share dimensions.
// Complexity: O(W×H×L) time and memory.
func NewVolumeFromFields(fields []*Field) (*Volume, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyVolume
	}
	if fields[0] == nil {
		return nil, fmt.Errorf("%w: layer 0 is nil", ErrEmptyField)
	}
	w, h := fields[0].Width(), fields[0].Height()

	cells := make([]uint8, 0, w*h*len(fields))
	for l, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("%w: layer %d is nil", ErrEmptyField, l)
		}
		if f.Width() != w || f.Height() != h {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, want %dx%d", ErrLayerMismatch, l, f.Width(), f.Height(), w, h)
		}
		cells = append(cells, f.cells...)
	}

	return newVolume(w, h, len(fields), cells), nil
}

func newVolume(width, height, layers int, cells []uint8) *Volume {
	v := &Volume{width: width, height: height, layers: layers, cells: cells}
	v.minCost = minPassable(cells)

	return v
}

// Width returns the number of columns per layer.
func (v *Volume) Width() int { return v.width }

// Height returns the number of rows per layer.
func (v *Volume) Height() int { return v.height }

// Layers returns the number of stacked layers.
func (v *Volume) Layers() int { return v.layers }

// Size returns the total cell count, width×height×layers.
func (v *Volume) Size() int { return v.width * v.height * v.layers }

// MinCost returns the smallest cost among passable cells (0 when a zero-cost
// cell exists, or when nothing is passable).
func (v *Volume) MinCost() uint8 { return v.minCost }

// InBounds reports whether p lies within the volume extents.
// Complexity: O(1).
func (v *Volume) InBounds(p Pos3) bool {
	return p.X >= 0 && p.X < v.width &&
		p.Y >= 0 && p.Y < v.height &&
		p.Layer >= 0 && p.Layer < v.layers
}

// At returns the cost at p, or ErrOutOfBounds when p lies outside the
// volume. Complexity: O(1).
func (v *Volume) At(p Pos3) (uint8, error) {
	if !v.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%dx%d volume", ErrOutOfBounds, p, v.width, v.height, v.layers)
	}

	return v.cells[v.Index(p)], nil
}

// Cost returns the cost at p without an error path. The caller must have
// established bounds beforehand; a violation is an internal defect and
// panics.
func (v *Volume) Cost(p Pos3) uint8 {
	if !v.InBounds(p) {
		panic(fmt.Sprintf("field: internal lookup out of bounds: %v in %dx%dx%d", p, v.width, v.height, v.layers))
	}

	return v.cells[v.Index(p)]
}

// Passable reports whether the in-bounds cell p can be entered.
func (v *Volume) Passable(p Pos3) bool {
	return v.Cost(p) != Impassable
}

// Index maps p to its layer-major flat index: (layer*Height + y)*Width + x.
// Complexity: O(1).
func (v *Volume) Index(p Pos3) int {
	return (p.Layer*v.height+p.Y)*v.width + p.X
}

// Coord converts a layer-major flat index back into a position.
// Complexity: O(1).
func (v *Volume) Coord(idx int) Pos3 {
	return Pos3{
		X:     idx % v.width,
		Y:     (idx / v.width) % v.height,
		Layer: idx / (v.width * v.height),
	}
}

// AxisExtent returns the number of slices along axis a: Width for AxisX,
// Height for AxisY, Layers for AxisLayer.
func (v *Volume) AxisExtent(a Axis) int {
	switch a {
	case AxisX:
		return v.width
	case AxisY:
		return v.height
	default:
		return v.layers
	}
}

// SlicePositions returns every in-bounds position whose coordinate along
// axis a equals s, enumerated in flat-index order. Used to materialize the
// default "anywhere on the first/last slice" endpoint sets.
// Complexity: O(slice size) time and memory.
func (v *Volume) SlicePositions(a Axis, s int) []Pos3 {
	var out []Pos3
	switch a {
	case AxisX:
		out = make([]Pos3, 0, v.height*v.layers)
		for l := 0; l < v.layers; l++ {
			for y := 0; y < v.height; y++ {
				out = append(out, Pos3{X: s, Y: y, Layer: l})
			}
		}
	case AxisY:
		out = make([]Pos3, 0, v.width*v.layers)
		for l := 0; l < v.layers; l++ {
			for x := 0; x < v.width; x++ {
				out = append(out, Pos3{X: x, Y: s, Layer: l})
			}
		}
	default:
		out = make([]Pos3, 0, v.width*v.height)
		for y := 0; y < v.height; y++ {
			for x := 0; x < v.width; x++ {
				out = append(out, Pos3{X: x, Y: y, Layer: s})
			}
		}
	}

	return out
}
