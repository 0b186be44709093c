// Package fieldgen - synthetic field and volume builders.
//
// Design principles:
//   - Validation first: dimensions are rejected before any allocation.
//   - Determinism: all randomness flows through the rng.go streams.
//   - Compatibility: builders return whatever the field constructors accept,
//     with no private invariants of their own.
package fieldgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatpath/field"
)

const (
	// defaultUniformCost is the cell value New uses for the Uniform kind.
	defaultUniformCost uint8 = 1
	// wallRate makes one cell in wallRate impassable in random terrain.
	wallRate = 10
	// costCeiling caps random passable costs well below field.Impassable.
	costCeiling = 200
	// baseCeiling caps the cheap base terrain around a generated wall.
	baseCeiling = 32
	// gradientCeiling is the rim cost of a radial gradient; one below the
	// wall value so the whole field stays passable.
	gradientCeiling = 254
)

// New builds a field of the given kind. Uniform fields use
// defaultUniformCost; Gradient ignores the seed.
func New(kind Kind, width, height int, seed int64) (*field.Field, error) {
	switch kind {
	case Uniform:
		return UniformField(width, height, defaultUniformCost)
	case Random:
		return RandomField(width, height, seed)
	case Wall:
		return WallField(width, height, seed)
	case Gradient:
		return GradientField(width, height)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// UniformField fills a width×height field with a single cost value.
func UniformField(width, height int, cost uint8) (*field.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDims, width, height)
	}

	cells := make([]uint8, width*height)
	for i := range cells {
		cells[i] = cost
	}

	return field.NewFieldFlat(width, height, cells)
}

// RandomField draws every cell from the seeded stream: one cell in wallRate
// is a wall, the rest stay below costCeiling.
func RandomField(width, height int, seed int64) (*field.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDims, width, height)
	}

	rng := rngFromSeed(seed)
	cells := make([]uint8, width*height)
	for i := range cells {
		if rng.Intn(wallRate) == 0 {
			cells[i] = field.Impassable
			continue
		}
		cells[i] = uint8(rng.Intn(costCeiling))
	}

	return field.NewFieldFlat(width, height, cells)
}

// WallField lays cheap random terrain, then seals the middle column except
// for a single opening at a seeded row.
func WallField(width, height int, seed int64) (*field.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDims, width, height)
	}

	rng := rngFromSeed(seed)
	cells := make([]uint8, width*height)
	for i := range cells {
		cells[i] = uint8(rng.Intn(baseCeiling))
	}

	wallX := width / 2
	opening := rng.Intn(height)
	for y := 0; y < height; y++ {
		if y == opening {
			continue
		}
		cells[y*width+wallX] = field.Impassable
	}

	return field.NewFieldFlat(width, height, cells)
}

// GradientField ramps costs with the Euclidean distance from the center:
// free at the middle, gradientCeiling at the far corners.
func GradientField(width, height int) (*field.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDims, width, height)
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	// The corner at the origin is as far from the center as any cell gets.
	far := math.Hypot(cx, cy)

	cells := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frac := 0.0
			if far > 0 {
				frac = math.Hypot(float64(x)-cx, float64(y)-cy) / far
			}
			cells[y*width+x] = uint8(math.Round(frac * gradientCeiling))
		}
	}

	return field.NewFieldFlat(width, height, cells)
}

// RandomVolume stacks layer-count random slices into a volume. Each layer
// draws from its own derived stream, so its cells depend only on the seed
// and the layer index.
func RandomVolume(layers, height, width int, seed int64) (*field.Volume, error) {
	if layers <= 0 || height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %d×%d×%d", ErrBadDims, layers, height, width)
	}

	stack := make([][][]uint8, layers)
	for l := range stack {
		rng := layerRNG(seed, l)
		rows := make([][]uint8, height)
		for y := range rows {
			rows[y] = make([]uint8, width)
			for x := range rows[y] {
				if rng.Intn(wallRate) == 0 {
					rows[y][x] = field.Impassable
					continue
				}
				rows[y][x] = uint8(rng.Intn(costCeiling))
			}
		}
		stack[l] = rows
	}

	return field.NewVolume(stack)
}
