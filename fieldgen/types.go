// Package fieldgen defines generator kinds and sentinel errors shared by
// the synthetic field builders.
package fieldgen

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the generators. Wrap with %w upstream and
// test with errors.Is.
var (
	// ErrBadDims reports a zero or negative requested dimension.
	ErrBadDims = errors.New("fieldgen: dimensions must be positive")
	// ErrUnknownKind reports a generator name ParseKind does not recognize.
	ErrUnknownKind = errors.New("fieldgen: unknown generator kind")
)

// Kind selects one of the built-in field generators.
type Kind uint8

const (
	// Uniform fills every cell with the same cost.
	Uniform Kind = iota
	// Random draws every cell from a seeded stream, walls included.
	Random
	// Wall crosses cheap terrain with a full-height wall pierced by a
	// single opening.
	Wall
	// Gradient ramps costs radially from a free center to expensive edges.
	Gradient
)

// String returns the lowercase generator name.
func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Random:
		return "random"
	case Wall:
		return "wall"
	case Gradient:
		return "gradient"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a generator name to its Kind. Unknown names return
// ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "uniform":
		return Uniform, nil
	case "random":
		return Random, nil
	case "wall":
		return Wall, nil
	case "gradient":
		return Gradient, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected uniform, random, wall, or gradient)", ErrUnknownKind, s)
	}
}
