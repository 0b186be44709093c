// Package search defines core types, options, and sentinel errors for
// minimum-cost routing over cost fields and cost volumes.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heatpath/field"
)

// Sentinel errors returned by Field and Volume.
var (
	// ErrNilField indicates that a nil *field.Field was passed to Field.
	ErrNilField = errors.New("search: field is nil")

	// ErrNilVolume indicates that a nil *field.Volume was passed to Volume.
	ErrNilVolume = errors.New("search: volume is nil")

	// ErrUnknownAlgorithm indicates an Algo value outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrFringeUnsupported indicates a fringe request for volume routing,
	// which only uniform-cost and heuristic-guided search support.
	ErrFringeUnsupported = errors.New("search: fringe search supports 2-D fields only")

	// ErrStartOutOfBounds indicates a start position outside the field or
	// volume extents.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")

	// ErrEndOutOfBounds indicates an end position outside the field or
	// volume extents.
	ErrEndOutOfBounds = errors.New("search: end position out of bounds")

	// ErrEmptyEndpointSet indicates an explicitly supplied start or end set
	// with no members. Omitting the set entirely selects the default
	// first-slice/last-slice endpoints instead.
	ErrEmptyEndpointSet = errors.New("search: explicit endpoint set is empty")

	// ErrBadReach indicates a negative per-step reach.
	ErrBadReach = errors.New("search: reach must be non-negative")

	// ErrBadAxis indicates an axis value outside x, y, layer.
	ErrBadAxis = errors.New("search: invalid forced axis")
)

// Algo selects the routing algorithm.
//
// All algorithms return the same optimal cost on any given input; they
// differ in exploration order, memory profile, and which inputs they accept
// (fringe handles 2-D fields only).
type Algo uint8

const (
	// Dijkstra is uniform-cost search: no heuristic, frontier ordered by
	// accumulated cost alone.
	Dijkstra Algo = iota

	// AStar is heuristic-guided search with an admissible, consistent
	// estimate. Typically expands fewer nodes than Dijkstra.
	AStar

	// Fringe is iterative-threshold fringe search over a linked-list
	// frontier. 2-D fields only.
	Fringe
)

// String returns the lowercase algorithm name: "dijkstra", "astar",
// or "fringe".
func (a Algo) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	case Fringe:
		return "fringe"
	default:
		return fmt.Sprintf("algo(%d)", uint8(a))
	}
}

// ParseAlgo converts an algorithm name into an Algo value. Accepted names
// are "dijkstra", "astar" (alias "a*"), and "fringe". Unknown names return
// ErrUnknownAlgorithm.
func ParseAlgo(s string) (Algo, error) {
	switch s {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	case "fringe":
		return Fringe, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected dijkstra, astar, or fringe)", ErrUnknownAlgorithm, s)
	}
}

// Options configures a routing run.
//
// Algorithm – which solver explores the graph (default AStar).
// Reach     – volume only: max Chebyshev in-slice displacement per step
//
//	(default 1; 0 pins the in-slice position).
//
// Axis      – volume only: the forced-monotonic dimension (default AxisLayer).
// Starts    – volume only: explicit source set; nil selects every passable
//
//	position on the first slice of the forced axis.
//
// Ends      – volume only: explicit sink set; nil selects the last slice.
type Options struct {
	Algorithm Algo         // Solver to run
	Reach     int          // Max in-slice drift per forced step (volume)
	Axis      field.Axis   // Forced-monotonic dimension (volume)
	Starts    []field.Pos3 // Explicit sources; nil = first slice (volume)
	Ends      []field.Pos3 // Explicit sinks; nil = last slice (volume)
}

// Option represents a functional option for configuring a routing run.
// Options only record settings; Field and Volume validate them and report
// sentinel errors, so building an Options value never fails or panics.
type Option func(*Options)

// WithAlgorithm selects the solver. Field accepts all three algorithms;
// Volume rejects Fringe with ErrFringeUnsupported.
func WithAlgorithm(a Algo) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithReach bounds the in-slice Chebyshev displacement per forced step.
// Negative values cause Volume to return ErrBadReach.
func WithReach(reach int) Option {
	return func(o *Options) {
		o.Reach = reach
	}
}

// WithAxis selects the forced-monotonic dimension for volume routing.
// Values outside x/y/layer cause Volume to return ErrBadAxis.
func WithAxis(a field.Axis) Option {
	return func(o *Options) {
		o.Axis = a
	}
}

// WithStarts replaces the default source set (every passable position on
// the first slice of the forced axis) with an explicit one. Expanding an
// empty slice here yields ErrEmptyEndpointSet from Volume; a start on a
// wall is legal and simply cannot contribute a route.
func WithStarts(starts ...field.Pos3) Option {
	return func(o *Options) {
		o.Starts = starts
	}
}

// WithEnds replaces the default sink set (every passable position on the
// last slice of the forced axis) with an explicit one. Expanding an empty
// slice here yields ErrEmptyEndpointSet from Volume; an end on a wall is
// legal and simply cannot be reached.
func WithEnds(ends ...field.Pos3) Option {
	return func(o *Options) {
		o.Ends = ends
	}
}

// DefaultOptions returns an Options struct initialized with the defaults
// used when no functional options are supplied.
//
// Defaults:
//   - Algorithm: AStar (same cost as Dijkstra, usually fewer expansions).
//   - Reach:     1 (adjacent in-slice drift).
//   - Axis:      field.AxisLayer (temporal routing through a frame stack).
//   - Starts:    nil (volume: every passable position on the first slice).
//   - Ends:      nil (volume: every passable position on the last slice).
func DefaultOptions() Options {
	return Options{
		Algorithm: AStar,
		Reach:     1,
		Axis:      field.AxisLayer,
		Starts:    nil,
		Ends:      nil,
	}
}

// Result2D is the outcome of a 2-D field search.
type Result2D struct {
	// Path is the cell sequence from start to end inclusive. Empty when
	// Found is false.
	Path []field.Pos2

	// Cost is the sum of the cell costs of every path position, the start
	// cell included. Zero when Found is false.
	Cost int64

	// Found reports whether any route exists. An exhausted frontier is not
	// an error: Found=false with a nil error.
	Found bool

	// Expanded counts the nodes the algorithm finalized, for diagnostics
	// and algorithm comparison.
	Expanded int
}

// Result3D is the outcome of a volume routing search.
type Result3D struct {
	// Path is the position sequence from a source to a sink, strictly
	// advancing along the forced axis. Empty when Found is false.
	Path []field.Pos3

	// Cost is the sum of the cell costs of every path position, the start
	// cell included. Zero when Found is false.
	Cost int64

	// Found reports whether any route exists between the endpoint sets.
	Found bool

	// Expanded counts the nodes the algorithm finalized.
	Expanded int
}
