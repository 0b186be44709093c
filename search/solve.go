// Package search - unified dispatcher for routing runs.
//
// This file provides the canonical entry points:
//
//   - Field:  free 8-directional routing between two cells of a 2-D cost
//     field, algorithm selectable (Dijkstra / AStar / Fringe).
//   - Volume: axis-forced routing through a 3-D cost volume between source
//     and sink sets (explicit or defaulted to the first/last slice),
//     algorithm selectable (Dijkstra / AStar).
//
// Design principles:
//   - Deterministic: fixed enumeration orders and a sequence-numbered
//     frontier; identical inputs yield identical routes.
//   - Strict sentinels: configuration failures return errors from types.go,
//     wrapped with the offending value; an exhausted search is not an error.
//   - Validation before state: no search structures are built until the
//     configuration is known to be sound.
package search

import (
	"fmt"

	"github.com/katalvlaran/heatpath/field"
)

// Field computes a minimum-cost route between start and end over f, moving
// freely through the 8-neighborhood. The total is start-inclusive: it sums
// the cell costs of every path position, the start cell included.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilField).
//  2. Options.Algorithm must be known (ErrUnknownAlgorithm).
//  3. start must lie inside f (ErrStartOutOfBounds).
//  4. end must lie inside f (ErrEndOutOfBounds).
//
// A start or end on an impassable cell is not a configuration error: the
// result reports Found=false with a nil error, as does any other input
// without a route. Reach, Axis, Starts, and Ends are volume settings and
// are ignored here.
//
// Complexity: O((W·H + E) log(W·H)) time, O(W·H) space; fringe replaces
// the log factor with threshold sweeps.
func Field(f *field.Field, start, end field.Pos2, opts ...Option) (Result2D, error) {
	// Stage 0 - materialize Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 1 - nil input.
	if f == nil {
		return Result2D{}, ErrNilField
	}

	// Stage 2 - algorithm must be a member of the supported set. All three
	// algorithms handle 2-D fields.
	switch cfg.Algorithm {
	case Dijkstra, AStar, Fringe:
		// ok
	default:
		return Result2D{}, fmt.Errorf("%w: %v (expected dijkstra, astar, or fringe)", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	// Stage 3 - endpoint bounds.
	if !f.InBounds(start.X, start.Y) {
		return Result2D{}, fmt.Errorf("%w: %v on %d×%d field", ErrStartOutOfBounds, start, f.Width(), f.Height())
	}
	if !f.InBounds(end.X, end.Y) {
		return Result2D{}, fmt.Errorf("%w: %v on %d×%d field", ErrEndOutOfBounds, end, f.Width(), f.Height())
	}

	// Stage 4 - endpoints on walls cannot route. A no-path outcome, not a
	// configuration error; skip the search entirely.
	if !f.Passable(start.X, start.Y) || !f.Passable(end.X, end.Y) {
		return Result2D{}, nil
	}

	// Stage 5 - route by algorithm.
	sp := newGridSpace(f, start, end)
	var out runOutcome
	switch cfg.Algorithm {
	case Dijkstra:
		out = runDijkstra(sp)
	case AStar:
		out = runAStar(sp)
	case Fringe:
		out = runFringe(sp)
	}

	// Stage 6 - assemble the result.
	res := Result2D{Expanded: out.expanded}
	if !out.found {
		return res, nil
	}
	res.Found = true
	res.Cost = out.cost
	res.Path = assemblePath2(f, out)

	return res, nil
}

// Volume computes a minimum-cost route through v from the start set to the
// end set, advancing exactly one slice along the forced axis per step and
// drifting at most Options.Reach in-slice. Endpoint sets default to every
// passable position on the first (starts) and last (ends) slice of the
// forced axis. The total is start-inclusive.
//
// Preconditions and validation (in order):
//  1. v must be non-nil (ErrNilVolume).
//  2. Options.Algorithm must be Dijkstra or AStar; Fringe is rejected with
//     ErrFringeUnsupported, anything else with ErrUnknownAlgorithm.
//  3. Options.Reach must be non-negative (ErrBadReach).
//  4. Options.Axis must be x, y, or layer (ErrBadAxis).
//  5. An explicit start set must be non-empty with every member in bounds
//     (ErrEmptyEndpointSet, ErrStartOutOfBounds); likewise the end set
//     (ErrEmptyEndpointSet, ErrEndOutOfBounds).
//
// Endpoints on impassable cells are dropped, not rejected; when nothing
// routable remains the result reports Found=false with a nil error.
//
// Complexity: O((N + E) log N) time with N = W·H·L nodes and
// E = N·(2·reach+1)² generated moves, O(N + E) space.
func Volume(v *field.Volume, opts ...Option) (Result3D, error) {
	// Stage 0 - materialize Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 1 - nil input.
	if v == nil {
		return Result3D{}, ErrNilVolume
	}

	// Stage 2 - options sanity.
	if err := validateVolumeOptions(cfg); err != nil {
		return Result3D{}, err
	}

	// Stage 3 - endpoint sets (explicit, validated; or slice defaults).
	starts, err := endpointSet(v, cfg.Axis, cfg.Starts, 0, "start", ErrStartOutOfBounds)
	if err != nil {
		return Result3D{}, err
	}
	ends, err := endpointSet(v, cfg.Axis, cfg.Ends, v.AxisExtent(cfg.Axis)-1, "end", ErrEndOutOfBounds)
	if err != nil {
		return Result3D{}, err
	}

	// Stage 4 - build the space; walls among the endpoints drop out here.
	// Nothing left to route between means no path, not an error.
	sp := newVolumeSpace(v, cfg.Axis, cfg.Reach, starts, ends)
	if len(sp.seedIdx) == 0 || len(sp.sinkAt) == 0 {
		return Result3D{}, nil
	}

	// Stage 5 - route by algorithm.
	var out runOutcome
	switch cfg.Algorithm {
	case Dijkstra:
		out = runDijkstra(sp)
	case AStar:
		out = runAStar(sp)
	default:
		return Result3D{}, ErrUnknownAlgorithm
	}

	// Stage 6 - assemble the result.
	res := Result3D{Expanded: out.expanded}
	if !out.found {
		return res, nil
	}
	res.Found = true
	res.Cost = out.cost
	res.Path = assemblePath3(v, out)

	return res, nil
}

// validateVolumeOptions checks internal consistency of Options for volume
// routing without touching the volume itself.
//
// Complexity: O(1).
func validateVolumeOptions(cfg Options) error {
	// Fringe sweeps rely on the 2-D field shape; volumes route with
	// Dijkstra or AStar only.
	switch cfg.Algorithm {
	case Dijkstra, AStar:
		// ok
	case Fringe:
		return ErrFringeUnsupported
	default:
		return fmt.Errorf("%w: %v (expected dijkstra or astar)", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	// Reach is a window radius; negative radii are meaningless.
	if cfg.Reach < 0 {
		return fmt.Errorf("%w: %d", ErrBadReach, cfg.Reach)
	}

	// Axis must be one of the three defined dimensions.
	if !cfg.Axis.Valid() {
		return fmt.Errorf("%w: %v", ErrBadAxis, cfg.Axis)
	}

	return nil
}

// endpointSet resolves one endpoint set: nil explicit input selects every
// position on the given slice of the forced axis; an explicit set must be
// non-empty and fully in bounds. label and oobErr distinguish start from
// end failures.
//
// Complexity: O(len(explicit)) or O(slice area) for the default.
func endpointSet(v *field.Volume, axis field.Axis, explicit []field.Pos3, slice int, label string, oobErr error) ([]field.Pos3, error) {
	if explicit == nil {
		return v.SlicePositions(axis, slice), nil
	}
	if len(explicit) == 0 {
		return nil, fmt.Errorf("%w: %s set", ErrEmptyEndpointSet, label)
	}
	var p field.Pos3
	for _, p = range explicit {
		if !v.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %d×%d×%d volume", oobErr, p, v.Width(), v.Height(), v.Layers())
		}
	}

	return explicit, nil
}

// assemblePath2 walks the predecessor table from the reached sink back to
// the seed and reverses into start→end cell order.
//
// Complexity: O(path length).
func assemblePath2(f *field.Field, out runOutcome) []field.Pos2 {
	idxs := trailIndices(out)
	path := make([]field.Pos2, len(idxs))
	var x, y int
	for i, idx := range idxs {
		x, y = f.Coord(idx)
		path[len(idxs)-1-i] = field.Pos2{X: x, Y: y}
	}

	return path
}

// assemblePath3 is the volume counterpart of assemblePath2.
//
// Complexity: O(path length).
func assemblePath3(v *field.Volume, out runOutcome) []field.Pos3 {
	idxs := trailIndices(out)
	path := make([]field.Pos3, len(idxs))
	for i, idx := range idxs {
		path[len(idxs)-1-i] = v.Coord(idx)
	}

	return path
}

// trailIndices collects the node indices sink→seed; -1 terminates the walk
// at the seed, whose predecessor was never set.
func trailIndices(out runOutcome) []int {
	idxs := make([]int, 0, 16)
	for at := out.goal; at != -1; at = out.prev[at] {
		idxs = append(idxs, at)
	}

	return idxs
}
