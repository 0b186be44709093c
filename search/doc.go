// Package search provides three interchangeable optimal-routing algorithms
// over raster cost data: uniform-cost search (Dijkstra), heuristic-guided
// search (AStar), and iterative-threshold fringe search (Fringe).
//
// Overview:
//
//   - Field routes freely through the 8-neighborhood of a 2-D cost field
//     between a fixed start and end cell. All three algorithms apply.
//   - Volume routes through a 3-D cost volume whose forced axis (layer by
//     default) must advance exactly one slice per step, with in-slice drift
//     bounded by a per-step reach. Dijkstra and AStar apply; Fringe is
//     rejected with ErrFringeUnsupported.
//   - A route's total cost sums the cell costs of every visited position,
//     the start cell included; cells holding the maximum byte value are
//     walls and are never entered.
//   - All algorithms return the same optimal cost on any input; only
//     exploration order, node counts, and memory profile differ.
//
// When to use:
//
//   - Tracing minimum-intensity routes across a heatmap (Field).
//   - Following a moving low-cost region through a frame stack over time
//     (Volume with AxisLayer): each step advances one frame while the
//     tracked position shifts at most Reach pixels.
//   - Comparing algorithm behavior on identical inputs via the Expanded
//     counters in the results.
//
// Key features:
//
//   - Functional options select the algorithm, the forced axis, the
//     per-step reach, and explicit source/sink sets.
//   - Multi-source/multi-sink: Volume seeds every start and stops at the
//     first finalized sink, equivalent to virtual super-endpoint nodes
//     joined by zero-cost edges but without materializing them.
//   - Defaulted endpoints: omitting the sets routes from anywhere on the
//     first slice of the forced axis to anywhere on the last.
//   - Deterministic output: fixed successor enumeration plus a
//     sequence-numbered frontier make identical inputs yield identical
//     routes, not merely identical costs.
//
// Performance and complexity:
//
//   - Dijkstra/AStar: O((N + E) log N) time, O(N + E) space, with N nodes
//     and E generated moves; AStar typically finalizes far fewer nodes on
//     directional inputs.
//   - Fringe: O(N + E) per threshold sweep, O(N) space, no heap; total work
//     depends on the number of distinct cost thresholds up to the optimum.
//
// Error handling (sentinel errors):
//
//   - ErrNilField / ErrNilVolume:
//     Returned when the input structure is nil.
//   - ErrUnknownAlgorithm:
//     Returned for an Algo value outside the supported set, and by
//     ParseAlgo for unknown names.
//   - ErrFringeUnsupported:
//     Returned by Volume when Fringe is requested.
//   - ErrStartOutOfBounds / ErrEndOutOfBounds:
//     Returned when an endpoint lies outside the field or volume extents.
//   - ErrEmptyEndpointSet:
//     Returned when an explicitly supplied start or end set has no members.
//   - ErrBadReach / ErrBadAxis:
//     Returned for a negative reach or an axis outside x/y/layer.
//
// A route failing to exist is never an error: the result reports
// Found=false with a nil error, whether the frontier exhausted naturally or
// an endpoint sat on a wall.
//
// API reference:
//
//	func Field(f *field.Field, start, end field.Pos2, opts ...Option) (Result2D, error)
//	func Volume(v *field.Volume, opts ...Option) (Result3D, error)
//
//	  - opts: zero or more functional options, including:
//	      • WithAlgorithm(Algo): Dijkstra, AStar (default), or Fringe.
//	      • WithReach(int):      volume in-slice drift bound, default 1.
//	      • WithAxis(field.Axis): volume forced axis, default AxisLayer.
//	      • WithStarts/WithEnds(...field.Pos3): explicit volume endpoint sets.
//	  - results carry Path, Cost (start-inclusive, int64), Found, and the
//	    Expanded node count.
//
// Thread safety:
//
//   - Every call builds its own search state; concurrent calls sharing the
//     same Field or Volume are safe because those structures are immutable.
//
// See also:
//
//   - field.Field / field.Volume: cost-data construction, movement rules.
//   - fieldgen: deterministic synthetic fields and volumes for tests and
//     benchmarks.
package search
