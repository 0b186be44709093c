// Package field models raster cost data as searchable terrain: a 2-D
// weighted grid (Field) or a stack of grids forming a 3-D volume (Volume),
// plus the movement rules that induce an implicit graph over the cells.
//
// What:
//
//   - Field wraps a rectangular grid of byte costs with O(1) bounds-checked
//     lookup; Volume stacks such grids along a third dimension.
//   - Cells holding the maximum byte value (Impassable) are walls: they are
//     never entered by any move.
//   - Neighbors enumerates free 8-directional movement on a Field.
//   - Successors enumerates axis-forced movement on a Volume: the forced
//     axis advances by exactly one slice per step while the two free
//     coordinates shift by at most reach (Chebyshev distance).
//
// Why:
//
//   - Image-derived heatmaps: route across a single intensity map.
//   - Temporal routing: thread a route through a frame sequence that must
//     always move forward in time.
//   - Any cost raster where nodes are implicit in coordinates and building
//     an explicit graph object would waste memory.
//
// Complexity:
//
//   - Construction: O(W×H) / O(W×H×L) time and memory (input is deep-copied).
//   - At, Cost, InBounds, Index, Coord: O(1).
//   - Neighbors: O(1) (at most 8 candidates).
//   - Successors: O((2×reach+1)²) candidates per call.
//
// Errors:
//
//   - ErrEmptyField: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDimensions: non-positive width or height for flat construction.
//   - ErrLengthMismatch: flat value count does not equal width×height.
//   - ErrEmptyVolume: volume has no layers.
//   - ErrLayerMismatch: layers disagree on width or height.
//   - ErrOutOfBounds: At was asked for a position outside the extents.
//   - ErrUnknownAxis: axis name not one of x, y, layer.
package field
