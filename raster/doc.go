// Package raster converts images to cost data and routed results back to
// images.
//
// What:
//
//   - Decode/Load turn a PNG or JPEG into a *field.Field, one cost byte per
//     pixel via standard grayscale luma.
//   - LoadVolume stacks a frame sequence into a *field.Volume, one layer
//     per frame in argument order.
//   - FieldImage renders cost data back into a grayscale image.
//   - Overlay marks route positions on a source frame with filled red
//     circles; SavePNG writes any image to disk.
//
// Why:
//
//   - Heatmaps ship as ordinary images; decoding straight into routable
//     cost data keeps callers out of the pixel plumbing.
//   - Overlaid frames are the natural way to inspect a routed result.
//
// Errors:
//
//   - ErrNoFrames: LoadVolume was given an empty path list.
//   - ErrFrameMismatch: a frame's dimensions differ from the first frame.
//   - Decode and file errors are wrapped with their source path.
//
// See: fieldgen for synthetic inputs and internal/viz for chart output.
package raster
