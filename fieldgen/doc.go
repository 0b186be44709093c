// Package fieldgen builds synthetic cost fields and volumes with fully
// reproducible content.
//
// What:
//
//   - Uniform, random, walled, and gradient field generators returning
//     ready-to-route *field.Field values.
//   - RandomVolume stacks per-layer random slices into a *field.Volume.
//   - Kind + ParseKind expose the generator set to command-line callers.
//
// Why:
//
//   - Benchmarks and property tests need terrain that is interesting but
//     byte-identical across runs and platforms.
//   - Demos need plausible inputs without shipping image assets.
//
// Determinism:
//
//   - Every generator is a pure function of its arguments; seed 0 maps to a
//     fixed default stream, so the zero value still reproduces.
//   - Volume layers draw from independently derived streams, making layer
//     content a function of (seed, layer index) alone.
//
// Errors:
//
//   - ErrBadDims: a requested dimension is zero or negative.
//   - ErrUnknownKind: a kind name that ParseKind does not recognize.
//
// See: search and raster for routing over and rendering of the results.
package fieldgen
