// Package heatpath routes minimum-cost paths across raster-encoded cost
// fields: grayscale heatmap images in two dimensions, and image sequences
// where every step must advance along one forced axis.
//
// 🚀 What is heatpath?
//
//	A compact routing engine that brings together:
//		• Cost fields: byte-valued 2-D grids & 3-D volumes decoded from images
//		• Search: Dijkstra, A* and Fringe Search over implicit grid graphs
//		• Temporal routing: forced-axis volume traversal with bounded drift
//		• Generators: uniform, random, walled and gradient synthetic fields
//		• Rendering: route overlays, heatmap plots and HTML comparison reports
//
// ✨ Why heatpath?
//
//   - Deterministic: equal-cost routes resolve the same way on every run
//   - Immutable fields: decode once, search concurrently
//   - Image-native: PNG/JPEG in, overlaid frames and route files out
//
// Everything is organized under a handful of subpackages:
//
//	field/    — cost grids, volumes, positions & move generation
//	search/   — Dijkstra, A* and Fringe; 2-D and forced-axis 3-D entry points
//	fieldgen/ —
//	raster/   — image decoding, field encoding & route overlays
//
// Quick ASCII example:
//
//	    5 1 5
//	    1 9 1
//	    5 1 5
//
//	a 3×3 field where the cheapest route between opposite corners hugs
//	the low-cost rim instead of crossing the expensive center.
//
// The heatpath command wraps it all: route, plot, compare and gen.
//
//	go get github.com/katalvlaran/heatpath
package heatpath
