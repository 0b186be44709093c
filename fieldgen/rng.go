// Package fieldgen - deterministic random streams.
//
// This file centralizes pseudo-random generation for all generators.
//
// Goals:
//   - Determinism: same seed yields identical cells across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: per-layer substreams derived by a SplitMix64 finalizer,
//     so a layer's content depends only on (seed, layer index).
package fieldgen

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultRNGSeed; any other seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche; see Vigna 2014 for the constants.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// layerRNG returns the independent stream for one volume layer.
// Zero seeds follow the rngFromSeed policy before mixing.
//
// Complexity: O(1).
func layerRNG(seed int64, layer int) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, uint64(layer))))
}
