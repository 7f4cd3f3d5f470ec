// Package rng centralizes deterministic random generation.
//
// Every randomized step of the partitioner (node order per coarsening round,
// initial partitioning runs, generated inputs) draws from an explicit
// *rand.Rand created here; nothing uses the global source.
//
// math/rand.Rand is not goroutine-safe. Use Derive to split independent
// streams.
package rng

import (
	"math/rand"

	"github.com/katalvlaran/hypart/hypergraph"
)

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic generator; seed 0 means DefaultSeed.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// mix is a SplitMix64 finalizer over parent and stream.
func mix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent stream from base. base.Int63 is consumed
// once, so two derivations with the same stream id still differ.
// A nil base derives from DefaultSeed.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mix(parent, stream)))
}

// ShuffleNodes permutes nodes in place (Fisher–Yates).
// Complexity: O(n).
func ShuffleNodes(nodes []hypergraph.NodeID, r *rand.Rand) {
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(nodes) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
