// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic and return sentinel errors.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hypart/hypergraph"
)

// BuilderOption customizes builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded random source.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNodeWeightFn sets the node weight generator. Panics on nil.
func WithNodeWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeWeightFn(nil)")
	}
	return func(c *builderConfig) { c.nodeWeightFn = fn }
}

// WithEdgeWeightFn sets the hyperedge weight generator. Panics on nil.
func WithEdgeWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeWeightFn(nil)")
	}
	return func(c *builderConfig) { c.edgeWeightFn = fn }
}

// WithHypergraphOptions forwards options (e.g. hypergraph.WithK) to
// hypergraph.New.
func WithHypergraphOptions(opts ...hypergraph.Option) BuilderOption {
	return func(c *builderConfig) { c.hgOpts = append(c.hgOpts, opts...) }
}
