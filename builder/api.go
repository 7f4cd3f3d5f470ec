// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// api.go — public entry point and constructor factories.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypart/hypergraph"
)

// Constructor appends nodes and hyperedges to the draft using the resolved
// configuration. Constructors validate early and never panic.
type Constructor func(d *draft, cfg builderConfig) error

// Build resolves bopts, applies the constructors in order and creates the
// hypergraph. Constructor errors are wrapped with "Build: %w".
//
// Complexity: O(V + P) plus the cost of the constructors.
func Build(bopts []BuilderOption, cons ...Constructor) (*hypergraph.Hypergraph, error) {
	cfg := newBuilderConfig(bopts...)
	var d draft
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	opts := append([]hypergraph.Option{
		hypergraph.WithNodeWeights(d.nodeWeights),
		hypergraph.WithEdgeWeights(d.edgeWeights),
	}, cfg.hgOpts...)
	hg, err := hypergraph.New(d.numNodes, d.edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}
	return hg, nil
}
