// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng          = nil  (stochastic constructors fail without a seed)
//   • nodeWeightFn = ConstantWeightFn(1)
//   • edgeWeightFn = ConstantWeightFn(1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hypart/hypergraph"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng          *rand.Rand
	nodeWeightFn WeightFn
	edgeWeightFn WeightFn
	hgOpts       []hypergraph.Option
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeWeightFn: ConstantWeightFn(DefaultWeight),
		edgeWeightFn: ConstantWeightFn(DefaultWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// draft accumulates the input of hypergraph.New.
type draft struct {
	numNodes    int
	edges       [][]hypergraph.NodeID
	nodeWeights []int64
	edgeWeights []int64
}

// addNodes appends n nodes and returns the id of the first one.
func (d *draft) addNodes(n int, cfg builderConfig) hypergraph.NodeID {
	first := hypergraph.NodeID(d.numNodes)
	for i := 0; i < n; i++ {
		d.nodeWeights = append(d.nodeWeights, cfg.nodeWeightFn(cfg.rng))
	}
	d.numNodes += n
	return first
}

func (d *draft) addEdge(pins []hypergraph.NodeID, cfg builderConfig) {
	d.edges = append(d.edges, pins)
	d.edgeWeights = append(d.edgeWeights, cfg.edgeWeightFn(cfg.rng))
}
