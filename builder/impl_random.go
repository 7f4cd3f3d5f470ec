// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// impl_random.go — Random(n, m, minSize, maxSize).
//
// Model: every hyperedge draws its size uniformly from [minSize, maxSize]
// and its pins as the prefix of a partial Fisher–Yates shuffle of the n new
// nodes, so pins are distinct.
//
// Complexity: O(n + m·maxSize).

package builder

import "github.com/katalvlaran/hypart/hypergraph"

const methodRandom = "Random"

// Random returns a Constructor adding n nodes and m random hyperedges.
func Random(n, m, minSize, maxSize int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodRandom, "n", n, 1); err != nil {
			return err
		}
		if err := validateMin(methodRandom, "m", m, 0); err != nil {
			return err
		}
		if minSize < 1 || maxSize < minSize || maxSize > n {
			return builderErrorf(methodRandom, "size range [%d,%d] for n=%d: %w",
				minSize, maxSize, n, ErrInvalidEdgeSize)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandom, "%w", ErrNeedRandSource)
		}

		first := d.addNodes(n, cfg)
		pool := make([]hypergraph.NodeID, n)
		for i := range pool {
			pool[i] = first + hypergraph.NodeID(i)
		}
		for e := 0; e < m; e++ {
			size := minSize + cfg.rng.Intn(maxSize-minSize+1)
			for i := 0; i < size; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
			}
			d.addEdge(append([]hypergraph.NodeID(nil), pool[:size]...), cfg)
		}
		return nil
	}
}
