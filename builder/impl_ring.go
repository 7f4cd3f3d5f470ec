// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// impl_ring.go — Ring(n, size): hyperedge i = {i, i+1, …, i+size−1} mod n.
//
// Complexity: O(n·size).

package builder

import "github.com/katalvlaran/hypart/hypergraph"

const methodRing = "Ring"

// Ring returns a Constructor adding a cycle of n nodes covered by n
// sliding-window hyperedges. Requires 2 ≤ size ≤ n.
func Ring(n, size int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodRing, "n", n, 2); err != nil {
			return err
		}
		if size < 2 || size > n {
			return builderErrorf(methodRing, "size=%d for n=%d: %w", size, n, ErrInvalidEdgeSize)
		}
		first := d.addNodes(n, cfg)
		for i := 0; i < n; i++ {
			pins := make([]hypergraph.NodeID, size)
			for j := range pins {
				pins[j] = first + hypergraph.NodeID((i+j)%n)
			}
			d.addEdge(pins, cfg)
		}
		return nil
	}
}
