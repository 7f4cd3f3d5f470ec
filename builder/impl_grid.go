// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// impl_grid.go — Grid(rows, cols): node (r, c) has id r·cols + c; one
// hyperedge per row, then one per column.
//
// Complexity: O(rows·cols).

package builder

import "github.com/katalvlaran/hypart/hypergraph"

const methodGrid = "Grid"

// Grid returns a Constructor adding a rows×cols node grid with row and
// column hyperedges. Requires rows, cols ≥ 2.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, 2); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, 2); err != nil {
			return err
		}
		first := d.addNodes(rows*cols, cfg)
		id := func(r, c int) hypergraph.NodeID { return first + hypergraph.NodeID(r*cols+c) }
		for r := 0; r < rows; r++ {
			pins := make([]hypergraph.NodeID, cols)
			for c := range pins {
				pins[c] = id(r, c)
			}
			d.addEdge(pins, cfg)
		}
		for c := 0; c < cols; c++ {
			pins := make([]hypergraph.NodeID, rows)
			for r := range pins {
				pins[r] = id(r, c)
			}
			d.addEdge(pins, cfg)
		}
		return nil
	}
}
