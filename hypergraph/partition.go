// File: partition.go
// Role: k-way partition bookkeeping (block labels, block weights, pin counts)
// and 2-way gains.
package hypergraph

import "fmt"

func (h *Hypergraph) allocatePartition(k int) {
	h.k = k
	h.partIDs = make([]PartitionID, len(h.nodes))
	for i := range h.partIDs {
		h.partIDs[i] = InvalidPartition
	}
	h.partWeights = make([]int64, k)
	h.partSizes = make([]int, k)
	for e := range h.edges {
		h.edges[e].pinCountInPart = make([]int32, k)
	}
}

// K returns the number of blocks.
func (h *Hypergraph) K() int { return h.k }

// SetK changes the number of blocks and resets the partition.
func (h *Hypergraph) SetK(k int) error {
	if k < 2 {
		return fmt.Errorf("%w: k=%d", ErrBadPartition, k)
	}
	h.allocatePartition(k)
	return nil
}

// PartID returns the block of u or InvalidPartition.
func (h *Hypergraph) PartID(u NodeID) PartitionID { return h.partIDs[u] }

// PartWeight returns the total node weight assigned to block p.
func (h *Hypergraph) PartWeight(p PartitionID) int64 { return h.partWeights[p] }

// PartSize returns the number of enabled nodes assigned to block p.
func (h *Hypergraph) PartSize(p PartitionID) int { return h.partSizes[p] }

// PinCountInPart returns the number of pins of e that lie in block p.
func (h *Hypergraph) PinCountInPart(e EdgeID, p PartitionID) int {
	return int(h.edges[e].pinCountInPart[p])
}

// Connectivity returns the number of blocks e has pins in.
func (h *Hypergraph) Connectivity(e EdgeID) int {
	c := 0
	for _, n := range h.edges[e].pinCountInPart {
		if n > 0 {
			c++
		}
	}
	return c
}

// IsPartitioned reports whether every enabled node has a block.
func (h *Hypergraph) IsPartitioned() bool {
	for u := range h.nodes {
		if h.nodes[u].enabled && h.partIDs[u] == InvalidPartition {
			return false
		}
	}
	return true
}

// SetNodePart assigns an unassigned enabled node to block p.
// Complexity: O(deg(u)).
func (h *Hypergraph) SetNodePart(u NodeID, p PartitionID) error {
	if err := h.checkNode(u); err != nil {
		return err
	}
	if !h.nodes[u].enabled {
		return fmt.Errorf("%w: %d", ErrNodeDisabled, u)
	}
	if !h.validPart(p) {
		return fmt.Errorf("%w: block %d (k=%d)", ErrBadPartition, p, h.k)
	}
	if h.partIDs[u] != InvalidPartition {
		return fmt.Errorf("%w: node %d already in block %d", ErrBadPartition, u, h.partIDs[u])
	}
	h.partIDs[u] = p
	h.partWeights[p] += h.nodes[u].weight
	h.partSizes[p]++
	for _, e := range h.nodes[u].edges {
		h.edges[e].pinCountInPart[p]++
	}
	return nil
}

// ChangeNodePart moves u from block from to block to.
// Complexity: O(deg(u)).
func (h *Hypergraph) ChangeNodePart(u NodeID, from, to PartitionID) error {
	if err := h.checkNode(u); err != nil {
		return err
	}
	if !h.nodes[u].enabled {
		return fmt.Errorf("%w: %d", ErrNodeDisabled, u)
	}
	if !h.validPart(from) || !h.validPart(to) || h.partIDs[u] != from {
		return fmt.Errorf("%w: move %d from %d to %d (current %d)", ErrBadPartition, u, from, to, h.partIDs[u])
	}
	if from == to {
		return nil
	}
	w := h.nodes[u].weight
	h.partIDs[u] = to
	h.partWeights[from] -= w
	h.partWeights[to] += w
	h.partSizes[from]--
	h.partSizes[to]++
	for _, e := range h.nodes[u].edges {
		h.edges[e].pinCountInPart[from]--
		h.edges[e].pinCountInPart[to]++
	}
	return nil
}

// ResetPartitioning unassigns every node and clears all block counters.
func (h *Hypergraph) ResetPartitioning() {
	for i := range h.partIDs {
		h.partIDs[i] = InvalidPartition
	}
	clear(h.partWeights)
	clear(h.partSizes)
	for e := range h.edges {
		clear(h.edges[e].pinCountInPart)
	}
}

// IsBorderNode reports whether u has an enabled incident edge spanning more than one block.
func (h *Hypergraph) IsBorderNode(u NodeID) bool {
	for _, e := range h.nodes[u].edges {
		if h.edges[e].enabled && h.Connectivity(e) > 1 {
			return true
		}
	}
	return false
}

// Gain returns the cut reduction achieved by moving u to the other block of
// a bipartition. Only meaningful when K() == 2 and u is assigned.
//
//	gain(u) = Σ_{e∋u} w(e)·[Φ(e, from) = 1] − Σ_{e∋u} w(e)·[Φ(e, to) = 0]
//
// Complexity: O(deg(u)).
func (h *Hypergraph) Gain(u NodeID) int64 {
	from := h.partIDs[u]
	if from == InvalidPartition || h.k != 2 {
		return 0
	}
	to := 1 - from
	var g int64
	for _, e := range h.nodes[u].edges {
		he := &h.edges[e]
		if !he.enabled {
			continue
		}
		if he.pinCountInPart[from] == 1 {
			g += he.weight
		}
		if he.pinCountInPart[to] == 0 {
			g -= he.weight
		}
	}
	return g
}

func (h *Hypergraph) validPart(p PartitionID) bool {
	return p >= 0 && int(p) < h.k
}
