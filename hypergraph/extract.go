// File: extract.go
// Role: Block extraction for recursive bisection.
package hypergraph

import "fmt"

// Extract builds the sub-hypergraph induced by the enabled nodes of block p.
//
// With cutNetSplitting, every enabled hyperedge contributes its pins inside p
// (this is what keeps the connectivity objective additive over bisections).
// Without it, only hyperedges lying entirely in p are kept (cut-net removal,
// sufficient for the cut objective). Hyperedges with fewer than two remaining
// pins are dropped in both modes.
//
// The returned mapping translates sub-hypergraph node ids to ids of h.
// The sub-hypergraph is created with the given k and no partition.
//
// Complexity: O(V + P).
func (h *Hypergraph) Extract(p PartitionID, cutNetSplitting bool, k int) (*Hypergraph, []NodeID, error) {
	if !h.validPart(p) {
		return nil, nil, fmt.Errorf("%w: block %d (k=%d)", ErrBadPartition, p, h.k)
	}

	toSub := make(map[NodeID]NodeID, h.partSizes[p])
	var mapping []NodeID
	var weights []int64
	for _, u := range h.Nodes() {
		if h.partIDs[u] != p {
			continue
		}
		toSub[u] = NodeID(len(mapping))
		mapping = append(mapping, u)
		weights = append(weights, h.nodes[u].weight)
	}

	var edges [][]NodeID
	var edgeWeights []int64
	for _, e := range h.Edges() {
		he := &h.edges[e]
		if !cutNetSplitting && int(he.pinCountInPart[p]) != len(he.pins) {
			continue
		}
		if he.pinCountInPart[p] < 2 {
			continue
		}
		pins := make([]NodeID, 0, he.pinCountInPart[p])
		for _, u := range he.pins {
			if s, ok := toSub[u]; ok {
				pins = append(pins, s)
			}
		}
		edges = append(edges, pins)
		edgeWeights = append(edgeWeights, he.weight)
	}

	sub, err := New(len(mapping), edges,
		WithNodeWeights(weights),
		WithEdgeWeights(edgeWeights),
		WithK(k),
	)
	if err != nil {
		return nil, nil, err
	}
	return sub, mapping, nil
}
