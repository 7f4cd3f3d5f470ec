// File: weight_history.go
// Role: Node-weight bounds per coarsening level, consumed during uncoarsening.
package coarsening

// WeightBound describes one coarsening level: the node count reached and the
// heaviest node at that point.
type WeightBound struct {
	NumNodes      int   `yaml:"num_nodes"`
	MaxNodeWeight int64 `yaml:"max_node_weight"`
}

// WeightHistory is a stack of WeightBound, finest level first.
// The first entry describes the input hypergraph and is never popped.
type WeightHistory struct {
	bounds []WeightBound
}

// Push appends a level.
func (h *WeightHistory) Push(b WeightBound) { h.bounds = append(h.bounds, b) }

// Len returns the number of recorded levels.
func (h *WeightHistory) Len() int { return len(h.bounds) }

// Tail returns the coarsest recorded level.
func (h *WeightHistory) Tail() (WeightBound, bool) {
	if len(h.bounds) == 0 {
		return WeightBound{}, false
	}
	return h.bounds[len(h.bounds)-1], true
}

// Bound pops every level coarser than numNodes and returns the new tail.
// With an empty history the bound is unlimited.
func (h *WeightHistory) Bound(numNodes int) WeightBound {
	for len(h.bounds) > 1 && numNodes > h.bounds[len(h.bounds)-1].NumNodes {
		h.bounds = h.bounds[:len(h.bounds)-1]
	}
	if len(h.bounds) == 0 {
		return WeightBound{NumNodes: numNodes, MaxNodeWeight: maxWeight}
	}
	return h.bounds[len(h.bounds)-1]
}

// Levels returns a copy of the recorded levels.
func (h *WeightHistory) Levels() []WeightBound {
	return append([]WeightBound(nil), h.bounds...)
}

const maxWeight = int64(^uint64(0) >> 1)
