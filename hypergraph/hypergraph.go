// File: hypergraph.go
// Role: Hypergraph construction and read-only queries.
//
// Determinism:
//   - Nodes() and Edges() enumerate identifiers in ascending order.
package hypergraph

import (
	"fmt"
	"sort"
)

// defaultK is the block count used when WithK is not given.
const defaultK = 2

// Hypergraph is a mutable, weighted hypergraph with contraction support and
// k-way partition bookkeeping.
type Hypergraph struct {
	nodes []hypernode
	edges []hyperedge

	numNodes    int   // enabled nodes
	numEdges    int   // enabled edges
	numPins     int   // pins of enabled edges
	totalWeight int64 // sum of enabled node weights (invariant under contraction)

	k           int
	partIDs     []PartitionID
	partWeights []int64
	partSizes   []int
}

// New builds a hypergraph with numNodes nodes and one hyperedge per pin list.
//
// Validation (in order):
//  1. numNodes >= 0 and every pin < numNodes (ErrNodeNotFound).
//  2. Every hyperedge has at least one pin (ErrEmptyEdge) and no pin twice (ErrDuplicatePin).
//  3. Weight slices, when given, match the element counts (ErrWeightsMismatch).
//  4. k >= 2 (ErrBadPartition).
//
// Complexity: O(V + P) where P is the total pin count.
func New(numNodes int, edges [][]NodeID, opts ...Option) (*Hypergraph, error) {
	o := options{k: defaultK}
	for _, opt := range opts {
		opt(&o)
	}
	if numNodes < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrNodeNotFound, numNodes)
	}
	if o.nodeWeights != nil && len(o.nodeWeights) != numNodes {
		return nil, fmt.Errorf("%w: %d node weights for %d nodes", ErrWeightsMismatch, len(o.nodeWeights), numNodes)
	}
	if o.edgeWeights != nil && len(o.edgeWeights) != len(edges) {
		return nil, fmt.Errorf("%w: %d edge weights for %d edges", ErrWeightsMismatch, len(o.edgeWeights), len(edges))
	}
	if o.k < 2 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadPartition, o.k)
	}

	h := &Hypergraph{
		nodes:    make([]hypernode, numNodes),
		edges:    make([]hyperedge, len(edges)),
		numNodes: numNodes,
		numEdges: len(edges),
	}
	for u := range h.nodes {
		w := int64(1)
		if o.nodeWeights != nil {
			w = o.nodeWeights[u]
		}
		h.nodes[u] = hypernode{weight: w, enabled: true}
		h.totalWeight += w
	}

	seen := make(map[NodeID]struct{})
	for e, pins := range edges {
		if len(pins) == 0 {
			return nil, fmt.Errorf("%w: edge %d", ErrEmptyEdge, e)
		}
		clear(seen)
		for _, p := range pins {
			if int(p) >= numNodes {
				return nil, fmt.Errorf("%w: pin %d of edge %d", ErrNodeNotFound, p, e)
			}
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("%w: pin %d of edge %d", ErrDuplicatePin, p, e)
			}
			seen[p] = struct{}{}
		}
		w := int64(1)
		if o.edgeWeights != nil {
			w = o.edgeWeights[e]
		}
		h.edges[e] = hyperedge{
			weight:     w,
			pins:       append([]NodeID(nil), pins...),
			enabled:    true,
			mergedInto: noEdge,
		}
		for _, p := range pins {
			h.nodes[p].edges = append(h.nodes[p].edges, EdgeID(e))
		}
		h.numPins += len(pins)
	}

	h.allocatePartition(o.k)
	return h, nil
}

// InitialNumNodes returns the number of nodes the hypergraph was built with.
func (h *Hypergraph) InitialNumNodes() int { return len(h.nodes) }

// InitialNumEdges returns the number of hyperedges the hypergraph was built with.
func (h *Hypergraph) InitialNumEdges() int { return len(h.edges) }

// CurrentNumNodes returns the number of enabled nodes.
func (h *Hypergraph) CurrentNumNodes() int { return h.numNodes }

// CurrentNumEdges returns the number of enabled hyperedges.
func (h *Hypergraph) CurrentNumEdges() int { return h.numEdges }

// CurrentNumPins returns the number of pins over all enabled hyperedges.
func (h *Hypergraph) CurrentNumPins() int { return h.numPins }

// TotalWeight returns the sum of node weights. Contraction does not change it.
func (h *Hypergraph) TotalWeight() int64 { return h.totalWeight }

// Nodes returns the enabled nodes in ascending order.
// Complexity: O(InitialNumNodes()).
func (h *Hypergraph) Nodes() []NodeID {
	out := make([]NodeID, 0, h.numNodes)
	for u := range h.nodes {
		if h.nodes[u].enabled {
			out = append(out, NodeID(u))
		}
	}
	return out
}

// Edges returns the enabled hyperedges in ascending order.
// Complexity: O(InitialNumEdges()).
func (h *Hypergraph) Edges() []EdgeID {
	out := make([]EdgeID, 0, h.numEdges)
	for e := range h.edges {
		if h.edges[e].enabled {
			out = append(out, EdgeID(e))
		}
	}
	return out
}

// HasNode reports whether u is a valid node identifier.
func (h *Hypergraph) HasNode(u NodeID) bool { return int(u) < len(h.nodes) }

// HasEdge reports whether e is a valid edge identifier.
func (h *Hypergraph) HasEdge(e EdgeID) bool { return int(e) < len(h.edges) }

// NodeIsEnabled reports whether u exists and is not contracted away.
func (h *Hypergraph) NodeIsEnabled(u NodeID) bool {
	return h.HasNode(u) && h.nodes[u].enabled
}

// EdgeIsEnabled reports whether e exists and is not pruned.
func (h *Hypergraph) EdgeIsEnabled(e EdgeID) bool {
	return h.HasEdge(e) && h.edges[e].enabled
}

// NodeWeight returns the weight of u. The caller guarantees HasNode(u).
func (h *Hypergraph) NodeWeight(u NodeID) int64 { return h.nodes[u].weight }

// EdgeWeight returns the weight of e. The caller guarantees HasEdge(e).
func (h *Hypergraph) EdgeWeight(e EdgeID) int64 { return h.edges[e].weight }

// EdgeSize returns the current pin count of e.
func (h *Hypergraph) EdgeSize(e EdgeID) int { return len(h.edges[e].pins) }

// Pins returns the current pins of e. The slice is owned by the hypergraph
// and must not be modified or retained across mutations.
func (h *Hypergraph) Pins(e EdgeID) []NodeID { return h.edges[e].pins }

// IncidentEdges returns the enabled hyperedges incident to u.
// Complexity: O(deg(u)).
func (h *Hypergraph) IncidentEdges(u NodeID) []EdgeID {
	all := h.nodes[u].edges
	out := make([]EdgeID, 0, len(all))
	for _, e := range all {
		if h.edges[e].enabled {
			out = append(out, e)
		}
	}
	return out
}

// NodeDegree returns the number of enabled hyperedges incident to u.
func (h *Hypergraph) NodeDegree(u NodeID) int {
	d := 0
	for _, e := range h.nodes[u].edges {
		if h.edges[e].enabled {
			d++
		}
	}
	return d
}

// HeaviestNodeWeight returns the maximum weight over enabled nodes (0 if none).
func (h *Hypergraph) HeaviestNodeWeight() int64 {
	var max int64
	for u := range h.nodes {
		if h.nodes[u].enabled && h.nodes[u].weight > max {
			max = h.nodes[u].weight
		}
	}
	return max
}

// Snapshot returns the enabled topology and weights in comparable form.
// Partition labels are not part of the snapshot.
func (h *Hypergraph) Snapshot() Snapshot {
	s := Snapshot{
		Nodes: make(map[NodeID]int64, h.numNodes),
		Edges: make(map[EdgeID]EdgeState, h.numEdges),
	}
	for _, u := range h.Nodes() {
		s.Nodes[u] = h.nodes[u].weight
	}
	for _, e := range h.Edges() {
		pins := append([]NodeID(nil), h.edges[e].pins...)
		sort.Slice(pins, func(i, j int) bool { return pins[i] < pins[j] })
		s.Edges[e] = EdgeState{Weight: h.edges[e].weight, Pins: pins}
	}
	return s
}

func (h *Hypergraph) checkNode(u NodeID) error {
	if !h.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	return nil
}

func (h *Hypergraph) checkEdge(e EdgeID) error {
	if !h.HasEdge(e) {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}
	return nil
}

func containsPin(pins []NodeID, u NodeID) bool {
	for _, p := range pins {
		if p == u {
			return true
		}
	}
	return false
}
