package hypergraph

import "errors"

// Sentinel errors for hypergraph operations.
var (
	// ErrNodeNotFound indicates a node identifier outside [0, InitialNumNodes()).
	ErrNodeNotFound = errors.New("hypergraph: node not found")

	// ErrEdgeNotFound indicates an edge identifier outside [0, InitialNumEdges()).
	ErrEdgeNotFound = errors.New("hypergraph: edge not found")

	// ErrNodeDisabled indicates that an operation referenced a contracted node.
	ErrNodeDisabled = errors.New("hypergraph: node is disabled")

	// ErrSelfContraction indicates an attempt to contract a node with itself.
	ErrSelfContraction = errors.New("hypergraph: cannot contract a node with itself")

	// ErrPartMismatch indicates contraction partners assigned to different blocks.
	ErrPartMismatch = errors.New("hypergraph: contraction partners are in different blocks")

	// ErrStructure indicates a corrupted contraction forest or pruning history,
	// e.g. an uncontraction applied out of stack order.
	ErrStructure = errors.New("hypergraph: structural violation")

	// ErrBadPartition indicates an invalid block identifier or block count.
	ErrBadPartition = errors.New("hypergraph: invalid partition")

	// ErrEmptyEdge indicates a hyperedge without pins.
	ErrEmptyEdge = errors.New("hypergraph: hyperedge has no pins")

	// ErrDuplicatePin indicates a hyperedge listing the same pin twice.
	ErrDuplicatePin = errors.New("hypergraph: duplicate pin in hyperedge")

	// ErrWeightsMismatch indicates a weight slice of the wrong length.
	ErrWeightsMismatch = errors.New("hypergraph: weight count does not match element count")
)

// NodeID identifies a hypernode. Identifiers are dense: 0..InitialNumNodes()-1.
type NodeID uint32

// EdgeID identifies a hyperedge. Identifiers are dense: 0..InitialNumEdges()-1.
type EdgeID uint32

// PartitionID identifies a block of the partition.
type PartitionID int32

// InvalidPartition marks a node that is not assigned to any block.
const InvalidPartition PartitionID = -1

// Memento is the primitive undo record of one Contract(U, V) call.
//
// Shared lists the edges that contained both U and V (V was dropped from
// them); Relinked lists the edges of V that were redirected to U. Both are
// kept in the order they were processed, Uncontract replays them backwards.
type Memento struct {
	U        NodeID
	V        NodeID
	Shared   []EdgeID
	Relinked []EdgeID
}

// GainDelta is one gain update produced by an uncontraction.
type GainDelta struct {
	Node  NodeID
	Delta int64
}

// GainChanges accumulates the gain updates of a sequence of uncontractions.
//
// Representative[i] is the change of the representative's gain caused by the
// i-th uncontraction; ContractionPartner[i] is the gain of the reactivated
// partner (a delta relative to zero, since it had no gain before).
type GainChanges struct {
	Representative     []GainDelta
	ContractionPartner []GainDelta
}

// Reset truncates both lists, keeping their capacity.
func (c *GainChanges) Reset() {
	c.Representative = c.Representative[:0]
	c.ContractionPartner = c.ContractionPartner[:0]
}

// Len returns the number of recorded uncontractions.
func (c *GainChanges) Len() int { return len(c.Representative) }

// EdgeState is the comparable view of one enabled hyperedge in a Snapshot.
type EdgeState struct {
	Weight int64
	Pins   []NodeID // sorted ascending
}

// Snapshot captures topology and weights (not partition labels) of the
// enabled part of a hypergraph.
type Snapshot struct {
	Nodes map[NodeID]int64
	Edges map[EdgeID]EdgeState
}

// Option configures a Hypergraph before creation.
type Option func(*options)

type options struct {
	nodeWeights []int64
	edgeWeights []int64
	k           int
}

// WithNodeWeights sets explicit node weights (default 1 per node).
func WithNodeWeights(w []int64) Option {
	return func(o *options) { o.nodeWeights = w }
}

// WithEdgeWeights sets explicit hyperedge weights (default 1 per edge).
func WithEdgeWeights(w []int64) Option {
	return func(o *options) { o.edgeWeights = w }
}

// WithK sets the number of blocks (default 2).
func WithK(k int) Option {
	return func(o *options) { o.k = k }
}

type hypernode struct {
	weight  int64
	edges   []EdgeID // incident edges, enabled or not
	enabled bool
}

type hyperedge struct {
	weight         int64
	pins           []NodeID
	enabled        bool
	mergedInto     EdgeID // representative while folded as a parallel edge, else noEdge
	split          bool   // unfolded by Uncontract before its merge was undone
	pinCountInPart []int32
}

const noEdge = ^EdgeID(0)
