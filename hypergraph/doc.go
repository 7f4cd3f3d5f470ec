// Package hypergraph defines the mutable Hypergraph used by the multilevel
// partitioner, together with the contraction/uncontraction primitives,
// edge-pruning primitives and the partition bookkeeping that the coarsening
// engine and the refiners build upon.
//
// A Hypergraph H = (V, E) consists of weighted nodes and weighted hyperedges.
// Every hyperedge connects an arbitrary set of nodes (its pins). Node and edge
// identifiers are dense integers assigned at construction time and stay
// stable for the whole lifetime of the graph:
//
//   - Contract(u, v) merges v into u. u keeps its identifier, v becomes
//     disabled until the matching Uncontract reactivates it.
//   - Disabled hyperedges (single-pin or parallel edges pruned during
//     coarsening) keep their pin lists in sync with later contractions, so
//     they can be restored in any order that respects the LIFO discipline of
//     the contraction paths. A folded parallel edge remembers its
//     representative, so restoring it takes its weight back along the whole
//     merge chain.
//
// Partition bookkeeping:
//
//	– K() blocks, PartID(u) per node (InvalidPartition when unassigned).
//	– PartWeight(p), PartSize(p) per block.
//	– PinCountInPart(e, p) per hyperedge and block; Connectivity(e).
//	– Gain(u): cut gain of moving u to the other block of a bipartition.
//
// Errors (sentinel):
//
//	– ErrNodeNotFound     node identifier out of range.
//	– ErrEdgeNotFound     edge identifier out of range.
//	– ErrNodeDisabled     operation requires an enabled node.
//	– ErrSelfContraction  Contract(u, u).
//	– ErrPartMismatch     contraction partners live in different blocks.
//	– ErrStructure        corrupted contraction forest or pruning history.
//	– ErrBadPartition     invalid block identifier or k.
//	– ErrEmptyEdge        hyperedge without pins at construction.
//	– ErrDuplicatePin     hyperedge lists the same pin twice.
//	– ErrWeightsMismatch  weight slice length differs from element count.
//
// Concurrency:
//
//	A Hypergraph is NOT safe for concurrent mutation. The partitioner mutates
//	it from a single goroutine.
//
// Example:
//
//	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{{0, 1}, {1, 2, 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := hg.Contract(1, 2)
//	_ = hg.Uncontract(m, nil)
package hypergraph
