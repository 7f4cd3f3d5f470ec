// Package coarsening implements the multilevel engine: the contraction loop
// that shrinks a hypergraph and the uncoarsening driver that undoes it while
// refining the partition.
//
// Components:
//
//	– ContractionPaths  per-representative LIFO stacks of Memento.
//	– Coarsen           rating rounds over a max-priority queue
//	                    (ties: lower NodeID wins); each pop contracts an
//	                    admissible pair and prunes single-pin and parallel
//	                    hyperedges.
//	– Uncoarsen         for each root of the coarsest graph, unwinds its
//	                    contraction forest depth-first (explicit work stack),
//	                    then refines around the reactivated nodes.
//	– WeightHistory     node-weight bound per coarsening level.
//
// Invariants:
//
//   - Each node is queued at most once per round.
//   - A path is non-empty iff its node represents merged partners.
//   - Mementos of one path are undone strictly newest first; an absorbed
//     node's own path is unwound right after it is reactivated.
//   - Contractions performed equal uncontractions performed, and every
//     undo restores topology and weights exactly.
//
// Errors:
//
//	– config.ErrUnsupportedObjective  objective other than cut or km1.
//	– ErrNotSetUp                     context bounds missing (call Setup).
//	– ErrNotPartitioned               Uncoarsen on an unassigned graph.
//	– ErrEmptyPath, hypergraph.ErrStructure  corrupted contraction forest.
//
// Example:
//
//	ctx := config.Default()
//	ctx.Setup(hg.TotalWeight(), hg.HeaviestNodeWeight())
//	c, _ := coarsening.New(hg, &ctx)
//	_ = c.Coarsen(ctx.Coarsening.ContractionLimit)
//	// ... partition the coarsest hypergraph ...
//	r, _ := refinement.New(&ctx)
//	improved, err := c.Uncoarsen(r)
package coarsening
