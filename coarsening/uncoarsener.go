// File: uncoarsener.go
// Role: Uncoarsening Driver (root-wise unwinding interleaved with refinement).
package coarsening

import (
	"fmt"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/refinement"
)

// Uncoarsen undoes every recorded contraction and refines the partition
// after each root's forest has been unwound. It reports whether the final
// objective is strictly better than the objective of the coarsest partition.
//
// Implementation:
//   - Stage 1: Snapshot metrics and the initial objective; initialize r.
//   - Stage 2: Capture the active nodes (roots) once, in ascending order.
//   - Stage 3: For each root: restore the duplicates filed under it, then
//     unwind its contraction forest depth-first with an explicit work
//     stack. A reactivated node is unwound completely before its
//     representative continues with older mementos.
//   - Stage 4: Consume the weight history down to the current node count and
//     refine around the root and every reactivated node.
//   - Stage 5: Final metrics (km1 recomputed in recursive bisection mode).
//
// Uncontractions feed a GainChanges accumulator when the configured local
// search is 2-way FM; other refiners receive nil.
//
// Errors: config.ErrUnsupportedObjective, ErrNotPartitioned, structural
// errors (hypergraph.ErrStructure, ErrEmptyPath) and refiner errors.
func (c *Coarsener) Uncoarsen(r refinement.Refiner) (bool, error) {
	hg := c.hg
	if err := c.ctx.Partition.Objective.Validate(); err != nil {
		return false, err
	}
	if !hg.IsPartitioned() {
		return false, ErrNotPartitioned
	}

	current := metrics.Compute(hg)
	tracker, err := c.startObjective(current)
	if err != nil {
		return false, err
	}
	if err := r.Initialize(hg); err != nil {
		return false, err
	}

	var changes *hypergraph.GainChanges
	if c.ctx.LocalSearch.Algorithm == config.TwoWayFM {
		changes = &hypergraph.GainChanges{}
	}
	var seeds []hypergraph.NodeID
	var work []hypergraph.NodeID

	roots := hg.Nodes()
	for _, root := range roots {
		seeds = append(seeds[:0], root)
		if err := c.restoreScoped(root); err != nil {
			return false, err
		}

		work = append(work[:0], root)
		for len(work) > 0 {
			n := work[len(work)-1]
			if c.paths.Empty(n) {
				work = work[:len(work)-1]
				continue
			}
			m, err := c.paths.Pop(n)
			if err != nil {
				return false, err
			}
			if err := c.uncontract(m, changes); err != nil {
				return false, err
			}
			seeds = append(seeds, m.Contraction.V)
			work = append(work, m.Contraction.V)
		}

		bound := c.history.Bound(hg.CurrentNumNodes())
		current, err = r.Refine(seeds, changes, current, bound.MaxNodeWeight)
		if err != nil {
			return false, err
		}
		if changes != nil {
			changes.Reset()
		}
	}

	improved, err := c.finishObjective(tracker, &current)
	if err != nil {
		return false, err
	}
	c.log.Info().
		Int64("cut", current.Cut).
		Int64("km1", current.Km1).
		Float64("imbalance", current.Imbalance).
		Bool("improved", improved).
		Msg("uncoarsening done")
	return improved, nil
}

// uncontract restores the pruned hyperedges of m and reverses its contraction.
// changes may be nil.
func (c *Coarsener) uncontract(m Memento, changes *hypergraph.GainChanges) error {
	u, v := m.Contraction.U, m.Contraction.V
	c.log.Debug().Uint32("u", uint32(u)).Uint32("v", uint32(v)).Msg("uncontracting")

	if err := c.restorePruned(m); err != nil {
		return err
	}
	if err := c.hg.Uncontract(m.Contraction, changes); err != nil {
		return fmt.Errorf("coarsening: uncontract (%d,%d): %w", u, v, err)
	}
	c.stats.Uncontraction()
	c.notify(Uncontracted, u, v)
	return nil
}
