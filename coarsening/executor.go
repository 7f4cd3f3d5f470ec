// File: executor.go
// Role: Contraction Executor (contract, prune, record) and its inverse.
package coarsening

import (
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/stats"
)

// performContraction merges v into u, prunes the hyperedges of u that became
// single-pin or parallel, and pushes the memento onto u's path.
func (c *Coarsener) performContraction(u, v hypergraph.NodeID) error {
	hg := c.hg
	cm, err := hg.Contract(u, v)
	if err != nil {
		return err
	}
	m := Memento{Contraction: cm}

	for _, e := range hg.IncidentEdges(u) {
		if hg.EdgeSize(e) == 1 {
			if err := hg.DisableEdge(e); err != nil {
				return err
			}
			m.RemovedSingleNodeEdges = append(m.RemovedSingleNodeEdges, e)
		}
	}
	for _, p := range hg.ParallelEdges(hg.IncidentEdges(u)) {
		if err := hg.MergeParallelEdge(p); err != nil {
			return err
		}
		m.RemovedParallelEdges = append(m.RemovedParallelEdges, p)
	}

	c.paths.Push(m)
	c.stats.Contraction()
	c.stats.Add(stats.RemovedSingle, float64(len(m.RemovedSingleNodeEdges)))
	c.stats.Add(stats.RemovedParallel, float64(len(m.RemovedParallelEdges)))
	c.notify(Contracted, u, v)
	return nil
}

// restorePruned re-enables the hyperedges pruned after m's contraction,
// parallel ones first since they were removed last.
func (c *Coarsener) restorePruned(m Memento) error {
	hg := c.hg
	for i := len(m.RemovedParallelEdges) - 1; i >= 0; i-- {
		if err := hg.RestoreParallelEdge(m.RemovedParallelEdges[i]); err != nil {
			return err
		}
	}
	for i := len(m.RemovedSingleNodeEdges) - 1; i >= 0; i-- {
		if err := hg.RestoreEdge(m.RemovedSingleNodeEdges[i]); err != nil {
			return err
		}
	}
	return nil
}

// restoreScoped re-enables the duplicates the final sweep filed under root.
func (c *Coarsener) restoreScoped(root hypergraph.NodeID) error {
	pairs := c.scoped[root]
	for i := len(pairs) - 1; i >= 0; i-- {
		if err := c.hg.RestoreParallelEdge(pairs[i]); err != nil {
			return err
		}
	}
	delete(c.scoped, root)
	return nil
}
