// File: scheduler.go
// Role: Coarsening Scheduler (rating rounds over a max-priority queue).
package coarsening

import (
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/rng"
	"github.com/katalvlaran/hypart/stats"
)

// Coarsen contracts node pairs until at most limit nodes remain or a round
// makes no progress.
//
// Round:
//  1. Shuffle the active nodes with the coarsener's random source.
//  2. Rate each node; push (node, score) for every valid rating and remember
//     its target. Each node enters the queue at most once per round.
//  3. Pop the best entry. Contract it if node and target are still active,
//     distinct, in the same block and their merged weight stays within
//     Coarsening.MaxAllowedNodeWeight; otherwise discard it.
//  4. Stop when the queue is empty or the limit is reached.
//
// After every productive round the level is appended to the weight history.
// Once coarsening stops, identical hyperedges left in the coarsest
// hypergraph are merged (see removeDuplicateEdges).
//
// Returns config.ErrUnsupportedObjective for an unknown objective and
// structural errors from the hypergraph.
func (c *Coarsener) Coarsen(limit int) error {
	if err := c.ctx.Partition.Objective.Validate(); err != nil {
		return err
	}
	hg := c.hg
	if c.history.Len() == 0 {
		c.history.Push(WeightBound{NumNodes: hg.CurrentNumNodes(), MaxNodeWeight: hg.HeaviestNodeWeight()})
	}

	for hg.CurrentNumNodes() > limit {
		contracted, err := c.round(limit)
		if err != nil {
			return err
		}
		c.stats.Round()
		c.log.Debug().
			Int("contracted", contracted).
			Int("nodes", hg.CurrentNumNodes()).
			Int("edges", hg.CurrentNumEdges()).
			Msg("coarsening round")
		if contracted == 0 {
			break
		}
		c.history.Push(WeightBound{NumNodes: hg.CurrentNumNodes(), MaxNodeWeight: hg.HeaviestNodeWeight()})
	}

	if err := c.removeDuplicateEdges(); err != nil {
		return err
	}
	c.log.Info().
		Int("nodes", hg.CurrentNumNodes()).
		Int("edges", hg.CurrentNumEdges()).
		Int("contractions", c.paths.Total()).
		Msg("coarsening done")
	return nil
}

func (c *Coarsener) round(limit int) (int, error) {
	hg := c.hg
	nodes := hg.Nodes()
	rng.ShuffleNodes(nodes, c.rand)

	c.queue.Clear()
	for _, u := range nodes {
		r := c.rater.Rate(u)
		if r.Valid {
			c.queue.Push(u, r.Value)
			c.target[u] = r.Target
		}
	}

	contracted := 0
	for hg.CurrentNumNodes() > limit {
		u, _, ok := c.queue.Pop()
		if !ok {
			break
		}
		v := c.target[u]
		if !hg.NodeIsEnabled(u) || !hg.NodeIsEnabled(v) || u == v || hg.PartID(u) != hg.PartID(v) {
			c.stats.Stale()
			continue
		}
		if hg.NodeWeight(u)+hg.NodeWeight(v) > c.ctx.Coarsening.MaxAllowedNodeWeight {
			c.stats.RejectedWeight()
			continue
		}
		if err := c.performContraction(u, v); err != nil {
			return contracted, err
		}
		contracted++
	}
	return contracted, nil
}

// removeDuplicateEdges merges identical hyperedges of the coarsest graph.
// Such pairs can only stem from the input, since every contraction merges
// the duplicates it creates. Each pair is filed under the smallest pin of
// the hyperedge: roots are unwound in ascending order, so that root is the
// first whose uncontractions touch the edge.
func (c *Coarsener) removeDuplicateEdges() error {
	hg := c.hg
	for _, p := range hg.ParallelEdges(hg.Edges()) {
		if err := hg.MergeParallelEdge(p); err != nil {
			return err
		}
		scope := minPin(hg.Pins(p.Removed))
		c.scoped[scope] = append(c.scoped[scope], p)
		c.stats.Add(stats.RemovedParallel, 1)
	}
	return nil
}

func minPin(pins []hypergraph.NodeID) hypergraph.NodeID {
	m := pins[0]
	for _, p := range pins[1:] {
		if p < m {
			m = p
		}
	}
	return m
}
