package initial

import (
	"math/rand"

	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/rng"
)

// BFS grows all blocks breadth-first at once. The lightest block takes the
// next unassigned node of its frontier; a block with an exhausted frontier
// is reseeded with a random unassigned node. With Bounds, fill is measured
// relative to each block's bound.
type BFS struct {
	Bounds []int64
}

// grower carries the mutable state of one BFS assignment.
type grower struct {
	hg     *hypergraph.Hypergraph
	queues [][]hypergraph.NodeID
	pool   []hypergraph.NodeID // random order, scanned for seeds
	next   int
}

// Assign implements Algorithm.
func (a BFS) Assign(hg *hypergraph.Hypergraph, r *rand.Rand) error {
	pool := hg.Nodes()
	rng.ShuffleNodes(pool, r)
	g := &grower{
		hg:     hg,
		queues: make([][]hypergraph.NodeID, hg.K()),
		pool:   pool,
	}
	for assigned := 0; assigned < len(pool); assigned++ {
		p := lightest(hg, a.Bounds)
		u, ok := g.dequeue(p)
		if !ok {
			u = g.seed()
		}
		if err := hg.SetNodePart(u, p); err != nil {
			return err
		}
		g.enqueueNeighbors(u, p)
	}
	return nil
}

// dequeue pops the frontier of p until an unassigned node shows up.
func (g *grower) dequeue(p hypergraph.PartitionID) (hypergraph.NodeID, bool) {
	q := g.queues[p]
	for len(q) > 0 {
		u := q[0]
		q = q[1:]
		if g.hg.PartID(u) == hypergraph.InvalidPartition {
			g.queues[p] = q
			return u, true
		}
	}
	g.queues[p] = q
	return 0, false
}

// seed returns the next unassigned node of the shuffled pool. The caller
// guarantees that one exists.
func (g *grower) seed() hypergraph.NodeID {
	for g.hg.PartID(g.pool[g.next]) != hypergraph.InvalidPartition {
		g.next++
	}
	return g.pool[g.next]
}

// enqueueNeighbors appends the unassigned neighbors of u to p's frontier.
func (g *grower) enqueueNeighbors(u hypergraph.NodeID, p hypergraph.PartitionID) {
	for _, e := range g.hg.IncidentEdges(u) {
		for _, v := range g.hg.Pins(e) {
			if g.hg.PartID(v) == hypergraph.InvalidPartition {
				g.queues[p] = append(g.queues[p], v)
			}
		}
	}
}
