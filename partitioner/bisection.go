// File: bisection.go
// Role: recursive bisection on top of the multilevel cycle.
package partitioner

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
)

// recursiveBisection splits hg into c.Partition.K blocks by repeated
// multilevel bisections and writes the labels back into hg.
func (p *run) recursiveBisection(hg *hypergraph.Hypergraph, c *config.Context) (bool, error) {
	k := c.Partition.K
	labels := make([]hypergraph.PartitionID, hg.InitialNumNodes())
	mapping := make([]hypergraph.NodeID, hg.InitialNumNodes())
	for i := range mapping {
		mapping[i] = hypergraph.NodeID(i)
	}

	b := bisector{run: p, ctx: c, labels: labels, epsilon: adaptiveEpsilon(c.Partition.Epsilon, k)}
	if err := hg.SetK(2); err != nil {
		return false, err
	}
	if err := b.split(hg, mapping, k, 0); err != nil {
		return false, err
	}

	if err := hg.SetK(k); err != nil {
		return false, err
	}
	for _, u := range hg.Nodes() {
		if err := hg.SetNodePart(u, labels[u]); err != nil {
			return false, err
		}
	}
	return b.improved, nil
}

type bisector struct {
	*run
	ctx      *config.Context
	labels   []hypergraph.PartitionID
	epsilon  float64
	improved bool
}

// split assigns blocks first..first+k−1 to the nodes of sub. mapping
// translates node ids of sub to ids of the input hypergraph.
func (b *bisector) split(sub *hypergraph.Hypergraph, mapping []hypergraph.NodeID, k int, first hypergraph.PartitionID) error {
	if sub.CurrentNumNodes() == 0 {
		return nil
	}
	if k == 1 {
		for _, u := range sub.Nodes() {
			b.labels[mapping[u]] = first
		}
		return nil
	}

	k0 := (k + 1) / 2
	c := b.bisectionContext(sub, k, k0)
	b.log.Debug().
		Int("nodes", sub.CurrentNumNodes()).
		Int("k", k).
		Int("first", int(first)).
		Int64("max_part_weight", c.Partition.MaxPartWeight).
		Msg("bisecting")
	improved, err := b.multilevel(sub, c)
	if err != nil {
		return err
	}
	b.improved = b.improved || improved

	cutNetSplitting := b.ctx.Partition.Objective == config.Km1
	for side, blocks := range [2]int{k0, k - k0} {
		child, childMap, err := sub.Extract(hypergraph.PartitionID(side), cutNetSplitting, 2)
		if err != nil {
			return fmt.Errorf("partitioner: extract block %d: %w", side, err)
		}
		for i, u := range childMap {
			childMap[i] = mapping[u]
		}
		next := first
		if side == 1 {
			next += hypergraph.PartitionID(k0)
		}
		if err := b.split(child, childMap, blocks, next); err != nil {
			return err
		}
	}
	return nil
}

// bisectionContext derives the 2-way context for a sub-hypergraph that will
// eventually hold k blocks, k0 of them on side 0. Each side is bounded in
// proportion to the blocks it will hold.
func (b *bisector) bisectionContext(sub *hypergraph.Hypergraph, k, k0 int) *config.Context {
	c := *b.ctx
	c.Partition.K = 2
	c.Partition.Epsilon = b.epsilon
	c.LocalSearch.Algorithm = config.TwoWayFM
	c.Setup(sub.TotalWeight(), sub.HeaviestNodeWeight())

	total := sub.TotalWeight()
	c.Partition.MaxPartWeights = make([]int64, 2)
	for side, blocks := range [2]int{k0, k - k0} {
		perfect := (total*int64(blocks) + int64(k) - 1) / int64(k)
		c.Partition.MaxPartWeights[side] = int64(math.Ceil((1 + b.epsilon) * float64(perfect)))
	}
	c.Partition.MaxPartWeight = max(c.Partition.MaxPartWeights[0], c.Partition.MaxPartWeights[1])
	return &c
}

// adaptiveEpsilon spreads the imbalance over the ⌈log2 k⌉ bisection levels
// so that the product of the per-level slack stays within 1+ε.
func adaptiveEpsilon(epsilon float64, k int) float64 {
	levels := math.Ceil(math.Log2(float64(k)))
	if levels < 1 {
		return epsilon
	}
	return math.Pow(1+epsilon, 1/levels) - 1
}
