package coarsening_test

import (
	"fmt"

	"github.com/katalvlaran/hypart/coarsening"
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/refinement"
)

func ExampleCoarsener() {
	hg, _ := hypergraph.New(6, [][]hypergraph.NodeID{{0, 1, 2}, {2, 3}, {3, 4, 5}, {5, 0}})

	ctx := config.Default()
	ctx.Partition.Objective = config.Cut
	ctx.Setup(hg.TotalWeight(), hg.HeaviestNodeWeight())
	ctx.Coarsening.MaxAllowedNodeWeight = hg.TotalWeight()

	c, _ := coarsening.New(hg, &ctx)
	_ = c.Coarsen(2)
	fmt.Println("coarse nodes:", hg.CurrentNumNodes(), "contractions:", c.Paths().Total())

	for i, u := range hg.Nodes() {
		_ = hg.SetNodePart(u, hypergraph.PartitionID(i))
	}
	_, _ = c.Uncoarsen(refinement.DoNothing{})
	fmt.Println("nodes:", hg.CurrentNumNodes(), "edges:", hg.CurrentNumEdges())
	// Output:
	// coarse nodes: 2 contractions: 4
	// nodes: 6 edges: 4
}
