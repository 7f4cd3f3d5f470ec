package initial

import (
	"math/rand"

	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/rng"
)

// Random assigns nodes in random order to random blocks with room left.
type Random struct {
	// Bounds limits the weight of each block; missing or 0 entries do not.
	Bounds []int64
}

// Assign implements Algorithm.
func (a Random) Assign(hg *hypergraph.Hypergraph, r *rand.Rand) error {
	nodes := hg.Nodes()
	rng.ShuffleNodes(nodes, r)
	open := make([]hypergraph.PartitionID, 0, hg.K())
	for _, u := range nodes {
		w := hg.NodeWeight(u)
		open = open[:0]
		for p := 0; p < hg.K(); p++ {
			pid := hypergraph.PartitionID(p)
			if b := bound(a.Bounds, p); b == 0 || hg.PartWeight(pid)+w <= b {
				open = append(open, pid)
			}
		}
		target := lightest(hg, a.Bounds)
		if len(open) > 0 {
			target = open[r.Intn(len(open))]
		}
		if err := hg.SetNodePart(u, target); err != nil {
			return err
		}
	}
	return nil
}
