package initial

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypart/hypergraph"
)

// Spectral bisects along the Fiedler vector of the clique-expansion
// Laplacian, where every hyperedge e contributes w(e)/(|e|−1) to each pair of
// its pins. Nodes are visited by ascending Fiedler value (random order among
// equal values) and fill block 0 up to its share of the total weight; the
// rest goes to block 1. The share is half, or proportional to Bounds when
// both blocks have one.
type Spectral struct {
	Bounds []int64
}

// Assign implements Algorithm. For k > 2, fewer than two nodes or a failed
// eigendecomposition it delegates to BFS.
func (a Spectral) Assign(hg *hypergraph.Hypergraph, r *rand.Rand) error {
	nodes := hg.Nodes()
	if hg.K() != 2 || len(nodes) < 2 {
		return BFS{Bounds: a.Bounds}.Assign(hg, r)
	}
	fiedler, ok := fiedlerVector(hg, nodes)
	if !ok {
		return BFS{Bounds: a.Bounds}.Assign(hg, r)
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	slices.SortStableFunc(order, func(i, j int) int {
		switch {
		case fiedler[i] < fiedler[j]:
			return -1
		case fiedler[i] > fiedler[j]:
			return 1
		}
		return 0
	})

	total := hg.TotalWeight()
	share := (total + 1) / 2
	if b0, b1 := bound(a.Bounds, 0), bound(a.Bounds, 1); b0 > 0 && b1 > 0 {
		share = (total*b0 + b0 + b1 - 1) / (b0 + b1)
	}
	for _, i := range order {
		u := nodes[i]
		p := hypergraph.PartitionID(1)
		if hg.PartWeight(0)+hg.NodeWeight(u) <= share {
			p = 0
		}
		if err := hg.SetNodePart(u, p); err != nil {
			return err
		}
	}
	return nil
}

// fiedlerVector returns the eigenvector of the second smallest eigenvalue
// of the clique-expansion Laplacian, indexed like nodes.
func fiedlerVector(hg *hypergraph.Hypergraph, nodes []hypergraph.NodeID) ([]float64, bool) {
	n := len(nodes)
	index := make(map[hypergraph.NodeID]int, n)
	for i, u := range nodes {
		index[u] = i
	}

	lap := mat.NewSymDense(n, nil)
	for _, e := range hg.Edges() {
		pins := hg.Pins(e)
		if len(pins) < 2 {
			continue
		}
		w := float64(hg.EdgeWeight(e)) / float64(len(pins)-1)
		for x := 0; x < len(pins); x++ {
			a := index[pins[x]]
			for y := x + 1; y < len(pins); y++ {
				b := index[pins[y]]
				lap.SetSym(a, b, lap.At(a, b)-w)
				lap.SetSym(a, a, lap.At(a, a)+w)
				lap.SetSym(b, b, lap.At(b, b)+w)
			}
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(lap, true) {
		return nil, false
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	fiedler := make([]float64, n)
	for i := range fiedler {
		fiedler[i] = vecs.At(i, 1)
	}
	return fiedler, true
}
