package refinement

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
)

// LabelPropagation moves nodes greedily to the adjacent block with the best
// km1 gain. A zero-gain move is taken only when it strictly reduces the
// weight of the heavier of the two blocks involved.
//
// Each iteration visits the current frontier once; nodes adjacent to a moved
// node form the next frontier. The first frontier is the seed set.
type LabelPropagation struct {
	ctx *config.Context
	log zerolog.Logger

	hg        *hypergraph.Hypergraph
	bounds    []int64
	connected []int64 // per block, scratch
	inNext    []bool
}

// NewLabelPropagation returns an uninitialized label propagation refiner.
func NewLabelPropagation(ctx *config.Context, opts ...Option) *LabelPropagation {
	o := buildOptions(opts)
	return &LabelPropagation{ctx: ctx, log: o.logger}
}

// Initialize implements Refiner.
func (r *LabelPropagation) Initialize(hg *hypergraph.Hypergraph) error {
	r.hg = hg
	r.bounds = blockBounds(r.ctx, hg)
	r.connected = make([]int64, hg.K())
	r.inNext = make([]bool, hg.InitialNumNodes())
	return nil
}

// Refine implements Refiner. changes is ignored.
func (r *LabelPropagation) Refine(seeds []hypergraph.NodeID, _ *hypergraph.GainChanges,
	current metrics.Metrics, maxNodeWeight int64) (metrics.Metrics, error) {
	if r.hg == nil {
		return current, ErrNotInitialized
	}
	hg := r.hg
	m := current
	frontier := append([]hypergraph.NodeID(nil), seeds...)
	moves := 0
	for it := 0; it < r.ctx.LocalSearch.MaxIterations && len(frontier) > 0; it++ {
		var next []hypergraph.NodeID
		for _, u := range frontier {
			if !hg.NodeIsEnabled(u) || hg.PartID(u) == hypergraph.InvalidPartition {
				continue
			}
			to, gain, dCut, ok := r.bestMove(u, maxNodeWeight)
			if !ok {
				continue
			}
			if err := hg.ChangeNodePart(u, hg.PartID(u), to); err != nil {
				return m, err
			}
			moves++
			m.Km1 -= gain
			m.Cut += dCut
			for _, e := range hg.IncidentEdges(u) {
				for _, v := range hg.Pins(e) {
					if v != u && !r.inNext[v] {
						r.inNext[v] = true
						next = append(next, v)
					}
				}
			}
		}
		for _, v := range next {
			r.inNext[v] = false
		}
		frontier = next
	}
	m.Imbalance = metrics.Imbalance(hg)

	r.log.Debug().
		Int("seeds", len(seeds)).
		Int("moves", moves).
		Int64("km1", m.Km1).
		Msg("label propagation")
	return m, nil
}

// bestMove returns the block u should move to, the km1 gain and the cut
// delta of that move.
//
//	gain(u, p) = Σ_e w(e)·[Φ(e, from) = 1] − Σ_e w(e)·[Φ(e, p) = 0]
func (r *LabelPropagation) bestMove(u hypergraph.NodeID, maxNodeWeight int64) (hypergraph.PartitionID, int64, int64, bool) {
	hg := r.hg
	w := hg.NodeWeight(u)
	if w > maxNodeWeight {
		return 0, 0, 0, false
	}
	from := hg.PartID(u)
	clear(r.connected)
	var leave, total int64
	edges := hg.IncidentEdges(u)
	for _, e := range edges {
		we := hg.EdgeWeight(e)
		total += we
		if hg.PinCountInPart(e, from) == 1 {
			leave += we
		}
		for p := range r.connected {
			if hg.PinCountInPart(e, hypergraph.PartitionID(p)) > 0 {
				r.connected[p] += we
			}
		}
	}

	best := hypergraph.InvalidPartition
	var bestGain int64
	for p := range r.connected {
		to := hypergraph.PartitionID(p)
		if to == from || r.connected[p] == 0 || hg.PartWeight(to)+w > r.bounds[to] {
			continue
		}
		gain := leave - (total - r.connected[p])
		if gain < 0 {
			continue
		}
		if gain == 0 && hg.PartWeight(to)+w >= hg.PartWeight(from) {
			continue
		}
		if best == hypergraph.InvalidPartition || gain > bestGain {
			best, bestGain = to, gain
		}
	}
	if best == hypergraph.InvalidPartition {
		return 0, 0, 0, false
	}

	var dCut int64
	for _, e := range edges {
		before := hg.Connectivity(e)
		after := before
		if hg.PinCountInPart(e, from) == 1 {
			after--
		}
		if hg.PinCountInPart(e, best) == 0 {
			after++
		}
		switch {
		case before > 1 && after <= 1:
			dCut -= hg.EdgeWeight(e)
		case before <= 1 && after > 1:
			dCut += hg.EdgeWeight(e)
		}
	}
	return best, bestGain, dCut, true
}
