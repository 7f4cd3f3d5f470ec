package refinement

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/pq"
	"github.com/katalvlaran/hypart/metrics"
)

// TwoWayFM is a localized Fiduccia–Mattheyses local search on bipartitions.
//
// The gain cache survives between Refine calls. Uncontractions only change
// the gains of the representative and the reactivated partner, and both are
// reported through GainChanges; everything else in the cache stays valid.
//
// One pass starts from the border seeds, repeatedly moves the unlocked node
// of highest gain that keeps the target block within the balance bound,
// stops after MaxFruitlessMoves moves without improvement, and rolls back
// to the best prefix. Passes repeat while they improve, up to MaxIterations.
type TwoWayFM struct {
	ctx *config.Context
	log zerolog.Logger

	hg     *hypergraph.Hypergraph
	bounds []int64
	gain   []int64
	locked []bool
	queue  *pq.Queue[int64]
	moves  []move
}

type move struct {
	node     hypergraph.NodeID
	from, to hypergraph.PartitionID
}

// NewTwoWayFM returns an uninitialized 2-way FM refiner.
func NewTwoWayFM(ctx *config.Context, opts ...Option) *TwoWayFM {
	o := buildOptions(opts)
	return &TwoWayFM{ctx: ctx, log: o.logger}
}

// Initialize binds the refiner to hg and fills the gain cache.
// hg must be a bipartition.
func (r *TwoWayFM) Initialize(hg *hypergraph.Hypergraph) error {
	if hg.K() != 2 {
		return ErrNotBipartition
	}
	n := hg.InitialNumNodes()
	r.hg = hg
	r.bounds = blockBounds(r.ctx, hg)
	r.gain = make([]int64, n)
	r.locked = make([]bool, n)
	r.queue = pq.New[int64](n)
	r.moves = r.moves[:0]
	for _, u := range hg.Nodes() {
		r.gain[u] = hg.Gain(u)
	}
	return nil
}

// Gain returns the cached gain of u.
func (r *TwoWayFM) Gain(u hypergraph.NodeID) int64 { return r.gain[u] }

// Refine implements Refiner. The returned Km1 is current.Km1 unchanged.
func (r *TwoWayFM) Refine(seeds []hypergraph.NodeID, changes *hypergraph.GainChanges,
	current metrics.Metrics, maxNodeWeight int64) (metrics.Metrics, error) {
	if r.hg == nil {
		return current, ErrNotInitialized
	}
	r.applyChanges(seeds, changes)

	best := current
	for it := 0; it < r.ctx.LocalSearch.MaxIterations; it++ {
		next, improved, err := r.pass(seeds, best, maxNodeWeight)
		if err != nil {
			return best, err
		}
		best = next
		if !improved {
			break
		}
	}
	r.log.Debug().
		Int("seeds", len(seeds)).
		Int64("cut", best.Cut).
		Float64("imbalance", best.Imbalance).
		Msg("twoway fm")
	return best, nil
}

// applyChanges folds the uncontraction gain updates into the cache in
// recording order. Without an accumulator the seeds are recomputed.
func (r *TwoWayFM) applyChanges(seeds []hypergraph.NodeID, changes *hypergraph.GainChanges) {
	if changes == nil {
		for _, u := range seeds {
			r.gain[u] = r.hg.Gain(u)
		}
		return
	}
	for i := range changes.Representative {
		rep := changes.Representative[i]
		r.gain[rep.Node] += rep.Delta
		partner := changes.ContractionPartner[i]
		r.gain[partner.Node] = partner.Delta
	}
}

func (r *TwoWayFM) pass(seeds []hypergraph.NodeID, current metrics.Metrics,
	maxNodeWeight int64) (metrics.Metrics, bool, error) {
	hg := r.hg
	r.queue.Clear()
	r.moves = r.moves[:0]
	for _, u := range seeds {
		if hg.NodeIsEnabled(u) && hg.IsBorderNode(u) {
			r.queue.Push(u, r.gain[u])
		}
	}

	cut, imbalance := current.Cut, current.Imbalance
	bestCut, bestImbalance, bestPrefix := cut, imbalance, 0
	fruitless := 0
	for fruitless < r.ctx.LocalSearch.MaxFruitlessMoves {
		u, g, ok := r.queue.Pop()
		if !ok {
			break
		}
		if r.locked[u] || !hg.NodeIsEnabled(u) || g != r.gain[u] {
			continue // stale
		}
		from := hg.PartID(u)
		to := 1 - from
		w := hg.NodeWeight(u)
		if w > maxNodeWeight || hg.PartWeight(to)+w > r.bounds[to] {
			continue
		}
		if err := hg.ChangeNodePart(u, from, to); err != nil {
			return current, false, err
		}
		r.locked[u] = true
		r.moves = append(r.moves, move{node: u, from: from, to: to})
		cut -= g
		imbalance = metrics.Imbalance(hg)
		r.updateGains(u, true)

		if better(cut, imbalance, bestCut, bestImbalance) {
			bestCut, bestImbalance, bestPrefix = cut, imbalance, len(r.moves)
			fruitless = 0
		} else {
			fruitless++
		}
	}

	for i := len(r.moves) - 1; i >= bestPrefix; i-- {
		m := r.moves[i]
		if err := hg.ChangeNodePart(m.node, m.to, m.from); err != nil {
			return current, false, err
		}
		r.updateGains(m.node, false)
	}
	for _, m := range r.moves {
		r.locked[m.node] = false
	}

	return metrics.Metrics{Cut: bestCut, Km1: current.Km1, Imbalance: bestImbalance}, bestPrefix > 0, nil
}

// updateGains refreshes the cached gains of u and all its neighbors after u
// moved. When push is set, unlocked neighbors whose gain changed are queued.
func (r *TwoWayFM) updateGains(u hypergraph.NodeID, push bool) {
	hg := r.hg
	r.gain[u] = hg.Gain(u)
	for _, e := range hg.IncidentEdges(u) {
		for _, v := range hg.Pins(e) {
			if v == u {
				continue
			}
			g := hg.Gain(v)
			if g == r.gain[v] {
				continue
			}
			r.gain[v] = g
			if push && !r.locked[v] {
				r.queue.Push(v, g)
			}
		}
	}
}
