// Package rating scores contraction partners for the coarsening scheduler.
//
// A Rater is a pure function of the current hypergraph: rating the same node
// twice without an intervening contraction yields the same Rating, and
// rating never mutates the graph.
//
// HeavyEdgeRater implements the heavy-edge rule with a weight penalty:
//
//	r(u,v) = Σ_{e ∋ u,v} w(e)/(|e|−1)  /  (c(u)·c(v))
//
// A partner v is admissible when it is active, differs from u, keeps
// c(u)+c(v) within the maximum node weight, and lies in the same block as u.
// Among admissible partners with equal score the lower NodeID wins.
package rating

import (
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
)

// Rating is the best contraction partner found for a node.
type Rating struct {
	Target hypergraph.NodeID
	Value  float64
	Valid  bool
}

// Rater computes a Rating for an active node.
type Rater interface {
	Rate(u hypergraph.NodeID) Rating
}

// HeavyEdgeRater rates by shared hyperedge weight normalized by edge size
// and penalized by node weights.
type HeavyEdgeRater struct {
	hg            *hypergraph.Hypergraph
	maxNodeWeight int64
	maxEdgeSize   int

	// scratch, reset after every call
	score   []float64
	touched []hypergraph.NodeID
}

// NewHeavyEdgeRater returns a rater bound to hg. maxEdgeSize 0 disables the
// edge size filter.
func NewHeavyEdgeRater(hg *hypergraph.Hypergraph, maxNodeWeight int64, maxEdgeSize int) *HeavyEdgeRater {
	return &HeavyEdgeRater{
		hg:            hg,
		maxNodeWeight: maxNodeWeight,
		maxEdgeSize:   maxEdgeSize,
		score:         make([]float64, hg.InitialNumNodes()),
	}
}

// FromContext builds a HeavyEdgeRater using the coarsening bounds of ctx.
func FromContext(hg *hypergraph.Hypergraph, ctx *config.Context) *HeavyEdgeRater {
	return NewHeavyEdgeRater(hg, ctx.Coarsening.MaxAllowedNodeWeight, ctx.Coarsening.MaxEdgeSize)
}

// Rate returns the best admissible partner of u.
// Complexity: O(Σ_{e∋u} |e|).
func (r *HeavyEdgeRater) Rate(u hypergraph.NodeID) Rating {
	hg := r.hg
	if !hg.HasNode(u) || !hg.NodeIsEnabled(u) {
		return Rating{}
	}

	for _, e := range hg.IncidentEdges(u) {
		size := hg.EdgeSize(e)
		if size < 2 || (r.maxEdgeSize > 0 && size > r.maxEdgeSize) {
			continue
		}
		s := float64(hg.EdgeWeight(e)) / float64(size-1)
		for _, v := range hg.Pins(e) {
			if v == u {
				continue
			}
			if r.score[v] == 0 {
				r.touched = append(r.touched, v)
			}
			r.score[v] += s
		}
	}

	best := Rating{}
	wu := hg.NodeWeight(u)
	part := hg.PartID(u)
	for _, v := range r.touched {
		wv := hg.NodeWeight(v)
		admissible := hg.NodeIsEnabled(v) &&
			wu+wv <= r.maxNodeWeight &&
			hg.PartID(v) == part
		if admissible {
			value := r.score[v] / float64(wu*wv)
			if !best.Valid || value > best.Value || (value == best.Value && v < best.Target) {
				best = Rating{Target: v, Value: value, Valid: true}
			}
		}
		r.score[v] = 0
	}
	r.touched = r.touched[:0]
	return best
}
