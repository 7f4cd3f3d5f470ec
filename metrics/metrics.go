// Package metrics evaluates the quality of a partition of a hypergraph.
//
// All functions are pure: they read the live hypergraph, consider enabled
// hyperedges only, and never mutate anything.
//
//   - Cut:        Σ w(e) over edges with λ(e) > 1
//   - Km1:        Σ (λ(e) − 1)·w(e)
//   - Soed:       Σ λ(e)·w(e) over edges with λ(e) > 1
//   - Absorption: Σ_e Σ_{p: Φ(e,p)>0} (Φ(e,p) − 1)/(|e| − 1)·w(e)
//   - Imbalance:  max_p c(V_p) / ⌈c(V)/k⌉ − 1
//
// where λ(e) is the connectivity of e and Φ(e,p) its pin count in block p.
package metrics

import (
	"fmt"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
)

// Metrics is the snapshot of partition quality threaded through refinement.
type Metrics struct {
	Cut       int64   `yaml:"cut"`
	Km1       int64   `yaml:"km1"`
	Imbalance float64 `yaml:"imbalance"`
}

// Objective returns the value of the selected objective.
// Unknown objectives yield config.ErrUnsupportedObjective.
func (m Metrics) Objective(obj config.Objective) (int64, error) {
	switch obj {
	case config.Cut:
		return m.Cut, nil
	case config.Km1:
		return m.Km1, nil
	default:
		return 0, fmt.Errorf("%w: %q", config.ErrUnsupportedObjective, string(obj))
	}
}

// Compute evaluates Cut, Km1 and Imbalance in a single pass over the edges.
func Compute(hg *hypergraph.Hypergraph) Metrics {
	var m Metrics
	for _, e := range hg.Edges() {
		lambda := int64(hg.Connectivity(e))
		if lambda > 1 {
			w := hg.EdgeWeight(e)
			m.Cut += w
			m.Km1 += (lambda - 1) * w
		}
	}
	m.Imbalance = Imbalance(hg)
	return m
}

// Cut returns the total weight of hyperedges connecting more than one block.
func Cut(hg *hypergraph.Hypergraph) int64 {
	var cut int64
	for _, e := range hg.Edges() {
		if hg.Connectivity(e) > 1 {
			cut += hg.EdgeWeight(e)
		}
	}
	return cut
}

// Km1 returns the connectivity-minus-one objective.
func Km1(hg *hypergraph.Hypergraph) int64 {
	var km1 int64
	for _, e := range hg.Edges() {
		if l := int64(hg.Connectivity(e)); l > 1 {
			km1 += (l - 1) * hg.EdgeWeight(e)
		}
	}
	return km1
}

// Soed returns the sum of external degrees.
func Soed(hg *hypergraph.Hypergraph) int64 {
	var soed int64
	for _, e := range hg.Edges() {
		if l := int64(hg.Connectivity(e)); l > 1 {
			soed += l * hg.EdgeWeight(e)
		}
	}
	return soed
}

// Absorption measures how well blocks absorb their hyperedges; higher is better.
func Absorption(hg *hypergraph.Hypergraph) float64 {
	var abs float64
	k := hg.K()
	for _, e := range hg.Edges() {
		size := hg.EdgeSize(e)
		if size < 2 {
			continue
		}
		w := float64(hg.EdgeWeight(e))
		for p := 0; p < k; p++ {
			if n := hg.PinCountInPart(e, hypergraph.PartitionID(p)); n > 0 {
				abs += float64(n-1) / float64(size-1) * w
			}
		}
	}
	return abs
}

// Imbalance returns max_p c(V_p) / ⌈c(V)/k⌉ − 1. A perfectly balanced
// partition yields 0; an empty hypergraph yields 0.
func Imbalance(hg *hypergraph.Hypergraph) float64 {
	k := int64(hg.K())
	total := hg.TotalWeight()
	if total == 0 || k == 0 {
		return 0
	}
	perfect := (total + k - 1) / k
	var heaviest int64
	for p := int64(0); p < k; p++ {
		if w := hg.PartWeight(hypergraph.PartitionID(p)); w > heaviest {
			heaviest = w
		}
	}
	return float64(heaviest)/float64(perfect) - 1
}
