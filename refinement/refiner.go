// Package refinement implements the local search run after every
// uncontraction batch of the multilevel scheme.
//
// A Refiner moves partition labels only; it never changes the hypergraph
// topology. It receives the nodes reactivated since the previous call
// (seeds), the gain changes accumulated by those uncontractions, the current
// metrics and the node weight bound of the current level, and returns the
// updated metrics.
//
// Implementations:
//   - TwoWayFM: cut-based Fiduccia–Mattheyses for bipartitions. Keeps Cut
//     and Imbalance current; Km1 is passed through unchanged.
//   - LabelPropagation: greedy k-way km1 moves. Keeps Cut, Km1 and
//     Imbalance current.
//   - DoNothing: returns the metrics it was given.
//
// Errors:
//   - ErrNotInitialized: Refine before Initialize.
//   - ErrNotBipartition: TwoWayFM on a hypergraph with k != 2.
package refinement

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
)

var (
	// ErrNotInitialized is returned by Refine before Initialize.
	ErrNotInitialized = errors.New("refinement: refiner not initialized")

	// ErrNotBipartition is returned when a 2-way refiner sees k != 2.
	ErrNotBipartition = errors.New("refinement: hypergraph is not a bipartition")
)

// Refiner improves a partition around a set of seed nodes.
type Refiner interface {
	Initialize(hg *hypergraph.Hypergraph) error
	Refine(seeds []hypergraph.NodeID, changes *hypergraph.GainChanges,
		current metrics.Metrics, maxNodeWeight int64) (metrics.Metrics, error)
}

// Option configures a refiner.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger attaches a logger for per-call traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the refiner selected by ctx.LocalSearch.Algorithm.
// Partition bounds are read from ctx when Initialize is called, so ctx may
// be Setup after New.
func New(ctx *config.Context, opts ...Option) (Refiner, error) {
	switch ctx.LocalSearch.Algorithm {
	case config.TwoWayFM:
		return NewTwoWayFM(ctx, opts...), nil
	case config.LabelPropagation:
		return NewLabelPropagation(ctx, opts...), nil
	case config.DoNothing:
		return DoNothing{}, nil
	default:
		return nil, fmt.Errorf("%w: refinement %q", config.ErrUnsupportedAlgorithm, string(ctx.LocalSearch.Algorithm))
	}
}

// DoNothing keeps the projected partition.
type DoNothing struct{}

// Initialize implements Refiner.
func (DoNothing) Initialize(*hypergraph.Hypergraph) error { return nil }

// Refine implements Refiner.
func (DoNothing) Refine(_ []hypergraph.NodeID, _ *hypergraph.GainChanges,
	current metrics.Metrics, _ int64) (metrics.Metrics, error) {
	return current, nil
}

// blockBounds returns the weight bound of every block of hg. Blocks whose
// bound was not set up are limited by the total weight only.
func blockBounds(ctx *config.Context, hg *hypergraph.Hypergraph) []int64 {
	bounds := make([]int64, hg.K())
	for p := range bounds {
		bounds[p] = ctx.Partition.BlockWeightBound(p)
		if bounds[p] <= 0 {
			bounds[p] = hg.TotalWeight()
		}
	}
	return bounds
}

// better reports whether (cut, imbalance) improves on (bestCut, bestImbalance).
func better(cut int64, imbalance float64, bestCut int64, bestImbalance float64) bool {
	return cut < bestCut || (cut == bestCut && imbalance < bestImbalance)
}
