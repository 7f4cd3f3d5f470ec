// File: initial.go
// Role: best-of-n driver shared by every initial partitioning algorithm.
package initial

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/rng"
	"github.com/katalvlaran/hypart/metrics"
)

// Algorithm assigns every active node of an unpartitioned hypergraph to one
// of its K() blocks.
type Algorithm interface {
	Assign(hg *hypergraph.Hypergraph, r *rand.Rand) error
}

var (
	_ Algorithm = Random{}
	_ Algorithm = BFS{}
	_ Algorithm = Spectral{}
)

// AlgorithmFunc adapts a function to Algorithm.
type AlgorithmFunc func(hg *hypergraph.Hypergraph, r *rand.Rand) error

// Assign calls f.
func (f AlgorithmFunc) Assign(hg *hypergraph.Hypergraph, r *rand.Rand) error { return f(hg, r) }

// New returns the algorithm selected by ctx.
func New(ctx *config.Context) (Algorithm, error) {
	bounds := make([]int64, ctx.Partition.K)
	for p := range bounds {
		bounds[p] = ctx.Partition.BlockWeightBound(p)
	}
	switch ctx.InitialPartitioning.Algorithm {
	case config.InitialRandom:
		return Random{Bounds: bounds}, nil
	case config.InitialBFS:
		return BFS{Bounds: bounds}, nil
	case config.InitialSpectral:
		return Spectral{Bounds: bounds}, nil
	default:
		return nil, fmt.Errorf("%w: initial %q", config.ErrUnsupportedAlgorithm,
			string(ctx.InitialPartitioning.Algorithm))
	}
}

// Option configures Partition.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	algo   Algorithm
	rand   *rand.Rand
}

// WithLogger sets the logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// WithRand sets the base random source the per-run streams are derived from
// (default: seeded from Context.Partition.Seed).
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rand = r } }

// WithAlgorithm overrides the algorithm selected by the context.
func WithAlgorithm(a Algorithm) Option { return func(o *options) { o.algo = a } }

// Partition assigns every active node of hg and returns the metrics of the
// chosen assignment. hg must be unpartitioned or is reset first.
func Partition(hg *hypergraph.Hypergraph, ctx *config.Context, opts ...Option) (metrics.Metrics, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Partition.Objective.Validate(); err != nil {
		return metrics.Metrics{}, err
	}
	if o.algo == nil {
		a, err := New(ctx)
		if err != nil {
			return metrics.Metrics{}, err
		}
		o.algo = a
	}
	if o.rand == nil {
		o.rand = rng.FromSeed(ctx.Partition.Seed)
	}
	log := o.logger.With().Str("component", "initial").Logger()

	nodes := hg.Nodes()
	best := make([]hypergraph.PartitionID, len(nodes))
	var bestMetrics metrics.Metrics
	var bestScore score
	runs := ctx.InitialPartitioning.NRuns
	if runs < 1 {
		runs = 1
	}
	for run := 0; run < runs; run++ {
		hg.ResetPartitioning()
		r := rng.Derive(o.rand, uint64(run))
		if err := o.algo.Assign(hg, r); err != nil {
			return metrics.Metrics{}, err
		}
		m := metrics.Compute(hg)
		s, err := newScore(hg, ctx, m)
		if err != nil {
			return metrics.Metrics{}, err
		}
		log.Debug().Int("run", run).Int64("objective", s.objective).
			Float64("imbalance", m.Imbalance).Bool("balanced", s.balanced).Msg("initial run")
		if run == 0 || s.less(bestScore) {
			bestScore, bestMetrics = s, m
			for i, u := range nodes {
				best[i] = hg.PartID(u)
			}
		}
	}

	hg.ResetPartitioning()
	for i, u := range nodes {
		if err := hg.SetNodePart(u, best[i]); err != nil {
			return metrics.Metrics{}, err
		}
	}
	log.Info().Int("runs", runs).Int64("cut", bestMetrics.Cut).Int64("km1", bestMetrics.Km1).
		Float64("imbalance", bestMetrics.Imbalance).Msg("initial partition")
	return bestMetrics, nil
}

type score struct {
	balanced  bool
	objective int64
	imbalance float64
}

func newScore(hg *hypergraph.Hypergraph, ctx *config.Context, m metrics.Metrics) (score, error) {
	v, err := m.Objective(ctx.Partition.Objective)
	if err != nil {
		return score{}, err
	}
	return score{balanced: balanced(hg, &ctx.Partition), objective: v, imbalance: m.Imbalance}, nil
}

func (s score) less(o score) bool {
	if s.balanced != o.balanced {
		return s.balanced
	}
	if s.objective != o.objective {
		return s.objective < o.objective
	}
	return s.imbalance < o.imbalance
}

// balanced reports whether every block respects its bound. Blocks without
// a bound are always balanced.
func balanced(hg *hypergraph.Hypergraph, pp *config.PartitionParameters) bool {
	for p := 0; p < hg.K(); p++ {
		b := pp.BlockWeightBound(p)
		if b > 0 && hg.PartWeight(hypergraph.PartitionID(p)) > b {
			return false
		}
	}
	return true
}

// bound returns the bound of block p, or 0 when bounds does not set one.
func bound(bounds []int64, p int) int64 {
	if p < len(bounds) && bounds[p] > 0 {
		return bounds[p]
	}
	return 0
}

// lightest returns the least filled block, lowest id first. With positive
// bounds for every block the fill is weight/bound, otherwise the weight.
func lightest(hg *hypergraph.Hypergraph, bounds []int64) hypergraph.PartitionID {
	relative := len(bounds) >= hg.K()
	for p := 0; relative && p < hg.K(); p++ {
		relative = bounds[p] > 0
	}
	best := 0
	for p := 1; p < hg.K(); p++ {
		wp := hg.PartWeight(hypergraph.PartitionID(p))
		wb := hg.PartWeight(hypergraph.PartitionID(best))
		if relative {
			wp, wb = wp*bounds[best], wb*bounds[p]
		}
		if wp < wb {
			best = p
		}
	}
	return hypergraph.PartitionID(best)
}
