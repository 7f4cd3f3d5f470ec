// File: partitioner.go
// Role: Partition entry point, options and the multilevel cycle.
package partitioner

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/coarsening"
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/initial"
	"github.com/katalvlaran/hypart/internal/rng"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/refinement"
	"github.com/katalvlaran/hypart/stats"
)

// ErrEmptyHypergraph is returned for a hypergraph without active nodes.
var ErrEmptyHypergraph = errors.New("partitioner: hypergraph has no nodes")

// Phase names used for timings.
const (
	PhaseCoarsening   = "coarsening"
	PhaseInitial      = "initialPartitioning"
	PhaseUncoarsening = "uncoarsening"
	PhaseTotal        = "total"
)

// Option configures Partition.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	stats  *stats.Stats
	runID  string
}

// WithLogger sets the logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// WithStats sets the statistics sink (default: a fresh stats.New()).
func WithStats(s *stats.Stats) Option { return func(o *options) { o.stats = s } }

// WithRunID fixes the run id instead of generating a random uuid.
func WithRunID(id string) Option { return func(o *options) { o.runID = id } }

// run is the state shared by all multilevel cycles of one Partition call.
type run struct {
	log     zerolog.Logger
	stats   *stats.Stats
	rand    *rand.Rand
	streams uint64
}

// Partition computes a Partition.K-way partition of hg.
//
// ctx is validated and copied; the derived bounds are set up on the copy, so
// the caller's context is never modified. Any previous partition of hg is
// discarded. On success hg holds the final partition.
func Partition(hg *hypergraph.Hypergraph, ctx *config.Context, opts ...Option) (*Result, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stats == nil {
		o.stats = stats.New()
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	c := *ctx
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if hg.CurrentNumNodes() == 0 {
		return nil, ErrEmptyHypergraph
	}
	if err := hg.SetK(c.Partition.K); err != nil {
		return nil, err
	}
	c.Setup(hg.TotalWeight(), hg.HeaviestNodeWeight())

	p := &run{
		log:   o.logger.With().Str("run_id", o.runID).Logger(),
		stats: o.stats,
		rand:  rng.FromSeed(c.Partition.Seed),
	}
	p.log.Info().
		Int("nodes", hg.CurrentNumNodes()).
		Int("edges", hg.CurrentNumEdges()).
		Int("k", c.Partition.K).
		Str("objective", string(c.Partition.Objective)).
		Str("mode", string(c.Partition.Mode)).
		Msg("partitioning")

	start := time.Now()
	var improved bool
	var err error
	switch c.Partition.Mode {
	case config.DirectKway:
		improved, err = p.multilevel(hg, &c)
	case config.RecursiveBisection:
		improved, err = p.recursiveBisection(hg, &c)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnsupportedMode, string(c.Partition.Mode))
	}
	if err != nil {
		return nil, err
	}
	p.stats.Timing(PhaseTotal, time.Since(start))

	m := metrics.Compute(hg)
	p.stats.Quality(stats.PhaseFinal, m)
	res := newResult(o.runID, &c, m, improved, hg, p.stats)
	p.log.Info().
		Int64("cut", m.Cut).
		Int64("km1", m.Km1).
		Float64("imbalance", m.Imbalance).
		Dur("elapsed", time.Since(start)).
		Msg("partitioning done")
	return res, nil
}

// multilevel coarsens hg, partitions the coarsest hypergraph and
// uncoarsens it with the refiner of c. It reports whether refinement
// improved on the initial partition.
func (p *run) multilevel(hg *hypergraph.Hypergraph, c *config.Context) (bool, error) {
	coarsener, err := coarsening.New(hg, c,
		coarsening.WithLogger(p.log),
		coarsening.WithStats(p.stats),
		coarsening.WithRand(p.derive()))
	if err != nil {
		return false, err
	}

	t := time.Now()
	if err := coarsener.Coarsen(c.Coarsening.ContractionLimit); err != nil {
		return false, fmt.Errorf("partitioner: coarsening: %w", err)
	}
	p.stats.Timing(PhaseCoarsening, time.Since(t))

	t = time.Now()
	if _, err := initial.Partition(hg, c, initial.WithLogger(p.log), initial.WithRand(p.derive())); err != nil {
		return false, fmt.Errorf("partitioner: initial partitioning: %w", err)
	}
	p.stats.Timing(PhaseInitial, time.Since(t))

	r, err := refinement.New(c, refinement.WithLogger(p.log))
	if err != nil {
		return false, err
	}
	t = time.Now()
	improved, err := coarsener.Uncoarsen(r)
	if err != nil {
		return false, fmt.Errorf("partitioner: uncoarsening: %w", err)
	}
	p.stats.Timing(PhaseUncoarsening, time.Since(t))
	return improved, nil
}

func (p *run) derive() *rand.Rand {
	p.streams++
	return rng.Derive(p.rand, p.streams)
}
