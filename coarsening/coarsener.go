// File: coarsener.go
// Role: Coarsener state, construction and functional options.
package coarsening

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/internal/pq"
	"github.com/katalvlaran/hypart/internal/rng"
	"github.com/katalvlaran/hypart/rating"
	"github.com/katalvlaran/hypart/stats"
)

var (
	// ErrEmptyPath is returned when a contraction path is popped while empty.
	ErrEmptyPath = errors.New("coarsening: contraction path is empty")

	// ErrNotSetUp indicates a context whose derived bounds were never computed.
	ErrNotSetUp = errors.New("coarsening: context bounds not set up")

	// ErrNotPartitioned is returned by Uncoarsen on an unpartitioned hypergraph.
	ErrNotPartitioned = errors.New("coarsening: hypergraph is not partitioned")
)

// EventKind distinguishes observer events.
type EventKind uint8

const (
	// Contracted is emitted after a pair was merged and pruned.
	Contracted EventKind = iota
	// Uncontracted is emitted after a pair was restored.
	Uncontracted
)

// Event is passed to the observer after every contraction and uncontraction.
type Event struct {
	Kind     EventKind
	U, V     hypergraph.NodeID
	NumNodes int
}

// Option configures a Coarsener.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	rand     *rand.Rand
	stats    *stats.Stats
	rater    rating.Rater
	observer func(Event)
}

// WithLogger sets the logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// WithRand sets the random source for node permutations
// (default: seeded from Context.Partition.Seed).
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rand = r } }

// WithStats sets the statistics sink (default: a fresh stats.New()).
func WithStats(s *stats.Stats) Option { return func(o *options) { o.stats = s } }

// WithRater replaces the default heavy-edge rater.
func WithRater(r rating.Rater) Option { return func(o *options) { o.rater = r } }

// WithObserver registers a callback invoked after every contraction and
// uncontraction.
func WithObserver(f func(Event)) Option { return func(o *options) { o.observer = f } }

// noCopy makes `go vet` flag copies of a Coarsener.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Coarsener owns the contraction paths, the scheduling queue and the
// weight-bound history of one hypergraph. It must be used through a pointer
// from a single goroutine.
type Coarsener struct {
	_ noCopy

	hg    *hypergraph.Hypergraph
	ctx   *config.Context
	log   zerolog.Logger
	rand  *rand.Rand
	stats *stats.Stats
	rater rating.Rater
	emit  func(Event)

	paths   *ContractionPaths
	queue   *pq.Queue[float64]
	target  []hypergraph.NodeID
	history WeightHistory

	// duplicates removed by the final sweep, keyed by the root that restores them
	scoped map[hypergraph.NodeID][]hypergraph.EdgePair
}

// New binds a Coarsener to hg. ctx must have been Setup for hg.
func New(hg *hypergraph.Hypergraph, ctx *config.Context, opts ...Option) (*Coarsener, error) {
	if ctx.Coarsening.MaxAllowedNodeWeight <= 0 {
		return nil, ErrNotSetUp
	}
	if err := ctx.Partition.Objective.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rng.FromSeed(ctx.Partition.Seed)
	}
	if o.stats == nil {
		o.stats = stats.New()
	}
	if o.rater == nil {
		o.rater = rating.FromContext(hg, ctx)
	}
	n := hg.InitialNumNodes()
	return &Coarsener{
		hg:     hg,
		ctx:    ctx,
		log:    o.logger.With().Str("component", "coarsener").Logger(),
		rand:   o.rand,
		stats:  o.stats,
		rater:  o.rater,
		emit:   o.observer,
		paths:  NewContractionPaths(n),
		queue:  pq.New[float64](n),
		target: make([]hypergraph.NodeID, n),
		scoped: make(map[hypergraph.NodeID][]hypergraph.EdgePair),
	}, nil
}

// Hypergraph returns the hypergraph the coarsener operates on.
func (c *Coarsener) Hypergraph() *hypergraph.Hypergraph { return c.hg }

// Paths exposes the contraction paths (read-only use intended).
func (c *Coarsener) Paths() *ContractionPaths { return c.paths }

// History returns a copy of the recorded weight bounds.
func (c *Coarsener) History() []WeightBound { return c.history.Levels() }

// Stats returns the statistics sink.
func (c *Coarsener) Stats() *stats.Stats { return c.stats }

func (c *Coarsener) notify(kind EventKind, u, v hypergraph.NodeID) {
	if c.emit != nil {
		c.emit(Event{Kind: kind, U: u, V: v, NumNodes: c.hg.CurrentNumNodes()})
	}
}
