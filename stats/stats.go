// Package stats collects per-run statistics of the partitioner.
//
// A Stats value keeps two views of the same events:
//   - a flat key/value map rendered into the RESULT line (String),
//   - Prometheus counters and gauges on a private registry (Registry),
//     so a long-running host can expose them next to its own metrics.
//
// Stats is owned by one partitioning run and is not safe for concurrent
// mutation of the key/value map.
package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hypart/metrics"
)

// Well-known keys written by the engine.
const (
	Contractions     = "contractions"
	Uncontractions   = "uncontractions"
	StaleEntries     = "staleEntries"
	RejectedByWeight = "rejectedByWeight"
	Rounds           = "coarseningRounds"
	RemovedSingle    = "removedSingleNodeEdges"
	RemovedParallel  = "removedParallelEdges"
)

// Phase labels used for objective snapshots and timings.
const (
	PhaseInitial = "initial"
	PhaseFinal   = "final"
)

// Stats is a key/value store mirrored into Prometheus collectors.
type Stats struct {
	values map[string]float64

	registry *prometheus.Registry

	ContractionsTotal     prometheus.Counter
	UncontractionsTotal   prometheus.Counter
	StaleEntriesTotal     prometheus.Counter
	RejectedByWeightTotal prometheus.Counter
	RoundsTotal           prometheus.Counter
	Objective             *prometheus.GaugeVec
	PhaseSeconds          *prometheus.GaugeVec
}

// New returns empty Stats with all collectors registered on a fresh registry.
func New() *Stats {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Stats{
		values:   make(map[string]float64),
		registry: reg,
		ContractionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "hypart_contractions_total",
			Help: "Node pairs contracted during coarsening",
		}),
		UncontractionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "hypart_uncontractions_total",
			Help: "Contractions undone during uncoarsening",
		}),
		StaleEntriesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "hypart_stale_entries_total",
			Help: "Queue entries discarded because a partner was no longer active",
		}),
		RejectedByWeightTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "hypart_rejected_by_weight_total",
			Help: "Queue entries discarded because the merged node would be too heavy",
		}),
		RoundsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "hypart_coarsening_rounds_total",
			Help: "Coarsening rounds executed",
		}),
		Objective: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hypart_objective",
			Help: "Partition quality by phase",
		}, []string{"phase", "metric"}),
		PhaseSeconds: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hypart_phase_seconds",
			Help: "Wall time spent per partitioning phase",
		}, []string{"phase"}),
	}
}

// Registry exposes the private Prometheus registry.
func (s *Stats) Registry() *prometheus.Registry { return s.registry }

// Set stores v under key.
func (s *Stats) Set(key string, v float64) { s.values[key] = v }

// Add increments key by v.
func (s *Stats) Add(key string, v float64) { s.values[key] += v }

// Get returns the value under key.
func (s *Stats) Get(key string) (float64, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns all keys in ascending order.
func (s *Stats) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Contraction records one performed contraction.
func (s *Stats) Contraction() {
	s.Add(Contractions, 1)
	s.ContractionsTotal.Inc()
}

// Uncontraction records one undone contraction.
func (s *Stats) Uncontraction() {
	s.Add(Uncontractions, 1)
	s.UncontractionsTotal.Inc()
}

// Stale records a discarded queue entry whose node or target was inactive.
func (s *Stats) Stale() {
	s.Add(StaleEntries, 1)
	s.StaleEntriesTotal.Inc()
}

// RejectedWeight records a discarded queue entry that violated the weight bound.
func (s *Stats) RejectedWeight() {
	s.Add(RejectedByWeight, 1)
	s.RejectedByWeightTotal.Inc()
}

// Round records one finished coarsening round.
func (s *Stats) Round() {
	s.Add(Rounds, 1)
	s.RoundsTotal.Inc()
}

// Quality stores cut, km1 and imbalance under <phase>Cut, <phase>Km1 and
// <phase>Imbalance and mirrors them into the Objective gauge.
func (s *Stats) Quality(phase string, m metrics.Metrics) {
	s.Set(phase+"Cut", float64(m.Cut))
	s.Set(phase+"Km1", float64(m.Km1))
	s.Set(phase+"Imbalance", m.Imbalance)
	s.Objective.WithLabelValues(phase, "cut").Set(float64(m.Cut))
	s.Objective.WithLabelValues(phase, "km1").Set(float64(m.Km1))
	s.Objective.WithLabelValues(phase, "imbalance").Set(m.Imbalance)
}

// Timing stores the duration of a phase in seconds under <phase>Time.
func (s *Stats) Timing(phase string, d time.Duration) {
	s.Add(phase+"Time", d.Seconds())
	s.PhaseSeconds.WithLabelValues(phase).Add(d.Seconds())
}

// String renders " key=value" pairs in key order.
func (s *Stats) String() string {
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(s.values[k], 'g', -1, 64))
	}
	return b.String()
}
