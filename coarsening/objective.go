// File: objective.go
// Role: Objective Tracker (initial snapshot and final evaluation).
package coarsening

import (
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/stats"
)

// objectiveTracker remembers the objective value before uncoarsening.
type objectiveTracker struct {
	objective config.Objective
	mode      config.Mode
	initial   int64
}

// startObjective selects the configured objective from m and records the
// initial statistics.
func (c *Coarsener) startObjective(m metrics.Metrics) (objectiveTracker, error) {
	t := objectiveTracker{objective: c.ctx.Partition.Objective, mode: c.ctx.Partition.Mode}
	v, err := m.Objective(t.objective)
	if err != nil {
		return t, err
	}
	t.initial = v
	c.stats.Quality(stats.PhaseInitial, m)
	return t, nil
}

// finish completes m and reports whether the objective improved.
//
// 2-way FM does not maintain km1, so when km1 is optimized through
// recursive bisection the value is recomputed from the hypergraph.
func (c *Coarsener) finishObjective(t objectiveTracker, m *metrics.Metrics) (bool, error) {
	if t.objective == config.Km1 && t.mode == config.RecursiveBisection {
		m.Km1 = metrics.Km1(c.hg)
	}
	c.stats.Quality(stats.PhaseFinal, *m)
	v, err := m.Objective(t.objective)
	if err != nil {
		return false, err
	}
	return v < t.initial, nil
}
