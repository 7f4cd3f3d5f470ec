// File: result.go
// Role: Result of a partitioning run, RESULT line and YAML rendering.
package partitioner

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/stats"
)

// Result summarizes one Partition call.
type Result struct {
	RunID     string           `yaml:"run_id"`
	K         int              `yaml:"k"`
	Epsilon   float64          `yaml:"epsilon"`
	Objective config.Objective `yaml:"objective"`
	Mode      config.Mode      `yaml:"mode"`
	Seed      int64            `yaml:"seed"`

	Metrics metrics.Metrics `yaml:"metrics"`
	// Improved reports whether refinement beat the initial partition (in
	// any bisection for recursive_bisection).
	Improved bool `yaml:"improved"`

	// Stats holds every statistic of the run, timings included (seconds).
	Stats map[string]float64 `yaml:"stats"`

	// Parts[u] is the block of input node u.
	Parts []hypergraph.PartitionID `yaml:"-"`

	stats *stats.Stats
}

func newResult(runID string, c *config.Context, m metrics.Metrics, improved bool,
	hg *hypergraph.Hypergraph, st *stats.Stats) *Result {
	r := &Result{
		RunID:     runID,
		K:         c.Partition.K,
		Epsilon:   c.Partition.Epsilon,
		Objective: c.Partition.Objective,
		Mode:      c.Partition.Mode,
		Seed:      c.Partition.Seed,
		Metrics:   m,
		Improved:  improved,
		Stats:     make(map[string]float64),
		Parts:     make([]hypergraph.PartitionID, hg.InitialNumNodes()),
		stats:     st,
	}
	for _, k := range st.Keys() {
		r.Stats[k], _ = st.Get(k)
	}
	for i := range r.Parts {
		r.Parts[i] = hypergraph.InvalidPartition
	}
	for _, u := range hg.Nodes() {
		r.Parts[u] = hg.PartID(u)
	}
	return r
}

// String renders the single-line summary:
//
//	RESULT run_id=… k=… epsilon=… objective=… mode=… seed=… cut=… km1=… imbalance=… <stats>
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "RESULT run_id=%s k=%d epsilon=%g objective=%s mode=%s seed=%d cut=%d km1=%d imbalance=%g",
		r.RunID, r.K, r.Epsilon, r.Objective, r.Mode, r.Seed,
		r.Metrics.Cut, r.Metrics.Km1, r.Metrics.Imbalance)
	if r.stats != nil {
		b.WriteString(r.stats.String())
	}
	return b.String()
}

// YAML marshals the result.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
