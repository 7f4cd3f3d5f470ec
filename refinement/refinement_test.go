package refinement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/refinement"
)

func newContext(t *testing.T, k int, algo config.RefinementAlgorithm, hg *hypergraph.Hypergraph) *config.Context {
	t.Helper()
	ctx := config.Default()
	ctx.Partition.K = k
	ctx.LocalSearch.Algorithm = algo
	ctx.Setup(hg.TotalWeight(), hg.HeaviestNodeWeight())
	return &ctx
}

func assign(t *testing.T, hg *hypergraph.Hypergraph, parts []hypergraph.PartitionID) {
	t.Helper()
	for u, p := range parts {
		require.NoError(t, hg.SetNodePart(hypergraph.NodeID(u), p))
	}
}

func TestNew_SelectsAlgorithm(t *testing.T) {
	hg, err := hypergraph.New(2, [][]hypergraph.NodeID{{0, 1}})
	require.NoError(t, err)

	r, err := refinement.New(newContext(t, 2, config.TwoWayFM, hg))
	require.NoError(t, err)
	require.IsType(t, &refinement.TwoWayFM{}, r)

	r, err = refinement.New(newContext(t, 2, config.LabelPropagation, hg))
	require.NoError(t, err)
	require.IsType(t, &refinement.LabelPropagation{}, r)

	r, err = refinement.New(newContext(t, 2, config.DoNothing, hg))
	require.NoError(t, err)
	require.IsType(t, refinement.DoNothing{}, r)

	_, err = refinement.New(newContext(t, 2, "tabu", hg))
	require.ErrorIs(t, err, config.ErrUnsupportedAlgorithm)
}

func TestDoNothing(t *testing.T) {
	in := metrics.Metrics{Cut: 4, Km1: 5, Imbalance: 0.1}
	out, err := refinement.DoNothing{}.Refine(nil, nil, in, 1)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRefineBeforeInitialize(t *testing.T) {
	hg, err := hypergraph.New(2, [][]hypergraph.NodeID{{0, 1}})
	require.NoError(t, err)
	ctx := newContext(t, 2, config.TwoWayFM, hg)

	_, err = refinement.NewTwoWayFM(ctx).Refine(nil, nil, metrics.Metrics{}, 1)
	require.ErrorIs(t, err, refinement.ErrNotInitialized)
	_, err = refinement.NewLabelPropagation(ctx).Refine(nil, nil, metrics.Metrics{}, 1)
	require.ErrorIs(t, err, refinement.ErrNotInitialized)
}

func TestTwoWayFM_RequiresBipartition(t *testing.T) {
	hg, err := hypergraph.New(3, [][]hypergraph.NodeID{{0, 1, 2}}, hypergraph.WithK(3))
	require.NoError(t, err)
	fm := refinement.NewTwoWayFM(newContext(t, 3, config.TwoWayFM, hg))
	require.ErrorIs(t, fm.Initialize(hg), refinement.ErrNotBipartition)
}

func TestTwoWayFM_ImprovesPath(t *testing.T) {
	// path 0-1-2-3 with alternating blocks: cut 3
	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	assign(t, hg, []hypergraph.PartitionID{0, 1, 0, 1})
	ctx := newContext(t, 2, config.TwoWayFM, hg)

	fm := refinement.NewTwoWayFM(ctx)
	require.NoError(t, fm.Initialize(hg))
	start := metrics.Compute(hg)
	require.Equal(t, int64(3), start.Cut)

	got, err := fm.Refine(hg.Nodes(), nil, start, hg.TotalWeight())
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Cut)
	require.Equal(t, metrics.Cut(hg), got.Cut)
	require.InDelta(t, metrics.Imbalance(hg), got.Imbalance, 1e-12)
	// km1 is passed through
	require.Equal(t, start.Km1, got.Km1)
	require.LessOrEqual(t, hg.PartWeight(0), ctx.Partition.MaxPartWeight)
	require.LessOrEqual(t, hg.PartWeight(1), ctx.Partition.MaxPartWeight)
}

func TestTwoWayFM_RespectsNodeWeightBound(t *testing.T) {
	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	assign(t, hg, []hypergraph.PartitionID{0, 1, 0, 1})
	fm := refinement.NewTwoWayFM(newContext(t, 2, config.TwoWayFM, hg))
	require.NoError(t, fm.Initialize(hg))

	start := metrics.Compute(hg)
	got, err := fm.Refine(hg.Nodes(), nil, start, 0)
	require.NoError(t, err)
	require.Equal(t, start, got)
	require.Equal(t, hypergraph.PartitionID(1), hg.PartID(1))
}

func TestTwoWayFM_GainCacheFollowsUncontractions(t *testing.T) {
	// e0={0,2} e1={0,1,3,4} e2={3,4,6} e3={2,5,6}
	hg, err := hypergraph.New(7, [][]hypergraph.NodeID{
		{0, 2}, {0, 1, 3, 4}, {3, 4, 6}, {2, 5, 6},
	})
	require.NoError(t, err)

	m1, err := hg.Contract(0, 2)
	require.NoError(t, err)
	m2, err := hg.Contract(3, 4)
	require.NoError(t, err)
	m3, err := hg.Contract(0, 1)
	require.NoError(t, err)

	for _, u := range hg.Nodes() {
		p := hypergraph.PartitionID(0)
		if u >= 3 {
			p = 1
		}
		require.NoError(t, hg.SetNodePart(u, p))
	}

	ctx := newContext(t, 2, config.TwoWayFM, hg)
	ctx.LocalSearch.MaxIterations = 1
	fm := refinement.NewTwoWayFM(ctx)
	require.NoError(t, fm.Initialize(hg))

	var changes hypergraph.GainChanges
	current := metrics.Compute(hg)
	for _, m := range []hypergraph.Memento{m3, m2, m1} {
		require.NoError(t, hg.Uncontract(m, &changes))
		current, err = fm.Refine([]hypergraph.NodeID{m.U, m.V}, &changes, current, hg.TotalWeight())
		require.NoError(t, err)
		changes.Reset()

		require.Equal(t, metrics.Cut(hg), current.Cut)
		for _, u := range hg.Nodes() {
			require.Equal(t, hg.Gain(u), fm.Gain(u), "gain of node %d", u)
		}
	}
}

func TestLabelPropagation_KeepsMetricsExact(t *testing.T) {
	// e0={0,2} e1={0,1,3,4} e2={3,4,6} e3={2,5,6}, k=3
	hg, err := hypergraph.New(7, [][]hypergraph.NodeID{
		{0, 2}, {0, 1, 3, 4}, {3, 4, 6}, {2, 5, 6},
	}, hypergraph.WithK(3), hypergraph.WithEdgeWeights([]int64{3, 1, 2, 1}))
	require.NoError(t, err)
	assign(t, hg, []hypergraph.PartitionID{0, 1, 2, 2, 1, 0, 2})

	ctx := newContext(t, 3, config.LabelPropagation, hg)
	ctx.Partition.MaxPartWeight = 4
	lp := refinement.NewLabelPropagation(ctx)
	require.NoError(t, lp.Initialize(hg))

	start := metrics.Compute(hg)
	got, err := lp.Refine(hg.Nodes(), nil, start, hg.TotalWeight())
	require.NoError(t, err)
	require.Equal(t, metrics.Compute(hg), got)
	require.Less(t, got.Km1, start.Km1)
	for p := 0; p < 3; p++ {
		require.LessOrEqual(t, hg.PartWeight(hypergraph.PartitionID(p)), int64(4))
	}
}
