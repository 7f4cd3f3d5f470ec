package partitioner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypart/builder"
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
	"github.com/katalvlaran/hypart/partitioner"
)

type PartitionerSuite struct {
	suite.Suite
}

func (s *PartitionerSuite) build(seed int64, n, m int) *hypergraph.Hypergraph {
	hg, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithEdgeWeightFn(builder.UniformWeightFn(1, 3)),
	}, builder.Random(n, m, 2, 5))
	s.Require().NoError(err)
	return hg
}

func (s *PartitionerSuite) checkLabels(hg *hypergraph.Hypergraph, res *partitioner.Result) {
	require := s.Require()
	require.True(hg.IsPartitioned())
	require.Len(res.Parts, hg.InitialNumNodes())
	for _, u := range hg.Nodes() {
		p := res.Parts[u]
		require.Equal(hg.PartID(u), p)
		require.GreaterOrEqual(int(p), 0)
		require.Less(int(p), res.K)
	}
	require.Equal(metrics.Compute(hg), res.Metrics)
}

func (s *PartitionerSuite) TestDirectKway() {
	require := s.Require()
	for _, algo := range []config.RefinementAlgorithm{config.LabelPropagation, config.TwoWayFM} {
		hg := s.build(3, 200, 300)
		ctx := config.Default()
		ctx.Coarsening.ContractionLimitMultiplier = 10
		ctx.LocalSearch.Algorithm = algo

		res, err := partitioner.Partition(hg, &ctx, partitioner.WithRunID("direct"))
		require.NoError(err, algo)
		require.Equal(200, hg.CurrentNumNodes())
		require.Equal(300, hg.CurrentNumEdges())
		s.checkLabels(hg, res)
		require.Equal("direct", res.RunID)
		require.Contains(res.Stats, "coarseningTime")
		require.Contains(res.Stats, "totalTime")
		require.Positive(res.Stats["contractions"])
		// caller's context is not modified
		require.Zero(ctx.Partition.MaxPartWeight)
	}
}

func (s *PartitionerSuite) TestDirectKway_FourBlocks() {
	require := s.Require()
	hg := s.build(8, 120, 200)
	ctx := config.Default()
	ctx.Partition.K = 4
	ctx.Partition.Objective = config.Cut

	res, err := partitioner.Partition(hg, &ctx)
	require.NoError(err)
	s.checkLabels(hg, res)
	require.Len(res.RunID, 36)
}

func (s *PartitionerSuite) TestRecursiveBisection_ThreeBlocks() {
	require := s.Require()
	hg := s.build(5, 90, 120)
	ctx := config.Default()
	ctx.Partition.K = 3
	ctx.Partition.Mode = config.RecursiveBisection

	res, err := partitioner.Partition(hg, &ctx)
	require.NoError(err)
	s.checkLabels(hg, res)
	require.Equal(metrics.Km1(hg), res.Metrics.Km1)
	for p := 0; p < 3; p++ {
		require.Positive(hg.PartSize(hypergraph.PartitionID(p)))
	}
	require.LessOrEqual(res.Metrics.Imbalance, 0.1)
}

func (s *PartitionerSuite) TestRecursiveBisection_CutObjective() {
	require := s.Require()
	hg := s.build(6, 64, 100)
	ctx := config.Default()
	ctx.Partition.K = 4
	ctx.Partition.Objective = config.Cut
	ctx.Partition.Mode = config.RecursiveBisection

	res, err := partitioner.Partition(hg, &ctx)
	require.NoError(err)
	s.checkLabels(hg, res)
}

func (s *PartitionerSuite) TestDeterministic() {
	require := s.Require()
	run := func() []hypergraph.PartitionID {
		hg := s.build(9, 150, 220)
		ctx := config.Default()
		ctx.Coarsening.ContractionLimitMultiplier = 20
		res, err := partitioner.Partition(hg, &ctx)
		require.NoError(err)
		return res.Parts
	}
	require.Equal(run(), run())
}

func (s *PartitionerSuite) TestResultRendering() {
	require := s.Require()
	hg := s.build(1, 40, 60)
	ctx := config.Default()
	res, err := partitioner.Partition(hg, &ctx, partitioner.WithRunID("r1"))
	require.NoError(err)

	line := res.String()
	require.True(strings.HasPrefix(line, "RESULT run_id=r1 k=2 epsilon=0.03 objective=km1 mode=direct_kway seed=1 "))
	require.Contains(line, " km1=")
	require.Contains(line, " totalTime=")
	require.NotContains(line, "\n")

	out, err := res.YAML()
	require.NoError(err)
	var decoded struct {
		RunID   string          `yaml:"run_id"`
		K       int             `yaml:"k"`
		Metrics metrics.Metrics `yaml:"metrics"`
	}
	require.NoError(yaml.Unmarshal(out, &decoded))
	require.Equal("r1", decoded.RunID)
	require.Equal(2, decoded.K)
	require.Equal(res.Metrics.Km1, decoded.Metrics.Km1)
}

func (s *PartitionerSuite) TestErrors() {
	require := s.Require()
	hg := s.build(1, 10, 10)
	ctx := config.Default()
	ctx.Partition.K = 1
	_, err := partitioner.Partition(hg, &ctx)
	require.ErrorIs(err, config.ErrInvalidContext)

	ctx = config.Default()
	ctx.Partition.Mode = "nested"
	_, err = partitioner.Partition(hg, &ctx)
	require.ErrorIs(err, config.ErrUnsupportedMode)

	empty, err := hypergraph.New(0, nil)
	require.NoError(err)
	ctx = config.Default()
	_, err = partitioner.Partition(empty, &ctx)
	require.ErrorIs(err, partitioner.ErrEmptyHypergraph)
}

func TestPartitionerSuite(t *testing.T) {
	suite.Run(t, new(PartitionerSuite))
}
