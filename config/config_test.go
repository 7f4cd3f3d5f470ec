package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypart/config"
)

func TestDefault_Validates(t *testing.T) {
	ctx := config.Default()
	require.NoError(t, ctx.Validate())
	require.Equal(t, config.Km1, ctx.Partition.Objective)
	require.Equal(t, 2, ctx.Partition.K)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Context)
		want   error
	}{
		{"k too small", func(c *config.Context) { c.Partition.K = 1 }, config.ErrInvalidContext},
		{"negative epsilon", func(c *config.Context) { c.Partition.Epsilon = -0.1 }, config.ErrInvalidContext},
		{"zero runs", func(c *config.Context) { c.InitialPartitioning.NRuns = 0 }, config.ErrInvalidContext},
		{"bad level", func(c *config.Context) { c.Logging.Level = "loud" }, config.ErrInvalidContext},
		{"soed objective", func(c *config.Context) { c.Partition.Objective = "soed" }, config.ErrUnsupportedObjective},
		{"bad mode", func(c *config.Context) { c.Partition.Mode = "nested" }, config.ErrUnsupportedMode},
		{"bad refiner", func(c *config.Context) { c.LocalSearch.Algorithm = "tabu" }, config.ErrUnsupportedAlgorithm},
		{"bad initial", func(c *config.Context) { c.InitialPartitioning.Algorithm = "greedy" }, config.ErrUnsupportedAlgorithm},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := config.Default()
			tc.mutate(&ctx)
			require.ErrorIs(t, ctx.Validate(), tc.want)
		})
	}
}

func TestSetup(t *testing.T) {
	ctx := config.Default()
	ctx.Partition.K = 4
	ctx.Partition.Epsilon = 0.1
	ctx.Coarsening.ContractionLimitMultiplier = 2
	ctx.Coarsening.MaxAllowedWeightMultiplier = 1.0

	ctx.Setup(100, 3)
	require.Equal(t, int64(100), ctx.Partition.TotalGraphWeight)
	require.Equal(t, int64(28), ctx.Partition.MaxPartWeight) // ⌈1.1·25⌉
	require.Equal(t, 8, ctx.Coarsening.ContractionLimit)
	require.Equal(t, int64(13), ctx.Coarsening.MaxAllowedNodeWeight) // ⌈100/8⌉

	ctx.Setup(100, 40)
	require.Equal(t, int64(40), ctx.Coarsening.MaxAllowedNodeWeight)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hypart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
partition:
  k: 4
  objective: cut
local_search:
  algorithm: twoway_fm
`), 0o600))

	t.Setenv("HYPART_PARTITION_EPSILON", "0.2")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int64("partition.seed", 0, "seed")
	require.NoError(t, fs.Parse([]string{"--partition.seed=99"}))

	ctx, err := config.Load(path, fs)
	require.NoError(t, err)
	require.Equal(t, 4, ctx.Partition.K)
	require.Equal(t, config.Cut, ctx.Partition.Objective)
	require.Equal(t, config.TwoWayFM, ctx.LocalSearch.Algorithm)
	require.InDelta(t, 0.2, ctx.Partition.Epsilon, 1e-9)
	require.Equal(t, int64(99), ctx.Partition.Seed)
	// untouched keys keep their defaults
	require.Equal(t, config.Default().InitialPartitioning.NRuns, ctx.InitialPartitioning.NRuns)
}

func TestLoad_RejectsUnsupportedObjective(t *testing.T) {
	t.Setenv("HYPART_PARTITION_OBJECTIVE", "soed")
	_, err := config.Load("", nil)
	require.ErrorIs(t, err, config.ErrUnsupportedObjective)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoggerTo_Level(t *testing.T) {
	ctx := config.Default()
	ctx.Logging.Level = "warn"
	var buf bytes.Buffer
	log := ctx.LoggerTo(&buf)
	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())
	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestBlockWeightBound(t *testing.T) {
	ctx := config.Default()
	ctx.Setup(100, 1)
	require.Equal(t, ctx.Partition.MaxPartWeight, ctx.Partition.BlockWeightBound(1))

	ctx.Partition.MaxPartWeights = []int64{70, 35}
	require.Equal(t, int64(70), ctx.Partition.BlockWeightBound(0))
	require.Equal(t, int64(35), ctx.Partition.BlockWeightBound(1))
	require.Equal(t, ctx.Partition.MaxPartWeight, ctx.Partition.BlockWeightBound(2))
}
