package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. HYPART_PARTITION_K=4.
const EnvPrefix = "HYPART"

// Load builds a Context from defaults, an optional config file (YAML, TOML or
// JSON, by extension), HYPART_* environment variables and, when flags is
// non-nil, command-line flags whose names match the dotted keys
// ("partition.k", "local_search.algorithm", ...). Later sources win.
func Load(path string, flags *pflag.FlagSet) (*Context, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	var ctx Context
	if err := v.Unmarshal(&ctx); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// setDefaults registers every key of Default() so that environment variables
// and flags resolve even when no file provides them.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("partition.k", d.Partition.K)
	v.SetDefault("partition.epsilon", d.Partition.Epsilon)
	v.SetDefault("partition.objective", string(d.Partition.Objective))
	v.SetDefault("partition.mode", string(d.Partition.Mode))
	v.SetDefault("partition.seed", d.Partition.Seed)

	v.SetDefault("coarsening.contraction_limit_multiplier", d.Coarsening.ContractionLimitMultiplier)
	v.SetDefault("coarsening.max_allowed_weight_multiplier", d.Coarsening.MaxAllowedWeightMultiplier)
	v.SetDefault("coarsening.max_edge_size", d.Coarsening.MaxEdgeSize)

	v.SetDefault("initial_partitioning.algorithm", string(d.InitialPartitioning.Algorithm))
	v.SetDefault("initial_partitioning.nruns", d.InitialPartitioning.NRuns)

	v.SetDefault("local_search.algorithm", string(d.LocalSearch.Algorithm))
	v.SetDefault("local_search.max_iterations", d.LocalSearch.MaxIterations)
	v.SetDefault("local_search.max_fruitless_moves", d.LocalSearch.MaxFruitlessMoves)

	v.SetDefault("logging.level", d.Logging.Level)
}
