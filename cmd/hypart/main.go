// Command hypart partitions a seeded random hypergraph and prints the RESULT
// line (or the YAML result).
//
// Usage:
//
//	hypart [--config file] [--nodes n] [--edges m] [--min-size a] [--max-size b]
//	       [--graph-seed s] [--format result|yaml] [--partition.k k] ...
//
// Every configuration key can also be given as a dotted flag, in the config
// file, or as a HYPART_* environment variable.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/hypart/builder"
	"github.com/katalvlaran/hypart/config"
	"github.com/katalvlaran/hypart/partitioner"
)

// errUnknownFormat is returned for an unsupported --format value.
var errUnknownFormat = errors.New("hypart: unknown output format")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	d := config.Default()
	fs := pflag.NewFlagSet("hypart", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "configuration file (yaml, toml or json)")
	nodes := fs.Int("nodes", 1000, "number of nodes of the generated hypergraph")
	edges := fs.Int("edges", 1500, "number of hyperedges of the generated hypergraph")
	minSize := fs.Int("min-size", 2, "smallest hyperedge size")
	maxSize := fs.Int("max-size", 6, "largest hyperedge size")
	graphSeed := fs.Int64("graph-seed", 1, "seed of the hypergraph generator")
	format := fs.String("format", "result", "output format: result or yaml")

	fs.Int("partition.k", d.Partition.K, "number of blocks")
	fs.Float64("partition.epsilon", d.Partition.Epsilon, "allowed imbalance")
	fs.String("partition.objective", string(d.Partition.Objective), "objective: cut or km1")
	fs.String("partition.mode", string(d.Partition.Mode), "mode: direct_kway or recursive_bisection")
	fs.Int64("partition.seed", d.Partition.Seed, "partitioner seed")
	fs.Int("coarsening.contraction_limit_multiplier", d.Coarsening.ContractionLimitMultiplier,
		"coarsen down to multiplier·k nodes")
	fs.String("initial_partitioning.algorithm", string(d.InitialPartitioning.Algorithm),
		"initial partitioning: random, bfs or spectral")
	fs.String("local_search.algorithm", string(d.LocalSearch.Algorithm),
		"refiner: twoway_fm, label_propagation or do_nothing")
	fs.String("logging.level", d.Logging.Level, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "result" && *format != "yaml" {
		return fmt.Errorf("%w: %q", errUnknownFormat, *format)
	}

	ctx, err := config.Load(*configPath, fs)
	if err != nil {
		return err
	}
	log := ctx.LoggerTo(stderr)

	hg, err := builder.Build([]builder.BuilderOption{builder.WithSeed(*graphSeed)},
		builder.Random(*nodes, *edges, *minSize, *maxSize))
	if err != nil {
		return err
	}

	res, err := partitioner.Partition(hg, ctx, partitioner.WithLogger(log))
	if err != nil {
		return err
	}

	if *format == "yaml" {
		out, err := res.YAML()
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}
	_, err = fmt.Fprintln(stdout, res)
	return err
}
