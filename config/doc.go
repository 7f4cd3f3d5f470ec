// Package config holds the read-only Context of a partitioning run: the
// objective (cut | km1), partitioning mode, block count and imbalance, the
// coarsening bounds (contraction limit, maximum node weight), the initial
// partitioning and local search algorithms, the random seed and the log level.
//
// Contexts are built with Default() or Load(), which layers a config file,
// HYPART_* environment variables and command-line flags over the defaults
// using viper. Validate() rejects out-of-range numbers and unknown enum
// values; Setup() derives the per-graph bounds.
package config
