// Package builder generates hypergraphs for tests, benchmarks and the CLI.
//
// Generation is split into constructors that append nodes and hyperedges to
// a shared draft, and functional options that resolve into one builderConfig
// (random source, weight distributions). Build applies the constructors in
// order and materializes the draft with hypergraph.New.
//
// Constructors:
//   - Random(n, m, minSize, maxSize): m hyperedges of uniform random size
//     over n fresh nodes, pins drawn without replacement.
//   - Ring(n, size): n sliding-window hyperedges of the given size over a
//     cycle of n fresh nodes.
//   - Grid(rows, cols): one hyperedge per row and per column of a
//     rows×cols node grid.
//
// Determinism: the same constructors, options and seed yield identical
// hypergraphs. Stochastic constructors require WithSeed or WithRand.
//
// Errors:
//   - ErrTooFewNodes:     a size parameter is below its minimum.
//   - ErrInvalidEdgeSize: minSize/maxSize out of range.
//   - ErrNeedRandSource:  stochastic constructor without a random source.
//   - ErrConstructFailed: nil constructor, or hypergraph.New rejected the draft.
package builder
