// Package initial computes a k-way partition of the coarsest hypergraph.
//
// Partition runs the configured algorithm InitialPartitioning.NRuns times
// with independent random streams and keeps the best assignment:
//
//  1. balanced runs (no block above its weight bound) beat imbalanced ones;
//  2. then the lower objective value (cut or km1) wins;
//  3. then the lower imbalance.
//
// Algorithms:
//
//   - random:   nodes in random order, each to a random block that still
//     has room (the lightest block when none has).
//   - bfs:      blocks grow breadth-first from random seed nodes; the
//     lightest block always takes the next node from its frontier.
//   - spectral: sweep over the Fiedler vector of the clique-expansion
//     Laplacian (gonum). Only for k = 2; larger k falls back to bfs.
//
// Complexity: random and bfs are O(P) per run; spectral is O(n³) for the
// eigendecomposition, which is why it is meant for coarse hypergraphs.
//
// Errors: config.ErrUnsupportedAlgorithm, config.ErrUnsupportedObjective and
// hypergraph errors from block assignment.
package initial
