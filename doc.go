// Package hypart is a multilevel hypergraph partitioner.
//
// 🚀 What is hypart?
//
//	A library and command that split the nodes of a weighted hypergraph into
//	k blocks of bounded weight while minimizing the hyperedges that span
//	several blocks (cut) or their connectivity (km1). It brings together:
//		• Hypergraph storage with reversible contractions
//		• Coarsening: heavy-edge rating, priority-queue scheduling, pruning
//		• Initial partitioning: random, BFS growing, spectral bisection
//		• Uncoarsening with 2-way FM or k-way label propagation refinement
//		• Direct k-way and recursive bisection drivers
//
// ✨ Why hypart?
//
//   - Exact undo – every contraction is recorded and reversed in LIFO order
//   - Deterministic – every random step draws from an explicit seed
//   - Observable – zerolog tracing and Prometheus statistics per run
//
// Packages:
//
//	hypergraph/  — storage, contraction/uncontraction, pruning, partition bookkeeping
//	coarsening/  — scheduler, contraction executor, uncoarsening driver
//	rating/      — heavy-edge contraction partner rating
//	refinement/  — 2-way FM, label propagation, do-nothing refiners
//	initial/     — best-of-n initial partitioning
//	partitioner/ — direct k-way and recursive bisection entry point
//	metrics/     — cut, km1, soed, absorption, imbalance
//	stats/       — run statistics mirrored into Prometheus collectors
//	config/      — Context, viper loading, validation, logger
//	builder/     — seeded hypergraph generators
//	cmd/hypart/  — command-line front end
//
// Quick example (two triangles joined by e2={0,5}):
//
//	hg, _ := hypergraph.New(6, [][]hypergraph.NodeID{{0, 1, 2}, {3, 4, 5}, {0, 5}})
//	ctx := config.Default()
//	res, _ := partitioner.Partition(hg, &ctx)
//	fmt.Println(res) // RESULT run_id=… k=2 … cut=… km1=… imbalance=…
//
//	go get github.com/katalvlaran/hypart
package hypart
