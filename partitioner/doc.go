// Package partitioner runs the complete multilevel scheme on a hypergraph.
//
// Two modes are supported:
//
//   - direct_kway: coarsen to Coarsening.ContractionLimit nodes, compute an
//     initial k-way partition of the coarsest hypergraph, then uncoarsen with
//     the configured refiner.
//   - recursive_bisection: bisect with the multilevel scheme and 2-way FM,
//     extract both blocks and recurse until k blocks exist. With the km1
//     objective, blocks are extracted with cut-net splitting so that the
//     connectivity of the final partition equals the sum of the cuts.
//
// Every run carries a uuid run id, per-phase timings and the statistics of
// package stats. Result.String renders the single RESULT line; a Result also
// marshals to YAML.
//
// Example:
//
//	hg, _ := builder.Build([]builder.BuilderOption{builder.WithSeed(1)},
//		builder.Random(1000, 1500, 2, 6))
//	ctx := config.Default()
//	ctx.Partition.K = 4
//	res, err := partitioner.Partition(hg, &ctx)
//	if err != nil { ... }
//	fmt.Println(res)
package partitioner
