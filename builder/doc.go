// Package builder provides deterministic graph generators used as fixtures
// for matching computations: tests, examples, benchmarks and the lvmatch CLI.
//
// The package offers:
//
//   - BuildGraph, the single orchestrator: it creates a core.Graph, resolves
//     BuilderOption values into a builderConfig, and applies Constructors in
//     order.
//   - Topologies: Path, Cycle, Complete, Star, Petersen, DisjointEdges.
//   - Random models: RandomSparse (G(n,p)) and RandomGNM (G(n,m)), seeded with
//     WithSeed or WithRand.
//   - Vertex ID schemes (IDFn): DefaultIDFn, OneBasedIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical vertex set, edge set and
//     edge IDs.
//   - Constructors return sentinel errors wrapped with the constructor name
//     (ErrTooFewVertices, ErrInvalidProbability, ErrTooManyEdges,
//     ErrNeedRandSource, ErrUnsupportedGraphMode); option constructors panic
//     on nil arguments.
//
// Usage
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomGNM(200, 120),
//	)
package builder
