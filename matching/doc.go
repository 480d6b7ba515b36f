// Package matching computes maximum-cardinality matchings in general
// undirected graphs, including graphs with odd cycles, with Edmonds' blossom
// method.
//
// What
//
//   - Edmonds: grows an alternating tree from each free vertex, contracts
//     odd cycles (blossoms) into their base via a union-find, and lifts an
//     augmenting path found in the contracted graph back to original
//     vertices through the recorded blossom bridges.
//   - Gabow: a compact formulation of the same method (base array, LCA
//     marking, parent re-threading) used as an independent second strategy.
//     Both satisfy the Algorithm contract and always agree on the size.
//   - Verify: validity plus maximality check of any matching (Berge: a
//     matching is maximum iff no augmenting path exists).
//   - Decompose: Gallai–Edmonds decomposition with the Tutte–Berge bound,
//     a certificate of maximality that does not trust the search.
//
// Graph contract
//
//	The engine reads a GraphView (*core.Graph satisfies it). The graph must
//	be undirected and simple. Self-loops, parallel edges, directed edges and
//	one-sided adjacency are rejected up front as *InvalidGraphError values,
//	all combined into one error (errors.Is(err, ErrInvalidGraph) holds).
//
// Determinism
//
//	Vertices are indexed in Vertices() order and neighbors scanned in
//	Neighbors() order, which core sorts by edge ID. The same graph therefore
//	yields the same matching on every run. Which maximum matching is chosen
//	among several is not part of the contract; only its size is.
//
// Concurrency
//
//	A computation is single-threaded and owns all of its state. The graph
//	is only read, so independent computations over one graph may run in
//	parallel goroutines. A returned *Matching is immutable.
//
// Cancellation and errors
//
//	WithContext is checked before every search phase and on every queue pop;
//	a cancelled computation returns ctx.Err() and no matching. There is no
//	partial result: callers get a valid maximum matching or an error.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Edmonds: O(V) phases of O(E + V·B) each, B = blossoms per phase;
//     O(V³) worst case.
//   - Gabow:   O(V) phases of O(V·E) worst case each.
//   - Memory:  O(V + E).
//
// Usage
//
//	m, err := matching.Edmonds(g,
//	    matching.WithContext(ctx),
//	    matching.WithLogger(logger),
//	    matching.WithInitializer(matching.InitGreedy),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrInvalidGraph, ErrOptionViolation, ErrNeighbors,
//	    // ErrPreconditionViolation or ctx.Err()
//	}
//	fmt.Println(m.Size(), m.Pairs())
//
//	if err := matching.Verify(g, m); err != nil { /* ErrNotMaximum, ... */ }
package matching
