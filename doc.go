// Package blossom computes maximum-cardinality matchings in general
// undirected graphs with Edmonds' blossom algorithm.
//
// 🚀 What is blossom?
//
//	A small library and CLI built around one question: which largest set of
//	edges shares no vertex? Bipartite matchers stop at even cycles; blossom
//	contracts odd ones and keeps searching.
//		• Core primitives: thread-safe Graph with sorted, deterministic views
//		• Builders: Path, Cycle, Complete, Star, Petersen, random G(n,m), G(n,p)
//		• Matching: Edmonds (forest + blossom arena) and Gabow (base array + LCA)
//		• Certificates: Verify (no augmenting path) and Decompose (Gallai–Edmonds)
//		• I/O: YAML graph files and matching reports
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         Graph, Edge, options and sorted adjacency
//	builder/      deterministic graph constructors
//	matching/     Edmonds, Gabow, Verify, Decompose, Matching
//	graphio/      YAML graph files and reports
//	cmd/lvmatch/  command-line front end
//
// Quick ASCII example:
//
//	r ─ a ─ t
//	│    \
//	d     b
//	 \    │
//	  c ──┘
//
//	g := core.NewGraph()
//	for _, e := range [][2]string{{"r", "a"}, {"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "r"}, {"a", "t"}} {
//		g.AddEdge(e[0], e[1])
//	}
//	m, _ := matching.Edmonds(g)
//	fmt.Println(m.Size(), m.IsPerfect()) // 3 true
package blossom
