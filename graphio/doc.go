// Package graphio reads and writes graphs and matching reports as YAML.
//
// A graph file lists optional isolated vertices and an edge list:
//
//	vertices: [iso]
//	edges:
//	  - [a, b]
//	  - [b, c]
//
// Graphs are loaded with loops and multi-edges enabled so that malformed
// inputs reach the matching engine, which rejects them with a precise
// matching.InvalidGraphError. Reports carry the algorithm, size, pairs and
// free vertices of a matching and can be turned back into a
// *matching.Matching with Report.Matching.
package graphio
