// Package core provides the thread-safe in-memory Graph consumed by the
// matching engine as a read-only view.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj)
//
// Deterministic iteration: Vertices() and NeighborIDs() are sorted
// lexicographically, Edges() and Neighbors() follow edge creation order. The
// matching engine relies on this to produce the same matching for the same
// graph on every run.
//
// The matching package only needs a simple undirected graph. Loops, parallel
// edges and directed edges are still representable here so that malformed
// inputs can be constructed (for example by graphio) and then rejected by the
// engine with a precise error instead of being silently normalized.
//
// Core methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//	AddEdge(from, to string) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//	GetEdge(edgeID string) (*Edge, error)
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Vertices() []string
//	Edges() []*Edge
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
