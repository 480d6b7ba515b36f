package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/blossom/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, simple by default; individual tests may override
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"))
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// idempotent
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestAddEdgeMirrorsUndirected() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edge must be mirrored")

	na, err := s.g.Neighbors("A")
	require.NoError(err)
	nb, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Len(na, 1)
	require.Len(nb, 1)
	require.Same(na[0], nb[0], "both endpoints must see the same *Edge")
	require.Equal("B", na[0].Other("A"))
	require.Equal("", na[0].Other("Z"))
}

func (s *GraphSuite) TestPolicyViolations() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "A")
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("A", "B")
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B")
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
	_, err = s.g.AddEdge("B", "A")
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed, "mirror counts as the same pair")

	_, err = s.g.AddEdge("", "B")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestLoopsAndMultiEdgesWhenEnabled() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "A")
	require.NoError(err)
	_, err = g.AddEdge("A", "B")
	require.NoError(err)
	_, err = g.AddEdge("B", "A")
	require.NoError(err)

	edges, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(edges, 3, "loop once + two parallel edges")

	ids, err := g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, ids)
}

func (s *GraphSuite) TestDirectedNeighbors() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(err)

	out, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(out, 1)
	require.True(out[0].Directed)

	in, err := g.Neighbors("B")
	require.NoError(err)
	require.Empty(in)
}

func (s *GraphSuite) TestRemoveVertexAndEdge() {
	require := require.New(s.T())
	e1, _ := s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("B", "C")

	require.NoError(s.g.RemoveEdge(e1))
	require.False(s.g.HasEdge("A", "B"))
	require.ErrorIs(s.g.RemoveEdge(e1), core.ErrEdgeNotFound)
	_, err := s.g.GetEdge(e1)
	require.ErrorIs(err, core.ErrEdgeNotFound)

	require.NoError(s.g.RemoveVertex("B"))
	require.False(s.g.HasEdge("B", "C"))
	require.Equal(0, s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveVertex("B"), core.ErrVertexNotFound)
	require.ErrorIs(s.g.RemoveVertex(""), core.ErrEmptyVertexID)

	_, err = s.g.Neighbors("B")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestDeterministicOrdering() {
	require := require.New(s.T())
	// 12 edges so that "e10" < "e2" lexicographically but not numerically
	for i := 0; i < 12; i++ {
		_, err := s.g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 12)
	require.Equal("e1", edges[0].ID)
	require.Equal("e2", edges[1].ID)
	require.Equal("e12", edges[11].ID)

	nbrs, err := s.g.Neighbors("hub")
	require.NoError(err)
	require.Equal("e10", nbrs[9].ID)

	require.Equal("a", s.g.Vertices()[0])
	d, err := s.g.Degree("hub")
	require.NoError(err)
	require.Equal(12, d)
}

func (s *GraphSuite) TestConcurrentReaders() {
	for i := 0; i < 50; i++ {
		_, _ = s.g.AddEdge("v"+string(rune('A'+i%26)), "w"+string(rune('A'+i%26)))
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range s.g.Vertices() {
				_, err := s.g.Neighbors(v)
				s.NoError(err)
			}
		}()
	}
	wg.Wait()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
