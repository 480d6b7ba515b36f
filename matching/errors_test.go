package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

// fakeView serves a hand-written adjacency, which lets tests expose graphs
// core.Graph would never produce.
type fakeView struct {
	vertices []string
	incident map[string][]*core.Edge
	fail     string
}

func (f *fakeView) Vertices() []string { return f.vertices }

func (f *fakeView) Neighbors(id string) ([]*core.Edge, error) {
	if id == f.fail {
		return nil, errors.New("backend unavailable")
	}

	return f.incident[id], nil
}

func TestNilInputs(t *testing.T) {
	for _, algo := range []matching.Algorithm{matching.Edmonds, matching.Gabow} {
		_, err := algo(nil)
		require.ErrorIs(t, err, matching.ErrGraphNil)

		var g *core.Graph
		_, err = algo(g)
		require.ErrorIs(t, err, matching.ErrGraphNil)
	}

	g := core.NewGraph()
	require.ErrorIs(t, matching.Verify(g, nil), matching.ErrMatchingNil)
	_, err := matching.Decompose(g, nil)
	require.ErrorIs(t, err, matching.ErrMatchingNil)
	_, err = matching.FromPairs(nil, nil)
	require.ErrorIs(t, err, matching.ErrGraphNil)
}

func TestInvalidGraphs(t *testing.T) {
	looped := core.NewGraph(core.WithLoops())
	_, err := looped.AddEdge("a", "a")
	require.NoError(t, err)
	_, err = looped.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = looped.AddEdge("b", "b")
	require.NoError(t, err)

	multi := core.NewGraph(core.WithMultiEdges())
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)

	directed := core.NewGraph(core.WithDirected(true))
	_, err = directed.AddEdge("a", "b")
	require.NoError(t, err)

	ab := &core.Edge{ID: "x1", From: "a", To: "b"}
	oneSided := &fakeView{
		vertices: []string{"a", "b"},
		incident: map[string][]*core.Edge{"a": {ab}},
	}
	dangling := &fakeView{
		vertices: []string{"a"},
		incident: map[string][]*core.Edge{"a": {{ID: "x2", From: "a", To: "ghost"}}},
	}

	tests := []struct {
		name   string
		g      matching.GraphView
		reason string
		count  int
	}{
		{"self-loops", looped, matching.ReasonSelfLoop, 2},
		{"parallel edges", multi, matching.ReasonParallelEdge, 1},
		{"directed edge", directed, matching.ReasonDirectedEdge, 1},
		{"one-sided adjacency", oneSided, matching.ReasonAsymmetric, 1},
		{"unknown endpoint", dangling, matching.ReasonUnknownEndpoint, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, algo := range []matching.Algorithm{matching.Edmonds, matching.Gabow} {
				m, err := algo(tc.g)
				require.Nil(t, m)
				require.ErrorIs(t, err, matching.ErrInvalidGraph)

				var ige *matching.InvalidGraphError
				require.ErrorAs(t, err, &ige)
				require.Equal(t, tc.reason, ige.Reason)
				require.Len(t, multierr.Errors(err), tc.count)
			}
		})
	}
}

func TestNeighborFailure(t *testing.T) {
	v := &fakeView{vertices: []string{"a"}, fail: "a"}
	_, err := matching.Edmonds(v)
	require.ErrorIs(t, err, matching.ErrNeighbors)
	require.Contains(t, err.Error(), "backend unavailable")
}

func TestOptionViolation(t *testing.T) {
	g := core.NewGraph()
	_, err := matching.Edmonds(g, matching.WithInitializer(matching.Initializer(9)))
	require.ErrorIs(t, err, matching.ErrOptionViolation)
	require.ErrorIs(t, matching.Verify(g, nil, matching.WithInitializer(-1)), matching.ErrMatchingNil)

	seed, err := matching.ParseInitializer("greedy")
	require.NoError(t, err)
	require.Equal(t, matching.InitGreedy, seed)
	require.Equal(t, "greedy", seed.String())
	_, err = matching.ParseInitializer("random")
	require.ErrorIs(t, err, matching.ErrOptionViolation)
}

func TestCancellation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.DisjointEdges(3))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, algo := range []matching.Algorithm{matching.Edmonds, matching.Gabow} {
		m, err := algo(g, matching.WithContext(ctx))
		require.Nil(t, m)
		require.ErrorIs(t, err, context.Canceled)
	}

	// cancelled between phases: the first augmentation stops the run
	for _, algo := range []matching.Algorithm{matching.Edmonds, matching.Gabow} {
		ctx, cancel := context.WithCancel(context.Background())
		m, err := algo(g,
			matching.WithContext(ctx),
			matching.WithOnAugment(func([]string) { cancel() }),
		)
		require.Nil(t, m)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestFromPairsRejectsNonMatchings(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	tests := []struct {
		name  string
		pairs [][2]string
	}{
		{"not an edge", [][2]string{{"0", "2"}}},
		{"shared vertex", [][2]string{{"0", "1"}, {"1", "2"}}},
		{"unknown vertex", [][2]string{{"0", "9"}}},
		{"self pair", [][2]string{{"1", "1"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matching.FromPairs(g, tc.pairs)
			require.ErrorIs(t, err, matching.ErrNotAMatching)
		})
	}

	m, err := matching.FromPairs(g, [][2]string{{"2", "1"}})
	require.NoError(t, err)
	require.Equal(t, 1, m.Size())
	require.Equal(t, "pairs", m.Algorithm())
	// pairs follow the stored edge orientation
	require.Equal(t, [][2]string{{"1", "2"}}, m.Pairs())
}
