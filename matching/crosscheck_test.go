package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

// TestRandomGraphsStrategiesAgree compares both strategies on 100 random
// G(200,120) instances and certifies each result independently.
func TestRandomGraphsStrategiesAgree(t *testing.T) {
	const (
		runs     = 100
		vertices = 200
		edges    = 120
	)
	for seed := int64(1); seed <= runs; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomGNM(vertices, edges),
		)
		require.NoError(t, err)

		ed, err := matching.Edmonds(g)
		require.NoError(t, err)
		gb, err := matching.Gabow(g)
		require.NoError(t, err)
		require.Equal(t, gb.Size(), ed.Size(), "seed %d", seed)

		requireValid(t, g, ed)
		requireValid(t, g, gb)
		require.NoError(t, matching.Verify(g, ed), "seed %d", seed)
		require.NoError(t, matching.Verify(g, gb), "seed %d", seed)

		d, err := matching.Decompose(g, ed)
		require.NoError(t, err)
		require.Equal(t, ed.Size(), d.TutteBerge, "seed %d", seed)
	}
}

// TestDenseRandomGraphs exercises nested blossoms, which sparse graphs
// rarely produce.
func TestDenseRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(31, 0.15),
		)
		require.NoError(t, err)

		for _, seeding := range []matching.Initializer{matching.InitEmpty, matching.InitGreedy} {
			ed, err := matching.Edmonds(g, matching.WithInitializer(seeding))
			require.NoError(t, err)
			gb, err := matching.Gabow(g, matching.WithInitializer(seeding))
			require.NoError(t, err)
			require.Equal(t, gb.Size(), ed.Size(), "seed %d init %s", seed, seeding)
			require.NoError(t, matching.Verify(g, ed))

			d, err := matching.Decompose(g, ed)
			require.NoError(t, err)
			require.Equal(t, ed.Size(), d.TutteBerge, "seed %d", seed)
		}
	}
}

// bruteForce returns the matching number of g by exhaustive search over the
// lowest still-undecided vertex.
func bruteForce(g *core.Graph) int {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, _ := g.NeighborIDs(id)
		for _, v := range nbrs {
			adj[i] = append(adj[i], pos[v])
		}
	}
	used := make([]bool, len(ids))

	var best func(from int) int
	best = func(from int) int {
		for from < len(ids) && used[from] {
			from++
		}
		if from == len(ids) {
			return 0
		}
		used[from] = true
		top := best(from + 1) // leave it free
		for _, v := range adj[from] {
			if used[v] {
				continue
			}
			used[v] = true
			if got := 1 + best(from+1); got > top {
				top = got
			}
			used[v] = false
		}
		used[from] = false

		return top
	}

	return best(0)
}

func TestSmallGraphsAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		n := 2 + int(seed%9)
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(n, 0.45),
		)
		require.NoError(t, err)

		want := bruteForce(g)
		for _, algo := range []matching.Algorithm{matching.Edmonds, matching.Gabow} {
			m, err := algo(g)
			require.NoError(t, err)
			require.Equal(t, want, m.Size(), "seed %d n %d", seed, n)
		}
	}
}
