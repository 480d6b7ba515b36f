package matching_test

import (
	"testing"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

func benchGraph(b *testing.B, ctor builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func runBench(b *testing.B, g *core.Graph, algo matching.Algorithm, opts ...matching.Option) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algo(g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSparse measures the G(200,120) workload of the cross-check test.
func BenchmarkSparse(b *testing.B) {
	g := benchGraph(b, builder.RandomGNM(200, 120))
	b.Run("edmonds", func(b *testing.B) { runBench(b, g, matching.Edmonds) })
	b.Run("gabow", func(b *testing.B) { runBench(b, g, matching.Gabow) })
}

// BenchmarkOddCycle forces a blossom in almost every phase.
func BenchmarkOddCycle(b *testing.B) {
	g := benchGraph(b, builder.Cycle(1001))
	b.Run("edmonds", func(b *testing.B) { runBench(b, g, matching.Edmonds) })
	b.Run("gabow", func(b *testing.B) { runBench(b, g, matching.Gabow) })
}

// BenchmarkDense compares empty and greedy seeding on G(300, 0.05).
func BenchmarkDense(b *testing.B) {
	g := benchGraph(b, builder.RandomSparse(300, 0.05))
	b.Run("edmonds/empty", func(b *testing.B) { runBench(b, g, matching.Edmonds) })
	b.Run("edmonds/greedy", func(b *testing.B) {
		runBench(b, g, matching.Edmonds, matching.WithInitializer(matching.InitGreedy))
	})
	b.Run("gabow/greedy", func(b *testing.B) {
		runBench(b, g, matching.Gabow, matching.WithInitializer(matching.InitGreedy))
	})
}
