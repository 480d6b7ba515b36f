package matching_test

import (
	"fmt"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

// ExampleEdmonds matches two disjoint edges plus an isolated vertex.
func ExampleEdmonds() {
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		_ = g.AddVertex(v)
	}
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("3", "4")

	m, err := matching.Edmonds(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Size(), m.Pairs(), m.Free())
	// Output:
	// 2 [[1 2] [3 4]] [5]
}

// ExampleEdmonds_blossom shows an augmenting path that only exists through
// an odd cycle: the 5-cycle r-a-b-c-d is contracted into r and the path
// r-d-c-b-a-t is lifted back through it.
func ExampleEdmonds_blossom() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"c", "d"}, {"b", "c"}, {"r", "a"}, {"d", "r"}, {"a", "t"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	m, err := matching.Edmonds(g,
		matching.WithInitializer(matching.InitGreedy),
		matching.WithOnBlossom(func(base string, cycle []string) {
			fmt.Println("blossom", base, cycle)
		}),
		matching.WithOnAugment(func(path []string) {
			fmt.Println("augment", path)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Size(), m.IsPerfect())
	// Output:
	// blossom r [r a b c d]
	// augment [r d c b a t]
	// 3 true
}

// ExampleDecompose certifies a star's matching with the Tutte–Berge bound.
func ExampleDecompose() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(4))
	m, _ := matching.Gabow(g)

	d, err := matching.Decompose(g, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("D:", d.Even, "A:", d.Odd, "C:", d.Unreached)
	fmt.Println("size:", m.Size(), "bound:", d.TutteBerge, "deficiency:", d.Deficiency())
	// Output:
	// D: [1 2 3] A: [Center] C: []
	// size: 1 bound: 1 deficiency: 2
}

// ExampleVerify rejects a matching that still has an augmenting path.
func ExampleVerify() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))
	m, _ := matching.FromPairs(g, [][2]string{{"1", "2"}})

	fmt.Println(matching.Verify(g, m))
	// Output:
	// matching: matching is not maximum: augmenting path 0 - 1 - 2 - 3
}
