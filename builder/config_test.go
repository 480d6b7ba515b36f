// Package builder contains unit tests for builderConfig and the ID schemes.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "7", newBuilderConfig().idFn(7))
	require.Equal(t, "12", newBuilderConfig(WithOneBasedIDs()).idFn(11))
	require.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	require.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))

	// last option wins
	require.Equal(t, "A", newBuilderConfig(WithSymbNumb("v"), WithExcelColumnIDs()).idFn(0))

	require.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, newBuilderConfig().rng)

	r := rand.New(rand.NewSource(123))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	require.Panics(t, func() { WithRand(nil) })

	a := newBuilderConfig(WithSeed(5)).rng
	b := newBuilderConfig(WithSeed(5)).rng
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestExcelColumnIDFn(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		require.Equal(t, want, ExcelColumnIDFn(idx), "idx %d", idx)
	}
	require.Panics(t, func() { ExcelColumnIDFn(-1) })
	require.Panics(t, func() { SymbolNumberIDFn("x")(-1) })
}
