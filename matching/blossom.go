// File: blossom.go
// Role: Blossom contraction layer: vertex→base resolution and the arena of
// blossoms with the cycle and bridge data needed to expand them again.

package matching

// noBlossom marks a vertex that was never turned even by a contraction.
const noBlossom = -1

// disjointSet is a union-find forest over vertex indices with path halving.
// attach keeps the caller's chosen representative, which blossoms use to
// make every set's root its base.
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n)}
	ds.reset()

	return ds
}

func (ds *disjointSet) reset() {
	for i := range ds.parent {
		ds.parent[i] = i
	}
}

func (ds *disjointSet) find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// attach merges v's set under root, which must be a representative.
func (ds *disjointSet) attach(v, root int) {
	if r := ds.find(v); r != root {
		ds.parent[r] = root
	}
}

// union merges the sets of a and b; the representative of b survives.
func (ds *disjointSet) union(a, b int) {
	ds.attach(a, ds.find(b))
}

// blossom is one contracted odd cycle.
//
// cycle lists the cycle in the contracted graph starting at base: the
// members reached from bridge[0] in top-down order, then the members
// reached from bridge[1] bottom-up. Members are sub-blossom bases and the
// odd vertices between them.
type blossom struct {
	base   int
	bridge [2]int
	cycle  []int
}

// blossoms is the arena of one search phase. Blossoms are referenced by
// their arena index, never by pointer; nesting is expressed through the
// union-find, whose set roots are the current outermost bases.
type blossoms struct {
	sets  *disjointSet
	arena []blossom
	owner []int   // odd vertex → arena index of the blossom that turned it even
	side  []uint8 // 0: reached from bridge[0], 1: from bridge[1]
	mark  []int   // common-base search stamps
	stamp int
}

func newBlossoms(n int) *blossoms {
	b := &blossoms{
		sets:  newDisjointSet(n),
		owner: make([]int, n),
		side:  make([]uint8, n),
		mark:  make([]int, n),
	}
	b.reset()

	return b
}

// reset drops every blossom. Complexity: O(V).
func (b *blossoms) reset() {
	b.sets.reset()
	b.arena = b.arena[:0]
	for i := range b.owner {
		b.owner[i] = noBlossom
		b.side[i] = 0
	}
}

// base resolves v to the base of the outermost blossom containing it.
func (b *blossoms) base(v int) int { return b.sets.find(v) }

// bridgeFrom returns the bridge of v's owning blossom oriented from v's
// side: x lies in the part of the cycle that v was reached from, y in the
// other part.
func (b *blossoms) bridgeFrom(v int) (x, y int, ok bool) {
	k := b.owner[v]
	if k == noBlossom {
		return noVertex, noVertex, false
	}
	br := b.arena[k].bridge
	if b.side[v] == 1 {
		return br[1], br[0], true
	}

	return br[0], br[1], true
}
