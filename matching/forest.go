// File: forest.go
// Role: Per-phase alternating forest: labels, parent links, roots and the
// work queue, stored as flat arrays so a phase teardown is a single reset.

package matching

// label is the search state of one vertex.
type label uint8

const (
	unvisited label = iota
	even            // reachable from a root by an even-length alternating path
	odd             // reachable by an odd-length alternating path only
)

func (l label) String() string {
	switch l {
	case even:
		return "even"
	case odd:
		return "odd"
	default:
		return "unvisited"
	}
}

// forest holds the alternating trees of one search phase.
//
// parent[v] is the other endpoint of v's tree edge:
//   - odd v: the even vertex that discovered it (unmatched edge),
//   - even v: its mate (matched edge); roots have noVertex.
//
// Odd vertices absorbed by a blossom are relabeled even but keep their
// parent, which path reconstruction relies on.
type forest struct {
	label  []label
	parent []int
	root   []int
	queue  []int
	head   int
}

func newForest(n int) *forest {
	f := &forest{
		label:  make([]label, n),
		parent: make([]int, n),
		root:   make([]int, n),
		queue:  make([]int, 0, n),
	}
	f.reset()

	return f
}

// reset discards every label. Complexity: O(V).
func (f *forest) reset() {
	for i := range f.label {
		f.label[i] = unvisited
		f.parent[i] = noVertex
		f.root[i] = noVertex
	}
	f.queue = f.queue[:0]
	f.head = 0
}

// plant makes r the even root of a new tree and enqueues it.
func (f *forest) plant(r int) {
	f.label[r] = even
	f.root[r] = r
	f.push(r)
}

// grow attaches the matched pair (w, wm) below the even vertex u:
// w becomes odd with parent u, wm becomes even with parent w and is enqueued.
func (f *forest) grow(u, w, wm int) {
	r := f.root[u]
	f.label[w], f.parent[w], f.root[w] = odd, u, r
	f.label[wm], f.parent[wm], f.root[wm] = even, w, r
	f.push(wm)
}

func (f *forest) push(v int) { f.queue = append(f.queue, v) }

func (f *forest) pop() (int, bool) {
	if f.head == len(f.queue) {
		return noVertex, false
	}
	v := f.queue[f.head]
	f.head++

	return v, true
}

// labeled returns the vertices carrying label l, ascending.
func (f *forest) labeled(l label) []int {
	var out []int
	for v, got := range f.label {
		if got == l {
			out = append(out, v)
		}
	}

	return out
}
