// File: verify.go
// Role: Certificates for a matching: validity plus absence of augmenting
// paths (Verify), and the Gallai–Edmonds decomposition with the Tutte–Berge
// bound (Decompose).

package matching

import (
	"fmt"
	"strings"
)

// Verify checks that m is a matching of g and that it is maximum.
//
// Validity failures return ErrNotAMatching. Maximality is established by a
// single-root search from every free vertex; the first augmenting path found
// is reported in an ErrNotMaximum error.
//
// Complexity: O(V·(E + V·B)).
func Verify(g GraphView, m *Matching, opts ...Option) error {
	ix, mate, o, err := prepareCheck(g, m, opts)
	if err != nil {
		return err
	}

	var stats Stats
	s := newSearcher(ix, mate, &o, &stats)
	for r := 0; r < ix.n(); r++ {
		if mate[r] != unMatched || len(ix.adj[r]) == 0 {
			continue
		}
		path, err := s.run([]int{r})
		if err != nil {
			return err
		}
		if path != nil {
			return notMaximum(ix, path)
		}
	}

	return nil
}

// Decomposition is the Gallai–Edmonds partition of a graph with respect to a
// maximum matching.
type Decomposition struct {
	// Even (D): vertices left free by at least one maximum matching.
	Even []string
	// Odd (A): neighbors of D outside D.
	Odd []string
	// Unreached (C): everything else; perfectly matched among themselves.
	Unreached []string
	// OddComponents is the number of odd components of G - A.
	OddComponents int
	// TutteBerge is (|V| - OddComponents + |A|) / 2, the upper bound on the
	// matching number certified by A.
	TutteBerge int
}

// Deficiency is the number of vertices every maximum matching leaves free.
func (d *Decomposition) Deficiency() int { return d.OddComponents - len(d.Odd) }

// Decompose labels g from one alternating forest rooted at every free vertex
// of m. If an augmenting path shows up, m is not maximum and ErrNotMaximum is
// returned. Otherwise the labels are the Gallai–Edmonds sets and
// TutteBerge == m.Size(), which certifies maximality independently of the
// search.
//
// Complexity: O(E + V·B) for the forest plus O(V + E) for the components.
func Decompose(g GraphView, m *Matching, opts ...Option) (*Decomposition, error) {
	ix, mate, o, err := prepareCheck(g, m, opts)
	if err != nil {
		return nil, err
	}

	var roots []int
	for v := range mate {
		if mate[v] == unMatched {
			roots = append(roots, v)
		}
	}
	var stats Stats
	s := newSearcher(ix, mate, &o, &stats)
	path, err := s.run(roots)
	if err != nil {
		return nil, err
	}
	if path != nil {
		return nil, notMaximum(ix, path)
	}

	d := &Decomposition{
		Even:      ix.names(s.f.labeled(even)),
		Odd:       ix.names(s.f.labeled(odd)),
		Unreached: ix.names(s.f.labeled(unvisited)),
	}

	// components of G - A
	comps := newDisjointSet(ix.n())
	for u, nbrs := range ix.adj {
		if s.f.label[u] == odd {
			continue
		}
		for _, v := range nbrs {
			if s.f.label[v] != odd {
				comps.union(u, v)
			}
		}
	}
	size := make(map[int]int)
	for v := 0; v < ix.n(); v++ {
		if s.f.label[v] != odd {
			size[comps.find(v)]++
		}
	}
	for _, n := range size {
		if n%2 == 1 {
			d.OddComponents++
		}
	}
	d.TutteBerge = (ix.n() - d.OddComponents + len(d.Odd)) / 2

	return d, nil
}

// prepareCheck validates inputs shared by Verify and Decompose and converts
// m into a mate array over g's index.
func prepareCheck(g GraphView, m *Matching, opts []Option) (*index, []int, Options, error) {
	if err := checkGraph(g); err != nil {
		return nil, nil, Options{}, err
	}
	if m == nil {
		return nil, nil, Options{}, ErrMatchingNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, nil, Options{}, err
	}
	ix, err := buildIndex(g)
	if err != nil {
		return nil, nil, Options{}, err
	}
	mate, err := ix.mateOf(m.Pairs())
	if err != nil {
		return nil, nil, Options{}, err
	}

	return ix, mate, o, nil
}

func notMaximum(ix *index, path []int) error {
	return fmt.Errorf("%w: augmenting path %s", ErrNotMaximum, strings.Join(ix.names(path), " - "))
}
