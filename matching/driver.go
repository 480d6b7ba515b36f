// File: driver.go
// Role: Driver loop shared by every strategy: validate, seed, then repeat
// passes over the free vertices until a pass finds no augmenting path.
// Determinism:
//   - Free vertices are scanned in Vertices() order; a strategy that is
//     deterministic per root yields the same Matching on every run.

package matching

import (
	"fmt"

	"go.uber.org/zap"
)

// engine is one strategy's per-computation state.
type engine interface {
	// search looks for an augmenting path from the free vertex r.
	search(r int) ([]int, error)
	// augment flips path into the shared mate array.
	augment(path []int) error
}

type engineFactory func(ix *index, mate []int, opts *Options, stats *Stats) engine

// solve runs the driver loop for one strategy.
//
// Steps:
//  1. Reject nil views and bad options; snapshot and validate the graph.
//  2. Seed the matching according to Options.Initializer.
//  3. Pass over every free vertex with neighbors: check the matching state,
//     search, augment on success. A vertex matched earlier in the pass is
//     skipped.
//  4. Stop after the first pass without augmentation (Berge: no augmenting
//     path from any free vertex means the matching is maximum).
//
// Complexity: O(V) phases of O(E + V·B) for Edmonds, O(V·E) for Gabow.
func solve(g GraphView, opts []Option, name string, newEngine engineFactory) (*Matching, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	ix, err := buildIndex(g)
	if err != nil {
		return nil, err
	}

	var stats Stats
	mate := newMate(ix.n())
	if o.Initializer == InitGreedy {
		stats.Seeded = greedyInit(ix, mate)
	}
	eng := newEngine(ix, mate, &o, &stats)
	log := o.Logger.With(zap.String("algorithm", name))
	log.Debug("matching started",
		zap.Int("vertices", ix.n()),
		zap.Int("edges", len(ix.edges)),
		zap.Stringer("initializer", o.Initializer),
		zap.Int("seeded", stats.Seeded),
	)

	for improved := true; improved; {
		improved = false
		stats.Passes++
		for r := 0; r < ix.n(); r++ {
			if mate[r] != unMatched || len(ix.adj[r]) == 0 {
				continue
			}
			if err = o.Ctx.Err(); err != nil {
				return nil, err
			}
			if err = ix.checkMate(mate); err != nil {
				return nil, err
			}
			path, err := eng.search(r)
			if err != nil {
				return nil, err
			}
			if path == nil {
				continue
			}
			if err = eng.augment(path); err != nil {
				return nil, err
			}
			improved = true
		}
	}

	m := newMatching(ix, mate, stats, name)
	log.Debug("matching finished",
		zap.Int("size", m.Size()),
		zap.Int("passes", stats.Passes),
		zap.Int("phases", stats.Phases),
		zap.Int("blossoms", stats.Blossoms),
	)

	return m, nil
}

// Edmonds computes a maximum-cardinality matching of g with Edmonds'
// blossom-shrinking search.
//
// Each phase grows one alternating tree from a free root. Odd cycles are
// contracted into blossoms recorded in a per-phase arena; an augmenting path
// found in the contracted graph is lifted back through the recorded bridges
// before it is applied.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrInvalidGraph (as
// *InvalidGraphError values combined with multierr), ErrNeighbors,
// ErrPreconditionViolation, or the context's error.
//
// Complexity: O(V·(E + V·B)) time, O(V + E) memory.
func Edmonds(g GraphView, opts ...Option) (*Matching, error) {
	return solve(g, opts, "edmonds", func(ix *index, mate []int, o *Options, st *Stats) engine {
		return newSearcher(ix, mate, o, st)
	})
}

// search runs a single-root phase.
func (s *searcher) search(r int) ([]int, error) { return s.run([]int{r}) }

var _ Algorithm = Edmonds

// Names lists the registered strategies in a stable order.
func Names() []string { return []string{"edmonds", "gabow"} }

// ByName resolves a strategy by its name as used on the command line.
func ByName(name string) (Algorithm, error) {
	switch name {
	case "edmonds":
		return Edmonds, nil
	case "gabow":
		return Gabow, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, name, Names())
	}
}
