// File: augment.go
// Role: Flip an augmenting path into the matching after checking it.

package matching

import (
	"fmt"

	"go.uber.org/zap"
)

// augment flips every edge of path, growing the matching by one.
//
// The path must be simple, of odd edge length, start and end at free
// vertices, use only graph edges and carry matched edges exactly at odd
// positions. Anything else is an ErrPreconditionViolation and mate is left
// untouched.
//
// Complexity: O(len(path)).
func (s *searcher) augment(path []int) error {
	return flip(s.ix, s.mate, path, s.opts, s.stats)
}

// flip is the strategy-independent augmentation step.
func flip(ix *index, mate, path []int, opts *Options, stats *Stats) error {
	if err := checkPath(ix, mate, path); err != nil {
		return err
	}
	for i := 0; i < len(path); i += 2 {
		u, v := path[i], path[i+1]
		mate[u], mate[v] = v, u
	}
	stats.Augmentations++

	names := ix.names(path)
	opts.Logger.Debug("augmented",
		zap.Int("length", len(path)-1),
		zap.String("from", names[0]),
		zap.String("to", names[len(names)-1]),
	)
	opts.OnAugment(names)

	return nil
}

func checkPath(ix *index, mate, path []int) error {
	if len(path) < 2 || len(path)%2 != 0 {
		return fmt.Errorf("%w: augmenting path has %d vertices", ErrPreconditionViolation, len(path))
	}
	first, last := path[0], path[len(path)-1]
	if mate[first] != unMatched || mate[last] != unMatched {
		return fmt.Errorf("%w: path %q…%q does not join two free vertices",
			ErrPreconditionViolation, ix.ids[first], ix.ids[last])
	}

	seen := make(map[int]struct{}, len(path))
	for i, v := range path {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %q repeats on augmenting path", ErrPreconditionViolation, ix.ids[v])
		}
		seen[v] = struct{}{}
		if i == 0 {
			continue
		}
		u := path[i-1]
		if !ix.hasEdge(u, v) {
			return fmt.Errorf("%w: %q–%q on augmenting path is not an edge", ErrPreconditionViolation, ix.ids[u], ix.ids[v])
		}
		// edge i-1→i is matched exactly when i is even
		if matched := mate[u] == v; matched != (i%2 == 0) {
			return fmt.Errorf("%w: %q–%q breaks alternation", ErrPreconditionViolation, ix.ids[u], ix.ids[v])
		}
	}

	return nil
}
