// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_random.go - RandomSparse(n, p) and RandomGNM(n, m).
//
// Models:
//   - RandomSparse: G(n,p), each unordered pair {i,j} included independently
//     with probability p; trials in order i asc, j asc.
//   - RandomGNM: G(n,m), exactly m distinct unordered pairs drawn uniformly.
//     Edges are emitted sorted by (i,j) so edge IDs follow vertex order.
//
// Contract:
//   - Undirected graphs only (else ErrUnsupportedGraphMode).
//   - cfg.rng must be set (else ErrNeedRandSource), except RandomSparse with
//     p ∈ {0,1}, which needs no draws.
//   - All n vertices are added even when isolated.
//
// Determinism:
//   - Identical seed and options ⇒ identical graph.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomGNM    = "RandomGNM"
	minRandomVertices  = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodRandomSparse, n, minRandomVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := requireUndirected(g, methodRandomSparse); err != nil {
			return err
		}
		if err := addVertices(g, methodRandomSparse, n, cfg.idFn); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomGNM returns a Constructor that samples G(n,m): n vertices and m
// distinct edges chosen uniformly among the n(n-1)/2 pairs.
//
// Sparse budgets use rejection sampling; budgets above half of all pairs
// shuffle the full pair list instead.
//
// Complexity: O(n + m) expected when m ≤ n(n-1)/4, O(n²) otherwise.
func RandomGNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodRandomGNM, n, minRandomVertices); err != nil {
			return err
		}
		total := n * (n - 1) / 2
		if m < 0 || m > total {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomGNM, m, total, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGNM, ErrNeedRandSource)
		}
		if err := requireUndirected(g, methodRandomGNM); err != nil {
			return err
		}
		if err := addVertices(g, methodRandomGNM, n, cfg.idFn); err != nil {
			return err
		}

		var pairs [][2]int
		if 2*m <= total {
			seen := make(map[[2]int]struct{}, m)
			for len(pairs) < m {
				i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
				if i == j {
					continue
				}
				if i > j {
					i, j = j, i
				}
				k := [2]int{i, j}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				pairs = append(pairs, k)
			}
		} else {
			all := make([][2]int, 0, total)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					all = append(all, [2]int{i, j})
				}
			}
			cfg.rng.Shuffle(len(all), func(a, b int) { all[a], all[b] = all[b], all[a] })
			pairs = all[:m]
		}

		sort.Slice(pairs, func(a, b int) bool {
			if pairs[a][0] != pairs[b][0] {
				return pairs[a][0] < pairs[b][0]
			}

			return pairs[a][1] < pairs[b][1]
		})
		for _, pr := range pairs {
			if err := addEdge(g, methodRandomGNM, cfg.idFn(pr[0]), cfg.idFn(pr[1])); err != nil {
				return err
			}
		}

		return nil
	}
}
