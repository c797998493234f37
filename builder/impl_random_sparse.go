// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi edges over nodes
// scattered uniformly in the square [0, scale]².
//
// Contract:
//   • n ≥ MinRandomNodes (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource); positions are drawn
//     even for p ∈ {0,1}.
//   • Draw order: X then Y for nodes 0..n-1, then one Bernoulli trial per
//     unordered pair {i,j}, i asc then j asc (j > i).
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that scatters n nodes and joins every
// pair independently with probability prob.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if prob < MinProbability || prob > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, prob, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			x := rng.Float64() * cfg.scale
			y := rng.Float64() * cfg.scale
			p.addNode(topology.Point{X: x, Y: y})
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < prob {
					p.addEdge(i, j)
				}
			}
		}

		return nil
	}
}
