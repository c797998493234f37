// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_complete.go: Complete(n): K_n with nodes on a circle.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Edges over unordered pairs {i,j}, i<j, i asc then j asc.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p.addNode(onCircle(i, n, cfg.scale))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p.addEdge(i, j)
			}
		}

		return nil
	}
}
