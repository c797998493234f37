// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_star.go: Star(n): a hub at the centre and n-1 leaves on a circle.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • Node 0 is the hub at (0,0); leaves 1..n-1 on radius cfg.scale.
//   • Edges 0→i for i = 1..n-1.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

const methodStar = "Star"

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := p.addNode(topology.Point{})
		for i := 0; i < n-1; i++ {
			leaf := p.addNode(onCircle(i, n-1, cfg.scale))
			p.addEdge(hub, leaf)
		}

		return nil
	}
}
