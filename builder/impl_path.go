// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_path.go: Path(n): n nodes on the X axis, cfg.scale apart.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Node i at (i·scale, 0); edges i→i+1 for i = 0..n-2.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

const methodPath = "Path"

// Path returns a Constructor that builds the chain P_n.
func Path(n int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p.addNode(topology.Point{X: float64(i) * cfg.scale})
		}
		for i := 0; i+1 < n; i++ {
			p.addEdge(i, i+1)
		}

		return nil
	}
}
