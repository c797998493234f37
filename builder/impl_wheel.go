// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_wheel.go: Wheel(n): a ring of n-1 nodes plus a hub joined to all.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Rim nodes 0..n-2 on radius cfg.scale, rim edges emitted first;
//     hub is node n-1 at (0,0) with spokes to 0..n-2 in order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		first := ring(p, n-1, cfg.scale)
		hub := p.addNode(topology.Point{})
		for i := 0; i < n-1; i++ {
			p.addEdge(hub, first+i)
		}

		return nil
	}
}
