// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_cycle.go: Cycle(n): n nodes on a circle of radius cfg.scale.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Node i sits at angle 2πi/n; edges i→(i+1)%n for i = 0..n-1.
//
// Complexity: O(n).

package builder

import "fmt"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ring(p, n, cfg.scale)

		return nil
	}
}
