// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// impl_grid.go: Grid(rows, cols): orthogonal lattice with 4-neighbourhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node r·cols+c at (c·scale, r·scale), row-major.
//   • For each (r,c) emit Right then Bottom neighbour when present.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(p *part, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p.addNode(topology.Point{X: float64(c) * cfg.scale, Y: float64(r) * cfg.scale})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					p.addEdge(u, u+1)
				}
				if r+1 < rows {
					p.addEdge(u, u+cols)
				}
			}
		}

		return nil
	}
}
