// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// api.go - public entry point for synthetic network layouts.
//
// Design contract:
//   - One orchestrator: BuildLayout(opts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor appends its own nodes and edges; indices it emits are
//     local and get shifted by the number of nodes already present.
//   - Components built by successive constructors are placed side by side
//     along the X axis, cfg.spacing apart, so geographic failures stay meaningful.
//   - Determinism: same options, seed and constructor order ⇒ identical layout.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrepair/topology"
)

// part is what one constructor produces: local positions and local edges.
type part struct {
	nodes []topology.Point
	edges []topology.Edge
}

// addNode appends a node and returns its local index.
func (p *part) addNode(pt topology.Point) int {
	p.nodes = append(p.nodes, pt)
	return len(p.nodes) - 1
}

// addEdge appends an edge between two local indices.
func (p *part) addEdge(u, v int) {
	p.edges = append(p.edges, topology.Edge{From: u, To: v})
}

// Constructor produces one component of a layout from the resolved config.
// Constructors MUST validate parameters early, emit nodes and edges in a
// stable documented order and draw randomness from cfg.rng only.
type Constructor func(p *part, cfg builderConfig) error

// BuildLayout resolves opts, applies every constructor in order and returns
// the validated layout. Any constructor error is wrapped as
// "BuildLayout: %w"; a layout that fails topology.Layout.Validate (for
// instance a RandomSparse draw without edges) is rejected the same way.
//
// Complexity: Σ cost of the constructors plus O(V+E) for placement.
func BuildLayout(opts []BuilderOption, cons ...Constructor) (topology.Layout, error) {
	cfg := newBuilderConfig(opts...)
	layout := topology.Layout{Name: cfg.name}

	nextX := cfg.origin.X
	for i, fn := range cons {
		if fn == nil {
			return topology.Layout{}, fmt.Errorf("BuildLayout: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var p part
		if err := fn(&p, cfg); err != nil {
			return topology.Layout{}, fmt.Errorf("BuildLayout: %w", err)
		}
		if len(p.nodes) == 0 {
			continue
		}

		// Shift the component so its left edge sits at nextX.
		minX, maxX := bounds(p.nodes)
		dx := nextX - minX
		base := len(layout.Nodes)
		for _, pt := range p.nodes {
			layout.Nodes = append(layout.Nodes, topology.Point{X: pt.X + dx, Y: pt.Y + cfg.origin.Y})
		}
		for _, e := range p.edges {
			layout.Edges = append(layout.Edges, topology.Edge{From: e.From + base, To: e.To + base})
		}
		nextX = maxX + dx + cfg.spacing
	}

	if err := layout.Validate(); err != nil {
		return topology.Layout{}, fmt.Errorf("BuildLayout: %w", err)
	}

	return layout, nil
}

// bounds returns the minimum and maximum X over pts (pts non-empty).
func bounds(pts []topology.Point) (float64, float64) {
	lo, hi := pts[0].X, pts[0].X
	for _, pt := range pts[1:] {
		if pt.X < lo {
			lo = pt.X
		}
		if pt.X > hi {
			hi = pt.X
		}
	}

	return lo, hi
}
