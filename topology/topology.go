// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"math/rand"
)

// Topology is the immutable shape of a network: nodes, links and the
// centroid of all node positions. It is safe to share between goroutines
// and between network states.
type Topology struct {
	name     string
	nodes    []Node
	links    []Link
	centroid Point
}

// Build turns an ingested Layout into a Topology, drawing every random
// attribute from rng in a fixed order:
//  1. for each node in order: repair time ∈ [1, MaxRepairTime];
//  2. for each link in order: capacity ∈ [1, MaxLinkCapacity], then
//     repair time ∈ [1, MaxRepairTime].
//
// A nil rng falls back to NewRand(0).
//
// Complexity: O(V + E).
func Build(layout Layout, params Params, rng *rand.Rand) (*Topology, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	nodes := make([]Node, len(layout.Nodes))
	for i, p := range layout.Nodes {
		nodes[i] = Node{pos: p, repairTime: rng.Intn(params.MaxRepairTime) + 1}
	}

	links := make([]Link, len(layout.Edges))
	for i, e := range layout.Edges {
		capacity := rng.Int63n(int64(params.MaxLinkCapacity)) + 1
		repairTime := rng.Intn(params.MaxRepairTime) + 1
		links[i] = Link{
			from:       e.From,
			to:         e.To,
			capacity:   capacity,
			repairTime: repairTime,
			mid:        layout.Nodes[e.From].Midpoint(layout.Nodes[e.To]),
		}
	}

	return &Topology{
		name:     layout.Name,
		nodes:    nodes,
		links:    links,
		centroid: centroidOf(nodes),
	}, nil
}

// New assembles a Topology from explicit records (no randomness). It applies
// the same structural checks as Layout.Validate.
//
// Complexity: O(V + E).
func New(name string, nodes []Node, links []Link) (*Topology, error) {
	layout := Layout{Name: name, Nodes: make([]Point, len(nodes)), Edges: make([]Edge, len(links))}
	for i, n := range nodes {
		if n.repairTime <= 0 {
			return nil, fmt.Errorf("New: node %d: %w", i, ErrInvalidRepairTime)
		}
		layout.Nodes[i] = n.pos
	}
	for i, l := range links {
		if l.capacity <= 0 {
			return nil, fmt.Errorf("New: link %d: %w", i, ErrInvalidCapacity)
		}
		if l.repairTime <= 0 {
			return nil, fmt.Errorf("New: link %d: %w", i, ErrInvalidRepairTime)
		}
		layout.Edges[i] = Edge{From: l.from, To: l.to}
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Topology{
		name:     name,
		nodes:    append([]Node(nil), nodes...),
		links:    append([]Link(nil), links...),
		centroid: centroidOf(nodes),
	}, nil
}

// centroidOf returns the arithmetic mean of all node positions.
func centroidOf(nodes []Node) Point {
	var c Point
	if len(nodes) == 0 {
		return c
	}
	for _, n := range nodes {
		c.X += n.pos.X
		c.Y += n.pos.Y
	}
	c.X /= float64(len(nodes))
	c.Y /= float64(len(nodes))

	return c
}

// Name returns the layout name (may be empty).
func (t *Topology) Name() string { return t.name }

// NodeCount returns the number of nodes.
func (t *Topology) NodeCount() int { return len(t.nodes) }

// LinkCount returns the number of links.
func (t *Topology) LinkCount() int { return len(t.links) }

// Centroid returns the mean of all node positions.
func (t *Topology) Centroid() Point { return t.centroid }

// Node returns node i.
func (t *Topology) Node(i int) (Node, error) {
	if i < 0 || i >= len(t.nodes) {
		return Node{}, fmt.Errorf("Node(%d): %w", i, ErrIndexOutOfRange)
	}

	return t.nodes[i], nil
}

// Link returns link i.
func (t *Topology) Link(i int) (Link, error) {
	if i < 0 || i >= len(t.links) {
		return Link{}, fmt.Errorf("Link(%d): %w", i, ErrIndexOutOfRange)
	}

	return t.links[i], nil
}

// Nodes returns a copy of the node slice.
func (t *Topology) Nodes() []Node { return append([]Node(nil), t.nodes...) }

// Links returns a copy of the link slice.
func (t *Topology) Links() []Link { return append([]Link(nil), t.links...) }
