// SPDX-License-Identifier: MIT

package topology

import "fmt"

// Point is a 2-D position. For Topology Zoo inputs X is the latitude and Y
// the longitude; synthetic layouts use plain plane coordinates.
type Point struct {
	X, Y float64
}

// Midpoint returns the arithmetic mean of p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Edge is an unordered pair of 0-based node indices.
type Edge struct {
	From, To int
}

// Layout is what an ingestion step (GML parser, builder) produces: ordered
// node positions and ordered endpoint pairs.
type Layout struct {
	Name  string
	Nodes []Point
	Edges []Edge
}

// Validate checks the ingestion contract: at least two nodes, at least one
// edge, every endpoint in range and no self loops.
// Complexity: O(E).
func (l Layout) Validate() error {
	if len(l.Nodes) < 2 {
		return fmt.Errorf("Validate: %d nodes: %w", len(l.Nodes), ErrTooFewNodes)
	}
	if len(l.Edges) == 0 {
		return fmt.Errorf("Validate: %w", ErrNoLinks)
	}
	n := len(l.Nodes)
	for i, e := range l.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("Validate: edge %d (%d,%d) with %d nodes: %w", i, e.From, e.To, n, ErrEndpointOutOfRange)
		}
		if e.From == e.To {
			return fmt.Errorf("Validate: edge %d (%d,%d): %w", i, e.From, e.To, ErrSelfLoop)
		}
	}

	return nil
}

// Params bounds the random draws made while building a topology.
//   - MaxRepairTime: node and link repair durations are uniform in [1, MaxRepairTime].
//   - MaxLinkCapacity: link capacities are uniform in [1, MaxLinkCapacity].
type Params struct {
	MaxRepairTime   int
	MaxLinkCapacity int
}

// Defaults used by the reference Kdl experiments.
const (
	DefaultMaxRepairTime   = 100
	DefaultMaxLinkCapacity = 10
)

// DefaultParams returns {MaxRepairTime: 100, MaxLinkCapacity: 10}.
func DefaultParams() Params {
	return Params{MaxRepairTime: DefaultMaxRepairTime, MaxLinkCapacity: DefaultMaxLinkCapacity}
}

// Validate rejects non-positive bounds.
func (p Params) Validate() error {
	if p.MaxRepairTime <= 0 || p.MaxLinkCapacity <= 0 {
		return fmt.Errorf("Params{MaxRepairTime: %d, MaxLinkCapacity: %d}: %w",
			p.MaxRepairTime, p.MaxLinkCapacity, ErrInvalidParams)
	}

	return nil
}

// Node is an immutable network site: position and intrinsic repair time.
// Health is tracked by the network state that owns the node, not here.
type Node struct {
	pos        Point
	repairTime int
}

// NewNode constructs a Node with an explicit repair duration.
func NewNode(pos Point, repairTime int) (Node, error) {
	if repairTime <= 0 {
		return Node{}, fmt.Errorf("NewNode: repairTime=%d: %w", repairTime, ErrInvalidRepairTime)
	}

	return Node{pos: pos, repairTime: repairTime}, nil
}

// Position returns the node's coordinates.
func (n Node) Position() Point { return n.pos }

// RepairTime returns the number of ticks needed to repair the node.
func (n Node) RepairTime() int { return n.repairTime }

// Link is an immutable edge between two nodes with a capacity, an intrinsic
// repair time and a midpoint derived from its endpoints at creation.
type Link struct {
	from, to   int
	capacity   int64
	repairTime int
	mid        Point
}

// NewLink constructs a Link between from and to. The midpoint is supplied by
// the caller (Build derives it from the endpoint positions).
func NewLink(from, to int, capacity int64, repairTime int, mid Point) (Link, error) {
	if from == to {
		return Link{}, fmt.Errorf("NewLink(%d,%d): %w", from, to, ErrSelfLoop)
	}
	if capacity <= 0 {
		return Link{}, fmt.Errorf("NewLink(%d,%d): capacity=%d: %w", from, to, capacity, ErrInvalidCapacity)
	}
	if repairTime <= 0 {
		return Link{}, fmt.Errorf("NewLink(%d,%d): repairTime=%d: %w", from, to, repairTime, ErrInvalidRepairTime)
	}

	return Link{from: from, to: to, capacity: capacity, repairTime: repairTime, mid: mid}, nil
}

// From returns the first endpoint index.
func (l Link) From() int { return l.from }

// To returns the second endpoint index.
func (l Link) To() int { return l.to }

// Capacity returns the link capacity.
func (l Link) Capacity() int64 { return l.capacity }

// RepairTime returns the number of ticks needed to repair the link itself.
func (l Link) RepairTime() int { return l.repairTime }

// Midpoint returns the mean of the endpoint positions.
func (l Link) Midpoint() Point { return l.mid }
