package network

import (
	"fmt"
	"math"
	"math/rand"
)

// InjectRandomFailure breaks every node and then every link independently
// with probability percent/100: for each component one draw r ∈ [1, 100] is
// taken and the component breaks iff r <= percent. A draw is consumed for
// components that are already broken as well, so the random stream does not
// depend on prior damage; already broken components are not counted twice.
// Connectivity is recomputed once at the end.
//
// percent must lie in [0, 100]; a nil rng is rejected.
//
// Complexity: O(V + E).
func (n *Network) InjectRandomFailure(percent int, rng *rand.Rand) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("InjectRandomFailure(%d): %w", percent, ErrInvalidPercent)
	}
	if rng == nil {
		return fmt.Errorf("InjectRandomFailure: %w", ErrNilRand)
	}

	for i := range n.nodeBroken {
		if rng.Intn(100)+1 <= percent {
			n.breakNode(i)
		}
	}
	for k := range n.linkBroken {
		if rng.Intn(100)+1 <= percent {
			n.breakLink(k)
		}
	}
	n.RecomputeConnectivity()

	n.logger.Debug("random failure injected",
		"percent", percent,
		"broken_nodes", n.brokenNodes,
		"broken_links", n.brokenLinks)

	return nil
}

// InjectGeographicFailure breaks every component close to the centroid.
// radius² is the largest squared distance from the centroid to any node.
// A node breaks iff its squared distance is strictly less than
// (percent/100)·radius²; a link breaks iff its midpoint satisfies the same
// test. Because the comparison is strict, the farthest node survives even at
// percent = 100. Connectivity is recomputed once at the end.
//
// percent must be finite and non-negative.
//
// Complexity: O(V + E).
func (n *Network) InjectGeographicFailure(percent float64) error {
	if percent < 0 || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return fmt.Errorf("InjectGeographicFailure(%g): %w", percent, ErrInvalidPercent)
	}

	c := n.topo.Centroid()
	radiusSq := 0.0
	for _, node := range n.topo.Nodes() {
		if d := c.DistSq(node.Position()); d > radiusSq {
			radiusSq = d
		}
	}
	threshold := percent / 100 * radiusSq

	for i, node := range n.topo.Nodes() {
		if c.DistSq(node.Position()) < threshold {
			n.breakNode(i)
		}
	}
	for k, l := range n.topo.Links() {
		if c.DistSq(l.Midpoint()) < threshold {
			n.breakLink(k)
		}
	}
	n.RecomputeConnectivity()

	n.logger.Debug("geographic failure injected",
		"percent", percent,
		"radius_sq", radiusSq,
		"broken_nodes", n.brokenNodes,
		"broken_links", n.brokenLinks)

	return nil
}

// breakNode sets node i's broken flag if clear, keeping the counter in step.
func (n *Network) breakNode(i int) {
	if !n.nodeBroken[i] {
		n.nodeBroken[i] = true
		n.brokenNodes++
	}
}

// breakLink sets link k's broken flag if clear, keeping the counter in step.
func (n *Network) breakLink(k int) {
	if !n.linkBroken[k] {
		n.linkBroken[k] = true
		n.brokenLinks++
	}
}

// InjectTargetedFailure breaks exactly the listed nodes and links, then
// recomputes connectivity once. Indices are validated before any flag is
// touched, so an invalid index leaves the network unchanged. Listing an
// already broken component is not an error.
//
// Complexity: O(E + len(nodes) + len(links)).
func (n *Network) InjectTargetedFailure(nodes, links []int) error {
	for _, i := range nodes {
		if i < 0 || i >= len(n.nodeBroken) {
			return fmt.Errorf("InjectTargetedFailure: node %d: %w", i, ErrIndexOutOfRange)
		}
	}
	for _, k := range links {
		if k < 0 || k >= len(n.linkBroken) {
			return fmt.Errorf("InjectTargetedFailure: link %d: %w", k, ErrIndexOutOfRange)
		}
	}

	for _, i := range nodes {
		n.breakNode(i)
	}
	for _, k := range links {
		n.breakLink(k)
	}
	n.RecomputeConnectivity()

	return nil
}
