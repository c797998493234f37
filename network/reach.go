// SPDX-License-Identifier: MIT

package network

import "fmt"

// Reach is the breadth-first result of Reachable: visit order and hop
// distance from the start node over connected links only.
type Reach struct {
	Order []int // nodes in visit order, start first
	Hops  []int // Hops[i] == -1 when i was not reached
}

// Reached reports whether node i was visited.
func (r Reach) Reached(i int) bool {
	return i >= 0 && i < len(r.Hops) && r.Hops[i] >= 0
}

// Reachable walks the connected links breadth-first from start. A broken
// start node reaches nothing, not even itself.
//
// Complexity: O(V + E).
func (n *Network) Reachable(start int) (Reach, error) {
	if start < 0 || start >= len(n.nodeBroken) {
		return Reach{}, fmt.Errorf("Reachable(%d): %w", start, ErrIndexOutOfRange)
	}

	return n.walk(start, n.adjacency()), nil
}

// Components returns the number of connected groups of healthy nodes.
// Broken nodes belong to no component.
//
// Complexity: O(V + E).
func (n *Network) Components() int {
	adj := n.adjacency()
	seen := make([]bool, len(n.nodeBroken))
	count := 0
	for i, broken := range n.nodeBroken {
		if broken || seen[i] {
			continue
		}
		count++
		for _, v := range n.walk(i, adj).Order {
			seen[v] = true
		}
	}

	return count
}

// adjacency lists the neighbours of every node over connected links, in
// link index order. Parallel links yield repeated entries.
func (n *Network) adjacency() [][]int {
	adj := make([][]int, len(n.nodeBroken))
	for k, connected := range n.linkConnected {
		if !connected {
			continue
		}
		l, _ := n.topo.Link(k)
		adj[l.From()] = append(adj[l.From()], l.To())
		adj[l.To()] = append(adj[l.To()], l.From())
	}

	return adj
}

func (n *Network) walk(start int, adj [][]int) Reach {
	r := Reach{Hops: make([]int, len(n.nodeBroken))}
	for i := range r.Hops {
		r.Hops[i] = -1
	}
	if n.nodeBroken[start] {
		return r
	}

	queue := []int{start}
	r.Hops[start] = 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		r.Order = append(r.Order, u)
		for _, v := range adj[u] {
			if r.Hops[v] < 0 {
				r.Hops[v] = r.Hops[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return r
}
