// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/matrix"
	"github.com/katalvlaran/netrepair/topology"
)

// pair is an unordered node pair used to group parallel links.
type pair struct{ a, b int }

func pairOf(u, v int) pair {
	if u > v {
		u, v = v, u
	}
	return pair{a: u, b: v}
}

// Network is the mutable state of one simulated network: health flags,
// derived connectivity flags, aggregate broken counters, the capacity
// matrix and the single repair slot.
//
// Invariants (maintained by every exported method):
//   - capacity(i,j) == capacity(j,i) == sum of capacities of connected links
//     between i and j (one link in a simple topology), 0 otherwise;
//   - linkConnected[k] == !linkBroken[k] && both endpoints healthy, after
//     RecomputeConnectivity (called internally after every mutation batch);
//   - brokenNodes/brokenLinks equal the number of true flags;
//   - at most one repair occupies the slot.
//
// A Network is not safe for concurrent use. Use Clone to give each
// goroutine its own copy.
type Network struct {
	topo *topology.Topology // immutable; shared between clones

	// pairLinks[p] lists the links joining the pair p; immutable, shared.
	pairLinks map[pair][]int

	nodeBroken    []bool
	linkBroken    []bool
	linkConnected []bool
	brokenNodes   int
	brokenLinks   int

	capacity *matrix.Dense
	repair   Repair
	logger   *slog.Logger
}

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger attaches a structured logger (debug records on repair completion
// and failure injection). Panics on nil to surface programmer error early.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}
	return func(n *Network) {
		n.logger = l
	}
}

// New creates a fully healthy network over topo: every link connected and
// the capacity matrix holding every link capacity.
//
// Complexity: O(V² + E) (matrix allocation dominates).
func New(topo *topology.Topology, opts ...Option) (*Network, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	capacity, err := matrix.NewDense(topo.NodeCount())
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	n := &Network{
		topo:          topo,
		pairLinks:     make(map[pair][]int, topo.LinkCount()),
		nodeBroken:    make([]bool, topo.NodeCount()),
		linkBroken:    make([]bool, topo.LinkCount()),
		linkConnected: make([]bool, topo.LinkCount()),
		capacity:      capacity,
		repair:        Repair{Kind: RepairNone, Target: noTarget},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}

	for k, l := range topo.Links() {
		p := pairOf(l.From(), l.To())
		n.pairLinks[p] = append(n.pairLinks[p], k)
		n.linkConnected[k] = true
	}
	for p := range n.pairLinks {
		n.writePair(p)
	}

	return n, nil
}

// Clone returns a deep copy: separate health slices, a separately allocated
// capacity matrix and its own repair slot. The immutable topology is shared.
// Repairing the clone has no effect on the original and vice versa.
//
// Complexity: O(V² + E).
func (n *Network) Clone() *Network {
	return &Network{
		topo:          n.topo,
		pairLinks:     n.pairLinks,
		nodeBroken:    append([]bool(nil), n.nodeBroken...),
		linkBroken:    append([]bool(nil), n.linkBroken...),
		linkConnected: append([]bool(nil), n.linkConnected...),
		brokenNodes:   n.brokenNodes,
		brokenLinks:   n.brokenLinks,
		capacity:      n.capacity.Clone(),
		repair:        n.repair,
		logger:        n.logger,
	}
}

// RecomputeConnectivity recomputes every link's connectivity flag from the
// current health of the link and its endpoints. Whenever a flag changes, the
// matrix entries (i,j) and (j,i) of that link's pair are rewritten from the
// connected links of the pair. Idempotent.
//
// Complexity: O(E).
func (n *Network) RecomputeConnectivity() {
	for k := range n.linkConnected {
		l, _ := n.topo.Link(k)
		connected := !n.linkBroken[k] && !n.nodeBroken[l.From()] && !n.nodeBroken[l.To()]
		if connected == n.linkConnected[k] {
			continue
		}
		n.linkConnected[k] = connected
		n.writePair(pairOf(l.From(), l.To()))
	}
}

// writePair stores the summed capacity of the connected links of p into
// both mirrored matrix cells.
func (n *Network) writePair(p pair) {
	var c int64
	for _, k := range n.pairLinks[p] {
		if n.linkConnected[k] {
			l, _ := n.topo.Link(k)
			c += l.Capacity()
		}
	}
	// indices come from a validated topology; the error path is unreachable
	_ = n.capacity.SetSymmetric(p.a, p.b, c)
}

// TotalRepairTimeRemaining returns the sum of repair times over every broken
// node and link. Zero means the network is fully healthy.
//
// Complexity: O(V + E).
func (n *Network) TotalRepairTimeRemaining() int {
	total := 0
	for i, broken := range n.nodeBroken {
		if broken {
			node, _ := n.topo.Node(i)
			total += node.RepairTime()
		}
	}
	for k, broken := range n.linkBroken {
		if broken {
			l, _ := n.topo.Link(k)
			total += l.RepairTime()
		}
	}

	return total
}

// Topology returns the immutable shape this network was built from.
func (n *Network) Topology() *topology.Topology { return n.topo }

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodeBroken) }

// LinkCount returns the number of links.
func (n *Network) LinkCount() int { return len(n.linkBroken) }

// BrokenNodes returns the number of broken nodes.
func (n *Network) BrokenNodes() int { return n.brokenNodes }

// BrokenLinks returns the number of broken links.
func (n *Network) BrokenLinks() int { return n.brokenLinks }

// Centroid returns the mean node position used by geographic failures.
func (n *Network) Centroid() topology.Point { return n.topo.Centroid() }

// Pending returns a snapshot of the repair slot.
func (n *Network) Pending() Repair { return n.repair }

// Idle reports whether a new repair may be scheduled right now.
func (n *Network) Idle() bool {
	return n.repair.Remaining == 0 && n.repair.Kind == RepairNone
}

// Node returns a snapshot of node i's immutable record.
func (n *Network) Node(i int) (topology.Node, error) {
	node, err := n.topo.Node(i)
	if err != nil {
		return topology.Node{}, fmt.Errorf("Node(%d): %w: %w", i, ErrIndexOutOfRange, err)
	}

	return node, nil
}

// Link returns a snapshot of link i's immutable record.
func (n *Network) Link(i int) (topology.Link, error) {
	l, err := n.topo.Link(i)
	if err != nil {
		return topology.Link{}, fmt.Errorf("Link(%d): %w: %w", i, ErrIndexOutOfRange, err)
	}

	return l, nil
}

// NodeBroken reports whether node i is broken.
func (n *Network) NodeBroken(i int) (bool, error) {
	if i < 0 || i >= len(n.nodeBroken) {
		return false, fmt.Errorf("NodeBroken(%d): %w", i, ErrIndexOutOfRange)
	}

	return n.nodeBroken[i], nil
}

// LinkBroken reports whether link i itself is broken.
func (n *Network) LinkBroken(i int) (bool, error) {
	if i < 0 || i >= len(n.linkBroken) {
		return false, fmt.Errorf("LinkBroken(%d): %w", i, ErrIndexOutOfRange)
	}

	return n.linkBroken[i], nil
}

// LinkConnected reports whether link i and both its endpoints are healthy.
func (n *Network) LinkConnected(i int) (bool, error) {
	if i < 0 || i >= len(n.linkConnected) {
		return false, fmt.Errorf("LinkConnected(%d): %w", i, ErrIndexOutOfRange)
	}

	return n.linkConnected[i], nil
}

// BrokenNodeIndices returns the indices of broken nodes in ascending order.
func (n *Network) BrokenNodeIndices() []int {
	out := make([]int, 0, n.brokenNodes)
	for i, broken := range n.nodeBroken {
		if broken {
			out = append(out, i)
		}
	}

	return out
}

// BrokenLinkIndices returns the indices of broken links in ascending order.
func (n *Network) BrokenLinkIndices() []int {
	out := make([]int, 0, n.brokenLinks)
	for k, broken := range n.linkBroken {
		if broken {
			out = append(out, k)
		}
	}

	return out
}

// DisconnectedLinkIndices returns the indices of links that are not
// connected (link or an endpoint broken), ascending.
func (n *Network) DisconnectedLinkIndices() []int {
	var out []int
	for k, connected := range n.linkConnected {
		if !connected {
			out = append(out, k)
		}
	}

	return out
}

// Capacity returns a copy of the current capacity matrix. Each caller gets
// its own matrix, so samples may be fed to the flow engine concurrently.
func (n *Network) Capacity() *matrix.Dense { return n.capacity.Clone() }

// MaxFlow measures the current achievable flow between source and sink.
// The flow engine works on its own residual copy; the network is not mutated.
func (n *Network) MaxFlow(source, sink int, opts *flow.Options) (int64, error) {
	return flow.MaxFlow(n.capacity, source, sink, opts)
}
