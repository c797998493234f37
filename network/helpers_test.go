package network_test

import (
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrepair/matrix"
	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/topology"
)

// Fixed repair times of the ring4 fixture.
var (
	ringNodeTimes = []int{4, 7, 2, 5}
	ringLinkTimes = []int{3, 1, 6, 2}
)

// ring4Topology is the square 0-1-2-3-0 with every link at capacity 3.
// Link k joins k and (k+1)%4.
func ring4Topology(t require.TestingT) *topology.Topology {
	pos := []topology.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	nodes := make([]topology.Node, len(pos))
	for i, p := range pos {
		n, err := topology.NewNode(p, ringNodeTimes[i])
		require.NoError(t, err)
		nodes[i] = n
	}
	links := make([]topology.Link, len(pos))
	for k := range pos {
		to := (k + 1) % len(pos)
		l, err := topology.NewLink(k, to, 3, ringLinkTimes[k], pos[k].Midpoint(pos[to]))
		require.NoError(t, err)
		links[k] = l
	}
	topo, err := topology.New("ring4", nodes, links)
	require.NoError(t, err)

	return topo
}

// ring4 returns a healthy network over ring4Topology.
func ring4(t require.TestingT) *network.Network {
	n, err := network.New(ring4Topology(t))
	require.NoError(t, err)

	return n
}

// expectedCapacity rebuilds the capacity matrix from the connectivity flags.
func expectedCapacity(t require.TestingT, n *network.Network) *matrix.Dense {
	m, err := matrix.NewDense(n.NodeCount())
	require.NoError(t, err)
	for k, l := range n.Topology().Links() {
		connected, err := n.LinkConnected(k)
		require.NoError(t, err)
		if !connected {
			continue
		}
		v, err := m.At(l.From(), l.To())
		require.NoError(t, err)
		require.NoError(t, m.SetSymmetric(l.From(), l.To(), v+l.Capacity()))
	}

	return m
}

// requireConsistent checks counters, connectivity flags and matrix agree.
func requireConsistent(t require.TestingT, n *network.Network) {
	require.Len(t, n.BrokenNodeIndices(), n.BrokenNodes())
	require.Len(t, n.BrokenLinkIndices(), n.BrokenLinks())

	for k, l := range n.Topology().Links() {
		lb, err := n.LinkBroken(k)
		require.NoError(t, err)
		fb, err := n.NodeBroken(l.From())
		require.NoError(t, err)
		tb, err := n.NodeBroken(l.To())
		require.NoError(t, err)
		connected, err := n.LinkConnected(k)
		require.NoError(t, err)
		require.Equal(t, !lb && !fb && !tb, connected, "link %d", k)
	}

	got := n.Capacity()
	require.True(t, got.IsSymmetric())
	require.True(t, expectedCapacity(t, n).Equal(got), "matrix drifted:\n%s", got)
}
