package repair_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/repair"
	"github.com/katalvlaran/netrepair/topology"
)

// linkSpec is a compact link description for fixtures.
type linkSpec struct {
	from, to   int
	capacity   int64
	repairTime int
}

// buildNetwork creates a network over nodes at x = 0..nodes-1, every node
// with the given repair time, and the listed links.
func buildNetwork(t require.TestingT, nodes, nodeTime int, specs []linkSpec) *network.Network {
	ns := make([]topology.Node, nodes)
	for i := range ns {
		n, err := topology.NewNode(topology.Point{X: float64(i)}, nodeTime)
		require.NoError(t, err)
		ns[i] = n
	}
	ls := make([]topology.Link, len(specs))
	for k, sp := range specs {
		l, err := topology.NewLink(sp.from, sp.to, sp.capacity, sp.repairTime,
			ns[sp.from].Position().Midpoint(ns[sp.to].Position()))
		require.NoError(t, err)
		ls[k] = l
	}
	topo, err := topology.New("fixture", ns, ls)
	require.NoError(t, err)
	net, err := network.New(topo)
	require.NoError(t, err)

	return net
}

// runToRecovery drives p until the network is healthy, returning the
// number of ticks used. It fails after limit ticks.
func runToRecovery(t require.TestingT, n *network.Network, p repair.Policy, limit int) int {
	ticks := 0
	for n.BrokenNodes()+n.BrokenLinks() > 0 {
		require.Less(t, ticks, limit, "campaign did not terminate")
		_, err := p.Pick(n)
		require.NoError(t, err)
		n.Tick()
		ticks++
	}
	require.True(t, n.Idle())

	return ticks
}

type GreedySuite struct {
	suite.Suite
}

// TestPicksBestRatio: ratio 4.0 beats 2.0 regardless of position.
func (s *GreedySuite) TestPicksBestRatio() {
	n := buildNetwork(s.T(), 4, 5, []linkSpec{
		{0, 1, 4, 2}, // 2.0
		{1, 2, 8, 2}, // 4.0
		{2, 3, 6, 3}, // 2.0
	})
	s.Require().NoError(n.InjectTargetedFailure(nil, []int{0, 1, 2}))

	d, err := repair.NewGreedy().Pick(n)
	s.Require().NoError(err)
	s.Require().Equal(network.RepairSmart, d.Kind)
	s.Require().Equal(1, d.Target)
	s.Require().Equal(2, d.Duration)
	s.Require().InDelta(4.0, d.Ratio, 1e-9)
	s.Require().Equal(network.Repair{Kind: network.RepairSmart, Target: 1, Remaining: 2}, n.Pending())
}

// TestTieKeepsFirst: equal ratios resolve to the lowest link index.
func (s *GreedySuite) TestTieKeepsFirst() {
	n := buildNetwork(s.T(), 3, 5, []linkSpec{{0, 1, 4, 2}, {1, 2, 4, 2}})
	s.Require().NoError(n.InjectTargetedFailure(nil, []int{1, 0}))

	d, err := repair.NewGreedy().Pick(n)
	s.Require().NoError(err)
	s.Require().Equal(0, d.Target)
}

// TestJointTimeIncludesBrokenEndpoints: a broken endpoint dilutes the ratio.
func (s *GreedySuite) TestJointTimeIncludesBrokenEndpoints() {
	n := buildNetwork(s.T(), 4, 6, []linkSpec{
		{0, 1, 9, 3}, // node 1 broken: 9 / 6 = 1.5
		{2, 3, 4, 2}, // 4 / 2 = 2.0
	})
	s.Require().NoError(n.InjectTargetedFailure([]int{1}, []int{1}))

	d, err := repair.NewGreedy().Pick(n)
	s.Require().NoError(err)
	s.Require().Equal(1, d.Target)
	s.Require().InDelta(2.0, d.Ratio, 1e-9)
}

// TestIsolatedNodeFallback: a broken node without links still gets repaired.
func (s *GreedySuite) TestIsolatedNodeFallback() {
	n := buildNetwork(s.T(), 3, 4, []linkSpec{{0, 1, 1, 1}})
	s.Require().NoError(n.InjectTargetedFailure([]int{2}, nil))

	d, err := repair.NewGreedy().Pick(n)
	s.Require().NoError(err)
	s.Require().Equal(network.RepairNode, d.Kind)
	s.Require().Equal(2, d.Target)
	s.Require().Equal(4, d.Duration)
}

// TestFullCampaign: smart repairs restore the 0→2 flow of a broken ring.
func (s *GreedySuite) TestFullCampaign() {
	n := buildNetwork(s.T(), 4, 3, []linkSpec{{0, 1, 3, 2}, {1, 2, 3, 2}, {2, 3, 3, 2}, {3, 0, 3, 2}})
	s.Require().NoError(n.InjectRandomFailure(100, topology.NewRand(5)))

	runToRecovery(s.T(), n, repair.NewGreedy(), 1000)
	f, err := n.MaxFlow(0, 2, nil)
	s.Require().NoError(err)
	s.Require().Equal(int64(6), f)
}

func TestGreedySuite(t *testing.T) {
	suite.Run(t, new(GreedySuite))
}

// TestPickIsNoopWhileInFlight: an in-flight repair is left alone.
func TestPickIsNoopWhileInFlight(t *testing.T) {
	n := buildNetwork(t, 3, 5, []linkSpec{{0, 1, 4, 3}, {1, 2, 4, 3}})
	require.NoError(t, n.InjectTargetedFailure(nil, []int{0, 1}))

	for _, p := range []repair.Policy{repair.NewGreedy(), repair.NewUniform(topology.NewRand(1))} {
		c := n.Clone()
		first, err := p.Pick(c)
		require.NoError(t, err)
		require.True(t, first.Scheduled())
		pending := c.Pending()

		c.Tick()
		second, err := p.Pick(c)
		require.NoError(t, err)
		require.False(t, second.Scheduled())
		require.Equal(t, network.RepairNone, second.Completed.Kind)
		require.Equal(t, pending.Remaining-1, c.Pending().Remaining)
	}
}

// TestPickReportsCompletion: the call after a repair falls due finalizes it.
func TestPickReportsCompletion(t *testing.T) {
	n := buildNetwork(t, 2, 5, []linkSpec{{0, 1, 4, 1}})
	require.NoError(t, n.InjectTargetedFailure(nil, []int{0}))
	p := repair.NewGreedy()

	d, err := p.Pick(n)
	require.NoError(t, err)
	require.Equal(t, 1, d.Duration)
	n.Tick()

	d, err = p.Pick(n)
	require.NoError(t, err)
	require.Equal(t, network.Repair{Kind: network.RepairSmart, Target: 0}, d.Completed)
	require.False(t, d.Scheduled())
	require.Zero(t, n.BrokenLinks())
}

// TestHealthyNetworkNoop: nothing broken, nothing scheduled.
func TestHealthyNetworkNoop(t *testing.T) {
	n := buildNetwork(t, 2, 5, []linkSpec{{0, 1, 4, 1}})
	for _, p := range []repair.Policy{repair.NewGreedy(), repair.NewUniform(nil)} {
		d, err := p.Pick(n)
		require.NoError(t, err)
		require.False(t, d.Scheduled())
		require.True(t, n.Idle())
	}
}

func TestByName(t *testing.T) {
	p, err := repair.ByName("random", nil)
	require.NoError(t, err)
	require.Equal(t, repair.NameRandom, p.Name())

	p, err = repair.ByName(" Greedy ", nil)
	require.NoError(t, err)
	require.Equal(t, repair.NameGreedy, p.Name())

	_, err = repair.ByName("optimal", nil)
	require.ErrorIs(t, err, repair.ErrUnknownPolicy)
}
