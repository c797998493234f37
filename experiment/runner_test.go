package experiment_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrepair/builder"
	"github.com/katalvlaran/netrepair/config"
	"github.com/katalvlaran/netrepair/experiment"
	"github.com/katalvlaran/netrepair/metrics"
	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/repair"
	"github.com/katalvlaran/netrepair/topology"
)

// ring4 is the square 0-1-2-3-0, every link capacity 3, link k joining
// k and (k+1)%4 with repair time k+1 and every node repair time 2.
func ring4(t require.TestingT) *network.Network {
	pos := []topology.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	nodes := make([]topology.Node, 4)
	links := make([]topology.Link, 4)
	for i := range pos {
		n, err := topology.NewNode(pos[i], 2)
		require.NoError(t, err)
		nodes[i] = n
	}
	for k := range pos {
		to := (k + 1) % 4
		l, err := topology.NewLink(k, to, 3, k+1, pos[k].Midpoint(pos[to]))
		require.NoError(t, err)
		links[k] = l
	}
	topo, err := topology.New("ring4", nodes, links)
	require.NoError(t, err)
	net, err := network.New(topo)
	require.NoError(t, err)

	return net
}

// wheel builds a seeded wheel network with the given random damage.
func wheel(t require.TestingT, percent int) *network.Network {
	layout, err := builder.BuildLayout(nil, builder.Wheel(9))
	require.NoError(t, err)
	topo, err := topology.Build(layout, topology.Params{MaxRepairTime: 8, MaxLinkCapacity: 5}, topology.NewRand(11))
	require.NoError(t, err)
	net, err := network.New(topo)
	require.NoError(t, err)
	require.NoError(t, net.InjectRandomFailure(percent, topology.NewRand(12)))

	return net
}

type idlePolicy struct{}

func (idlePolicy) Name() string { return "idle" }
func (idlePolicy) Pick(*network.Network) (repair.Decision, error) {
	return repair.Decision{Kind: network.RepairNone, Target: -1}, nil
}

type RunnerSuite struct {
	suite.Suite
}

// TestSingleLinkRepair walks the sampling schedule tick by tick.
func (s *RunnerSuite) TestSingleLinkRepair() {
	net := ring4(s.T())
	s.Require().NoError(net.InjectTargetedFailure(nil, []int{1}))

	r := &experiment.Runner{Source: 0, Sink: 2, Intervals: 4}
	got, err := r.Run(context.Background(), net, repair.NewGreedy())
	s.Require().NoError(err)

	want := experiment.Series{
		Policy:  repair.NameGreedy,
		Initial: 6,
		// the smart repair takes two ticks and is finalized on tick 2
		Samples: []int64{3, 3, 6, 6, 6},
		Average: 4.8,
		Ticks:   3,
		Repairs: 1,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(experiment.Series{}, "RunID")); diff != "" {
		s.T().Fatalf("series mismatch (-want +got):\n%s", diff)
	}
	s.Require().NotEmpty(got.RunID)
	s.Require().Zero(net.BrokenLinks())
}

// TestHealthyNetwork: no damage, no ticks, every slot at the initial flow.
func (s *RunnerSuite) TestHealthyNetwork() {
	r := &experiment.Runner{Source: 0, Sink: 2, Intervals: 3}
	got, err := r.Run(context.Background(), ring4(s.T()), repair.NewUniform(nil))
	s.Require().NoError(err)
	s.Require().Equal([]int64{6, 6, 6, 6}, got.Samples)
	s.Require().Zero(got.Ticks)
	s.Require().Equal(6.0, got.Average)
}

// TestFullRecoveryEndsAtInitialFlow holds for both policies.
func (s *RunnerSuite) TestFullRecoveryEndsAtInitialFlow() {
	r := &experiment.Runner{Source: 0, Sink: 4, Intervals: 10}
	for _, p := range []repair.Policy{repair.NewGreedy(), repair.NewUniform(topology.NewRand(5))} {
		net := wheel(s.T(), 60)
		got, err := r.Run(context.Background(), net, p)
		s.Require().NoError(err)
		s.Require().Len(got.Samples, 11)
		s.Require().Equal(got.Initial, got.Samples[10])
		for _, v := range got.Samples {
			s.Require().LessOrEqual(v, got.Initial)
		}
		s.Require().Positive(got.Repairs)
		s.Require().True(net.Idle())
	}
}

// TestStalledPolicy: a policy that never schedules is reported.
func (s *RunnerSuite) TestStalledPolicy() {
	net := ring4(s.T())
	s.Require().NoError(net.InjectTargetedFailure([]int{0}, nil))
	r := &experiment.Runner{Source: 1, Sink: 3, Intervals: 2}
	_, err := r.Run(context.Background(), net, idlePolicy{})
	s.Require().ErrorIs(err, experiment.ErrStalled)
}

// TestCancelled: a cancelled context stops the campaign.
func (s *RunnerSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &experiment.Runner{Source: 0, Sink: 4, Intervals: 5}
	_, err := r.Run(ctx, wheel(s.T(), 50), repair.NewGreedy())
	s.Require().ErrorIs(err, context.Canceled)
}

// TestInvalidRunner covers argument checks.
func (s *RunnerSuite) TestInvalidRunner() {
	r := &experiment.Runner{Source: 0, Sink: 2}
	_, err := r.Run(context.Background(), ring4(s.T()), repair.NewGreedy())
	s.Require().ErrorIs(err, experiment.ErrInvalidRunner)

	r.Intervals = 1
	_, err = r.Run(context.Background(), nil, repair.NewGreedy())
	s.Require().ErrorIs(err, experiment.ErrInvalidRunner)
	_, err = r.Compare(context.Background(), nil)
	s.Require().ErrorIs(err, experiment.ErrInvalidRunner)

	r.Sink = 40
	_, err = r.Run(context.Background(), ring4(s.T()), repair.NewGreedy())
	s.Require().Error(err)
}

// TestCompare runs both policies on identical damage without touching base.
func (s *RunnerSuite) TestCompare() {
	base := wheel(s.T(), 70)
	nodes, links := base.BrokenNodes(), base.BrokenLinks()
	reg := metrics.NewRegistry()

	r := &experiment.Runner{Source: 0, Sink: 4, Intervals: 8, Recorder: reg}
	out, err := r.Compare(context.Background(), base,
		repair.NewUniform(topology.NewRand(1)), repair.NewGreedy())
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Require().Equal(repair.NameRandom, out[0].Policy)
	s.Require().Equal(repair.NameGreedy, out[1].Policy)
	s.Require().Equal(out[0].Initial, out[1].Initial)
	s.Require().NotEqual(out[0].RunID, out[1].RunID)

	s.Require().Equal(nodes, base.BrokenNodes())
	s.Require().Equal(links, base.BrokenLinks())

	s.Require().Equal(float64(out[1].Ticks), testutil.ToFloat64(reg.Ticks.WithLabelValues(repair.NameGreedy)))
	s.Require().Equal(out[1].Average, testutil.ToFloat64(reg.AverageMaxFlow.WithLabelValues(repair.NameGreedy)))
	s.Require().Zero(testutil.ToFloat64(reg.BrokenNodes.WithLabelValues(repair.NameRandom)))
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestPrepareFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Topology = config.Topology{Builder: "grid", Size: 4, Cols: 5, MaxRepairTime: 10, MaxLinkCapacity: 4}
	cfg.Failure = config.Failure{Mode: config.FailureRandom, Percent: 30}
	cfg.Experiment.Source, cfg.Experiment.Sink = 0, 19
	cfg.Experiment.Seed = 21
	require.NoError(t, cfg.Validate())

	a, err := experiment.Prepare(cfg, nil)
	require.NoError(t, err)
	b, err := experiment.Prepare(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, 20, a.NodeCount())
	require.Equal(t, a.BrokenNodeIndices(), b.BrokenNodeIndices())
	require.Equal(t, a.BrokenLinkIndices(), b.BrokenLinkIndices())
	require.True(t, a.Capacity().Equal(b.Capacity()))

	policies, err := experiment.Policies(cfg)
	require.NoError(t, err)
	require.Len(t, policies, 2)

	r, err := experiment.NewRunner(cfg, nil)
	require.NoError(t, err)
	out, err := r.Compare(context.Background(), a, policies...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteReport(&buf, out))
	require.Contains(t, buf.String(), "(random,greedy)\n")
	require.Contains(t, buf.String(), "greedy average flow:")

	cfg.Experiment.Algorithm = "simplex"
	_, err = experiment.NewRunner(cfg, nil)
	require.Error(t, err)
}

func TestPrepareGeographic(t *testing.T) {
	cfg := config.Default()
	cfg.Topology = config.Topology{Builder: "wheel", Size: 9, MaxRepairTime: 5, MaxLinkCapacity: 5}
	cfg.Failure = config.Failure{Mode: config.FailureGeographic, Percent: 50}

	net, err := experiment.Prepare(cfg, nil)
	require.NoError(t, err)
	// only the hub sits inside half the radius²
	require.Equal(t, []int{8}, net.BrokenNodeIndices())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, experiment.WriteReport(&buf, []experiment.Series{
		{Policy: "random", Samples: []int64{1, 2}, Average: 1.5, Ticks: 3, Repairs: 1},
		{Policy: "greedy", Samples: []int64{2, 2}, Average: 2, Ticks: 2, Repairs: 1},
	}))
	want := "Flow Analysis:\n(random,greedy)\n(1,2)\n(2,2)\n" +
		"random average flow: 1.5 (ticks 3, repairs 1)\n" +
		"greedy average flow: 2 (ticks 2, repairs 1)\n"
	require.Equal(t, want, buf.String())
}
