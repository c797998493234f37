package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/matrix"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
}

// mustMatrix builds a Dense from literal rows or fails the test.
func mustMatrix(t require.TestingT, rows [][]int64) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// ring4 is a 4-node ring 0-1-2-3-0 with every link at capacity 3.
func ring4(t require.TestingT) *matrix.Dense {
	return mustMatrix(t, [][]int64{
		{0, 3, 0, 3},
		{3, 0, 3, 0},
		{0, 3, 0, 3},
		{3, 0, 3, 0},
	})
}

// TestSimplePath: 0→1 (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	m := mustMatrix(s.T(), [][]int64{{0, 5}, {0, 0}})

	mf, err := flow.EdmondsKarp(m, 0, 1, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf, "max flow should match single-edge capacity")
}

// TestRingTwoPaths: two hop-2 paths of capacity 3 each.
func (s *EdmondsKarpSuite) TestRingTwoPaths() {
	m := ring4(s.T())

	mf, err := flow.EdmondsKarp(m, 0, 2, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), mf)

	require.NoError(s.T(), m.SetSymmetric(1, 2, 0))
	mf, err = flow.EdmondsKarp(m, 0, 2, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf, "only 0-3-2 remains")
}

// TestDoesNotMutateInput checks the caller's matrix survives untouched.
func (s *EdmondsKarpSuite) TestDoesNotMutateInput() {
	m := ring4(s.T())
	before := m.Clone()

	_, err := flow.EdmondsKarp(m, 0, 2, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), before.Equal(m))
}

// TestDisconnected: terminals in different components => 0, no error.
func (s *EdmondsKarpSuite) TestDisconnected() {
	m := mustMatrix(s.T(), [][]int64{
		{0, 4, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 9},
		{0, 0, 9, 0},
	})

	mf, err := flow.EdmondsKarp(m, 0, 3, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), mf)
}

// TestSourceEqualsSink yields zero flow.
func (s *EdmondsKarpSuite) TestSourceEqualsSink() {
	mf, err := flow.EdmondsKarp(ring4(s.T()), 1, 1, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), mf)
}

// TestClassicNetwork is the CLRS 6-vertex example (max flow 23).
func (s *EdmondsKarpSuite) TestClassicNetwork() {
	m := mustMatrix(s.T(), [][]int64{
		{0, 16, 13, 0, 0, 0},
		{0, 0, 10, 12, 0, 0},
		{0, 4, 0, 0, 14, 0},
		{0, 0, 9, 0, 0, 20},
		{0, 0, 0, 7, 0, 4},
		{0, 0, 0, 0, 0, 0},
	})

	mf, err := flow.EdmondsKarp(m, 0, 5, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), mf)
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	m := mustMatrix(s.T(), [][]int64{{0, -1}, {0, 0}})

	_, err := flow.EdmondsKarp(m, 0, 1, nil)
	var ee flow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), 0, ee.From)
	require.Equal(s.T(), 1, ee.To)
	require.Equal(s.T(), int64(-1), ee.Cap)
}

// TestSourceSinkNotFound covers out-of-range terminals and nil input.
func (s *EdmondsKarpSuite) TestSourceSinkNotFound() {
	m := ring4(s.T())

	_, err1 := flow.EdmondsKarp(m, -1, 2, nil)
	require.True(s.T(), errors.Is(err1, flow.ErrSourceNotFound))

	_, err2 := flow.EdmondsKarp(m, 0, 4, nil)
	require.True(s.T(), errors.Is(err2, flow.ErrSinkNotFound))

	_, err3 := flow.EdmondsKarp(nil, 0, 1, nil)
	require.ErrorIs(s.T(), err3, flow.ErrNilMatrix)
}

// TestCancelledContext stops before the first augmentation.
func (s *EdmondsKarpSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	_, err := flow.EdmondsKarp(ring4(s.T()), 0, 2, &opts)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
