package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/matrix"
)

// DinicSuite exercises Dinic and Ford–Fulkerson against Edmonds–Karp.
type DinicSuite struct {
	suite.Suite
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	m := mustMatrix(s.T(), [][]int64{{0, 7}, {0, 0}})

	mf, err := flow.Dinic(m, 0, 1, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestLevelRebuildInterval still converges to the same value.
func (s *DinicSuite) TestLevelRebuildInterval() {
	opts := flow.DefaultOptions()
	opts.LevelRebuildInterval = 1

	mf, err := flow.Dinic(ring4(s.T()), 0, 2, &opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), mf)
}

// TestAlgorithmsAgree compares all three algorithms on random symmetric networks.
func (s *DinicSuite) TestAlgorithmsAgree() {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 3 + r.Intn(10)
		m := randomSymmetric(s.T(), r, n, 0.4, 10)

		src, dst := 0, n-1
		ek, err := flow.EdmondsKarp(m, src, dst, nil)
		require.NoError(s.T(), err)

		for _, algo := range []flow.Algorithm{flow.AlgorithmDinic, flow.AlgorithmFordFulkerson} {
			opts := flow.DefaultOptions()
			opts.Algorithm = algo
			got, err := flow.MaxFlow(m, src, dst, &opts)
			require.NoError(s.T(), err)
			require.Equalf(s.T(), ek, got, "trial %d: %s disagrees with edmonds-karp", trial, algo)
		}
	}
}

// TestParseAlgorithm maps names and rejects unknown ones.
func (s *DinicSuite) TestParseAlgorithm() {
	a, err := flow.ParseAlgorithm("")
	require.NoError(s.T(), err)
	require.Equal(s.T(), flow.AlgorithmEdmondsKarp, a)

	a, err = flow.ParseAlgorithm("Dinic")
	require.NoError(s.T(), err)
	require.Equal(s.T(), flow.AlgorithmDinic, a)
	require.Equal(s.T(), "dinic", a.String())

	_, err = flow.ParseAlgorithm("push-relabel")
	require.ErrorIs(s.T(), err, flow.ErrUnknownAlgorithm)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

// randomSymmetric builds an n×n symmetric matrix with edge probability p and
// capacities uniform in [1, maxCap].
func randomSymmetric(t require.TestingT, r *rand.Rand, n int, p float64, maxCap int64) *matrix.Dense {
	m, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				require.NoError(t, m.SetSymmetric(i, j, r.Int63n(maxCap)+1))
			}
		}
	}
	return m
}
