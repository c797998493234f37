package flow_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/netrepair/flow"
)

// BenchmarkFlowAlgorithms measures Ford–Fulkerson, Edmonds–Karp and Dinic on
// symmetric networks of increasing size.
func BenchmarkFlowAlgorithms(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		r := rand.New(rand.NewSource(int64(n)))
		m := randomSymmetric(b, r, n, 0.1, 10)
		src, dst := 0, n-1

		for _, algo := range []flow.Algorithm{flow.AlgorithmFordFulkerson, flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic} {
			opts := flow.DefaultOptions()
			opts.Algorithm = algo
			b.Run(fmt.Sprintf("%s/V=%d", algo, n), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.MaxFlow(m, src, dst, &opts)
				}
			})
		}
	}
}
