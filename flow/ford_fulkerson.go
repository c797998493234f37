package flow

import (
	"log/slog"

	"github.com/katalvlaran/netrepair/matrix"
)

// FordFulkerson computes the maximum flow from source to sink over the
// capacity matrix m using the Ford–Fulkerson method (iterative DFS for any
// augmenting path).
//
// Steps:
//  1. Normalize options and validate inputs via buildResidual (O(V²)).
//  2. Repeat until no augmenting path:
//     a. Iterative DFS from source over positive residual edges (O(V²)).
//     b. If sink not reached, break.
//     c. Augment along the path by its bottleneck.
//     d. Check ctx for cancellation.
//
// Complexity:
//
//	Time:   O(V² · F) where F = maxFlow.
//	Memory: O(V²) for the residual copy.
//
// Suitable for small integral networks; Edmonds–Karp gives the polynomial bound.
func FordFulkerson(m *matrix.Dense, source, sink int, opts *Options) (maxFlow int64, err error) {
	o := resolve(opts)

	residual, n, err := buildResidual(m, source, sink)
	if err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	parent := make([]int, n)
	visited := make([]bool, n)
	stack := make([]int, 0, n)
	for {
		if err = o.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		for i := range visited {
			visited[i] = false
			parent[i] = -1
		}
		stack = append(stack[:0], source)
		visited[source] = true
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for v := 0; v < n; v++ {
				if visited[v] || residual[u*n+v] <= 0 {
					continue
				}
				visited[v] = true
				parent[v] = u
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}
		if !found {
			break
		}

		delta := bottleneck(residual, n, parent, source, sink)
		if o.Verbose {
			o.Logger.Debug("augmenting path",
				slog.Any("path", pathOf(parent, source, sink)),
				slog.Int64("flow", delta))
		}
		maxFlow += delta
		augment(residual, n, parent, source, sink, delta)
	}

	return maxFlow, nil
}
