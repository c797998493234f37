package flow

import (
	"log/slog"

	"github.com/katalvlaran/netrepair/matrix"
)

// MaxFlow dispatches to the algorithm selected in opts (nil uses
// Edmonds–Karp). Every algorithm returns the same value for the same matrix.
func MaxFlow(m *matrix.Dense, source, sink int, opts *Options) (int64, error) {
	o := resolve(opts)
	switch o.Algorithm {
	case AlgorithmDinic:
		return Dinic(m, source, sink, &o)
	case AlgorithmFordFulkerson:
		return FordFulkerson(m, source, sink, &o)
	default:
		return EdmondsKarp(m, source, sink, &o)
	}
}

// EdmondsKarp computes the maximum flow from source→sink over the capacity
// matrix m using the Edmonds–Karp algorithm (BFS for shortest augmenting
// paths). m is read once into a private residual copy and never mutated.
//
// It returns:
//   - maxFlow: total flow value (0 when sink is unreachable or source == sink)
//   - err: ErrNilMatrix, ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     or the context error if opts.Ctx is cancelled between augmentations.
//
// Termination: every augmentation saturates at least one residual edge and
// capacities are bounded non-negative integers.
//
// Complexity: O(V · E²) augmentations bound, each BFS O(V²) on a dense matrix.
// Memory:     O(V²) for the residual copy.
func EdmondsKarp(m *matrix.Dense, source, sink int, opts *Options) (maxFlow int64, err error) {
	o := resolve(opts)

	// 1) Validate and copy into the residual buffer
	residual, n, err := buildResidual(m, source, sink)
	if err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	// 2) Main loop: find BFS augmenting paths until none remain
	for {
		if err = o.Ctx.Err(); err != nil {
			return maxFlow, err
		}
		parent, ok := bfsAugmentingPath(residual, n, source, sink)
		if !ok {
			break
		}
		delta := bottleneck(residual, n, parent, source, sink)
		if delta <= 0 {
			break
		}
		if o.Verbose {
			o.Logger.Debug("augmenting path",
				slog.Any("path", pathOf(parent, source, sink)),
				slog.Int64("flow", delta))
		}
		maxFlow += delta

		// 3) Augment along the path
		augment(residual, n, parent, source, sink, delta)
	}

	return maxFlow, nil
}

// bfsAugmentingPath reports whether sink is reachable from source using only
// residual edges with strictly positive capacity. When it is, the returned
// parent slice encodes the shortest (fewest-edge) path: parent[source] == -1
// and parent[v] is v's predecessor. Each vertex is enqueued at most once.
//
// Complexity: O(V²) on the dense residual.
func bfsAugmentingPath(residual []int64, n, source, sink int) ([]int, bool) {
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}

	queue := make([]int, 0, n)
	queue = append(queue, source)
	visited[source] = true
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		row := residual[u*n : (u+1)*n]
		for v, c := range row {
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			queue = append(queue, v)
		}
	}

	return parent, false
}
