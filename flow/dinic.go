package flow

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/netrepair/matrix"
)

// Dinic computes the maximum flow from source to sink over the capacity
// matrix m using Dinic’s algorithm (level graph + blocking flows).
//
// Steps:
//  1. Normalize options and validate inputs via buildResidual (O(V²)).
//  2. Repeat until sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph (O(V²)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general.
//	Memory: O(V²) for the residual copy, O(V) for level and iterator arrays.
func Dinic(m *matrix.Dense, source, sink int, opts *Options) (maxFlow int64, err error) {
	o := resolve(opts)

	residual, n, err := buildResidual(m, source, sink)
	if err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	augmentCount := 0
	for {
		if err = o.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		// BFS to compute levels
		for i := range level {
			level[i] = -1
		}
		queue = append(queue[:0], source)
		level[source] = 0
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for v := 0; v < n; v++ {
				if residual[u*n+v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = o.Ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dfsDinicPush(residual, n, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if o.Verbose {
				o.Logger.Debug("dinic push", slog.Int64("pushed", pushed), slog.Int64("total", maxFlow))
			}
			if o.LevelRebuildInterval > 0 && augmentCount%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dfsDinicPush recursively pushes flow along the level graph, updating the
// residual in place, and returns the amount actually sent.
func dfsDinicPush(residual []int64, n int, level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < n; iter[u]++ {
		v := iter[u]
		capUV := residual[u*n+v]
		if capUV <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := dfsDinicPush(residual, n, level, iter, v, sink, send)
		if pushed > 0 {
			residual[u*n+v] -= pushed
			residual[v*n+u] += pushed

			return pushed
		}
	}

	return 0
}
