package flow

import (
	"github.com/katalvlaran/netrepair/matrix"
)

// buildResidual validates the inputs and returns a private residual copy of
// m in row-major order together with its size.
//
// Steps:
//  1. Reject nil matrices (ErrNilMatrix).
//  2. Validate source and sink are valid indices (ErrSourceNotFound / ErrSinkNotFound).
//  3. Copy the backing storage; the caller's matrix is never touched again.
//  4. Reject negative capacities (EdgeError) and zero the diagonal so that
//     self loops never take part in augmentation.
//
// Complexity:
//
//	Time:   O(V²).
//	Memory: O(V²) for the residual copy.
func buildResidual(m *matrix.Dense, source, sink int) ([]int64, int, error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	n := m.Size()
	if source < 0 || source >= n {
		return nil, 0, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return nil, 0, ErrSinkNotFound
	}

	residual := m.Values()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			c := residual[u*n+v]
			if c < 0 {
				return nil, 0, EdgeError{From: u, To: v, Cap: c}
			}
		}
		residual[u*n+u] = 0
	}

	return residual, n, nil
}

// augment pushes delta along the parent-pointer path ending at sink,
// decreasing forward and increasing reverse residual capacities.
// Complexity: O(path length).
func augment(residual []int64, n int, parent []int, source, sink int, delta int64) {
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		residual[u*n+v] -= delta
		residual[v*n+u] += delta
	}
}

// bottleneck returns the minimum residual capacity along the parent-pointer
// path ending at sink.
// Complexity: O(path length).
func bottleneck(residual []int64, n int, parent []int, source, sink int) int64 {
	var b int64 = -1
	for v := sink; v != source; v = parent[v] {
		c := residual[parent[v]*n+v]
		if b < 0 || c < b {
			b = c
		}
	}

	return b
}

// pathOf reconstructs the vertex sequence source→sink for logging.
func pathOf(parent []int, source, sink int) []int {
	path := []int{sink}
	for cur := sink; cur != source; cur = parent[cur] {
		path = append(path, parent[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
