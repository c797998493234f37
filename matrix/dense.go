// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep deterministic loop orders (no map iteration) so snapshots compare byte-for-byte.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Equal/Values: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSymmetric = "SetSymmetric"
	ctxRow       = "Row"
)

// Dense is a square n×n matrix of int64 values.
// data holds n*n elements in row-major order and is allocated once.
type Dense struct {
	n    int     // number of rows == number of columns
	data []int64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// FromRows builds a Dense from a literal row slice. Every row must have
// exactly len(rows) entries.
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns the number of rows (and columns).
// Complexity: O(1).
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at both (i, j) and (j, i). Either both writes
// happen or neither does.
// Complexity: O(1).
func (m *Dense) SetSymmetric(i, j int, v int64) error {
	ij, err := m.indexOf(ctxSymmetric, i, j)
	if err != nil {
		return err
	}
	ji := j*m.n + i
	m.data[ij] = v
	m.data[ji] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Dense) Row(i int) ([]int64, error) {
	start, err := m.indexOf(ctxRow, i, 0)
	if err != nil {
		return nil, err
	}
	out := make([]int64, m.n)
	copy(out, m.data[start:start+m.n])

	return out, nil
}

// Values returns a copy of the backing storage in row-major order.
// Algorithms that need a scratch buffer (e.g. a residual graph) start here
// and index it as i*Size()+j.
// Complexity: O(n²).
func (m *Dense) Values() []int64 {
	if m == nil {
		return nil
	}
	out := make([]int64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}

	return &Dense{n: m.n, data: m.Values()}
}

// Equal reports whether m and o have the same size and contents.
// Complexity: O(n²).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every pair.
// Complexity: O(n²/2).
func (m *Dense) IsSymmetric() bool {
	if m == nil {
		return false
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// Permute relabels the matrix so that old index i becomes perm[i]:
// out[perm[i]][perm[j]] = m[i][j]. perm must be a permutation of 0..n-1.
// Complexity: O(n²).
func (m *Dense) Permute(perm []int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(perm) != m.n {
		return nil, fmt.Errorf("Permute: len(perm)=%d, size=%d: %w", len(perm), m.n, ErrDimensionMismatch)
	}
	seen := make([]bool, m.n)
	for _, p := range perm {
		if p < 0 || p >= m.n || seen[p] {
			return nil, fmt.Errorf("Permute: invalid target %d: %w", p, ErrOutOfRange)
		}
		seen[p] = true
	}

	out := &Dense{n: m.n, data: make([]int64, len(m.data))}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.data[perm[i]*m.n+perm[j]] = m.data[i*m.n+j]
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
