// Package matrix_test contains unit tests for the Dense capacity matrix.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrepair/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive sizes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSymmetric(0, 5, 1), matrix.ErrOutOfRange)
}

// TestSetSymmetric writes both mirrored entries at once.
func TestSetSymmetric(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, m.SetSymmetric(0, 2, 7))
	v, _ := m.At(0, 2)
	require.Equal(t, int64(7), v)
	v, _ = m.At(2, 0)
	require.Equal(t, int64(7), v)
	require.True(t, m.IsSymmetric())

	require.NoError(t, m.Set(1, 0, 4)) // one-sided write breaks symmetry
	require.False(t, m.IsSymmetric())
}

// TestCloneIsDeep verifies that mutating a clone leaves the original intact.
func TestCloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(0, 1, 9))
	require.False(t, c.Equal(m))

	v, _ := m.At(0, 1)
	require.Equal(t, int64(1), v, "original must not alias the clone")
}

// TestFromRowsNonSquare rejects ragged input.
func TestFromRowsNonSquare(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowAndValuesAreCopies guards against exposing the backing slice.
func TestRowAndValuesAreCopies(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, row)
	row[0] = 100

	vals := m.Values()
	require.Equal(t, []int64{1, 2, 3, 4}, vals)
	vals[0] = 100

	v, _ := m.At(1, 0)
	require.Equal(t, int64(3), v)
	v, _ = m.At(0, 0)
	require.Equal(t, int64(1), v)
}

// TestPermute relabels indices and rejects malformed permutations.
func TestPermute(t *testing.T) {
	m, err := matrix.FromRows([][]int64{
		{0, 5, 0},
		{5, 0, 2},
		{0, 2, 0},
	})
	require.NoError(t, err)

	p, err := m.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	// old (0,1)=5 lands on (2,0); old (1,2)=2 lands on (0,1)
	v, _ := p.At(2, 0)
	require.Equal(t, int64(5), v)
	v, _ = p.At(0, 1)
	require.Equal(t, int64(2), v)
	require.True(t, p.IsSymmetric())

	_, err = m.Permute([]int{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Permute([]int{0, 0, 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNilReceiver keeps nil handling explicit.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense
	require.Equal(t, 0, m.Size())
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, m.Clone())
	require.Equal(t, "<nil>", m.String())
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, 3}, {3, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 3]\n[3, 0]\n", m.String())
}
