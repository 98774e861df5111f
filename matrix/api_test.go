// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAsDense shares *Dense storage and copies anything else.
func TestAsDense(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	same, err := matrix.AsDense(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	cp, err := matrix.AsDense(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, cp)
	require.Equal(t, m.ToRows(), cp.ToRows())

	_ = cp.Set(0, 0, 9) // copy is detached
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = matrix.AsDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCopyInto publishes values through the Matrix interface.
func TestCopyInto(t *testing.T) {
	dst := mustRows(t, [][]float64{{0, 0}, {0, 0}})
	src := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.CopyInto(hide{dst}, src))
	require.Equal(t, src.ToRows(), dst.ToRows())

	wide := mustRows(t, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, matrix.CopyInto(dst, wide), matrix.ErrDimensionMismatch)
}

func TestAugment(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)

	aug, err := matrix.Augment(a, hide{id})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 1, 0}, {3, 4, 0, 1}}, aug.ToRows())

	_, err = matrix.Augment(a, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Augment(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose covers both tolerances and both code paths.
func TestAllClose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 100}})
	b := mustRows(t, [][]float64{{1 + 1e-10, 100.5}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok) // 0.5 apart in the second cell

	ok, err = matrix.AllClose(a, b, 1e-2, 1e-9)
	require.NoError(t, err)
	require.True(t, ok) // relative tolerance covers it

	ok, err = matrix.AllClose(hide{a}, hide{b}, 1e-2, -1e-9) // negative atol normalized
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, mustRows(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1, 2 + 1e-12}})
	c := mustRows(t, [][]float64{{1, 2.001}})

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, c))
	require.True(t, matrix.Equal(a, c, matrix.WithEpsilon(1e-2)))
	require.False(t, matrix.Equal(a, mustRows(t, [][]float64{{1}, {2}})))
}

// TestMul multiplies Dense and wrapped operands and leaves both inputs intact.
func TestMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 0}, {0, 1, 3}})
	b := mustRows(t, [][]float64{{1, 0}, {2, 1}, {0, 4}})
	want := [][]float64{{5, 2}, {2, 13}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, got.ToRows())

	wrapped, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, wrapped.ToRows())

	require.Equal(t, [][]float64{{1, 2, 0}, {0, 1, 3}}, a.ToRows())
	require.Equal(t, [][]float64{{1, 0}, {2, 1}, {0, 4}}, b.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity checks I·A = A·I = A on a non-square operand.
func TestMulIdentity(t *testing.T) {
	a := mustRows(t, [][]float64{{0, -1.5, 2}, {4, 0, 0}})
	left, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	right, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	p, err := matrix.Mul(left, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, p))

	p, err = matrix.Mul(a, right)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, p))
}
