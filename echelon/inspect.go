// SPDX-License-Identifier: MIT

package echelon

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// leadingColumns returns, per row, the column of the first entry with
// |x| > eps, or -1 for a zero row.
func leadingColumns(m matrix.Matrix, eps float64) ([]int, *matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, err
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, nil, err
	}
	leads := make([]int, d.Rows())
	var row []float64
	for i := range leads {
		if row, err = d.RowView(i); err != nil {
			return nil, nil, err
		}
		leads[i] = -1
		for j, v := range row {
			if math.Abs(v) > eps {
				leads[i] = j
				break
			}
		}
	}

	return leads, d, nil
}

// PivotColumns returns the leading-entry column of every row of m, or -1 for
// rows that are zero within eps. m is not modified.
func PivotColumns(m matrix.Matrix, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)
	leads, _, err := leadingColumns(m, o.eps)
	if err != nil {
		return nil, echelonErrorf(opPivots, err)
	}

	return leads, nil
}

// IsREF reports whether m is in row-echelon form within eps: leading columns
// strictly increase top to bottom and zero rows come last.
func IsREF(m matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	leads, _, err := leadingColumns(m, o.eps)
	if err != nil {
		return false, echelonErrorf(opIsREF, err)
	}

	return isEchelon(leads), nil
}

func isEchelon(leads []int) bool {
	prev, seenZero := -1, false
	for _, lead := range leads {
		if lead < 0 {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}

// IsRREF reports whether m is in reduced row-echelon form within eps: it is in
// REF, every pivot is 1, and every entry above a pivot is 0.
func IsRREF(m matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	leads, d, err := leadingColumns(m, o.eps)
	if err != nil {
		return false, echelonErrorf(opIsRREF, err)
	}
	if !isEchelon(leads) {
		return false, nil
	}

	var v float64
	for r, lead := range leads {
		if lead < 0 {
			continue
		}
		if v, err = d.At(r, lead); err != nil {
			return false, echelonErrorf(opIsRREF, err)
		}
		if math.Abs(v-1) > o.eps {
			return false, nil
		}
		for i := 0; i < r; i++ {
			if v, err = d.At(i, lead); err != nil {
				return false, echelonErrorf(opIsRREF, err)
			}
			if math.Abs(v) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// Rank returns the number of pivots of m, computed by GaussReduce on a clone.
// m is not modified.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, echelonErrorf(opRank, err)
	}
	work := m.Clone()
	if err := GaussReduce(work, nil, opts...); err != nil {
		return 0, echelonErrorf(opRank, err)
	}
	leads, err := PivotColumns(work, opts...)
	if err != nil {
		return 0, echelonErrorf(opRank, err)
	}

	rank := 0
	for _, lead := range leads {
		if lead >= 0 {
			rank++
		}
	}

	return rank, nil
}
