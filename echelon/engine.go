// SPDX-License-Identifier: MIT

package echelon

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// engine is the working state of one call: a row-major buffer, the resolved
// options and the counter. When the caller's matrix is not a *matrix.Dense the
// engine works on a copy and commit writes it back.
type engine struct {
	src     matrix.Matrix // caller's matrix
	m       *matrix.Dense // working buffer (src itself for *Dense)
	foreign bool          // m is a copy of src
	rows    [][]float64   // row views into m
	nRows   int
	nCols   int
	eps     float64
	piv     Pivoting
	rec     Recorder
	c       *Counter
}

// newEngine validates m, resolves options and binds row views.
// Matrices built with a relaxed NaN/Inf policy are rejected here if they hold
// a non-finite value. A nil counter is replaced by a private one.
func newEngine(m matrix.Matrix, c *Counter, opts []Option) (*engine, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateFinite(d); err != nil {
		return nil, err
	}
	_, isDense := m.(*matrix.Dense)
	if c == nil {
		c = new(Counter)
	}
	o := gatherOptions(opts...)

	e := &engine{
		src:     m,
		m:       d,
		foreign: !isDense,
		nRows:   d.Rows(),
		nCols:   d.Cols(),
		eps:     o.eps,
		piv:     o.pivoting,
		rec:     o.recorder,
		c:       c,
	}
	e.rows = make([][]float64, e.nRows)
	for i := range e.rows {
		if e.rows[i], err = d.RowView(i); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// commit publishes the working buffer to a foreign caller matrix.
func (e *engine) commit() error {
	if !e.foreign {
		return nil
	}

	return matrix.CopyInto(e.src, e.m)
}

func (e *engine) isZero(v float64) bool { return math.Abs(v) <= e.eps }

func (e *engine) isOne(v float64) bool { return math.Abs(v-1) <= e.eps }

func (e *engine) record(s Step) {
	if e.rec != nil {
		e.rec(s)
	}
}

// exchange swaps rows i and j. Swapping a row with itself is legal and counted.
func (e *engine) exchange(i, j int) {
	ri, rj := e.rows[i], e.rows[j]
	for col := range ri {
		ri[col], rj[col] = rj[col], ri[col]
	}
	e.c.inc()
	e.record(Step{Kind: OpExchange, Dst: i, Src: j})
}

// multiply scales row i by k. Callers guarantee k != 0.
func (e *engine) multiply(i int, k float64) {
	ri := e.rows[i]
	for col := range ri {
		ri[col] *= k
		if ri[col] == 0 {
			ri[col] = 0 // -0 from a negative k
		}
	}
	e.c.inc()
	e.record(Step{Kind: OpMultiplication, Dst: i, Src: i, Factor: k})
}

// transvect replaces row i with row_i − k·row_j and flushes cells that
// cancel to within eps of zero.
func (e *engine) transvect(i, j int, k float64) {
	ri, rj := e.rows[i], e.rows[j]
	for col := range ri {
		ri[col] -= k * rj[col]
		if e.isZero(ri[col]) {
			ri[col] = 0
		}
	}
	e.c.inc()
	e.record(Step{Kind: OpTransvection, Dst: i, Src: j, Factor: k})
}

// leading returns the first column >= from whose entry in row r is non-zero,
// or -1 for a row that is zero from there on.
func (e *engine) leading(r, from int) int {
	row := e.rows[r]
	for col := from; col < e.nCols; col++ {
		if !e.isZero(row[col]) {
			return col
		}
	}

	return -1
}

// selectPivot picks the pivot row for col among rows from..nRows-1, or -1.
func (e *engine) selectPivot(col, from int) int {
	switch e.piv {
	case PivotPartial:
		best, bestAbs := -1, e.eps
		for r := from; r < e.nRows; r++ {
			if a := math.Abs(e.rows[r][col]); a > bestAbs {
				best, bestAbs = r, a
			}
		}
		return best
	default:
		for r := from; r < e.nRows; r++ {
			if !e.isZero(e.rows[r][col]) {
				return r
			}
		}
		return -1
	}
}

// normalize scales row r so that its entry at col becomes exactly 1.
// Nothing happens when the entry is already 1 within eps.
func (e *engine) normalize(r, col int) {
	p := e.rows[r][col]
	if e.isOne(p) {
		return
	}
	e.multiply(r, 1/p)
	e.rows[r][col] = 1
}

// forward walks the columns left to right placing one pivot per column that
// has a candidate. With jordan set, each pivot row is normalized and the pivot
// column is cleared above as well as below.
func (e *engine) forward(jordan bool) {
	pivotRow := 0
	for col := 0; col < e.nCols && pivotRow < e.nRows; col++ {
		p := e.selectPivot(col, pivotRow)
		if p < 0 {
			continue // no pivot in this column
		}
		if p != pivotRow {
			e.exchange(pivotRow, p)
		}
		if jordan {
			e.normalize(pivotRow, col)
		}

		pr := e.rows[pivotRow]
		start := pivotRow + 1
		if jordan {
			start = 0
		}
		for i := start; i < e.nRows; i++ {
			if i == pivotRow {
				continue
			}
			ri := e.rows[i]
			if e.isZero(ri[col]) {
				continue
			}
			k := ri[col] / pr[col]
			e.transvect(i, pivotRow, k)
			ri[col] = 0
		}
		pivotRow++
	}
}

// backward clears above every pivot, bottom row first, normalizing pivots to 1.
// The input is expected in REF.
func (e *engine) backward() {
	for r := e.nRows - 1; r >= 0; r-- {
		lead := e.leading(r, 0)
		if lead < 0 {
			continue // zero row
		}
		e.normalize(r, lead)

		for i := r - 1; i >= 0; i-- {
			ri := e.rows[i]
			if e.isZero(ri[lead]) {
				continue
			}
			e.transvect(i, r, ri[lead])
			ri[lead] = 0
		}
	}
}
