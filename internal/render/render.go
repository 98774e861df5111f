// SPDX-License-Identifier: MIT

// Package render prints matrices as pipe-framed rows of fixed-width cells:
//
//	|    -1,      2,      3|
//	|     0,     13,     18|
//	|     0,      0, -0.462|
//
// Integral values are printed plainly; everything else gets a fixed number of
// decimals.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/rref/matrix"
)

const (
	// DefaultWidth is the minimum cell width; wider values are not truncated.
	DefaultWidth = 6

	// DefaultPrecision is the number of decimals for non-integral values.
	DefaultPrecision = 3
)

const (
	panicWidthInvalid     = "render: WithWidth: width must be >= 0"
	panicPrecisionInvalid = "render: WithPrecision: precision must be >= 0"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the minimum cell width.
func WithWidth(w int) Option {
	if w < 0 {
		panic(panicWidthInvalid)
	}

	return func(r *Renderer) { r.width = w }
}

// WithPrecision sets the decimals printed for non-integral values.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(r *Renderer) { r.precision = p }
}

// Renderer formats matrices for terminal output. The zero value is not
// useful; build one with New.
type Renderer struct {
	width     int
	precision int
}

// New returns a Renderer with DefaultWidth and DefaultPrecision unless
// overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth, precision: DefaultPrecision}
	for _, set := range opts {
		set(r)
	}

	return r
}

// Cell formats one value, right-aligned to the cell width.
func (r *Renderer) Cell(v float64) string {
	var s string
	switch {
	case v == 0:
		s = "0" // also folds -0
	case v == math.Trunc(v) && !math.IsInf(v, 0):
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = strconv.FormatFloat(v, 'f', r.precision, 64)
	}

	return fmt.Sprintf("%*s", r.width, s)
}

// Matrix writes m one framed row per line.
func (r *Renderer) Matrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteByte('|')
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.Cell(v))
		}
		b.WriteString("|\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// String renders m to a string, or returns the error text.
func (r *Renderer) String(m matrix.Matrix) string {
	var b strings.Builder
	if err := r.Matrix(&b, m); err != nil {
		return err.Error()
	}

	return b.String()
}
