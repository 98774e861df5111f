// SPDX-License-Identifier: MIT

// Package echelon: functional configuration for the reducers.
//
// Design goals:
//   - No global state: every call resolves its own Options from defaults.
//   - Safe by construction: WithX panics only on nonsensical values.
package echelon

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// Pivoting selects how a pivot row is chosen within a column.
type Pivoting int

const (
	// PivotFirstNonZero takes the first row at or below the current pivot row
	// whose entry is non-zero. Rows are only exchanged when that row is not
	// already in place.
	PivotFirstNonZero Pivoting = iota

	// PivotPartial takes the row with the largest magnitude in the column,
	// which bounds the elimination factors by 1.
	PivotPartial
)

// String returns the flag spelling of p.
func (p Pivoting) String() string {
	switch p {
	case PivotFirstNonZero:
		return "first"
	case PivotPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the zero tolerance: |x| ≤ DefaultEpsilon counts as 0 and
	// |x-1| ≤ DefaultEpsilon counts as 1. It is part of the public contract.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultPivoting is the pivot rule used when WithPivoting is not given.
	DefaultPivoting = PivotFirstNonZero
)

const (
	panicEpsilonInvalid  = "echelon: WithEpsilon: eps must be finite, non-negative"
	panicPivotingInvalid = "echelon: WithPivoting: unknown pivoting rule"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration of one reduction call.
type Options struct {
	eps      float64
	pivoting Pivoting
	recorder Recorder
}

// WithEpsilon sets the zero tolerance. Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting selects the pivot rule. Panics on an unknown rule.
func WithPivoting(p Pivoting) Option {
	if p != PivotFirstNonZero && p != PivotPartial {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithRecorder installs a callback receiving every elementary operation in
// execution order. A nil recorder disables recording.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.recorder = r }
}

// NewOptions resolves option setters against the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Pivoting returns the resolved pivot rule.
func (o Options) Pivoting() Pivoting { return o.pivoting }

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		pivoting: DefaultPivoting,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
