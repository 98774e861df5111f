// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"strconv"
)

// Counter tallies elementary row operations.
//
// GaussReduce, BackReduce and GaussJordanReduce reset the counter on entry, so
// after a call it holds exactly that call's operations. The public primitives
// only increment it. Callers that need a total across phases read Count after
// each phase and add the values up.
//
// The zero value is ready to use. A Counter must not be shared by reductions
// running concurrently.
type Counter struct {
	n int
}

// Count returns the number of operations counted since the last Reset.
func (c *Counter) Count() int { return c.n }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.n = 0 }

func (c *Counter) inc() { c.n++ }

// OpKind names an elementary row operation.
type OpKind int

const (
	// OpExchange is Ri ↔ Rj.
	OpExchange OpKind = iota
	// OpMultiplication is Ri → k·Ri.
	OpMultiplication
	// OpTransvection is Ri → Ri − k·Rj.
	OpTransvection
)

// String returns a short human-readable name.
func (k OpKind) String() string {
	switch k {
	case OpExchange:
		return "exchange"
	case OpMultiplication:
		return "multiplication"
	case OpTransvection:
		return "transvection"
	default:
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Step records one elementary operation. Rows are zero-based.
//   - OpExchange:       Dst ↔ Src, Factor unused (0).
//   - OpMultiplication: Dst → Factor·Dst, Src == Dst.
//   - OpTransvection:   Dst → Dst − Factor·Src.
type Step struct {
	Kind   OpKind
	Dst    int
	Src    int
	Factor float64
}

// String renders the step in the usual R-notation with one-based rows.
func (s Step) String() string {
	switch s.Kind {
	case OpExchange:
		return fmt.Sprintf("R%d <-> R%d", s.Dst+1, s.Src+1)
	case OpMultiplication:
		return fmt.Sprintf("R%d -> %g*R%d", s.Dst+1, s.Factor, s.Dst+1)
	case OpTransvection:
		return fmt.Sprintf("R%d -> R%d - %g*R%d", s.Dst+1, s.Dst+1, s.Factor, s.Src+1)
	default:
		return s.Kind.String()
	}
}

// Recorder observes operations as they are applied.
type Recorder func(Step)
