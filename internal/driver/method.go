// SPDX-License-Identifier: MIT

package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rref/echelon"
)

var (
	// ErrUnknownMethod reports a method selector other than g, j or b.
	ErrUnknownMethod = errors.New("driver: unknown method")

	// ErrUnknownPivoting reports a pivot rule other than first or partial.
	ErrUnknownPivoting = errors.New("driver: unknown pivoting rule")
)

// Method selects which reduction path a run takes.
type Method int

const (
	// GaussBack runs GaussReduce followed by BackReduce.
	GaussBack Method = iota + 1
	// GaussJordan runs GaussJordanReduce.
	GaussJordan
	// Both runs GaussBack and then GaussJordan on the original input.
	Both
)

func (m Method) String() string {
	switch m {
	case GaussBack:
		return "gauss-back"
	case GaussJordan:
		return "gauss-jordan"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the menu letters g, j and b as well as the long names,
// in any case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "gauss", "gauss-back":
		return GaussBack, nil
	case "j", "jordan", "gauss-jordan":
		return GaussJordan, nil
	case "b", "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// ParsePivoting maps "first" and "partial" to the echelon pivot rules.
func ParsePivoting(s string) (echelon.Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return echelon.PivotFirstNonZero, nil
	case "partial":
		return echelon.PivotPartial, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPivoting)
	}
}
