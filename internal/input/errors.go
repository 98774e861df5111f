// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension reports a row or column count that is not a positive integer.
	ErrBadDimension = errors.New("input: expected integer value")

	// ErrBadEntry reports a matrix entry that is not a finite real number.
	ErrBadEntry = errors.New("input: expected double value")

	// ErrNoInput reports that the reader ran dry before a question was answered.
	ErrNoInput = errors.New("input: unexpected end of input")
)

const (
	opReadMatrix = "ReadMatrix"
	opChoose     = "Choose"
	opLoadFile   = "LoadFile"
	opDecode     = "Decode"
	opGlob       = "Glob"
)

func inputErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
