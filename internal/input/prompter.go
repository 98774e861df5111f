// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/rref/matrix"
)

// Prompt texts shown by the interactive session.
const (
	PromptRows = "Enter the number of rows in the matrix: "
	PromptCols = "Enter the number of columns in the matrix: "
	PromptTest = "Is this a test run? (y/n): "
	PromptMenu = "Which method should be used: [G]auss Reduction + Back Reduction, " +
		"Gauss-[J]ordan Reduction, or [B]oth? (g/j/b): "

	entryNote = `
NOTE: entries are read as real numbers. Enter fractions as decimals (0.5, not 1/2).

NOTE 2: positions are 1-based, so (1, 1) is the first entry of the first row.
`
)

// MaxDimension bounds each interactively entered dimension.
const MaxDimension = 1 << 12

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewPrompter binds a Prompter to the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out}
}

// ask writes prompt and returns the next trimmed line.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

// Choose repeats question until the answer's first letter is one of choices
// (case-insensitive) and returns that letter in lower case.
func (p *Prompter) Choose(question, choices string) (byte, error) {
	for {
		ans, err := p.ask(question)
		if err != nil {
			return 0, inputErrorf(opChoose, err)
		}
		if ans == "" {
			continue
		}
		c := strings.ToLower(ans[:1])
		if strings.Contains(choices, c) {
			return c[0], nil
		}
	}
}

// Confirm asks a yes/no question until it gets y or n.
func (p *Prompter) Confirm(question string) (bool, error) {
	c, err := p.Choose(question, "yn")

	return c == 'y', err
}

// ReadMatrix asks for the dimensions and then for every entry in row-major
// order, addressing entries by 1-based (row, column). A malformed answer ends
// the session with ErrBadDimension or ErrBadEntry.
func (p *Prompter) ReadMatrix() (*matrix.Dense, error) {
	rows, err := p.dimension(PromptRows)
	if err != nil {
		return nil, inputErrorf(opReadMatrix, err)
	}
	cols, err := p.dimension(PromptCols)
	if err != nil {
		return nil, inputErrorf(opReadMatrix, err)
	}
	fmt.Fprint(p.out, entryNote)

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, inputErrorf(opReadMatrix, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ans, err := p.ask(fmt.Sprintf("Entry at (%d, %d): ", i+1, j+1))
			if err != nil {
				return nil, inputErrorf(opReadMatrix, err)
			}
			v, err := ParseEntry(ans)
			if err != nil {
				return nil, inputErrorf(opReadMatrix, fmt.Errorf("entry (%d, %d): %w", i+1, j+1, err))
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, inputErrorf(opReadMatrix, err)
			}
		}
	}

	return m, nil
}

func (p *Prompter) dimension(prompt string) (int, error) {
	ans, err := p.ask(prompt)
	if err != nil {
		return 0, err
	}

	return ParseDimension(ans)
}

// ParseDimension accepts a base-10 integer in [1, MaxDimension].
func ParseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > MaxDimension {
		return 0, fmt.Errorf("%q: %w", s, ErrBadDimension)
	}

	return n, nil
}

// ParseEntry accepts any finite float64 literal.
func ParseEntry(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrBadEntry)
	}

	return v, nil
}
