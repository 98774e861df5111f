// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/rref/matrix"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of one matrix:
//
//	name: rotation
//	rows:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
type Document struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows"`
}

// Named is a validated matrix with the label used in reports.
type Named struct {
	Name string
	M    *matrix.Dense
}

// LoadFile reads every matrix in the YAML file at path. Unnamed matrices are
// labelled after the file.
func LoadFile(path string) ([]Named, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inputErrorf(opLoadFile, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out, err := Decode(f, base)
	if err != nil {
		return nil, inputErrorf(opLoadFile, fmt.Errorf("%s: %w", path, err))
	}

	return out, nil
}

// Decode reads a YAML stream in which each document is either a single
// Document mapping or a sequence of them. Ragged rows fail with
// matrix.ErrRagged, empty ones with matrix.ErrInvalidDimensions and
// non-finite values with matrix.ErrNaNInf.
func Decode(r io.Reader, label string) ([]Named, error) {
	var docs []Document
	dec := yaml.NewDecoder(r)
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, inputErrorf(opDecode, err)
		}
		body := &node
		if body.Kind == yaml.DocumentNode && len(body.Content) > 0 {
			body = body.Content[0]
		}

		switch body.Kind {
		case yaml.SequenceNode:
			var list []Document
			if err = body.Decode(&list); err != nil {
				return nil, inputErrorf(opDecode, err)
			}
			docs = append(docs, list...)
		case yaml.MappingNode:
			var d Document
			if err = body.Decode(&d); err != nil {
				return nil, inputErrorf(opDecode, err)
			}
			docs = append(docs, d)
		default:
			return nil, inputErrorf(opDecode, fmt.Errorf("line %d: want a mapping or a list of mappings", body.Line))
		}
	}
	if len(docs) == 0 {
		return nil, inputErrorf(opDecode, matrix.ErrInvalidDimensions)
	}

	out := make([]Named, 0, len(docs))
	for k, d := range docs {
		name := d.Name
		if name == "" {
			name = label
			if len(docs) > 1 {
				name = fmt.Sprintf("%s#%d", label, k+1)
			}
		}
		m, err := matrix.NewDenseFromRows(d.Rows)
		if err != nil {
			return nil, inputErrorf(opDecode, fmt.Errorf("%s: %w", name, err))
		}
		out = append(out, Named{Name: name, M: m})
	}

	return out, nil
}

// Glob lists the *.yaml and *.yml files directly inside dir, sorted.
func Glob(dir string) ([]string, error) {
	var paths []string
	for _, pat := range []string{"*.yaml", "*.yml"} {
		found, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, inputErrorf(opGlob, err)
		}
		paths = append(paths, found...)
	}
	sort.Strings(paths)

	return paths, nil
}

// TestMatrix returns a fresh copy of the fixed test-mode matrix, whose RREF
// is the 3×3 identity.
func TestMatrix() *matrix.Dense {
	m, err := matrix.NewDenseFromRows([][]float64{
		{-1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		panic(err) // literal is well-formed
	}

	return m
}
