// SPDX-License-Identifier: MIT

// Command rref reduces a matrix to row-echelon and reduced row-echelon form.
//
// Without -file or -batch it runs an interactive session: it asks for the
// matrix (or loads the fixed test matrix), asks for the method, and prints
// the REF/RREF together with operation counts and timings.
//
//	rref                         # interactive
//	rref -test -method b         # test matrix, both methods
//	rref -file m.yaml -method j  # every matrix in m.yaml
//	rref -batch ./mats -jobs 8   # every *.yaml/*.yml in ./mats, in parallel
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/rref/echelon"
	"github.com/katalvlaran/rref/internal/driver"
	"github.com/katalvlaran/rref/internal/input"
	"github.com/katalvlaran/rref/internal/render"
	"github.com/katalvlaran/rref/matrix"
)

var log = logging.Logger("rref")

// options is the parsed command line.
type options struct {
	test      bool
	testSet   bool // -test given explicitly
	method    string
	file      string
	batch     string
	jobs      int
	pivot     string
	eps       float64
	precision int
	width     int
	logLevel  string
	trace     bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.BoolVar(&o.test, "test", false, "Use the built-in test matrix")
	fs.StringVar(&o.method, "method", "", "Reduction method: g (Gauss + Back), j (Gauss-Jordan), b (both); asked when empty")
	fs.StringVar(&o.file, "file", "", "YAML file with one or more matrices")
	fs.StringVar(&o.batch, "batch", "", "Directory of YAML files to reduce in parallel")
	fs.IntVar(&o.jobs, "jobs", runtime.NumCPU(), "Parallel reductions in batch mode")
	fs.StringVar(&o.pivot, "pivot", "first", "Pivot rule: first or partial")
	fs.Float64Var(&o.eps, "eps", echelon.DefaultEpsilon, "Zero tolerance")
	fs.IntVar(&o.precision, "precision", render.DefaultPrecision, "Decimals printed for non-integral values")
	fs.IntVar(&o.width, "width", render.DefaultWidth, "Minimum printed cell width")
	fs.StringVar(&o.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.BoolVar(&o.trace, "trace", false, "Log every row operation at debug level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "test" {
			o.testSet = true
		}
	})

	switch {
	case math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps < 0:
		return o, fmt.Errorf("-eps %g: must be finite and >= 0", o.eps)
	case o.precision < 0:
		return o, fmt.Errorf("-precision %d: must be >= 0", o.precision)
	case o.width < 0:
		return o, fmt.Errorf("-width %d: must be >= 0", o.width)
	case o.file != "" && o.batch != "":
		return o, errors.New("-file and -batch are mutually exclusive")
	}

	return o, nil
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	o, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.LevelFromString(o.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using warn\n", o.logLevel)
		level = logging.LevelWarn
	}
	logging.SetAllLoggers(level)
	if o.trace {
		_ = logging.SetLogLevel("driver", "debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, o, os.Stdin, os.Stdout); err != nil {
		log.Debugf("run failed: %v", err)
		fmt.Fprintln(os.Stdout, describe(err))
		stop()
		os.Exit(1)
	}
}

// run executes one invocation against the given streams.
func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer) error {
	piv, err := driver.ParsePivoting(o.pivot)
	if err != nil {
		return err
	}
	cfg := driver.Config{Pivoting: piv, Epsilon: o.eps, Trace: o.trace}
	rd := render.New(render.WithWidth(o.width), render.WithPrecision(o.precision))

	if o.file != "" || o.batch != "" {
		if cfg.Method, err = parseMethodOr(o.method, driver.GaussBack); err != nil {
			return err
		}
		return runFiles(ctx, o, cfg, rd, stdout)
	}

	p := input.NewPrompter(stdin, stdout)
	m, err := readSessionMatrix(o, p, rd, stdout)
	if err != nil {
		return err
	}

	if o.method != "" {
		cfg.Method, err = driver.ParseMethod(o.method)
	} else {
		var c byte
		if c, err = p.Choose(input.PromptMenu, "gjb"); err == nil {
			cfg.Method, err = driver.ParseMethod(string(c))
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	rep, err := driver.Run(ctx, cfg, "session", m)
	if err != nil {
		return err
	}

	return rep.Write(stdout, rd)
}

// readSessionMatrix loads the test matrix or prompts for one, echoing it back.
func readSessionMatrix(o options, p *input.Prompter, rd *render.Renderer, w io.Writer) (*matrix.Dense, error) {
	test := o.test
	if !o.testSet {
		var err error
		if test, err = p.Confirm(input.PromptTest); err != nil {
			return nil, err
		}
	}

	var m *matrix.Dense
	if test {
		m = input.TestMatrix()
		fmt.Fprintln(w, "Loaded default testing matrix. Default matrix:")
	} else {
		var err error
		if m, err = p.ReadMatrix(); err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Matrix input complete. Here is the entered matrix:")
	}
	if err := rd.Matrix(w, m); err != nil {
		return nil, err
	}
	fmt.Fprintln(w)

	return m, nil
}

func runFiles(ctx context.Context, o options, cfg driver.Config, rd *render.Renderer, w io.Writer) error {
	paths := []string{o.file}
	if o.batch != "" {
		var err error
		if paths, err = input.Glob(o.batch); err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("%s: no *.yaml or *.yml files", o.batch)
		}
	}

	var jobs []input.Named
	for _, path := range paths {
		named, err := input.LoadFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, named...)
	}

	reps, err := driver.RunBatch(ctx, cfg, o.jobs, jobs)
	if err != nil {
		return err
	}
	for k, rep := range reps {
		if k > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%dx%d, rank %d) ==\n", rep.Name, rep.Input.Rows(), rep.Input.Cols(), rep.Rank)
		if err = rep.Write(w, rd); err != nil {
			return err
		}
	}

	return nil
}

func parseMethodOr(s string, def driver.Method) (driver.Method, error) {
	if s == "" {
		return def, nil
	}

	return driver.ParseMethod(s)
}

// describe turns an error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, input.ErrBadDimension):
		return "Error: Expected integer value. Exiting..."
	case errors.Is(err, input.ErrBadEntry):
		return "Error: Expected double value. Exiting..."
	default:
		return "Error: " + err.Error()
	}
}
