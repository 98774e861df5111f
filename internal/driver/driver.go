// SPDX-License-Identifier: MIT

// Package driver runs the selected reduction method on a matrix, times it,
// and collects the results into a Report.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/rref/echelon"
	"github.com/katalvlaran/rref/internal/render"
	"github.com/katalvlaran/rref/matrix"
)

var log = logging.Logger("driver")

// residualWarn is the largest |A·A⁻¹ - I| entry accepted without a warning.
const residualWarn = 1e-6

// Config is the per-run configuration.
type Config struct {
	Method   Method
	Pivoting echelon.Pivoting
	Epsilon  float64
	// Trace logs every elementary operation at debug level.
	Trace bool
}

// DefaultConfig runs Gauss followed by Back reduction with the echelon defaults.
func DefaultConfig() Config {
	return Config{
		Method:   GaussBack,
		Pivoting: echelon.DefaultPivoting,
		Epsilon:  echelon.DefaultEpsilon,
	}
}

// Phase is the outcome of one method.
type Phase struct {
	Method Method
	// REF is the intermediate echelon form; nil for GaussJordan.
	REF  *matrix.Dense
	RREF *matrix.Dense
	// GaussOps and BackOps split Ops for GaussBack; Ops alone for GaussJordan.
	GaussOps int
	BackOps  int
	Ops      int
	Elapsed  time.Duration
}

// Report gathers the phases of one run.
type Report struct {
	ID     uuid.UUID
	Name   string
	Input  *matrix.Dense
	Rank   int
	Phases []Phase
	// Inverse is set for square input of full rank.
	Inverse *matrix.Dense
	// Residual is the largest |(A·A⁻¹ - I)ᵢⱼ|; zero when Inverse is nil.
	Residual float64
}

// Run reduces a copy of m with the configured method. m itself is never
// modified. With Both, each method starts from the original input.
func Run(ctx context.Context, cfg Config, name string, m matrix.Matrix) (*Report, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		ID:    uuid.New(),
		Name:  name,
		Input: d.Clone().(*matrix.Dense),
	}
	base := []echelon.Option{
		echelon.WithEpsilon(cfg.Epsilon),
		echelon.WithPivoting(cfg.Pivoting),
	}
	eff := echelon.NewOptions(base...)
	log.Debugf("run %s: %q %dx%d method=%s pivot=%s eps=%g",
		rep.ID, name, d.Rows(), d.Cols(), cfg.Method, eff.Pivoting(), eff.Epsilon())

	var methods []Method
	switch cfg.Method {
	case GaussBack, GaussJordan:
		methods = []Method{cfg.Method}
	case Both:
		methods = []Method{GaussBack, GaussJordan}
	default:
		return nil, fmt.Errorf("%s: %w", cfg.Method, ErrUnknownMethod)
	}

	for _, meth := range methods {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		ph, err := runPhase(cfg, base, rep, meth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", meth, err)
		}
		rep.Phases = append(rep.Phases, ph)
	}

	if rep.Rank, err = echelon.Rank(rep.Input, echelon.WithEpsilon(eff.Epsilon())); err != nil {
		return nil, err
	}
	if d.Rows() == d.Cols() && rep.Rank == d.Rows() {
		if err = rep.invert(base); err != nil {
			return nil, err
		}
	}
	log.Infof("run %s: %q done, rank %d", rep.ID, name, rep.Rank)

	return rep, nil
}

func runPhase(cfg Config, base []echelon.Option, rep *Report, meth Method) (Phase, error) {
	opts := base[:len(base):len(base)]
	if cfg.Trace {
		opts = append(opts, echelon.WithRecorder(func(s echelon.Step) {
			log.Debugf("run %s: %s: %s", rep.ID, meth, s)
		}))
	}

	work := rep.Input.Clone().(*matrix.Dense)
	ph := Phase{Method: meth}
	var c echelon.Counter

	switch meth {
	case GaussBack:
		start := time.Now()
		if err := echelon.GaussReduce(work, &c, opts...); err != nil {
			return ph, err
		}
		ph.Elapsed = time.Since(start)
		ph.GaussOps = c.Count()
		ph.REF = work.Clone().(*matrix.Dense)

		start = time.Now()
		if err := echelon.BackReduce(work, &c, opts...); err != nil {
			return ph, err
		}
		ph.Elapsed += time.Since(start)
		ph.BackOps = c.Count()
		ph.Ops = ph.GaussOps + ph.BackOps
	case GaussJordan:
		start := time.Now()
		if err := echelon.GaussJordanReduce(work, &c, opts...); err != nil {
			return ph, err
		}
		ph.Elapsed = time.Since(start)
		ph.Ops = c.Count()
	}
	ph.RREF = work

	if ok, err := echelon.IsRREF(work, echelon.WithEpsilon(cfg.Epsilon)); err != nil {
		return ph, err
	} else if !ok && work.Rows() > 1 {
		log.Warnf("run %s: %s result is not in RREF:\n%s", rep.ID, meth, work)
	}
	log.Debugf("run %s: %s took %d row operation(s) in %s", rep.ID, meth, ph.Ops, ph.Elapsed)

	return ph, nil
}

// invert fills Inverse and Residual. An inverse the tolerance still rejects
// leaves both unset.
func (r *Report) invert(opts []echelon.Option) error {
	inv, err := echelon.Inverse(r.Input, opts...)
	if errors.Is(err, echelon.ErrSingular) {
		log.Warnf("run %s: full rank but no inverse within tolerance", r.ID)
		return nil
	}
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(r.Input, inv)
	if err != nil {
		return err
	}

	var worst float64
	for i, row := range prod.ToRows() {
		for j, v := range row {
			if i == j {
				v--
			}
			worst = math.Max(worst, math.Abs(v))
		}
	}
	r.Inverse, r.Residual = inv, worst
	if worst > residualWarn {
		log.Warnf("run %s: inverse residual %g", r.ID, worst)
	} else {
		log.Debugf("run %s: inverse residual %g", r.ID, worst)
	}

	return nil
}

// Write prints the report the way the interactive session shows it.
func (r *Report) Write(w io.Writer, rd *render.Renderer) error {
	for k, ph := range r.Phases {
		if k > 0 {
			fmt.Fprintln(w)
		}
		var err error
		switch ph.Method {
		case GaussBack:
			err = writeGaussBack(w, rd, ph)
		case GaussJordan:
			err = writeGaussJordan(w, rd, ph)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func writeGaussBack(w io.Writer, rd *render.Renderer, ph Phase) error {
	fmt.Fprintln(w, "Using Gauss Reduction followed by Back Reduction...")
	fmt.Fprintln(w, "REF of matrix:")
	if err := rd.Matrix(w, ph.REF); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RREF of matrix:")
	if err := rd.Matrix(w, ph.RREF); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Time elapsed for Gauss & Back reduction: %dms\n", ph.Elapsed.Milliseconds())
	_, err := fmt.Fprintf(w, "Gauss & Back reduction took %d row operation(s)\n", ph.Ops)

	return err
}

func writeGaussJordan(w io.Writer, rd *render.Renderer, ph Phase) error {
	fmt.Fprintln(w, "Using Gauss-Jordan Reduction...")
	fmt.Fprintln(w, "RREF of matrix:")
	if err := rd.Matrix(w, ph.RREF); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Time elapsed for Gauss-Jordan reduction: %dms\n", ph.Elapsed.Milliseconds())
	_, err := fmt.Fprintf(w, "Gauss-Jordan reduction took %d row operation(s)\n", ph.Ops)

	return err
}
