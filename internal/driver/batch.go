// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rref/internal/input"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs every job with at most jobs reductions in flight (no limit
// when jobs <= 0). Reports come back in input order. The first failure
// cancels the jobs that have not started yet.
func RunBatch(ctx context.Context, cfg Config, jobs int, in []input.Named) ([]*Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	log.Infof("batch: %d matrices, %d jobs", len(in), jobs)

	out := make([]*Report, len(in))
	for i, job := range in {
		i, job := i, job
		g.Go(func() error {
			rep, err := Run(ctx, cfg, job.Name, job.M)
			if err != nil {
				log.Errorf("batch: %q: %v", job.Name, err)
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			out[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
