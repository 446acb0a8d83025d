// SPDX-License-Identifier: MIT

package minconv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/tropical/core"
	"golang.org/x/sync/errgroup"
)

// Job is one convolution of a batch. ResultSize 0 requests the full
// len(A)+len(B)-1 slots.
type Job[T core.Scalar] struct {
	A, B       []T
	ResultSize int
}

// Result is the output of one Job: its values and minimizing A-indices.
type Result[T core.Scalar] struct {
	C     []T
	Index []int
}

// Batch runs independent convolutions on at most Options.Workers goroutines
// and returns their results in job order.
//
// Every job owns its state, so jobs need no coordination. The first failing
// job cancels the rest; its error is returned wrapped with the job number
// and reported to the Logger. Cancelling ctx stops jobs that have not started
// and returns ctx's error.
//
// Complexity: the sum of the jobs' costs, spread over Workers goroutines.
func Batch[T core.Scalar](ctx context.Context, jobs []Job[T], opts ...Option) ([]Result[T], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]Result[T], len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			job := jobs[i]
			size := job.ResultSize
			if size == 0 {
				size = len(job.A) + len(job.B) - 1
			}
			c, idx, err := MinConvIndex(job.A, job.B, size, opts...)
			if err != nil {
				cfg.Logger.Errorf("minconv: job %d failed: %v", i, err)
				return errors.Wrapf(err, "job %d", i)
			}
			out[i] = Result[T]{C: c, Index: idx}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
