// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/tropical/gen"
	"github.com/katalvlaran/tropical/minconv"
	"github.com/spf13/cobra"
)

var checkConfig struct {
	trials  int
	minLen  int
	maxLen  int
	workers int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "cross-check the naive and frontier routines",
	Long: `
Convolve a fixed reversed input and a series of random pairs with both
routines. Values must match exactly and every witness must reproduce its
slot: A[I[k]] + B[k-I[k]] == C[k].
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := append(commonOptions(), minconv.WithWorkers(checkConfig.workers))
		return runCheck(cmd.Context(), cmd.OutOrStdout(),
			checkConfig.trials, checkConfig.minLen, checkConfig.maxLen, opts...)
	},
}

func init() {
	checkCmd.Flags().IntVarP(
		&checkConfig.trials, "trials", "n", 1000, "number of random pairs")
	checkCmd.Flags().IntVar(
		&checkConfig.minLen, "min-len", 2, "shortest random sequence")
	checkCmd.Flags().IntVar(
		&checkConfig.maxLen, "max-len", 100, "longest random sequence")
	checkCmd.Flags().IntVarP(
		&checkConfig.workers, "workers", "w", runtime.GOMAXPROCS(0), "concurrent convolutions")
}

// reversedInput is the fixed input of the check: A and its reverse.
func reversedInput() gen.Pair {
	a := []float64{0.1, 0.2, 0.05, 1}
	b := slices.Clone(a)
	slices.Reverse(b)

	return gen.Pair{A: a, B: b}
}

// runCheck runs both routines over the fixed and random inputs and writes a
// summary to w. Any disagreement is an error.
func runCheck(ctx context.Context, w io.Writer, trials, minLen, maxLen int, opts ...minconv.Option) error {
	if minLen < 2 || maxLen < minLen {
		return errors.Newf("need 2 ≤ min-len ≤ max-len (got %d, %d)", minLen, maxLen)
	}
	if trials < 0 {
		return errors.Newf("trials must be ≥ 0 (%d)", trials)
	}

	pairs := append([]gen.Pair{reversedInput()},
		gen.Trials(gen.NewRNG(seed), trials, minLen, maxLen, 1, 2, gen.Uniform)...)
	jobs := make([]minconv.Job[float64], len(pairs))
	for i, p := range pairs {
		jobs[i] = minconv.Job[float64]{A: p.A, B: p.B}
	}

	naiveRes, err := minconv.Batch(ctx, jobs, append(slices.Clone(opts), minconv.WithAlgorithm(minconv.Naive))...)
	if err != nil {
		return errors.Wrap(err, "naive")
	}
	frontierRes, err := minconv.Batch(ctx, jobs, append(slices.Clone(opts), minconv.WithAlgorithm(minconv.Frontier))...)
	if err != nil {
		return errors.Wrap(err, "frontier")
	}

	var mismatches int
	for i, job := range jobs {
		name := fmt.Sprintf("random #%d", i)
		if i == 0 {
			name = "reversed"
		}
		if msg := compare(job, naiveRes[i], frontierRes[i]); msg != "" {
			mismatches++
			fmt.Fprintf(w, "%s (n=%d m=%d): %s\n", name, len(job.A), len(job.B), msg)
		}
	}
	fmt.Fprintf(w, "checked reversed input and %d random pairs (len %d..%d, seed %d): %d mismatches\n",
		trials, minLen, maxLen, seed, mismatches)
	if mismatches > 0 {
		return errors.Newf("%d of %d inputs disagree", mismatches, len(jobs))
	}

	return nil
}

// compare returns "" when both results agree and every witness holds.
func compare(job minconv.Job[float64], n, f minconv.Result[float64]) string {
	if !slices.Equal(n.C, f.C) {
		return "values differ"
	}
	for _, r := range []minconv.Result[float64]{n, f} {
		for k, i := range r.Index {
			if i < 0 || i >= len(job.A) || k-i < 0 || k-i >= len(job.B) || job.A[i]+job.B[k-i] != r.C[k] {
				return fmt.Sprintf("bad witness %d for slot %d", i, k)
			}
		}
	}

	return ""
}
