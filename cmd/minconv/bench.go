// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/tropical/gen"
	"github.com/katalvlaran/tropical/minconv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 100 * time.Second
)

var benchConfig struct {
	maxSize int
	minSize int
	shape   string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time the naive and frontier routines on growing inputs",
	Long: `
For sizes minSize, 2·minSize, 4·minSize, ... below max-size, convolve
max-size/size random pairs of equal length with each routine and report
per-call latency quantiles. Both routines must agree on every value.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, err := parseShape(benchConfig.shape)
		if err != nil {
			return err
		}
		return runBench(cmd.OutOrStdout(), benchConfig.minSize, benchConfig.maxSize, shape, commonOptions()...)
	},
}

func init() {
	benchCmd.Flags().IntVar(
		&benchConfig.maxSize, "max-size", 10000, "exclusive upper bound on sequence length")
	benchCmd.Flags().IntVar(
		&benchConfig.minSize, "min-size", 10, "first sequence length")
	benchCmd.Flags().StringVar(
		&benchConfig.shape, "shape", gen.Uniform.String(), "value pattern: uniform, ascending, descending, plateau, zigzag")
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// parseShape maps a --shape value to a gen.Shape.
func parseShape(name string) (gen.Shape, error) {
	for _, s := range gen.Shapes {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, errors.Newf("unknown shape %q", name)
}

// benchRow is one (size, routine) measurement.
type benchRow struct {
	size, pairs int
	alg         minconv.Algorithm
	hist        *hdrhistogram.Histogram
}

// runBench times both routines and writes a table to w.
func runBench(w io.Writer, minSize, maxSize int, shape gen.Shape, opts ...minconv.Option) error {
	if minSize < 2 {
		return errors.Newf("min-size must be ≥ 2 (%d)", minSize)
	}
	if _, err := minconv.Resolve(opts...); err != nil {
		return err
	}

	rng := gen.NewRNG(seed)
	var rows []benchRow
	for size := minSize; size < maxSize; size *= 2 {
		pairs := gen.Workload(rng, maxSize/size, size, 1, 2, shape)
		results := make(map[minconv.Algorithm][][]float64, 2)
		for _, alg := range []minconv.Algorithm{minconv.Naive, minconv.Frontier} {
			hist := newHistogram()
			out := make([][]float64, len(pairs))
			callOpts := append(slices.Clone(opts), minconv.WithAlgorithm(alg))
			for i, p := range pairs {
				start := time.Now()
				c, err := minconv.MinConv(p.A, p.B, 2*size-1, callOpts...)
				elapsed := time.Since(start)
				if err != nil {
					return errors.Wrapf(err, "%s size=%d pair=%d", alg, size, i)
				}
				if err = hist.RecordValue(max(elapsed.Nanoseconds(), minLatency.Nanoseconds())); err != nil {
					return errors.Wrapf(err, "recording %s latency", alg)
				}
				out[i] = c
			}
			results[alg] = out
			rows = append(rows, benchRow{size: size, pairs: len(pairs), alg: alg, hist: hist})
		}
		for i := range pairs {
			if !slices.Equal(results[minconv.Naive][i], results[minconv.Frontier][i]) {
				return errors.AssertionFailedf("size=%d pair=%d: naive and frontier disagree", size, i)
			}
		}
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"size", "pairs", "algorithm", "mean(µs)", "p50(µs)", "p99(µs)", "max(µs)"})
	for _, r := range rows {
		tbl.Append([]string{
			fmt.Sprintf("%d", r.size),
			fmt.Sprintf("%d", r.pairs),
			r.alg.String(),
			micros(int64(r.hist.Mean())),
			micros(r.hist.ValueAtQuantile(50)),
			micros(r.hist.ValueAtQuantile(99)),
			micros(r.hist.Max()),
		})
	}
	tbl.Render()

	return nil
}

func micros(ns int64) string {
	return fmt.Sprintf("%.1f", time.Duration(ns).Seconds()*1e6)
}
