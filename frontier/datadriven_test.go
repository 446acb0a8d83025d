package frontier_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/katalvlaran/tropical/frontier"
	"github.com/katalvlaran/tropical/rank"
)

// parseSeq reads a "name: v0 v1 ..." line.
func parseSeq(t *testing.T, line string) (string, []float64) {
	t.Helper()
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		t.Fatalf("malformed input line %q", line)
	}
	var out []float64
	for _, f := range strings.Fields(rest) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		out = append(out, v)
	}

	return strings.TrimSpace(name), out
}

func TestFrontier_Trace(t *testing.T) {
	datadriven.RunTest(t, "testdata/trace", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "convolve":
			var size int
			td.ScanArgs(t, "size", &size)
			ratio := frontier.DefaultFallbackRatio
			var ratioArg string
			td.MaybeScanArgs(t, "ratio", &ratioArg)
			if ratioArg != "" {
				var err error
				if ratio, err = strconv.ParseFloat(ratioArg, 64); err != nil {
					t.Fatal(err)
				}
			}

			seqs := map[string][]float64{}
			for _, line := range strings.Split(strings.TrimSpace(td.Input), "\n") {
				name, s := parseSeq(t, line)
				seqs[name] = s
			}
			a, b := seqs["a"], seqs["b"]
			va, vb := rank.NewView(a), rank.NewView(b)

			var buf strings.Builder
			seen := make([]bool, size)
			var stats frontier.Stats
			c, idx, err := frontier.ConvolveIndex(a, b, size,
				frontier.WithFallbackRatio(ratio),
				frontier.WithStats(&stats),
				frontier.WithOnPop(func(cell frontier.Cell) {
					fmt.Fprintf(&buf, "pop (%d,%d) k=%d v=%v", cell.I, cell.J, cell.K,
						va[cell.I].Value+vb[cell.J].Value)
					if cell.K < size && !seen[cell.K] {
						seen[cell.K] = true
						buf.WriteString(" fill")
					}
					buf.WriteString("\n")
				}),
				frontier.WithOnFallback(func(open, queued int) {
					fmt.Fprintf(&buf, "fallback open=%d queued=%d\n", open, queued)
				}),
			)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			fmt.Fprintf(&buf, "c: %s\n", join(c))
			fmt.Fprintf(&buf, "i: %s\n", join(idx))
			fmt.Fprintf(&buf, "pops=%d pushes=%d skips=%d maxqueue=%d fallback=%t slots=%d\n",
				stats.Pops, stats.Pushes, stats.Skips, stats.MaxQueue, stats.FellBack, stats.FallbackSlots)

			return buf.String()

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func join[S ~[]E, E any](s S) string {
	parts := make([]string, len(s))
	for i := range s {
		parts[i] = fmt.Sprint(s[i])
	}

	return strings.Join(parts, " ")
}
