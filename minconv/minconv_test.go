package minconv_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/tropical/core"
	"github.com/katalvlaran/tropical/gen"
	"github.com/katalvlaran/tropical/minconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps every line it receives.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

// forced lists both routines.
var forced = []minconv.Algorithm{minconv.Naive, minconv.Frontier}

// requireWitnesses checks A[I[k]] + B[k-I[k]] == C[k] for every slot.
func requireWitnesses[T core.Scalar](t *testing.T, a, b, c []T, idx []int) {
	t.Helper()
	require.Len(t, idx, len(c))
	for k := range c {
		i := idx[k]
		require.True(t, i >= 0 && i < len(a) && k-i >= 0 && k-i < len(b), "slot %d: witness %d", k, i)
		require.Equal(t, c[k], a[i]+b[k-i], "slot %d", k)
	}
}

func TestMinConv_Scenario(t *testing.T) {
	for _, alg := range forced {
		c, err := minconv.MinConv([]float64{1, 3}, []float64{2, 5}, 3, minconv.WithAlgorithm(alg))
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 5, 8}, c, alg.String())
	}
}

func TestMinConv_ReversedInput(t *testing.T) {
	a := []float64{0.1, 0.2, 0.05, 1}
	b := []float64{1, 0.05, 0.2, 0.1}

	cn, in, err := minconv.MinConvIndex(a, b, 7, minconv.WithAlgorithm(minconv.Naive))
	require.NoError(t, err)
	cf, inf, err := minconv.MinConvIndex(a, b, 7, minconv.WithAlgorithm(minconv.Frontier))
	require.NoError(t, err)
	assert.Equal(t, cn, cf)
	requireWitnesses(t, a, b, cn, in)
	requireWitnesses(t, a, b, cf, inf)
}

// TestMinConv_Fuzz is the 1000-trial equivalence run: lengths in [2,100],
// values in [1,2), seed 1, both routines, bit-for-bit equal values.
func TestMinConv_Fuzz(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1000-trial run in -short mode")
	}
	for trial, p := range gen.Trials(gen.NewRNG(1), 1000, 2, 100, 1, 2, gen.Uniform) {
		size := len(p.A) + len(p.B) - 1
		cn, in, err := minconv.MinConvIndex(p.A, p.B, size, minconv.WithAlgorithm(minconv.Naive))
		require.NoError(t, err)
		cf, inf, err := minconv.MinConvIndex(p.A, p.B, size, minconv.WithAlgorithm(minconv.Frontier))
		require.NoError(t, err)
		require.Equal(t, cn, cf, "trial %d", trial)
		requireWitnesses(t, p.A, p.B, cn, in)
		requireWitnesses(t, p.A, p.B, cf, inf)
	}
}

func TestMinConv_Totality(t *testing.T) {
	rng := gen.NewRNG(41)
	for _, p := range gen.Trials(rng, 30, 2, 60, 1, 2, gen.Zigzag) {
		size := gen.Length(rng, 1, len(p.A)+len(p.B)-1)
		for _, alg := range forced {
			c, err := minconv.MinConv(p.A, p.B, size, minconv.WithAlgorithm(alg))
			require.NoError(t, err)
			for k, v := range c {
				// Finite inputs give finite sums; an unfilled slot would read 0 or +Inf.
				require.False(t, math.IsInf(v, 0), "%s slot %d", alg, k)
				require.GreaterOrEqual(t, v, 2.0, "%s slot %d", alg, k)
			}
		}
	}
}

func TestMinConv_ResultSizeOne(t *testing.T) {
	a := []int32{6, -2, 9}
	b := []int32{-4, 1, 0, 3}
	for _, alg := range forced {
		c, err := minconv.MinConv(a, b, 1, minconv.WithAlgorithm(alg))
		require.NoError(t, err)
		assert.Equal(t, []int32{2}, c, alg.String())
	}
}

func TestMinConv_Idempotent(t *testing.T) {
	p := gen.Trials(gen.NewRNG(3), 1, 40, 80, 1, 2, gen.Plateau)[0]
	size := len(p.A) + len(p.B) - 1
	for _, alg := range forced {
		c1, i1, err := minconv.MinConvIndex(p.A, p.B, size, minconv.WithAlgorithm(alg))
		require.NoError(t, err)
		c2, i2, err := minconv.MinConvIndex(p.A, p.B, size, minconv.WithAlgorithm(alg))
		require.NoError(t, err)
		assert.Equal(t, c1, c2, alg.String())
		assert.Equal(t, i1, i2, alg.String())
	}
}

func TestMinConvInto_Sinks(t *testing.T) {
	a := []float64{2, 0, 5}
	b := []float64{1, 3}
	for _, alg := range forced {
		dst := make([]float64, 4)
		require.NoError(t, minconv.MinConvInto(dst, nil, a, b, minconv.WithAlgorithm(alg)))
		assert.Equal(t, []float64{3, 1, 3, 8}, dst)

		idx := make([]int, 4)
		require.NoError(t, minconv.MinConvInto(dst, idx, a, b, minconv.WithAlgorithm(alg)))
		requireWitnesses(t, a, b, dst, idx)

		err := minconv.MinConvInto(dst, idx[:3], a, b, minconv.WithAlgorithm(alg))
		assert.ErrorIs(t, err, core.ErrIndexSinkLength)
	}
}

// ------------------------------------------------------------------------
// Routing and options
// ------------------------------------------------------------------------

func TestOptions_Choose(t *testing.T) {
	cfg := minconv.DefaultOptions()
	assert.Equal(t, minconv.Naive, cfg.Choose(minconv.DefaultThreshold-1))
	assert.Equal(t, minconv.Frontier, cfg.Choose(minconv.DefaultThreshold))

	cfg, err := minconv.Resolve(minconv.WithThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, minconv.Frontier, cfg.Choose(1))

	cfg, err = minconv.Resolve(minconv.WithThreshold(10), minconv.WithAlgorithm(minconv.Naive))
	require.NoError(t, err)
	assert.Equal(t, minconv.Naive, cfg.Choose(1000))
}

func TestMinConv_ThresholdRouting(t *testing.T) {
	// The frontier falls back on these inputs at the default ratio, which the
	// logger observes; the naive loop never logs.
	p := gen.Workload(gen.NewRNG(1), 1, 30, 1, 2, gen.Uniform)[0]

	log := &recordingLogger{}
	_, err := minconv.MinConv(p.A, p.B, 59, minconv.WithThreshold(60), minconv.WithLogger(log))
	require.NoError(t, err)
	assert.Empty(t, log.infos, "size 59 < threshold 60 runs the naive loop")

	_, err = minconv.MinConv(p.A, p.B, 59, minconv.WithThreshold(59), minconv.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, log.infos, 1, "size 59 ≥ threshold 59 runs the frontier search")
	assert.Contains(t, log.infos[0], "minconv: frontier fallback")
}

func TestMinConv_OptionViolation(t *testing.T) {
	a, b := []float64{1, 2}, []float64{3, 4}
	bad := []minconv.Option{
		minconv.WithThreshold(-1),
		minconv.WithFallbackRatio(-0.5),
		minconv.WithFallbackRatio(math.NaN()),
		minconv.WithAlgorithm(minconv.Algorithm(7)),
		minconv.WithWorkers(0),
	}
	for i, opt := range bad {
		_, err := minconv.MinConv(a, b, 3, opt)
		assert.ErrorIs(t, err, minconv.ErrOptionViolation, "option %d", i)
	}
	assert.Equal(t, "algorithm(7)", minconv.Algorithm(7).String())

	// A nil logger keeps the default.
	cfg, err := minconv.Resolve(minconv.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, core.NoopLogger{}, cfg.Logger)
}

func TestMinConv_InputErrors(t *testing.T) {
	_, err := minconv.MinConv([]float64{1}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, core.ErrSequenceTooShort)

	_, _, err = minconv.MinConvIndex([]float64{1, 2}, []float64{1, 2}, 0)
	assert.ErrorIs(t, err, core.ErrResultSizeOutOfRange)

	_, err = minconv.MinConv([]float64{1, 2}, []float64{1, 2}, 4, minconv.WithAlgorithm(minconv.Frontier))
	assert.ErrorIs(t, err, core.ErrResultSizeOutOfRange)

	_, err = minconv.MinSum([]float64{1, 2}, []float64{1, 2}, 3)
	assert.ErrorIs(t, err, core.ErrDiagonalOutOfRange)
}

func TestArgMinSum(t *testing.T) {
	a := []float64{1, 3}
	b := []float64{2, 5}

	v, err := minconv.MinSum(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, i, j, err := minconv.ArgMinSum(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, [2]int{1, 0}, [2]int{i, j})
}
