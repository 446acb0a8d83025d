// SPDX-License-Identifier: MIT

// Command minconv benchmarks and cross-checks the min-plus convolution
// routines of the tropical module.
//
//	minconv bench [--max-size N] [--shape S] [--threshold T] [--ratio R]
//	minconv check [--trials N] [--min-len L] [--max-len L] [--workers W]
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/tropical/core"
	"github.com/katalvlaran/tropical/minconv"
	"github.com/spf13/cobra"
)

var (
	seed    uint64
	verbose bool
	ratio   float64
)

var rootCmd = &cobra.Command{
	Use:   "minconv [command] (flags)",
	Short: "min-plus convolution benchmarking/verification tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		benchCmd,
		checkCmd,
	)

	rootCmd.PersistentFlags().Uint64Var(
		&seed, "seed", 1, "RNG seed for generated inputs")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log frontier fallbacks and job failures")
	rootCmd.PersistentFlags().Float64Var(
		&ratio, "ratio", minconv.DefaultOptions().FallbackRatio,
		"frontier fallback ratio (queue length / open slots); +Inf disables the fallback")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

// commonOptions turns the persistent flags into call options.
func commonOptions() []minconv.Option {
	opts := []minconv.Option{minconv.WithFallbackRatio(ratio)}
	if verbose {
		opts = append(opts, minconv.WithLogger(core.DefaultLogger{}))
	}

	return opts
}
