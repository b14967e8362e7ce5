package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/moguls753/hashrng-benchmark/cmd/benchmark/scenarios"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/config"
	"github.com/moguls753/hashrng-benchmark/internal/display"
	"github.com/moguls753/hashrng-benchmark/internal/export"
	"github.com/moguls753/hashrng-benchmark/internal/runner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit code. The
// logger is synced on every path before returning.
func run(args []string, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		return 1
	}
	defer zap.ReplaceGlobals(logger)()

	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(out)

	err = cmd.Execute()
	if err != nil {
		zap.L().Error("Benchmark run failed", zap.Error(err))
	}
	_ = zap.L().Sync()
	_ = logger.Sync()

	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "benchmark",
		Short:         "Compare hash function and PRNG throughput across input sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("verbose") {
				logger, err := newLogger(cfg.Verbose)
				if err != nil {
					return err
				}
				zap.ReplaceGlobals(logger)
			}

			_, err := execute(cfg, cmd.OutOrStdout(), zap.L())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Filter, "filter", cfg.Filter, "run only groups containing this substring, or group/variant substrings")
	flags.StringToIntVar(&cfg.Samples, "samples", nil, "per-group sample count override, e.g. hash_comparison=50")
	flags.IntVar(&cfg.SampleSize, "sample-size", cfg.SampleSize, "iterations per timed sample; 0 calibrates each case")
	flags.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "untimed iterations before sampling each case")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "report format: text or markdown")
	flags.StringVar(&cfg.CSVDir, "csv-dir", cfg.CSVDir, "also write summary and raw sample CSVs to this directory")
	flags.BoolVar(&cfg.List, "list", false, "list the benchmark cases without running them")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log per-case timing details")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Sampling = nil
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

// execute builds the matrix, measures every case and writes the report to
// out. Nothing is written unless every case completed.
func execute(cfg config.Config, out io.Writer, logger *zap.Logger) ([]benchmark.Result, error) {
	groups, err := cfg.Apply(scenarios.Default())
	if err != nil {
		return nil, err
	}

	cases, err := benchmark.Enumerate(groups)
	if err != nil {
		return nil, err
	}

	if cfg.List {
		return nil, display.Cases(out, cases)
	}

	renderer, err := display.ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	runID := ulid.MustNew(ulid.Timestamp(started), ulid.Monotonic(rand.Reader, 0)).String()
	logger.Info("starting benchmark run",
		zap.String("run_id", runID),
		zap.Int("groups", len(groups)),
		zap.Int("cases", len(cases)),
	)

	results, err := runner.Run(cases, logger)
	if err != nil {
		return nil, err
	}

	report := display.Report{
		RunID:     runID,
		Started:   started,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Results:   results,
	}
	if err := renderer.Render(out, report); err != nil {
		return nil, err
	}

	if cfg.CSVDir != "" {
		if err := export.ToDir(results, cfg.CSVDir); err != nil {
			return nil, err
		}
		logger.Info("exported CSV", zap.String("dir", cfg.CSVDir))
	}

	logger.Info("benchmark run complete", zap.String("run_id", runID), zap.Duration("elapsed", time.Since(started)))
	return results, nil
}
