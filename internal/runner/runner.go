package runner

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
)

// Run samples every case in order, one at a time. Sample counts are checked
// for all cases before the first measurement. Any error aborts the run and
// no partial results are returned.
func Run(cases []benchmark.Case, logger *zap.Logger) ([]benchmark.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cases) == 0 {
		return nil, benchmark.ConfigError("no benchmark cases to run")
	}
	for _, c := range cases {
		if c.Samples <= 0 {
			return nil, benchmark.ConfigError("%s: sample count must be positive, got %d", c.Name(), c.Samples)
		}
	}

	results := make([]benchmark.Result, 0, len(cases))
	for i, c := range cases {
		// Collect the previous case's garbage outside any measured region.
		runtime.GC()

		logger.Info("running case",
			zap.String("case", c.Name()),
			zap.Int("index", i+1),
			zap.Int("total", len(cases)),
			zap.Int("samples", c.Samples),
		)

		start := time.Now()
		result, err := Sample(c)
		if err != nil {
			return nil, errors.Wrapf(err, "run case %d/%d", i+1, len(cases))
		}

		logger.Debug("case complete",
			zap.String("case", c.Name()),
			zap.Duration("wall", time.Since(start)),
			zap.Int("sample_size", result.Case.SampleSize),
			zap.Float64("median_ns", result.Stats.Median),
		)
		results = append(results, result)
	}

	return results, nil
}
