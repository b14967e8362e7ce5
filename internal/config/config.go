package config

import (
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
)

// Config is the run configuration. Environment variables provide defaults;
// command-line flags override them.
type Config struct {
	Format string `env:"HASHBENCH_FORMAT" envDefault:"text"`
	Filter string `env:"HASHBENCH_FILTER"`
	// SampleSize is the iterations per timed sample; 0 calibrates each case.
	SampleSize int    `env:"HASHBENCH_SAMPLE_SIZE" envDefault:"0"`
	Warmup     int    `env:"HASHBENCH_WARMUP" envDefault:"1"`
	CSVDir     string `env:"HASHBENCH_CSV_DIR"`
	Verbose    bool   `env:"HASHBENCH_VERBOSE"`

	// Samples overrides the sample count of the named groups.
	Samples map[string]int
	// List prints the matrix instead of running it.
	List bool
}


// Load reads the environment defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

// Validate checks settings that do not depend on the suite.
func (c Config) Validate() error {
	if !lo.Contains([]string{"text", "markdown", "md"}, c.Format) {
		return benchmark.ConfigError("unknown report format %q", c.Format)
	}
	if c.SampleSize < 0 {
		return benchmark.ConfigError("sample size must not be negative, got %d", c.SampleSize)
	}
	if c.Warmup < 0 {
		return benchmark.ConfigError("warmup must not be negative, got %d", c.Warmup)
	}
	for group, n := range c.Samples {
		if n <= 0 {
			return benchmark.ConfigError("sample count for group %q must be positive, got %d", group, n)
		}
	}
	return nil
}

// Apply narrows the suite to the filter and applies sample, sample-size and
// warmup settings. The filter is a substring of a group name, or
// "group/variant" with a substring on each side. A filter or override that
// matches nothing is a configuration error.
func (c Config) Apply(groups []benchmark.Group) ([]benchmark.Group, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	names := lo.Map(groups, func(g benchmark.Group, _ int) string { return g.Name })
	unknown := lo.Filter(lo.Keys(c.Samples), func(name string, _ int) bool { return !lo.Contains(names, name) })
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, benchmark.ConfigError("sample override for unknown groups %v", unknown)
	}

	groupFilter, variantFilter, _ := strings.Cut(c.Filter, "/")

	var selected []benchmark.Group
	for _, g := range groups {
		if !strings.Contains(g.Name, groupFilter) {
			continue
		}
		g.Variants = lo.Filter(g.Variants, func(v benchmark.Variant, _ int) bool {
			return strings.Contains(v.Name, variantFilter)
		})
		if len(g.Variants) == 0 {
			continue
		}
		if n, ok := c.Samples[g.Name]; ok {
			g.Samples = n
		}
		g.SampleSize = c.SampleSize
		g.Warmup = c.Warmup
		selected = append(selected, g)
	}

	if len(selected) == 0 {
		return nil, benchmark.ConfigError("filter %q matches no benchmark", c.Filter)
	}
	return selected, nil
}
