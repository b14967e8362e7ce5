package display

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/statistics"
)

func result(t *testing.T, group string, op benchmark.Operation, variant string, size int, samples ...float64) benchmark.Result {
	t.Helper()
	stats, err := statistics.Calculate(samples)
	require.NoError(t, err)
	return benchmark.Result{
		Case: benchmark.Case{
			Group:     group,
			Operation: op,
			Variant:   benchmark.Variant{Name: variant},
			Size:      size,
			Samples:   len(samples),
		},
		Stats:      stats,
		Throughput: 1e9 / stats.Median,
	}
}

func sampleReport(t *testing.T) Report {
	return Report{
		RunID:     "01J0000000000000000000TEST",
		Started:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		GoVersion: "go1.25.3",
		Platform:  "linux/amd64",
		Results: []benchmark.Result{
			result(t, "G1", benchmark.OpDigest, "A", 16, 10, 11, 12),
			result(t, "G1", benchmark.OpDigest, "A", 256, 20, 21, 22),
			result(t, "G1", benchmark.OpDigest, "B", 16, 5, 6, 7),
			result(t, "G1", benchmark.OpDigest, "B", 256, 40, 41, 42),
			result(t, "G2", benchmark.OpUint64, "A", 0, 1, 1, 2),
		},
	}
}

func TestGrouped(t *testing.T) {
	groups := Grouped(sampleReport(t).Results)
	require.Len(t, groups, 2)

	assert.Equal(t, "G1", groups[0].Name)
	assert.Equal(t, benchmark.OpDigest, groups[0].Operation)
	assert.Len(t, groups[0].Results, 4)
	assert.Equal(t, "G2", groups[1].Name)
	assert.Len(t, groups[1].Results, 1)

	order := lo.Map(groups[0].Results, func(r benchmark.Result, _ int) string { return r.Case.Name() })
	assert.Equal(t, []string{"G1/A@16 B", "G1/A@256 B", "G1/B@16 B", "G1/B@256 B"}, order)
}

func TestComparisons(t *testing.T) {
	groups := Grouped(sampleReport(t).Results)

	rows := groups[0].Comparisons()
	require.Len(t, rows, 2)
	assert.Equal(t, "A vs B @16 B", rows[0].Label())
	assert.Equal(t, "A vs B @256 B", rows[1].Label())
	assert.InDelta(t, 11.0/6.0, rows[0].Comparison.Speedup, 1e-9)
	assert.False(t, rows[1].Comparison.HasOverlap)

	assert.Empty(t, groups[1].Comparisons(), "single variant has nothing to compare")
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat("text")
	require.NoError(t, err)
	assert.IsType(t, TextRenderer{}, r)

	r, err = ForFormat("md")
	require.NoError(t, err)
	assert.IsType(t, MarkdownRenderer{}, r)

	_, err = ForFormat("html")
	assert.ErrorIs(t, err, benchmark.ErrConfig)
}

func TestRendererFunc(t *testing.T) {
	var seen Report
	var r Renderer = RendererFunc(func(w io.Writer, report Report) error {
		seen = report
		_, err := io.WriteString(w, report.RunID)
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Report{RunID: "run"}))
	assert.Equal(t, "run", buf.String())
	assert.Equal(t, "run", seen.RunID)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextRenderer{}.Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "run 01J0000000000000000000TEST")
	assert.Contains(t, out, "G1 (digest, 3 samples per case)")
	assert.Contains(t, out, "G2 (uint64, 3 samples per case)")
	assert.Contains(t, out, "Statistical Comparisons (vs A):")
	assert.Contains(t, out, "A vs B @256 B")
	assert.Contains(t, out, "5 cases completed.")
	assert.Less(t, strings.Index(out, "G1 ("), strings.Index(out, "G2 ("))
	assert.Equal(t, 1, strings.Count(out, "Statistical Comparisons"))
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownRenderer{}.Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Hash & PRNG Benchmark"))
	assert.Contains(t, out, "## G1")
	assert.Contains(t, out, "## G2")
	assert.Contains(t, out, "| Variant")
	assert.Contains(t, out, "A vs B @16 B")
	assert.Less(t, strings.Index(out, "## G1"), strings.Index(out, "## G2"))
}

func TestCases(t *testing.T) {
	var buf bytes.Buffer
	cases := []benchmark.Case{
		{Group: "u64_generation", Operation: benchmark.OpUint64, Variant: benchmark.Variant{Name: "pcg64"}, Samples: 10, SampleSize: 1},
		{Group: "u64_generation", Operation: benchmark.OpUint64, Variant: benchmark.Variant{Name: "chacha8"}, Samples: 10},
	}
	require.NoError(t, Cases(&buf, cases))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "u64_generation/pcg64")
	assert.Contains(t, lines[0], "samples=10 sample-size=1 warmup=0")
	assert.Contains(t, lines[1], "samples=10 sample-size=auto warmup=0")
}

func TestFormatNanos(t *testing.T) {
	assert.Equal(t, "12.50 ns", FormatNanos(12.5))
	assert.Equal(t, "1.500 µs", FormatNanos(1500))
	assert.Equal(t, "2.000 ms", FormatNanos(2e6))
	assert.Equal(t, "3.000 s", FormatNanos(3e9))
}
