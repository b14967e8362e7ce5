package display

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/statistics"
)

// Report is everything a renderer needs for one run.
type Report struct {
	RunID     string
	Started   time.Time
	GoVersion string
	Platform  string
	Results   []benchmark.Result
}

// Renderer writes a report to w. Renderers have no other side effects.
type Renderer interface {
	Render(w io.Writer, report Report) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, report Report) error

func (fn RendererFunc) Render(w io.Writer, report Report) error {
	return fn(w, report)
}

// ForFormat returns the renderer for a format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return TextRenderer{}, nil
	case "markdown", "md":
		return MarkdownRenderer{}, nil
	}
	return nil, benchmark.ConfigError("unknown report format %q", format)
}

// GroupResults is one benchmark group's results in enumeration order.
type GroupResults struct {
	Name      string
	Operation benchmark.Operation
	Results   []benchmark.Result
}

// Grouped splits results by group, keeping first-seen group order and the
// order of results within each group.
func Grouped(results []benchmark.Result) []GroupResults {
	names := lo.Uniq(lo.Map(results, func(r benchmark.Result, _ int) string { return r.Case.Group }))
	return lo.Map(names, func(name string, _ int) GroupResults {
		members := lo.Filter(results, func(r benchmark.Result, _ int) bool { return r.Case.Group == name })
		return GroupResults{Name: name, Operation: members[0].Case.Operation, Results: members}
	})
}

// Baseline returns the comparison reference for r: the group's first variant
// at the same size. ok is false when r is itself the reference.
func (g GroupResults) Baseline(r benchmark.Result) (benchmark.Result, bool) {
	base := g.Results[0].Case.Variant.Name
	if r.Case.Variant.Name == base {
		return benchmark.Result{}, false
	}
	return lo.Find(g.Results, func(b benchmark.Result) bool {
		return b.Case.Variant.Name == base && b.Case.Size == r.Case.Size
	})
}

// Comparisons pairs every non-reference result with its baseline.
func (g GroupResults) Comparisons() []ComparisonRow {
	var rows []ComparisonRow
	for _, r := range g.Results {
		base, ok := g.Baseline(r)
		if !ok {
			continue
		}
		rows = append(rows, ComparisonRow{
			Baseline:   base,
			Candidate:  r,
			Comparison: statistics.Compare(base.Stats, r.Stats),
		})
	}
	return rows
}

// ComparisonRow is one candidate measured against its group baseline.
type ComparisonRow struct {
	Baseline   benchmark.Result
	Candidate  benchmark.Result
	Comparison statistics.Comparison
}

// Label identifies the pair, with the size when the operation is sized.
func (c ComparisonRow) Label() string {
	label := fmt.Sprintf("%s vs %s", c.Baseline.Case.Variant.Name, c.Candidate.Case.Variant.Name)
	if c.Candidate.Case.Operation.Sized() {
		label += " @" + benchmark.FormatBytes(int64(c.Candidate.Case.Size))
	}
	return label
}

// FormatNanos renders a nanosecond value with an adaptive unit.
func FormatNanos(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.3f s", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.3f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.3f µs", ns/1e3)
	default:
		return fmt.Sprintf("%.2f ns", ns)
	}
}

func sizeLabel(r benchmark.Result) string {
	if !r.Case.Operation.Sized() {
		return "-"
	}
	return benchmark.FormatBytes(int64(r.Case.Size))
}

func throughputLabel(r benchmark.Result) string {
	return benchmark.FormatRate(r.Throughput, r.ThroughputUnit())
}
