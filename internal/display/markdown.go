package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fbiville/markdown-table-formatter/pkg/markdown"
	"github.com/pkg/errors"
)

// MarkdownRenderer writes one pretty-printed markdown table per group.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Render(w io.Writer, report Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Hash & PRNG Benchmark\n\n")
	fmt.Fprintf(bw, "Run: `%s`  \nStarted: %s  \nGo: %s (%s)\n",
		report.RunID, report.Started.Format("2006-01-02 15:04:05"), report.GoVersion, report.Platform)

	for _, g := range Grouped(report.Results) {
		lines := make([][]string, 0, len(g.Results))
		for _, r := range g.Results {
			s := r.Stats
			lines = append(lines, []string{
				r.Case.Variant.Name,
				sizeLabel(r),
				FormatNanos(s.Median),
				FormatNanos(s.Mean),
				FormatNanos(s.StdDev),
				FormatNanos(s.P95),
				fmt.Sprintf("%.1f", s.CV),
				throughputLabel(r),
			})
		}

		tbl, err := markdown.NewTableFormatterBuilder().
			WithPrettyPrint().
			Build("Variant", "Size", "Median", "Mean", "StdDev", "P95", "CV %", "Throughput").
			Format(lines)
		if err != nil {
			return errors.Wrapf(err, "format group %s", g.Name)
		}

		fmt.Fprintf(bw, "\n## %s\n\n%d samples per case, operation `%s`.\n\n%s",
			g.Name, g.Results[0].Case.Samples, g.Operation, tbl)

		comparisons := g.Comparisons()
		if len(comparisons) == 0 {
			continue
		}

		lines = lines[:0]
		for _, c := range comparisons {
			lines = append(lines, []string{
				c.Label(),
				fmt.Sprintf("%+.1f%%", c.Comparison.MedianDiffPct),
				fmt.Sprintf("%.2fx", c.Comparison.Speedup),
				fmt.Sprintf("%.4f", c.Comparison.PValue),
				c.Comparison.Significance(),
			})
		}
		tbl, err = markdown.NewTableFormatterBuilder().
			WithPrettyPrint().
			Build("Comparison", "Median Diff", "Speedup", "p-value", "Significance").
			Format(lines)
		if err != nil {
			return errors.Wrapf(err, "format comparisons for %s", g.Name)
		}
		fmt.Fprintf(bw, "\n%s", tbl)
	}

	return bw.Flush()
}
