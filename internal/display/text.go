package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
)

// TextRenderer draws one box table per group followed by the group's
// comparison table against its first variant.
type TextRenderer struct{}

var statColumns = []column{
	{"Variant", 20, true},
	{"Size", 9, false},
	{"Median", 11, false},
	{"Mean", 11, false},
	{"StdDev", 11, false},
	{"Min", 11, false},
	{"Max", 11, false},
	{"CV %", 6, false},
	{"Throughput", 14, false},
}

var comparisonColumns = []column{
	{"Comparison", 48, true},
	{"Median Diff", 11, false},
	{"Speedup", 8, false},
	{"p-value", 8, false},
	{"Overlap?", 8, true},
	{"Significant?", 13, true},
}

type column struct {
	title string
	width int
	left  bool
}

func (c column) pad(s string) string {
	if c.left {
		return fmt.Sprintf("%-*s", c.width, s)
	}
	return fmt.Sprintf("%*s", c.width, s)
}

func border(cols []column, left, mid, right string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strings.Repeat("─", c.width+2)
	}
	return left + strings.Join(parts, mid) + right
}

func row(cols []column, cells ...string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = " " + c.pad(cells[i]) + " "
	}
	return "│" + strings.Join(parts, "│") + "│"
}

func table(w io.Writer, cols []column, rows [][]string) {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	fmt.Fprintln(w, border(cols, "┌", "┬", "┐"))
	fmt.Fprintln(w, row(cols, titles...))
	fmt.Fprintln(w, border(cols, "├", "┼", "┤"))
	for _, cells := range rows {
		fmt.Fprintln(w, row(cols, cells...))
	}
	fmt.Fprintln(w, border(cols, "└", "┴", "┘"))
}

func (TextRenderer) Render(w io.Writer, report Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, strings.Repeat("=", 100))
	fmt.Fprintf(bw, "Hash & PRNG Benchmark - run %s\n", report.RunID)
	fmt.Fprintf(bw, "Started: %s   Go: %s   Platform: %s\n",
		report.Started.Format("2006-01-02 15:04:05"), report.GoVersion, report.Platform)
	fmt.Fprintln(bw, strings.Repeat("=", 100))

	for _, g := range Grouped(report.Results) {
		fmt.Fprintf(bw, "\n%s (%s, %d samples per case)\n", g.Name, g.Operation, g.Results[0].Case.Samples)

		rows := make([][]string, 0, len(g.Results))
		for _, r := range g.Results {
			s := r.Stats
			rows = append(rows, []string{
				r.Case.Variant.Name,
				sizeLabel(r),
				FormatNanos(s.Median),
				FormatNanos(s.Mean),
				FormatNanos(s.StdDev),
				FormatNanos(s.Min),
				FormatNanos(s.Max),
				fmt.Sprintf("%.1f", s.CV),
				throughputLabel(r),
			})
		}
		table(bw, statColumns, rows)

		comparisons := g.Comparisons()
		if len(comparisons) == 0 {
			continue
		}

		fmt.Fprintf(bw, "\nStatistical Comparisons (vs %s):\n", g.Results[0].Case.Variant.Name)
		rows = rows[:0]
		for _, c := range comparisons {
			overlap := "No"
			if c.Comparison.HasOverlap {
				overlap = "Yes"
			}
			rows = append(rows, []string{
				c.Label(),
				fmt.Sprintf("%+.1f%%", c.Comparison.MedianDiffPct),
				fmt.Sprintf("%.2fx", c.Comparison.Speedup),
				fmt.Sprintf("%.4f", c.Comparison.PValue),
				overlap,
				c.Comparison.Significance(),
			})
		}
		table(bw, comparisonColumns, rows)
	}

	fmt.Fprintf(bw, "\n%d cases completed.\n", len(report.Results))
	return bw.Flush()
}

// Cases prints the matrix without measuring, for --list.
func Cases(w io.Writer, cases []benchmark.Case) error {
	bw := bufio.NewWriter(w)
	for _, c := range cases {
		sampleSize := "auto"
		if c.SampleSize > 0 {
			sampleSize = strconv.Itoa(c.SampleSize)
		}
		fmt.Fprintf(bw, "%-50s samples=%d sample-size=%s warmup=%d\n", c.Name(), c.Samples, sampleSize, c.Warmup)
	}
	return bw.Flush()
}
