package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
)

const (
	SummaryFile = "summary.csv"
	SamplesFile = "samples.csv"
)

// ToDir writes the summary and raw sample CSVs into dir, creating it if needed.
func ToDir(results []benchmark.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create export directory")
	}
	if err := SummaryToCSV(results, filepath.Join(dir, SummaryFile)); err != nil {
		return err
	}
	return RawSamplesToCSV(results, filepath.Join(dir, SamplesFile))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// SummaryToCSV exports one row of summary statistics per case, for plotting.
// Times are nanoseconds per operation.
func SummaryToCSV(results []benchmark.Result, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Group", "Variant", "SizeBytes", "Samples", "SampleSize", "MedianNs", "MeanNs", "StdDevNs", "MinNs", "MaxNs", "P95Ns", "CV_Percent", "Throughput", "ThroughputUnit"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, r := range results {
		s := r.Stats
		row := []string{
			r.Case.Group,
			r.Case.Variant.Name,
			strconv.Itoa(r.Case.Size),
			strconv.Itoa(len(s.Values)),
			strconv.Itoa(r.Case.SampleSize),
			formatFloat(s.Median),
			formatFloat(s.Mean),
			formatFloat(s.StdDev),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.P95),
			formatFloat(s.CV),
			formatFloat(r.Throughput),
			r.ThroughputUnit(),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// RawSamplesToCSV exports every individual sample for detailed analysis.
func RawSamplesToCSV(results []benchmark.Result, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	maxSamples := 0
	for _, r := range results {
		if len(r.Stats.Values) > maxSamples {
			maxSamples = len(r.Stats.Values)
		}
	}

	// Header row: Group, Variant, SizeBytes, Sample1, ..., SampleN
	header := []string{"Group", "Variant", "SizeBytes"}
	for i := 1; i <= maxSamples; i++ {
		header = append(header, fmt.Sprintf("Sample%d", i))
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, r := range results {
		row := []string{r.Case.Group, r.Case.Variant.Name, strconv.Itoa(r.Case.Size)}
		for _, v := range r.Stats.Values {
			row = append(row, formatFloat(v))
		}

		// Pad with empty strings if this case has fewer samples
		for len(row) < len(header) {
			row = append(row, "")
		}

		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV")
	}
	return nil
}
