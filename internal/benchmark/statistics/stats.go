package statistics

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrEmptySample is returned when asked to aggregate no observations.
var ErrEmptySample = errors.New("empty sample set")

// Stats holds summary measures of one sample set.
type Stats struct {
	Median float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P95    float64
	CV     float64 // Coefficient of Variation (%)
	Values []float64
}

// Median calculates the median of a slice of float64 values
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return medianSorted(sortedCopy(values))
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates the sample standard deviation
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}

// CV calculates the coefficient of variation (stddev/mean * 100)
func CV(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return (StdDev(values) / math.Abs(mean)) * 100
}

// Percentile returns the nearest-rank percentile p (0-100) of sorted values.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// Calculate computes all statistical measures for a slice of values.
// The input is copied; the caller may reuse it.
func Calculate(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptySample
	}

	sorted := sortedCopy(values)

	valuesCopy := make([]float64, len(values))
	copy(valuesCopy, values)

	return Stats{
		Median: medianSorted(sorted),
		Mean:   Mean(values),
		StdDev: StdDev(values),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P95:    Percentile(sorted, 95),
		CV:     CV(values),
		Values: valuesCopy,
	}, nil
}

// HasOverlap checks if two value ranges overlap
func HasOverlap(statsA, statsB Stats) bool {
	return !(statsA.Min > statsB.Max || statsB.Min > statsA.Max)
}
