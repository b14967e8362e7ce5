package statistics

import (
	"math"
	"sort"
)

// MannWhitneyU performs a two-sided Mann-Whitney U test on two groups and
// returns the p-value from the normal approximation (no tie correction).
// H0: both groups come from the same distribution.
func MannWhitneyU(groupA, groupB []float64) float64 {
	if len(groupA) == 0 || len(groupB) == 0 {
		return 1.0
	}

	n1 := len(groupA)
	n2 := len(groupB)

	type rankItem struct {
		value float64
		fromA bool
	}

	combined := make([]rankItem, 0, n1+n2)
	for _, v := range groupA {
		combined = append(combined, rankItem{v, true})
	}
	for _, v := range groupB {
		combined = append(combined, rankItem{v, false})
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].value < combined[j].value
	})

	// Ties share the average of the ranks they span.
	rankSumA := 0.0
	for i := 0; i < len(combined); {
		j := i
		for j < len(combined) && combined[j].value == combined[i].value {
			j++
		}
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			if combined[k].fromA {
				rankSumA += avgRank
			}
		}
		i = j
	}

	u1 := rankSumA - float64(n1*(n1+1))/2.0
	u2 := float64(n1*n2) - u1
	u := math.Min(u1, u2)

	meanU := float64(n1*n2) / 2.0
	stdU := math.Sqrt(float64(n1*n2*(n1+n2+1)) / 12.0)
	if stdU == 0 {
		return 1.0
	}

	z := (u - meanU) / stdU
	return 2.0 * normalCDF(-math.Abs(z))
}

func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}

// Comparison summarises a candidate against a baseline.
type Comparison struct {
	MedianDiffPct float64 // (candidate - baseline) / baseline, in percent
	Speedup       float64 // baseline median / candidate median
	PValue        float64
	HasOverlap    bool
	Significant   bool // p < 0.05
}

// Compare performs statistical comparison between two sample sets.
func Compare(baseline, candidate Stats) Comparison {
	c := Comparison{
		PValue:     MannWhitneyU(baseline.Values, candidate.Values),
		HasOverlap: HasOverlap(baseline, candidate),
	}
	if baseline.Median != 0 {
		c.MedianDiffPct = (candidate.Median - baseline.Median) / baseline.Median * 100
	}
	if candidate.Median != 0 {
		c.Speedup = baseline.Median / candidate.Median
	}
	c.Significant = c.PValue < 0.05
	return c
}

// Significance renders the comparison as a short verdict.
func (c Comparison) Significance() string {
	switch {
	case !c.HasOverlap:
		return "No overlap"
	case c.PValue < 0.001:
		return "*** (p<0.001)"
	case c.PValue < 0.01:
		return "** (p<0.01)"
	case c.PValue < 0.05:
		return "* (p<0.05)"
	default:
		return "n.s."
	}
}
