package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	s, err := Calculate(values)
	require.NoError(t, err)

	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 5.0, s.P95)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5)/3*100, s.CV, 1e-9)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, s.Values, "order of observations is kept")

	values[0] = 100
	assert.Equal(t, 5.0, s.Values[0], "input is copied")
}

func TestCalculateSingleValue(t *testing.T) {
	s, err := Calculate([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, s.Median)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.CV)
}

func TestCalculateEmpty(t *testing.T) {
	_, err := Calculate(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestMedianEven(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 0.0, Median(nil))
}

func TestPercentile(t *testing.T) {
	sorted := make([]float64, 100)
	for i := range sorted {
		sorted[i] = float64(i + 1)
	}
	assert.Equal(t, 95.0, Percentile(sorted, 95))
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 100.0, Percentile(sorted, 100))
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestHasOverlap(t *testing.T) {
	a := Stats{Min: 1, Max: 5}
	assert.True(t, HasOverlap(a, Stats{Min: 5, Max: 9}))
	assert.True(t, HasOverlap(a, Stats{Min: 2, Max: 3}))
	assert.False(t, HasOverlap(a, Stats{Min: 6, Max: 9}))
}
