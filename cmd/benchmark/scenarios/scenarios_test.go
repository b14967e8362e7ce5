package scenarios

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
)

func TestDefaultSuite(t *testing.T) {
	groups := Default()
	assert.Equal(t,
		[]string{"hash_comparison", "fast_hash", "u64_generation", "bytes_generation", "id_generation"},
		lo.Map(groups, func(g benchmark.Group, _ int) string { return g.Name }),
	)

	for _, g := range groups {
		assert.NoError(t, g.Validate(), g.Name)
	}

	cases, err := benchmark.Enumerate(groups)
	require.NoError(t, err)
	assert.Len(t, cases, 5*6+2*6+8+8*5+3)
}

func TestSampleCounts(t *testing.T) {
	assert.Equal(t, 100, HashComparison().Samples)
	assert.Equal(t, 10000, U64Generation().Samples)
	assert.Equal(t, 100, BytesGeneration().Samples)
	assert.Equal(t, 1000, IDGeneration().Samples)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 16, DigestSizes[0])
	assert.Equal(t, 8<<20, DigestSizes[len(DigestSizes)-1])
	assert.Equal(t, 1<<20, FillSizes[len(FillSizes)-1])
}
