package workload

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialSampler_MeanConverges(t *testing.T) {
	// GIVEN an exponential sampler with mean 2
	s, err := NewExponentialSampler(2)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	// WHEN 100k intervals are drawn
	n := 100_000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := s.SampleInterval(rng)
		require.GreaterOrEqual(t, v, 0.0)
		require.False(t, math.IsInf(v, 0))
		sum += v
	}

	// THEN the sample mean is within 2% of the configured mean
	assert.InDelta(t, 2.0, sum/float64(n), 0.04)
	assert.Equal(t, 2.0, s.Mean())
}

func TestExponentialSampler_InverseCDF(t *testing.T) {
	s, err := NewExponentialSampler(3)
	require.NoError(t, err)

	u := rand.New(rand.NewSource(7)).Float64()
	want := -math.Log(1-u) * 3
	assert.Equal(t, want, s.SampleInterval(rand.New(rand.NewSource(7))))
}

func TestExponentialSampler_SameSeedSameSequence(t *testing.T) {
	s, _ := NewExponentialSampler(1.5)
	r1 := rand.New(rand.NewSource(99))
	r2 := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t, s.SampleInterval(r1), s.SampleInterval(r2))
	}
}

func TestNewExponentialSampler_InvalidMean(t *testing.T) {
	for _, mean := range []float64{0, -1, math.Inf(1), math.NaN()} {
		s, err := NewExponentialSampler(mean)
		assert.Nil(t, s, "mean=%v", mean)
		assert.Error(t, err, "mean=%v", mean)
	}
}
