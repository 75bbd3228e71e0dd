package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ArrivalSampler generates inter-arrival intervals for the arrival process.
type ArrivalSampler interface {
	// SampleInterval returns the time until the next arrival.
	SampleInterval(rng *rand.Rand) float64
}

// ExponentialSampler generates exponentially-distributed inter-arrival
// intervals (a Poisson arrival process).
type ExponentialSampler struct {
	mean float64
}

// NewExponentialSampler creates a sampler with the given mean interval.
// Returns an error for a mean that is not strictly positive and finite.
func NewExponentialSampler(mean float64) (*ExponentialSampler, error) {
	if !(mean > 0) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("exponential sampler: mean must be a finite value > 0, got %v", mean)
	}
	return &ExponentialSampler{mean: mean}, nil
}

// Mean returns the configured mean interval.
func (s *ExponentialSampler) Mean() float64 {
	return s.mean
}

// SampleInterval draws by inverse CDF: -mean * ln(1 - U).
// 1-U lies in (0, 1], so the result is finite and >= 0.
func (s *ExponentialSampler) SampleInterval(rng *rand.Rand) float64 {
	u := rng.Float64()
	return -math.Log(1.0-u) * s.mean
}
