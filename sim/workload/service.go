package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// DurationSampler generates service durations.
type DurationSampler interface {
	// SampleDuration returns how long one request occupies a server.
	SampleDuration(rng *rand.Rand) float64
}

// UniformSampler draws service durations uniformly from [min, max].
type UniformSampler struct {
	min, max float64
}

// NewUniformSampler creates a sampler over [min, max].
// Requires 0 < min <= max, both finite.
func NewUniformSampler(min, max float64) (*UniformSampler, error) {
	if !(min > 0) || math.IsInf(max, 0) || math.IsNaN(max) || max < min {
		return nil, fmt.Errorf("uniform sampler: need 0 < min <= max, got [%v, %v]", min, max)
	}
	return &UniformSampler{min: min, max: max}, nil
}

// Bounds returns the sampler's range.
func (s *UniformSampler) Bounds() (min, max float64) {
	return s.min, s.max
}

func (s *UniformSampler) SampleDuration(rng *rand.Rand) float64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + (s.max-s.min)*rng.Float64()
}

// ConstantSampler always returns the same value. Useful for deterministic
// service in tests and what-if runs.
type ConstantSampler struct {
	Value float64
}

func (s ConstantSampler) SampleInterval(_ *rand.Rand) float64 { return s.Value }

func (s ConstantSampler) SampleDuration(_ *rand.Rand) float64 { return s.Value }
