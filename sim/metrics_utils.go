package sim

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary holds derived figures computed from a RunStatistics.
type Summary struct {
	MeanWait        float64 `json:"mean_wait" yaml:"mean_wait"`
	P50Wait         float64 `json:"p50_wait" yaml:"p50_wait"`
	P90Wait         float64 `json:"p90_wait" yaml:"p90_wait"`
	P99Wait         float64 `json:"p99_wait" yaml:"p99_wait"`
	MaxWait         float64 `json:"max_wait" yaml:"max_wait"`
	MeanSojourn     float64 `json:"mean_sojourn" yaml:"mean_sojourn"`
	DropRatio       float64 `json:"drop_ratio" yaml:"drop_ratio"`
	Throughput      float64 `json:"throughput" yaml:"throughput"`
	MeanQueueLength float64 `json:"mean_queue_length" yaml:"mean_queue_length"`
	MaxQueueLength  int     `json:"max_queue_length" yaml:"max_queue_length"`
}

// Summarize computes the derived figures. Safe for runs with no completions
// or no arrivals: the affected fields are zero.
func (s RunStatistics) Summarize() Summary {
	var sum Summary
	if len(s.WaitTimes) > 0 {
		sorted := slices.Clone(s.WaitTimes)
		slices.Sort(sorted)
		sum.MeanWait = stat.Mean(sorted, nil)
		sum.P50Wait = stat.Quantile(0.50, stat.Empirical, sorted, nil)
		sum.P90Wait = stat.Quantile(0.90, stat.Empirical, sorted, nil)
		sum.P99Wait = stat.Quantile(0.99, stat.Empirical, sorted, nil)
		sum.MaxWait = sorted[len(sorted)-1]
	}
	if len(s.SojournTimes) > 0 {
		sum.MeanSojourn = stat.Mean(s.SojournTimes, nil)
	}
	if s.ArrivalCount > 0 {
		sum.DropRatio = float64(s.DroppedCount) / float64(s.ArrivalCount)
	}
	if s.EndTime > 0 {
		sum.Throughput = float64(s.CompletedCount) / s.EndTime
	}
	sum.MeanQueueLength = timeWeightedQueueLength(s.QueueLengthSamples, s.EndTime)
	for _, q := range s.QueueLengthSamples {
		sum.MaxQueueLength = max(sum.MaxQueueLength, q.Length)
	}
	return sum
}

// timeWeightedQueueLength integrates the sampled queue length as a step
// function over [0, end]. The line is empty before the first sample.
func timeWeightedQueueLength(samples []QueueSample, end float64) float64 {
	if len(samples) == 0 || end <= 0 {
		return 0
	}
	values := make([]float64, 0, len(samples))
	weights := make([]float64, 0, len(samples))
	for i, q := range samples {
		next := end
		if i+1 < len(samples) {
			next = samples[i+1].Time
		}
		if next > q.Time {
			values = append(values, float64(q.Length))
			weights = append(weights, next-q.Time)
		}
	}
	if len(values) == 0 {
		return 0
	}
	// stat.Mean normalizes by the summed weights; rescale to the full window
	// so the leading empty interval counts as zero.
	covered := 0.0
	for _, w := range weights {
		covered += w
	}
	return stat.Mean(values, weights) * covered / end
}
