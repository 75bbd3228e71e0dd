// Accumulates per-run statistics: completions, drops, wait times and
// queue-length observations.

package sim

import "fmt"

// QueueSample is one observation of the waiting-line length.
type QueueSample struct {
	Time   float64 `json:"time" yaml:"time"`
	Length int     `json:"length" yaml:"length"`
}

// RunStatistics is the immutable result of one run.
type RunStatistics struct {
	CompletedCount     int           `json:"completed_count" yaml:"completed_count"`
	DroppedCount       int           `json:"dropped_count" yaml:"dropped_count"`
	ArrivalCount       int           `json:"arrival_count" yaml:"arrival_count"`
	InSystemAtHorizon  int           `json:"in_system_at_horizon" yaml:"in_system_at_horizon"`
	TotalWaitTime      float64       `json:"total_wait_time" yaml:"total_wait_time"`
	WaitTimes          []float64     `json:"wait_times" yaml:"wait_times"`
	SojournTimes       []float64     `json:"sojourn_times" yaml:"sojourn_times"`
	QueueLengthSamples []QueueSample `json:"queue_length_samples" yaml:"queue_length_samples"`
	EndTime            float64       `json:"end_time" yaml:"end_time"`
}

// Collector is a pure accumulator. It has no control flow of its own; the
// Simulator calls it from inside event handlers.
type Collector struct {
	completed    int
	dropped      int
	arrivals     int
	totalWait    float64
	waitTimes    []float64
	sojournTimes []float64
	queueSamples []QueueSample
	inSystem     int
	endTime      float64
	finalized    bool
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		waitTimes:    make([]float64, 0),
		sojournTimes: make([]float64, 0),
		queueSamples: make([]QueueSample, 0),
	}
}

// RecordArrival counts one generated arrival, whatever its admission outcome.
func (c *Collector) RecordArrival() {
	c.mustBeOpen()
	c.arrivals++
}

// RecordQueueLength appends a waiting-line observation at time t.
func (c *Collector) RecordQueueLength(t float64, length int) {
	c.mustBeOpen()
	c.queueSamples = append(c.queueSamples, QueueSample{Time: t, Length: length})
}

// RecordCompletion counts one finished request.
func (c *Collector) RecordCompletion(wait, sojourn float64) {
	c.mustBeOpen()
	c.completed++
	c.totalWait += wait
	c.waitTimes = append(c.waitTimes, wait)
	c.sojournTimes = append(c.sojournTimes, sojourn)
}

// RecordDrop counts one request rejected by a full waiting line.
func (c *Collector) RecordDrop() {
	c.mustBeOpen()
	c.dropped++
}

// finalize seals the collector with the end-of-run system state.
func (c *Collector) finalize(endTime float64, inSystem int) {
	c.endTime = endTime
	c.inSystem = inSystem
	c.finalized = true
}

func (c *Collector) mustBeOpen() {
	if c.finalized {
		panic("Collector: record after finalize")
	}
}

// Snapshot returns a deep copy of the accumulated statistics.
func (c *Collector) Snapshot() RunStatistics {
	return RunStatistics{
		CompletedCount:     c.completed,
		DroppedCount:       c.dropped,
		ArrivalCount:       c.arrivals,
		InSystemAtHorizon:  c.inSystem,
		TotalWaitTime:      c.totalWait,
		WaitTimes:          append(make([]float64, 0, len(c.waitTimes)), c.waitTimes...),
		SojournTimes:       append(make([]float64, 0, len(c.sojournTimes)), c.sojournTimes...),
		QueueLengthSamples: append(make([]QueueSample, 0, len(c.queueSamples)), c.queueSamples...),
		EndTime:            c.endTime,
	}
}

// Print displays the run's headline numbers on stdout.
func (s RunStatistics) Print() {
	sum := s.Summarize()
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Simulated Time        : %.2f time units\n", s.EndTime)
	fmt.Printf("Arrivals              : %d\n", s.ArrivalCount)
	fmt.Printf("Completed Requests    : %d\n", s.CompletedCount)
	fmt.Printf("Dropped Requests      : %d (%.2f%%)\n", s.DroppedCount, sum.DropRatio*100)
	fmt.Printf("In System At Horizon  : %d\n", s.InSystemAtHorizon)
	fmt.Printf("Total Waiting Time    : %.2f time units\n", s.TotalWaitTime)
	if s.CompletedCount > 0 {
		fmt.Printf("Mean Wait             : %.4f\n", sum.MeanWait)
		fmt.Printf("P50 / P90 / P99 Wait  : %.4f / %.4f / %.4f\n", sum.P50Wait, sum.P90Wait, sum.P99Wait)
		fmt.Printf("Mean Time In System   : %.4f\n", sum.MeanSojourn)
		fmt.Printf("Throughput            : %.4f req/time unit\n", sum.Throughput)
	}
	fmt.Printf("Mean Queue Length     : %.4f (max %d)\n", sum.MeanQueueLength, sum.MaxQueueLength)
}
