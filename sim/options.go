package sim

import (
	"github.com/inference-sim/queuesim/sim/trace"
	"github.com/inference-sim/queuesim/sim/workload"
)

// Option configures a Simulator.
type Option func(*resolvedOptions)

// resolvedOptions holds all extension points after applying defaults.
// Callers set it through the With* functions.
type resolvedOptions struct {
	arrivals workload.ArrivalSampler
	service  workload.DurationSampler
	trace    trace.TraceConfig
}

// WithArrivalSampler replaces the exponential inter-arrival sampler built
// from Config.MeanInterarrival. Intervals it returns must be > 0 and finite;
// a bad draw fails the run with ErrInvalidArrivalInterval.
func WithArrivalSampler(s workload.ArrivalSampler) Option {
	return func(o *resolvedOptions) { o.arrivals = s }
}

// WithServiceSampler replaces the uniform service-duration sampler built
// from Config.ServiceMin and Config.ServiceMax. Durations it returns are still
// checked on every draw.
func WithServiceSampler(s workload.DurationSampler) Option {
	return func(o *resolvedOptions) { o.service = s }
}

// WithTrace enables decision tracing. The trace is available from
// Simulator.Trace after the run.
func WithTrace(cfg trace.TraceConfig) Option {
	return func(o *resolvedOptions) { o.trace = cfg }
}
