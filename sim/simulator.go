// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queuesim/sim/trace"
	"github.com/inference-sim/queuesim/sim/workload"
)

// RunState is the kernel's lifecycle state.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateHorizonReached
	StateFinalized
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateHorizonReached:
		return "horizon-reached"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Simulator is the core object that holds simulation time, system state, and the event loop.
// A Simulator runs exactly once. It is not safe for concurrent use, but
// independent Simulators share no state and may run on separate goroutines.
type Simulator struct {
	config Config
	clock  float64
	// events holds every pending arrival and service completion
	events *EventHeap
	pool   *ResourcePool
	stats  *Collector
	rng    *PartitionedRNG

	arrivals workload.ArrivalSampler
	service  workload.DurationSampler
	trace    *trace.SimulationTrace

	state         RunState
	err           error
	nextRequestID RequestID
	firedCount    int
}

// New validates cfg and builds a Simulator in the Idle state.
// On invalid configuration it returns nil and an error wrapping ErrConfiguration.
func New(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o resolvedOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.arrivals == nil {
		s, err := workload.NewExponentialSampler(cfg.MeanInterarrival)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		o.arrivals = s
	}
	if o.service == nil {
		s, err := workload.NewUniformSampler(cfg.ServiceMin, cfg.ServiceMax)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		o.service = s
	}
	if !trace.IsValidTraceLevel(string(o.trace.Level)) {
		return nil, fmt.Errorf("%w: unknown trace level %q", ErrConfiguration, o.trace.Level)
	}

	sim := &Simulator{
		config:   cfg,
		events:   NewEventHeap(),
		pool:     NewResourcePool(cfg.ServerCount, cfg.MaxQueueSize),
		stats:    NewCollector(),
		rng:      NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		arrivals: o.arrivals,
		service:  o.service,
		state:    StateIdle,
	}
	if o.trace.Enabled() {
		sim.trace = trace.NewSimulationTrace(o.trace)
	}
	return sim, nil
}

// Schedule pushes an event onto the timeline. Scheduling into the past is a
// kernel bug and panics.
func (sim *Simulator) Schedule(ev Event) {
	if math.IsNaN(ev.Timestamp()) || ev.Timestamp() < sim.clock {
		panic(fmt.Sprintf("Schedule: %s event at %v is before clock %v", ev.Kind(), ev.Timestamp(), sim.clock))
	}
	sim.events.Schedule(ev)
}

// start moves Idle → Running by seeding the arrival chain.
func (sim *Simulator) start() error {
	sim.state = StateRunning
	return sim.scheduleNextArrival()
}

// Step fires the next event, if it lies within the horizon.
// It reports fired=false once the horizon is reached or the run has ended.
// The first call starts the run.
func (sim *Simulator) Step() (fired bool, err error) {
	switch sim.state {
	case StateIdle:
		logrus.Infof("Starting simulation: servers=%d max_queue=%d horizon=%v mean_interarrival=%v service=[%v, %v] seed=%d",
			sim.config.ServerCount, sim.config.MaxQueueSize, sim.config.Horizon, sim.config.MeanInterarrival,
			sim.config.ServiceMin, sim.config.ServiceMax, sim.config.Seed)
		if err := sim.start(); err != nil {
			return false, sim.fail(err)
		}
	case StateHorizonReached:
		return false, nil
	case StateFinalized:
		return false, sim.err
	}

	next := sim.events.Peek()
	if next == nil {
		return false, sim.fail(fmt.Errorf("%w: clock=%v horizon=%v", ErrEmptyTimeline, sim.clock, sim.config.Horizon))
	}
	if next.Timestamp() > sim.config.Horizon {
		sim.state = StateHorizonReached
		return false, nil
	}

	ev := sim.events.PopNext()
	sim.clock = ev.Timestamp()
	sim.firedCount++
	logrus.Debugf("[t=%10.4f] Executing %T", sim.clock, ev)
	if err := ev.Execute(sim); err != nil {
		return false, sim.fail(err)
	}
	return true, nil
}

// fail records a fatal error and finalizes the kernel with what was gathered.
func (sim *Simulator) fail(err error) error {
	sim.err = err
	sim.finalize()
	return err
}

// finalize tears down pending events and seals the statistics.
func (sim *Simulator) finalize() {
	if sim.state == StateFinalized {
		return
	}
	sim.events.Clear()
	end := sim.config.Horizon
	if sim.err != nil {
		end = sim.clock
	}
	sim.stats.finalize(end, sim.pool.InUse()+sim.pool.Waiting())
	sim.state = StateFinalized
}

// Run drives the simulation to the horizon and returns its statistics.
// A run that fails returns the zero RunStatistics and the error; the partial
// statistics remain available from Statistics.
func (sim *Simulator) Run() (RunStatistics, error) {
	if sim.state != StateIdle {
		return RunStatistics{}, ErrAlreadyRun
	}
	for {
		fired, err := sim.Step()
		if err != nil {
			return RunStatistics{}, err
		}
		if !fired {
			break
		}
	}
	sim.finalize()
	stats := sim.stats.Snapshot()
	logrus.Infof("[t=%10.4f] Simulation ended: %d events fired, %d completed, %d dropped",
		sim.clock, sim.firedCount, stats.CompletedCount, stats.DroppedCount)
	return stats, nil
}

// Statistics returns the snapshot of a finished run. A run stepped up to the
// horizon is finalized on the first call.
func (sim *Simulator) Statistics() (RunStatistics, error) {
	if sim.state == StateHorizonReached {
		sim.finalize()
	}
	if sim.state != StateFinalized {
		return RunStatistics{}, fmt.Errorf("%w: state is %s", ErrNotFinalized, sim.state)
	}
	return sim.stats.Snapshot(), nil
}

// Clock returns the current simulated time.
func (sim *Simulator) Clock() float64 { return sim.clock }

// State returns the lifecycle state.
func (sim *Simulator) State() RunState { return sim.state }

// Config returns the configuration the Simulator was built with.
func (sim *Simulator) Config() Config { return sim.config }

// InService returns the number of busy servers.
func (sim *Simulator) InService() int { return sim.pool.InUse() }

// QueueLength returns the current waiting-line length.
func (sim *Simulator) QueueLength() int { return sim.pool.Waiting() }

// PendingEvents returns the number of scheduled, unfired events.
func (sim *Simulator) PendingEvents() int { return sim.events.Len() }

// Trace returns the decision trace, or nil when tracing is disabled.
func (sim *Simulator) Trace() *trace.SimulationTrace { return sim.trace }
