// Package sim provides the discrete-event simulation kernel for a bounded
// multi-server queue.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - pool.go: ResourcePool, the N-server pool with its bounded FIFO waiting line
//   - event.go: Event types that drive the simulation (Arrival, ServiceCompletion)
//   - process.go: the arrival and service processes as event handlers
//   - simulator.go: the event loop, horizon handling and the run lifecycle
//
// # Lifecycle
//
// A Simulator moves Idle → Running → HorizonReached → Finalized. The first
// Step (or Run) schedules the first arrival. Events fire in non-decreasing
// time order, ties in schedule order. The run stops without firing the first
// event whose time exceeds the horizon. Statistics are only readable once
// the run is finalized.
//
// # Sub-packages
//
//   - sim/workload/: inter-arrival and service-duration samplers
//   - sim/trace/: admission and service decision traces
//
// Every source of randomness is drawn from the Simulator's own
// PartitionedRNG, so a Config (including its Seed) fully determines the run.
package sim
