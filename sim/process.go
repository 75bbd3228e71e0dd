// Event handlers for the arrival and service processes. Each handler runs to
// completion inside one fired event and returns control to the event loop.

package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queuesim/sim/trace"
)

// scheduleNextArrival draws an inter-arrival interval and schedules the next
// ArrivalEvent. This keeps exactly one arrival pending at all times.
func (sim *Simulator) scheduleNextArrival() error {
	interval := sim.arrivals.SampleInterval(sim.rng.ForSubsystem(SubsystemArrival))
	if !(interval > 0) || math.IsInf(interval, 0) {
		return fmt.Errorf("%w: drew %v at t=%v", ErrInvalidArrivalInterval, interval, sim.clock)
	}
	sim.Schedule(NewArrivalEvent(sim.clock + interval))
	return nil
}

// handleArrival admits one new request and keeps the arrival chain alive.
func (sim *Simulator) handleArrival() error {
	sim.nextRequestID++
	req := &PendingRequest{ID: sim.nextRequestID, ArrivalTime: sim.clock}
	sim.stats.RecordArrival()

	if err := sim.scheduleNextArrival(); err != nil {
		return err
	}

	decision := sim.pool.TryAcquire(req)
	sim.stats.RecordQueueLength(sim.clock, sim.pool.Waiting())
	if sim.trace != nil {
		sim.trace.RecordAdmission(trace.AdmissionRecord{
			RequestID:   int64(req.ID),
			Clock:       sim.clock,
			Outcome:     decision.String(),
			QueueLength: sim.pool.Waiting(),
			InUse:       sim.pool.InUse(),
		})
	}

	switch decision {
	case Granted:
		return sim.startService(req, false)
	case Queued:
		logrus.Debugf("[t=%10.4f] %s queued (waiting=%d)", sim.clock, req, sim.pool.Waiting())
	case Dropped:
		sim.stats.RecordDrop()
		logrus.Infof("[t=%10.4f] %s left due to a full queue", sim.clock, req)
	}
	return nil
}

// startService occupies the server already granted to req and schedules its
// completion.
func (sim *Simulator) startService(req *PendingRequest, promoted bool) error {
	d := sim.service.SampleDuration(sim.rng.ForSubsystem(SubsystemService))
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: drew %v for %s at t=%v", ErrInvalidServiceDuration, d, req, sim.clock)
	}
	session := ServiceSession{
		RequestID:   req.ID,
		ArrivalTime: req.ArrivalTime,
		StartTime:   sim.clock,
		Duration:    d,
	}
	if sim.trace != nil {
		sim.trace.RecordService(trace.ServiceRecord{
			RequestID: int64(req.ID),
			Arrival:   req.ArrivalTime,
			Start:     sim.clock,
			Duration:  d,
			Promoted:  promoted,
		})
	}
	logrus.Debugf("[t=%10.4f] %s starts service for %.4f (waited %.4f)", sim.clock, req, d, session.WaitTime())
	sim.Schedule(NewServiceCompletionEvent(session))
	return nil
}

// handleCompletion records a finished session and lets the pool promote the
// head of the waiting line onto the freed server.
func (sim *Simulator) handleCompletion(session ServiceSession) error {
	sim.stats.RecordCompletion(session.WaitTime(), session.SojournTime())
	logrus.Debugf("[t=%10.4f] req_%d completed", sim.clock, session.RequestID)

	next, ok := sim.pool.Release()
	if !ok {
		return nil
	}
	return sim.startService(next, true)
}
