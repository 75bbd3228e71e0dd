package sim

import "errors"

var (
	// ErrConfiguration reports an invalid Config. New never returns a
	// partially initialized Simulator alongside it.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidServiceDuration reports a service duration draw that is not
	// strictly positive and finite. Scheduling it would move the clock
	// backwards or stall it, so the run stops instead.
	ErrInvalidServiceDuration = errors.New("invalid service duration")

	// ErrInvalidArrivalInterval reports an inter-arrival draw that is not
	// strictly positive and finite. A zero interval would pin the clock at
	// one instant forever.
	ErrInvalidArrivalInterval = errors.New("invalid inter-arrival interval")

	// ErrEmptyTimeline reports that the event queue drained before the
	// horizon. The arrival chain always keeps one event pending, so this is a
	// scheduling bug rather than a recoverable condition.
	ErrEmptyTimeline = errors.New("event timeline empty before horizon")

	// ErrAlreadyRun is returned when Run is called on a Simulator that has
	// already left the Idle state.
	ErrAlreadyRun = errors.New("simulator already run")

	// ErrNotFinalized is returned by Statistics before the run is finalized.
	ErrNotFinalized = errors.New("simulation not finalized")
)
