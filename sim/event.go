package sim

import "fmt"

// EventKind identifies the continuation an event resumes when it fires.
type EventKind int

const (
	// EventArrival resumes the arrival process: admit one request and
	// schedule the next arrival.
	EventArrival EventKind = iota
	// EventServiceCompletion resumes a service session: record it and
	// release its server.
	EventServiceCompletion
)

func (k EventKind) String() string {
	switch k {
	case EventArrival:
		return "Arrival"
	case EventServiceCompletion:
		return "ServiceCompletion"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event defines the interface for all simulation events.
// Each event has a fire time and an Execute method that advances
// simulation state when invoked. Events are immutable once scheduled.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator) error
}

// ArrivalEvent represents the arrival of a new request into the system.
type ArrivalEvent struct {
	time float64 // simulated time of arrival
}

// NewArrivalEvent creates an ArrivalEvent firing at t.
func NewArrivalEvent(t float64) *ArrivalEvent {
	return &ArrivalEvent{time: t}
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

func (e *ArrivalEvent) Kind() EventKind {
	return EventArrival
}

// Execute runs one step of the arrival process.
func (e *ArrivalEvent) Execute(sim *Simulator) error {
	return sim.handleArrival()
}

// ServiceCompletionEvent fires when a server finishes its current session.
type ServiceCompletionEvent struct {
	time    float64
	Session ServiceSession
}

// NewServiceCompletionEvent creates a completion for session, firing at its end time.
func NewServiceCompletionEvent(session ServiceSession) *ServiceCompletionEvent {
	return &ServiceCompletionEvent{
		time:    session.EndTime(),
		Session: session,
	}
}

// Timestamp returns the scheduled time of the ServiceCompletionEvent.
func (e *ServiceCompletionEvent) Timestamp() float64 {
	return e.time
}

func (e *ServiceCompletionEvent) Kind() EventKind {
	return EventServiceCompletion
}

// Execute records the finished session and hands its server to the next waiter.
func (e *ServiceCompletionEvent) Execute(sim *Simulator) error {
	return sim.handleCompletion(e.Session)
}
