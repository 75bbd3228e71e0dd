package sim

import "fmt"

// RequestID identifies a request within one run. IDs are assigned
// sequentially from 1 in arrival order, so they are reproducible per seed.
type RequestID int64

// PendingRequest is a request that has arrived and is either waiting for a
// server or about to be granted one.
type PendingRequest struct {
	ID          RequestID
	ArrivalTime float64
}

func (r *PendingRequest) String() string {
	return fmt.Sprintf("req_%d@%.4f", r.ID, r.ArrivalTime)
}

// ServiceSession is one request occupying one server.
type ServiceSession struct {
	RequestID   RequestID
	ArrivalTime float64
	StartTime   float64
	Duration    float64
}

// EndTime is the simulated time at which the session releases its server.
func (s ServiceSession) EndTime() float64 {
	return s.StartTime + s.Duration
}

// WaitTime is the time the request spent in the waiting line.
func (s ServiceSession) WaitTime() float64 {
	return s.StartTime - s.ArrivalTime
}

// SojournTime is the time from arrival until the server is released.
func (s ServiceSession) SojournTime() float64 {
	return s.EndTime() - s.ArrivalTime
}
