// Package trace provides decision-trace recording for admission and service analysis.
// This package has no dependencies on sim/; it stores plain data types.
package trace

// Admission outcome labels, matching sim.Admission.String().
const (
	OutcomeGranted = "granted"
	OutcomeQueued  = "queued"
	OutcomeDropped = "dropped"
)

// AdmissionRecord captures a single admission decision made on arrival.
type AdmissionRecord struct {
	RequestID   int64   `json:"request_id" yaml:"request_id"`
	Clock       float64 `json:"clock" yaml:"clock"`
	Outcome     string  `json:"outcome" yaml:"outcome"`
	QueueLength int     `json:"queue_length" yaml:"queue_length"` // waiting-line length after the decision
	InUse       int     `json:"in_use" yaml:"in_use"`             // busy servers after the decision
}

// ServiceRecord captures a request being granted a server.
type ServiceRecord struct {
	RequestID int64   `json:"request_id" yaml:"request_id"`
	Arrival   float64 `json:"arrival" yaml:"arrival"`
	Start     float64 `json:"start" yaml:"start"`
	Duration  float64 `json:"duration" yaml:"duration"`
	Promoted  bool    `json:"promoted" yaml:"promoted"` // true when granted from the waiting line on release
}
