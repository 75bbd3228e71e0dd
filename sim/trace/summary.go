package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions int     `json:"total_decisions" yaml:"total_decisions"`
	GrantedCount   int     `json:"granted" yaml:"granted"`
	QueuedCount    int     `json:"queued" yaml:"queued"`
	DroppedCount   int     `json:"dropped" yaml:"dropped"`
	PromotedCount  int     `json:"promoted" yaml:"promoted"`                 // service starts that came from the waiting line
	MaxQueueLength int     `json:"max_queue_length" yaml:"max_queue_length"` // longest waiting line seen at an admission decision
	MeanWait       float64 `json:"mean_wait" yaml:"mean_wait"`               // mean of Start-Arrival over all service starts
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Admissions)
	for _, a := range st.Admissions {
		switch a.Outcome {
		case OutcomeGranted:
			summary.GrantedCount++
		case OutcomeQueued:
			summary.QueuedCount++
		case OutcomeDropped:
			summary.DroppedCount++
		}
		if a.QueueLength > summary.MaxQueueLength {
			summary.MaxQueueLength = a.QueueLength
		}
	}

	if len(st.Services) > 0 {
		totalWait := 0.0
		for _, s := range st.Services {
			if s.Promoted {
				summary.PromotedCount++
			}
			totalWait += s.Start - s.Arrival
		}
		summary.MeanWait = totalWait / float64(len(st.Services))
	}

	return summary
}
