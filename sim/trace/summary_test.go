package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if *summary != (TraceSummary{}) {
		t.Errorf("expected zero summary, got %+v", *summary)
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDecisions != 0 {
		t.Errorf("expected 0 total decisions, got %d", summary.TotalDecisions)
	}
	if summary.GrantedCount != 0 || summary.QueuedCount != 0 || summary.DroppedCount != 0 {
		t.Error("expected 0 granted, queued and dropped")
	}
	if summary.MeanWait != 0 {
		t.Errorf("expected 0 mean wait, got %v", summary.MeanWait)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with mixed admission and service records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordAdmission(AdmissionRecord{RequestID: 1, Outcome: OutcomeGranted, QueueLength: 0})
	st.RecordAdmission(AdmissionRecord{RequestID: 2, Outcome: OutcomeQueued, QueueLength: 1})
	st.RecordAdmission(AdmissionRecord{RequestID: 3, Outcome: OutcomeQueued, QueueLength: 2})
	st.RecordAdmission(AdmissionRecord{RequestID: 4, Outcome: OutcomeDropped, QueueLength: 2})
	st.RecordService(ServiceRecord{RequestID: 1, Arrival: 1, Start: 1})
	st.RecordService(ServiceRecord{RequestID: 2, Arrival: 2, Start: 5, Promoted: true})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalDecisions != 4 {
		t.Errorf("expected 4 total decisions, got %d", summary.TotalDecisions)
	}
	if summary.GrantedCount != 1 || summary.QueuedCount != 2 || summary.DroppedCount != 1 {
		t.Errorf("unexpected outcome counts: %+v", *summary)
	}
	if summary.MaxQueueLength != 2 {
		t.Errorf("expected max queue length 2, got %d", summary.MaxQueueLength)
	}
	if summary.PromotedCount != 1 {
		t.Errorf("expected 1 promoted, got %d", summary.PromotedCount)
	}
	if summary.MeanWait != 1.5 {
		t.Errorf("expected mean wait 1.5, got %v", summary.MeanWait)
	}
}
