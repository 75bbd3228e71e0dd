package trace

import (
	"testing"
)

func TestSimulationTrace_RecordAdmission_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN an admission record is recorded
	st.RecordAdmission(AdmissionRecord{
		RequestID:   1,
		Clock:       1.5,
		Outcome:     OutcomeGranted,
		QueueLength: 0,
		InUse:       1,
	})

	// THEN the trace contains one admission record with correct data
	if len(st.Admissions) != 1 {
		t.Fatalf("expected 1 admission, got %d", len(st.Admissions))
	}
	if st.Admissions[0].RequestID != 1 {
		t.Errorf("expected request ID 1, got %d", st.Admissions[0].RequestID)
	}
	if st.Admissions[0].Outcome != OutcomeGranted {
		t.Errorf("expected outcome granted, got %s", st.Admissions[0].Outcome)
	}
}

func TestSimulationTrace_RecordService_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a service record is recorded
	st.RecordService(ServiceRecord{RequestID: 7, Arrival: 2, Start: 3, Duration: 4, Promoted: true})

	// THEN the trace contains one service record with correct data
	if len(st.Services) != 1 {
		t.Fatalf("expected 1 service record, got %d", len(st.Services))
	}
	if !st.Services[0].Promoted {
		t.Error("expected promoted=true")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordAdmission(AdmissionRecord{RequestID: 1, Clock: 1, Outcome: OutcomeGranted})
	st.RecordAdmission(AdmissionRecord{RequestID: 2, Clock: 2, Outcome: OutcomeDropped})
	st.RecordAdmission(AdmissionRecord{RequestID: 3, Clock: 3, Outcome: OutcomeQueued})

	// THEN insertion order is preserved
	for i, want := range []int64{1, 2, 3} {
		if st.Admissions[i].RequestID != want {
			t.Errorf("admission %d: expected request %d, got %d", i, want, st.Admissions[i].RequestID)
		}
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"detailed", false},
		{"invalid", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{}).Enabled() {
		t.Error("zero-value config must be disabled")
	}
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none level must be disabled")
	}
	if !(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("decisions level must be enabled")
	}
}
