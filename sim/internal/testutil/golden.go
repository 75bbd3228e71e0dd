// Package testutil provides shared test infrastructure for the queue simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and cmd/ test packages.
package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/goldendataset.yaml.
type GoldenDataset struct {
	Tests []GoldenTestCase `yaml:"tests"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name             string        `yaml:"name"`
	ServerCount      int           `yaml:"server_count"`
	MaxQueueSize     int           `yaml:"max_queue_size"`
	Horizon          float64       `yaml:"horizon"`
	MeanInterarrival float64       `yaml:"mean_interarrival"`
	ServiceMin       float64       `yaml:"service_min"`
	ServiceMax       float64       `yaml:"service_max"`
	Seed             int64         `yaml:"seed"`
	Metrics          GoldenMetrics `yaml:"metrics"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	CompletedCount    int `yaml:"completed_count"`
	DroppedCount      int `yaml:"dropped_count"`
	ArrivalCount      int `yaml:"arrival_count"`
	InSystemAtHorizon int `yaml:"in_system_at_horizon"`

	// Deterministic floating-point metrics (derived from simulation clock)
	TotalWaitTime float64   `yaml:"total_wait_time"`
	WaitTimes     []float64 `yaml:"wait_times"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
// Unknown fields are rejected so a typo in the dataset fails loudly.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
// Values within absTol of each other also pass, so exact zeros compare cleanly.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	const absTol = 1e-12
	diff := math.Abs(want - got)
	if diff <= absTol {
		return
	}
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
