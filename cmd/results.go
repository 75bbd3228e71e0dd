package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/queuesim/sim"
	"github.com/inference-sim/queuesim/sim/trace"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func isValidResultsFormat(format string) bool {
	return format == formatJSON || format == formatYAML
}

// ConfigOutput echoes the run configuration in the results file.
type ConfigOutput struct {
	ServerCount      int     `json:"server_count" yaml:"server_count"`
	MaxQueueSize     int     `json:"max_queue_size" yaml:"max_queue_size"`
	Horizon          float64 `json:"horizon" yaml:"horizon"`
	MeanInterarrival float64 `json:"mean_interarrival" yaml:"mean_interarrival"`
	ServiceMin       float64 `json:"service_min" yaml:"service_min"`
	ServiceMax       float64 `json:"service_max" yaml:"service_max"`
	Seed             int64   `json:"seed" yaml:"seed"`
}

// ResultsOutput is the document written by --results-path.
type ResultsOutput struct {
	Config     ConfigOutput           `json:"config" yaml:"config"`
	Statistics sim.RunStatistics      `json:"statistics" yaml:"statistics"`
	Summary    sim.Summary            `json:"summary" yaml:"summary"`
	Trace      *trace.SimulationTrace `json:"trace,omitempty" yaml:"trace,omitempty"`
	TraceStats *trace.TraceSummary    `json:"trace_summary,omitempty" yaml:"trace_summary,omitempty"`
}

func newResultsOutput(cfg sim.Config, stats sim.RunStatistics, st *trace.SimulationTrace) ResultsOutput {
	out := ResultsOutput{
		Config: ConfigOutput{
			ServerCount:      cfg.ServerCount,
			MaxQueueSize:     cfg.MaxQueueSize,
			Horizon:          cfg.Horizon,
			MeanInterarrival: cfg.MeanInterarrival,
			ServiceMin:       cfg.ServiceMin,
			ServiceMax:       cfg.ServiceMax,
			Seed:             cfg.Seed,
		},
		Statistics: stats,
		Summary:    stats.Summarize(),
	}
	if st != nil {
		out.Trace = st
		out.TraceStats = trace.Summarize(st)
	}
	return out
}

// saveResults writes the run configuration, statistics, summary and optional
// trace to path in the given format.
func saveResults(path, format string, cfg sim.Config, stats sim.RunStatistics, st *trace.SimulationTrace) error {
	out := newResultsOutput(cfg, stats, st)

	var data []byte
	var err error
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(out, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(out)
	default:
		return fmt.Errorf("unknown results format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s results: %w", format, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
