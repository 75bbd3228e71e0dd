package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sim "github.com/inference-sim/queuesim/sim"
	"github.com/inference-sim/queuesim/sim/trace"
)

// envPrefix namespaces environment overrides: --max-queue ↔ QUEUESIM_MAX_QUEUE.
const envPrefix = "QUEUESIM"

// Flag names. Each is also readable from the environment via envPrefix.
const (
	flagServers          = "servers"
	flagMaxQueue         = "max-queue"
	flagHorizon          = "horizon"
	flagMeanInterarrival = "mean-interarrival"
	flagServiceMin       = "service-min"
	flagServiceMax       = "service-max"
	flagSeed             = "seed"
	flagLog              = "log"
	flagResultsPath      = "results-path"
	flagResultsFormat    = "results-format"
	flagTrace            = "trace"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queuesim",
	Short: "Discrete-event simulator for a bounded multi-server queue",
}

// runCmd executes the simulation using parameters from CLI flags and the environment
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		v := newViper(cmd)

		level, err := logrus.ParseLevel(v.GetString(flagLog))
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", v.GetString(flagLog))
		}
		logrus.SetLevel(level)

		cfg, err := configFromViper(v)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		traceLevel := v.GetString(flagTrace)
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (valid: none, decisions)", traceLevel)
		}
		format := v.GetString(flagResultsFormat)
		if !isValidResultsFormat(format) {
			logrus.Fatalf("Invalid results format %q (valid: json, yaml)", format)
		}

		s, err := sim.New(cfg, sim.WithTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)}))
		if err != nil {
			logrus.Fatalf("Cannot build simulator: %v", err)
		}
		stats, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		stats.Print()

		if path := v.GetString(flagResultsPath); path != "" {
			if err := saveResults(path, format, cfg, stats, s.Trace()); err != nil {
				logrus.Fatalf("Cannot write results: %v", err)
			}
			logrus.Infof("Results written to %s", path)
		}
		logrus.Info("Simulation complete.")
	},
}

// newViper binds cmd's flags to a fresh viper instance that also reads
// QUEUESIM_* environment variables. Explicit flags win over the environment.
func newViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		logrus.Fatalf("Cannot bind flags: %v", err)
	}
	return v
}

// configFromViper assembles the kernel configuration. A value that does not
// parse is an error; range checks are left to sim.New.
func configFromViper(v *viper.Viper) (sim.Config, error) {
	var cfg sim.Config
	var err error
	if cfg.ServerCount, err = cast.ToIntE(v.Get(flagServers)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagServers, err)
	}
	if cfg.MaxQueueSize, err = cast.ToIntE(v.Get(flagMaxQueue)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagMaxQueue, err)
	}
	if cfg.Horizon, err = cast.ToFloat64E(v.Get(flagHorizon)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagHorizon, err)
	}
	if cfg.MeanInterarrival, err = cast.ToFloat64E(v.Get(flagMeanInterarrival)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagMeanInterarrival, err)
	}
	if cfg.ServiceMin, err = cast.ToFloat64E(v.Get(flagServiceMin)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagServiceMin, err)
	}
	if cfg.ServiceMax, err = cast.ToFloat64E(v.Get(flagServiceMax)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagServiceMax, err)
	}
	if cfg.Seed, err = cast.ToInt64E(v.Get(flagSeed)); err != nil {
		return sim.Config{}, fmt.Errorf("--%s: %w", flagSeed, err)
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags attaches the run flags to cmd with the reference scenario as defaults.
func registerRunFlags(cmd *cobra.Command) {
	def := sim.DefaultConfig()

	cmd.Flags().Int64(flagSeed, def.Seed, "Seed for the arrival and service random streams")
	cmd.Flags().Float64(flagHorizon, def.Horizon, "Simulated time at which the run stops")
	cmd.Flags().String(flagLog, "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Station configs
	cmd.Flags().Int(flagServers, def.ServerCount, "Number of identical servers")
	cmd.Flags().Int(flagMaxQueue, def.MaxQueueSize, "Maximum waiting-line length before arrivals are dropped")

	// Workload configs
	cmd.Flags().Float64(flagMeanInterarrival, def.MeanInterarrival, "Mean of the exponential inter-arrival time")
	cmd.Flags().Float64(flagServiceMin, def.ServiceMin, "Lower bound of the uniform service time")
	cmd.Flags().Float64(flagServiceMax, def.ServiceMax, "Upper bound of the uniform service time")

	// Output
	cmd.Flags().String(flagResultsPath, "", "File to write run statistics to (empty = stdout summary only)")
	cmd.Flags().String(flagResultsFormat, formatJSON, "Results file format (json, yaml)")
	cmd.Flags().String(flagTrace, string(trace.TraceLevelNone), "Decision trace level (none, decisions); written with the results file")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
