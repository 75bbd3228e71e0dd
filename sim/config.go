package sim

import (
	"fmt"
	"math"
)

// Config holds the immutable parameters of a single simulation run.
// It is validated once, eagerly, by New.
type Config struct {
	ServerCount      int     // number of identical servers (must be > 0)
	MaxQueueSize     int     // waiting-line cap before arrivals are dropped (must be >= 0)
	Horizon          float64 // simulated stop time (must be > 0)
	MeanInterarrival float64 // mean of the exponential inter-arrival time (must be > 0)
	ServiceMin       float64 // lower bound of the uniform service time (must be > 0)
	ServiceMax       float64 // upper bound of the uniform service time (must be >= ServiceMin)
	Seed             int64   // master seed for all random streams
}

// DefaultConfig returns the reference two-server scenario.
func DefaultConfig() Config {
	return Config{
		ServerCount:      2,
		MaxQueueSize:     5,
		Horizon:          50,
		MeanInterarrival: 2,
		ServiceMin:       3,
		ServiceMax:       5,
		Seed:             42,
	}
}

// Validate checks every field and returns an error wrapping ErrConfiguration
// that names the first offending field.
func (c Config) Validate() error {
	if c.ServerCount <= 0 {
		return fmt.Errorf("%w: server count must be > 0, got %d", ErrConfiguration, c.ServerCount)
	}
	if c.MaxQueueSize < 0 {
		return fmt.Errorf("%w: max queue size must be >= 0, got %d", ErrConfiguration, c.MaxQueueSize)
	}
	if !positiveFinite(c.Horizon) {
		return fmt.Errorf("%w: horizon must be a finite value > 0, got %v", ErrConfiguration, c.Horizon)
	}
	if !positiveFinite(c.MeanInterarrival) {
		return fmt.Errorf("%w: mean inter-arrival time must be a finite value > 0, got %v", ErrConfiguration, c.MeanInterarrival)
	}
	if !positiveFinite(c.ServiceMin) {
		return fmt.Errorf("%w: minimum service duration must be a finite value > 0, got %v", ErrConfiguration, c.ServiceMin)
	}
	if !positiveFinite(c.ServiceMax) || c.ServiceMax < c.ServiceMin {
		return fmt.Errorf("%w: maximum service duration must be finite and >= minimum (%v), got %v",
			ErrConfiguration, c.ServiceMin, c.ServiceMax)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
