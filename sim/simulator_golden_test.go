package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queuesim/sim/internal/testutil"
)

// TestSimulator_GoldenDataset replays each recorded scenario and checks that
// the seeded run reproduces the recorded statistics.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := Config{
				ServerCount:      tc.ServerCount,
				MaxQueueSize:     tc.MaxQueueSize,
				Horizon:          tc.Horizon,
				MeanInterarrival: tc.MeanInterarrival,
				ServiceMin:       tc.ServiceMin,
				ServiceMax:       tc.ServiceMax,
				Seed:             tc.Seed,
			}
			s, err := New(cfg)
			require.NoError(t, err)
			stats, err := s.Run()
			require.NoError(t, err)

			want := tc.Metrics
			if stats.CompletedCount != want.CompletedCount {
				t.Errorf("completed_count: got %d, want %d", stats.CompletedCount, want.CompletedCount)
			}
			if stats.DroppedCount != want.DroppedCount {
				t.Errorf("dropped_count: got %d, want %d", stats.DroppedCount, want.DroppedCount)
			}
			if stats.ArrivalCount != want.ArrivalCount {
				t.Errorf("arrival_count: got %d, want %d", stats.ArrivalCount, want.ArrivalCount)
			}
			if stats.InSystemAtHorizon != want.InSystemAtHorizon {
				t.Errorf("in_system_at_horizon: got %d, want %d", stats.InSystemAtHorizon, want.InSystemAtHorizon)
			}

			testutil.AssertFloat64Equal(t, "total_wait_time", want.TotalWaitTime, stats.TotalWaitTime, 1e-9)
			require.Len(t, stats.WaitTimes, len(want.WaitTimes))
			for i := range want.WaitTimes {
				testutil.AssertFloat64Equal(t, fmt.Sprintf("wait_times[%d]", i), want.WaitTimes[i], stats.WaitTimes[i], 1e-9)
			}
		})
	}
}
