package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeWeightedQueueLength_NoSamples_ReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, timeWeightedQueueLength(nil, 10))
	assert.Equal(t, 0.0, timeWeightedQueueLength([]QueueSample{{Time: 1, Length: 3}}, 0))
}

func TestTimeWeightedQueueLength_SameInstantSamples_LastOneWins(t *testing.T) {
	// Two decisions at t=2: only the later value holds over [2, 4).
	samples := []QueueSample{
		{Time: 2, Length: 5},
		{Time: 2, Length: 1},
	}
	assert.InDelta(t, 0.5, timeWeightedQueueLength(samples, 4), 1e-12)
}

func TestTimeWeightedQueueLength_SampleAtEnd_HasNoWeight(t *testing.T) {
	samples := []QueueSample{
		{Time: 0, Length: 2},
		{Time: 10, Length: 9},
	}
	assert.InDelta(t, 2.0, timeWeightedQueueLength(samples, 10), 1e-12)
}

func TestTimeWeightedQueueLength_OnlyEndSample_ReturnsZero(t *testing.T) {
	samples := []QueueSample{{Time: 10, Length: 4}}
	assert.Equal(t, 0.0, timeWeightedQueueLength(samples, 10))
}
