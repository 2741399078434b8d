package event

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seismetric/quake-cli/internal/model"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frequency float64
		fault     model.FaultActivity
		timeSince float64
		weight    float64
		want      float64
	}{
		{
			// ln((5 + 1.5*2) / (4 + 1)) = ln(1.6)
			name:      "medium fault reference case",
			frequency: 5,
			fault:     model.FaultActivityMedium,
			timeSince: 4,
			weight:    1.5,
			want:      0.4700,
		},
		{
			// ln((0 + 1.5*1) / 1) = ln(1.5)
			name:      "zero frequency",
			frequency: 0,
			fault:     model.FaultActivityLow,
			timeSince: 0,
			weight:    1.5,
			want:      0.4055,
		},
		{
			// ln((8 + 1.5*3) / 2) = ln(6.25)
			name:      "high fault recent event",
			frequency: 8,
			fault:     model.FaultActivityHigh,
			timeSince: 1,
			weight:    1.5,
			want:      1.8326,
		},
		{
			// Zero weight falls back to the default 1.5.
			name:      "zero weight uses default",
			frequency: 5,
			fault:     model.FaultActivityMedium,
			timeSince: 4,
			weight:    0,
			want:      0.4700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tt.frequency, tt.fault, tt.timeSince, tt.weight)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestScoreSentinel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SentinelScore, Score(math.NaN(), model.FaultActivityLow, 4, 1.5))
	assert.Equal(t, SentinelScore, Score(5, model.FaultActivityLow, math.Inf(1), 1.5))
	assert.Equal(t, SentinelScore, Score(-2, model.FaultActivityLow, 4, 1.5))
	assert.Equal(t, SentinelScore, Score(5, model.FaultActivityLow, -1, 1.5))
}

func TestScoreUnknownFaultDefaultsLow(t *testing.T) {
	t.Parallel()

	got := Score(5, model.FaultActivity("???"), 4, 1.5)
	want := Score(5, model.FaultActivityLow, 4, 1.5)
	assert.Equal(t, want, got)
}

func TestScoreAt(t *testing.T) {
	t.Parallel()

	// Projecting 10 years ahead from 4 years since last event floors at 1.
	got := ScoreAt(5, model.FaultActivityMedium, 4, 1.5, 10)
	want := Score(5, model.FaultActivityMedium, 1, 1.5)
	assert.Equal(t, want, got)

	// Projecting 2 years ahead shrinks the denominator.
	got = ScoreAt(5, model.FaultActivityMedium, 4, 1.5, 2)
	want = Score(5, model.FaultActivityMedium, 2, 1.5)
	assert.Equal(t, want, got)
}

func TestProbability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  float64
	}{
		{0.47, 69.4},
		{-3, 5},    // clamped low
		{-10, 5},   // clamped low
		{2, 90},    // clamped high
		{5, 90},    // clamped high
		{-1.5, 30}, // mid range
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Probability(tt.score), 0.0001)
	}
}
