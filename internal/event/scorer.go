// Package event scores earthquake recurrence likelihood from historical
// seismicity.
package event

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// DefaultWeight is the fault-activity weight in the event score formula.
const DefaultWeight = 1.5

// SentinelScore is returned when the inputs cannot produce a finite score.
const SentinelScore = -1.0

// Score computes the log-ratio event likelihood score:
//
//	ln((frequency + weight*activity) / (timeSinceLast + 1))
//
// rounded to 4 decimals. The +1 in the denominator keeps it >= 1 for any
// non-negative timeSinceLast. Non-finite or out-of-domain inputs yield
// SentinelScore rather than an error.
func Score(frequency float64, fault model.FaultActivity, timeSinceLast, weight float64) float64 {
	if weight <= 0 {
		weight = DefaultWeight
	}
	if !isFinite(frequency) || !isFinite(timeSinceLast) || frequency < 0 || timeSinceLast < 0 {
		return SentinelScore
	}

	s := math.Log((frequency + weight*fault.Weight()) / (timeSinceLast + 1))
	if !isFinite(s) {
		return SentinelScore
	}
	return round4(s)
}

// ScoreAt projects the event score yearsAhead into the future by shrinking
// the time since the last event, floored at 1 year.
func ScoreAt(frequency float64, fault model.FaultActivity, timeSinceLast, weight float64, yearsAhead int) float64 {
	projected := math.Max(1, timeSinceLast-float64(yearsAhead))
	return Score(frequency, fault, projected, weight)
}

// Probability maps an event score to an occurrence probability percentage.
// Typical scores (-3..2) land in the 5-90% range; the ends are clamped.
func Probability(score float64) float64 {
	p := (score + 3) * 20
	return math.Min(90, math.Max(5, p))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
