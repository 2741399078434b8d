// Package hazard estimates ground-shaking severity on a 0-10 scale.
package hazard

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// DefaultScore is returned when inputs cannot produce a finite score.
const DefaultScore = 5.0

// Score computes the composite hazard severity:
//
//	(magnitude*0.7 + (15/(depth+5))*2 + faultFactor*3) * soilAmplification
//
// clipped to [0,10] and rounded to 2 decimals. Shallower events score
// higher. Non-finite inputs yield the mid-range DefaultScore.
func Score(magnitude, depthKm float64, fault model.FaultActivity, soil model.SoilType) float64 {
	if !isFinite(magnitude) || !isFinite(depthKm) || depthKm <= -5 {
		return DefaultScore
	}

	magnitudeComponent := magnitude * 0.7
	depthComponent := (15 / (depthKm + 5)) * 2
	faultComponent := fault.Factor() * 3

	raw := (magnitudeComponent + depthComponent + faultComponent) * soil.Amplification()
	if !isFinite(raw) {
		return DefaultScore
	}

	return round2(math.Min(10, math.Max(0, raw)))
}

// Categorize bands a hazard score into a qualitative level. Non-finite
// scores default to Moderate.
func Categorize(score float64) model.HazardLevel {
	switch {
	case !isFinite(score):
		return model.HazardModerate
	case score < 3.5:
		return model.HazardLow
	case score < 6.0:
		return model.HazardModerate
	case score < 8.0:
		return model.HazardHigh
	default:
		return model.HazardVeryHigh
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
