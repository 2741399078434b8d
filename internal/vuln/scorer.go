// Package vuln estimates expected structural damage from building
// attributes and the predicted hazard level.
package vuln

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// Retrofit and shape modifiers applied after the base score.
const (
	RetrofitModifier       = 0.7
	IrregularShapeModifier = 1.3
)

// Scorer computes damage percentages from a base damage matrix.
type Scorer struct {
	matrix Matrix
}

// NewScorer creates a Scorer. A nil matrix uses the built-in table.
func NewScorer(matrix Matrix) *Scorer {
	if matrix == nil {
		matrix = DefaultMatrix()
	}
	return &Scorer{matrix: matrix}
}

// Score estimates the damage percentage for a building: the material x age
// base damage scaled by the hazard-level and density multipliers, then
// retrofit/irregular-shape modifiers, clamped to [0,100].
func (s *Scorer) Score(b model.BuildingRecord) float64 {
	damage := s.matrix.Base(b.Material, b.AgeYears)
	damage *= b.PredictedHazardLevel.DamageMultiplier()
	damage *= b.PopulationDensity.Multiplier()

	if b.HasRetrofitting {
		damage *= RetrofitModifier
	}
	if b.IrregularShape {
		damage *= IrregularShapeModifier
	}

	return math.Min(100, math.Max(0, damage))
}

// Factors returns the fractional multipliers behind a score, keyed for the
// dashboard breakdown chart.
func (s *Scorer) Factors(b model.BuildingRecord) map[string]float64 {
	retrofit, shape := 1.0, 1.0
	if b.HasRetrofitting {
		retrofit = RetrofitModifier
	}
	if b.IrregularShape {
		shape = IrregularShapeModifier
	}
	return map[string]float64{
		"material": MaterialFactor(b.Material),
		"age":      AgeFactor(b.AgeYears),
		"density":  b.PopulationDensity.Multiplier(),
		"hazard":   b.PredictedHazardLevel.DamageMultiplier(),
		"retrofit": retrofit,
		"shape":    shape,
	}
}

// MaterialFactor returns the material's mid-life (30-50 band) base damage
// as a fraction, used for display alongside the other factors.
func MaterialFactor(m model.Material) float64 {
	return DefaultMatrix().Base(m, 40) / 100
}

// AgeFactor returns a fractional multiplier per age band for display.
func AgeFactor(ageYears int) float64 {
	return [4]float64{0.6, 0.8, 1.0, 1.2}[AgeBand(ageYears)]
}

// CategorizeDamage bands a damage percentage: below 25 Low, below 60
// Moderate, otherwise High. Matches the gauge bands used for display.
func CategorizeDamage(percent float64) model.DamageLevel {
	switch {
	case math.IsNaN(percent):
		return model.DamageModerate
	case percent < 25:
		return model.DamageLow
	case percent < 60:
		return model.DamageModerate
	default:
		return model.DamageHigh
	}
}

// CasualtyPotential rates expected casualties from the damage level and
// population density. Unknown combinations rate Medium.
func CasualtyPotential(damage model.DamageLevel, density model.PopulationDensity) string {
	table := map[model.DamageLevel]map[model.PopulationDensity]string{
		model.DamageLow: {
			model.DensityLow:    "Very Low",
			model.DensityMedium: "Low",
			model.DensityHigh:   "Medium",
		},
		model.DamageModerate: {
			model.DensityLow:    "Low",
			model.DensityMedium: "Medium",
			model.DensityHigh:   "High",
		},
		model.DamageHigh: {
			model.DensityLow:    "Medium",
			model.DensityMedium: "High",
			model.DensityHigh:   "Very High",
		},
	}
	if row, ok := table[damage]; ok {
		if v, ok := row[density]; ok {
			return v
		}
	}
	return "Medium"
}
