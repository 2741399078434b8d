// Package finance converts damage estimates into monetary loss figures.
package finance

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// baseRates holds the construction rate per square foot by building type,
// in whole currency units.
var baseRates = map[model.BuildingType]float64{
	model.BuildingResidential: 2000,
	model.BuildingCommercial:  3500,
	model.BuildingHighRise:    4000,
	model.BuildingSchool:      3000,
	model.BuildingHospital:    5000,
	model.BuildingIndustrial:  2500,
}

// minValues holds the floor valuation per building type.
var minValues = map[model.BuildingType]float64{
	model.BuildingResidential: 1_000_000,
	model.BuildingCommercial:  2_500_000,
	model.BuildingHighRise:    10_000_000,
	model.BuildingSchool:      5_000_000,
	model.BuildingHospital:    10_000_000,
	model.BuildingIndustrial:  5_000_000,
}

// EstimateValue estimates a building's value from its type and floor area,
// floored at the type's minimum valuation. Unknown types take the
// Residential rates.
func EstimateValue(buildingType model.BuildingType, sizeSqft float64) float64 {
	rate, ok := baseRates[buildingType]
	if !ok {
		rate = baseRates[model.BuildingResidential]
	}
	minValue, ok := minValues[buildingType]
	if !ok {
		minValue = minValues[model.BuildingResidential]
	}

	if math.IsNaN(sizeSqft) || math.IsInf(sizeSqft, 0) || sizeSqft < 0 {
		return minValue
	}
	return math.Max(rate*sizeSqft, minValue)
}
