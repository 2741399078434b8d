package model

import "strings"

// FaultActivity is the qualitative rating of nearby fault activity.
type FaultActivity string

const (
	FaultActivityLow    FaultActivity = "Low"
	FaultActivityMedium FaultActivity = "Medium"
	FaultActivityHigh   FaultActivity = "High"
)

// ParseFaultActivity maps a raw dataset value to a FaultActivity.
// Unrecognized values default to Low.
func ParseFaultActivity(s string) FaultActivity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "moderate":
		return FaultActivityMedium
	case "high":
		return FaultActivityHigh
	default:
		return FaultActivityLow
	}
}

// Weight returns the integer activity score used by the event scorer.
func (f FaultActivity) Weight() float64 {
	switch f {
	case FaultActivityMedium:
		return 2
	case FaultActivityHigh:
		return 3
	default:
		return 1
	}
}

// Factor returns the fractional fault contribution used by the hazard scorer.
func (f FaultActivity) Factor() float64 {
	switch f {
	case FaultActivityMedium:
		return 0.6
	case FaultActivityHigh:
		return 1.0
	default:
		return 0.3
	}
}

// SoilType classifies site soil for ground-motion amplification.
type SoilType string

const (
	SoilRock     SoilType = "Rock"
	SoilStiff    SoilType = "Stiff"
	SoilSoft     SoilType = "Soft"
	SoilVerySoft SoilType = "Very Soft"
)

// ParseSoilType maps a raw dataset value to a SoilType.
// Unrecognized values default to Stiff.
func ParseSoilType(s string) SoilType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return SoilRock
	case "soft":
		return SoilSoft
	case "very soft", "verysoft", "very_soft":
		return SoilVerySoft
	default:
		return SoilStiff
	}
}

// Amplification returns the soil amplification factor applied to the
// composite hazard score.
func (s SoilType) Amplification() float64 {
	switch s {
	case SoilRock:
		return 0.8
	case SoilSoft:
		return 1.3
	case SoilVerySoft:
		return 1.6
	default:
		return 1.0
	}
}

// HazardLevel is the qualitative band for a 0-10 hazard score.
type HazardLevel string

const (
	HazardLow      HazardLevel = "Low"
	HazardModerate HazardLevel = "Moderate"
	HazardHigh     HazardLevel = "High"
	HazardVeryHigh HazardLevel = "Very High"
)

// ParseHazardLevel maps a raw value to a HazardLevel, defaulting to Moderate.
func ParseHazardLevel(s string) HazardLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return HazardLow
	case "high":
		return HazardHigh
	case "very high", "veryhigh", "very_high":
		return HazardVeryHigh
	default:
		return HazardModerate
	}
}

// DamageMultiplier scales the base vulnerability matrix for this hazard level.
func (h HazardLevel) DamageMultiplier() float64 {
	switch h {
	case HazardLow:
		return 0.5
	case HazardHigh:
		return 1.3
	case HazardVeryHigh:
		return 1.6
	default:
		return 1.0
	}
}

// PopulationDensity classifies how densely populated the surrounding area is.
type PopulationDensity string

const (
	DensityLow    PopulationDensity = "Low"
	DensityMedium PopulationDensity = "Medium"
	DensityHigh   PopulationDensity = "High"
)

// ParsePopulationDensity maps a raw value to a PopulationDensity,
// defaulting to Medium.
func ParsePopulationDensity(s string) PopulationDensity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return DensityLow
	case "high":
		return DensityHigh
	default:
		return DensityMedium
	}
}

// Multiplier scales the base vulnerability matrix for this density.
func (d PopulationDensity) Multiplier() float64 {
	switch d {
	case DensityLow:
		return 0.6
	case DensityHigh:
		return 1.0
	default:
		return 0.8
	}
}

// Material is the primary structural material of a building.
type Material string

const (
	MaterialConcrete Material = "Concrete"
	MaterialSteel    Material = "Steel"
	MaterialBrick    Material = "Brick"
	MaterialWood     Material = "Wood"
	MaterialMixed    Material = "Mixed"
)

// ParseMaterial maps a raw value to a Material. Unrecognized materials
// default to Mixed, the mid-range row of the damage matrix.
func ParseMaterial(s string) Material {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "concrete":
		return MaterialConcrete
	case "steel":
		return MaterialSteel
	case "brick", "masonry":
		return MaterialBrick
	case "wood", "timber":
		return MaterialWood
	default:
		return MaterialMixed
	}
}

// BuildingType classifies a building for valuation purposes.
type BuildingType string

const (
	BuildingResidential BuildingType = "Residential"
	BuildingCommercial  BuildingType = "Commercial"
	BuildingHighRise    BuildingType = "High-rise"
	BuildingSchool      BuildingType = "School"
	BuildingHospital    BuildingType = "Hospital"
	BuildingIndustrial  BuildingType = "Industrial"
)

// ParseBuildingType maps a raw value to a BuildingType, defaulting
// to Residential.
func ParseBuildingType(s string) BuildingType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "commercial":
		return BuildingCommercial
	case "high-rise", "highrise", "high rise":
		return BuildingHighRise
	case "school":
		return BuildingSchool
	case "hospital":
		return BuildingHospital
	case "industrial":
		return BuildingIndustrial
	default:
		return BuildingResidential
	}
}

// DamageLevel bands an estimated damage percentage.
type DamageLevel string

const (
	DamageLow      DamageLevel = "Low"
	DamageModerate DamageLevel = "Moderate"
	DamageHigh     DamageLevel = "High"
)
