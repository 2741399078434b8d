package model

// BuildingRecord describes a structure being assessed for seismic
// vulnerability. Constructed fresh per evaluation request.
type BuildingRecord struct {
	Type                 BuildingType      `json:"building_type"`
	AgeYears             int               `json:"age_years"`
	Material             Material          `json:"material"`
	PopulationDensity    PopulationDensity `json:"population_density"`
	HasRetrofitting      bool              `json:"has_retrofitting"`
	IrregularShape       bool              `json:"irregular_shape"`
	PredictedHazardLevel HazardLevel       `json:"predicted_hazard_level"`
}
