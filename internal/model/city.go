package model

// CityRecord is one row of the base city dataset, loaded once per session
// and treated as read-only reference data.
type CityRecord struct {
	Name               string        `json:"city"`
	FrequencyPastEQ    float64       `json:"frequency_past_eq"`
	AverageMagnitude   float64       `json:"average_magnitude"`
	TimeSinceLastEvent float64       `json:"time_since_last_event"`
	DepthKm            float64       `json:"depth_km"`
	FaultActivity      FaultActivity `json:"nearby_fault_activity"`
	SoilType           SoilType      `json:"soil_type"`

	// Optional coordinates for the dashboard map overlay. Zero when the
	// dataset carries no Latitude/Longitude columns.
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	HasCoords bool    `json:"-"`
}

// CityAssessment is a CityRecord augmented with derived scores. The base
// record is copied, never mutated in place.
type CityAssessment struct {
	CityRecord

	RiskPropensityScore float64     `json:"risk_propensity_score"`
	EventZone           int         `json:"event_zone"`
	HazardScore         float64     `json:"hazard_score"`
	HazardLevel         HazardLevel `json:"hazard_level"`
}
