package model

// FinancialInput carries the inputs to a financial impact estimate.
// DamagePercent is typically the vulnerability scorer's output, but a
// caller-supplied override is equally valid.
type FinancialInput struct {
	DamagePercent     float64 `json:"damage_percent"`
	BuildingValue     float64 `json:"building_value"`
	NumStructures     int     `json:"num_structures"`
	InsuranceCoverage float64 `json:"insurance_coverage"`
}

// FinancialResult holds loss figures in integral currency units.
// NetLoss is always exactly TotalLoss - InsuranceRecovery.
type FinancialResult struct {
	TotalLoss         int64 `json:"total_loss"`
	InsuranceRecovery int64 `json:"insurance_recovery"`
	NetLoss           int64 `json:"net_loss"`
}

// TimelineEntry is one month of the recovery spend curve.
type TimelineEntry struct {
	Month          int     `json:"month"`
	MonthlyCost    float64 `json:"monthly_cost"`
	CumulativeCost float64 `json:"cumulative_cost"`
}
