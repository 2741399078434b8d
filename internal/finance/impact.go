package finance

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// Impact computes loss figures from a damage percentage, building value,
// structure count, and insurance coverage ratio. Out-of-range inputs are
// coerced (damage to [0,100], coverage to [0,1], structures floored at 1);
// non-finite inputs yield all zeroes. Results are rounded to integral
// currency units, with net loss derived from the rounded figures so that
// net = total - recovery holds exactly.
func Impact(in model.FinancialInput) model.FinancialResult {
	if !isFinite(in.DamagePercent) || !isFinite(in.BuildingValue) || !isFinite(in.InsuranceCoverage) {
		return model.FinancialResult{}
	}
	if in.BuildingValue < 0 {
		return model.FinancialResult{}
	}

	damage := math.Min(100, math.Max(0, in.DamagePercent))
	coverage := math.Min(1, math.Max(0, in.InsuranceCoverage))
	structures := in.NumStructures
	if structures < 1 {
		structures = 1
	}

	lossPerStructure := in.BuildingValue * damage / 100
	totalLoss := lossPerStructure * float64(structures)
	recovery := totalLoss * coverage

	total := int64(math.Round(totalLoss))
	recovered := int64(math.Round(recovery))
	return model.FinancialResult{
		TotalLoss:         total,
		InsuranceRecovery: recovered,
		NetLoss:           total - recovered,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
