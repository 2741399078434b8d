package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismetric/quake-cli/internal/model"
)

func TestEstimateValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      model.BuildingType
		sizeSqft float64
		want     float64
	}{
		{"residential above floor", model.BuildingResidential, 1000, 2_000_000},
		{"residential hits floor", model.BuildingResidential, 100, 1_000_000},
		{"hospital", model.BuildingHospital, 5000, 25_000_000},
		{"high-rise hits floor", model.BuildingHighRise, 500, 10_000_000},
		{"unknown type uses residential rates", model.BuildingType("Barn"), 1000, 2_000_000},
		{"negative size returns floor", model.BuildingCommercial, -10, 2_500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EstimateValue(tt.typ, tt.sizeSqft))
		})
	}
}

func TestImpact(t *testing.T) {
	t.Parallel()

	// 45% of 2M per structure = 900k; x10 structures = 9M; half insured.
	got := Impact(model.FinancialInput{
		DamagePercent:     45,
		BuildingValue:     2_000_000,
		NumStructures:     10,
		InsuranceCoverage: 0.5,
	})
	assert.Equal(t, int64(9_000_000), got.TotalLoss)
	assert.Equal(t, int64(4_500_000), got.InsuranceRecovery)
	assert.Equal(t, int64(4_500_000), got.NetLoss)
}

func TestImpactInvariants(t *testing.T) {
	t.Parallel()

	for _, coverage := range []float64{0, 0.25, 0.5, 0.9, 1} {
		for _, damage := range []float64{0, 12.5, 45, 100} {
			got := Impact(model.FinancialInput{
				DamagePercent:     damage,
				BuildingValue:     3_333_333,
				NumStructures:     7,
				InsuranceCoverage: coverage,
			})
			assert.GreaterOrEqual(t, got.TotalLoss, int64(0))
			assert.LessOrEqual(t, got.InsuranceRecovery, got.TotalLoss)
			assert.Equal(t, got.TotalLoss-got.InsuranceRecovery, got.NetLoss)
		}
	}
}

func TestImpactCoercion(t *testing.T) {
	t.Parallel()

	// Non-finite inputs zero out rather than failing.
	assert.Equal(t, model.FinancialResult{}, Impact(model.FinancialInput{
		DamagePercent: math.NaN(), BuildingValue: 1_000_000, NumStructures: 1, InsuranceCoverage: 0.5,
	}))
	assert.Equal(t, model.FinancialResult{}, Impact(model.FinancialInput{
		DamagePercent: 50, BuildingValue: math.Inf(1), NumStructures: 1, InsuranceCoverage: 0.5,
	}))
	assert.Equal(t, model.FinancialResult{}, Impact(model.FinancialInput{
		DamagePercent: 50, BuildingValue: -100, NumStructures: 1, InsuranceCoverage: 0.5,
	}))

	// Damage above 100 clamps; structure count floors at 1; coverage clamps.
	got := Impact(model.FinancialInput{
		DamagePercent: 150, BuildingValue: 1_000_000, NumStructures: 0, InsuranceCoverage: 2,
	})
	assert.Equal(t, int64(1_000_000), got.TotalLoss)
	assert.Equal(t, int64(1_000_000), got.InsuranceRecovery)
	assert.Equal(t, int64(0), got.NetLoss)
}

func TestRecoveryTimeline(t *testing.T) {
	t.Parallel()

	entries := RecoveryTimeline(1_000_000, 24)
	require.Len(t, entries, 25)

	// Month 0 carries no cost.
	assert.Equal(t, 0, entries[0].Month)
	assert.Zero(t, entries[0].CumulativeCost)
	assert.Zero(t, entries[0].MonthlyCost)

	// Month 1: 30*log10(2) = 9.03% of the loss.
	assert.InDelta(t, 90_308.99, entries[1].CumulativeCost, 1)

	// Cumulative cost is non-decreasing and bounded by the total loss.
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i].CumulativeCost, entries[i-1].CumulativeCost)
		assert.LessOrEqual(t, entries[i].CumulativeCost, 1_000_000.0)
		assert.InDelta(t, entries[i].CumulativeCost-entries[i-1].CumulativeCost, entries[i].MonthlyCost, 0.0001)
	}

	// The curve saturates at the total loss once 30*log10(m+1) caps at 100.
	long := RecoveryTimeline(1_000_000, 3000)
	assert.InDelta(t, 1_000_000, long[len(long)-1].CumulativeCost, 0.01)
}

func TestRecoveryTimelineDefaults(t *testing.T) {
	t.Parallel()

	// Zero months falls back to the 24-month default.
	assert.Len(t, RecoveryTimeline(500, 0), 25)

	// Invalid loss produces an all-zero curve of the right shape.
	entries := RecoveryTimeline(math.NaN(), 6)
	require.Len(t, entries, 7)
	for _, e := range entries {
		assert.Zero(t, e.CumulativeCost)
	}
}

func TestScenario(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ScenarioBest, ParseScenario("best"))
	assert.Equal(t, ScenarioWorst, ParseScenario("Worst Case"))
	assert.Equal(t, ScenarioExpected, ParseScenario("whatever"))

	assert.InDelta(t, 31.5, ApplyScenario(45, ScenarioBest), 0.001)
	assert.InDelta(t, 45, ApplyScenario(45, ScenarioExpected), 0.001)
	assert.InDelta(t, 67.5, ApplyScenario(45, ScenarioWorst), 0.001)
	assert.Equal(t, 100.0, ApplyScenario(90, ScenarioWorst))
}
