package finance

import (
	"math"
	"strings"
)

// Scenario selects an impact sensitivity case.
type Scenario string

const (
	ScenarioBest     Scenario = "Best Case"
	ScenarioExpected Scenario = "Expected Case"
	ScenarioWorst    Scenario = "Worst Case"
)

// ParseScenario maps a raw value to a Scenario, defaulting to Expected.
func ParseScenario(s string) Scenario {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best", "best case":
		return ScenarioBest
	case "worst", "worst case":
		return ScenarioWorst
	default:
		return ScenarioExpected
	}
}

// Multiplier returns the damage multiplier for the scenario.
func (s Scenario) Multiplier() float64 {
	switch s {
	case ScenarioBest:
		return 0.7
	case ScenarioWorst:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyScenario scales a damage percentage by the scenario multiplier,
// capped at 100.
func ApplyScenario(damagePercent float64, s Scenario) float64 {
	return math.Min(100, damagePercent*s.Multiplier())
}
