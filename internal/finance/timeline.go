package finance

import (
	"math"

	"github.com/seismetric/quake-cli/internal/model"
)

// DefaultRecoveryMonths is the default recovery horizon.
const DefaultRecoveryMonths = 24

// RecoveryTimeline models a front-loaded, decelerating recovery spend
// curve: cumulative(m) = totalLoss * min(100, 30*log10(m+1)) / 100, with
// month 0 at zero cost. The curve is derived purely from totalLoss and the
// month count; there is no hidden state.
func RecoveryTimeline(totalLoss float64, months int) []model.TimelineEntry {
	if months <= 0 {
		months = DefaultRecoveryMonths
	}
	if !isFinite(totalLoss) || totalLoss < 0 {
		totalLoss = 0
	}

	entries := make([]model.TimelineEntry, 0, months+1)
	prev := 0.0
	for month := 0; month <= months; month++ {
		cumulative := 0.0
		if month > 0 {
			pct := math.Min(100, 30*math.Log10(float64(month+1)))
			cumulative = totalLoss * pct / 100
		}
		entries = append(entries, model.TimelineEntry{
			Month:          month,
			MonthlyCost:    cumulative - prev,
			CumulativeCost: cumulative,
		})
		prev = cumulative
	}
	return entries
}
