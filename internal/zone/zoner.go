// Package zone groups cities into risk propensity zones. Zone labels are
// opaque cluster IDs, not ordinal risk ranks.
package zone

import (
	"sort"

	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/event"
	"github.com/seismetric/quake-cli/internal/model"
)

// DefaultClusters is the default number of risk zones.
const DefaultClusters = 3

// Zoner assigns risk propensity scores and zone labels to city records.
type Zoner struct {
	clusterer Clusterer
	weight    float64 // event score fault-activity weight
}

// NewZoner creates a Zoner backed by the given clusterer. A nil clusterer
// gets a fixed-seed KMeans so results are reproducible across sessions.
func NewZoner(clusterer Clusterer, eventWeight float64) *Zoner {
	if clusterer == nil {
		clusterer = NewKMeans(42)
	}
	if eventWeight <= 0 {
		eventWeight = event.DefaultWeight
	}
	return &Zoner{clusterer: clusterer, weight: eventWeight}
}

// AssignZones computes each city's risk propensity score and clusters the
// cities into k zones over {frequency, magnitude, time since last event,
// fault activity weight}. When clustering fails the cities are instead
// quantile-binned by propensity score.
func (z *Zoner) AssignZones(cities []model.CityRecord, k int) []model.CityAssessment {
	if k <= 0 {
		k = DefaultClusters
	}

	out := make([]model.CityAssessment, len(cities))
	features := make([][]float64, len(cities))
	scores := make([]float64, len(cities))

	for i, c := range cities {
		score := event.Score(c.FrequencyPastEQ, c.FaultActivity, c.TimeSinceLastEvent, z.weight)
		out[i] = model.CityAssessment{CityRecord: c, RiskPropensityScore: score}
		scores[i] = score
		features[i] = []float64{
			c.FrequencyPastEQ,
			c.AverageMagnitude,
			c.TimeSinceLastEvent,
			c.FaultActivity.Weight(),
		}
	}

	labels, err := z.clusterer.Cluster(features, k)
	if err != nil {
		zap.L().Warn("zone: clustering failed, falling back to quantile bins",
			zap.Int("cities", len(cities)),
			zap.Int("k", k),
			zap.Error(err),
		)
		labels = quantileBins(scores, k)
	}

	for i := range out {
		out[i].EventZone = labels[i]
	}
	return out
}

// quantileBins assigns each score to one of up to k equal-population bins.
// Duplicate bin edges are dropped, so heavily tied inputs produce fewer
// distinct labels.
func quantileBins(scores []float64, k int) []int {
	n := len(scores)
	labels := make([]int, n)
	if n == 0 || k <= 1 {
		return labels
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	// Upper edge of each bin except the last; dedup keeps bins well formed.
	// Edges at or below the minimum would leave an empty bottom bin.
	var edges []float64
	for i := 1; i < k; i++ {
		edge := sorted[i*n/k]
		if edge <= sorted[0] {
			continue
		}
		if len(edges) == 0 || edge > edges[len(edges)-1] {
			edges = append(edges, edge)
		}
	}

	for i, s := range scores {
		label := len(edges)
		for b, edge := range edges {
			if s < edge {
				label = b
				break
			}
		}
		labels[i] = label
	}
	return labels
}
