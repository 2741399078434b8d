// Package assess chains the four scoring stages into full risk
// assessments.
package assess

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/dataset"
	"github.com/seismetric/quake-cli/internal/event"
	"github.com/seismetric/quake-cli/internal/finance"
	"github.com/seismetric/quake-cli/internal/hazard"
	"github.com/seismetric/quake-cli/internal/model"
	"github.com/seismetric/quake-cli/internal/vuln"
	"github.com/seismetric/quake-cli/internal/zone"
)

// Config holds the pipeline tunables.
type Config struct {
	EventWeight    float64 // fault-activity weight in the event score
	Clusters       int     // number of risk zones
	RecoveryMonths int     // recovery timeline horizon
}

// Pipeline runs the event, hazard, vulnerability, and financial stages.
// All stages are pure; the pipeline only carries their configuration.
type Pipeline struct {
	cfg   Config
	zoner *zone.Zoner
	vuln  *vuln.Scorer
}

// New creates a Pipeline. A nil matrix uses the built-in damage table.
func New(cfg Config, matrix vuln.Matrix) *Pipeline {
	if cfg.EventWeight <= 0 {
		cfg.EventWeight = event.DefaultWeight
	}
	if cfg.Clusters <= 0 {
		cfg.Clusters = zone.DefaultClusters
	}
	if cfg.RecoveryMonths <= 0 {
		cfg.RecoveryMonths = finance.DefaultRecoveryMonths
	}
	return &Pipeline{
		cfg:   cfg,
		zoner: zone.NewZoner(nil, cfg.EventWeight),
		vuln:  vuln.NewScorer(matrix),
	}
}

// AssessCities runs the event scorer, risk zoner, and hazard scorer over
// the whole dataset, producing one derived record per city.
func (p *Pipeline) AssessCities(cities []model.CityRecord) []model.CityAssessment {
	out := p.zoner.AssignZones(cities, p.cfg.Clusters)
	for i := range out {
		c := &out[i]
		c.HazardScore = hazard.Score(c.AverageMagnitude, c.DepthKm, c.FaultActivity, c.SoilType)
		c.HazardLevel = hazard.Categorize(c.HazardScore)
	}
	return out
}

// BuildingAssessment holds the vulnerability stage output for one building.
type BuildingAssessment struct {
	DamagePercent     float64            `json:"damage_percent"`
	DamageLevel       model.DamageLevel  `json:"damage_level"`
	CasualtyPotential string             `json:"casualty_potential"`
	Factors           map[string]float64 `json:"factors"`
}

// AssessBuilding scores a building's expected damage under its predicted
// hazard level.
func (p *Pipeline) AssessBuilding(b model.BuildingRecord) BuildingAssessment {
	damage := p.vuln.Score(b)
	level := vuln.CategorizeDamage(damage)
	return BuildingAssessment{
		DamagePercent:     damage,
		DamageLevel:       level,
		CasualtyPotential: vuln.CasualtyPotential(level, b.PopulationDensity),
		Factors:           p.vuln.Factors(b),
	}
}

// Assessment is the end-to-end result for one city/building/financial
// request.
type Assessment struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	City        model.CityAssessment  `json:"city"`
	Probability float64               `json:"event_probability_percent"`
	Building    BuildingAssessment    `json:"building"`
	Financial   model.FinancialResult `json:"financial"`
	Timeline    []model.TimelineEntry `json:"timeline"`
}

// Request carries the inputs for a full assessment. BuildingValue may be
// zero, in which case it is estimated from the building type and size.
// DamageOverride, when positive, replaces the vulnerability stage output
// in the financial stage.
type Request struct {
	CityName       string               `json:"city"`
	Building       model.BuildingRecord `json:"building"`
	BuildingSqft   float64              `json:"building_sqft"`
	BuildingValue  float64              `json:"building_value"`
	NumStructures  int                  `json:"num_structures"`
	Coverage       float64              `json:"insurance_coverage"`
	DamageOverride float64              `json:"damage_override,omitempty"`
	Scenario       string               `json:"scenario,omitempty"`
}

// Run assesses one city end to end against the session dataset. The
// building's predicted hazard level is taken from the city's hazard stage
// unless the request sets one explicitly.
func (p *Pipeline) Run(ctx context.Context, session *dataset.Session, req Request) (*Assessment, error) {
	city, ok := session.Find(ctx, req.CityName)
	if !ok {
		return nil, eris.Errorf("assess: unknown city %q", req.CityName)
	}

	// Zone and hazard context comes from the full dataset pass so the
	// city's zone label is consistent with the dashboard view.
	var cityAssessment model.CityAssessment
	for _, c := range p.AssessCities(session.Cities(ctx)) {
		if c.Name == city.Name {
			cityAssessment = c
			break
		}
	}

	building := req.Building
	if building.PredictedHazardLevel == "" {
		building.PredictedHazardLevel = cityAssessment.HazardLevel
	}
	buildingAssessment := p.AssessBuilding(building)

	damage := buildingAssessment.DamagePercent
	if req.DamageOverride > 0 {
		damage = req.DamageOverride
	}
	damage = finance.ApplyScenario(damage, finance.ParseScenario(req.Scenario))

	value := req.BuildingValue
	if value <= 0 {
		value = finance.EstimateValue(building.Type, req.BuildingSqft)
	}

	financial := finance.Impact(model.FinancialInput{
		DamagePercent:     damage,
		BuildingValue:     value,
		NumStructures:     req.NumStructures,
		InsuranceCoverage: req.Coverage,
	})

	a := &Assessment{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		City:        cityAssessment,
		Probability: event.Probability(cityAssessment.RiskPropensityScore),
		Building:    buildingAssessment,
		Financial:   financial,
		Timeline:    finance.RecoveryTimeline(float64(financial.TotalLoss), p.cfg.RecoveryMonths),
	}

	zap.L().Info("assess: completed",
		zap.String("id", a.ID),
		zap.String("city", city.Name),
		zap.Float64("damage_percent", damage),
		zap.Int64("net_loss", financial.NetLoss),
	)
	return a, nil
}
