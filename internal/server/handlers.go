package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/assess"
	"github.com/seismetric/quake-cli/internal/finance"
	"github.com/seismetric/quake-cli/internal/geo"
	"github.com/seismetric/quake-cli/internal/hazard"
	"github.com/seismetric/quake-cli/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	cities := s.session.Cities(r.Context())
	if s.metrics != nil {
		s.metrics.DatasetCities.Set(float64(len(cities)))
	}
	writeJSON(w, http.StatusOK, cities)
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.AssessCities(s.session.Cities(r.Context())))
}

func (s *Server) handleZonesGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc := geo.ZoneFeatureCollection(s.pipeline.AssessCities(s.session.Cities(r.Context())))
	writeJSON(w, http.StatusOK, fc)
}

// handleTimeline serves the recovery spend curve for a total loss given in
// query parameters. Malformed values follow the defaulting policy rather
// than erroring.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	totalLoss, _ := strconv.ParseFloat(r.URL.Query().Get("total_loss"), 64)
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	writeJSON(w, http.StatusOK, finance.RecoveryTimeline(totalLoss, months))
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assess.Request
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := s.pipeline.Run(r.Context(), s.session, req)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if s.metrics != nil {
		s.metrics.AssessmentsTotal.Inc()
	}
	writeJSON(w, http.StatusOK, a)
}

type hazardRequest struct {
	Magnitude     float64 `json:"magnitude"`
	DepthKm       float64 `json:"depth_km"`
	FaultActivity string  `json:"fault_activity"`
	SoilType      string  `json:"soil_type"`
}

func (s *Server) handleScoreHazard(w http.ResponseWriter, r *http.Request) {
	var req hazardRequest
	if !decodeBody(w, r, &req) {
		s.countScore("hazard", "bad_request")
		return
	}

	score := hazard.Score(req.Magnitude, req.DepthKm,
		model.ParseFaultActivity(req.FaultActivity), model.ParseSoilType(req.SoilType))
	s.countScore("hazard", "ok")
	writeJSON(w, http.StatusOK, map[string]any{
		"hazard_score": score,
		"hazard_level": hazard.Categorize(score),
	})
}

type vulnerabilityRequest struct {
	BuildingType      string `json:"building_type"`
	AgeYears          int    `json:"age_years"`
	Material          string `json:"material"`
	PopulationDensity string `json:"population_density"`
	HasRetrofitting   bool   `json:"has_retrofitting"`
	IrregularShape    bool   `json:"irregular_shape"`
	HazardLevel       string `json:"hazard_level"`
}

func (s *Server) handleScoreVulnerability(w http.ResponseWriter, r *http.Request) {
	var req vulnerabilityRequest
	if !decodeBody(w, r, &req) {
		s.countScore("vulnerability", "bad_request")
		return
	}

	b := model.BuildingRecord{
		Type:                 model.ParseBuildingType(req.BuildingType),
		AgeYears:             req.AgeYears,
		Material:             model.ParseMaterial(req.Material),
		PopulationDensity:    model.ParsePopulationDensity(req.PopulationDensity),
		HasRetrofitting:      req.HasRetrofitting,
		IrregularShape:       req.IrregularShape,
		PredictedHazardLevel: model.ParseHazardLevel(req.HazardLevel),
	}
	s.countScore("vulnerability", "ok")
	writeJSON(w, http.StatusOK, s.pipeline.AssessBuilding(b))
}

func (s *Server) handleScoreImpact(w http.ResponseWriter, r *http.Request) {
	var req model.FinancialInput
	if !decodeBody(w, r, &req) {
		s.countScore("impact", "bad_request")
		return
	}

	result := finance.Impact(req)
	s.countScore("impact", "ok")
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) countScore(stage, outcome string) {
	if s.metrics != nil {
		s.metrics.ScoreRequests.WithLabelValues(stage, outcome).Inc()
	}
}

// decodeBody decodes JSON into v, writing a 400 and returning false on
// malformed bodies. Well-formed bodies with out-of-range values pass
// through; the scorers coerce them.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}
