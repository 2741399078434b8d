package geo

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/seismetric/quake-cli/internal/model"
)

// ZoneFeatureCollection renders assessed cities as a GeoJSON
// FeatureCollection for the dashboard map, one point feature per city with
// its zone and scores as properties. Cities without coordinates are
// skipped.
func ZoneFeatureCollection(cities []model.CityAssessment) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{}
	for _, c := range cities {
		if !c.HasCoords {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       c.Name,
			Geometry: geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude}),
			Properties: map[string]any{
				"city":                  c.Name,
				"event_zone":            c.EventZone,
				"risk_propensity_score": c.RiskPropensityScore,
				"hazard_score":          c.HazardScore,
				"hazard_level":          string(c.HazardLevel),
			},
		})
	}
	return fc
}
