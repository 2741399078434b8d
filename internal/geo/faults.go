// Package geo supplies the spatial extras around the scoring core: fault
// proximity classification and the dashboard map overlay.
package geo

import (
	"math"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/model"
)

const earthRadiusKm = 6371.0

// Distance thresholds for fault activity classification, in km.
const (
	DefaultNearKm = 25.0
	DefaultFarKm  = 100.0
)

// FaultClassifier rates fault activity for a location from its distance to
// the nearest mapped fault trace.
type FaultClassifier struct {
	traces [][]point // lon/lat vertices per trace
	nearKm float64
	farKm  float64
}

type point struct {
	lon, lat float64
}

// LoadFaultTraces reads polyline fault traces from a shapefile. Thresholds
// at or below zero take the defaults.
func LoadFaultTraces(shpPath string, nearKm, farKm float64) (*FaultClassifier, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: open fault shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	if nearKm <= 0 {
		nearKm = DefaultNearKm
	}
	if farKm <= nearKm {
		farKm = DefaultFarKm
	}

	var traces [][]point
	for reader.Next() {
		_, shape := reader.Shape()
		line, ok := shape.(*shp.PolyLine)
		if !ok {
			continue
		}
		trace := make([]point, 0, len(line.Points))
		for _, p := range line.Points {
			trace = append(trace, point{lon: p.X, lat: p.Y})
		}
		if len(trace) > 0 {
			traces = append(traces, trace)
		}
	}
	if len(traces) == 0 {
		return nil, eris.Errorf("geo: no polyline traces in %s", shpPath)
	}

	zap.L().Info("geo: loaded fault traces",
		zap.String("path", shpPath),
		zap.Int("traces", len(traces)),
	)
	return &FaultClassifier{traces: traces, nearKm: nearKm, farKm: farKm}, nil
}

// Activity classifies fault activity for a coordinate: High within nearKm
// of a trace, Medium within farKm, Low beyond.
func (fc *FaultClassifier) Activity(lat, lon float64) model.FaultActivity {
	d := fc.NearestKm(lat, lon)
	switch {
	case d <= fc.nearKm:
		return model.FaultActivityHigh
	case d <= fc.farKm:
		return model.FaultActivityMedium
	default:
		return model.FaultActivityLow
	}
}

// NearestKm returns the distance to the closest fault trace vertex.
// Vertex distance is a fine approximation at these thresholds since fault
// trace vertices are densely spaced relative to the 25/100 km bands.
func (fc *FaultClassifier) NearestKm(lat, lon float64) float64 {
	best := math.Inf(1)
	for _, trace := range fc.traces {
		for _, v := range trace {
			if d := haversineKm(lat, lon, v.lat, v.lon); d < best {
				best = d
			}
		}
	}
	return best
}

// Annotate fills in fault activity for cities with coordinates, leaving
// cities without coordinates untouched.
func (fc *FaultClassifier) Annotate(cities []model.CityRecord) []model.CityRecord {
	out := append([]model.CityRecord(nil), cities...)
	for i, c := range out {
		if !c.HasCoords {
			continue
		}
		out[i].FaultActivity = fc.Activity(c.Latitude, c.Longitude)
	}
	return out
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
