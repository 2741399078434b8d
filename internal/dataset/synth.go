package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/seismetric/quake-cli/internal/model"
)

// synthesizer generates plausible values for columns the dataset lacks,
// from a seeded generator so a session's synthesized data is reproducible.
type synthesizer struct {
	rng *rand.Rand
}

func newSynthesizer(seed uint64) *synthesizer {
	return &synthesizer{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *synthesizer) cityName(row int) string {
	return fmt.Sprintf("City_%d", row)
}

func (s *synthesizer) frequency() float64 {
	return float64(1 + s.rng.IntN(9)) // 1..9 events in the past decade
}

func (s *synthesizer) magnitude() float64 {
	m := 4.0 + s.rng.Float64()*3.5 // 4.0..7.5
	return math.Round(m*10) / 10
}

func (s *synthesizer) timeSince() float64 {
	return float64(1 + s.rng.IntN(19)) // 1..19 years
}

func (s *synthesizer) depth() float64 {
	return float64(5 + s.rng.IntN(25)) // 5..29 km
}

func (s *synthesizer) faultActivity() model.FaultActivity {
	return []model.FaultActivity{
		model.FaultActivityLow,
		model.FaultActivityMedium,
		model.FaultActivityHigh,
	}[s.rng.IntN(3)]
}

func (s *synthesizer) soilType() model.SoilType {
	return []model.SoilType{
		model.SoilRock,
		model.SoilStiff,
		model.SoilSoft,
		model.SoilVerySoft,
	}[s.rng.IntN(4)]
}

// sampleCityNames seeds the generated fallback dataset.
var sampleCityNames = []string{
	"Guwahati", "Shimla", "Srinagar", "Delhi", "Dehradun",
	"Patna", "Kolkata", "Ahmedabad", "Mumbai", "Chennai",
}

// Sample generates a synthetic dataset of n cities. Used when no dataset
// file is available.
func Sample(n int, seed uint64) []model.CityRecord {
	if n <= 0 {
		n = len(sampleCityNames)
	}
	s := newSynthesizer(seed)

	cities := make([]model.CityRecord, n)
	for i := range cities {
		name := s.cityName(i)
		if i < len(sampleCityNames) {
			name = sampleCityNames[i]
		}
		cities[i] = model.CityRecord{
			Name:               name,
			FrequencyPastEQ:    s.frequency(),
			AverageMagnitude:   s.magnitude(),
			TimeSinceLastEvent: s.timeSince(),
			DepthKm:            s.depth(),
			FaultActivity:      s.faultActivity(),
			SoilType:           s.soilType(),
		}
	}
	return cities
}
