package hazard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seismetric/quake-cli/internal/model"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		magnitude float64
		depthKm   float64
		fault     model.FaultActivity
		soil      model.SoilType
		want      float64
	}{
		{
			// (6*0.7 + (15/15)*2 + 0.6*3) * 1.0 = 4.2 + 2 + 1.8 = 8.0
			name:      "stiff soil medium fault",
			magnitude: 6, depthKm: 10,
			fault: model.FaultActivityMedium, soil: model.SoilStiff,
			want: 8.0,
		},
		{
			// (5*0.7 + (15/25)*2 + 0.3*3) * 0.8 = (3.5+1.2+0.9)*0.8 = 4.48
			name:      "deep event on rock",
			magnitude: 5, depthKm: 20,
			fault: model.FaultActivityLow, soil: model.SoilRock,
			want: 4.48,
		},
		{
			// Shallow strong event on very soft soil saturates the scale.
			name:      "clipped at 10",
			magnitude: 9, depthKm: 1,
			fault: model.FaultActivityHigh, soil: model.SoilVerySoft,
			want: 10,
		},
		{
			// (0*0.7 + (15/5)*2 + 0.3*3) * 0.8 = 6.9*0.8 = 5.52
			name:      "zero magnitude still scores depth and fault",
			magnitude: 0, depthKm: 0,
			fault: model.FaultActivityLow, soil: model.SoilRock,
			want: 5.52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Score(tt.magnitude, tt.depthKm, tt.fault, tt.soil), 0.001)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	for _, soil := range []model.SoilType{model.SoilRock, model.SoilStiff, model.SoilSoft, model.SoilVerySoft} {
		for _, fault := range []model.FaultActivity{model.FaultActivityLow, model.FaultActivityMedium, model.FaultActivityHigh} {
			for mag := 0.0; mag <= 9.5; mag += 0.5 {
				for depth := 1.0; depth <= 50; depth += 7 {
					s := Score(mag, depth, fault, soil)
					assert.GreaterOrEqual(t, s, 0.0)
					assert.LessOrEqual(t, s, 10.0)
				}
			}
		}
	}
}

func TestScoreDefaultOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultScore, Score(math.NaN(), 10, model.FaultActivityLow, model.SoilStiff))
	assert.Equal(t, DefaultScore, Score(6, math.Inf(1), model.FaultActivityLow, model.SoilStiff))
	assert.Equal(t, DefaultScore, Score(6, -5, model.FaultActivityLow, model.SoilStiff))
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  model.HazardLevel
	}{
		{0, model.HazardLow},
		{3.49, model.HazardLow},
		{3.5, model.HazardModerate},
		{5.99, model.HazardModerate},
		{6.0, model.HazardHigh},
		{7.99, model.HazardHigh},
		{8.0, model.HazardVeryHigh},
		{10, model.HazardVeryHigh},
		{math.NaN(), model.HazardModerate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score))
	}
}
