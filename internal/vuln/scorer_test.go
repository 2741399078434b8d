package vuln

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismetric/quake-cli/internal/model"
)

func baseBuilding() model.BuildingRecord {
	return model.BuildingRecord{
		Type:                 model.BuildingResidential,
		AgeYears:             40,
		Material:             model.MaterialConcrete,
		PopulationDensity:    model.DensityHigh,
		PredictedHazardLevel: model.HazardModerate,
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	s := NewScorer(nil)

	// Concrete, 30-50 band: base 45; Moderate x1.0; High density x1.0.
	assert.InDelta(t, 45, s.Score(baseBuilding()), 0.001)

	// Very High hazard: 45 * 1.6 = 72.
	b := baseBuilding()
	b.PredictedHazardLevel = model.HazardVeryHigh
	assert.InDelta(t, 72, s.Score(b), 0.001)

	// Low density scales by 0.6: 45 * 0.6 = 27.
	b = baseBuilding()
	b.PopulationDensity = model.DensityLow
	assert.InDelta(t, 27, s.Score(b), 0.001)

	// Old brick under Very High hazard clamps at 100: 80*1.6 = 128 -> 100.
	b = baseBuilding()
	b.Material = model.MaterialBrick
	b.AgeYears = 60
	b.PredictedHazardLevel = model.HazardVeryHigh
	assert.Equal(t, 100.0, s.Score(b))
}

func TestScoreModifiers(t *testing.T) {
	t.Parallel()

	s := NewScorer(nil)
	base := s.Score(baseBuilding())

	// Retrofitting reduces damage by exactly 30%.
	b := baseBuilding()
	b.HasRetrofitting = true
	assert.InDelta(t, base*0.7, s.Score(b), 0.001)

	// Irregular shape increases damage by exactly 30%.
	b = baseBuilding()
	b.IrregularShape = true
	assert.InDelta(t, base*1.3, s.Score(b), 0.001)

	// Combined: x0.7 then x1.3.
	b = baseBuilding()
	b.HasRetrofitting = true
	b.IrregularShape = true
	assert.InDelta(t, base*0.7*1.3, s.Score(b), 0.001)
}

func TestScoreRange(t *testing.T) {
	t.Parallel()

	s := NewScorer(nil)
	materials := []model.Material{
		model.MaterialConcrete, model.MaterialSteel, model.MaterialBrick,
		model.MaterialWood, model.MaterialMixed, model.Material("papier-mache"),
	}
	levels := []model.HazardLevel{model.HazardLow, model.HazardModerate, model.HazardHigh, model.HazardVeryHigh}

	for _, m := range materials {
		for _, lvl := range levels {
			for _, age := range []int{5, 20, 40, 80} {
				for _, retrofit := range []bool{false, true} {
					got := s.Score(model.BuildingRecord{
						Material:             m,
						AgeYears:             age,
						PopulationDensity:    model.DensityHigh,
						PredictedHazardLevel: lvl,
						HasRetrofitting:      retrofit,
						IrregularShape:       !retrofit,
					})
					assert.GreaterOrEqual(t, got, 0.0)
					assert.LessOrEqual(t, got, 100.0)
				}
			}
		}
	}
}

func TestUnknownMaterialUsesMixedRow(t *testing.T) {
	t.Parallel()

	s := NewScorer(nil)
	b := baseBuilding()
	b.Material = model.Material("adobe")

	mixed := baseBuilding()
	mixed.Material = model.MaterialMixed

	assert.Equal(t, s.Score(mixed), s.Score(b))
}

func TestAgeBand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, AgeBand(0))
	assert.Equal(t, 0, AgeBand(9))
	assert.Equal(t, 1, AgeBand(10))
	assert.Equal(t, 1, AgeBand(30))
	assert.Equal(t, 2, AgeBand(31))
	assert.Equal(t, 2, AgeBand(50))
	assert.Equal(t, 3, AgeBand(51))
	assert.Equal(t, 3, AgeBand(100))
}

func TestCategorizeDamage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.DamageLow, CategorizeDamage(0))
	assert.Equal(t, model.DamageLow, CategorizeDamage(24.9))
	assert.Equal(t, model.DamageModerate, CategorizeDamage(25))
	assert.Equal(t, model.DamageModerate, CategorizeDamage(59.9))
	assert.Equal(t, model.DamageHigh, CategorizeDamage(60))
	assert.Equal(t, model.DamageHigh, CategorizeDamage(100))
}

func TestCasualtyPotential(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Very Low", CasualtyPotential(model.DamageLow, model.DensityLow))
	assert.Equal(t, "Medium", CasualtyPotential(model.DamageModerate, model.DensityMedium))
	assert.Equal(t, "Very High", CasualtyPotential(model.DamageHigh, model.DensityHigh))
	assert.Equal(t, "Medium", CasualtyPotential(model.DamageLevel("Catastrophic"), model.DensityLow))
}

func TestFactors(t *testing.T) {
	t.Parallel()

	b := baseBuilding()
	b.HasRetrofitting = true
	f := NewScorer(nil).Factors(b)

	assert.InDelta(t, 0.45, f["material"], 0.001) // concrete mid-life
	assert.InDelta(t, 1.0, f["age"], 0.001)       // 30-50 band
	assert.InDelta(t, 1.0, f["density"], 0.001)
	assert.InDelta(t, 1.0, f["hazard"], 0.001)
	assert.InDelta(t, 0.7, f["retrofit"], 0.001)
	assert.InDelta(t, 1.0, f["shape"], 0.001)
}

func TestLoadMatrix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
materials:
  Concrete: [10, 20, 30, 40]
`), 0o644))

	m, err := LoadMatrix(path)
	require.NoError(t, err)

	// Overridden row.
	assert.Equal(t, 30.0, m.Base(model.MaterialConcrete, 40))
	// Untouched row keeps the default.
	assert.Equal(t, 70.0, m.Base(model.MaterialBrick, 40))
}

func TestLoadMatrixBadBandCount(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
materials:
  Steel: [10, 20]
`), 0o644))

	_, err := LoadMatrix(path)
	assert.Error(t, err)
}

func TestLoadMatrixMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadMatrix(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
