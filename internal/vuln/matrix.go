package vuln

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/seismetric/quake-cli/internal/model"
)

// Matrix holds base damage percentages per material across the four age
// bands (<10, 10-30, 30-50, >50 years), calibrated for Moderate hazard.
type Matrix map[model.Material][4]float64

// DefaultMatrix returns the built-in base damage matrix. Concrete is the
// most resistant material, brick the least.
func DefaultMatrix() Matrix {
	return Matrix{
		model.MaterialConcrete: {25, 35, 45, 60},
		model.MaterialSteel:    {20, 30, 40, 50},
		model.MaterialBrick:    {40, 50, 70, 80},
		model.MaterialWood:     {30, 45, 60, 75},
		model.MaterialMixed:    {35, 45, 55, 70},
	}
}

// AgeBand maps a building age in years to a matrix column index.
func AgeBand(ageYears int) int {
	switch {
	case ageYears < 10:
		return 0
	case ageYears <= 30:
		return 1
	case ageYears <= 50:
		return 2
	default:
		return 3
	}
}

// Base looks up the base damage percentage for a material and age.
// Unknown materials take the Mixed row.
func (m Matrix) Base(material model.Material, ageYears int) float64 {
	row, ok := m[material]
	if !ok {
		row = m[model.MaterialMixed]
	}
	return row[AgeBand(ageYears)]
}

// matrixFile is the YAML shape for a matrix override file: material name
// mapped to exactly four age-band percentages.
type matrixFile struct {
	Materials map[string][]float64 `yaml:"materials"`
}

// LoadMatrix reads a damage matrix override from a YAML file. Materials
// absent from the file keep their built-in rows.
func LoadMatrix(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "vuln: read matrix file %s", path)
	}

	var mf matrixFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, eris.Wrap(err, "vuln: parse matrix file")
	}

	m := DefaultMatrix()
	for name, bands := range mf.Materials {
		if len(bands) != 4 {
			return nil, eris.Errorf("vuln: material %q needs 4 age bands, got %d", name, len(bands))
		}
		var row [4]float64
		copy(row[:], bands)
		m[model.ParseMaterial(name)] = row
	}
	return m, nil
}
