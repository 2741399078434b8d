package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismetric/quake-cli/internal/model"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullTable(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, `City,Frequency_Past_EQ,Average_Magnitude,Time_Since_Last_Event,Depth_km,Nearby_Fault_Activity,Soil_Type
Guwahati,9,6.8,2,12,High,Soft
Mumbai,2,4.8,12,20,Low,Rock
`)

	cities, err := Load(context.Background(), path, Options{Seed: 1})
	require.NoError(t, err)
	require.Len(t, cities, 2)

	assert.Equal(t, "Guwahati", cities[0].Name)
	assert.Equal(t, 9.0, cities[0].FrequencyPastEQ)
	assert.Equal(t, 6.8, cities[0].AverageMagnitude)
	assert.Equal(t, model.FaultActivityHigh, cities[0].FaultActivity)
	assert.Equal(t, model.SoilSoft, cities[0].SoilType)
	assert.False(t, cities[0].HasCoords)

	assert.Equal(t, model.SoilRock, cities[1].SoilType)
}

func TestLoadCoercesMalformedCells(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, `City,Frequency_Past_EQ,Average_Magnitude,Time_Since_Last_Event,Depth_km,Nearby_Fault_Activity,Soil_Type
Delhi,lots,not-a-number,,abc,Severe,granite
`)

	cities, err := Load(context.Background(), path, Options{Seed: 1})
	require.NoError(t, err)
	require.Len(t, cities, 1)

	c := cities[0]
	assert.Equal(t, 0.0, c.FrequencyPastEQ)     // documented default
	assert.Equal(t, 5.0, c.AverageMagnitude)    // documented default
	assert.Equal(t, 5.0, c.TimeSinceLastEvent)  // documented default
	assert.Equal(t, 10.0, c.DepthKm)            // documented default
	assert.Equal(t, model.FaultActivityLow, c.FaultActivity)
	assert.Equal(t, model.SoilStiff, c.SoilType)
}

func TestLoadSynthesizesMissingColumns(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, `City,Average_Magnitude
Shimla,6.2
Patna,5.1
`)

	cities, err := Load(context.Background(), path, Options{Seed: 7})
	require.NoError(t, err)
	require.Len(t, cities, 2)

	for _, c := range cities {
		assert.GreaterOrEqual(t, c.FrequencyPastEQ, 1.0)
		assert.LessOrEqual(t, c.FrequencyPastEQ, 9.0)
		assert.GreaterOrEqual(t, c.TimeSinceLastEvent, 1.0)
		assert.GreaterOrEqual(t, c.DepthKm, 5.0)
		assert.NotEmpty(t, c.FaultActivity)
		assert.NotEmpty(t, c.SoilType)
	}

	// Same seed, same synthesis.
	again, err := Load(context.Background(), path, Options{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, cities, again)
}

func TestLoadMissingCityColumn(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, `Frequency_Past_EQ,Average_Magnitude
3,5.5
`)

	cities, err := Load(context.Background(), path, Options{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, "City_0", cities[0].Name)
}

func TestLoadCoordinates(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, `City,Average_Magnitude,Latitude,Longitude
Kolkata,5.0,22.57,88.36
Nameless,5.0,,
`)

	cities, err := Load(context.Background(), path, Options{Seed: 1})
	require.NoError(t, err)

	assert.True(t, cities[0].HasCoords)
	assert.InDelta(t, 22.57, cities[0].Latitude, 0.001)
	assert.InDelta(t, 88.36, cities[0].Longitude, 0.001)
	assert.False(t, cities[1].HasCoords)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.Error(t, err)

	empty := writeCSV(t, "City,Average_Magnitude\n")
	_, err = Load(context.Background(), empty, Options{})
	assert.Error(t, err)
}

func TestSampleDeterministic(t *testing.T) {
	t.Parallel()

	a := Sample(10, 42)
	b := Sample(10, 42)
	require.Len(t, a, 10)
	assert.Equal(t, a, b)

	assert.Equal(t, "Guwahati", a[0].Name)
	assert.NotEqual(t, a, Sample(10, 43))

	// Beyond the named list, synthetic names kick in.
	big := Sample(12, 42)
	assert.Equal(t, "City_10", big[10].Name)
}

func TestSessionFallsBackToSample(t *testing.T) {
	t.Parallel()

	s := NewSession(filepath.Join(t.TempDir(), "missing.csv"), 42, 10)
	cities := s.Cities(context.Background())
	require.Len(t, cities, 10)

	// Cached: repeated calls serve the same slice.
	again := s.Cities(context.Background())
	assert.Equal(t, cities, again)
}

func TestSessionFind(t *testing.T) {
	t.Parallel()

	s := NewSession("", 42, 10)
	c, ok := s.Find(context.Background(), "Mumbai")
	require.True(t, ok)
	assert.Equal(t, "Mumbai", c.Name)

	_, ok = s.Find(context.Background(), "Atlantis")
	assert.False(t, ok)
}
