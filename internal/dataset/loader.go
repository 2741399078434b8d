// Package dataset loads the base city table from CSV or XLSX, local or
// remote, coercing malformed values to documented defaults.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/model"
)

// Canonical column names. Matching is case-insensitive.
const (
	ColCity      = "City"
	ColFrequency = "Frequency_Past_EQ"
	ColMagnitude = "Average_Magnitude"
	ColTimeSince = "Time_Since_Last_Event"
	ColDepth     = "Depth_km"
	ColFault     = "Nearby_Fault_Activity"
	ColSoil      = "Soil_Type"
	ColLatitude  = "Latitude"
	ColLongitude = "Longitude"
)

// Numeric defaults applied when a field is missing or non-numeric.
const (
	defaultFrequency = 0
	defaultMagnitude = 5.0
	defaultTimeSince = 5
	defaultDepthKm   = 10
)

// Options configures dataset loading.
type Options struct {
	// Seed drives synthesis of missing columns so a session is reproducible.
	Seed uint64
}

// Load reads the dataset at source, which may be a local path or an
// http(s)/ftp URL. The format is chosen by file extension (.xlsx or CSV
// otherwise). Missing columns are synthesized; malformed numeric cells are
// coerced to defaults, never rejected.
func Load(ctx context.Context, source string, opts Options) ([]model.CityRecord, error) {
	header, rows, err := readTable(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.Errorf("dataset: %s contains no data rows", source)
	}

	cities := buildRecords(header, rows, opts.Seed)
	zap.L().Info("dataset: loaded",
		zap.String("source", source),
		zap.Int("cities", len(cities)),
	)
	return cities, nil
}

func readTable(ctx context.Context, source string) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(stripQuery(source)), ".xlsx") {
		return readXLSX(ctx, source)
	}

	rc, err := open(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rc.Close() }()
	return readCSV(rc)
}

func stripQuery(source string) string {
	if i := strings.IndexByte(source, '?'); i >= 0 {
		return source[:i]
	}
	return source
}

// open resolves a dataset source to a reader: local file by default,
// http(s) or ftp by URL scheme.
func open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetchHTTP(ctx, source)
	case strings.HasPrefix(source, "ftp://"):
		return fetchFTP(ctx, source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: open %s", source)
		}
		return f, nil
	}
}

// readCSV parses the full table, trimming whitespace and tolerating
// variable field counts.
func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, eris.Wrap(err, "dataset: read csv row")
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}
	if header == nil {
		return nil, nil, eris.New("dataset: empty csv")
	}
	return header, rows, nil
}

// buildRecords maps raw rows onto CityRecords, synthesizing any columns
// the table lacks.
func buildRecords(header []string, rows [][]string, seed uint64) []model.CityRecord {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(h)] = i
	}
	col := func(name string) (int, bool) {
		i, ok := idx[strings.ToLower(name)]
		return i, ok
	}

	synth := newSynthesizer(seed)
	cities := make([]model.CityRecord, 0, len(rows))

	for n, row := range rows {
		cell := func(name string) (string, bool) {
			i, ok := col(name)
			if !ok || i >= len(row) {
				return "", false
			}
			return row[i], true
		}

		var c model.CityRecord

		if v, ok := cell(ColCity); ok && v != "" {
			c.Name = v
		} else {
			c.Name = synth.cityName(n)
		}

		c.FrequencyPastEQ = numericOrSynth(cell, ColFrequency, defaultFrequency, synth.frequency)
		c.AverageMagnitude = numericOrSynth(cell, ColMagnitude, defaultMagnitude, synth.magnitude)
		c.TimeSinceLastEvent = numericOrSynth(cell, ColTimeSince, defaultTimeSince, synth.timeSince)
		c.DepthKm = numericOrSynth(cell, ColDepth, defaultDepthKm, synth.depth)

		if v, ok := cell(ColFault); ok && v != "" {
			c.FaultActivity = model.ParseFaultActivity(v)
		} else {
			c.FaultActivity = synth.faultActivity()
		}
		if v, ok := cell(ColSoil); ok && v != "" {
			c.SoilType = model.ParseSoilType(v)
		} else {
			c.SoilType = synth.soilType()
		}

		lat, latOK := parseFloat(row, col, ColLatitude)
		lon, lonOK := parseFloat(row, col, ColLongitude)
		if latOK && lonOK {
			c.Latitude, c.Longitude, c.HasCoords = lat, lon, true
		}

		cities = append(cities, c)
	}
	return cities
}

// numericOrSynth returns the parsed cell value, the synthesized value when
// the column is absent, or the documented default when the cell is present
// but malformed.
func numericOrSynth(cell func(string) (string, bool), name string, def float64, gen func() float64) float64 {
	v, ok := cell(name)
	if !ok {
		return gen()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func parseFloat(row []string, col func(string) (int, bool), name string) (float64, bool) {
	i, ok := col(name)
	if !ok || i >= len(row) {
		return 0, false
	}
	f, err := strconv.ParseFloat(row[i], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
