package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/event"
	"github.com/seismetric/quake-cli/internal/geo"
	"github.com/seismetric/quake-cli/internal/model"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Cluster the city dataset into risk zones",
	Long: `Score every city in the dataset and cluster the results into risk
zones. Zone labels are opaque cluster identifiers, not a severity
ranking; read severity from the hazard level column.

Examples:
  # Zone the configured dataset
  zones

  # Five zones, exported as CSV
  zones --clusters 5 --format csv --output zones.csv

  # GeoJSON for a map overlay (cities with coordinates only)
  zones --format geojson`,
	RunE: runZones,
}

func init() {
	f := zonesCmd.Flags()
	f.Int("clusters", 0, "number of zones (0 = config default)")
	f.String("format", "table", "output format: table, csv, or geojson")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if v, _ := cmd.Flags().GetInt("clusters"); v > 0 {
		cfg.Scorer.Clusters = v
	}
	if err := cfg.Validate("score"); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if format != "table" && format != "csv" && format != "geojson" {
		return eris.Errorf("zones: --format must be table, csv, or geojson (got %q)", format)
	}

	pipeline, err := newPipeline()
	if err != nil {
		return err
	}
	session := newSession(ctx)

	cities := session.Cities(ctx)
	zap.L().Info("zoning dataset",
		zap.Int("cities", len(cities)),
		zap.Int("clusters", cfg.Scorer.Clusters),
	)
	results := pipeline.AssessCities(cities)

	w := os.Stdout
	if outputPath != "" {
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "zones: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	}

	switch format {
	case "csv":
		return writeZonesCSV(w, results)
	case "geojson":
		return writeZonesGeoJSON(w, results)
	default:
		return writeZonesTable(w, results)
	}
}

func writeZonesTable(w *os.File, results []model.CityAssessment) error {
	header := fmt.Sprintf("%-20s %6s %8s %8s %7s %-10s\n",
		"City", "Zone", "Score", "Hazard", "Prob%", "Level")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "zones: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 64)); err != nil {
		return eris.Wrap(err, "zones: write table separator")
	}

	for _, r := range results {
		name := r.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		line := fmt.Sprintf("%-20s %6d %8.4f %8.2f %7.1f %-10s\n",
			name, r.EventZone, r.RiskPropensityScore, r.HazardScore,
			event.Probability(r.RiskPropensityScore), r.HazardLevel)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "zones: write table row")
		}
	}
	return nil
}

func writeZonesCSV(w *os.File, results []model.CityAssessment) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"city", "event_zone", "risk_propensity_score", "hazard_score", "hazard_level"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "zones: write CSV header")
	}

	for _, r := range results {
		row := []string{
			r.Name,
			fmt.Sprintf("%d", r.EventZone),
			fmt.Sprintf("%.4f", r.RiskPropensityScore),
			fmt.Sprintf("%.2f", r.HazardScore),
			string(r.HazardLevel),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "zones: write CSV row")
		}
	}
	return nil
}

func writeZonesGeoJSON(w *os.File, results []model.CityAssessment) error {
	fc := geo.ZoneFeatureCollection(results)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return eris.Wrap(err, "zones: encode geojson")
	}
	return nil
}
