package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/assess"
	"github.com/seismetric/quake-cli/internal/config"
	"github.com/seismetric/quake-cli/internal/dataset"
	"github.com/seismetric/quake-cli/internal/geo"
	"github.com/seismetric/quake-cli/internal/vuln"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "quake-cli",
	Short: "Earthquake risk assessment pipeline",
	Long:  "Scores event likelihood, hazard severity, building vulnerability, and financial loss for a city dataset, clusters cities into risk zones, and serves the results over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newSession builds the dataset session from config, annotating fault
// activity from the configured shapefile when one is set.
func newSession(ctx context.Context) *dataset.Session {
	session := dataset.NewSession(cfg.Dataset.Source, cfg.Dataset.Seed, cfg.Dataset.SampleSize)
	if cfg.Geo.FaultShapefile == "" {
		return session
	}

	fc, err := geo.LoadFaultTraces(cfg.Geo.FaultShapefile, cfg.Geo.NearKm, cfg.Geo.FarKm)
	if err != nil {
		zap.L().Warn("fault shapefile unavailable, keeping dataset fault activity",
			zap.String("path", cfg.Geo.FaultShapefile),
			zap.Error(err),
		)
		return session
	}
	return dataset.NewSessionFromRecords(fc.Annotate(session.Cities(ctx)))
}

// newPipeline builds the assessment pipeline from config, loading the
// damage matrix override when one is configured.
func newPipeline() (*assess.Pipeline, error) {
	var matrix vuln.Matrix
	if cfg.Scorer.MatrixPath != "" {
		m, err := vuln.LoadMatrix(cfg.Scorer.MatrixPath)
		if err != nil {
			return nil, err
		}
		matrix = m
	}
	return assess.New(assess.Config{
		EventWeight:    cfg.Scorer.EventWeight,
		Clusters:       cfg.Scorer.Clusters,
		RecoveryMonths: cfg.Scorer.RecoveryMonths,
	}, matrix), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
