package main

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/observability"
	"github.com/seismetric/quake-cli/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the risk assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort > 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		pipeline, err := newPipeline()
		if err != nil {
			return err
		}
		session := newSession(ctx)
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		srv := server.New(server.Config{
			Port:       cfg.Server.Port,
			RatePerSec: cfg.Server.RatePerSec,
			Burst:      cfg.Server.Burst,
		}, session, pipeline, metrics)

		zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
