// Package server exposes the scoring pipeline as the dashboard's JSON API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/seismetric/quake-cli/internal/assess"
	"github.com/seismetric/quake-cli/internal/dataset"
	"github.com/seismetric/quake-cli/internal/observability"
)

// Server hosts the dashboard API over a session dataset.
type Server struct {
	httpServer *http.Server
	session    *dataset.Session
	pipeline   *assess.Pipeline
	metrics    *observability.Metrics
	limiter    *rate.Limiter
}

// Config holds the HTTP surface settings.
type Config struct {
	Port      int
	RatePerSec float64 // requests per second allowed per process
	Burst     int
}

// New builds the server and its routes.
func New(cfg Config, session *dataset.Session, pipeline *assess.Pipeline, metrics *observability.Metrics) *Server {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 20
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 40
	}

	s := &Server{
		session:  session,
		pipeline: pipeline,
		metrics:  metrics,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.rateLimit)
	r.Use(s.observe)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/cities", s.handleCities)
		r.Get("/zones", s.handleZones)
		r.Get("/zones/geojson", s.handleZonesGeoJSON)
		r.Get("/timeline", s.handleTimeline)
		r.Post("/assess", s.handleAssess)
		r.Post("/score/hazard", s.handleScoreHazard)
		r.Post("/score/vulnerability", s.handleScoreVulnerability)
		r.Post("/score/impact", s.handleScoreImpact)
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start listens until the context is cancelled, then drains gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		zap.L().Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
	}()

	zap.L().Info("server: listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ServeHTTP delegates to the router, useful for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		next.ServeHTTP(w, r)
		s.metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
