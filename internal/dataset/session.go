package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/seismetric/quake-cli/internal/model"
)

// Session loads the base city dataset once and serves it as read-only
// reference data for the rest of the process. Concurrent first calls
// collapse into a single load.
type Session struct {
	source     string
	seed       uint64
	sampleSize int

	group  singleflight.Group
	mu     sync.RWMutex
	cities []model.CityRecord
}

// NewSession creates a Session for the given source. An empty source means
// always serve a generated sample dataset.
func NewSession(source string, seed uint64, sampleSize int) *Session {
	return &Session{source: source, seed: seed, sampleSize: sampleSize}
}

// NewSessionFromRecords creates a pre-loaded Session over in-memory
// records, bypassing any source. Used by tests and embedding callers.
func NewSessionFromRecords(cities []model.CityRecord) *Session {
	return &Session{cities: cities}
}

// Cities returns the session dataset, loading it on first use. A load
// failure (including file-not-found) falls back to a generated sample so
// the tool always has data to present.
func (s *Session) Cities(ctx context.Context) []model.CityRecord {
	s.mu.RLock()
	if s.cities != nil {
		defer s.mu.RUnlock()
		return s.cities
	}
	s.mu.RUnlock()

	v, _, _ := s.group.Do("load", func() (any, error) {
		cities := s.load(ctx)
		s.mu.Lock()
		s.cities = cities
		s.mu.Unlock()
		return cities, nil
	})
	return v.([]model.CityRecord)
}

func (s *Session) load(ctx context.Context) []model.CityRecord {
	if s.source == "" {
		zap.L().Info("dataset: no source configured, generating sample data",
			zap.Int("cities", s.sampleSize),
		)
		return Sample(s.sampleSize, s.seed)
	}

	cities, err := Load(ctx, s.source, Options{Seed: s.seed})
	if err != nil {
		zap.L().Warn("dataset: load failed, generating sample data",
			zap.String("source", s.source),
			zap.Error(err),
		)
		return Sample(s.sampleSize, s.seed)
	}
	return cities
}

// Find returns the named city from the session dataset by exact name.
func (s *Session) Find(ctx context.Context, name string) (model.CityRecord, bool) {
	for _, c := range s.Cities(ctx) {
		if c.Name == name {
			return c, true
		}
	}
	return model.CityRecord{}, false
}
