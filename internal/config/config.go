package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Scorer  ScorerConfig  `yaml:"scorer" mapstructure:"scorer"`
	Geo     GeoConfig     `yaml:"geo" mapstructure:"geo"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DatasetConfig configures where city records come from. Source accepts
// a local path or an http(s)/ftp URL; an empty source falls back to a
// synthesized sample.
type DatasetConfig struct {
	Source     string `yaml:"source" mapstructure:"source"`
	Seed       uint64 `yaml:"seed" mapstructure:"seed"`
	SampleSize int    `yaml:"sample_size" mapstructure:"sample_size"`
}

// ScorerConfig holds the scoring pipeline tunables.
type ScorerConfig struct {
	EventWeight    float64 `yaml:"event_weight" mapstructure:"event_weight"`
	Clusters       int     `yaml:"clusters" mapstructure:"clusters"`
	RecoveryMonths int     `yaml:"recovery_months" mapstructure:"recovery_months"`
	MatrixPath     string  `yaml:"matrix_path" mapstructure:"matrix_path"`
}

// GeoConfig configures fault-trace classification.
type GeoConfig struct {
	FaultShapefile string  `yaml:"fault_shapefile" mapstructure:"fault_shapefile"`
	NearKm         float64 `yaml:"near_km" mapstructure:"near_km"`
	FarKm          float64 `yaml:"far_km" mapstructure:"far_km"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port       int     `yaml:"port" mapstructure:"port"`
	RatePerSec float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst      int     `yaml:"burst" mapstructure:"burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks the configuration for the given run mode. Scoring
// commands tolerate a missing dataset source (the loader synthesizes a
// sample); serve additionally needs a usable port and rate limit.
func (c *Config) Validate(mode string) error {
	var problems []string

	if c.Scorer.Clusters < 1 || c.Scorer.Clusters > 10 {
		problems = append(problems, "scorer.clusters must be between 1 and 10")
	}
	if c.Scorer.EventWeight <= 0 {
		problems = append(problems, "scorer.event_weight must be > 0")
	}
	if c.Scorer.RecoveryMonths < 1 {
		problems = append(problems, "scorer.recovery_months must be >= 1")
	}
	if c.Geo.NearKm <= 0 || c.Geo.FarKm <= c.Geo.NearKm {
		problems = append(problems, "geo.near_km must be > 0 and < geo.far_km")
	}

	switch mode {
	case "score":
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Server.RatePerSec <= 0 {
			problems = append(problems, "server.rate_per_sec must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("QUAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.seed", 42)
	v.SetDefault("dataset.sample_size", 25)
	v.SetDefault("scorer.event_weight", 1.5)
	v.SetDefault("scorer.clusters", 3)
	v.SetDefault("scorer.recovery_months", 24)
	v.SetDefault("geo.near_km", 25)
	v.SetDefault("geo.far_km", 100)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_sec", 10)
	v.SetDefault("server.burst", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
