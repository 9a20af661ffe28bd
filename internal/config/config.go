package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// AnalysisConfig holds pipeline configuration
type AnalysisConfig struct {
	BandCatalogPath string
	BufferPercent   float64
	MaxUploadBytes  int64
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level zerolog.Level
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:4321,http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BAND_CATALOG_PATH", "")
	v.SetDefault("BUFFER_PERCENT", 20.0)
	v.SetDefault("MAX_UPLOAD_BYTES", 5*1024*1024)
	v.SetDefault("METRICS_ENABLED", true)

	// Environment variables override .env file values
	v.AutomaticEnv()

	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev" // matches the .env.dev filename
	}

	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("LOG_LEVEL")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var config Config
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.Analysis.BandCatalogPath = v.GetString("BAND_CATALOG_PATH")
	config.Analysis.BufferPercent = v.GetFloat64("BUFFER_PERCENT")
	config.Analysis.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")
	config.Metrics.Enabled = v.GetBool("METRICS_ENABLED")
	config.Log.Level = level

	if config.Analysis.BufferPercent < 0 || config.Analysis.BufferPercent > 100 {
		return nil, fmt.Errorf("BUFFER_PERCENT must be between 0 and 100, got %v", config.Analysis.BufferPercent)
	}
	if config.Analysis.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	log.Debug().
		Str("env", config.Server.Env).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Str("band_catalog", config.Analysis.BandCatalogPath).
		Float64("buffer_percent", config.Analysis.BufferPercent).
		Msg("Configuration loaded")

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
