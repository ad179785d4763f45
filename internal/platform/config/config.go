// Package config loads application configuration from environment variables.
// All variables use the PATHWAYS_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	Engine      EngineConfig
	Log         LogConfig
	CatalogPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL runs the
// service on in-memory stores.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// recommendation cache.
type CacheConfig struct {
	URL        string
	TTLSeconds int
}

// EngineConfig holds recommendation engine settings.
type EngineConfig struct {
	MatchThreshold float64
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with PATHWAYS_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("PATHWAYS_SERVER_PORT", 8080),
			Host: envStr("PATHWAYS_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("PATHWAYS_DATABASE_URL", ""),
			MaxConns: envInt("PATHWAYS_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("PATHWAYS_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL:        envStr("PATHWAYS_CACHE_URL", ""),
			TTLSeconds: envInt("PATHWAYS_CACHE_TTL_SECONDS", 300),
		},
		Engine: EngineConfig{
			MatchThreshold: envFloat("PATHWAYS_ENGINE_MATCH_THRESHOLD", 50),
		},
		Log: LogConfig{
			Level:  envStr("PATHWAYS_LOG_LEVEL", "info"),
			Format: envStr("PATHWAYS_LOG_FORMAT", "json"),
		},
		CatalogPath: envStr("PATHWAYS_CATALOG_PATH", ""),
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PATHWAYS_SERVER_PORT must be a valid port, got %d", c.Server.Port)
	}

	if c.Engine.MatchThreshold < 0 || c.Engine.MatchThreshold > 100 {
		return fmt.Errorf("PATHWAYS_ENGINE_MATCH_THRESHOLD must be between 0 and 100, got %v", c.Engine.MatchThreshold)
	}

	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("PATHWAYS_CACHE_TTL_SECONDS must not be negative, got %d", c.Cache.TTLSeconds)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("PATHWAYS_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
