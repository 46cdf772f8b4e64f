package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig
	Ephemeris EphemerisConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
}

// EphemerisConfig points the ephemeris provider at its data files.
type EphemerisConfig struct {
	DataPath string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string // SQLite path for the persisted chart-blob store
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
			Host: getEnvOrDefault("HOST", "localhost"),
		},
		Ephemeris: EphemerisConfig{
			DataPath: getEnvOrDefault("EPHE_PATH", "data/ephemeris"),
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DB_PATH", "data/charts.db"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "console"),
		},
	}
}

// getEnvOrDefault gets an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
