package config

import (
	"os"
	"testing"
)

func TestLoadUsesDefaultsWhenUnset(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "EPHE_PATH", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		os.Unsetenv(key)
	}
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Ephemeris.DataPath != "data/ephemeris" {
		t.Errorf("DataPath = %q, want data/ephemeris", cfg.Ephemeris.DataPath)
	}
	if cfg.Database.Path != "data/charts.db" {
		t.Errorf("Database.Path = %q, want data/charts.db", cfg.Database.Path)
	}
}

func TestLoadRespectsEnvOverride(t *testing.T) {
	os.Setenv("PORT", "9999")
	defer os.Unsetenv("PORT")

	cfg := Load()
	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q, want 9999 from env override", cfg.Server.Port)
	}
}
