package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the process configuration. Environment variables take
// precedence over the optional kepler.yaml overlay; a local .env file
// is loaded first when present.
type Config struct {
	Env            string `yaml:"env"`
	ListenAddr     string `yaml:"listen_addr"`
	DatabaseURL    string `yaml:"database_url"`
	RescoreWorkers int    `yaml:"rescore_workers"`
	LogLevel       string `yaml:"log_level"`
}

// OverlayFile is the optional YAML config file looked up in the
// working directory.
const OverlayFile = "kepler.yaml"

func defaults() Config {
	return Config{
		Env:            "development",
		ListenAddr:     ":8080",
		RescoreWorkers: 2,
		LogLevel:       "info",
	}
}

// Load builds the configuration: defaults, then kepler.yaml when
// present, then environment variables. A missing DATABASE_URL is
// reported as an error value so callers can decide whether it is
// fatal; the migrate and serve commands require it, catalog validation
// does not.
func Load() (Config, error) {
	// Best effort: a missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	cfg := defaults()
	if raw, err := os.ReadFile(OverlayFile); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", OverlayFile, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", OverlayFile, err)
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.RescoreWorkers = getenvInt("RESCORE_WORKERS", cfg.RescoreWorkers)

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}
