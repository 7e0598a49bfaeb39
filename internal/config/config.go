package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// DefaultDatabaseURL is where the FAA publishes the Releasable Aircraft database.
const DefaultDatabaseURL = "https://registry.faa.gov/database/ReleasableAircraft.zip"

// Output file names written into DataDir.
const (
	ArchiveFileName = "ReleasableAircraft.zip"
	ReportFileName  = "ReleasableDrone.csv"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	DatabaseURL string
	DataDir     string
	LogLevel    string
	LogFormat   string

	DownloadTimeout  time.Duration
	DownloadMaxTries uint

	// MetricsTextfile, when set, receives run metrics in node_exporter
	// textfile format.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	downloadTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("DOWNLOAD_TIMEOUT", "5m"))
	if err != nil || downloadTimeout <= 0 {
		return nil, errors.New("invalid DOWNLOAD_TIMEOUT")
	}

	maxTries, err := parseMaxTries()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:      sharedcfg.EnvOrDefault("FAA_DATABASE_URL", DefaultDatabaseURL),
		DataDir:          sharedcfg.EnvOrDefault("DATA_DIR", "."),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		DownloadTimeout:  downloadTimeout,
		DownloadMaxTries: maxTries,
		MetricsTextfile:  sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("FAA_DATABASE_URL is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}

	return cfg, nil
}

func parseMaxTries() (uint, error) {
	s := sharedcfg.EnvOrDefault("DOWNLOAD_MAX_TRIES", "3")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 20 {
		return 0, fmt.Errorf("invalid DOWNLOAD_MAX_TRIES %q: must be between 1 and 20", s)
	}
	return uint(n), nil
}
