package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	XLSXPath        string
	SheetNames      []string // preferred sheet names, matched case-insensitively in order
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Census geocoder configuration.
	CensusBaseURL    string
	CensusBenchmark  string
	CensusVintage    string
	CensusTimeout    time.Duration
	GeocoderEnabled  bool
	GeocodeCacheSize int

	// Default letter template set.
	TemplateOrg string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	censusTimeout, err := parseDuration("CENSUS_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	geocoderEnabled := true
	if v := os.Getenv("GEOCODER_ENABLED"); v != "" {
		geocoderEnabled = v == "true"
	}

	cfg := &Config{
		XLSXPath:        envOrDefault("XLSX_PATH", "data/master.xlsx"),
		SheetNames:      splitList(envOrDefault("SHEET_NAMES", "Contacts,Directory,Master")),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		CensusBaseURL:    envOrDefault("CENSUS_BASE_URL", "https://geocoding.geo.census.gov/geocoder"),
		CensusBenchmark:  envOrDefault("CENSUS_BENCHMARK", "Public_AR_Current"),
		CensusVintage:    envOrDefault("CENSUS_VINTAGE", "Current_Current"),
		CensusTimeout:    censusTimeout,
		GeocoderEnabled:  geocoderEnabled,
		GeocodeCacheSize: parseCacheSize(),

		TemplateOrg: envOrDefault("TEMPLATE_ORG", "elc"),
	}

	if cfg.XLSXPath == "" {
		return nil, errors.New("XLSX_PATH is required")
	}
	if cfg.CensusBaseURL == "" {
		return nil, errors.New("CENSUS_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseCacheSize() int {
	if s := os.Getenv("GEOCODE_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
