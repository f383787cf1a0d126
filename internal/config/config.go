// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultListenAddr is the server address used when PORTFOLIO_LISTEN_ADDR is unset.
const DefaultListenAddr = "127.0.0.1:8080"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubAccount string
	GitHubAPIURL  string
	ListenAddr    string
	DBPath        string
	OverridesPath string
	LandingLimit  int
	DefaultLimit  int
	Location      *time.Location
}

// Load reads configuration from environment variables and returns a validated
// Config. A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence over it.
//
// Variables and defaults: PORTFOLIO_GITHUB_ACCOUNT (pecoelho01),
// PORTFOLIO_GITHUB_API_URL (https://api.github.com/), PORTFOLIO_LISTEN_ADDR
// (127.0.0.1:8080), PORTFOLIO_DB_PATH (portfolio.db), PORTFOLIO_OVERRIDES_PATH
// (none), PORTFOLIO_LANDING_LIMIT (6), PORTFOLIO_DEFAULT_LIMIT (100),
// PORTFOLIO_TIMEZONE (America/Sao_Paulo).
func Load() (*Config, error) {
	_ = godotenv.Load()

	landingLimit, err := positiveInt("PORTFOLIO_LANDING_LIMIT", 6)
	if err != nil {
		return nil, err
	}

	defaultLimit, err := positiveInt("PORTFOLIO_DEFAULT_LIMIT", 100)
	if err != nil {
		return nil, err
	}

	tz := stringVar("PORTFOLIO_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("PORTFOLIO_TIMEZONE has invalid time zone %q: %w", tz, err)
	}

	return &Config{
		GitHubAccount: stringVar("PORTFOLIO_GITHUB_ACCOUNT", "pecoelho01"),
		GitHubAPIURL:  stringVar("PORTFOLIO_GITHUB_API_URL", "https://api.github.com/"),
		ListenAddr:    stringVar("PORTFOLIO_LISTEN_ADDR", DefaultListenAddr),
		DBPath:        stringVar("PORTFOLIO_DB_PATH", "portfolio.db"),
		OverridesPath: os.Getenv("PORTFOLIO_OVERRIDES_PATH"),
		LandingLimit:  landingLimit,
		DefaultLimit:  defaultLimit,
		Location:      loc,
	}, nil
}

// ListenAddr resolves only the server's listen address, from the environment
// and .env exactly as Load does, without validating anything else.
func ListenAddr() string {
	_ = godotenv.Load()
	return stringVar("PORTFOLIO_LISTEN_ADDR", DefaultListenAddr)
}

// stringVar returns the variable's value, or def when it is unset or empty.
func stringVar(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func positiveInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
