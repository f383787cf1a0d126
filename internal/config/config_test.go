package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PORTFOLIO_ env var that Load() reads.
var allConfigKeys = []string{
	"PORTFOLIO_GITHUB_ACCOUNT",
	"PORTFOLIO_GITHUB_API_URL",
	"PORTFOLIO_LISTEN_ADDR",
	"PORTFOLIO_DB_PATH",
	"PORTFOLIO_OVERRIDES_PATH",
	"PORTFOLIO_LANDING_LIMIT",
	"PORTFOLIO_DEFAULT_LIMIT",
	"PORTFOLIO_TIMEZONE",
}

// isolateConfigEnv saves and unsets all PORTFOLIO_ env vars so tests don't
// inherit values from the host environment. It also moves into an empty
// directory so no stray .env file is picked up. t.Cleanup restores both.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "pecoelho01", cfg.GitHubAccount)
	assert.Equal(t, "https://api.github.com/", cfg.GitHubAPIURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "", cfg.OverridesPath)
	assert.Equal(t, 6, cfg.LandingLimit)
	assert.Equal(t, 100, cfg.DefaultLimit)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location.String())
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_GITHUB_ACCOUNT", "octocat")
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PORTFOLIO_DB_PATH", "/tmp/test.db")
	t.Setenv("PORTFOLIO_OVERRIDES_PATH", "/etc/portfolio/overrides.toml")
	t.Setenv("PORTFOLIO_LANDING_LIMIT", "4")
	t.Setenv("PORTFOLIO_DEFAULT_LIMIT", "30")
	t.Setenv("PORTFOLIO_TIMEZONE", "UTC")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubAccount)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/etc/portfolio/overrides.toml", cfg.OverridesPath)
	assert.Equal(t, 4, cfg.LandingLimit)
	assert.Equal(t, 30, cfg.DefaultLimit)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateConfigEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PORTFOLIO_GITHUB_ACCOUNT=from-dotenv\nPORTFOLIO_LANDING_LIMIT=2\n"), 0o600))
	t.Setenv("PORTFOLIO_LANDING_LIMIT", "9")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.GitHubAccount)
	assert.Equal(t, 9, cfg.LandingLimit, "environment wins over .env")
}

func TestListenAddr(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		isolateConfigEnv(t)
		assert.Equal(t, DefaultListenAddr, ListenAddr())
	})

	t.Run("from .env", func(t *testing.T) {
		isolateConfigEnv(t)
		require.NoError(t, os.WriteFile(".env", []byte("PORTFOLIO_LISTEN_ADDR=0.0.0.0:9191\n"), 0o600))
		assert.Equal(t, "0.0.0.0:9191", ListenAddr())
	})

	t.Run("environment wins", func(t *testing.T) {
		isolateConfigEnv(t)
		require.NoError(t, os.WriteFile(".env", []byte("PORTFOLIO_LISTEN_ADDR=0.0.0.0:9191\n"), 0o600))
		t.Setenv("PORTFOLIO_LISTEN_ADDR", ":7070")
		assert.Equal(t, ":7070", ListenAddr())
	})
}

func TestLoad_InvalidLimit(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "not a number", key: "PORTFOLIO_LANDING_LIMIT", value: "six", wantErr: "PORTFOLIO_LANDING_LIMIT has invalid integer"},
		{name: "zero", key: "PORTFOLIO_DEFAULT_LIMIT", value: "0", wantErr: "PORTFOLIO_DEFAULT_LIMIT must be positive"},
		{name: "negative", key: "PORTFOLIO_LANDING_LIMIT", value: "-1", wantErr: "PORTFOLIO_LANDING_LIMIT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_TIMEZONE has invalid time zone")
}
