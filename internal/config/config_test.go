package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/you/go-trip-tracker/internal/config"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TRIPS_CONFIG", "PORT", "LOG_LEVEL", "JWT_SECRET", "AUTH_USER", "AUTH_PASS",
		"TOKEN_TTL", "QUOTE_TIMEOUT", "WATCH_INTERVAL", "PRICE_ENDPOINT", "PRICE_API_KEY",
		"HOME_ORIGIN", "SEED_DEMO_TRIPS", "TLS_CERT_FILE", "TLS_KEY_FILE",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, "demo", cfg.AuthUser)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 5*time.Second, cfg.QuoteTimeout)
	require.Equal(t, 30*time.Second, cfg.WatchInterval)
	require.Equal(t, "http://localhost:8080/flight-prices", cfg.PriceEndpoint)
	require.Equal(t, "Los Angeles, CA (hometown)", cfg.HomeOrigin)
	require.True(t, cfg.SeedDemoTrips)
	require.Empty(t, cfg.PriceAPIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUOTE_TIMEOUT", "250ms")
	t.Setenv("HOME_ORIGIN", "Chicago, IL")
	t.Setenv("SEED_DEMO_TRIPS", "false")
	t.Setenv("PRICE_API_KEY", "anon")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, 250*time.Millisecond, cfg.QuoteTimeout)
	require.Equal(t, "Chicago, IL", cfg.HomeOrigin)
	require.False(t, cfg.SeedDemoTrips)
	require.Equal(t, "anon", cfg.PriceAPIKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "trips.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt_secret: from-file\nport: \"7000\"\nwatch_interval: 5s\n"), 0o600))
	t.Setenv("TRIPS_CONFIG", path)
	t.Setenv("PORT", "7001")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.JWTSecret)
	require.Equal(t, "7001", cfg.Port, "environment wins over the file")
	require.Equal(t, 5*time.Second, cfg.WatchInterval)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TRIPS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()

	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUOTE_TIMEOUT", "soon")
	t.Setenv("TOKEN_TTL", "-1h")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "jwt_secret")
	require.ErrorContains(t, err, "quote_timeout")
	require.ErrorContains(t, err, "token_ttl")
}

func TestSlogLevel_Fallback(t *testing.T) {
	cfg := &config.Config{LogLevel: "chatty"}
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
