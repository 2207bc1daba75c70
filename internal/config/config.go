package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	LogLevel      string
	JWTSecret     string
	AuthUser      string
	AuthPassword  string
	TokenTTL      time.Duration
	QuoteTimeout  time.Duration
	WatchInterval time.Duration
	TLSCertFile   string
	TLSKeyFile    string

	// PriceEndpoint is where the session's price client sends quote requests.
	PriceEndpoint string
	// PriceAPIKey is the bearer credential for PriceEndpoint. When empty the
	// server signs one for itself.
	PriceAPIKey string
	// HomeOrigin is the departure point of every price lookup.
	HomeOrigin    string
	SeedDemoTrips bool
}

// Load reads defaults, an optional config file and the environment, in that
// order of precedence (environment wins). The file path comes from
// TRIPS_CONFIG; otherwise config.* is looked up in the usual places.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("auth_user", "demo")
	v.SetDefault("auth_pass", "demo123")
	v.SetDefault("token_ttl", "1h")
	v.SetDefault("quote_timeout", "5s")
	v.SetDefault("watch_interval", "30s")
	v.SetDefault("price_endpoint", "http://localhost:8080/flight-prices")
	v.SetDefault("home_origin", "Los Angeles, CA (hometown)")
	v.SetDefault("seed_demo_trips", true)

	if path := os.Getenv("TRIPS_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/trips")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
		slog.Debug("no config file found, using defaults + env vars")
	}

	v.AutomaticEnv()

	var bad []string
	durations := map[string]*time.Duration{}
	cfg := &Config{
		Port:          v.GetString("port"),
		LogLevel:      v.GetString("log_level"),
		JWTSecret:     v.GetString("jwt_secret"),
		AuthUser:      v.GetString("auth_user"),
		AuthPassword:  v.GetString("auth_pass"),
		TLSCertFile:   v.GetString("tls_cert_file"),
		TLSKeyFile:    v.GetString("tls_key_file"),
		PriceEndpoint: v.GetString("price_endpoint"),
		PriceAPIKey:   v.GetString("price_api_key"),
		HomeOrigin:    v.GetString("home_origin"),
		SeedDemoTrips: v.GetBool("seed_demo_trips"),
	}
	durations["token_ttl"] = &cfg.TokenTTL
	durations["quote_timeout"] = &cfg.QuoteTimeout
	durations["watch_interval"] = &cfg.WatchInterval

	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil || d <= 0 {
			bad = append(bad, key)
			continue
		}
		*dst = d
	}
	if cfg.JWTSecret == "" {
		bad = append(bad, "jwt_secret")
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, fmt.Errorf("config: missing or invalid values: %s", strings.Join(bad, ", "))
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
