package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	History  HistoryConfig  `yaml:"history"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address       string          `yaml:"address"`
	ReadTimeout   time.Duration   `yaml:"readTimeout"`
	WriteTimeout  time.Duration   `yaml:"writeTimeout"`
	AllowedOrigin string          `yaml:"allowedOrigin"`
	RateLimit     RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// GeocoderConfig controls the free-text place resolution collaborator.
type GeocoderConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	UserAgent string        `yaml:"userAgent"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheTTL  time.Duration `yaml:"cacheTtl"`
	Valkey    ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the geocode cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// HistoryConfig controls the computed-chart history repository.
type HistoryConfig struct {
	RecentLimit int            `yaml:"recentLimit"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGIN"); v != "" {
		cfg.HTTP.AllowedOrigin = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("GEOCODER_BASE_URL"); v != "" {
		cfg.Geocoder.BaseURL = v
	}
	if v := os.Getenv("GEOCODER_USER_AGENT"); v != "" {
		cfg.Geocoder.UserAgent = v
	}
	if v := os.Getenv("GEOCODER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Geocoder.Timeout = parsed
		}
	}
	if v := os.Getenv("GEOCODER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Geocoder.CacheTTL = parsed
		}
	}
	if v := os.Getenv("GEOCODER_VALKEY_ENABLED"); v != "" {
		cfg.Geocoder.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("GEOCODER_VALKEY_ADDR"); v != "" {
		cfg.Geocoder.Valkey.Addr = v
	}
	if v := os.Getenv("HISTORY_RECENT_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.RecentLimit = parsed
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_DSN"); v != "" {
		cfg.History.Postgres.DSN = v
	}
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MinConns = int32(parsed)
		}
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:       ":8080",
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  5 * time.Second,
			AllowedOrigin: "*",
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Geocoder: GeocoderConfig{
			BaseURL:   "https://nominatim.openstreetmap.org/search",
			UserAgent: "natalchart/1.0",
			Timeout:   10 * time.Second,
			CacheTTL:  24 * time.Hour,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		History: HistoryConfig{
			RecentLimit: 20,
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.AllowedOrigin == "" {
		return errors.New("http.allowedOrigin cannot be empty")
	}
	if c.Geocoder.BaseURL == "" {
		return errors.New("geocoder.baseUrl cannot be empty")
	}
	if c.Geocoder.UserAgent == "" {
		return errors.New("geocoder.userAgent cannot be empty")
	}
	if c.Geocoder.Timeout <= 0 {
		return errors.New("geocoder.timeout must be positive")
	}
	if c.Geocoder.CacheTTL < 0 {
		return errors.New("geocoder.cacheTtl cannot be negative")
	}
	if c.Geocoder.Valkey.Enabled && strings.TrimSpace(c.Geocoder.Valkey.Addr) == "" {
		return errors.New("geocoder.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.History.RecentLimit <= 0 {
		return errors.New("history.recentLimit must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
