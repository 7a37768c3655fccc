package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrEnvNotConfigured = errors.New("env not configured")

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// browser origins allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`

	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	PostgresUser string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limits, requests per minute per client IP
	LoginRateLimitPerMin  int `toml:"login_rate_limit_per_min"`
	SearchRateLimitPerMin int `toml:"search_rate_limit_per_min"`

	// exercise names cache
	NamesCacheSizeMB     int      `toml:"names_cache_size_mb"`
	NamesCacheTTL        Duration `toml:"names_cache_ttl"`
	SessionsCleanupEvery Duration `toml:"sessions_cleanup_every"`
}

// Duration lets TOML carry values like "5m" or "8h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", env, ErrEnvNotConfigured)
	}

	cfg.setDefaults()
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"https://www.liftlog.app", "https://liftlog.app"}
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LoginRateLimitPerMin <= 0 {
		c.LoginRateLimitPerMin = 10
	}
	if c.SearchRateLimitPerMin <= 0 {
		c.SearchRateLimitPerMin = 60
	}
	if c.NamesCacheSizeMB <= 0 {
		c.NamesCacheSizeMB = 10
	}
	if c.NamesCacheTTL.Duration <= 0 {
		c.NamesCacheTTL.Duration = 5 * time.Minute
	}
	if c.SessionsCleanupEvery.Duration <= 0 {
		c.SessionsCleanupEvery.Duration = 8 * time.Hour
	}
}
