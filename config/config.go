package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Upstream   UpstreamConfig   `mapstructure:"upstream"`
	Submission SubmissionConfig `mapstructure:"submission"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Events     EventsConfig     `mapstructure:"events"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"` // debug, release, test
	MaxBodySize int64  `mapstructure:"max_body_size"`
}

// UpstreamConfig describes the payment platform's onboarding API.
type UpstreamConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	TokenPath       string        `mapstructure:"token_path"`
	ApplicationPath string        `mapstructure:"application_path"`
	TokenURL        string        `mapstructure:"token_url"`       // overrides base_url + token_path
	ApplicationURL  string        `mapstructure:"application_url"` // overrides base_url + application_path
	ClientID        string        `mapstructure:"client_id"`
	ClientSecret    string        `mapstructure:"client_secret"`
	Timeout         time.Duration `mapstructure:"timeout"`
	TokenCache      bool          `mapstructure:"token_cache"`
	TokenExpirySkew time.Duration `mapstructure:"token_expiry_skew"`
}

// TokenEndpoint returns the client-credential grant URL.
func (u UpstreamConfig) TokenEndpoint() string {
	return resolveURL(u.TokenURL, u.BaseURL, u.TokenPath)
}

// ApplicationEndpoint returns the create-application URL.
func (u UpstreamConfig) ApplicationEndpoint() string {
	return resolveURL(u.ApplicationURL, u.BaseURL, u.ApplicationPath)
}

type SubmissionConfig struct {
	PackageID         string        `mapstructure:"package_id"`
	Mode              string        `mapstructure:"mode"`             // intake, full
	IdempotencyMode   string        `mapstructure:"idempotency_mode"` // content, random
	IdempotencyWindow time.Duration `mapstructure:"idempotency_window"`
	ReplayCache       bool          `mapstructure:"replay_cache"`
}

type GatewayConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	Path            string `mapstructure:"path"`
	URL             string `mapstructure:"url"` // overrides base_url + path
	AffiliateKey    string `mapstructure:"affiliate_key"`
	FeeScheduleID   string `mapstructure:"fee_schedule_id"`
	DefaultTimezone string `mapstructure:"default_timezone"`
}

// Endpoint returns the gateway-creation URL.
func (g GatewayConfig) Endpoint() string {
	return resolveURL(g.URL, g.BaseURL, g.Path)
}

type EventsConfig struct {
	SigningSecret      string        `mapstructure:"signing_secret"`
	SignatureTolerance time.Duration `mapstructure:"signature_tolerance"`
	DedupTTL           time.Duration `mapstructure:"dedup_ttl"`
	AutoProvision      bool          `mapstructure:"auto_provision"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MHO_ (MerchantHaus Onboarding).
// Nested keys use underscore: MHO_UPSTREAM_CLIENT_ID, MHO_GATEWAY_AFFILIATE_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_size", 1<<20)
	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.token_path", "/oauth2/token")
	v.SetDefault("upstream.application_path", "/v1/applications")
	v.SetDefault("upstream.token_url", "")
	v.SetDefault("upstream.application_url", "")
	v.SetDefault("upstream.client_id", "")
	v.SetDefault("upstream.client_secret", "")
	v.SetDefault("upstream.timeout", "15s")
	v.SetDefault("upstream.token_cache", false)
	v.SetDefault("upstream.token_expiry_skew", "30s")
	v.SetDefault("submission.package_id", "")
	v.SetDefault("submission.mode", "intake")
	v.SetDefault("submission.idempotency_mode", "content")
	v.SetDefault("submission.idempotency_window", "24h")
	v.SetDefault("submission.replay_cache", true)
	v.SetDefault("gateway.base_url", "")
	v.SetDefault("gateway.path", "/v1/gateways")
	v.SetDefault("gateway.url", "")
	v.SetDefault("gateway.affiliate_key", "")
	v.SetDefault("gateway.fee_schedule_id", "")
	v.SetDefault("gateway.default_timezone", "America/New_York")
	v.SetDefault("events.signing_secret", "")
	v.SetDefault("events.signature_tolerance", "5m")
	v.SetDefault("events.dedup_ttl", "72h")
	v.SetDefault("events.auto_provision", false)
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "merchant_onboarding")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// MHO_UPSTREAM_CLIENT_ID -> upstream.client_id
	v.SetEnvPrefix("MHO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects values that can never work. Missing credentials are not
// checked here: each pipeline reports them per request as a configuration error.
func (c *Config) validate() error {
	switch c.Submission.Mode {
	case "intake", "full":
	default:
		return fmt.Errorf("submission.mode must be intake or full, got %q", c.Submission.Mode)
	}
	switch c.Submission.IdempotencyMode {
	case "content", "random":
	default:
		return fmt.Errorf("submission.idempotency_mode must be content or random, got %q", c.Submission.IdempotencyMode)
	}
	if c.Submission.IdempotencyWindow <= 0 {
		return fmt.Errorf("submission.idempotency_window must be positive")
	}
	return nil
}

func resolveURL(override, base, path string) string {
	if override != "" {
		return override
	}
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
