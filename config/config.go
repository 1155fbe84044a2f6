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
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	AES        AESConfig        `mapstructure:"aes"`
	Log        LogConfig        `mapstructure:"log"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	TFN        TFNConfig        `mapstructure:"tfn"`
	Vendors    VendorsConfig    `mapstructure:"vendors"`
	Alert      AlertConfig      `mapstructure:"alert"`
	CDR        CDRConfig        `mapstructure:"cdr"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
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
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key used for vendor tokens at rest
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// PaginationConfig bounds list endpoints.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

// Normalize clamps a requested page and page size into the configured bounds.
func (p PaginationConfig) Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = p.DefaultPageSize
	}
	if p.MaxPageSize > 0 && pageSize > p.MaxPageSize {
		pageSize = p.MaxPageSize
	}
	return page, pageSize
}

// TFNConfig controls the number purchase workflow.
type TFNConfig struct {
	// RatePerNumber multiplies the submitted rate by didQty before debiting.
	// When false the rate is debited as the order total.
	RatePerNumber     bool          `mapstructure:"rate_per_number"`
	DefaultSearchType string        `mapstructure:"default_search_type"`
	PurchaseAttempts  int           `mapstructure:"purchase_attempts"`
	RetryBackoff      time.Duration `mapstructure:"retry_backoff"`
	IdempotencyTTL    time.Duration `mapstructure:"idempotency_ttl"`
	Currency          string        `mapstructure:"currency"`
}

type VendorsConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Commio  CommioConfig  `mapstructure:"commio"`
}

type CommioConfig struct {
	BaseURL   string  `mapstructure:"base_url"`
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second
	Burst     int     `mapstructure:"burst"`
}

// AlertConfig configures operator alert delivery. An empty WebhookURL logs alerts only.
type AlertConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Secret     string        `mapstructure:"secret"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type CDRConfig struct {
	RoundToMinute bool `mapstructure:"round_to_minute"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TELCO_.
// Nested keys use underscore: TELCO_DATABASE_HOST, TELCO_VENDORS_TIMEOUT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "telco_billing")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("pagination.default_page_size", 20)
	v.SetDefault("pagination.max_page_size", 100)
	v.SetDefault("tfn.rate_per_number", false)
	v.SetDefault("tfn.default_search_type", "tollfree")
	v.SetDefault("tfn.purchase_attempts", 3)
	v.SetDefault("tfn.retry_backoff", "500ms")
	v.SetDefault("tfn.idempotency_ttl", "24h")
	v.SetDefault("tfn.currency", "USD")
	v.SetDefault("vendors.timeout", "15s")
	v.SetDefault("vendors.commio.base_url", "https://api.thinq.com")
	v.SetDefault("vendors.commio.rate_limit", 5.0)
	v.SetDefault("vendors.commio.burst", 5)
	v.SetDefault("alert.webhook_url", "")
	v.SetDefault("alert.secret", "")
	v.SetDefault("alert.timeout", "10s")
	v.SetDefault("cdr.round_to_minute", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TELCO_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TELCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.TFN.PurchaseAttempts < 1 {
		cfg.TFN.PurchaseAttempts = 1
	}

	return &cfg, nil
}
