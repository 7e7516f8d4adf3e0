// Package config loads the portal configuration from a YAML file and environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
		// TrustedProxies lists IPs or CIDRs whose X-Forwarded-For is honored. Empty trusts none.
		TrustedProxies []string `yaml:"trusted_proxies"`
	} `yaml:"server"`

	Database struct {
		Driver        string `yaml:"driver"`
		Host          string `yaml:"host"`
		Port          string `yaml:"port"`
		User          string `yaml:"user"`
		Password      string `yaml:"password"`
		Name          string `yaml:"name"`
		SSLMode       string `yaml:"sslmode"`
		Path          string `yaml:"path"`
		RunMigrations bool   `yaml:"run_migrations"`
		ConnectWait   string `yaml:"connect_wait"`
	} `yaml:"database"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Auth struct {
		TokenTTL        string `yaml:"token_ttl"`
		LoginRateLimit  int    `yaml:"login_rate_limit"`
		LoginRateWindow string `yaml:"login_rate_window"`
	} `yaml:"auth"`

	Cache struct {
		TTL       string `yaml:"ttl"`
		Namespace string `yaml:"namespace"`
	} `yaml:"cache"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Load reads the YAML file at path (if it exists), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "release"

	cfg.Database.Driver = DriverPostgres
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "student_portal"
	cfg.Database.SSLMode = "disable"
	cfg.Database.Path = "student_portal.db"
	cfg.Database.ConnectWait = "60s"

	cfg.Redis.Port = "6379"

	cfg.Auth.TokenTTL = "24h"
	cfg.Auth.LoginRateLimit = 10
	cfg.Auth.LoginRateWindow = "1m"

	cfg.Cache.TTL = "5m"
	cfg.Cache.Namespace = "announcements"

	cfg.Logging.Level = "info"
}

func loadFromEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")
	setList(&cfg.Server.TrustedProxies, "TRUSTED_PROXIES")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Database.Path, "DB_PATH")
	setString(&cfg.Database.ConnectWait, "DB_CONNECT_WAIT")
	if err := setBool(&cfg.Database.RunMigrations, "RUN_MIGRATIONS"); err != nil {
		return err
	}

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if err := setInt(&cfg.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}

	setString(&cfg.Auth.TokenTTL, "TOKEN_TTL")
	if err := setInt(&cfg.Auth.LoginRateLimit, "LOGIN_RATE_LIMIT"); err != nil {
		return err
	}
	setString(&cfg.Auth.LoginRateWindow, "LOGIN_RATE_WINDOW")

	setString(&cfg.Cache.TTL, "CACHE_TTL")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	return setBool(&cfg.Logging.Pretty, "LOG_PRETTY")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// setList reads a comma-separated list. An empty value clears the list.
func setList(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// Validate checks driver names and duration settings.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	for name, raw := range map[string]string{
		"auth.token_ttl":         c.Auth.TokenTTL,
		"auth.login_rate_window": c.Auth.LoginRateWindow,
		"cache.ttl":              c.Cache.TTL,
		"database.connect_wait":  c.Database.ConnectWait,
	} {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.Auth.LoginRateLimit <= 0 {
		return fmt.Errorf("auth.login_rate_limit must be positive")
	}

	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid server.trusted_proxies entry %q", p)
			}
		}
	}
	return nil
}

// TokenTTL returns the lifetime of issued bearer tokens.
func (c *Config) TokenTTL() time.Duration { return mustDuration(c.Auth.TokenTTL) }

// LoginRateWindow returns the window of the login rate limiter.
func (c *Config) LoginRateWindow() time.Duration { return mustDuration(c.Auth.LoginRateWindow) }

// CacheTTL returns the lifetime of cached announcement lists.
func (c *Config) CacheTTL() time.Duration { return mustDuration(c.Cache.TTL) }

// ConnectWait returns how long to keep retrying the initial database connection.
func (c *Config) ConnectWait() time.Duration { return mustDuration(c.Database.ConnectWait) }

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool { return c.Redis.Host != "" }

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string { return c.Redis.Host + ":" + c.Redis.Port }

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string { return ":" + c.Server.Port }

// mustDuration is only called on values that passed Validate.
func mustDuration(raw string) time.Duration {
	d, _ := time.ParseDuration(raw)
	return d
}
