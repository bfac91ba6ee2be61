package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

// Config holds runtime settings for the tunnelpanel CLI.
type Config struct {
	APIBaseURL string `envconfig:"API_BASE_URL"`

	SessionBackend string `envconfig:"SESSION_BACKEND"`
	SessionDBPath  string `envconfig:"SESSION_DB_PATH"`
	RedisAddr      string `envconfig:"REDIS_ADDR"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	RedirectDelay  time.Duration `envconfig:"REDIRECT_DELAY"`
	// RateLimit caps outgoing requests per second; 0 disables it.
	RateLimit float64 `envconfig:"RATE_LIMIT"`

	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogFormat  string `envconfig:"LOG_FORMAT"`
	LogBackend string `envconfig:"LOG_BACKEND"`

	// PackageID preselects a catalog package on the signup screen; 0 means none.
	PackageID int64 `envconfig:"PACKAGE_ID"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://bdtunnel.com/api"
	c.SessionBackend = "sqlite"
	c.SessionDBPath = defaultSessionDBPath()
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisKeyPrefix = "tunnelpanel:"
	c.RequestTimeout = 15 * time.Second
	c.RedirectDelay = 500 * time.Millisecond
	c.RateLimit = 0
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.PackageID = 0
}

func defaultSessionDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tunnelpanel.db"
	}
	return filepath.Join(dir, "tunnelpanel", "session.db")
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url must not be empty")
	}
	switch c.SessionBackend {
	case "sqlite":
		if c.SessionDBPath == "" {
			return fmt.Errorf("session db path must not be empty")
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address must not be empty")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
	if c.RequestTimeout < 0 || c.RedirectDelay < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.PackageID < 0 {
		return fmt.Errorf("package id must not be negative")
	}
	return logging.Validate(c.LogLevel)
}

// LoadConfig builds a Config from defaults, then the environment (including
// .env.local and .env), then the -c/-config file, then command-line flags.
// Later sources take precedence.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
