package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tunnelpanel/internal/flagx"
	"github.com/dmitrijs2005/tunnelpanel/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape shared by JSON and YAML config files.
// Durations go through timex.Duration so both "15s" and nanoseconds work.
// Zero values are treated as "not set".
type FileConfig struct {
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	SessionBackend string         `json:"session_backend" yaml:"session_backend"`
	SessionDBPath  string         `json:"session_db_path" yaml:"session_db_path"`
	RedisAddr      string         `json:"redis_addr" yaml:"redis_addr"`
	RedisKeyPrefix string         `json:"redis_key_prefix" yaml:"redis_key_prefix"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RedirectDelay  timex.Duration `json:"redirect_delay" yaml:"redirect_delay"`
	RateLimit      float64        `json:"rate_limit" yaml:"rate_limit"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	LogBackend     string         `json:"log_backend" yaml:"log_backend"`
	PackageID      int64          `json:"package_id" yaml:"package_id"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.SessionBackend, fc.SessionBackend)
	setString(&cfg.SessionDBPath, fc.SessionDBPath)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.RedisKeyPrefix, fc.RedisKeyPrefix)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogBackend, fc.LogBackend)

	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RedirectDelay.Duration != 0 {
		cfg.RedirectDelay = fc.RedirectDelay.Duration
	}
	if fc.RateLimit != 0 {
		cfg.RateLimit = fc.RateLimit
	}
	if fc.PackageID != 0 {
		cfg.PackageID = fc.PackageID
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
