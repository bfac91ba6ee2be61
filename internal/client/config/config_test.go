package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://bdtunnel.com/api", c.APIBaseURL)
	assert.Equal(t, "sqlite", c.SessionBackend)
	assert.NotEmpty(t, c.SessionDBPath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, c.RedirectDelay)
	assert.Zero(t, c.PackageID)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.APIBaseURL = "" }},
		{"unknown backend", func(c *Config) { c.SessionBackend = "etcd" }},
		{"sqlite without path", func(c *Config) { c.SessionDBPath = "" }},
		{"redis without addr", func(c *Config) { c.SessionBackend = "redis"; c.RedisAddr = "" }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"negative package", func(c *Config) { c.PackageID = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := defaults()
			tc.mutate(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("TUNNEL_API_BASE_URL", "https://env.example/api")
	t.Setenv("TUNNEL_REQUEST_TIMEOUT", "20s")
	t.Setenv("TUNNEL_LOG_LEVEL", "info")

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: https://file.example/api\nredirect_delay: 1s\n"), 0o600))

	cfg, err := load([]string{"-c", path, "-p", "2", "-l", "debug"})
	require.NoError(t, err)

	want := defaults()
	want.APIBaseURL = "https://file.example/api"
	want.RequestTimeout = 20 * time.Second
	want.RedirectDelay = time.Second
	want.LogLevel = "debug"
	want.PackageID = 2

	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("TUNNEL_REDIS_KEY_PREFIX=local:\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TUNNEL_REDIS_KEY_PREFIX=shared:\nTUNNEL_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("TUNNEL_REDIS_KEY_PREFIX")
		_ = os.Unsetenv("TUNNEL_LOG_FORMAT")
	})
	t.Setenv("TUNNEL_SESSION_BACKEND", "redis")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, "local:", cfg.RedisKeyPrefix)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "redis", cfg.SessionBackend)
}

func TestLoad_InvalidResultIsRejected(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TUNNEL_SESSION_BACKEND", "etcd")

	_, err := load(nil)
	require.Error(t, err)
}
