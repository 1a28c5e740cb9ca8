package lotto649

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTicketCount, cfg.Lotto.DefaultCount)
	assert.Equal(t, DefaultPoolSize, cfg.Lotto.PoolSize)
	assert.Equal(t, DefaultMainPicks, cfg.Lotto.MainPicks)
	assert.True(t, cfg.Lotto.Bonus)
	assert.Equal(t, DefaultMaxRetries, cfg.Lotto.MaxRetries)
	assert.Equal(t, SourceXorshift, cfg.Random.Source)
	assert.True(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, DefaultRule(), cfg.Lotto.Rule())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero default count", func(c *Config) { c.Lotto.DefaultCount = 0 }},
		{"negative default count", func(c *Config) { c.Lotto.DefaultCount = -5 }},
		{"unplayable rule", func(c *Config) { c.Lotto.PoolSize = 6 }},
		{"zero max retries", func(c *Config) { c.Lotto.MaxRetries = 0 }},
		{"max retries above ceiling", func(c *Config) { c.Lotto.MaxRetries = MaxRetriesCeiling + 1 }},
		{"unknown random source", func(c *Config) { c.Random.Source = "dice" }},
		{"empty random source", func(c *Config) { c.Random.Source = "" }},
		{"failure ratio above 1", func(c *Config) { c.CircuitBreaker.FailureRatio = 1.5 }},
		{"zero failure ratio", func(c *Config) { c.CircuitBreaker.FailureRatio = 0 }},
		{"zero breaker timeout", func(c *Config) { c.CircuitBreaker.Timeout = 0 }},
		{"missing lotto section", func(c *Config) { c.Lotto = nil }},
		{"missing random section", func(c *Config) { c.Random = nil }},
		{"missing breaker section", func(c *Config) { c.CircuitBreaker = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigManager_Defaults(t *testing.T) {
	// No config file anywhere near a temp dir: defaults must apply
	cm := NewConfigManagerWithFile(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := cm.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultTicketCount, cfg.Lotto.DefaultCount)
	assert.Equal(t, SourceXorshift, cfg.Random.Source)
	assert.Same(t, cfg, cm.GetConfig())
}

func TestConfigManager_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
lotto:
  default_count: 10
  pool_size: 45
  main_picks: 6
  bonus: false
  max_retries: 500
random:
  source: secure
circuit_breaker:
  enabled: false
  timeout: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cm := NewConfigManagerWithFile(path)
	cfg, err := cm.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Lotto.DefaultCount)
	assert.Equal(t, 45, cfg.Lotto.PoolSize)
	assert.False(t, cfg.Lotto.Bonus)
	assert.Equal(t, 500, cfg.Lotto.MaxRetries)
	assert.Equal(t, SourceSecure, cfg.Random.Source)
	assert.False(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, 10*time.Second, cfg.CircuitBreaker.Timeout)

	// Keys absent from the file keep their defaults
	assert.Equal(t, DefaultCircuitBreakerFailureRatio, cfg.CircuitBreaker.FailureRatio)
}

func TestConfigManager_InvalidFileRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
lotto:
  default_count: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cm := NewConfigManagerWithFile(path)
	_, err := cm.LoadConfig()
	assert.Error(t, err)
}

func TestConfigManager_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lotto:\n  default_count: 7\n"), 0o644))

	cm := NewConfigManagerWithFile(path)
	cfg, err := cm.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Lotto.DefaultCount)

	require.NoError(t, os.WriteFile(path, []byte("lotto:\n  default_count: 9\n"), 0o644))
	cfg, err = cm.ReloadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Lotto.DefaultCount)
}

func TestNewDefaultConfigManager(t *testing.T) {
	cm := NewDefaultConfigManager()

	cfg := cm.GetConfig()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
}
