package lotto649

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration
type Config struct {
	// Lotto holds the game rule and run defaults
	Lotto *LottoConfig `mapstructure:"lotto"`

	// Random selects the randomness source
	Random *RandomConfig `mapstructure:"random"`

	// CircuitBreaker guards the secure entropy source
	CircuitBreaker *CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// Validate checks the full configuration
func (c *Config) Validate() error {
	if c.Lotto == nil || c.Random == nil || c.CircuitBreaker == nil {
		return fmt.Errorf("incomplete config: lotto, random and circuit_breaker sections are required")
	}

	if c.Lotto.DefaultCount < 1 {
		return ErrInvalidTicketCount
	}
	if err := c.Lotto.Rule().Validate(); err != nil {
		return err
	}
	if c.Lotto.MaxRetries < 1 || c.Lotto.MaxRetries > MaxRetriesCeiling {
		return ErrInvalidMaxRetries
	}

	switch c.Random.Source {
	case SourceXorshift, SourceSecure:
	default:
		return ErrUnknownSource
	}

	if c.CircuitBreaker.FailureRatio <= 0 || c.CircuitBreaker.FailureRatio > 1 {
		return fmt.Errorf("circuit breaker failure ratio must be in (0, 1]")
	}
	if c.CircuitBreaker.Timeout <= 0 {
		return fmt.Errorf("circuit breaker timeout must be positive")
	}

	return nil
}

// LottoConfig holds the game rule and run defaults
type LottoConfig struct {
	DefaultCount int  `mapstructure:"default_count"`
	PoolSize     int  `mapstructure:"pool_size"`
	MainPicks    int  `mapstructure:"main_picks"`
	Bonus        bool `mapstructure:"bonus"`
	MaxRetries   int  `mapstructure:"max_retries"`
}

// Rule builds the game rule described by this section
func (lc *LottoConfig) Rule() Rule {
	return Rule{
		PoolSize:  lc.PoolSize,
		MainPicks: lc.MainPicks,
		Bonus:     lc.Bonus,
	}
}

// DefaultLottoConfig returns the 6/49-with-bonus defaults
func DefaultLottoConfig() *LottoConfig {
	return &LottoConfig{
		DefaultCount: DefaultTicketCount,
		PoolSize:     DefaultPoolSize,
		MainPicks:    DefaultMainPicks,
		Bonus:        true,
		MaxRetries:   DefaultMaxRetries,
	}
}

// RandomConfig selects the randomness source
type RandomConfig struct {
	// Source is "xorshift" (seeded PRNG, default) or "secure" (CSPRNG behind
	// the circuit breaker)
	Source string `mapstructure:"source"`
}

// DefaultRandomConfig returns the seeded-PRNG default
func DefaultRandomConfig() *RandomConfig {
	return &RandomConfig{Source: SourceXorshift}
}

// CircuitBreakerConfig configures the entropy breaker
type CircuitBreakerConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Name          string        `mapstructure:"name"`
	MaxRequests   uint32        `mapstructure:"max_requests"`
	Interval      time.Duration `mapstructure:"interval"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FailureRatio  float64       `mapstructure:"failure_ratio"`
	MinRequests   uint32        `mapstructure:"min_requests"`
	OnStateChange bool          `mapstructure:"on_state_change"`
}

// DefaultCircuitBreakerConfig returns the default breaker configuration
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Enabled:       true,
		Name:          DefaultCircuitBreakerName,
		MaxRequests:   DefaultCircuitBreakerMaxRequests,
		Interval:      DefaultCircuitBreakerInterval,
		Timeout:       DefaultCircuitBreakerTimeout,
		FailureRatio:  DefaultCircuitBreakerFailureRatio,
		MinRequests:   DefaultCircuitBreakerMinRequests,
		OnStateChange: true,
	}
}

// DefaultConfig returns the complete default configuration
func DefaultConfig() *Config {
	return &Config{
		Lotto:          DefaultLottoConfig(),
		Random:         DefaultRandomConfig(),
		CircuitBreaker: DefaultCircuitBreakerConfig(),
	}
}

// ConfigManager loads, validates and watches the configuration
type ConfigManager struct {
	viper  *viper.Viper
	config *Config
}

// NewConfigManager creates a config manager with the standard search paths
// and the LOTTO_ environment prefix
func NewConfigManager() *ConfigManager {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lotto649")
	v.AddConfigPath("$HOME/.lotto649")

	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigManager{viper: v}
}

// NewConfigManagerWithFile creates a config manager pinned to one config file
func NewConfigManagerWithFile(path string) *ConfigManager {
	cm := NewConfigManager()
	cm.viper.SetConfigFile(path)
	return cm
}

// LoadConfig reads, unmarshals and validates the configuration. A missing
// config file is not an error; defaults apply.
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	cm.setDefaults()

	if err := cm.viper.ReadInConfig(); err != nil {
		// Search-path mode and pinned-file mode report a missing file
		// differently
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := cm.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cm.config = config
	return config, nil
}

// setDefaults registers the default value of every key
func (cm *ConfigManager) setDefaults() {
	cm.viper.SetDefault("lotto.default_count", DefaultTicketCount)
	cm.viper.SetDefault("lotto.pool_size", DefaultPoolSize)
	cm.viper.SetDefault("lotto.main_picks", DefaultMainPicks)
	cm.viper.SetDefault("lotto.bonus", true)
	cm.viper.SetDefault("lotto.max_retries", DefaultMaxRetries)

	cm.viper.SetDefault("random.source", SourceXorshift)

	cm.viper.SetDefault("circuit_breaker.enabled", true)
	cm.viper.SetDefault("circuit_breaker.name", DefaultCircuitBreakerName)
	cm.viper.SetDefault("circuit_breaker.max_requests", DefaultCircuitBreakerMaxRequests)
	cm.viper.SetDefault("circuit_breaker.interval", "60s")
	cm.viper.SetDefault("circuit_breaker.timeout", "30s")
	cm.viper.SetDefault("circuit_breaker.failure_ratio", DefaultCircuitBreakerFailureRatio)
	cm.viper.SetDefault("circuit_breaker.min_requests", DefaultCircuitBreakerMinRequests)
	cm.viper.SetDefault("circuit_breaker.on_state_change", true)
}

// WatchConfig reloads the configuration when the config file changes. Invalid
// updates are ignored and the previous configuration stays active.
func (cm *ConfigManager) WatchConfig(callback func(*Config)) error {
	cm.viper.WatchConfig()
	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		config := &Config{}
		if err := cm.viper.Unmarshal(config); err != nil {
			return
		}

		if err := config.Validate(); err != nil {
			return
		}

		cm.config = config
		if callback != nil {
			callback(config)
		}
	})

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config { return cm.config }

// ReloadConfig re-reads the configuration from disk
func (cm *ConfigManager) ReloadConfig() (*Config, error) { return cm.LoadConfig() }

// NewDefaultConfigManager creates a manager preloaded with the defaults,
// without touching the filesystem
func NewDefaultConfigManager() *ConfigManager {
	cm := NewConfigManager()
	cm.setDefaults()
	cm.config = DefaultConfig()
	return cm
}
