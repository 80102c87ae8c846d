// Package config provides centralized configuration for all telegen commands.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigError marks a fatal configuration problem: the process cannot
// produce valid output and must terminate instead of looping.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "config: " + e.msg
}

// Errorf builds a ConfigError with a formatted message.
func Errorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// Config is the master configuration for the generator commands.
type Config struct {
	Tenants []string `mapstructure:"tenants"`

	Events  EventsConfig  `mapstructure:"events"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Rates   RatesConfig   `mapstructure:"rates"`
	Logging LoggingConfig `mapstructure:"logging"`

	// Seed makes generator runs deterministic when non-zero.
	Seed int64 `mapstructure:"seed"`
}

// EventsConfig holds auth event generator configuration.
type EventsConfig struct {
	Interval time.Duration `mapstructure:"interval"`

	// FakeIdentities widens the legitimate username and IP pools with
	// synthesized identities at startup. 0 keeps the built-in pools.
	FakeIdentities int `mapstructure:"fake_identities"`
}

// MetricsConfig holds metric generator configuration.
type MetricsConfig struct {
	Interval       time.Duration `mapstructure:"interval"`
	PushgatewayURL string        `mapstructure:"pushgateway_url"`
	Job            string        `mapstructure:"job"`

	// TopologyFile optionally replaces the built-in provider/interface
	// topology with one loaded from YAML.
	TopologyFile string `mapstructure:"topology_file"`

	CombinationSkipProbability float64 `mapstructure:"combination_skip_probability"`
	NodeSkipProbability        float64 `mapstructure:"node_skip_probability"`

	// MaxSamplesPerCycle caps the emitted label cardinality per cycle.
	// 0 disables the cap.
	MaxSamplesPerCycle int `mapstructure:"max_samples_per_cycle"`
}

// RatesConfig holds currency-rate stub configuration.
type RatesConfig struct {
	Port int `mapstructure:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables use underscore-joined keys, e.g.
// TENANTS, METRICS_PUSHGATEWAY_URL, LOGGING_LEVEL.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// TENANTS comes in as one comma-separated string from the
	// environment; normalize either form into a clean slice.
	cfg.Tenants = SplitTenants(v.GetString("tenants"))

	return &cfg, nil
}

// SplitTenants parses a comma-separated tenant list, trimming whitespace
// and dropping empty entries.
func SplitTenants(raw string) []string {
	var tenants []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tenants = append(tenants, t)
		}
	}
	return tenants
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tenants", "")

	v.SetDefault("events.interval", "2s")
	v.SetDefault("events.fake_identities", 0)

	v.SetDefault("metrics.interval", "15s")
	v.SetDefault("metrics.pushgateway_url", "http://pushgateway:19091")
	v.SetDefault("metrics.job", "cnstraffic_metrics")
	v.SetDefault("metrics.topology_file", "")
	v.SetDefault("metrics.combination_skip_probability", 0.30)
	v.SetDefault("metrics.node_skip_probability", 0.40)
	v.SetDefault("metrics.max_samples_per_cycle", 50000)

	v.SetDefault("rates.port", 8080)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("seed", 0)
}
