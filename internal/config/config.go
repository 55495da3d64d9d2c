package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tpu-info CLI
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Log     LogConfig     `mapstructure:"log"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// MetricsConfig holds the libtpu metric service endpoint configuration.
// Addr takes precedence; when empty, the fallback ports are tried on
// localhost in order.
type MetricsConfig struct {
	Addr          string        `mapstructure:"addr"`
	FallbackPorts []int         `mapstructure:"fallback_ports"`
	DialTimeout   time.Duration `mapstructure:"dial_timeout"`
	CallTimeout   time.Duration `mapstructure:"call_timeout"`
}

// RefreshConfig holds streaming mode configuration
type RefreshConfig struct {
	Rate time.Duration `mapstructure:"rate"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
// If configPath is provided, it will be used to load the configuration from
// that specific file. Otherwise, it will look for config.yaml in standard
// locations, and it is fine for no file to exist at all.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("TPUINFO")
	v.AutomaticEnv()

	// Enable environment variable binding
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	setDefaults(v)

	// If a config path is provided, use that
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Otherwise look for config.yaml in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.config/tpu-info")
	}

	// Read the config file if it exists
	err := v.ReadInConfig()
	if err != nil {
		// If we have a specific config path and it doesn't exist, return error
		if configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// For default config paths, it's okay if no config file is found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Addrs returns the candidate metric service addresses in dial order.
func (m MetricsConfig) Addrs() []string {
	if m.Addr != "" {
		return []string{m.Addr}
	}
	addrs := make([]string, 0, len(m.FallbackPorts))
	for _, port := range m.FallbackPorts {
		addrs = append(addrs, fmt.Sprintf("localhost:%d", port))
	}
	return addrs
}

// setDefaults sets default values for the configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tpu-info")
	v.SetDefault("app.version", "0.2.0")

	// Metric service defaults. 8431 is the port libtpu serves runtime
	// metrics on; 8479 is used by older runtimes.
	v.SetDefault("metrics.addr", "")
	v.SetDefault("metrics.fallback_ports", []int{8431, 8479})
	v.SetDefault("metrics.dial_timeout", 2*time.Second)
	v.SetDefault("metrics.call_timeout", time.Second)

	// Streaming defaults
	v.SetDefault("refresh.rate", time.Second)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}
