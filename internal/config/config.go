// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Compositor session selection
	Session SessionConfig `mapstructure:"session"`

	// Event stream settings
	Events EventsConfig `mapstructure:"events"`

	// Command socket settings
	Commands CommandsConfig `mapstructure:"commands"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// SessionConfig selects which compositor instance to talk to. Both fields
// empty means "use HYPRLAND_INSTANCE_SIGNATURE from the environment".
type SessionConfig struct {
	Signature  string `mapstructure:"signature"`
	RuntimeDir string `mapstructure:"runtime_dir"`
}

// EventsConfig tunes the event-socket driver.
type EventsConfig struct {
	BufferSize int      `mapstructure:"buffer_size"` // socket read-chunk size in bytes
	Kinds      []string `mapstructure:"kinds"`       // default listen/watch filter; empty = all
}

// CommandsConfig tunes the command-socket client.
type CommandsConfig struct {
	TimeoutMS int `mapstructure:"timeout_ms"` // per-request deadline
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // overrides HYPRWIRE_LOG_LEVEL
}

// DefaultConfig provides sensible defaults
var DefaultConfig = Config{
	Events: EventsConfig{
		BufferSize: 4096,
	},
	Commands: CommandsConfig{
		TimeoutMS: 5000,
	},
	Logging: LoggingConfig{
		LogLevel: "",
	},
}

var (
	cfg                *Config
	configPathOverride string
)

// SetConfigPath overrides the config file location (from the --config flag).
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init loads the configuration, creating defaults where no file exists.
func Init() error {
	viper.SetConfigName("hyprwire")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hyprwire"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetDefault("session.signature", DefaultConfig.Session.Signature)
	viper.SetDefault("session.runtime_dir", DefaultConfig.Session.RuntimeDir)
	viper.SetDefault("events.buffer_size", DefaultConfig.Events.BufferSize)
	viper.SetDefault("events.kinds", DefaultConfig.Events.Kinds)
	viper.SetDefault("commands.timeout_ms", DefaultConfig.Commands.TimeoutMS)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No file is fine; defaults apply.
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the loaded configuration, initializing defaults if Init was
// never called.
func Get() *Config {
	if cfg == nil {
		c := DefaultConfig
		cfg = &c
	}
	return cfg
}
