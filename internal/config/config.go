// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/waytap/internal/tap"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Engine configuration
	Engine EngineConfig `mapstructure:"engine"`

	// Monitor (terminal UI) configuration
	Monitor MonitorConfig `mapstructure:"monitor"`

	// Gesture sink configuration
	Sink SinkConfig `mapstructure:"sink"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// EngineConfig contains gesture engine settings
type EngineConfig struct {
	// Families lists the input families the engine may attach, by name.
	// Order does not matter; priority is always pointer, touch, mouse.
	Families []string `mapstructure:"families"`
}

// MonitorConfig contains terminal monitor settings
type MonitorConfig struct {
	MaxLog int `mapstructure:"max_log"` // Gesture lines kept in the scrollback
}

// SinkConfig contains gesture sink settings
type SinkConfig struct {
	UInputPath string `mapstructure:"uinput_path"`
	UInputName string `mapstructure:"uinput_name"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Engine: EngineConfig{
			Families: []string{"pointer", "touch", "mouse"},
		},
		Monitor: MonitorConfig{
			MaxLog: 500,
		},
		Sink: SinkConfig{
			UInputPath: "/dev/uinput",
			UInputName: "Waytap Virtual Mouse",
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("waytap")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "waytap"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetEnvPrefix("WAYTAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("engine.families", DefaultConfig.Engine.Families)
	viper.SetDefault("monitor.max_log", DefaultConfig.Monitor.MaxLog)
	viper.SetDefault("sink.uinput_path", DefaultConfig.Sink.UInputPath)
	viper.SetDefault("sink.uinput_name", DefaultConfig.Sink.UInputName)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if _, err := c.Engine.ParseFamilies(); err != nil {
		return err
	}
	cfg = c

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// ParseFamilies resolves the configured family names.
func (e EngineConfig) ParseFamilies() ([]tap.Family, error) {
	families := make([]tap.Family, 0, len(e.Families))
	for _, name := range e.Families {
		f, ok := tap.ParseFamily(name)
		if !ok {
			return nil, fmt.Errorf("unknown input family %q in engine.families", name)
		}
		families = append(families, f)
	}
	if len(families) == 0 {
		return nil, fmt.Errorf("engine.families must name at least one family")
	}
	return families, nil
}

// Update replaces the engine and logging sections and saves the file.
func Update(engine EngineConfig, logging LoggingConfig) error {
	if _, err := engine.ParseFamilies(); err != nil {
		return err
	}

	viper.Set("engine.families", engine.Families)
	viper.Set("logging.log_level", logging.LogLevel)

	c := *Get()
	c.Engine = engine
	c.Logging = logging
	cfg = &c

	return Save()
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "waytap.toml"
	}

	return filepath.Join(home, ".config", "waytap", "waytap.toml")
}
