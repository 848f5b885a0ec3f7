package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"adc/internal/detect"
)

// ConfigDir is the repo-local directory holding ADC state.
const ConfigDir = ".adc"

// Config represents the complete ADC configuration (v1 schema)
type Config struct {
	Version  int    `json:"version" mapstructure:"version"`
	RepoRoot string `json:"repoRoot" mapstructure:"repoRoot"`

	Detection DetectionConfig `json:"detection" mapstructure:"detection"`
	Store     StoreConfig     `json:"store" mapstructure:"store"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging"`
}

// DetectionConfig tunes the decision thresholds. Criterion weights are
// fixed in the scoring table; only the thresholds on the raw sum are
// configurable.
type DetectionConfig struct {
	RecordThreshold float64 `json:"recordThreshold" mapstructure:"recordThreshold"`
	DeferThreshold  float64 `json:"deferThreshold" mapstructure:"deferThreshold"`
}

// StoreConfig contains decision store configuration
type StoreConfig struct {
	// Path is the decision database path, relative to the repo root
	Path string `json:"path" mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		RepoRoot: ".",
		Detection: DetectionConfig{
			RecordThreshold: detect.DefaultRecordThreshold,
			DeferThreshold:  detect.DefaultDeferThreshold,
		},
		Store: StoreConfig{
			Path: filepath.Join(ConfigDir, "decisions.db"),
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .adc/config.json. A missing config
// file is not an error; defaults are returned instead.
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("repoRoot", defaults.RepoRoot)
	v.SetDefault("detection.recordThreshold", defaults.Detection.RecordThreshold)
	v.SetDefault("detection.deferThreshold", defaults.Detection.DeferThreshold)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .adc/config.json
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", ConfigDir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Detection.RecordThreshold <= 0 || c.Detection.RecordThreshold > 1 {
		return &ConfigError{Field: "detection.recordThreshold", Message: "must be in (0, 1]"}
	}
	if c.Detection.DeferThreshold <= 0 || c.Detection.DeferThreshold >= c.Detection.RecordThreshold {
		return &ConfigError{Field: "detection.deferThreshold", Message: "must be in (0, recordThreshold)"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
