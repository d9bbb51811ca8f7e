// Package config manages fsbatch configuration and data paths.
//
// Settings are read by viper from config.yaml and FSBATCH_* environment
// variables. Only the CLI layer reads them; the engine receives plain values.
package config

import (
	"github.com/spf13/viper"

	"github.com/danieljhkim/fsbatch/internal/logging"
)

// Config holds all user-tunable settings.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Conflict ConflictConfig `mapstructure:"conflict"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Journal  JournalConfig  `mapstructure:"journal"`
}

// DefaultsConfig sets default values for tool flags.
type DefaultsConfig struct {
	// Cleanup removes directories left empty after denest
	Cleanup bool `mapstructure:"cleanup"`
	// IncludeHidden makes hidden files and directories candidates
	IncludeHidden bool `mapstructure:"include_hidden"`
	// Exclude holds glob patterns applied to every run
	Exclude []string `mapstructure:"exclude"`
}

// ConflictConfig tunes the overwrite check.
type ConflictConfig struct {
	// OuterScope selects which existing files count as bystanders for rempref:
	// "root" (files directly in the working directory) or "tree" (every file
	// within the search depth).
	OuterScope string `mapstructure:"outer_scope"`
}

// LoggingConfig controls the structured debug log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log destination; empty disables logging
	File string `mapstructure:"file"`
}

// JournalConfig controls move journals.
type JournalConfig struct {
	// Enabled writes a journal after every executed batch
	Enabled bool `mapstructure:"enabled"`
	// Dir overrides the journal directory
	Dir string `mapstructure:"dir"`
}

// Outer scopes.
const (
	OuterScopeRoot = "root"
	OuterScopeTree = "tree"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Cleanup:       false,
			IncludeHidden: false,
			Exclude:       []string{},
		},
		Conflict: ConflictConfig{
			OuterScope: OuterScopeTree,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
		Journal: JournalConfig{
			Enabled: false,
			Dir:     "",
		},
	}
}

// SetDefaults registers the built-in values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("defaults.cleanup", defaults.Defaults.Cleanup)
	viper.SetDefault("defaults.include_hidden", defaults.Defaults.IncludeHidden)
	viper.SetDefault("defaults.exclude", defaults.Defaults.Exclude)

	viper.SetDefault("conflict.outer_scope", defaults.Conflict.OuterScope)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	viper.SetDefault("journal.dir", defaults.Journal.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	cfg.Logging.Level = logging.ParseLevel(cfg.Logging.Level)

	return &cfg, nil
}

// ValidOuterScopes returns the accepted conflict.outer_scope values.
func ValidOuterScopes() []string {
	return []string{OuterScopeRoot, OuterScopeTree}
}
