// Package config provides Viper-based configuration loading for the sheet builder.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
)

// LogFileConfig holds the optional rotating log file sink.
type LogFileConfig struct {
	// Enabled turns the file sink on.
	Enabled bool `mapstructure:"enabled"`
	// Path is the log file location.
	Path string `mapstructure:"path"`
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the optional rotating file sink.
	File LogFileConfig `mapstructure:"file"`
}

// BuildConfig holds the point budget and per-level attribute costs.
type BuildConfig struct {
	// TotalPoints is the starting budget.
	TotalPoints int `mapstructure:"total_points"`
	// PrimaryCosts overrides per-level costs of ST, DX, IQ and HT.
	PrimaryCosts map[string]int `mapstructure:"primary_costs"`
	// SecondaryCosts overrides per-level costs of the secondary attributes.
	SecondaryCosts map[string]int `mapstructure:"secondary_costs"`
}

// Costs merges the configured overrides onto the default costs. Keys may use
// any attribute alias ("st", "basic_speed", "move").
//
// Postcondition: Returns complete Costs or an error naming every unknown key.
func (b BuildConfig) Costs() (attribute.Costs, error) {
	costs := attribute.DefaultCosts()
	var errs []error
	apply := func(section string, overrides map[string]int, into map[string]int, primary bool) {
		for key, v := range overrides {
			id, err := attribute.Parse(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("build.%s: %w", section, err))
				continue
			}
			if attribute.IsPrimary(id) != primary {
				errs = append(errs, fmt.Errorf("build.%s: %s is in the wrong section", section, id))
				continue
			}
			into[id] = v
		}
	}
	apply("primary_costs", b.PrimaryCosts, costs.Primary, true)
	apply("secondary_costs", b.SecondaryCosts, costs.Secondary, false)
	if err := errors.Join(errs...); err != nil {
		return attribute.Costs{}, err
	}
	return costs, nil
}

// ContentConfig holds the catalog directories.
type ContentConfig struct {
	SkillsDir    string `mapstructure:"skills_dir"`
	TraitsDir    string `mapstructure:"traits_dir"`
	EquipmentDir string `mapstructure:"equipment_dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Build   BuildConfig   `mapstructure:"build"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBuild(c.Build); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if !l.File.Enabled {
		return nil
	}
	var errs []string
	if l.File.Path == "" {
		errs = append(errs, "logging.file.path must not be empty when the file sink is enabled")
	}
	if l.File.MaxSizeMB < 1 {
		errs = append(errs, fmt.Sprintf("logging.file.max_size_mb must be >= 1, got %d", l.File.MaxSizeMB))
	}
	if l.File.MaxBackups < 0 {
		errs = append(errs, fmt.Sprintf("logging.file.max_backups must be >= 0, got %d", l.File.MaxBackups))
	}
	if l.File.MaxAgeDays < 0 {
		errs = append(errs, fmt.Sprintf("logging.file.max_age_days must be >= 0, got %d", l.File.MaxAgeDays))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBuild(b BuildConfig) error {
	var errs []string
	if b.TotalPoints < 0 {
		errs = append(errs, fmt.Sprintf("build.total_points must be >= 0, got %d", b.TotalPoints))
	}
	costs, err := b.Costs()
	if err != nil {
		errs = append(errs, err.Error())
	} else if err := costs.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("build costs: %v", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.SkillsDir == "" {
		errs = append(errs, "content.skills_dir must not be empty")
	}
	if c.TraitsDir == "" {
		errs = append(errs, "content.traits_dir must not be empty")
	}
	if c.EquipmentDir == "" {
		errs = append(errs, "content.equipment_dir must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with SHEET_ prefix
	v.SetEnvPrefix("SHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "sheet.log")
	v.SetDefault("logging.file.max_size_mb", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age_days", 28)

	v.SetDefault("build.total_points", 100)

	v.SetDefault("content.skills_dir", "content/skills")
	v.SetDefault("content.traits_dir", "content/traits")
	v.SetDefault("content.equipment_dir", "content/equipment")
}
