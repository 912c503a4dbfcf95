// Package config loads viewer settings from an optional config file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the viewer settings. CLI flags override file values.
type Config struct {
	// CatalogPath is the CSV catalog to load. Empty selects the built-in
	// TRAPPIST-1 system.
	CatalogPath string `mapstructure:"catalog"`

	// ScalePxPerAU is the initial display scale in pixels per AU.
	ScalePxPerAU float64 `mapstructure:"scale_px_per_au"`

	// TimeAccel is how many simulated seconds pass per wall-clock second.
	TimeAccel float64 `mapstructure:"time_accel"`

	// TickRate is the interval between simulation ticks.
	TickRate time.Duration `mapstructure:"tick_rate"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ScalePxPerAU: 100,
		TimeAccel:    86400, // one simulated day per second
		TickRate:     50 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Load reads the config file at path, falling back to defaults for unset
// keys. An empty path returns the defaults; a missing file at an explicit
// path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("scale_px_per_au", cfg.ScalePxPerAU)
	v.SetDefault("time_accel", cfg.TimeAccel)
	v.SetDefault("tick_rate", cfg.TickRate)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ScalePxPerAU <= 0 {
		return fmt.Errorf("scale_px_per_au must be positive, got %v", c.ScalePxPerAU)
	}
	if c.TimeAccel <= 0 {
		return fmt.Errorf("time_accel must be positive, got %v", c.TimeAccel)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", c.TickRate)
	}
	return nil
}
