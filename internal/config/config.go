package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full configuration surface of a run. Values are merged from
// defaults, GSPLIT_* environment variables, and command-line flags, in that
// order of increasing precedence.
type Config struct {
	OutputDir    string  `mapstructure:"out"`
	MaxPoints    int     `mapstructure:"max-points"`
	TZOffset     int     `mapstructure:"tz-offset"`
	MinMove      float64 `mapstructure:"min-move"`
	HDOPMax      float64 `mapstructure:"hdop-max"`
	Filter       bool    `mapstructure:"filter"`
	DropUnsorted bool    `mapstructure:"drop-unsorted"`
	Prefix       string  `mapstructure:"prefix"`
	DryRun       bool    `mapstructure:"dry-run"`
	StatsJSON    bool    `mapstructure:"stats-json"`
	Verbose      bool    `mapstructure:"verbose"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		OutputDir: ".",
		MaxPoints: 500,
		MinMove:   1.25,
		HDOPMax:   15,
		Filter:    true,
	}
}

// Load merges defaults, environment, and the given flag set into a Config
// and validates it. The flag set may be nil (environment and defaults only).
func Load(flags *pflag.FlagSet) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("out", def.OutputDir)
	v.SetDefault("max-points", def.MaxPoints)
	v.SetDefault("tz-offset", def.TZOffset)
	v.SetDefault("min-move", def.MinMove)
	v.SetDefault("hdop-max", def.HDOPMax)
	v.SetDefault("filter", def.Filter)
	v.SetDefault("drop-unsorted", def.DropUnsorted)
	v.SetDefault("prefix", def.Prefix)

	v.SetEnvPrefix("GSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.MaxPoints <= 0 {
		return fmt.Errorf("max-points must be positive, got %d", c.MaxPoints)
	}
	if c.MinMove < 0 {
		return fmt.Errorf("min-move must not be negative, got %g", c.MinMove)
	}
	return nil
}
