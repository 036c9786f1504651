package main

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ACORNGEN"

	// maxSupportedArity matches the longest dependency list the resolver
	// documents.
	maxSupportedArity = 16
)

// Config controls what the generator writes.
type Config struct {
	Package  string `mapstructure:"package"`
	Output   string `mapstructure:"out"`
	MaxArity int    `mapstructure:"max"`
	LogLevel string `mapstructure:"log_level"`
}

// loadConfig layers defaults, the optional config file, ACORNGEN_*
// environment variables and finally explicit overrides (set flags).
func loadConfig(file string, overrides map[string]any) (Config, error) {
	v := viper.New()
	v.SetDefault("package", "acorn")
	v.SetDefault("out", "")
	v.SetDefault("max", maxSupportedArity)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates generator configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("out must be set")
	}
	if c.MaxArity < 1 || c.MaxArity > maxSupportedArity {
		return fmt.Errorf("max must be between 1 and %d (got: %d)", maxSupportedArity, c.MaxArity)
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package must be a Go identifier (got: %q)", c.Package)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
