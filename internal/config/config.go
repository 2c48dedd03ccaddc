// Package config provides configuration for chess960.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/chess960-go/internal/errors"
	"github.com/lgbarn/chess960-go/internal/logging"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "CHESS960"

// Keys understood in config files and, upper-cased with EnvPrefix, in the
// environment.
const (
	KeyStandard = "standard"
	KeyIndex    = "index"
	KeyLogLevel = "log-level"
)

// Config holds all program configuration.
type Config struct {
	// Index selection. With neither Standard nor HasIndex set a random
	// index is drawn.
	Standard bool
	Index    int
	HasIndex bool

	// Diagnostics
	LogLevel string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:   logging.DefaultLevel,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetIndex selects a fixed position index.
func (c *Config) SetIndex(index int) {
	c.Index = index
	c.HasIndex = true
}

// ClearIndex drops a fixed position index.
func (c *Config) ClearIndex() {
	c.Index = 0
	c.HasIndex = false
}

// Validate checks for contradictory or malformed settings. Index range is
// left to the decoder.
func (c *Config) Validate() error {
	if c.Standard && c.HasIndex {
		return errors.Wrapf(errors.ErrInvalidConfig, "standard position and index %d are mutually exclusive", c.Index)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load overlays settings from the environment and, when path is not empty,
// from a config file. Its format follows the file extension (yaml, toml,
// json, ...). Keys absent from both leave cfg untouched.
func Load(cfg *Config, path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
		}
	}

	if v.IsSet(KeyStandard) {
		standard, err := strconv.ParseBool(v.GetString(KeyStandard))
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "%s: %q is not a boolean", KeyStandard, v.GetString(KeyStandard))
		}
		cfg.Standard = standard
	}

	if v.IsSet(KeyIndex) {
		index, err := strconv.Atoi(strings.TrimSpace(v.GetString(KeyIndex)))
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "%s: %q is not an integer", KeyIndex, v.GetString(KeyIndex))
		}
		cfg.SetIndex(index)
	}

	if v.IsSet(KeyLogLevel) {
		cfg.LogLevel = v.GetString(KeyLogLevel)
	}

	return nil
}
