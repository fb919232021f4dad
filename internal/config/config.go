// Package config loads seqkit settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"seqkit/sliceutil"
)

// Output formats accepted by the CLI.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Environment variables that override the config file.
const (
	EnvLogLevel = "SEQKIT_LOG_LEVEL"
	EnvOutput   = "SEQKIT_OUTPUT"
	EnvWorkers  = "SEQKIT_WORKERS"
)

// DefaultFileName is looked up in the user's home directory when no path is given.
const DefaultFileName = ".seqkit.yaml"

// ValidOutputs lists the allowed output formats.
var ValidOutputs = []string{OutputYAML, OutputJSON}

// Configuration errors.
var (
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidWorkers  = errors.New("workers must not be negative")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the settings shared by all commands.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Output   string `yaml:"output"`
	// Workers bounds the goroutines used by parallel resampling; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		Output:   OutputYAML,
	}
}

// DefaultPath returns $HOME/.seqkit.yaml, or "" if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads the YAML file at path over the defaults.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !sliceutil.Contains(ValidOutputs, c.Output) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidOutput, c.Output, ValidOutputs)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}
