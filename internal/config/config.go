// Package config loads the almanac CLI configuration from an optional .env
// file and ALMANAC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ALMANAC"

// Defaults, kept in sync with the struct tags of EnvConfig.
const (
	DefaultInput     = "input.txt"
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = LogFormatPretty
	DefaultOutput    = OutputText
	DefaultWorkers   = 1
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputFormat selects how solve results are printed.
type OutputFormat string

// OutputFormat values.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var (
	// ErrUnknownLogFormat indicates a LOG_FORMAT other than pretty or json.
	ErrUnknownLogFormat = errors.New("config: unknown log format")
	// ErrUnknownOutput indicates an OUTPUT other than text, json or yaml.
	ErrUnknownOutput = errors.New("config: unknown output format")
	// ErrBadWorkers indicates WORKERS below 1.
	ErrBadWorkers = errors.New("config: workers must be at least 1")
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Input is the almanac file to read.
	// Env: ALMANAC_INPUT (default: input.txt)
	Input string `envconfig:"INPUT" default:"input.txt"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	// Env: ALMANAC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is pretty or json.
	// Env: ALMANAC_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Output is text, json or yaml.
	// Env: ALMANAC_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`

	// Workers is the number of concurrent interval mappers per stage.
	// Env: ALMANAC_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`
}

// Config is the validated configuration used by the CLI.
type Config struct {
	Input     string
	LogLevel  string
	LogFormat LogFormat
	Output    OutputFormat
	Workers   int
}

// LoadDotEnv loads variables from a .env file without overriding ones already
// set. An empty path means ".env"; a missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFromEnv reads ALMANAC_* variables into an EnvConfig.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Load reads the .env file at envFile (if present), then the environment,
// and validates the result.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	return env.ToConfig()
}

// ToConfig validates e and converts it to a Config.
func (e EnvConfig) ToConfig() (Config, error) {
	cfg := Config{
		Input:     e.Input,
		LogLevel:  strings.ToUpper(e.LogLevel),
		LogFormat: LogFormat(strings.ToLower(e.LogFormat)),
		Output:    OutputFormat(strings.ToLower(e.Output)),
		Workers:   e.Workers,
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields and the worker count.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, c.Workers)
	}
	return nil
}
