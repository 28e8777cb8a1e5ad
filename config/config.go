// Package config provides the structures used for configuration.
//
// There is no config file; per-invocation flags and TEMPCONV_*
// environment variables are the only sources. [Read] exists for
// programs embedding the converter that already hold a yaml stream.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/tempconv"
	"github.com/lone-faerie/tempconv/log"
)

// Config contains the runtime defaults for the converter. Config should
// be created with a call to [Default] or [Read]; command-line flags are
// applied on top by the caller.
type Config struct {
	Unit    tempconv.Unit `yaml:"unit"`
	Convert tempconv.Unit `yaml:"convert"`
	Color   string        `yaml:"color,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// LogConfig controls the output of the log package.
type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output"`
	Format string    `yaml:"format"`
}

var defaultCfg = Config{
	Unit:    tempconv.Fahrenheit,
	Convert: tempconv.Celsius,
	Color:   "auto",
	Log: LogConfig{
		Level: log.LevelWarn,
	},
}

// Environment variables overriding the built-in defaults.
const (
	EnvUnit      = "TEMPCONV_UNIT"
	EnvConvert   = "TEMPCONV_CONVERT"
	EnvColor     = "TEMPCONV_COLOR"
	EnvLogLevel  = "TEMPCONV_LOG_LEVEL"
	EnvLogOutput = "TEMPCONV_LOG_OUTPUT"
	EnvLogFormat = "TEMPCONV_LOG_FORMAT"
)

// Default returns the built-in defaults with any TEMPCONV_* environment
// variables applied. Unparseable values are logged and skipped rather
// than failing the invocation.
func Default() *Config {
	cfg := defaultCfg
	cfg.loadEnv()

	return &cfg
}

// Read returns the Config parsed from the yaml encoded config from r.
// Fields absent from the stream keep their built-in defaults; the
// environment is not consulted.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultCfg
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) loadEnv() {
	if v, ok := os.LookupEnv(EnvUnit); ok {
		if err := cfg.Unit.UnmarshalText([]byte(v)); err != nil {
			log.Warn("Ignoring "+EnvUnit, "value", v)
		}
	}

	if v, ok := os.LookupEnv(EnvConvert); ok {
		if err := cfg.Convert.UnmarshalText([]byte(v)); err != nil {
			log.Warn("Ignoring "+EnvConvert, "value", v)
		}
	}

	if v, ok := os.LookupEnv(EnvColor); ok {
		cfg.Color = v
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if err := cfg.Log.Level.UnmarshalText([]byte(v)); err != nil {
			log.Warn("Ignoring "+EnvLogLevel, "value", v)
		}
	}

	if v, ok := os.LookupEnv(EnvLogOutput); ok {
		cfg.Log.Output = v
	}

	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.Log.Format = v
	}
}
