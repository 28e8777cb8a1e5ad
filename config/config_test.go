package config_test

import (
	"strings"
	"testing"

	"github.com/lone-faerie/tempconv"
	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.Unit != tempconv.Fahrenheit {
		t.Errorf("cfg.Unit: wanted %s, got %s", tempconv.Fahrenheit, cfg.Unit)
	}
	if cfg.Convert != tempconv.Celsius {
		t.Errorf("cfg.Convert: wanted %s, got %s", tempconv.Celsius, cfg.Convert)
	}
	if cfg.Color != "auto" {
		t.Errorf("cfg.Color: wanted %q, got %q", "auto", cfg.Color)
	}
	if cfg.Log.Level != log.LevelWarn {
		t.Errorf("cfg.Log.Level: wanted %s, got %s", log.LevelWarn, cfg.Log.Level)
	}
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv(config.EnvUnit, "celsius")
	t.Setenv(config.EnvConvert, "K")
	t.Setenv(config.EnvColor, "never")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg := config.Default()

	if cfg.Unit != tempconv.Celsius {
		t.Errorf("cfg.Unit: wanted %s, got %s", tempconv.Celsius, cfg.Unit)
	}
	if cfg.Convert != tempconv.Kelvin {
		t.Errorf("cfg.Convert: wanted %s, got %s", tempconv.Kelvin, cfg.Convert)
	}
	if cfg.Color != "never" {
		t.Errorf("cfg.Color: wanted %q, got %q", "never", cfg.Color)
	}
	if cfg.Log.Level != log.LevelDebug {
		t.Errorf("cfg.Log.Level: wanted %s, got %s", log.LevelDebug, cfg.Log.Level)
	}
}

func TestDefaultBadEnvIgnored(t *testing.T) {
	t.Setenv(config.EnvUnit, "rankine")

	cfg := config.Default()

	if cfg.Unit != tempconv.Fahrenheit {
		t.Errorf("cfg.Unit: wanted default %s, got %s", tempconv.Fahrenheit, cfg.Unit)
	}
}

func TestRead(t *testing.T) {
	const in = `
unit: kelvin
convert: f
log:
  level: info
  format: json
`
	cfg, err := config.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Unit != tempconv.Kelvin {
		t.Errorf("cfg.Unit: wanted %s, got %s", tempconv.Kelvin, cfg.Unit)
	}
	if cfg.Convert != tempconv.Fahrenheit {
		t.Errorf("cfg.Convert: wanted %s, got %s", tempconv.Fahrenheit, cfg.Convert)
	}
	if cfg.Log.Level != log.LevelInfo {
		t.Errorf("cfg.Log.Level: wanted %s, got %s", log.LevelInfo, cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("cfg.Log.Format: wanted %q, got %q", "json", cfg.Log.Format)
	}
	if cfg.Color != "auto" {
		t.Errorf("cfg.Color: wanted default %q, got %q", "auto", cfg.Color)
	}
}

func TestReadInvalidUnit(t *testing.T) {
	if _, err := config.Read(strings.NewReader("unit: rankine\n")); err == nil {
		t.Error("wanted error for unknown unit, got nil")
	}
}
