package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vedantwpatil/trendbot/strategy"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.LookbackDays != 504 || cfg.TopN != 10 || cfg.Workers != 8 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Strategy != strategy.DefaultConfig() {
		t.Fatalf("strategy defaults = %+v", cfg.Strategy)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FAST_EMA", "5")
	t.Setenv("SLOW_EMA", "30")
	t.Setenv("TARGET_VOL", "0.1")
	t.Setenv("TOP_N", "3")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Strategy.FastWindow != 5 || cfg.Strategy.SlowWindow != 30 || cfg.Strategy.TargetVol != 0.1 || cfg.TopN != 3 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\nMAX_LEVERAGE=1.5\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Strategy.MaxLeverage != 1.5 {
		t.Fatalf("env file not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	t.Setenv("FAST_EMA", "50")
	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, strategy.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
