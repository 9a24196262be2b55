package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("defaults/runner.yaml and DefaultRunnerConfig() have drifted apart")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("player:\n  max_energy: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Player.MaxEnergy != 9 {
		t.Errorf("MaxEnergy = %d, expected 9", cfg.Player.MaxEnergy)
	}
	if cfg.Physics.Gravity != DefaultRunnerConfig().Physics.Gravity {
		t.Error("keys not named in the file should keep their defaults")
	}
	if len(cfg.Levels) != len(DefaultRunnerConfig().Levels) {
		t.Errorf("levels = %d, expected defaults", len(cfg.Levels))
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRunnerRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("levels:\n  - number: 1\n    length: 1000\n    flag_x: 5000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Fatal("expected validation error for flag beyond level length")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.Player.MaxEnergy != 3 {
		t.Errorf("hard preset MaxEnergy = %d, expected 3", cfg.Player.MaxEnergy)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestLevelLookup(t *testing.T) {
	cfg := DefaultRunnerConfig()
	l, ok := cfg.Level(3)
	if !ok || l.Name != "Dune Boardwalk" {
		t.Errorf("Level(3) = %+v, %v", l, ok)
	}
	if _, ok := cfg.Level(42); ok {
		t.Error("Level(42) should not exist")
	}
}
