package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.coastrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		return readRunner(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(runnerFile); userCfgPath != "" {
		if cfg, err := readRunner(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readRunner(filepath.Join("configs", runnerFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readRunner parses a YAML file on top of the built-in defaults, so partial
// files only override the keys they name.
func readRunner(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coastrun", "configs", filename)
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("no levels configured")
	}
	if c.Player.MaxEnergy <= 0 {
		return fmt.Errorf("player.max_energy must be positive, got %d", c.Player.MaxEnergy)
	}
	if c.Spawner.MinSpacing <= 0 || c.Spawner.MaxSpacing < c.Spawner.MinSpacing {
		return fmt.Errorf("spawner spacing range [%v, %v] is invalid", c.Spawner.MinSpacing, c.Spawner.MaxSpacing)
	}
	if c.World.ScreenWidth <= 0 {
		return fmt.Errorf("world.screen_width must be positive")
	}
	for i, l := range c.Levels {
		if l.FlagX <= 0 || l.FlagX > l.Length {
			return fmt.Errorf("level %d: flag_x %v outside level length %v", l.Number, l.FlagX, l.Length)
		}
		if l.Number != i+1 {
			return fmt.Errorf("levels must be numbered from 1 in order, got %d at position %d", l.Number, i)
		}
	}
	return nil
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxEnergy = 7
		cfg.Timing.Invincibility = 6
	case DifficultyHard:
		cfg.Player.MaxEnergy = 3
		cfg.Timing.Invincibility = 3.5
	}
}
