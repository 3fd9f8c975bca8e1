package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "defender.yaml"

// LoadDefender loads the game tuning.
// Search order: customPath -> ~/.defender/configs/defender.yaml -> ./configs/defender.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only
// overrides the keys it names. Only an explicit customPath can fail.
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

var validShopKeys = map[string]bool{"hp": true, "speed": true, "damage": true, "bomb": true, "heal": true}

// Validate rejects values the simulation cannot run with.
func (c DefenderConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.MaxDelta <= 0 {
		errs = append(errs, errors.New("world.max_delta must be positive"))
	}
	if c.Player.BaseHP <= 0 {
		errs = append(errs, errors.New("player.base_hp must be positive"))
	}
	if c.Enemies.CooldownMax < c.Enemies.CooldownMin {
		errs = append(errs, errors.New("enemies.cooldown_max is below cooldown_min"))
	}
	if c.Waves.LevelDivisor <= 0 || c.Waves.BossLevelDivisor <= 0 || c.Waves.ExtraDivisor <= 0 || c.Combat.KillCoinsDivisor <= 0 {
		errs = append(errs, errors.New("divisors must be positive"))
	}
	if c.Waves.ChaserWeight+c.Waves.ShooterWeight+c.Waves.ZigzagWeight <= 0 {
		errs = append(errs, errors.New("enemy kind weights sum to zero"))
	}
	for _, it := range c.Shop.Items {
		if !validShopKeys[it.Key] {
			errs = append(errs, fmt.Errorf("unknown shop item key %q", it.Key))
		}
	}
	return errors.Join(errs...)
}

// ApplyDefenderPreset adjusts the config for a difficulty preset.
// Normal leaves the tuning untouched.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.BaseHP = 160
		cfg.Player.StartBombs = 3
		cfg.Combat.DropChance = 0.25
		cfg.Combat.ContactDamage = 12
	case DifficultyHard:
		cfg.Player.BaseHP = 90
		cfg.Player.StartBombs = 1
		cfg.Combat.DropChance = 0.12
		cfg.Combat.ContactDamage = 24
	}
}
