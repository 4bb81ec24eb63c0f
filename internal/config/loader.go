package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMazeQuest loads the MazeQuest configuration.
// Search order: customPath -> ~/.mazequest/configs/mazequest.yaml ->
// ./configs/mazequest.yaml -> embedded default
//
// Every loaded config passes through Sanitize, so a document that parses
// but omits or zeroes required fields still yields a playable config.
func LoadMazeQuest(customPath string) (MazeQuestConfig, error) {
	var cfg MazeQuestConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mazequest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mazequest.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeQuestYAML, &cfg); err != nil {
		return DefaultMazeQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Sanitize(cfg), nil
}

// Sanitize replaces non-positive values in fields the simulation requires
// to be positive (geometry, stats, pacing) with their defaults. YAML fills
// missing fields with zero values, and a zero cell size or window would
// otherwise break maze generation and entity placement.
func Sanitize(cfg MazeQuestConfig) MazeQuestConfig {
	def := DefaultMazeQuestConfig()

	pos(&cfg.World.Width, def.World.Width)
	pos(&cfg.World.Height, def.World.Height)
	pos(&cfg.World.CellSize, def.World.CellSize)
	pos(&cfg.World.WallThickness, def.World.WallThickness)

	pos(&cfg.Hero.Health, def.Hero.Health)
	pos(&cfg.Hero.Attack, def.Hero.Attack)
	pos(&cfg.Hero.Speed, def.Hero.Speed)
	pos(&cfg.Hero.Width, def.Hero.Width)
	pos(&cfg.Hero.Height, def.Hero.Height)

	pos(&cfg.Enemy.BaseHealth, def.Enemy.BaseHealth)
	pos(&cfg.Enemy.Attack, def.Enemy.Attack)
	pos(&cfg.Enemy.Speed, def.Enemy.Speed)
	pos(&cfg.Enemy.Width, def.Enemy.Width)
	pos(&cfg.Enemy.Height, def.Enemy.Height)
	pos(&cfg.Enemy.RoamStep, def.Enemy.RoamStep)
	pos(&cfg.Enemy.RoamIntervalTicks, def.Enemy.RoamIntervalTicks)

	if cfg.Combat.AttackRange <= 0 {
		cfg.Combat.AttackRange = def.Combat.AttackRange
	}
	pos(&cfg.Combat.CooldownTicks, def.Combat.CooldownTicks)

	pos(&cfg.Door.Width, def.Door.Width)
	pos(&cfg.Door.Height, def.Door.Height)
	pos(&cfg.Door.PlacementAttempts, def.Door.PlacementAttempts)
	pos(&cfg.Door.OpeningTicks, def.Door.OpeningTicks)

	pos(&cfg.Pickups.MedkitHeal, def.Pickups.MedkitHeal)
	pos(&cfg.Pickups.MedkitWidth, def.Pickups.MedkitWidth)
	pos(&cfg.Pickups.MedkitHeight, def.Pickups.MedkitHeight)
	pos(&cfg.Pickups.PlacementAttempts, def.Pickups.PlacementAttempts)

	return cfg
}

// pos resets *v to def when it is not positive.
func pos(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazequest", "configs", filename)
}
