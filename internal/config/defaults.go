package config

import (
	_ "embed"
)

//go:embed defaults/mazequest.yaml
var defaultMazeQuestYAML []byte

// DefaultMazeQuestConfig returns the default MazeQuest configuration.
// These mirror the embedded YAML and serve as the last-resort fallback.
func DefaultMazeQuestConfig() MazeQuestConfig {
	return MazeQuestConfig{
		World: WorldConfig{
			Width:         640,
			Height:        480,
			CellSize:      80,
			WallThickness: 20,
		},
		Hero: HeroConfig{
			Health: 100,
			Attack: 10,
			Speed:  2,
			Width:  23,
			Height: 30,
		},
		Enemy: EnemyConfig{
			BaseHealth:          10,
			HealthPerDifficulty: 5,
			Attack:              10,
			Speed:               1,
			Width:               23,
			Height:              30,
			RoamStep:            15,
			RoamIntervalTicks:   10,
		},
		Combat: CombatConfig{
			AttackRange:   30,
			CooldownTicks: 15,
		},
		Door: DoorConfig{
			Width:             40,
			Height:            60,
			PlacementAttempts: 100,
			OpeningTicks:      30,
		},
		Pickups: PickupConfig{
			MedkitHeal:        25,
			MedkitBaseCount:   2,
			MedkitChanceStep:  0.15,
			MedkitWidth:       24,
			MedkitHeight:      24,
			PlacementAttempts: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mazequest":
		return defaultMazeQuestYAML
	default:
		return nil
	}
}
