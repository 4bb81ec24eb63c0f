// Package config provides YAML-based game configuration loading and
// difficulty presets for MazeQuest.
package config

// MazeQuestConfig contains all tunables for the MazeQuest game.
type MazeQuestConfig struct {
	World   WorldConfig      `yaml:"world"`
	Hero    HeroConfig       `yaml:"hero"`
	Enemy   EnemyConfig      `yaml:"enemy"`
	Combat  CombatConfig     `yaml:"combat"`
	Door    DoorConfig       `yaml:"door"`
	Pickups PickupConfig     `yaml:"pickups"`
	Preset  DifficultyPreset `yaml:"-"`
}

// WorldConfig defines the maze geometry in world units.
type WorldConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	CellSize      int `yaml:"cell_size"`
	WallThickness int `yaml:"wall_thickness"`
}

// HeroConfig defines the hero's base stats.
type HeroConfig struct {
	Health int `yaml:"health"`
	Attack int `yaml:"attack"`
	Speed  int `yaml:"speed"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EnemyConfig defines enemy stats. Health scales with level difficulty:
// base_health + (difficulty-1) * health_per_difficulty.
type EnemyConfig struct {
	BaseHealth          int `yaml:"base_health"`
	HealthPerDifficulty int `yaml:"health_per_difficulty"`
	Attack              int `yaml:"attack"`
	Speed               int `yaml:"speed"`
	Width               int `yaml:"width"`
	Height              int `yaml:"height"`
	RoamStep            int `yaml:"roam_step"`
	RoamIntervalTicks   int `yaml:"roam_interval_ticks"`
}

// CombatConfig defines attack reach and pacing.
type CombatConfig struct {
	AttackRange   float64 `yaml:"attack_range"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// DoorConfig defines the level-exit door.
type DoorConfig struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	PlacementAttempts int `yaml:"placement_attempts"`
	OpeningTicks      int `yaml:"opening_ticks"`
}

// PickupConfig defines medkit spawning and healing. Per level the game
// makes base_count minus difficulty spawn rolls, each gated by the
// probability 1 - difficulty*chance_step.
type PickupConfig struct {
	MedkitHeal        int     `yaml:"medkit_heal"`
	MedkitBaseCount   int     `yaml:"medkit_base_count"`
	MedkitChanceStep  float64 `yaml:"medkit_chance_step"`
	MedkitWidth       int     `yaml:"medkit_width"`
	MedkitHeight      int     `yaml:"medkit_height"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyMazeQuestPreset adjusts the config for a difficulty preset.
// "fixed" and "normal" leave the base stats untouched.
func ApplyMazeQuestPreset(cfg *MazeQuestConfig, preset DifficultyPreset) {
	cfg.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.Hero.Health = 150
		cfg.Pickups.MedkitBaseCount = 3
		cfg.Pickups.MedkitChanceStep = 0.10
	case DifficultyHard:
		cfg.Hero.Health = 75
		cfg.Pickups.MedkitBaseCount = 1
		cfg.Pickups.MedkitChanceStep = 0.20
	}
}
