package config

// EnemyHealth returns enemy health for a level difficulty (1 = easiest).
func (c MazeQuestConfig) EnemyHealth(difficulty int) int {
	if difficulty < 1 {
		difficulty = 1
	}
	return c.Enemy.BaseHealth + (difficulty-1)*c.Enemy.HealthPerDifficulty
}

// MedkitRolls returns how many medkit spawn rolls a level of the given
// difficulty gets. Harder levels get fewer rolls, never below zero.
func (c MazeQuestConfig) MedkitRolls(difficulty int) int {
	rolls := c.Pickups.MedkitBaseCount - difficulty
	if rolls < 0 {
		rolls = 0
	}
	return rolls
}

// MedkitChance returns the per-roll probability that a medkit actually
// spawns, decreasing with difficulty and clamped to [0, 1].
func (c MazeQuestConfig) MedkitChance(difficulty int) float64 {
	p := 1.0 - float64(difficulty)*c.Pickups.MedkitChanceStep
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
