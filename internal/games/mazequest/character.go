package mazequest

import (
	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
)

// Kind tags a character as the player or an enemy. There is exactly one
// hero per session; everything else is an enemy.
type Kind int

const (
	KindHero Kind = iota
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == KindHero {
		return "hero"
	}
	return "enemy"
}

// Character is a mutable entity in the maze: the hero or an enemy.
// Health only decreases through ReceiveDamage and only increases through
// Heal; once it reaches 0 the character stays dead for that life.
type Character struct {
	Kind        Kind
	Name        string
	Rect        core.Rect
	Health      int
	MaxHealth   int
	AttackPower int
	AttackRange float64
	Speed       int

	cooldown      int
	cooldownTicks int
}

// NewHero creates the player character at the given world position.
func NewHero(cfg config.MazeQuestConfig, x, y int) *Character {
	return &Character{
		Kind:          KindHero,
		Name:          "Hero",
		Rect:          core.NewRect(x, y, cfg.Hero.Width, cfg.Hero.Height),
		Health:        cfg.Hero.Health,
		MaxHealth:     cfg.Hero.Health,
		AttackPower:   cfg.Hero.Attack,
		AttackRange:   cfg.Combat.AttackRange,
		Speed:         cfg.Hero.Speed,
		cooldownTicks: cfg.Combat.CooldownTicks,
	}
}

// NewEnemy creates an enemy with health scaled by level difficulty.
func NewEnemy(cfg config.MazeQuestConfig, difficulty, x, y int) *Character {
	health := cfg.EnemyHealth(difficulty)
	return &Character{
		Kind:          KindEnemy,
		Name:          "Zombie",
		Rect:          core.NewRect(x, y, cfg.Enemy.Width, cfg.Enemy.Height),
		Health:        health,
		MaxHealth:     health,
		AttackPower:   cfg.Enemy.Attack,
		AttackRange:   cfg.Combat.AttackRange,
		Speed:         cfg.Enemy.Speed,
		cooldownTicks: cfg.Combat.CooldownTicks,
	}
}

// Alive reports whether the character can still act.
func (c *Character) Alive() bool {
	return c.Health > 0
}

// ReceiveDamage subtracts health, floored at 0.
func (c *Character) ReceiveDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// Heal restores health up to MaxHealth. Dead characters stay dead.
func (c *Character) Heal(amount int) {
	if amount <= 0 || !c.Alive() {
		return
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// InRange reports whether the other character is within attack reach,
// measured center to center. This circular check is looser than the
// rectangle overlap used for movement collision; both are kept distinct
// on purpose.
func (c *Character) InRange(other *Character) bool {
	return c.Rect.CenterDistance(other.Rect) <= c.AttackRange
}

// CanAttack reports whether an attack would be accepted right now:
// both participants alive and the cooldown expired.
func (c *Character) CanAttack(other *Character) bool {
	return c.Alive() && other.Alive() && c.cooldown == 0
}

// Attack swings at the other character. The swing is rejected outright
// if either side is dead or the cooldown is still counting down. An
// accepted swing always resets the cooldown; damage lands only when the
// target is in range, so an out-of-range miss still costs the cooldown.
// Returns true if damage was applied.
func (c *Character) Attack(other *Character) bool {
	if !c.CanAttack(other) {
		return false
	}
	c.cooldown = c.cooldownTicks
	if !c.InRange(other) {
		return false
	}
	other.ReceiveDamage(c.AttackPower)
	return true
}

// TickCooldown advances the attack cooldown by one tick.
func (c *Character) TickCooldown() {
	if c.cooldown > 0 {
		c.cooldown--
	}
}

// ResetCooldown clears the attack cooldown. Combat encounters pace
// attacks with questions instead of the timer.
func (c *Character) ResetCooldown() {
	c.cooldown = 0
}

// Move attempts to shift the character by (dx, dy) steps of its speed.
// Each axis resolves independently so the character slides along walls
// instead of sticking. A move on an axis is rejected when it would leave
// the window or overlap a wall or another character.
func (c *Character) Move(dx, dy int, worldW, worldH int, walls []core.Rect, others []*Character) {
	if dx != 0 {
		next := c.Rect
		next.X = core.Clamp(c.Rect.X+dx*c.Speed, 0, worldW-c.Rect.W)
		if c.moveAllowed(next, walls, others) {
			c.Rect.X = next.X
		}
	}
	if dy != 0 {
		next := c.Rect
		next.Y = core.Clamp(c.Rect.Y+dy*c.Speed, 0, worldH-c.Rect.H)
		if c.moveAllowed(next, walls, others) {
			c.Rect.Y = next.Y
		}
	}
}

func (c *Character) moveAllowed(next core.Rect, walls []core.Rect, others []*Character) bool {
	if next.IntersectsAny(walls) {
		return false
	}
	for _, other := range others {
		if other == c || !other.Alive() {
			continue
		}
		if next.Intersects(other.Rect) {
			return false
		}
	}
	return true
}
