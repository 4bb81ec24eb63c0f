package mazequest

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/maze"
)

func testConfig() config.MazeQuestConfig {
	return config.DefaultMazeQuestConfig()
}

func TestReceiveDamageFloorsAtZero(t *testing.T) {
	cfg := testConfig()
	enemy := NewEnemy(cfg, 1, 0, 0) // health 10

	enemy.ReceiveDamage(7)
	if enemy.Health != 3 {
		t.Fatalf("health = %d, want 3", enemy.Health)
	}
	enemy.ReceiveDamage(100)
	if enemy.Health != 0 {
		t.Fatalf("health = %d, want 0 (never negative)", enemy.Health)
	}
	if enemy.Alive() {
		t.Error("enemy at 0 health should be dead")
	}
}

func TestHealCapsAtMaxAndDeadStaysDead(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 0, 0)

	hero.ReceiveDamage(30)
	hero.Heal(100)
	if hero.Health != hero.MaxHealth {
		t.Errorf("health = %d, want cap at %d", hero.Health, hero.MaxHealth)
	}

	hero.ReceiveDamage(hero.MaxHealth)
	hero.Heal(25)
	if hero.Health != 0 || hero.Alive() {
		t.Error("healing must not resurrect a dead character")
	}
}

// A hero with attack 10 and range 30 standing 20 units from a 10-health
// enemy kills it with a single attack.
func TestAttackKillsEnemyInRange(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 0, 0)
	enemy := NewEnemy(cfg, 1, 0, 0)
	// Same size rects 20 apart on x: center distance is exactly 20.
	enemy.Rect = core.NewRect(hero.Rect.X+20, hero.Rect.Y, hero.Rect.W, hero.Rect.H)

	if !hero.InRange(enemy) {
		t.Fatal("enemy at distance 20 should be within range 30")
	}
	if !hero.Attack(enemy) {
		t.Fatal("attack should land")
	}
	if enemy.Health != 0 {
		t.Errorf("enemy health = %d, want 0", enemy.Health)
	}
	if enemy.Alive() {
		t.Error("enemy should be dead")
	}
}

func TestAttackMissConsumesCooldown(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 0, 0)
	enemy := NewEnemy(cfg, 1, 500, 0) // far out of range

	if hero.Attack(enemy) {
		t.Fatal("out-of-range attack must not land")
	}
	if enemy.Health != enemy.MaxHealth {
		t.Error("miss must not apply damage")
	}
	// The swing still burns the cooldown.
	if hero.CanAttack(enemy) {
		t.Error("cooldown should be counting down after a miss")
	}

	for i := 0; i < cfg.Combat.CooldownTicks; i++ {
		hero.TickCooldown()
	}
	if !hero.CanAttack(enemy) {
		t.Error("cooldown should have expired")
	}
}

func TestAttackRejectedWhenDead(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 0, 0)
	enemy := NewEnemy(cfg, 1, 10, 0)

	hero.ReceiveDamage(hero.MaxHealth)
	if hero.Attack(enemy) {
		t.Error("dead attacker must be rejected")
	}
	if enemy.Health != enemy.MaxHealth {
		t.Error("rejected attack must not apply damage")
	}

	hero2 := NewHero(cfg, 0, 0)
	enemy.ReceiveDamage(enemy.MaxHealth)
	if hero2.Attack(enemy) {
		t.Error("attack against a dead defender must be rejected")
	}
}

// Movement containment: wherever the hero wanders, it never overlaps a
// wall and never leaves the window.
func TestMoveNeverEntersWallsOrLeavesWindow(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(99))
	m := maze.Generate(cfg.World.Width, cfg.World.Height, cfg.World.WallThickness, cfg.World.CellSize, rng)

	hero := NewHero(cfg, 50, 50)
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	for i := 0; i < 2000; i++ {
		dx := rng.Intn(3) - 1
		dy := rng.Intn(3) - 1
		hero.Move(dx, dy, cfg.World.Width, cfg.World.Height, m.Walls, nil)

		if hero.Rect.IntersectsAny(m.Walls) {
			t.Fatalf("step %d: hero %v overlaps a wall", i, hero.Rect)
		}
		if hero.Rect.X < 0 || hero.Rect.Y < 0 ||
			hero.Rect.Right() > world.W || hero.Rect.Bottom() > world.H {
			t.Fatalf("step %d: hero %v left the window", i, hero.Rect)
		}
	}
}

func TestMoveBlockedByOtherCharacter(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 100, 100)
	blocker := NewEnemy(cfg, 1, 100+hero.Rect.W+1, 100)

	hero.Move(1, 0, cfg.World.Width, cfg.World.Height, nil, []*Character{blocker})
	if hero.Rect.X != 100 {
		t.Errorf("hero x = %d, want blocked at 100", hero.Rect.X)
	}

	// Dead characters do not block.
	blocker.ReceiveDamage(blocker.MaxHealth)
	hero.Move(1, 0, cfg.World.Width, cfg.World.Height, nil, []*Character{blocker})
	if hero.Rect.X == 100 {
		t.Error("dead character should not block movement")
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	cfg := testConfig()
	hero := NewHero(cfg, 100, 100)
	// Wall directly right of the hero blocks x but not y.
	wall := core.NewRect(100+hero.Rect.W+1, 0, 20, cfg.World.Height)

	hero.Move(1, 1, cfg.World.Width, cfg.World.Height, []core.Rect{wall}, nil)
	if hero.Rect.X != 100 {
		t.Errorf("x should be blocked, got %d", hero.Rect.X)
	}
	if hero.Rect.Y == 100 {
		t.Error("y axis should still move")
	}
}
