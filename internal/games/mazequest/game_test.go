package mazequest

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i%3 == 0 {
			input.Set(core.ActionRight)
		}
		if i%7 == 0 {
			input.Set(core.ActionDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestTutorialDoorOpensWithoutEnemies(t *testing.T) {
	g := newTestGame(t, 1)
	if g.level.Def.Tutorial != TutorialMove {
		t.Fatalf("first level = %q, want movement tutorial", g.level.Def.Name)
	}

	res := g.Step(core.NewInputFrame())
	found := false
	for _, e := range res.Events {
		if e == core.EventDoorOpened {
			found = true
		}
	}
	if !found {
		t.Error("door should start opening immediately with zero enemies")
	}

	for i := 0; i < g.cfg.Door.OpeningTicks+1; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.level.Door.State != DoorOpen {
		t.Errorf("door state = %v, want open", g.level.Door.State)
	}
}

func TestWalkingThroughDoorAdvancesLevel(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < g.cfg.Door.OpeningTicks+1; i++ {
		g.Step(core.NewInputFrame())
	}

	// Teleport the hero onto the open door.
	g.hero.Rect.X = g.level.Door.Rect.X
	g.hero.Rect.Y = g.level.Door.Rect.Y
	res := g.Step(core.NewInputFrame())

	cleared := false
	for _, e := range res.Events {
		if e == core.EventLevelClear {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("stepping onto the open door should clear the level")
	}
	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, want 1", g.levelIndex)
	}
	if g.score == 0 {
		t.Error("clearing a level should award score")
	}
	if g.hero.Rect.X != 50 || g.hero.Rect.Y != 50 {
		t.Error("hero should respawn at the level start")
	}
}

func TestEncounterStartsInRangeAndBlocksMovement(t *testing.T) {
	g := newTestGame(t, 2)
	g.enterLevel(3) // first non-tutorial level

	// Drop a living enemy right next to the hero.
	e := g.enemies[0]
	e.Rect.X = g.hero.Rect.X + 10
	e.Rect.Y = g.hero.Rect.Y

	g.Step(core.NewInputFrame())
	if g.encounter == nil || !g.encounter.Active() {
		t.Fatal("encounter should start when a living enemy is in range")
	}
	if g.Snapshot().Phase != PhaseCombat {
		t.Errorf("phase = %v, want combat", g.Snapshot().Phase)
	}

	// Movement is suspended while the encounter is active.
	x, y := g.hero.Rect.X, g.hero.Rect.Y
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)
	if g.hero.Rect.X != x || g.hero.Rect.Y != y {
		t.Error("hero moved during combat")
	}
}

func TestHeroDeathEndsSession(t *testing.T) {
	g := newTestGame(t, 2)
	g.enterLevel(3)
	g.hero.Health = 10

	e := g.enemies[0]
	e.Rect.X = g.hero.Rect.X + 10
	e.Rect.Y = g.hero.Rect.Y
	g.Step(core.NewInputFrame())
	if g.encounter == nil {
		t.Fatal("expected an encounter")
	}

	// One wrong answer at 10 health is fatal.
	g.encounter.ProcessTurn("definitely wrong")
	res := g.Step(core.NewInputFrame())

	if !g.gameOver || g.won {
		t.Fatal("session should end in defeat")
	}
	down := false
	for _, ev := range res.Events {
		if ev == core.EventHeroDown {
			down = true
		}
	}
	if !down {
		t.Error("hero death should be reported")
	}

	// Restart brings a fresh session.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.gameOver || g.hero.Health != g.hero.MaxHealth || g.levelIndex != 0 {
		t.Error("restart should rebuild the session from the start")
	}
}

func TestFreeAttackMissBurnsCooldown(t *testing.T) {
	g := newTestGame(t, 3)
	g.enterLevel(3)

	// Park every enemy far away so the swing can only miss.
	for i, e := range g.enemies {
		e.Rect.X = g.cfg.World.Width - e.Rect.W - 1
		e.Rect.Y = g.cfg.World.Height - e.Rect.H - 1 - i*40
	}

	in := core.NewInputFrame()
	in.Set(core.ActionAttack)
	res := g.Step(in)

	missed := false
	for _, ev := range res.Events {
		if ev == core.EventMiss {
			missed = true
		}
	}
	if !missed {
		t.Fatal("out-of-range swing should be a miss")
	}
	for _, e := range g.enemies {
		if e.Health != e.MaxHealth {
			t.Error("miss must not damage anyone")
		}
	}
	if g.hero.CanAttack(g.enemies[0]) {
		t.Error("miss should still burn the cooldown")
	}
}

func TestFreeAttackCanClearLevel(t *testing.T) {
	g := newTestGame(t, 4)
	g.enterLevel(3)

	// One enemy left, in reach, at one hit of health.
	g.enemies = g.enemies[:1]
	e := g.enemies[0]
	e.Rect.X = g.hero.Rect.X + 15
	e.Rect.Y = g.hero.Rect.Y
	e.Health = g.hero.AttackPower

	// The encounter triggers first; finish it with the correct answer.
	g.Step(core.NewInputFrame())
	if g.encounter == nil {
		t.Fatal("expected an encounter at close range")
	}
	res := g.encounter.ProcessTurn(g.encounter.Current().Answer)
	if !res.Over {
		t.Fatal("lethal exchange should end the encounter")
	}

	stepRes := g.Step(core.NewInputFrame())
	opened := false
	for _, ev := range stepRes.Events {
		if ev == core.EventDoorOpened {
			opened = true
		}
	}
	if !opened {
		t.Error("killing the last enemy should unlock the door")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 5)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.paused {
		t.Fatal("pause action should pause")
	}

	before := g.Snapshot()
	move := core.NewInputFrame()
	move.Set(core.ActionRight)
	g.Step(move)
	after := g.Snapshot()
	if before.Tick != after.Tick || before.HeroX != after.HeroX {
		t.Error("paused game must not advance")
	}

	g.Step(in)
	if g.paused {
		t.Error("pause should toggle off")
	}
}

func TestHealthNeverExceedsBounds(t *testing.T) {
	g := newTestGame(t, 6)
	in := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		in.Clear()
		switch i % 4 {
		case 0:
			in.Set(core.ActionRight)
		case 1:
			in.Set(core.ActionDown)
		case 2:
			in.Set(core.ActionAttack)
		case 3:
			in.Set(core.ActionLeft)
		}
		g.Step(in)
		if g.hero.Health < 0 || g.hero.Health > g.hero.MaxHealth {
			t.Fatalf("tick %d: hero health %d out of bounds", i, g.hero.Health)
		}
		for _, e := range g.enemies {
			if e.Health < 0 {
				t.Fatalf("tick %d: enemy health %d below zero", i, e.Health)
			}
		}
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t, 7)
	g.enterLevel(3)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Force a combat modal and render each modality.
	for idx := 3; idx <= 5; idx++ {
		g.enterLevel(idx)
		e := g.enemies[0]
		e.Rect.X = g.hero.Rect.X + 10
		e.Rect.Y = g.hero.Rect.Y
		g.Step(core.NewInputFrame())
		if g.encounter == nil {
			t.Fatalf("level %d: expected encounter", idx)
		}
		g.Render(screen)
	}
}

func TestStartLevelRidesRuntimeConfig(t *testing.T) {
	// Hosted sessions run concurrently and pass their start level
	// through the session config; the package-level selection serves
	// the single-threaded CLI only and must not leak between games.
	SetStartLevel(2)
	defer SetStartLevel(0)

	cfg := core.RuntimeConfig{Seed: 9, ScreenW: 80, ScreenH: 24, StartLevel: 7}
	g := New()
	g.Reset(cfg)
	if got := g.Snapshot().Level; got != 7 {
		t.Fatalf("level = %d, want 7 from the session config", got)
	}

	cfg.StartLevel = 0
	g2 := New()
	g2.Reset(cfg)
	if got := g2.Snapshot().Level; got != 2 {
		t.Errorf("level = %d, want 2 from the package selection", got)
	}
}

func TestBrokenGeometryConfigStillBuildsLevels(t *testing.T) {
	// A zeroed world config must degrade to the defaults instead of
	// breaking maze generation or placement. The loader sanitizes
	// every config before it reaches the session.
	cfg := config.Sanitize(config.MazeQuestConfig{})
	rng := rand.New(rand.NewSource(3))

	l := NewLevel(cfg, campaignDef(2, 3), rng)
	if len(l.Walls()) == 0 {
		t.Fatal("sanitized config should generate a walled maze")
	}
	if enemies := l.SpawnEnemies(); len(enemies) != 3 {
		t.Errorf("spawned %d enemies, want 3", len(enemies))
	}
}
