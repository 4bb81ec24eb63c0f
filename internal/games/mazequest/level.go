package mazequest

import (
	"math/rand"

	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/maze"
)

// DoorState tracks the level-exit door lifecycle. Transitions are
// monotonic: closed -> opening -> open, never backwards.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
)

// String returns a human-readable door state.
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	default:
		return "open"
	}
}

// Door is the single level exit. It unlocks once every enemy is dead.
type Door struct {
	Rect  core.Rect
	State DoorState

	openTicks    int
	openingTicks int
}

// Open starts the opening animation. No-op unless the door is closed.
func (d *Door) Open() {
	if d.State == DoorClosed {
		d.State = DoorOpening
	}
}

// Tick advances the opening animation by one simulation tick.
func (d *Door) Tick() {
	if d.State != DoorOpening {
		return
	}
	d.openTicks++
	if d.openTicks >= d.openingTicks {
		d.State = DoorOpen
	}
}

// Medkit is a single-use healing pickup.
type Medkit struct {
	Rect core.Rect
	Heal int
	Used bool
}

// Apply heals the target and consumes the medkit.
func (m *Medkit) Apply(c *Character) {
	if m.Used {
		return
	}
	c.Heal(m.Heal)
	m.Used = true
}

// enemySpawnAttempts bounds enemy placement sampling. Unbounded retry
// could hang on pathological geometry where no open cell exists, so the
// budget is capped and exhaustion falls back to a fixed position.
const enemySpawnAttempts = 1000

// Level owns the per-level world: maze walls, the exit door and medkits.
// Characters are owned by the session, not the level.
type Level struct {
	Def     LevelDef
	Door    *Door
	Medkits []*Medkit

	cfg   config.MazeQuestConfig
	walls []core.Rect
	rng   *rand.Rand
}

// NewLevel generates a level from its definition: maze, door, medkits.
// Tutorial levels get an open arena with a fixed door instead.
func NewLevel(cfg config.MazeQuestConfig, def LevelDef, rng *rand.Rand) *Level {
	l := &Level{
		Def: def,
		cfg: cfg,
		rng: rng,
	}
	if def.IsTutorial() {
		l.walls = nil
		l.Door = l.fixedDoor()
		if def.Tutorial == TutorialHeal {
			l.Medkits = []*Medkit{l.fixedMedkit()}
		}
	} else {
		m := maze.Generate(cfg.World.Width, cfg.World.Height, cfg.World.WallThickness, cfg.World.CellSize, rng)
		l.walls = m.Walls
		l.Door = l.spawnDoor()
		l.Medkits = l.spawnMedkits()
	}
	return l
}

// Walls returns the wall set. Read-only; the maze never changes after
// generation.
func (l *Level) Walls() []core.Rect {
	return l.walls
}

// CheckCollision reports whether the rect overlaps any maze wall.
func (l *Level) CheckCollision(r core.Rect) bool {
	return r.IntersectsAny(l.walls)
}

// placeFree samples random in-window positions for a w x h rect until
// one is collision-free, up to maxAttempts. Returns ok=false when the
// budget is exhausted or the rect does not fit in the window at all.
func (l *Level) placeFree(w, h, maxAttempts int) (core.Rect, bool) {
	if w <= 0 || h <= 0 || w > l.cfg.World.Width || h > l.cfg.World.Height {
		return core.Rect{}, false
	}
	for i := 0; i < maxAttempts; i++ {
		x := l.rng.Intn(l.cfg.World.Width - w + 1)
		y := l.rng.Intn(l.cfg.World.Height - h + 1)
		r := core.NewRect(x, y, w, h)
		if !l.CheckCollision(r) {
			return r, true
		}
	}
	return core.Rect{}, false
}

func (l *Level) spawnDoor() *Door {
	d := &Door{openingTicks: l.cfg.Door.OpeningTicks}
	r, ok := l.placeFree(l.cfg.Door.Width, l.cfg.Door.Height, l.cfg.Door.PlacementAttempts)
	if !ok {
		// Budget exhausted: fall back to the window origin even though
		// it overlaps the border wall.
		r = core.NewRect(0, 0, l.cfg.Door.Width, l.cfg.Door.Height)
	}
	d.Rect = r
	return d
}

func (l *Level) fixedDoor() *Door {
	w, h := l.cfg.Door.Width, l.cfg.Door.Height
	return &Door{
		Rect:         core.NewRect(l.cfg.World.Width-w-30, l.cfg.World.Height/2-h/2, w, h),
		openingTicks: l.cfg.Door.OpeningTicks,
	}
}

func (l *Level) spawnMedkits() []*Medkit {
	var medkits []*Medkit
	for i := 0; i < l.cfg.MedkitRolls(l.Def.Difficulty); i++ {
		if l.rng.Float64() >= l.cfg.MedkitChance(l.Def.Difficulty) {
			continue
		}
		r, ok := l.placeFree(l.cfg.Pickups.MedkitWidth, l.cfg.Pickups.MedkitHeight, l.cfg.Pickups.PlacementAttempts)
		if !ok {
			// Silently skipped; medkits are optional.
			continue
		}
		medkits = append(medkits, &Medkit{Rect: r, Heal: l.cfg.Pickups.MedkitHeal})
	}
	return medkits
}

func (l *Level) fixedMedkit() *Medkit {
	w, h := l.cfg.Pickups.MedkitWidth, l.cfg.Pickups.MedkitHeight
	return &Medkit{
		Rect: core.NewRect(l.cfg.World.Width/2-w/2, l.cfg.World.Height/2-h/2, w, h),
		Heal: l.cfg.Pickups.MedkitHeal,
	}
}

// SpawnEnemies places the level's enemies at collision-free positions.
// Tutorial combat levels get a single fixed enemy in the arena center.
func (l *Level) SpawnEnemies() []*Character {
	if l.Def.Tutorial == TutorialCombat {
		w, h := l.cfg.Enemy.Width, l.cfg.Enemy.Height
		e := NewEnemy(l.cfg, 1, l.cfg.World.Width/2-w/2, l.cfg.World.Height/2-h/2)
		return []*Character{e}
	}
	if l.Def.IsTutorial() {
		return nil
	}

	enemies := make([]*Character, 0, l.Def.NumEnemies)
	for i := 0; i < l.Def.NumEnemies; i++ {
		r, ok := l.placeFree(l.cfg.Enemy.Width, l.cfg.Enemy.Height, enemySpawnAttempts)
		if !ok {
			// Fallback: center of the first cell, clear in any maze with
			// cells wider than two wall thicknesses.
			t := l.cfg.World.WallThickness
			r = core.NewRect(t+1, t+1, l.cfg.Enemy.Width, l.cfg.Enemy.Height)
		}
		enemies = append(enemies, NewEnemy(l.cfg, l.Def.Difficulty, r.X, r.Y))
	}
	return enemies
}

// CheckOpenDoor unlocks the door once every enemy is dead. Returns true
// on the tick the door starts opening.
func (l *Level) CheckOpenDoor(enemies []*Character) bool {
	if l.Door.State != DoorClosed {
		return false
	}
	for _, e := range enemies {
		if e.Alive() {
			return false
		}
	}
	l.Door.Open()
	return true
}

// CheckMedkitPickup applies the first unused medkit the hero is standing
// on, but only while the hero is hurt. Returns true if one was consumed.
func (l *Level) CheckMedkitPickup(hero *Character) bool {
	if hero.Health >= hero.MaxHealth {
		return false
	}
	for _, m := range l.Medkits {
		if m.Used {
			continue
		}
		if hero.Rect.Intersects(m.Rect) {
			m.Apply(hero)
			return true
		}
	}
	return false
}

// HeroAtExit reports whether the hero can leave through the door.
func (l *Level) HeroAtExit(hero *Character) bool {
	return l.Door.State == DoorOpen && hero.Rect.Intersects(l.Door.Rect)
}
