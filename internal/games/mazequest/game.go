package mazequest

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/questions"
	"github.com/vovakirdan/mazequest/internal/registry"
)

// feedbackTicks is how long a HUD message stays visible.
const feedbackTicks = 90

// Game implements the MazeQuest game: navigate a generated maze, fight
// enemies by answering grammar questions, heal with medkits, and leave
// through the door once every enemy is down.
type Game struct {
	cfg    config.MazeQuestConfig
	bank   *questions.Bank
	rng    *rand.Rand
	levels []LevelDef

	tick       uint64
	score      int
	levelIndex int
	level      *Level
	hero       *Character
	enemies    []*Character
	encounter  *Encounter
	prompt     *prompt

	enemyMoveCounter int
	feedback         string
	feedbackLeft     int

	gameOver bool
	won      bool
	paused   bool

	screenW int
	screenH int
}

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 means start from
// the first tutorial.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new MazeQuest game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mazequest", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mazequest"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "MazeQuest"
}

// Reset initializes the session: loads config, builds the campaign, and
// enters the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadMazeQuest(configPath)
	if err != nil {
		gameCfg = config.DefaultMazeQuestConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazeQuestPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg
	g.bank = questions.Default()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.levels = Campaign()
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	// A per-session StartLevel wins over the package-level selection.
	// The latter exists for the single-threaded CLI path only; servers
	// hosting concurrent sessions must pass the level through cfg.
	selected := cfg.StartLevel
	if selected <= 0 {
		selected = selectedStartLevel
	}
	start := 0
	if selected > 0 && selected <= len(g.levels) {
		start = selected - 1
	}
	g.hero = NewHero(g.cfg, 50, 50)
	g.enterLevel(start)
}

// enterLevel builds the level at the given index and places everything.
// The hero keeps its health across levels; position resets to the start.
func (g *Game) enterLevel(index int) {
	g.levelIndex = index
	g.level = NewLevel(g.cfg, g.levels[index], g.rng)
	g.enemies = g.level.SpawnEnemies()
	g.encounter = nil
	g.prompt = nil
	g.enemyMoveCounter = 0
	g.hero.Rect.X, g.hero.Rect.Y = 50, 50
	g.hero.ResetCooldown()

	if g.levels[index].Tutorial == TutorialHeal && g.hero.Health == g.hero.MaxHealth {
		g.hero.ReceiveDamage(25)
	}
	if msg := g.levels[index].Message; msg != "" {
		g.setFeedback(msg)
	} else {
		g.setFeedback(g.levels[index].Name)
	}
}

func (g *Game) setFeedback(msg string) {
	g.feedback = msg
	g.feedbackLeft = feedbackTicks
}

// Step advances the simulation by one tick. Order within a tick follows
// the classic loop: hero movement, combat trigger, free attack, enemy
// roaming, cooldowns, door and medkit checks, then level advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	emit := func(e core.Event) { events = append(events, e) }

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, Seed: 0})
		return core.StepResult{State: g.State()}
	}
	inCombat := g.encounter != nil && g.encounter.Active()

	// Pause during an encounter would swallow typed answers, so it only
	// applies while exploring.
	if in.Has(core.ActionPause) && !g.gameOver && !inCombat {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.feedbackLeft > 0 {
		g.feedbackLeft--
	}

	if inCombat {
		g.stepCombat(in, emit)
	} else {
		g.stepExplore(in, emit)
	}

	g.hero.TickCooldown()
	for _, e := range g.enemies {
		e.TickCooldown()
	}

	if g.level.CheckOpenDoor(g.enemies) {
		emit(core.EventDoorOpened)
		g.setFeedback("The door is opening!")
	}
	g.level.Door.Tick()

	if g.level.CheckMedkitPickup(g.hero) {
		emit(core.EventHeal)
		g.setFeedback("You feel better.")
	}

	if !g.hero.Alive() {
		g.gameOver = true
		emit(core.EventHeroDown)
		g.setFeedback("You died. Press R to restart.")
	} else if g.level.HeroAtExit(g.hero) {
		g.score += 50 * core.Max(1, g.level.Def.Difficulty)
		emit(core.EventLevelClear)
		if g.levelIndex+1 >= len(g.levels) {
			g.gameOver = true
			g.won = true
			g.setFeedback("You escaped every maze!")
		} else {
			g.enterLevel(g.levelIndex + 1)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepExplore handles free-roam movement, combat triggering and the
// free attack swing.
func (g *Game) stepExplore(in core.InputFrame, emit func(core.Event)) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) && !in.Has(core.ActionRight) {
		dx = -1
	}
	if in.Has(core.ActionRight) && !in.Has(core.ActionLeft) {
		dx = 1
	}
	if in.Has(core.ActionUp) && !in.Has(core.ActionDown) {
		dy = -1
	}
	if in.Has(core.ActionDown) && !in.Has(core.ActionUp) {
		dy = 1
	}
	if dx != 0 || dy != 0 {
		g.hero.Move(dx, dy, g.cfg.World.Width, g.cfg.World.Height, g.level.Walls(), g.enemies)
	}

	// Walking into a living enemy's reach starts an encounter.
	if target := g.findInRange(); target != nil && g.hero.Alive() {
		pool := g.bank.Pool(g.level.Def.Difficulty, g.level.Def.Modality)
		g.encounter = NewEncounter(g.hero, target, g.level.Def.Modality, pool, g.rng)
		if g.encounter != nil {
			g.prompt = newPrompt(g.encounter, "")
			return
		}
	}

	if in.Has(core.ActionAttack) {
		g.freeAttack(emit)
	}

	g.roamEnemies()
}

// freeAttack swings at the enemy in range, or at the closest one when
// nobody is reachable. The out-of-range swing misses but still burns
// the cooldown.
func (g *Game) freeAttack(emit func(core.Event)) {
	target := g.findInRange()
	if target == nil {
		target = g.findClosest()
	}
	if target == nil || !g.hero.CanAttack(target) {
		return
	}
	if g.hero.Attack(target) {
		emit(core.EventHit)
		if !target.Alive() {
			g.enemyDefeated(target, emit)
		}
	} else {
		emit(core.EventMiss)
	}
}

func (g *Game) enemyDefeated(target *Character, emit func(core.Event)) {
	g.score += 10 * core.Max(1, g.level.Def.Difficulty)
	emit(core.EventEnemyDown)
	g.setFeedback("Enemy defeated!")
}

// findInRange returns a living enemy within the hero's attack range.
func (g *Game) findInRange() *Character {
	for _, e := range g.enemies {
		if e.Alive() && g.hero.InRange(e) {
			return e
		}
	}
	return nil
}

// findClosest returns the nearest living enemy, or nil.
func (g *Game) findClosest() *Character {
	var closest *Character
	best := 0.0
	for _, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		d := g.hero.Rect.CenterDistance(e.Rect)
		if closest == nil || d < best {
			closest = e
			best = d
		}
	}
	return closest
}

// roamEnemies gives each living enemy a random step at fixed intervals.
func (g *Game) roamEnemies() {
	g.enemyMoveCounter++
	if g.enemyMoveCounter < g.cfg.Enemy.RoamIntervalTicks {
		return
	}
	g.enemyMoveCounter = 0

	step := g.cfg.Enemy.RoamStep
	dirs := [][2]int{{step, 0}, {-step, 0}, {0, step}, {0, -step}, {0, 0}}
	for _, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		d := dirs[g.rng.Intn(len(dirs))]
		if d[0] == 0 && d[1] == 0 {
			continue
		}
		others := make([]*Character, 0, len(g.enemies))
		others = append(others, g.hero)
		for _, other := range g.enemies {
			if other != e {
				others = append(others, other)
			}
		}
		e.Move(d[0], d[1], g.cfg.World.Width, g.cfg.World.Height, g.level.Walls(), others)
	}
}

// stepCombat feeds input to the question prompt and resolves a turn on
// submit. Nobody moves while an encounter is active.
func (g *Game) stepCombat(in core.InputFrame, emit func(core.Event)) {
	answer, submitted := g.prompt.handle(in)
	if !submitted {
		return
	}

	result := g.encounter.ProcessTurn(answer)
	if result.Correct {
		emit(core.EventHit)
	} else {
		emit(core.EventMiss)
	}
	g.setFeedback(result.Message)

	if result.Over {
		if !g.encounter.Enemy.Alive() {
			g.enemyDefeated(g.encounter.Enemy, emit)
		}
		g.encounter = nil
		g.prompt = nil
		return
	}
	g.prompt = newPrompt(g.encounter, result.Message)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Progress reports how far the current campaign run has advanced.
// Used by the platform to persist run history.
func (g *Game) Progress() (level int, levelName string, won bool) {
	if g.levelIndex < 0 || g.levelIndex >= len(g.levels) {
		return 0, "", g.won
	}
	return g.levelIndex + 1, g.levels[g.levelIndex].Name, g.won
}
