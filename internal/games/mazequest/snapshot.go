package mazequest

// Phase represents the current session phase.
type Phase string

const (
	PhaseExplore  Phase = "explore"
	PhaseCombat   Phase = "combat"
	PhaseGameOver Phase = "game_over"
	PhaseWin      Phase = "win"
	PhasePaused   Phase = "paused"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Level        int // 1-indexed for display
	LevelName    string
	Score        int
	HeroX        int
	HeroY        int
	HeroHealth   int
	EnemiesAlive int
	MedkitsLeft  int
	DoorState    string
	Phase        Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseExplore
	switch {
	case g.won:
		phase = PhaseWin
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	case g.encounter != nil && g.encounter.Active():
		phase = PhaseCombat
	}

	alive := 0
	for _, e := range g.enemies {
		if e.Alive() {
			alive++
		}
	}
	medkits := 0
	for _, m := range g.level.Medkits {
		if !m.Used {
			medkits++
		}
	}

	return Snapshot{
		Tick:         g.tick,
		Level:        g.levelIndex + 1,
		LevelName:    g.level.Def.Name,
		Score:        g.score,
		HeroX:        g.hero.Rect.X,
		HeroY:        g.hero.Rect.Y,
		HeroHealth:   g.hero.Health,
		EnemiesAlive: alive,
		MedkitsLeft:  medkits,
		DoorState:    g.level.Door.State.String(),
		Phase:        phase,
	}
}
