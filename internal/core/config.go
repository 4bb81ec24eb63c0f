package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
	// StartLevel is the 1-based level to begin at; 0 means the game's
	// default start. Carried per session so concurrent sessions never
	// share a start-level selection.
	StartLevel int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (win or lose)
	Won      bool // Whether the game ended in victory
	Paused   bool // Whether the game is paused
}

// Event is a discrete game occurrence the platform may react to,
// for example by flashing the HUD. Events are fire-and-forget; the
// game never waits on their consumption.
type Event int

const (
	EventNone Event = iota
	EventHit          // an attack landed
	EventMiss         // an attack was swung but missed
	EventHeal         // a medkit was applied
	EventDoorOpened   // all enemies defeated, door unlocking
	EventEnemyDown    // an enemy was defeated
	EventHeroDown     // the hero was defeated
	EventLevelClear   // hero walked through the open door
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
