package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/games/mazequest"
	"github.com/vovakirdan/mazequest/internal/platform/tui"
	"github.com/vovakirdan/mazequest/internal/registry"
	"github.com/vovakirdan/mazequest/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagPickLevel  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a campaign",
	Long: `Start playing. The campaign opens with three short tutorials,
then works through five difficulty tiers of maze levels.

Controls:
  WASD/Arrows - Move
  X           - Attack a nearby enemy
  Enter       - Submit answer (in combat)
  P           - Pause (while exploring)
  R           - Restart (after game over)
  Ctrl+C      - Quit

Difficulty options:
  easy   - More health and medkits
  normal - Standard balance
  hard   - Less health, fewer medkits

Examples:
  mazequest play
  mazequest play --level 4          # Skip tutorials
  mazequest play --pick-level       # Choose a starting level interactively
  mazequest play --difficulty hard
  mazequest play --config ./my-mazequest.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-indexed, 0 = from the beginning)")
	playCmd.Flags().BoolVar(&flagPickLevel, "pick-level", false, "Pick the starting level interactively")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	mazequest.SetConfigPath(flagConfig)
	mazequest.SetDifficultyPreset(flagDifficulty)

	level := flagLevel
	if flagPickLevel {
		selection, updatedCfg, selErr := tui.RunLevelMenu(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		level = selection.Level
	}
	if level < 0 || level > mazequest.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", mazequest.LevelCount())
		os.Exit(1)
	}
	mazequest.SetStartLevel(level)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
