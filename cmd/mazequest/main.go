// mazequest is a terminal maze crawler where combat is fought with
// English grammar questions.
//
// Usage:
//
//	mazequest play           - Start a campaign
//	mazequest menu           - Interactive menu (play, level select, scores)
//	mazequest serve          - Start SSH server for remote play
//	mazequest scores         - Show high scores and recent runs
//	mazequest levels         - List the campaign levels
//	mazequest config         - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mazequest/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/mazequest/internal/games/mazequest"
)

// gameID is the registry ID of the game this binary ships.
const gameID = "mazequest"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazequest",
	Short: "MazeQuest - Fight through mazes by answering grammar questions",
	Long: `MazeQuest is a terminal game: explore randomly generated mazes,
and when an enemy gets close, combat becomes a grammar quiz. Answer
correctly to strike, answer wrong and the enemy strikes you.

Available commands:
  play     - Start a campaign directly
  menu     - Interactive menu with level select and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  levels   - List the campaign levels
  config   - Print the default configuration YAML

Examples:
  mazequest play
  mazequest play --level 4 --difficulty hard
  mazequest menu
  mazequest serve --ssh :2222
  mazequest scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazequest/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(listCmd)
}
