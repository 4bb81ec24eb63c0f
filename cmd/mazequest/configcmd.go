package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazequest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration as YAML",
	Long: `Print the built-in default configuration to stdout.

Redirect it to ~/.mazequest/configs/mazequest.yaml to create a custom
config that the game picks up automatically:

  mkdir -p ~/.mazequest/configs
  mazequest config > ~/.mazequest/configs/mazequest.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "no default config for %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
