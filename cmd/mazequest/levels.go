package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazequest/internal/games/mazequest"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Display the campaign level sequence with question type, difficulty
and enemy count. Use the printed numbers with 'mazequest play --level'.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := mazequest.Campaign()

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-34s  %-18s  %-10s  %s\n", "#", "Name", "Questions", "Difficulty", "Enemies")
	fmt.Printf("  %-3s  %-34s  %-18s  %-10s  %s\n", "-", "----", "---------", "----------", "-------")

	for i, def := range levels {
		questionType := def.Modality.Title()
		if def.IsTutorial() && def.Tutorial != mazequest.TutorialCombat {
			questionType = "-"
		}
		fmt.Printf("  %-3d  %-34s  %-18s  %-10d  %d\n",
			i+1, def.Name, questionType, def.Difficulty, def.NumEnemies)
	}

	fmt.Println()
	fmt.Println("Run 'mazequest play --level <#>' to start from a level.")
}
