package mazequest

import (
	"fmt"

	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/questions"
)

// TutorialStep identifies which mechanic a tutorial level teaches.
type TutorialStep string

const (
	TutorialNone   TutorialStep = ""
	TutorialMove   TutorialStep = "move"
	TutorialCombat TutorialStep = "combat"
	TutorialHeal   TutorialStep = "heal"
)

// LevelDef describes one campaign level: question difficulty and
// modality, enemy count, and presentation.
type LevelDef struct {
	Name       string
	Difficulty int
	Modality   questions.Modality
	NumEnemies int
	WallColor  core.Color
	Tutorial   TutorialStep
	Message    string
}

// IsTutorial reports whether this is a tutorial level. Tutorials have an
// open arena instead of a generated maze and a fixed door position.
func (d LevelDef) IsTutorial() bool {
	return d.Tutorial != TutorialNone
}

// Campaign returns the full level sequence: three tutorials followed by
// five difficulty tiers, each played once per question modality.
func Campaign() []LevelDef {
	levels := []LevelDef{
		{
			Name:       "Tutorial 1: Movement",
			Difficulty: 1,
			Modality:   questions.MultipleChoice,
			Tutorial:   TutorialMove,
			WallColor:  core.ColorGreen,
			Message:    "Use the arrow keys to move. Reach the door to advance.",
		},
		{
			Name:       "Tutorial 2: Combat",
			Difficulty: 1,
			Modality:   questions.MultipleChoice,
			NumEnemies: 1,
			Tutorial:   TutorialCombat,
			WallColor:  core.ColorGreen,
			Message:    "Approach the zombie to start a fight. Answer correctly to attack.",
		},
		{
			Name:       "Tutorial 3: Healing",
			Difficulty: 1,
			Modality:   questions.MultipleChoice,
			Tutorial:   TutorialHeal,
			WallColor:  core.ColorGreen,
			Message:    "Our hero is wounded. Walk over the medkit to heal.",
		},
	}

	tiers := []struct {
		difficulty int
		enemies    int
		color      core.Color
	}{
		{1, 3, core.ColorGreen},
		{2, 4, core.ColorGray},
		{3, 5, core.ColorYellow},
		{4, 7, core.ColorRed},
		{5, 8, core.ColorWhite},
	}
	names := []struct {
		modality questions.Modality
		suffix   string
	}{
		{questions.MultipleChoice, "1 - Multiple Choice"},
		{questions.WordOrdering, "2 - Word Ordering"},
		{questions.FillInTheBlank, "3 - Fill in the Blank"},
	}

	for _, tier := range tiers {
		for _, n := range names {
			levels = append(levels, LevelDef{
				Name:       fmt.Sprintf("Level %d.%s", tier.difficulty, n.suffix),
				Difficulty: tier.difficulty,
				Modality:   n.modality,
				NumEnemies: tier.enemies,
				WallColor:  tier.color,
			})
		}
	}
	return levels
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Campaign())
}

// LevelNames returns the campaign level names in order.
func LevelNames() []string {
	defs := Campaign()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// FirstNonTutorialLevel returns the 1-indexed position of the first
// level that is not a tutorial.
func FirstNonTutorialLevel() int {
	for i, d := range Campaign() {
		if !d.IsTutorial() {
			return i + 1
		}
	}
	return 1
}
