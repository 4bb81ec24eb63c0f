// Package questions holds the static grammar question bank consumed by
// combat encounters. The bank is configuration data, not logic: an
// immutable table keyed by difficulty and question modality, loaded from
// an embedded YAML document.
package questions

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Modality is one of the three question formats.
type Modality string

const (
	WordOrdering   Modality = "word_ordering"
	MultipleChoice Modality = "multiple_choice"
	FillInTheBlank Modality = "fill_in_the_blank"
)

// Modalities lists all supported question formats.
var Modalities = []Modality{WordOrdering, MultipleChoice, FillInTheBlank}

// Valid reports whether m names a known modality.
func (m Modality) Valid() bool {
	switch m {
	case WordOrdering, MultipleChoice, FillInTheBlank:
		return true
	}
	return false
}

// Title returns a display name for the modality.
func (m Modality) Title() string {
	switch m {
	case WordOrdering:
		return "Word Ordering"
	case MultipleChoice:
		return "Multiple Choice"
	case FillInTheBlank:
		return "Fill in the Blank"
	default:
		return string(m)
	}
}

// Entry is one immutable question/answer tuple. Which fields are set
// depends on the modality: word ordering uses Words+Answer, multiple
// choice uses Prompt+Options+Answer, fill-in-the-blank uses Prompt+Answer.
type Entry struct {
	Prompt  string   `yaml:"prompt,omitempty"`
	Words   []string `yaml:"words,omitempty"`
	Options []string `yaml:"options,omitempty"`
	Answer  string   `yaml:"answer"`
}

// Key identifies the entry for repeat suppression: the prompt for
// prompt-based modalities, the canonical sentence for word ordering.
func (e Entry) Key() string {
	if e.Prompt != "" {
		return e.Prompt
	}
	return e.Answer
}

// Matches grades a submitted answer against this entry:
// case-insensitive, whitespace-trimmed exact match. No partial credit.
func (e Entry) Matches(submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(e.Answer))
}

// Bank is the difficulty- and modality-indexed question table.
type Bank struct {
	byDifficulty map[int]map[Modality][]Entry
	maxDiff      int
}

// bankFile mirrors the embedded YAML document.
type bankFile struct {
	Difficulties []struct {
		Difficulty     int     `yaml:"difficulty"`
		WordOrdering   []Entry `yaml:"word_ordering"`
		MultipleChoice []Entry `yaml:"multiple_choice"`
		FillInTheBlank []Entry `yaml:"fill_in_the_blank"`
	} `yaml:"difficulties"`
}

//go:embed data/questions.yaml
var defaultBankYAML []byte

// Load parses a YAML question bank document.
func Load(data []byte) (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("questions: cannot parse bank: %w", err)
	}

	b := &Bank{byDifficulty: make(map[int]map[Modality][]Entry)}
	for _, d := range file.Difficulties {
		if d.Difficulty < 1 {
			return nil, fmt.Errorf("questions: invalid difficulty %d", d.Difficulty)
		}
		b.byDifficulty[d.Difficulty] = map[Modality][]Entry{
			WordOrdering:   d.WordOrdering,
			MultipleChoice: d.MultipleChoice,
			FillInTheBlank: d.FillInTheBlank,
		}
		if d.Difficulty > b.maxDiff {
			b.maxDiff = d.Difficulty
		}
	}
	return b, nil
}

// Default returns the built-in question bank. The embedded document is
// part of the build, so a parse failure is a programming error.
func Default() *Bank {
	b, err := Load(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("questions: embedded bank is invalid: %v", err))
	}
	return b
}

// Pool returns the entries for a (difficulty, modality) pair. A missing
// difficulty or modality yields an empty pool, never an error: callers
// treat an empty pool as "encounter cannot progress".
func (b *Bank) Pool(difficulty int, m Modality) []Entry {
	mods, ok := b.byDifficulty[difficulty]
	if !ok {
		return nil
	}
	return mods[m]
}

// MaxDifficulty returns the highest difficulty present in the bank.
func (b *Bank) MaxDifficulty() int {
	return b.maxDiff
}
