package mazequest

import (
	"strings"

	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/questions"
)

// prompt is the input-side view state of a combat question: which words
// are picked, which option is highlighted, or what text was typed.
// It is rebuilt for every question; the Encounter owns the grading.
type prompt struct {
	modality questions.Modality

	// Word ordering: display words, pick state and cursor.
	words  []string
	picked []int
	used   []bool
	cursor int

	// Multiple choice: options and cursor (shared with word ordering).
	options []string

	// Fill in the blank: typed text.
	typed []rune

	// Feedback from the previous turn, shown until the next submit.
	result string
}

// newPrompt builds the view state for the encounter's current question.
func newPrompt(e *Encounter, result string) *prompt {
	p := &prompt{modality: e.Modality, result: result}
	switch e.Modality {
	case questions.WordOrdering:
		p.words = append(p.words, e.Shuffled...)
		p.used = make([]bool, len(p.words))
	case questions.MultipleChoice:
		p.options = append(p.options, e.Current().Options...)
	}
	return p
}

// answer returns the currently assembled answer text.
func (p *prompt) answer() string {
	switch p.modality {
	case questions.WordOrdering:
		parts := make([]string, 0, len(p.picked))
		for _, i := range p.picked {
			parts = append(parts, p.words[i])
		}
		return strings.Join(parts, " ")
	case questions.MultipleChoice:
		if len(p.options) == 0 {
			return ""
		}
		return p.options[p.cursor]
	default:
		return string(p.typed)
	}
}

// complete reports whether the answer is ready to submit.
func (p *prompt) complete() bool {
	switch p.modality {
	case questions.WordOrdering:
		return len(p.picked) == len(p.words)
	case questions.MultipleChoice:
		return len(p.options) > 0
	default:
		return len(strings.TrimSpace(string(p.typed))) > 0
	}
}

// handle consumes one tick of input. It returns the submitted answer
// and true when the player confirmed a complete answer.
func (p *prompt) handle(in core.InputFrame) (string, bool) {
	switch p.modality {
	case questions.WordOrdering:
		return p.handleWords(in)
	case questions.MultipleChoice:
		return p.handleOptions(in)
	default:
		return p.handleText(in)
	}
}

func (p *prompt) handleWords(in core.InputFrame) (string, bool) {
	if in.Has(core.ActionLeft) {
		p.moveWordCursor(-1)
	}
	if in.Has(core.ActionRight) {
		p.moveWordCursor(1)
	}
	if in.Has(core.ActionBackspace) && len(p.picked) > 0 {
		last := p.picked[len(p.picked)-1]
		p.picked = p.picked[:len(p.picked)-1]
		p.used[last] = false
		p.cursor = last
	}
	if in.Has(core.ActionConfirm) {
		if p.complete() {
			return p.answer(), true
		}
		if len(p.words) > 0 && !p.used[p.cursor] {
			p.used[p.cursor] = true
			p.picked = append(p.picked, p.cursor)
			p.moveWordCursor(1)
		}
	}
	return "", false
}

// moveWordCursor steps to the next unused word in the given direction,
// wrapping around. Stays put when every word is picked.
func (p *prompt) moveWordCursor(dir int) {
	if len(p.picked) == len(p.words) {
		return
	}
	for i := 0; i < len(p.words); i++ {
		p.cursor = (p.cursor + dir + len(p.words)) % len(p.words)
		if !p.used[p.cursor] {
			return
		}
	}
}

func (p *prompt) handleOptions(in core.InputFrame) (string, bool) {
	if len(p.options) == 0 {
		return "", false
	}
	if in.Has(core.ActionUp) {
		p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
	}
	if in.Has(core.ActionDown) {
		p.cursor = (p.cursor + 1) % len(p.options)
	}
	if in.Has(core.ActionConfirm) {
		return p.answer(), true
	}
	return "", false
}

func (p *prompt) handleText(in core.InputFrame) (string, bool) {
	for _, r := range in.Runes {
		p.typed = append(p.typed, r)
	}
	if in.Has(core.ActionBackspace) && len(p.typed) > 0 {
		p.typed = p.typed[:len(p.typed)-1]
	}
	if in.Has(core.ActionConfirm) && p.complete() {
		return p.answer(), true
	}
	return "", false
}
