package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazequest/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Printable runes are recorded in the frame as typed text in addition
// to any action they map to; the game decides which to consume based
// on its current mode. Returns true if the key was a quit request.
//
// Plain letters never quit: answers are typed with the same keys that
// move the hero, so only ctrl+c ends a session from inside a game.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return true
	case "up":
		frame.Set(core.ActionUp)
		return false
	case "down":
		frame.Set(core.ActionDown)
		return false
	case "left":
		frame.Set(core.ActionLeft)
		return false
	case "right":
		frame.Set(core.ActionRight)
		return false
	case "enter":
		frame.Set(core.ActionConfirm)
		return false
	case "backspace":
		frame.Set(core.ActionBackspace)
		return false
	case "esc":
		frame.Set(core.ActionBack)
		return false
	}

	// Single printable rune: map the movement/attack letters and pass
	// the rune through for text answers.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		switch r {
		case 'w', 'W':
			frame.Set(core.ActionUp)
		case 's', 'S':
			frame.Set(core.ActionDown)
		case 'a', 'A':
			frame.Set(core.ActionLeft)
		case 'd', 'D':
			frame.Set(core.ActionRight)
		case 'x', 'X':
			frame.Set(core.ActionAttack)
		case 'p', 'P':
			frame.Set(core.ActionPause)
		case 'r', 'R':
			frame.Set(core.ActionRestart)
		}
		frame.Type(r)
		return false
	}

	if msg.Type == tea.KeySpace {
		frame.Type(' ')
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
