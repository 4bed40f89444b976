package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	return MapKeyName(msg.String())
}

// MapKeyName maps a key name as reported by Bubble Tea ("w", "up",
// "ctrl+c") to a game action. Shared with the tcell backend.
func MapKeyName(key string) (action core.Action, isQuit bool) {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w":
		return core.ActionUp, false
	case "s":
		return core.ActionDown, false
	case "up":
		return core.ActionAltUp, false
	case "down":
		return core.ActionAltDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsOneShot reports whether an action fires once per key press instead of
// being held.
func IsOneShot(a core.Action) bool {
	switch a {
	case core.ActionPause, core.ActionRestart, core.ActionConfirm, core.ActionBack, core.ActionJump:
		return true
	}
	return false
}

// PressAction feeds an action into held-key state: one-shot actions are
// tapped, movement is pressed and decays after the hold window.
func PressAction(keys *core.HeldKeys, a core.Action) {
	if a == core.ActionNone {
		return
	}
	if IsOneShot(a) {
		keys.Tap(a)
		return
	}
	keys.Press(a)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
