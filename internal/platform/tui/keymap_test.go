package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

func TestMapKeyName(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"up", core.ActionAltUp, false},
		{"down", core.ActionAltDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionJump, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := MapKeyName(tt.key)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKeyName(%q) = %v, %v; want %v, %v", tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyUsesKeyString(t *testing.T) {
	km := NewKeyMapper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}
	if action, _ := km.MapKey(msg); action != core.ActionRight {
		t.Errorf("MapKey(d) = %v, want Right", action)
	}
	if action, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}); action != core.ActionLeft {
		t.Errorf("MapKey(left) = %v, want Left", action)
	}
}

func TestPressActionHoldsMovementAndTapsOneShots(t *testing.T) {
	keys := core.NewHeldKeys(3)
	PressAction(keys, core.ActionLeft)
	PressAction(keys, core.ActionPause)
	PressAction(keys, core.ActionNone)

	first := keys.Snapshot()
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionPause) {
		t.Fatalf("first snapshot = %v, want Left and Pause", first.Actions)
	}
	if len(first.Actions) != 2 {
		t.Errorf("first snapshot has %d actions, want 2", len(first.Actions))
	}

	second := keys.Snapshot()
	if !second.Has(core.ActionLeft) {
		t.Error("Left released after one frame, want held")
	}
	if second.Has(core.ActionPause) {
		t.Error("Pause seen twice, want one frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
