package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W - move up (Pong left paddle)
	ActionDown           // S - move down (Pong left paddle)
	ActionAltUp          // Up arrow - second player up
	ActionAltDown        // Down arrow - second player down
	ActionLeft           // A, Left arrow - move left (Breakton paddle)
	ActionRight          // D, Right arrow - move right (Breakton paddle)
	ActionJump           // Space - primary action (serve)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAltUp:
		return "AltUp"
	case ActionAltDown:
		return "AltDown"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick: which actions
// are held during this frame. The engine hands the same frame to every
// update call of a tick.
type InputFrame struct {
	// Actions maps action types to whether they are pressed this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldKeys turns discrete key presses into a held-key snapshot. Terminals only
// report presses (plus auto-repeat), never releases, so a key counts as held
// for a few frames after its last press.
type HeldKeys struct {
	holdFrames int
	remaining  map[Action]int
}

// NewHeldKeys creates a tracker that keeps a pressed action alive for holdFrames ticks.
func NewHeldKeys(holdFrames int) *HeldKeys {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &HeldKeys{
		holdFrames: holdFrames,
		remaining:  make(map[Action]int),
	}
}

// Press records a key press for the given action.
func (h *HeldKeys) Press(a Action) {
	h.remaining[a] = h.holdFrames
}

// Tap records a one-shot action (pause, restart) that is seen by exactly one
// snapshot, however long the key is held.
func (h *HeldKeys) Tap(a Action) {
	h.remaining[a] = 1
}

// Release forgets an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Snapshot returns the actions held this frame and ages every press by one frame.
func (h *HeldKeys) Snapshot() InputFrame {
	frame := NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// KeyHold is how long a terminal key press counts as held.
const KeyHold = 150 * time.Millisecond

// HoldFrames converts KeyHold into ticks at the given rate.
func HoldFrames(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int(KeyHold * time.Duration(tickRate) / time.Second)
	return max(n, 1)
}
