// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Chain identifies the tick loop that produced it, so a loop left behind
// by a previous game stops instead of driving the next one.
type TickMsg struct {
	Time  time.Time
	Chain uint64
}

var tickChains atomic.Uint64

// newTickChain returns an identifier for a fresh tick loop.
func newTickChain() uint64 {
	return tickChains.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Chain: chain}
	})
}
