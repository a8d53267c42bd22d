// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickAfter returns a Bubble Tea command that sends one tick message after d.
// The game's interval changes as it speeds up, so each tick schedules the next.
func tickAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / time.Duration(fallbackTickRate)
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fallbackTickRate paces games that report no interval.
const fallbackTickRate = 5
