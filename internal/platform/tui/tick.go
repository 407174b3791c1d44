// Package tui provides the Bubble Tea integration for the invaders game.
// It owns the clock, maps keys to game actions and renders the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// repeatMsg fires while a direction key is held.
type repeatMsg struct {
	gen int
	at  time.Time
}

// repeatCmd schedules the next held-key repeat for hold generation gen.
func repeatCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return repeatMsg{gen: gen, at: t}
	})
}
