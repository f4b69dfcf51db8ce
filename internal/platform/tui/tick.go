// Package tui provides the Bubble Tea integration for SharkShark.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// frameClock turns tick timestamps into frame durations.
type frameClock struct {
	last     time.Time
	fallback float64
}

func newFrameClock(tickRate int) frameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return frameClock{fallback: 1 / float64(tickRate)}
}

// Advance returns the seconds since the previous tick.
// The first tick, and any tick with a clock going backwards, uses the
// nominal tick length.
func (c *frameClock) Advance(now time.Time) float64 {
	dt := c.fallback
	if !c.last.IsZero() && now.After(c.last) {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now
	return dt
}
