// Package tui provides the Bubble Tea integration for Glimmerwood Dash.
// It handles the terminal UI loop, input mapping, rendering, and score
// persistence around the pure simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame. It carries the wall-clock time of
// the frame so the fixed-step accumulator can measure real elapsed time.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command scheduling the next display frame.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
