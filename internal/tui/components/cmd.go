package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick schedules a message after the specified duration.
func Tick(duration time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(duration, fn)
}

// Emit returns a tea.Cmd that delivers msg on the next update.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
