package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable describes components that can gain or lose focus.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Scrollable captures the common scrolling operations supported by viewports.
type Scrollable interface {
	ScrollUp(lines int) []string
	ScrollDown(lines int) []string
	HalfPageUp() []string
	HalfPageDown() []string
}
