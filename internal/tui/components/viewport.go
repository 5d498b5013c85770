package components

import (
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// NewViewport returns a viewport filling a width x height content area,
// padded by the theme's panel padding.
func NewViewport(width, height int, th theme.Theme) *viewport.Model {
	vp := viewport.New(1, 1)
	vp.Style = lipgloss.NewStyle().Padding(th.Spacing().PanelPadding)
	ResizeViewport(&vp, width, height)
	return &vp
}

// ResizeViewport fits vp to a new content area, never smaller than one
// cell, and keeps the scroll position inside the content.
func ResizeViewport(vp *viewport.Model, width, height int) {
	vp.Width = max(width, 1)
	vp.Height = max(height, 1)
	if vp.PastBottom() {
		vp.GotoBottom()
	}
}
