package theme

import (
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

// IconSet represents a collection of glyphs keyed by semantic usage.
type IconSet map[string]string

// clone returns a copy of the icon set to avoid shared mutation across themes.
func (s IconSet) clone() IconSet {
	if s == nil {
		return nil
	}
	clone := make(IconSet, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Colors holds the shared color palette used across the TUI.
type Colors struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Selection  lipgloss.Color
	Error      lipgloss.Color
}

// Borders defines reusable border styles.
type Borders struct {
	Panel lipgloss.Border
}

// Spacing captures commonly used spacing values.
type Spacing struct {
	PanelPadding   int
	StatusHPadding int
}

// Theme centralizes palette, border, spacing, and glyph configuration.
type Theme struct {
	colors   Colors
	borders  Borders
	spacing  Spacing
	icons    IconSet
	fallback IconSet
}

// Option configures a Theme during construction.
type Option func(*Theme)

// WithIconSet overrides the glyph set used by the theme.
func WithIconSet(set IconSet) Option {
	return func(t *Theme) {
		t.icons = set.clone()
	}
}

// WithASCII forces the plain ASCII glyph set.
func WithASCII() Option {
	return WithIconSet(asciiIcons)
}

// WithColors overrides the base color palette.
func WithColors(colors Colors) Option {
	return func(t *Theme) {
		t.colors = colors
	}
}

// WithSelectionColor overrides only the color of the selected tab.
func WithSelectionColor(c lipgloss.Color) Option {
	return func(t *Theme) {
		t.colors.Selection = c
	}
}

// WithSpacing overrides the default spacing values.
func WithSpacing(spacing Spacing) Option {
	return func(t *Theme) {
		t.spacing = spacing
	}
}

// WithBorders overrides the border configuration.
func WithBorders(borders Borders) Option {
	return func(t *Theme) {
		t.borders = borders
	}
}

// New constructs a Theme with optional overrides applied.
func New(opts ...Option) Theme {
	defaults := []Option{
		WithColors(Colors{
			Primary:    lipgloss.Color("#3a6b4a"),
			Secondary:  lipgloss.Color("#5a8c6a"),
			Accent:     lipgloss.Color("#8fc279"),
			Background: lipgloss.Color("#f8f8f8"),
			Muted:      lipgloss.Color("#9ba8c0"),
			Selection:  lipgloss.Color("#2f4f7f"),
			Error:      lipgloss.Color("#f04c56"),
		}),
		WithBorders(Borders{Panel: lipgloss.RoundedBorder()}),
		WithSpacing(Spacing{PanelPadding: 1, StatusHPadding: 1}),
		WithIconSet(defaultIconSet()),
	}

	t := Theme{fallback: asciiIcons.clone()}

	for _, opt := range append(defaults, opts...) {
		opt(&t)
	}

	if t.icons == nil {
		t.icons = defaultIconSet()
	}

	return t
}

// Default returns the default Theme configuration.
func Default() Theme {
	return New()
}

// Colors exposes the theme color palette.
func (t Theme) Colors() Colors {
	return t.colors
}

// Borders exposes the theme border configuration.
func (t Theme) Borders() Borders {
	return t.borders
}

// Spacing exposes the theme spacing configuration.
func (t Theme) Spacing() Spacing {
	return t.spacing
}

// Icon returns a themed glyph with ASCII fallback if unavailable.
func (t Theme) Icon(name string) string {
	if icon, ok := t.icons[name]; ok {
		return icon
	}
	if icon, ok := t.fallback[name]; ok {
		return icon
	}
	return ""
}

// IconSet returns a copy of the themed glyph map.
func (t Theme) IconSet() IconSet {
	return t.icons.clone()
}

// HeaderStyle returns the shared style used for primary headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Background(t.colors.Primary).
		Foreground(t.colors.Background).
		Align(lipgloss.Center)
}

// StatusBarStyle returns the shared style used for footer/status bars.
func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.colors.Secondary).
		Foreground(t.colors.Background).
		Padding(0, t.spacing.StatusHPadding)
}

// PanelStyle returns the shared panel container style.
func (t Theme) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.borders.Panel).
		BorderForeground(t.colors.Accent).
		Padding(t.spacing.PanelPadding)
}

// PanelTitleStyle returns the shared style for panel titles.
func (t Theme) PanelTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true)
}

// StripStyle is the flat background behind the tab strip.
func (t Theme) StripStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.colors.Muted)
}

// TabStyle returns the raised style for ordinary tabs and the sunken,
// selection-colored style for the current tab.
func (t Theme) TabStyle(selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Background(t.colors.Selection).
			Foreground(t.colors.Background)
	}
	return lipgloss.NewStyle().
		Background(t.colors.Secondary).
		Foreground(t.colors.Background)
}

// CloseStyle returns the style of the close zone inside a tab.
func (t Theme) CloseStyle(selected bool) lipgloss.Style {
	return t.TabStyle(selected).Foreground(t.colors.Error)
}

// ButtonStyle returns the up frame for an idle scroll button and the
// pressed frame while it is held down.
func (t Theme) ButtonStyle(pressed bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(true).
		Background(t.colors.Primary).
		Align(lipgloss.Center)
	if pressed {
		return style.Reverse(true)
	}
	return style
}

// ArrowColor returns the arrow color for a scroll button, dimmed when the
// strip cannot scroll in that direction.
func (t Theme) ArrowColor(active bool) lipgloss.Color {
	if active {
		return t.colors.Background
	}
	return t.colors.Muted
}

// defaultIconSet chooses the best glyph set for the current terminal.
func defaultIconSet() IconSet {
	if isLimitedTerminal() {
		return asciiIcons.clone()
	}
	return unicodeIcons.clone()
}

// isLimitedTerminal detects environments where ASCII glyphs are preferable.
func isLimitedTerminal() bool {
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" {
		return true
	}
	return runtime.GOOS == "windows"
}

var unicodeIcons = IconSet{
	"left":     "◀",
	"right":    "▶",
	"close":    "×",
	"ellipsis": "…",
	"tab":      "▤",
	"index":    "☰",
	"selected": "●",
	"closed":   "✕",
	"scroll":   "⇄",
	"demo":     "🗂",
	"journal":  "☷",
	"lightOn":  "■",
	"lightOff": "□",
	"config":   "⚙",
	"check":    "✓",
}

var asciiIcons = IconSet{
	"left":     "<",
	"right":    ">",
	"close":    "x",
	"ellipsis": "...",
	"tab":      "[T]",
	"index":    "[#]",
	"selected": "*",
	"closed":   "x",
	"scroll":   "<>",
	"demo":     "[D]",
	"journal":  "[J]",
	"lightOn":  "[*]",
	"lightOff": "[ ]",
	"config":   "[C]",
	"check":    "x",
}
