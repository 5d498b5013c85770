package demo

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/tabs"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/components"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonPressedMsg is emitted when a push button in a pane fires.
type ButtonPressedMsg struct {
	Label   string
	Presses int
}

// SelectionColorMsg asks the host to switch the selected tab color.
type SelectionColorMsg struct {
	On bool
}

// pane carries the state every demo pane shares.
type pane struct {
	label   string
	bounds  tabs.Rect
	hidden  bool
	focused bool
	theme   theme.Theme
}

func (p *pane) Label() string           { return p.label }
func (p *pane) Bounds() tabs.Rect       { return p.bounds }
func (p *pane) SetBounds(r tabs.Rect)   { p.bounds = r }
func (p *pane) Visible() bool           { return !p.hidden }
func (p *pane) Show()                   { p.hidden = false }
func (p *pane) Hide()                   { p.hidden = true }
func (p *pane) Blur()                   { p.focused = false }
func (p *pane) Focused() bool           { return p.focused }
func (p *pane) SetTheme(th theme.Theme) { p.theme = th }

func (p *pane) Focus() tea.Cmd {
	p.focused = true
	return nil
}

// ColorPane is a flat box of one color.
type ColorPane struct {
	pane
	color lipgloss.Color
}

// NewColorPane returns a pane filled with color.
func NewColorPane(label string, bounds tabs.Rect, color lipgloss.Color, th theme.Theme) *ColorPane {
	return &ColorPane{pane: pane{label: label, bounds: bounds, theme: th}, color: color}
}

func (p *ColorPane) View() string {
	return lipgloss.NewStyle().
		Background(p.color).
		Width(p.bounds.W).
		Height(p.bounds.H).
		Render("")
}

// TextPane shows scrollable text.
type TextPane struct {
	pane
	vp *viewport.Model
}

// NewTextPane returns a pane showing content in a viewport sized to bounds.
func NewTextPane(label string, bounds tabs.Rect, content string, th theme.Theme) *TextPane {
	p := &TextPane{
		pane: pane{label: label, bounds: bounds, theme: th},
		vp:   components.NewViewport(bounds.W, bounds.H, th),
	}
	p.vp.SetContent(content)
	return p
}

func (p *TextPane) SetBounds(r tabs.Rect) {
	p.bounds = r
	components.ResizeViewport(p.vp, r.W, r.H)
}

func (p *TextPane) View() string {
	return p.vp.View()
}

func (p *TextPane) Update(msg tea.Msg) tea.Cmd {
	scroll(p.vp, msg)
	return nil
}

// scroll applies navigation keys and wheel events to s.
func scroll(s components.Scrollable, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.ScrollUp(1)
		case "down", "j":
			s.ScrollDown(1)
		case "pgup":
			s.HalfPageUp()
		case "pgdown":
			s.HalfPageDown()
		default:
			return false
		}
		return true
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			s.ScrollDown(1)
		default:
			return false
		}
		return true
	}
	return false
}

// button is a clickable push or light button drawn inside a pane. It fires
// when released over itself after being pressed there.
type button struct {
	label  string
	toggle bool
	on     bool
	armed  bool
}

func (b *button) render(th theme.Theme, focused bool) string {
	colors := th.Colors()
	text := b.label
	if b.toggle {
		light := th.Icon("lightOff")
		if b.on {
			light = th.Icon("lightOn")
		}
		text = light + " " + text
	}
	border := colors.Muted
	if focused {
		border = colors.Accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2)
	if b.armed {
		style = style.Reverse(true)
	}
	return style.Render(text)
}

// mouse feeds a pointer event to the button placed at rect and reports
// whether it fired.
func (b *button) mouse(msg tea.MouseMsg, rect tabs.Rect) bool {
	if msg.Button != tea.MouseButtonLeft {
		return false
	}
	inside := rect.Contains(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		b.armed = inside
	case tea.MouseActionRelease:
		fired := b.armed && inside
		b.armed = false
		if fired {
			b.fire()
		}
		return fired
	}
	return false
}

func (b *button) fire() {
	if b.toggle {
		b.on = !b.on
	}
}

// ButtonPane hosts a single button below a short caption.
type ButtonPane struct {
	pane
	button   button
	activate key.Binding
	caption  string
	presses  int
}

// NewButtonPane returns a pane with a push button. The button emits a
// ButtonPressedMsg when it fires.
func NewButtonPane(label string, bounds tabs.Rect, buttonLabel string, th theme.Theme, activate key.Binding) *ButtonPane {
	return &ButtonPane{
		pane:     pane{label: label, bounds: bounds, theme: th},
		button:   button{label: buttonLabel},
		activate: activate,
		caption:  "Click the button or press enter.",
	}
}

// NewLightButtonPane returns a pane with an on/off button. Every toggle
// emits a SelectionColorMsg carrying the new state.
func NewLightButtonPane(label string, bounds tabs.Rect, buttonLabel string, th theme.Theme, activate key.Binding) *ButtonPane {
	p := NewButtonPane(label, bounds, buttonLabel, th, activate)
	p.button.toggle = true
	p.caption = "Toggle the button to recolor the selected tab."
	return p
}

// Presses is the number of times the button fired.
func (p *ButtonPane) Presses() int { return p.presses }

// On reports the state of a light button.
func (p *ButtonPane) On() bool { return p.button.on }

// ButtonRect is the screen rectangle of the button.
func (p *ButtonPane) ButtonRect() tabs.Rect {
	btn := p.button.render(p.theme, p.focused)
	return tabs.Rect{
		X: p.bounds.X + 2,
		Y: p.bounds.Y + 3,
		W: lipgloss.Width(btn),
		H: lipgloss.Height(btn),
	}
}

func (p *ButtonPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.focused && key.Matches(msg, p.activate) {
			p.button.fire()
			return p.fired()
		}
	case tea.MouseMsg:
		if p.button.mouse(msg, p.ButtonRect()) {
			return p.fired()
		}
	}
	return nil
}

func (p *ButtonPane) fired() tea.Cmd {
	p.presses++
	if p.button.toggle {
		return components.Emit(SelectionColorMsg{On: p.button.on})
	}
	return components.Emit(ButtonPressedMsg{Label: p.button.label, Presses: p.presses})
}

func (p *ButtonPane) View() string {
	muted := lipgloss.NewStyle().Foreground(p.theme.Colors().Muted)
	var b strings.Builder
	b.WriteString(muted.Render(p.caption))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(p.button.render(p.theme, p.focused)))
	if p.presses > 0 && !p.button.toggle {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(p.theme.Colors().Accent).
			Render(fmt.Sprintf("Button pressed. (%d)", p.presses)))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(b.String())
}
