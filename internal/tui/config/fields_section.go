package config

import (
	"unicode"

	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldsSection edits a list of toggles and numbers. Up and Down move
// between fields, Space and Enter flip toggles and digits edit numbers.
type fieldsSection struct {
	section Section
	title   string
	state   *FieldsState
	theme   theme.Theme
	width   int
	focused bool
}

func newFieldsSection(section Section, title string, state *FieldsState, th theme.Theme) *fieldsSection {
	return &fieldsSection{section: section, title: title, state: state, theme: th}
}

func (s *fieldsSection) Init() tea.Cmd { return nil }

func (s *fieldsSection) Section() Section { return s.section }

func (s *fieldsSection) Title() string { return s.title }

func (s *fieldsSection) Focus() tea.Cmd {
	s.focused = true
	return s.focusCurrent()
}

func (s *fieldsSection) Blur() {
	s.focused = false
	for i := range s.state.Fields {
		s.state.Fields[i].Input.Blur()
	}
}

func (s *fieldsSection) Resize(width int) {
	s.width = width
}

func (s *fieldsSection) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range s.state.Fields {
		f := &s.state.Fields[i]
		if f.Kind != FieldNumber {
			continue
		}
		if i == s.state.Focus && s.focused && s.state.Enabled(i) {
			cmd = f.Input.Focus()
		} else {
			f.Input.Blur()
		}
	}
	return cmd
}

func (s *fieldsSection) moveFocus(delta int) tea.Cmd {
	n := len(s.state.Fields)
	if n == 0 {
		return nil
	}
	s.state.Focus = (s.state.Focus + delta + n) % n
	return s.focusCurrent()
}

func (s *fieldsSection) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.Type {
	case tea.KeyUp:
		return s, s.moveFocus(-1)
	case tea.KeyDown:
		return s, s.moveFocus(1)
	}

	f := s.state.Current()
	if f == nil || !s.state.Enabled(s.state.Focus) {
		return s, nil
	}

	if f.Kind == FieldToggle {
		if key.Type == tea.KeyEnter || key.Type == tea.KeySpace {
			f.On = !f.On
			// Fields that depend on this toggle may have become editable.
			return s, s.focusCurrent()
		}
		return s, nil
	}

	switch key.Type {
	case tea.KeyRunes:
		digits := make([]rune, 0, len(key.Runes))
		for _, r := range key.Runes {
			if unicode.IsDigit(r) {
				digits = append(digits, r)
			}
		}
		if len(digits) == 0 {
			return s, nil
		}
		key = tea.KeyMsg{Type: tea.KeyRunes, Runes: digits}
	case tea.KeySpace, tea.KeyEnter:
		return s, nil
	}

	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(key)
	return s, cmd
}

func (s *fieldsSection) View() string {
	colors := s.theme.Colors()
	focusedStyle := lipgloss.NewStyle().Background(colors.Accent).Foreground(colors.Background)
	onStyle := lipgloss.NewStyle().Foreground(colors.Accent)
	offStyle := lipgloss.NewStyle().Foreground(colors.Error)
	valueStyle := lipgloss.NewStyle().Foreground(colors.Primary)
	muted := lipgloss.NewStyle().Foreground(colors.Muted)
	if s.width > 0 {
		muted = muted.Width(s.width)
	}

	rows := []string{s.theme.PanelTitleStyle().Render(s.title), ""}
	for i := range s.state.Fields {
		f := &s.state.Fields[i]
		current := i == s.state.Focus && s.focused
		enabled := s.state.Enabled(i)

		var line string
		switch f.Kind {
		case FieldToggle:
			text := "[ ] " + f.Label
			style := offStyle
			if f.On {
				text = "[" + s.theme.Icon("check") + "] " + f.Label
				style = onStyle
			}
			if current {
				style = focusedStyle
			}
			line = style.Render(text)
		case FieldNumber:
			label := f.Label + ": "
			switch {
			case !enabled:
				line = muted.UnsetWidth().Render(label + f.Input.Value() + " (disabled)")
			case current:
				line = label + focusedStyle.Render(f.Input.View())
			default:
				line = label + valueStyle.Render(f.Input.Value())
			}
		}
		rows = append(rows, line)
	}

	if f := s.state.Current(); f != nil && s.focused {
		rows = append(rows, "", muted.Render(f.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
