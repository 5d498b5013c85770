package config

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/config"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model orchestrates the configuration UI.
type Model struct {
	config   *config.Config
	original *config.Config
	path     string

	state       ConfigState
	theme       theme.Theme
	sections    []sectionModel
	activeIndex int

	width, height int

	saveStatus string
	err        error
}

// Option configures the configuration TUI model.
type Option func(*Model)

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithPath saves to path instead of the default config file.
func WithPath(path string) Option {
	return func(m *Model) {
		m.path = path
	}
}

// New creates a configuration UI editing a copy of cfg.
func New(cfg *config.Config, opts ...Option) *Model {
	current := *cfg
	original := *cfg
	m := &Model{
		config:   &current,
		original: &original,
	}

	initOpts := append([]Option{WithTheme(theme.Default())}, opts...)
	for _, opt := range initOpts {
		opt(m)
	}

	m.state = buildStateFromConfig(m.config, m.theme)
	m.initSections()
	return m
}

func (m *Model) initSections() {
	m.sections = []sectionModel{
		newFieldsSection(SectionStrip, "Tab Strip", &m.state.Strip, m.theme),
		newFieldsSection(SectionRepeat, "Scrolling", &m.state.Repeat, m.theme),
		newFieldsSection(SectionLogging, "Logging", &m.state.Logging, m.theme),
	}
	m.activeIndex = 0
}

// Config returns the configuration as edited so far.
func (m *Model) Config() *config.Config {
	cfg := *m.config
	applyState(&m.state, &cfg)
	return &cfg
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.sections[m.activeIndex].Focus()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.save()
		case tea.KeyCtrlR:
			return m, m.reset()
		case tea.KeyTab:
			return m, m.setActiveSection((m.activeIndex + 1) % len(m.sections))
		case tea.KeyShiftTab:
			return m, m.setActiveSection((m.activeIndex - 1 + len(m.sections)) % len(m.sections))
		}
	}

	_, cmd := m.sections[m.activeIndex].Update(msg)
	return m, cmd
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	_, rightWidth := m.panelWidths()
	for _, sec := range m.sections {
		sec.Resize(max(rightWidth-4, 0))
	}
}

func (m *Model) panelWidths() (int, int) {
	left := m.width / 2
	return left, max(m.width-left, 0)
}

func (m *Model) setActiveSection(idx int) tea.Cmd {
	if idx == m.activeIndex {
		return nil
	}
	m.sections[m.activeIndex].Blur()
	m.activeIndex = idx
	return m.sections[m.activeIndex].Focus()
}

func (m *Model) activeSection() Section {
	return m.sections[m.activeIndex].Section()
}

// View renders the UI.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize to at least 30x10."
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Colors().Primary).
		Padding(1, 0).
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.theme.Icon("config") + " Scroll Tabs Configuration")

	leftWidth, rightWidth := m.panelWidths()
	panelHeight := max(m.height-8, 0)

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPreviewPanel(leftWidth, panelHeight),
		m.renderSectionPanel(rightWidth, panelHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, m.renderTabs(), panels, m.renderStatusBar())
}

func (m *Model) renderTabs() string {
	base := lipgloss.NewStyle().Padding(0, 2)
	active := base.Bold(true).Foreground(m.theme.Colors().Primary)

	rendered := make([]string, len(m.sections))
	for i, sec := range m.sections {
		style := base
		label := sec.Title()
		if i == m.activeIndex {
			style = active
			label = "[ " + label + " ]"
		}
		rendered[i] = style.Render(label)
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	return lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(joined)
}

func (m *Model) renderPreviewPanel(width, height int) string {
	panel := m.theme.PanelStyle()
	inner := max(width-panel.GetHorizontalFrameSize(), 0)
	panel = panel.Width(inner).Height(max(height-panel.GetVerticalFrameSize(), 0))

	cfg := m.Config()
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Colors().Muted)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Colors().Primary)

	lines := []string{m.theme.PanelTitleStyle().Render("Live Preview:"), ""}
	lines = append(lines, renderStrip(cfg, inner-2*m.theme.Spacing().PanelPadding), "")
	for _, p := range buildPreviews(m.activeSection(), cfg) {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render(p.label+":"), valueStyle.Render(p.value)))
	}
	return panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderSectionPanel(width, height int) string {
	panel := m.theme.PanelStyle()
	panel = panel.
		Width(max(width-panel.GetHorizontalFrameSize(), 0)).
		Height(max(height-panel.GetVerticalFrameSize(), 0))
	return panel.Render(m.sections[m.activeIndex].View())
}

func (m *Model) renderStatusBar() string {
	key := lipgloss.NewStyle().Foreground(m.theme.Colors().Accent).Bold(true)
	help := lipgloss.NewStyle().Foreground(m.theme.Colors().Muted)
	success := m.theme.StatusBarStyle()
	failure := lipgloss.NewStyle().Foreground(m.theme.Colors().Error).Bold(true)

	parts := []string{
		key.Render("Tab") + ": Switch",
		key.Render("↑↓") + ": Move",
		key.Render("Space") + ": Toggle",
		key.Render("Ctrl+S") + ": Save",
		key.Render("Ctrl+R") + ": Reset",
		key.Render("Esc/Ctrl+C") + ": Quit",
	}

	line := help.Render(strings.Join(parts, " │ "))
	if m.saveStatus != "" {
		if m.err != nil {
			line += " │ " + failure.Render(m.saveStatus)
		} else {
			line += " │ " + success.Render(m.saveStatus)
		}
	}
	return line
}

func (m *Model) save() tea.Cmd {
	cfg := m.Config()

	var err error
	if m.path != "" {
		err = cfg.SaveTo(m.path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		m.err = err
		m.saveStatus = "Failed to save: " + err.Error()
		return nil
	}

	m.config = cfg
	saved := *cfg
	m.original = &saved
	m.err = nil
	m.saveStatus = "Configuration saved!"
	// Show the values as normalised on save.
	return m.rebuild()
}

func (m *Model) reset() tea.Cmd {
	current := *m.original
	m.config = &current
	m.saveStatus = "Reset to saved values"
	m.err = nil
	return m.rebuild()
}

// rebuild reloads every field from m.config, keeping the active section and
// the focused field of each section.
func (m *Model) rebuild() tea.Cmd {
	fresh := buildStateFromConfig(m.config, m.theme)
	fresh.Strip.Focus = m.state.Strip.Focus
	fresh.Repeat.Focus = m.state.Repeat.Focus
	fresh.Logging.Focus = m.state.Logging.Focus
	m.state = fresh

	active := m.activeIndex
	m.initSections()
	m.activeIndex = active
	_, rightWidth := m.panelWidths()
	for _, sec := range m.sections {
		sec.Resize(max(rightWidth-4, 0))
	}
	return m.sections[m.activeIndex].Focus()
}
