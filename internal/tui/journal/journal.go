package journal

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/log"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/components"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model browses recorded demo sessions: a session list on the left and the
// focused session's operations on the right.
type Model struct {
	*treeview.TuiTreeModel[log.SessionSummary]
	width      int
	height     int
	splitRatio float64
	theme      theme.Theme

	detailsViewport *viewport.Model
	detailsFocused  bool
}

// Option configures a Model during construction.
type Option func(*Model)

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// NewTree builds the session list from summaries, newest first.
func NewTree(summaries []log.SessionSummary) *treeview.Tree[log.SessionSummary] {
	nodes := make([]*treeview.Node[log.SessionSummary], 0, len(summaries))
	for _, summary := range summaries {
		meta := summary.Session.Metadata
		command := "?"
		if len(meta.CommandArgs) > 0 {
			command = meta.CommandArgs[0]
		}
		name := fmt.Sprintf("%s %s - %s (%d ops)", summary.Icon, command, summary.RelativeTime, meta.TotalOps)
		nodes = append(nodes, treeview.NewNode(meta.SessionID, name, summary))
	}
	return treeview.NewTree(nodes)
}

func (m *Model) colors() theme.Colors {
	return m.theme.Colors()
}

func (m *Model) sizedPanel(width, height int, borderColor lipgloss.Color) lipgloss.Style {
	style := m.theme.PanelStyle()
	if borderColor != "" {
		style = style.BorderForeground(borderColor)
	}
	if width > 0 {
		style = style.Width(max(width-style.GetHorizontalFrameSize(), 0))
	}
	if height > 0 {
		style = style.Height(max(height-style.GetVerticalFrameSize(), 0))
	}
	return style.Padding(0, 1)
}

// New creates the session browser for tree.
func New(tree *treeview.Tree[log.SessionSummary], opts ...Option) *Model {
	m := &Model{
		width:      80,
		height:     24,
		splitRatio: 0.5,
	}

	initOpts := append([]Option{WithTheme(theme.Default())}, opts...)
	for _, opt := range initOpts {
		opt(m)
	}

	keyMap := treeview.DefaultKeyMap()
	keyMap.SearchStart = []string{}
	keyMap.Reset = []string{}

	treeWidth := m.treeWidth()
	m.TuiTreeModel = treeview.NewTuiTreeModel(tree,
		treeview.WithTuiWidth[log.SessionSummary](treeWidth),
		treeview.WithTuiHeight[log.SessionSummary](m.height-4),
		treeview.WithTuiAllowResize[log.SessionSummary](true),
		treeview.WithTuiDisableNavBar[log.SessionSummary](true),
		treeview.WithTuiKeyMap[log.SessionSummary](keyMap),
	)

	m.detailsViewport = components.NewViewport(m.width-treeWidth-6, m.height-8, m.theme)
	return m
}

func (m *Model) treeWidth() int {
	return int(float64(m.width)*m.splitRatio) - 2
}

// DetailsFocused reports whether scrolling keys go to the details panel.
func (m *Model) DetailsFocused() bool { return m.detailsFocused }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		treeWidth := m.treeWidth()
		treeModel, cmd := m.TuiTreeModel.Update(tea.WindowSizeMsg{Width: treeWidth, Height: m.height - 4})
		m.TuiTreeModel = treeModel.(*treeview.TuiTreeModel[log.SessionSummary])

		components.ResizeViewport(m.detailsViewport, m.width-treeWidth-6, m.height-8)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.detailsFocused = !m.detailsFocused
			return m, nil
		case "up":
			if m.detailsFocused {
				m.detailsViewport.ScrollUp(1)
				return m, nil
			}
		case "down":
			if m.detailsFocused {
				m.detailsViewport.ScrollDown(1)
				return m, nil
			}
		case "pgup":
			if m.detailsFocused {
				m.detailsViewport.HalfPageUp()
				return m, nil
			}
		case "pgdown":
			if m.detailsFocused {
				m.detailsViewport.HalfPageDown()
				return m, nil
			}
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.detailsFocused {
				m.detailsViewport.ScrollUp(1)
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.detailsFocused {
				m.detailsViewport.ScrollDown(1)
			}
			return m, nil
		}
	}

	if !m.detailsFocused {
		treeModel, cmd := m.TuiTreeModel.Update(msg)
		m.TuiTreeModel = treeModel.(*treeview.TuiTreeModel[log.SessionSummary])
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	header := m.theme.HeaderStyle().Width(m.width).
		Render(fmt.Sprintf("%s Scroll Tabs Journal", m.theme.Icon("journal")))
	b.WriteString(header)
	b.WriteByte('\n')

	leftWidth := int(float64(m.width) * m.splitRatio)
	rightWidth := m.width - leftWidth
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSessionList(leftWidth, m.height-3),
		m.renderSessionDetails(rightWidth, m.height-3),
	)
	b.WriteString(content)
	b.WriteByte('\n')

	focusInfo := "Tab: Details Focus | "
	if m.detailsFocused {
		focusInfo = "Tab: List Focus | "
	}
	b.WriteString(lipgloss.NewStyle().
		Italic(true).
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(m.colors().Muted).
		Render(focusInfo + "↑↓ Navigate | PgUp/PgDn: Page | q/Esc: Quit"))

	return b.String()
}

func (m *Model) renderSessionList(width, height int) string {
	colors := m.colors()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Primary).
		Width(max(width-4, 0)).
		Align(lipgloss.Center).
		Render("Sessions")

	return m.sizedPanel(width, height, colors.Primary).Render(title + "\n" + m.TuiTreeModel.View())
}

func (m *Model) renderSessionDetails(width, height int) string {
	if node := m.TuiTreeModel.Tree.GetFocusedNode(); node != nil {
		m.detailsViewport.SetContent(m.formatSessionDetails(*node.Data()))
	} else {
		m.detailsViewport.SetContent(lipgloss.NewStyle().
			Italic(true).
			Foreground(m.colors().Muted).
			Render("Select a session to view details"))
	}

	colors := m.colors()
	indicator := ""
	if m.detailsViewport.TotalLineCount() > m.detailsViewport.Height {
		indicator = " [Tab to scroll]"
		if m.detailsFocused {
			indicator = " [Use Tab+↑↓]"
		}
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Secondary).
		Width(max(width-4, 0)).
		Align(lipgloss.Center).
		Render("Session Details" + indicator)

	return m.sizedPanel(width, height, colors.Secondary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.detailsViewport.View()))
}

// formatSessionDetails renders the metadata and every operation of a session.
func (m *Model) formatSessionDetails(summary log.SessionSummary) string {
	var b strings.Builder
	session := summary.Session
	meta := session.Metadata
	colors := m.colors()

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(colors.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(colors.Primary)
	indent := lipgloss.NewStyle().MarginLeft(2)

	b.WriteString(labelStyle.Render("Command: "))
	b.WriteString(valueStyle.Render(strings.Join(meta.CommandArgs, " ")))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Time: "))
	b.WriteString(valueStyle.Render(summary.RelativeTime))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Date: "))
	b.WriteString(valueStyle.Render(meta.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Operations:"))
	b.WriteString("\n")
	stats := fmt.Sprintf("Total: %d\nSelected: %d\nClosed: %d\nScrolled: %d",
		meta.TotalOps, meta.SelectOps, meta.CloseOps, meta.ScrollOps)
	b.WriteString(indent.Render(valueStyle.Render(stats)))
	b.WriteString("\n\n")

	if len(session.Operations) > 0 {
		b.WriteString(labelStyle.Render("History:"))
		b.WriteString("\n")
		for _, op := range session.Operations {
			b.WriteString(indent.Render(fmt.Sprintf("%s %s", m.operationIcon(op), op.Describe())))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Session ID: "))
	b.WriteString(lipgloss.NewStyle().
		Foreground(colors.Muted).
		Italic(true).
		Render(meta.SessionID))

	return b.String()
}

func (m *Model) operationIcon(op log.OperationLog) string {
	switch op.Type {
	case log.OpSelect:
		return m.theme.Icon("selected")
	case log.OpClose:
		return m.theme.Icon("closed")
	case log.OpScroll:
		return m.theme.Icon("scroll")
	default:
		return m.theme.Icon("tab")
	}
}
