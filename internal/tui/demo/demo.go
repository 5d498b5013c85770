package demo

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/log"
	"github.com/Digital-Shane/scroll-tabs/internal/tabs"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/components"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Labels of the tabs every demo starts with.
const (
	TestTabLabel        = "Test Tab 1"
	InteractionTabLabel = "Interaction Test"
	ColorTabLabel       = "Color Change Tab"
	IndexTabLabel       = "Tab Index"
)

// alertColor replaces the selection color while the light button is on.
const alertColor = lipgloss.Color("#d7263d")

// Model is the demo host: a header, the tab container and a status bar.
type Model struct {
	tabs   *tabs.Model
	index  *IndexPane
	keys   KeyMap
	help   help.Model
	prompt textinput.Model

	theme     theme.Theme
	tabOpts   tabs.Options
	extraTabs int
	bottom    bool

	width     int
	height    int
	prompting bool
	status    string
}

// Option configures a Model during construction.
type Option func(*Model)

// WithTheme overrides the theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithTabOptions configures the tab container.
func WithTabOptions(o tabs.Options) Option {
	return func(m *Model) {
		m.tabOpts = o
	}
}

// WithExtraTabs appends n filler tabs after the standard ones.
func WithExtraTabs(n int) Option {
	return func(m *Model) {
		m.extraTabs = max(n, 0)
	}
}

// WithBottomStrip places the tab strip below the panes.
func WithBottomStrip(on bool) Option {
	return func(m *Model) {
		m.bottom = on
	}
}

// WithSize sets the initial terminal size.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width, m.height = w, h
	}
}

// New builds the demo with its standard panes.
func New(opts ...Option) *Model {
	m := &Model{
		width:   80,
		height:  24,
		keys:    DefaultKeyMap(),
		tabOpts: tabs.DefaultOptions(),
	}

	initOpts := append([]Option{WithTheme(theme.Default())}, opts...)
	for _, opt := range initOpts {
		opt(m)
	}

	m.help = help.New()
	m.prompt = textinput.New()
	m.prompt.Placeholder = "tab label"
	m.prompt.Prompt = "New tab: "
	m.prompt.CharLimit = 64

	m.tabs = tabs.New(
		tabs.WithOptions(m.tabOpts),
		tabs.WithTheme(m.theme),
		tabs.WithBounds(m.containerRect()),
	)
	m.addStandardPanes()
	m.refreshIndex()
	return m
}

// Tabs exposes the tab container.
func (m *Model) Tabs() *tabs.Model { return m.tabs }

// Index exposes the tab index pane.
func (m *Model) Index() *IndexPane { return m.index }

// Status is the message currently shown in the status bar.
func (m *Model) Status() string { return m.status }

// containerRect is the area between the header and the status bar.
func (m *Model) containerRect() tabs.Rect {
	return tabs.Rect{X: 0, Y: 1, W: m.width, H: max(m.height-2, 0)}
}

// paneRect is the area a new pane occupies inside the container, leaving
// the strip rows free at the top or bottom.
func (m *Model) paneRect() tabs.Rect {
	c := m.tabs.Bounds()
	rows := max(m.tabOpts.MinTabHeight, 1)
	r := tabs.Rect{X: c.X, Y: c.Y + rows, W: c.W, H: max(c.H-rows, 0)}
	if m.bottom {
		r.Y = c.Y
	}
	return r
}

func (m *Model) addStandardPanes() {
	r := m.paneRect()
	m.tabs.Add(NewColorPane(TestTabLabel, r, lipgloss.Color("#1f4fbf"), m.theme))
	m.tabs.Add(NewButtonPane(InteractionTabLabel, r, "Press", m.theme, m.keys.Activate))
	m.tabs.Add(NewLightButtonPane(ColorTabLabel, r, "Selection Color", m.theme, m.keys.Activate))
	for i := 4; i < 6+m.extraTabs; i++ {
		m.tabs.Add(m.fillerPane(fmt.Sprintf("Filler Tab %d", i), r))
	}
	m.index = NewIndexPane(IndexTabLabel, r, m.theme, m.keys)
	m.tabs.Add(m.index)
}

func (m *Model) fillerPane(label string, r tabs.Rect) *TextPane {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", m.theme.Icon("tab"), label)
	b.WriteString("Nothing to see here. Add tabs until the strip overflows,\n")
	b.WriteString("then hold a scroll button to page through them.\n")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "\n%s line %d", label, i)
	}
	return NewTextPane(label, r, b.String(), m.theme)
}

func (m *Model) refreshIndex() {
	sel := m.tabs.Value()
	entries := make([]components.IndexEntry, 0, m.tabs.Len())
	for i, c := range m.tabs.Children() {
		entries = append(entries, components.IndexEntry{
			Label:    c.Label(),
			Index:    i,
			Selected: c == sel,
			Closable: m.tabs.CloseButtons(),
		})
	}
	m.index.Refresh(entries)
}

// setTheme restyles the container and every pane.
func (m *Model) setTheme(th theme.Theme) {
	m.tabs.SetTheme(th)
	for _, c := range m.tabs.Children() {
		if t, ok := c.(interface{ SetTheme(theme.Theme) }); ok {
			t.SetTheme(th)
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.tabs.SetBounds(m.containerRect())
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m, m.updatePrompt(msg)
		}
		if m.index.Finding() && m.tabs.Value() == tabs.Pane(m.index) {
			_, cmd := m.tabs.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.tabs.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NewTab):
			m.prompting = true
			m.prompt.SetValue("")
			return m, m.prompt.Focus()
		case key.Matches(msg, m.keys.ToggleClose):
			m.tabs.SetCloseButtons(!m.tabs.CloseButtons())
			m.refreshIndex()
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			return m, nil
		}

	case tabs.TabSelectedMsg:
		label := msg.Pane.Label()
		log.LogSelect(msg.Index, label)
		m.status = fmt.Sprintf("%s Selected %q", m.theme.Icon("selected"), label)
		m.refreshIndex()
		return m, nil

	case tabs.TabClosedMsg:
		label := msg.Pane.Label()
		log.LogClose(msg.Index, label)
		m.status = fmt.Sprintf("%s Closed %q", m.theme.Icon("closed"), label)
		m.refreshIndex()
		return m, nil

	case tabs.TabScrolledMsg:
		log.LogScroll(msg.Offset, msg.Right)
		m.status = fmt.Sprintf("%s Scrolled to offset %d", m.theme.Icon("scroll"), msg.Offset)
		return m, nil

	case ButtonPressedMsg:
		m.status = fmt.Sprintf("Button pressed. (%d)", msg.Presses)
		return m, nil

	case SelectionColorMsg:
		th := m.theme
		if msg.On {
			th = theme.New(append(m.themeOptions(), theme.WithSelectionColor(alertColor))...)
		}
		m.setTheme(th)
		return m, nil

	case IndexSelectMsg:
		if i := m.tabs.SelectIndex(msg.Index); i < m.tabs.Len() {
			m.tabs.BringIntoView(i)
			label := m.tabs.Child(i).Label()
			log.LogSelect(i, label)
			m.status = fmt.Sprintf("%s Selected %q", m.theme.Icon("selected"), label)
			m.refreshIndex()
		}
		return m, nil
	}

	_, cmd := m.tabs.Update(msg)
	return m, cmd
}

// themeOptions rebuilds the options of the base theme so a variant can be
// derived from it.
func (m *Model) themeOptions() []theme.Option {
	return []theme.Option{
		theme.WithColors(m.theme.Colors()),
		theme.WithBorders(m.theme.Borders()),
		theme.WithSpacing(m.theme.Spacing()),
		theme.WithIconSet(m.theme.IconSet()),
	}
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		label := strings.TrimSpace(m.prompt.Value())
		m.prompting = false
		m.prompt.Blur()
		if label == "" {
			return nil
		}
		m.AddTab(label)
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.prompt.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// AddTab appends a filler tab, selects it and scrolls it into view.
func (m *Model) AddTab(label string) {
	p := m.fillerPane(label, m.paneRect())
	m.tabs.Add(p)
	i := m.tabs.Select(p)
	m.tabs.BringIntoView(i)
	m.status = fmt.Sprintf("%s Added %q", m.theme.Icon("tab"), label)
	m.refreshIndex()
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	if body := m.tabs.View(); body != "" {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("%s Scroll Tabs Demo - %d tabs", m.theme.Icon("demo"), m.tabs.Len())
	if m.tabs.CanScrollLeft() || m.tabs.CanScrollRight() {
		title += fmt.Sprintf(" (offset %d)", m.tabs.Offset())
	}
	return m.theme.HeaderStyle().Width(m.width).MaxHeight(1).Render(title)
}

func (m *Model) renderStatusBar() string {
	style := m.theme.StatusBarStyle().Width(m.width).MaxHeight(1)
	if m.prompting {
		return style.Render(m.prompt.View())
	}
	if m.help.ShowAll {
		var all []key.Binding
		for _, group := range m.keys.FullHelp() {
			all = append(all, group...)
		}
		return style.Render(m.help.ShortHelpView(all))
	}
	if m.status == "" {
		return style.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return style.Render(m.status + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
}
