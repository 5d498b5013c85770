package demo

import (
	"context"
	"fmt"

	"github.com/Digital-Shane/scroll-tabs/internal/tabs"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/components"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// IndexSelectMsg asks the host to select the tab at Index.
type IndexSelectMsg struct {
	Index int
}

// IndexPane lists the container's tabs as a tree. Enter on an entry selects
// that tab; "/" starts a fuzzy search over the labels.
type IndexPane struct {
	pane
	keys    KeyMap
	entries []components.IndexEntry
	tree    *treeview.TuiTreeModel[components.IndexEntry]

	finding bool
	query   string
}

// NewIndexPane returns an empty index pane.
func NewIndexPane(label string, bounds tabs.Rect, th theme.Theme, keys KeyMap) *IndexPane {
	p := &IndexPane{
		pane: pane{label: label, bounds: bounds, theme: th},
		keys: keys,
	}
	p.rebuild()
	return p
}

// Entries returns the entries the index currently shows.
func (p *IndexPane) Entries() []components.IndexEntry { return p.entries }

// Finding reports whether keys are going to the search query.
func (p *IndexPane) Finding() bool { return p.finding }

// Query returns the current search query.
func (p *IndexPane) Query() string { return p.query }

// Refresh replaces the listed entries and focuses the selected one.
func (p *IndexPane) Refresh(entries []components.IndexEntry) {
	p.entries = entries
	p.rebuild()
}

func (p *IndexPane) SetBounds(r tabs.Rect) {
	p.bounds = r
	p.rebuild()
}

func (p *IndexPane) SetTheme(th theme.Theme) {
	p.theme = th
	p.rebuild()
}

// Blur also abandons a search in progress.
func (p *IndexPane) Blur() {
	p.pane.Blur()
	p.stopFinding()
}

func entryID(i int) string {
	return fmt.Sprintf("tab-%d", i)
}

func (p *IndexPane) rebuild() {
	nodes := make([]*treeview.Node[components.IndexEntry], len(p.entries))
	focus := ""
	for i, e := range p.entries {
		nodes[i] = treeview.NewNode(entryID(i), e.Label, e)
		if e.Selected {
			focus = entryID(i)
		}
	}
	tree := treeview.NewTree(nodes, treeview.WithProvider(components.CreateIndexProvider(p.theme)))
	if focus != "" {
		_, _ = tree.SetFocusedID(context.Background(), focus)
	}

	keyMap := treeview.DefaultKeyMap()
	keyMap.SearchStart = []string{}
	keyMap.Reset = []string{}

	p.tree = treeview.NewTuiTreeModel(tree,
		treeview.WithTuiWidth[components.IndexEntry](max(p.bounds.W, 1)),
		treeview.WithTuiHeight[components.IndexEntry](max(p.bounds.H-1, 1)),
		treeview.WithTuiAllowResize[components.IndexEntry](true),
		treeview.WithTuiDisableNavBar[components.IndexEntry](true),
		treeview.WithTuiKeyMap[components.IndexEntry](keyMap),
	)
}

// Current returns the focused entry, or nil when the index is empty.
func (p *IndexPane) Current() *components.IndexEntry {
	node := p.tree.Tree.GetFocusedNode()
	if node == nil {
		return nil
	}
	return node.Data()
}

func (p *IndexPane) selectCurrent() tea.Cmd {
	if e := p.Current(); e != nil {
		return components.Emit(IndexSelectMsg{Index: e.Index})
	}
	return nil
}

func (p *IndexPane) stopFinding() {
	p.finding = false
	p.query = ""
}

// find focuses the best fuzzy match for the query. Focus stays put while
// nothing matches.
func (p *IndexPane) find() {
	if p.query == "" {
		return
	}
	labels := make([]string, len(p.entries))
	for i, e := range p.entries {
		labels[i] = e.Label
	}
	matches := fuzzy.Find(p.query, labels)
	if len(matches) == 0 {
		return
	}
	_, _ = p.tree.Tree.SetFocusedID(context.Background(), entryID(matches[0].Index))
}

func (p *IndexPane) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.finding {
		switch {
		case key.Matches(km, p.keys.Cancel):
			p.stopFinding()
		case key.Matches(km, p.keys.Confirm):
			p.stopFinding()
			return p.selectCurrent()
		case km.Type == tea.KeyBackspace:
			if r := []rune(p.query); len(r) > 0 {
				p.query = string(r[:len(r)-1])
			}
			p.find()
		case km.Type == tea.KeySpace:
			p.query += " "
			p.find()
		case km.Type == tea.KeyRunes:
			p.query += string(km.Runes)
			p.find()
		}
		return nil
	}

	switch {
	case key.Matches(km, p.keys.Find):
		p.finding = true
		p.query = ""
		return nil
	case key.Matches(km, p.keys.Activate):
		return p.selectCurrent()
	}

	updated, cmd := p.tree.Update(msg)
	if tm, ok := updated.(*treeview.TuiTreeModel[components.IndexEntry]); ok {
		p.tree = tm
	}
	return cmd
}

func (p *IndexPane) View() string {
	muted := lipgloss.NewStyle().Foreground(p.theme.Colors().Muted).Italic(true)
	if len(p.entries) == 0 {
		return muted.Render("No tabs.")
	}
	line := muted.Render("/ to find a tab, enter to select")
	if p.finding {
		line = lipgloss.NewStyle().Foreground(p.theme.Colors().Accent).Render("Find: " + p.query + "▏")
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, p.tree.View())
}
