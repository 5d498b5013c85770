package components

import (
	"fmt"

	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/lipgloss"
)

// IndexEntry is the payload of one node in the tab index tree.
type IndexEntry struct {
	Label    string
	Index    int
	Selected bool
	Closable bool
}

// entryRule adapts an entry predicate to a node predicate. Nodes without a
// payload never match.
func entryRule(cond func(*IndexEntry) bool) func(*treeview.Node[IndexEntry]) bool {
	return func(n *treeview.Node[IndexEntry]) bool {
		if e := n.Data(); e != nil {
			return cond(e)
		}
		return false
	}
}

func isSelected() func(*treeview.Node[IndexEntry]) bool {
	return entryRule(func(e *IndexEntry) bool { return e.Selected })
}

func isClosable() func(*treeview.Node[IndexEntry]) bool {
	return entryRule(func(e *IndexEntry) bool { return e.Closable })
}

// CreateIndexProvider constructs the node provider for the tab index pane:
// the selected tab gets the selection glyph and color, every other tab the
// plain tab glyph.
func CreateIndexProvider(th theme.Theme) *treeview.DefaultNodeProvider[IndexEntry] {
	colors := th.Colors()

	selectedIconRule := treeview.WithIconRule(isSelected(), th.Icon("selected"))
	defaultIconRule := treeview.WithDefaultIcon[IndexEntry](th.Icon("tab"))

	selectedStyleRule := treeview.WithStyleRule(
		isSelected(),
		lipgloss.NewStyle().Foreground(colors.Selection).Bold(true),
		lipgloss.NewStyle().Foreground(colors.Background).Bold(true).Background(colors.Selection),
	)
	closableStyleRule := treeview.WithStyleRule(
		isClosable(),
		lipgloss.NewStyle().Foreground(colors.Primary),
		lipgloss.NewStyle().Foreground(colors.Background).Background(colors.Primary),
	)
	defaultStyleRule := treeview.WithStyleRule(
		func(*treeview.Node[IndexEntry]) bool { return true },
		lipgloss.NewStyle().Foreground(colors.Muted),
		lipgloss.NewStyle().Foreground(colors.Background).Background(colors.Muted),
	)

	return treeview.NewDefaultNodeProvider(
		selectedIconRule, defaultIconRule,
		selectedStyleRule, closableStyleRule, defaultStyleRule,
		treeview.WithFormatter(IndexFormatter),
	)
}

// IndexFormatter labels a node as "<position>. <label>", marking closable
// tabs with a trailing "(x)".
func IndexFormatter(node *treeview.Node[IndexEntry]) (string, bool) {
	e := node.Data()
	if e == nil {
		return node.Name(), true
	}
	label := fmt.Sprintf("%d. %s", e.Index+1, e.Label)
	if e.Closable {
		label += " (x)"
	}
	return label, true
}
