package tabs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/charmbracelet/x/ansi"
)

// newRenderModel builds a 40x6 container with a one row strip, ASCII
// glyphs and terminal cell metrics.
func newRenderModel(t *testing.T, labels []string, contentY int, opts ...Option) (*Model, []*BasicPane) {
	t.Helper()
	base := []Option{
		WithBounds(Rect{W: 40, H: 6}),
		WithTheme(theme.New(theme.WithASCII())),
	}
	m := New(append(base, opts...)...)
	panes := make([]*BasicPane, len(labels))
	for i, label := range labels {
		panes[i] = NewPane(label, Rect{Y: contentY, W: 40, H: 5})
		panes[i].Content = "content of " + label
		m.Add(panes[i])
	}
	return m, panes
}

func viewLines(t *testing.T, m *Model) []string {
	t.Helper()
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != m.Bounds().W {
			t.Errorf("line %d width = %d, want %d: %q", i, w, m.Bounds().W, line)
		}
	}
	if len(lines) != m.Bounds().H {
		t.Errorf("view has %d lines, want %d", len(lines), m.Bounds().H)
	}
	return lines
}

func TestViewDrawsStripAndContent(t *testing.T) {
	m, _ := newRenderModel(t, []string{"One", "Two", "Three"}, 1)

	lines := viewLines(t, m)
	strip := lines[0]
	for _, want := range []string{"One", "Two", "Three", "x"} {
		if !strings.Contains(strip, want) {
			t.Errorf("strip %q missing %q", strip, want)
		}
	}
	if !strings.HasPrefix(strip, "<") || !strings.HasSuffix(strip, ">") {
		t.Errorf("strip %q missing scroll buttons", strip)
	}
	if !strings.Contains(lines[1], "content of One") {
		t.Errorf("content line = %q, want selected pane content", lines[1])
	}
}

func TestViewFollowsSelection(t *testing.T) {
	m, panes := newRenderModel(t, []string{"One", "Two"}, 1)

	m.Select(panes[1])
	lines := viewLines(t, m)
	if !strings.Contains(lines[1], "content of Two") {
		t.Errorf("content line = %q, want content of Two", lines[1])
	}
}

func TestViewTruncatesLabels(t *testing.T) {
	m, _ := newRenderModel(t, []string{"Interaction Test"}, 1, WithTabWidthBounds(0, 8))

	strip := viewLines(t, m)[0]
	if !strings.Contains(strip, "In...") {
		t.Errorf("strip %q, want truncated label In...", strip)
	}
	if strings.Contains(strip, "Interaction") {
		t.Errorf("strip %q still holds the full label", strip)
	}
}

func TestViewScrollsStrip(t *testing.T) {
	labels := make([]string, 10)
	for i := range labels {
		labels[i] = fmt.Sprintf("Tab %d", i)
	}
	m, _ := newRenderModel(t, labels, 1)

	strip := viewLines(t, m)[0]
	if !strings.Contains(strip, "Tab 0") || strings.Contains(strip, "Tab 9") {
		t.Errorf("strip at offset 0 = %q", strip)
	}

	m.BringIntoView(9)
	strip = viewLines(t, m)[0]
	if !strings.Contains(strip, "Tab 9") || strings.Contains(strip, "Tab 0") {
		t.Errorf("strip after BringIntoView(9) = %q", strip)
	}
}

func TestViewBottomStrip(t *testing.T) {
	m, _ := newRenderModel(t, []string{"One", "Two"}, 0)

	if !m.Bottom() {
		t.Fatal("Bottom() = false, want true")
	}
	lines := viewLines(t, m)
	if !strings.Contains(lines[len(lines)-1], "One") {
		t.Errorf("last line = %q, want the strip", lines[len(lines)-1])
	}
	if !strings.Contains(lines[0], "content of One") {
		t.Errorf("first line = %q, want content", lines[0])
	}
}

func TestViewEmptyContainer(t *testing.T) {
	m, _ := newRenderModel(t, nil, 1)

	for i, line := range viewLines(t, m) {
		if strings.TrimSpace(line) != "" {
			t.Errorf("line %d = %q, want background only", i, line)
		}
	}

	m.SetBounds(Rect{})
	if got := m.View(); got != "" {
		t.Errorf("View() with zero bounds = %q, want empty", got)
	}
}

func TestViewNarrowerThanButtons(t *testing.T) {
	m, _ := newRenderModel(t, []string{"One"}, 1)
	m.SetSize(1, 6)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if w := ansi.StringWidth(lines[0]); w > 1 {
		t.Errorf("strip width = %d, want at most 1", w)
	}
}
