package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model. The strip is drawn at full width and cut to the
// visible window; the selected pane fills the remaining rows.
func (m *Model) View() string {
	m.ensureLayout()
	w, h := m.bounds.W, m.bounds.H
	if w <= 0 || h <= 0 {
		return ""
	}
	if len(m.children) == 0 {
		return m.theme.StripStyle().Width(w).Height(h).Render("")
	}

	sh := min(m.strip.Height, h)
	strip := m.renderStrip(w, sh)
	if sh == h {
		return strip
	}
	content := m.renderContent(w, h-sh)
	if m.strip.Bottom {
		return lipgloss.JoinVertical(lipgloss.Left, content, strip)
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, content)
}

func (m *Model) renderContent(w, h int) string {
	var body string
	if v, ok := m.current().(Viewer); ok {
		body = v.View()
	}
	return lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxWidth(w).
		MaxHeight(h).
		Render(body)
}

func (m *Model) renderStrip(w, sh int) string {
	if sh <= 0 {
		return ""
	}
	bw := m.strip.ButtonWidth
	left := m.renderButton(m.theme.Icon("left"), m.state == PressedLeftButton, m.CanScrollLeft(), bw, sh)
	right := m.renderButton(m.theme.Icon("right"), m.state == PressedRightButton, m.CanScrollRight(), bw, sh)

	visible := w - 2*bw
	if visible <= 0 {
		// Buttons overlap; show as much of them as fits.
		rows := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, left, right), "\n")
		for i, row := range rows {
			rows[i] = ansi.Truncate(row, w, "")
		}
		return strings.Join(rows, "\n")
	}

	bg := m.theme.StripStyle()
	labelRow := sh / 2
	lines := make([]string, sh)
	for r := range lines {
		seg := ansi.Cut(m.tabRow(r == labelRow), m.offset, m.offset+visible)
		if gap := visible - ansi.StringWidth(seg); gap > 0 {
			seg += bg.Render(strings.Repeat(" ", gap))
		}
		lines[r] = seg
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Join(lines, "\n"), right)
}

func (m *Model) renderButton(glyph string, pressed, active bool, bw, sh int) string {
	if bw <= 0 {
		return ""
	}
	return m.theme.ButtonStyle(pressed).
		Foreground(m.theme.ArrowColor(active)).
		Width(bw).
		MaxWidth(bw).
		Height(sh).
		AlignVertical(lipgloss.Center).
		Render(glyph)
}

// tabRow renders one line of the whole strip. Only the label line carries
// text; the other lines paint the tab backgrounds.
func (m *Model) tabRow(withText bool) string {
	var b strings.Builder
	bg := m.theme.StripStyle()
	selected := m.current()
	pad := max(m.opts.ChromePadding, 0)
	lead := pad / 2
	closeW := 0
	if m.opts.CloseButtons {
		closeW = m.strip.ButtonWidth
	}
	for i, tab := range m.table {
		sel := m.children[i] == selected
		labelW := max(tab.Width-pad-closeW, 0)

		body := strings.Repeat(" ", labelW+pad-lead)
		if withText {
			fill := max(labelW-m.shaper.Metrics().StringWidth(tab.Display), 0)
			body = tab.Display + strings.Repeat(" ", fill+pad-lead)
		}
		b.WriteString(bg.Render(strings.Repeat(" ", lead)))
		b.WriteString(m.theme.TabStyle(sel).Render(body))
		if closeW > 0 {
			b.WriteString(m.theme.CloseStyle(sel).Render(m.closeGlyph(closeW, withText)))
		}
	}
	return b.String()
}

// closeGlyph centres the close glyph in a zone of w cells.
func (m *Model) closeGlyph(w int, withText bool) string {
	glyph := m.theme.Icon("close")
	gw := ansi.StringWidth(glyph)
	if !withText || gw > w {
		return strings.Repeat(" ", w)
	}
	left := (w - gw) / 2
	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", w-gw-left)
}
