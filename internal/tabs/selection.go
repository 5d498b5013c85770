package tabs

import "github.com/Digital-Shane/scroll-tabs/internal/tui/components"

// current returns the selected pane if it is still a child.
func (m *Model) current() Pane {
	if m.IndexOf(m.selected) < 0 {
		return nil
	}
	return m.selected
}

// EnsureValid reconciles the selection with the child list and returns the
// selected index. With no selection the first child is picked; a selection
// that is no longer a child falls back to the last child. Afterwards only the
// selected child is visible.
func (m *Model) EnsureValid() int {
	n := len(m.children)
	if n == 0 {
		m.selected = nil
		return 0
	}
	idx := 0
	switch {
	case m.selected == nil:
		m.selected = m.children[0]
	default:
		if idx = m.IndexOf(m.selected); idx < 0 {
			idx = n - 1
			m.selected = m.children[idx]
		}
	}
	for i, c := range m.children {
		if i != idx && c.Visible() {
			c.Hide()
		}
	}
	if !m.selected.Visible() {
		m.selected.Show()
	}
	return idx
}

// Value returns the selected pane after reconciling, or nil when empty.
func (m *Model) Value() Pane {
	m.EnsureValid()
	return m.selected
}

// SetValue records p as the selection without touching visibility. It
// returns the index of p, or the sentinel Len() when p is not a child.
func (m *Model) SetValue(p Pane) int {
	i := m.IndexOf(p)
	if i < 0 {
		return len(m.children)
	}
	m.selected = p
	return i
}

// Select makes p the visible child and returns its index, or the sentinel
// Len() when p is not a child. Selecting the current pane again re-shows it
// and hands it focus.
func (m *Model) Select(p Pane) int {
	i, _ := m.selectPane(p)
	return i
}

// SelectIndex selects the child at i.
func (m *Model) SelectIndex(i int) int {
	p := m.Child(i)
	if p == nil {
		return len(m.children)
	}
	return m.Select(p)
}

// selectPane reports whether the selection changed. Focus commands from
// focusable panes are queued for the next Update.
func (m *Model) selectPane(p Pane) (int, bool) {
	i := m.IndexOf(p)
	if i < 0 {
		return len(m.children), false
	}
	prev := m.current()
	if prev == nil {
		m.EnsureValid()
		prev = m.selected
	}
	if p == prev {
		p.Show()
		m.focus(p)
		return i, false
	}
	m.selected = p
	m.EnsureValid()
	if f, ok := prev.(components.Focusable); ok {
		f.Blur()
	}
	m.focus(p)
	if m.opts.NotifyOnChange && m.onChange != nil {
		m.onChange(m, m.changeData)
	}
	return i, true
}

func (m *Model) focus(p Pane) {
	if f, ok := p.(components.Focusable); ok {
		m.queue(f.Focus())
	}
}
