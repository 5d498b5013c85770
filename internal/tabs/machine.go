package tabs

import (
	"time"

	"github.com/Digital-Shane/scroll-tabs/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the pointer interaction state of the strip.
type State int

const (
	Idle State = iota
	PressedOnStrip
	PressedLeftButton
	PressedRightButton
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PressedOnStrip:
		return "pressed-strip"
	case PressedLeftButton:
		return "pressed-left"
	case PressedRightButton:
		return "pressed-right"
	}
	return "unknown"
}

// RepeatMsg is delivered by the press-and-hold timer. Ticks from a cancelled
// or superseded timer carry an old Tag and are ignored.
type RepeatMsg struct {
	ID  int
	Tag int
}

// TabSelectedMsg reports a selection made from the strip.
type TabSelectedMsg struct {
	Index int
	Pane  Pane
}

// TabClosedMsg reports a pane removed through its close button. Index is
// the position the pane held before removal.
type TabClosedMsg struct {
	Index int
	Pane  Pane
}

// TabScrolledMsg reports the offset after a scroll button was released,
// when the press moved the strip.
type TabScrolledMsg struct {
	Offset int
	Right  bool
}

// Offset is the current scroll offset.
func (m *Model) Offset() int {
	m.ensureLayout()
	return m.offset
}

func (m *Model) viewport() Viewport {
	return Viewport{
		Offset:  m.offset,
		Total:   m.table.Total(),
		Visible: m.bounds.W - 2*m.strip.ButtonWidth,
	}
}

// Viewport returns the visible window onto the strip.
func (m *Model) Viewport() Viewport {
	m.ensureLayout()
	return m.viewport()
}

// CanScrollLeft reports whether the strip can move towards its start.
func (m *Model) CanScrollLeft() bool {
	m.ensureLayout()
	return m.scroller.CanScrollLeft(m.viewport())
}

// CanScrollRight reports whether the strip can move towards its end.
func (m *Model) CanScrollRight() bool {
	m.ensureLayout()
	return m.scroller.CanScrollRight(m.viewport())
}

// ScrollLeftOneStep moves one step left and reports whether it moved.
func (m *Model) ScrollLeftOneStep() bool {
	m.ensureLayout()
	v := m.viewport()
	if !m.scroller.CanScrollLeft(v) {
		return false
	}
	next := v.Clamp(m.scroller.ScrollLeft(v))
	moved := next != m.offset
	m.offset = next
	return moved
}

// ScrollRightOneStep moves one step right and reports whether it moved.
func (m *Model) ScrollRightOneStep() bool {
	m.ensureLayout()
	v := m.viewport()
	if !m.scroller.CanScrollRight(v) {
		return false
	}
	next := v.Clamp(m.scroller.ScrollRight(v))
	moved := next != m.offset
	m.offset = next
	return moved
}

// BringIntoView scrolls the minimum distance that shows tab i whole. Out of
// range indices are ignored.
func (m *Model) BringIntoView(i int) {
	m.ensureLayout()
	if i < 0 || i >= len(m.table) {
		return
	}
	m.offset = bringIntoView(m.viewport(), m.table[i])
}

// inBand reports whether the container-relative row y lies in the strip.
func (m *Model) inBand(y int) bool {
	if m.strip.Bottom {
		return y >= m.bounds.H-m.strip.Height && y < m.bounds.H
	}
	return y >= 0 && y < m.strip.Height
}

// hit resolves container-relative coordinates to a tab index, or -1 over
// the scroll buttons, outside the band or past the last tab.
func (m *Model) hit(x, y int) int {
	bw := m.strip.ButtonWidth
	if !m.inBand(y) || x < bw || x >= m.bounds.W-bw {
		return -1
	}
	return m.table.At(x + m.offset - bw)
}

// Which returns the child whose tab covers the screen point, or nil.
func (m *Model) Which(x, y int) Pane {
	m.ensureLayout()
	if i := m.hit(x-m.bounds.X, y-m.bounds.Y); i >= 0 {
		return m.children[i]
	}
	return nil
}

// inCloseZone reports whether the relative x falls on the last bw cells of
// tab i.
func (m *Model) inCloseZone(i, x int) bool {
	if !m.opts.CloseButtons {
		return false
	}
	ex := x + m.offset - m.strip.ButtonWidth
	return ex >= m.table[i].End()-m.strip.ButtonWidth
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.ensureLayout()
	m.EnsureValid()

	if tea.MouseEvent(msg).IsWheel() {
		return m.forward(msg)
	}
	if !m.bounds.Contains(msg.X, msg.Y) {
		if m.state != Idle {
			m.cancelPress()
		}
		return nil
	}
	x, y := msg.X-m.bounds.X, msg.Y-m.bounds.Y

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.state != Idle {
			return nil
		}
		if m.inBand(y) {
			return nil
		}
		return m.forward(msg)
	case tea.MouseActionPress:
		if !m.inBand(y) || len(m.children) == 0 {
			if m.state != Idle {
				m.cancelPress()
				return nil
			}
			return m.forward(msg)
		}
		return m.press(x)
	case tea.MouseActionRelease:
		if !m.inBand(y) || len(m.children) == 0 {
			if m.state != Idle {
				m.cancelPress()
				return nil
			}
			return m.forward(msg)
		}
		return m.release(x, y)
	}
	return nil
}

func (m *Model) press(x int) tea.Cmd {
	m.stopRepeat()
	bw := m.strip.ButtonWidth
	m.pressOffset = m.offset
	switch {
	case x < bw:
		m.state = PressedLeftButton
		m.ScrollLeftOneStep()
		return m.armRepeat(m.opts.InitialRepeat)
	case x >= m.bounds.W-bw:
		m.state = PressedRightButton
		m.ScrollRightOneStep()
		return m.armRepeat(m.opts.InitialRepeat)
	}
	m.state = PressedOnStrip
	return nil
}

func (m *Model) release(x, y int) tea.Cmd {
	prev := m.state
	m.state = Idle
	switch prev {
	case PressedLeftButton, PressedRightButton:
		m.stopRepeat()
		right := prev == PressedRightButton
		if m.opts.SnapOnRelease {
			m.snap(right)
		}
		if m.offset != m.pressOffset {
			return components.Emit(TabScrolledMsg{Offset: m.offset, Right: right})
		}
		return nil
	case PressedOnStrip:
		i := m.hit(x, y)
		if i < 0 {
			return nil
		}
		if m.inCloseZone(i, x) {
			return m.closeTab(i)
		}
		p := m.children[i]
		_, changed := m.selectPane(p)
		m.BringIntoView(i)
		if changed {
			return components.Emit(TabSelectedMsg{Index: i, Pane: p})
		}
	}
	return nil
}

// snap aligns the tab cut by the edge the strip was scrolled towards.
func (m *Model) snap(right bool) {
	v := m.viewport()
	if v.Visible <= 0 {
		return
	}
	edge := v.Offset
	if right {
		edge = v.Offset + v.Visible - 1
	}
	if i := m.table.At(edge); i >= 0 {
		m.offset = bringIntoView(v, m.table[i])
	}
}

func (m *Model) closeTab(i int) tea.Cmd {
	p := m.children[i]
	m.removeAt(i)
	if m.onClose != nil {
		m.onClose(p, m.closeData)
	}
	m.EnsureValid()
	m.ensureLayout()
	return components.Emit(TabClosedMsg{Index: i, Pane: p})
}

func (m *Model) cancelPress() {
	m.stopRepeat()
	m.state = Idle
}

func (m *Model) armRepeat(d time.Duration) tea.Cmd {
	m.repeatTag++
	m.repeating = true
	msg := RepeatMsg{ID: m.id, Tag: m.repeatTag}
	return components.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m *Model) stopRepeat() {
	if m.repeating {
		m.repeatTag++
		m.repeating = false
	}
}

func (m *Model) handleRepeat(msg RepeatMsg) tea.Cmd {
	if msg.ID != m.id || msg.Tag != m.repeatTag || !m.repeating {
		return nil
	}
	var step func() bool
	switch m.state {
	case PressedLeftButton:
		step = m.ScrollLeftOneStep
	case PressedRightButton:
		step = m.ScrollRightOneStep
	default:
		m.stopRepeat()
		return nil
	}
	for range max(m.opts.RepeatBurst, 1) {
		if !step() {
			break
		}
	}
	return m.armRepeat(m.opts.RepeatInterval)
}
