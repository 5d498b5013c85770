package demo

import (
	"bytes"
	"testing"
	"time"

	"github.com/Digital-Shane/scroll-tabs/internal/log"
	"github.com/Digital-Shane/scroll-tabs/internal/tabs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/google/go-cmp/cmp"
)

func labels(m *tabs.Model) []string {
	out := make([]string, 0, m.Len())
	for _, c := range m.Children() {
		out = append(out, c.Label())
	}
	return out
}

// deliver runs cmd and feeds every message it yields back into m until
// nothing is left. Only use it with commands that return immediately.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command chain did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, next)
	}
}

func send(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	deliver(t, m, cmd)
}

func click(t *testing.T, m *Model, x, y int) {
	t.Helper()
	send(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	send(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

func sendRunes(t *testing.T, m *Model, s string) {
	t.Helper()
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewStandardTabs(t *testing.T) {
	tests := []struct {
		name  string
		extra int
		want  []string
	}{
		{
			name: "default",
			want: []string{"Test Tab 1", "Interaction Test", "Color Change Tab", "Filler Tab 4", "Filler Tab 5", "Tab Index"},
		},
		{
			name:  "extra fillers",
			extra: 2,
			want: []string{"Test Tab 1", "Interaction Test", "Color Change Tab", "Filler Tab 4", "Filler Tab 5",
				"Filler Tab 6", "Filler Tab 7", "Tab Index"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(WithExtraTabs(tt.extra))
			if diff := cmp.Diff(tt.want, labels(m.Tabs())); diff != "" {
				t.Errorf("tab labels mismatch (-want +got):\n%s", diff)
			}
			if got := m.Tabs().Value().Label(); got != TestTabLabel {
				t.Errorf("selected tab = %q, want %q", got, TestTabLabel)
			}
		})
	}
}

func TestPaneGeometry(t *testing.T) {
	tests := []struct {
		name   string
		bottom bool
		want   tabs.Rect
	}{
		{name: "top strip", want: tabs.Rect{X: 0, Y: 2, W: 80, H: 21}},
		{name: "bottom strip", bottom: true, want: tabs.Rect{X: 0, Y: 1, W: 80, H: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(WithBottomStrip(tt.bottom))
			if diff := cmp.Diff(tt.want, m.Tabs().Child(0).Bounds()); diff != "" {
				t.Errorf("pane bounds mismatch (-want +got):\n%s", diff)
			}
			if got := m.Tabs().Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestResizeKeepsPanesAnchored(t *testing.T) {
	m := New()
	send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	want := tabs.Rect{X: 0, Y: 2, W: 120, H: 37}
	for i, c := range m.Tabs().Children() {
		if diff := cmp.Diff(want, c.Bounds()); diff != "" {
			t.Errorf("pane %d bounds mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestIndexListsTabs(t *testing.T) {
	m := New()
	entries := m.Index().Entries()
	if len(entries) != m.Tabs().Len() {
		t.Fatalf("index has %d entries, want %d", len(entries), m.Tabs().Len())
	}
	for i, e := range entries {
		if e.Index != i || e.Label != m.Tabs().Child(i).Label() {
			t.Errorf("entry %d = %+v", i, e)
		}
		if e.Selected != (i == 0) {
			t.Errorf("entry %d selected = %v", i, e.Selected)
		}
		if !e.Closable {
			t.Errorf("entry %d not closable with close buttons on", i)
		}
	}
}

func TestIndexSelectsTab(t *testing.T) {
	m := New()
	send(t, m, IndexSelectMsg{Index: 3})

	if got := m.Tabs().Value().Label(); got != "Filler Tab 4" {
		t.Errorf("selected tab = %q, want Filler Tab 4", got)
	}
	if e := m.Index().Current(); e == nil || e.Index != 3 {
		t.Errorf("index focus = %+v, want entry 3", e)
	}

	send(t, m, IndexSelectMsg{Index: 99})
	if got := m.Tabs().Value().Label(); got != "Filler Tab 4" {
		t.Errorf("out of range index changed selection to %q", got)
	}
}

func TestIndexFindsTab(t *testing.T) {
	m := New()
	m.Tabs().Select(m.Index())

	sendRunes(t, m, "/")
	if !m.Index().Finding() {
		t.Fatal("index not searching after /")
	}
	// Keys bound by the demo go to the query while searching.
	sendRunes(t, m, "c")
	sendRunes(t, m, "olr")
	if got := m.Index().Query(); got != "colr" {
		t.Errorf("query = %q, want colr", got)
	}
	if !m.Tabs().CloseButtons() {
		t.Error("c toggled close buttons while searching")
	}
	if e := m.Index().Current(); e == nil || e.Label != ColorTabLabel {
		t.Fatalf("index focus = %+v, want %q", e, ColorTabLabel)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Index().Finding() {
		t.Error("still searching after enter")
	}
	if got := m.Tabs().Value().Label(); got != ColorTabLabel {
		t.Errorf("selected tab = %q, want %q", got, ColorTabLabel)
	}
}

func TestIndexFindCancel(t *testing.T) {
	m := New()
	m.Tabs().Select(m.Index())

	sendRunes(t, m, "/")
	before := m.Index().Current()
	sendRunes(t, m, "zzz")
	if diff := cmp.Diff(before, m.Index().Current()); diff != "" {
		t.Errorf("focus moved without a match (-want +got):\n%s", diff)
	}
	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Index().Finding() || m.Index().Query() != "" {
		t.Error("esc did not end the search")
	}
	if got := m.Tabs().Value().Label(); got != IndexTabLabel {
		t.Errorf("selected tab = %q after cancel", got)
	}
}

func TestInteractionButton(t *testing.T) {
	m := New()
	p, ok := m.Tabs().Child(1).(*ButtonPane)
	if !ok {
		t.Fatalf("tab 1 is %T, want *ButtonPane", m.Tabs().Child(1))
	}
	m.Tabs().Select(p)

	r := p.ButtonRect()
	click(t, m, r.X+1, r.Y+1)
	if p.Presses() != 1 {
		t.Fatalf("Presses() after click = %d, want 1", p.Presses())
	}
	if got := m.Status(); got != "Button pressed. (1)" {
		t.Errorf("Status() = %q", got)
	}

	// Pressing on the button but releasing elsewhere does not fire.
	send(t, m, tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	send(t, m, tea.MouseMsg{X: r.X + r.W + 5, Y: r.Y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if p.Presses() != 1 {
		t.Errorf("Presses() after release outside = %d, want 1", p.Presses())
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if p.Presses() != 2 {
		t.Errorf("Presses() after enter = %d, want 2", p.Presses())
	}
}

func TestSelectionColorToggle(t *testing.T) {
	m := New()
	base := m.Tabs().Theme().Colors().Selection
	p := m.Tabs().Child(2).(*ButtonPane)
	m.Tabs().Select(p)

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !p.On() {
		t.Fatal("light button still off after enter")
	}
	if got := m.Tabs().Theme().Colors().Selection; got != alertColor {
		t.Errorf("selection color = %v, want %v", got, alertColor)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Tabs().Theme().Colors().Selection; got != base {
		t.Errorf("selection color after second toggle = %v, want %v", got, base)
	}
}

func TestNewTabPrompt(t *testing.T) {
	m := New()
	before := m.Tabs().Len()

	sendRunes(t, m, "n")
	sendRunes(t, m, "Extra")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Tabs().Len() != before+1 {
		t.Fatalf("Len() = %d, want %d", m.Tabs().Len(), before+1)
	}
	if got := m.Tabs().Value().Label(); got != "Extra" {
		t.Errorf("selected tab = %q, want Extra", got)
	}
	last := m.Index().Entries()[before]
	if last.Label != "Extra" || !last.Selected {
		t.Errorf("index entry = %+v, want selected Extra", last)
	}

	// An empty or cancelled prompt adds nothing.
	sendRunes(t, m, "n")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sendRunes(t, m, "n")
	sendRunes(t, m, "Dropped")
	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Tabs().Len() != before+1 {
		t.Errorf("Len() = %d after empty and cancelled prompts, want %d", m.Tabs().Len(), before+1)
	}
}

func TestToggleCloseButtons(t *testing.T) {
	m := New()
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	if m.Tabs().CloseButtons() {
		t.Error("CloseButtons() = true after toggle")
	}
	for i, e := range m.Index().Entries() {
		if e.Closable {
			t.Errorf("entry %d still closable", i)
		}
	}
}

func TestCloseFromStripIsJournaled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	log.Initialize(true, 30)
	if err := log.StartSession("demo", nil); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	m := New()
	tm := m.Tabs()
	first := tm.Table()[0]
	x := tm.Bounds().X + tm.ButtonWidth() + first.End() - 1 - tm.Offset()
	click(t, m, x, tm.Bounds().Y)

	if tm.Len() != 5 {
		t.Fatalf("Len() = %d after closing, want 5", tm.Len())
	}
	if got := labels(tm)[0]; got != "Interaction Test" {
		t.Errorf("first tab = %q, want Interaction Test", got)
	}
	if len(m.Index().Entries()) != 5 {
		t.Errorf("index has %d entries, want 5", len(m.Index().Entries()))
	}

	if err := log.EndSession(); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	sessions, err := log.ReadSessions(1)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("ReadSessions() = %v, %v", sessions, err)
	}
	ops := sessions[0].Operations
	if len(ops) != 1 || ops[0].Type != log.OpClose || ops[0].Label != TestTabLabel || ops[0].Index != 0 {
		t.Errorf("journal operations = %+v, want one close of %q", ops, TestTabLabel)
	}
}

func TestDemoTeatest(t *testing.T) {
	tm := teatest.NewTestModel(t, New(), teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Scroll Tabs Demo"))
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(25*time.Millisecond))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if final.Tabs().CloseButtons() {
		t.Error("CloseButtons() = true, want toggled off")
	}
	if final.Tabs().State() != tabs.Idle {
		t.Errorf("State() = %v, want %v", final.Tabs().State(), tabs.Idle)
	}
}
