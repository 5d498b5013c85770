package tabs

import (
	"sync/atomic"
	"time"

	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Options holds the container configuration. Every setter that changes a
// size-related field invalidates the layout table.
type Options struct {
	CloseButtons   bool
	MinTabWidth    int
	MaxTabWidth    int // 0 leaves labels untruncated
	ChromePadding  int
	MinTabHeight   int
	MaxButtonWidth int // 0 leaves buttons as wide as the strip is tall
	InitialRepeat  time.Duration
	RepeatInterval time.Duration
	RepeatBurst    int
	ScrollStep     int
	SnapOnRelease  bool
	NotifyOnChange bool
}

// DefaultOptions mirrors the classic widget: close buttons on, half a
// second before auto-repeat, then eight steps every ten milliseconds.
func DefaultOptions() Options {
	return Options{
		CloseButtons:   true,
		ChromePadding:  2,
		MinTabHeight:   1,
		MaxButtonWidth: 3,
		InitialRepeat:  500 * time.Millisecond,
		RepeatInterval: 10 * time.Millisecond,
		RepeatBurst:    8,
		ScrollStep:     1,
		SnapOnRelease:  true,
	}
}

// CloseCallback is invoked with a pane after it was closed from its tab.
type CloseCallback func(p Pane, data any)

// ChangeCallback is invoked after the selected tab changed.
type ChangeCallback func(m *Model, data any)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is the scrolling tab container. All methods must be called from the
// Bubble Tea update loop.
type Model struct {
	id       int
	bounds   Rect
	children []Pane
	selected Pane
	opts     Options
	scroller Scroller
	shaper   *ShapeCache
	theme    theme.Theme

	table  Table
	strip  Strip
	dirty  bool
	offset int

	state       State
	pressOffset int
	repeatTag   int
	repeating   bool

	onClose    CloseCallback
	closeData  any
	onChange   ChangeCallback
	changeData any

	pending []tea.Cmd
}

// Option configures a Model during construction.
type Option func(*Model)

// WithOptions replaces the whole configuration.
func WithOptions(o Options) Option {
	return func(m *Model) {
		m.opts = o
	}
}

// WithCloseButtons enables or disables per-tab close buttons.
func WithCloseButtons(on bool) Option {
	return func(m *Model) {
		m.opts.CloseButtons = on
	}
}

// WithTabWidthBounds sets the minimum and maximum tab width.
func WithTabWidthBounds(minWidth, maxWidth int) Option {
	return func(m *Model) {
		m.opts.MinTabWidth = minWidth
		m.opts.MaxTabWidth = maxWidth
	}
}

// WithChromePadding sets the padding added around every label.
func WithChromePadding(n int) Option {
	return func(m *Model) {
		m.opts.ChromePadding = n
	}
}

// WithMinTabHeight sets the smallest strip height.
func WithMinTabHeight(n int) Option {
	return func(m *Model) {
		m.opts.MinTabHeight = n
	}
}

// WithMaxButtonWidth caps the scroll button width.
func WithMaxButtonWidth(n int) Option {
	return func(m *Model) {
		m.opts.MaxButtonWidth = n
	}
}

// WithRepeat configures press-and-hold scrolling.
func WithRepeat(initial, interval time.Duration, burst int) Option {
	return func(m *Model) {
		m.opts.InitialRepeat = initial
		m.opts.RepeatInterval = interval
		m.opts.RepeatBurst = burst
	}
}

// WithSnapOnRelease controls whether releasing a scroll button aligns the
// tab cut by the viewport edge.
func WithSnapOnRelease(on bool) Option {
	return func(m *Model) {
		m.opts.SnapOnRelease = on
	}
}

// WithNotifyOnChange controls whether selection changes fire the change
// callback.
func WithNotifyOnChange(on bool) Option {
	return func(m *Model) {
		m.opts.NotifyOnChange = on
	}
}

// WithMetrics replaces the text measure.
func WithMetrics(mt Metrics) Option {
	return func(m *Model) {
		m.shaper.SetMetrics(mt)
	}
}

// WithScroller replaces the scroll policy.
func WithScroller(s Scroller) Option {
	return func(m *Model) {
		m.scroller = s
	}
}

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithBounds places the container.
func WithBounds(r Rect) Option {
	return func(m *Model) {
		m.bounds = r
	}
}

// WithCloseCallback registers the close notification.
func WithCloseCallback(fn CloseCallback, data any) Option {
	return func(m *Model) {
		m.onClose, m.closeData = fn, data
	}
}

// WithChangeCallback registers the selection change notification.
func WithChangeCallback(fn ChangeCallback, data any) Option {
	return func(m *Model) {
		m.onChange, m.changeData = fn, data
	}
}

// New returns an empty container.
func New(opts ...Option) *Model {
	m := &Model{
		id:     nextID(),
		opts:   DefaultOptions(),
		shaper: NewShapeCache(DefaultMetrics()),
		theme:  theme.Default(),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scroller == nil {
		m.scroller = DefaultScroller{Step: m.opts.ScrollStep}
	}
	m.shaper.SetEllipsis(m.theme.Icon("ellipsis"))
	return m
}

// ID identifies the instance in repeat messages.
func (m *Model) ID() int { return m.id }

// State reports the interaction state.
func (m *Model) State() State { return m.state }

// Options returns a copy of the configuration.
func (m *Model) Options() Options { return m.opts }

// Theme returns the theme used for drawing.
func (m *Model) Theme() theme.Theme { return m.theme }

// SetTheme replaces the theme. The ellipsis glyph follows the theme.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.shaper.SetEllipsis(th.Icon("ellipsis"))
	m.dirty = true
}

// CloseButtons reports whether tabs carry close buttons.
func (m *Model) CloseButtons() bool { return m.opts.CloseButtons }

// SetCloseButtons enables or disables close buttons.
func (m *Model) SetCloseButtons(on bool) {
	if m.opts.CloseButtons != on {
		m.opts.CloseButtons = on
		m.dirty = true
	}
}

// SetCloseCallback registers fn to be called with each closed pane.
func (m *Model) SetCloseCallback(fn CloseCallback, data any) {
	m.onClose, m.closeData = fn, data
}

// SetChangeCallback registers fn to be called when the selection changes
// and NotifyOnChange is set.
func (m *Model) SetChangeCallback(fn ChangeCallback, data any) {
	m.onChange, m.changeData = fn, data
}

// SetNotifyOnChange toggles change notifications.
func (m *Model) SetNotifyOnChange(on bool) { m.opts.NotifyOnChange = on }

// TabWidthBounds returns the minimum and maximum tab width.
func (m *Model) TabWidthBounds() (int, int) {
	return m.opts.MinTabWidth, m.opts.MaxTabWidth
}

// SetTabWidthBounds sets the minimum and maximum tab width. A maximum of
// zero disables truncation.
func (m *Model) SetTabWidthBounds(minWidth, maxWidth int) {
	if m.opts.MinTabWidth == minWidth && m.opts.MaxTabWidth == maxWidth {
		return
	}
	m.opts.MinTabWidth, m.opts.MaxTabWidth = minWidth, maxWidth
	m.dirty = true
}

// SetMetrics replaces the text measure, invalidating every label.
func (m *Model) SetMetrics(mt Metrics) {
	m.shaper.SetMetrics(mt)
	m.dirty = true
}

// SetScroller replaces the scroll policy.
func (m *Model) SetScroller(s Scroller) {
	if s == nil {
		s = DefaultScroller{Step: m.opts.ScrollStep}
	}
	m.scroller = s
	m.offset = m.viewport().Clamp(m.offset)
}

// InvalidateLabels must be called after a child's label changed.
func (m *Model) InvalidateLabels() {
	m.shaper.Flush()
	m.dirty = true
}

// Bounds returns the container rectangle.
func (m *Model) Bounds() Rect { return m.bounds }

// SetBounds moves and resizes the container. Children keep their distance
// to each container edge.
func (m *Model) SetBounds(r Rect) {
	old := m.bounds
	m.bounds = r
	if old.W > 0 || old.H > 0 {
		for _, c := range m.children {
			c.SetBounds(reanchor(c.Bounds(), old, r))
		}
	}
	m.dirty = true
}

// SetSize resizes the container in place.
func (m *Model) SetSize(w, h int) {
	m.SetBounds(Rect{X: m.bounds.X, Y: m.bounds.Y, W: w, H: h})
}

func reanchor(c, from, to Rect) Rect {
	left := c.X - from.X
	top := c.Y - from.Y
	right := from.X + from.W - (c.X + c.W)
	bottom := from.Y + from.H - (c.Y + c.H)
	return Rect{
		X: to.X + left,
		Y: to.Y + top,
		W: max(to.W-left-right, 0),
		H: max(to.H-top-bottom, 0),
	}
}

// Len is the number of children.
func (m *Model) Len() int { return len(m.children) }

// Child returns the child at i, or nil.
func (m *Model) Child(i int) Pane {
	if i < 0 || i >= len(m.children) {
		return nil
	}
	return m.children[i]
}

// Children returns a copy of the child list.
func (m *Model) Children() []Pane {
	return append([]Pane(nil), m.children...)
}

// IndexOf returns the index of p, or -1 when p is not a child.
func (m *Model) IndexOf(p Pane) int {
	if p == nil {
		return -1
	}
	for i, c := range m.children {
		if c == p {
			return i
		}
	}
	return -1
}

// Add appends a child.
func (m *Model) Add(p Pane) {
	m.Insert(len(m.children), p)
}

// Insert places a child at index i, clamped to the valid range. A pane that
// is already a child is moved.
func (m *Model) Insert(i int, p Pane) {
	if p == nil {
		return
	}
	if j := m.IndexOf(p); j >= 0 {
		m.children = append(m.children[:j], m.children[j+1:]...)
	}
	i = min(max(i, 0), len(m.children))
	m.children = append(m.children, nil)
	copy(m.children[i+1:], m.children[i:])
	m.children[i] = p
	m.dirty = true
	m.EnsureValid()
}

// Remove detaches p and returns its former index, or the sentinel Len()
// when p is not a child.
func (m *Model) Remove(p Pane) int {
	i := m.IndexOf(p)
	if i < 0 {
		return len(m.children)
	}
	m.removeAt(i)
	m.EnsureValid()
	return i
}

// RemoveIndex detaches the child at i and returns it, or nil.
func (m *Model) RemoveIndex(i int) Pane {
	p := m.Child(i)
	if p == nil {
		return nil
	}
	m.removeAt(i)
	m.EnsureValid()
	return p
}

func (m *Model) removeAt(i int) {
	m.children = append(m.children[:i], m.children[i+1:]...)
	m.dirty = true
}

// ensureLayout derives the strip from the current child geometry and
// rebuilds the table when it is stale.
func (m *Model) ensureLayout() {
	rects := make([]Rect, len(m.children))
	for i, c := range m.children {
		rects[i] = c.Bounds()
	}
	strip := DeriveStrip(m.bounds, rects, m.opts.MinTabHeight, m.opts.MaxButtonWidth)
	if strip.ButtonWidth != m.strip.ButtonWidth {
		m.dirty = true
	}
	m.strip = strip
	if m.dirty {
		labels := make([]string, len(m.children))
		for i, c := range m.children {
			labels[i] = c.Label()
		}
		m.table = Rebuild(labels, m.shaper, m.layoutSpec())
		m.dirty = false
	}
	m.offset = m.viewport().Clamp(m.offset)
}

func (m *Model) layoutSpec() LayoutSpec {
	return LayoutSpec{
		CloseButtons:  m.opts.CloseButtons,
		MinTabWidth:   m.opts.MinTabWidth,
		MaxTabWidth:   m.opts.MaxTabWidth,
		ChromePadding: m.opts.ChromePadding,
		ButtonWidth:   m.strip.ButtonWidth,
	}
}

// Table returns the current layout, rebuilding it if stale.
func (m *Model) Table() Table {
	m.ensureLayout()
	return append(Table(nil), m.table...)
}

// StripHeight returns the derived strip height.
func (m *Model) StripHeight() int {
	m.ensureLayout()
	return m.strip.Height
}

// ButtonWidth returns the derived scroll button width.
func (m *Model) ButtonWidth() int {
	m.ensureLayout()
	return m.strip.ButtonWidth
}

// Bottom reports whether the strip sits along the bottom edge.
func (m *Model) Bottom() bool {
	m.ensureLayout()
	return m.strip.Bottom
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Mouse events and repeat ticks drive the
// strip; everything else goes to the selected pane.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case RepeatMsg:
		cmd = m.handleRepeat(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	default:
		cmd = m.forward(msg)
	}
	return m, tea.Batch(append(m.drain(), cmd)...)
}

// forward hands msg to the selected pane when it consumes events.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if u, ok := m.current().(Updater); ok {
		return u.Update(msg)
	}
	return nil
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Close stops any pending repeat. Call it when the container goes away.
func (m *Model) Close() {
	m.cancelPress()
}
