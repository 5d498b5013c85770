package tabs

import tea "github.com/charmbracelet/bubbletea"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Pane is one child of the container. The container reads its label and
// geometry and toggles its visibility; it never owns the pane.
type Pane interface {
	Label() string
	Bounds() Rect
	SetBounds(Rect)
	Visible() bool
	Show()
	Hide()
}

// Viewer is implemented by panes that draw their own content.
type Viewer interface {
	View() string
}

// Updater is implemented by panes that consume events the strip passes
// through.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// BasicPane is a minimal Pane with static text content.
type BasicPane struct {
	label   string
	bounds  Rect
	hidden  bool
	Content string
}

// NewPane returns a visible pane with the given label and bounds.
func NewPane(label string, bounds Rect) *BasicPane {
	return &BasicPane{label: label, bounds: bounds}
}

func (p *BasicPane) Label() string     { return p.label }
func (p *BasicPane) Bounds() Rect      { return p.bounds }
func (p *BasicPane) SetBounds(r Rect)  { p.bounds = r }
func (p *BasicPane) Visible() bool     { return !p.hidden }
func (p *BasicPane) Show()             { p.hidden = false }
func (p *BasicPane) Hide()             { p.hidden = true }
func (p *BasicPane) View() string      { return p.Content }
func (p *BasicPane) SetLabel(l string) { p.label = l }
