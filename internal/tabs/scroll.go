package tabs

// Viewport is the visible window onto the strip. Visible may be zero or
// negative when the container is narrower than its two scroll buttons.
type Viewport struct {
	Offset  int
	Total   int
	Visible int
}

// MaxOffset is the largest offset that still fills the viewport. A
// degenerate viewport cannot scroll at all.
func (v Viewport) MaxOffset() int {
	if v.Visible <= 0 {
		return 0
	}
	return max(v.Total-v.Visible, 0)
}

// Clamp limits offset to [0, MaxOffset].
func (v Viewport) Clamp(offset int) int {
	return min(max(offset, 0), v.MaxOffset())
}

// Scroller decides scroll limits and step sizes. Replace it to change how
// far one step moves or where scrolling stops.
type Scroller interface {
	CanScrollLeft(v Viewport) bool
	CanScrollRight(v Viewport) bool
	// ScrollLeft and ScrollRight return the offset after one step.
	ScrollLeft(v Viewport) int
	ScrollRight(v Viewport) int
}

// DefaultScroller moves Step cells per step (one when unset).
type DefaultScroller struct {
	Step int
}

func (s DefaultScroller) step() int {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}

func (s DefaultScroller) CanScrollLeft(v Viewport) bool {
	return v.Offset > 0
}

func (s DefaultScroller) CanScrollRight(v Viewport) bool {
	if v.Visible <= 0 {
		return false
	}
	limit := v.Total - v.Visible
	return limit > 0 && v.Offset < limit
}

func (s DefaultScroller) ScrollLeft(v Viewport) int {
	if !s.CanScrollLeft(v) {
		return v.Offset
	}
	return v.Clamp(v.Offset - s.step())
}

func (s DefaultScroller) ScrollRight(v Viewport) int {
	if !s.CanScrollRight(v) {
		return v.Offset
	}
	return v.Clamp(v.Offset + s.step())
}

// bringIntoView returns the offset that shows tab t whole. A tab wider than
// the viewport ends up with its trailing edge visible.
func bringIntoView(v Viewport, t Tab) int {
	offset := v.Offset
	if t.Position < offset {
		offset = t.Position
	}
	if t.End() > offset+v.Visible {
		offset = t.End() - v.Visible
	}
	return v.Clamp(offset)
}
