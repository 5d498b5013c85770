package tabs

// Tab is the derived layout of one child: its shaped label, its width and
// its offset from the start of the strip.
type Tab struct {
	Display  string
	Width    int
	Position int
}

// End is the strip coordinate just past the tab.
func (t Tab) End() int {
	return t.Position + t.Width
}

// Table is the ordered layout of every tab, index-aligned with the
// container's children.
type Table []Tab

// Total is the width of the whole strip.
func (t Table) Total() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End()
}

// At returns the tab whose span [Position, End) holds x, or -1. A shared
// edge belongs to the tab that starts there.
func (t Table) At(x int) int {
	for i, tab := range t {
		if tab.Position <= x && x < tab.End() {
			return i
		}
	}
	return -1
}

// LayoutSpec carries the size configuration a rebuild depends on.
type LayoutSpec struct {
	CloseButtons  bool
	MinTabWidth   int
	MaxTabWidth   int
	ChromePadding int
	ButtonWidth   int
}

// Chrome is the fixed allowance added to every shaped label: frame and
// selection padding plus the close zone when close buttons are enabled.
func (s LayoutSpec) Chrome() int {
	chrome := max(s.ChromePadding, 0)
	if s.CloseButtons {
		chrome += max(s.ButtonWidth, 0)
	}
	return chrome
}

// LabelBudget is the widest a label may render, or NoBudget.
func (s LayoutSpec) LabelBudget() int {
	if s.MaxTabWidth <= 0 {
		return NoBudget
	}
	return max(s.MaxTabWidth-s.Chrome(), 0)
}

// LabelFloor is the narrowest a label area may collapse to. With close
// buttons on it never drops below one button width.
func (s LayoutSpec) LabelFloor() int {
	floor := max(s.MinTabWidth-s.Chrome(), 0)
	if s.CloseButtons {
		floor = max(floor, s.ButtonWidth)
	}
	return floor
}

// Rebuild lays out one tab per label, left to right from zero.
func Rebuild(labels []string, shaper Shaper, spec LayoutSpec) Table {
	if len(labels) == 0 {
		return nil
	}
	budget, floor, chrome := spec.LabelBudget(), spec.LabelFloor(), spec.Chrome()
	table := make(Table, len(labels))
	pos := 0
	for i, label := range labels {
		display, width := shaper.Shape(label, budget, floor)
		table[i] = Tab{Display: display, Width: width + chrome, Position: pos}
		pos += table[i].Width
	}
	return table
}

// Strip describes where the tab strip sits and how tall it is.
type Strip struct {
	Height      int
	ButtonWidth int
	Bottom      bool
}

// DeriveStrip infers the strip from the space children leave free inside
// the container: the strip takes the band above the content, or the band
// below it when that one is larger. Without children the strip spans the
// whole container.
func DeriveStrip(container Rect, children []Rect, minTabHeight, maxButtonWidth int) Strip {
	var s Strip
	if len(children) == 0 {
		s.Height = container.H
	} else {
		top, bottom := container.H, container.H
		for _, c := range children {
			top = min(top, c.Y-container.Y)
			bottom = min(bottom, container.Y+container.H-(c.Y+c.H))
		}
		top, bottom = max(top, 0), max(bottom, 0)
		s.Height = top
		if bottom > top {
			s.Height = bottom
			s.Bottom = true
		}
		s.Height = max(s.Height, minTabHeight)
	}
	s.ButtonWidth = s.Height
	if maxButtonWidth > 0 {
		s.ButtonWidth = min(s.ButtonWidth, maxButtonWidth)
	}
	s.ButtonWidth = max(s.ButtonWidth, 0)
	return s
}
