package tabs

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// ratioMetrics measures every rune as num/den cells, rounded down over the
// whole string.
type ratioMetrics struct {
	num, den int
}

func (r ratioMetrics) StringWidth(s string) int {
	den := r.den
	if den == 0 {
		den = 1
	}
	return utf8.RuneCountInString(s) * r.num / den
}

func perRune(n int) Metrics { return ratioMetrics{num: n, den: 1} }

func TestShape(t *testing.T) {
	type result struct {
		Display string
		Width   int
	}
	tests := []struct {
		name   string
		label  string
		budget int
		floor  int
		want   result
	}{
		{name: "fits", label: "Alpha", budget: 10, want: result{"Alpha", 5}},
		{name: "unbounded", label: "A very long label", budget: NoBudget, want: result{"A very long label", 17}},
		{name: "exact budget", label: "Alpha", budget: 5, want: result{"Alpha", 5}},
		{name: "truncated", label: "Alphabet", budget: 5, want: result{"Alph…", 5}},
		{name: "ellipsis only", label: "Alphabet", budget: 1, want: result{"…", 1}},
		{name: "zero budget", label: "Alphabet", budget: 0, want: result{"", 0}},
		{name: "floor widens", label: "Ab", budget: 10, floor: 4, want: result{"Ab", 4}},
		{name: "empty uses floor", label: "", budget: 10, floor: 3, want: result{"", 3}},
		{name: "negative floor", label: "", budget: 10, floor: -2, want: result{"", 0}},
		{name: "floor after truncation", label: "Alphabet", budget: 0, floor: 2, want: result{"", 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, width := Shape(tt.label, DefaultMetrics(), tt.budget, tt.floor)
			got := result{display, width}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Shape(%q, %d, %d) mismatch (-want +got):\n%s", tt.label, tt.budget, tt.floor, diff)
			}
		})
	}
}

func TestShapeFillerTabFitsNarrowTab(t *testing.T) {
	// Twelve runes at 7.5 cells each is 90 wide against a 64 cell budget.
	m := ratioMetrics{num: 15, den: 2}
	if w := m.StringWidth("Filler Tab 5"); w != 90 {
		t.Fatalf("natural width = %d, want 90", w)
	}

	display, width := Shape("Filler Tab 5", m, 64, 0)
	if !strings.HasSuffix(display, Ellipsis) {
		t.Errorf("Shape() = %q, want ellipsis suffix", display)
	}
	if width > 64 {
		t.Errorf("Shape() width = %d, want <= 64", width)
	}
	if display != "Filler …" {
		t.Errorf("Shape() = %q, want %q", display, "Filler …")
	}
}

func TestShapeIdempotent(t *testing.T) {
	labels := []string{"Test Tab 1", "Interaction Test", "Color Change Tab", "日本語のタブ", "x", ""}
	metrics := DefaultMetrics()
	for _, label := range labels {
		for budget := 0; budget <= 20; budget++ {
			once, w1 := Shape(label, metrics, budget, 0)
			twice, w2 := Shape(once, metrics, budget, 0)
			if once != twice || w1 != w2 {
				t.Errorf("Shape(Shape(%q, %d)) = (%q, %d), want (%q, %d)", label, budget, twice, w2, once, w1)
			}
			if w1 > budget {
				t.Errorf("Shape(%q, %d) width = %d exceeds budget", label, budget, w1)
			}
		}
	}
}

func TestShapeKeepsGraphemesWhole(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		budget int
		want   string
	}{
		{name: "combining marks", label: "e\u0301e\u0301e\u0301", budget: 2, want: "e\u0301…"},
		{name: "wide runes", label: "日本語テキスト", budget: 5, want: "日本…"},
		{name: "wide rune never split", label: "日本語", budget: 2, want: "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Shape(tt.label, DefaultMetrics(), tt.budget, 0)
			if got != tt.want {
				t.Errorf("Shape(%q, %d) = %q, want %q", tt.label, tt.budget, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Shape(%q, %d) produced invalid UTF-8 %q", tt.label, tt.budget, got)
			}
		})
	}
}

func TestShapeCache(t *testing.T) {
	c := NewShapeCache(perRune(1))

	d1, w1 := c.Shape("Alphabet", 5, 0)
	d2, w2 := c.Shape("Alphabet", 5, 0)
	if d1 != d2 || w1 != w2 {
		t.Fatalf("cached Shape() = (%q, %d), want (%q, %d)", d2, w2, d1, w1)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Shape("Alphabet", 6, 0)
	if c.Len() != 2 {
		t.Errorf("Len() after new budget = %d, want 2", c.Len())
	}

	c.SetMetrics(perRune(2))
	if c.Len() != 0 {
		t.Errorf("Len() after SetMetrics = %d, want 0", c.Len())
	}
	if _, w := c.Shape("Ab", NoBudget, 0); w != 4 {
		t.Errorf("Shape() width with new metrics = %d, want 4", w)
	}

	c.SetEllipsis("...")
	if c.Len() != 0 {
		t.Errorf("Len() after SetEllipsis = %d, want 0", c.Len())
	}
	c.SetMetrics(perRune(1))
	if got, _ := c.Shape("Alphabet", 6, 0); got != "Alp..." {
		t.Errorf("Shape() with ascii ellipsis = %q, want %q", got, "Alp...")
	}

	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", c.Len())
	}
}
