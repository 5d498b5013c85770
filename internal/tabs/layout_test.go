package tabs

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutSpec(t *testing.T) {
	type derived struct {
		Chrome, Budget, Floor int
	}
	tests := []struct {
		name string
		spec LayoutSpec
		want derived
	}{
		{
			name: "unbounded without close",
			spec: LayoutSpec{ChromePadding: 2, ButtonWidth: 3},
			want: derived{Chrome: 2, Budget: NoBudget, Floor: 0},
		},
		{
			name: "close button adds chrome and floor",
			spec: LayoutSpec{CloseButtons: true, ChromePadding: 2, ButtonWidth: 3, MaxTabWidth: 20},
			want: derived{Chrome: 5, Budget: 15, Floor: 3},
		},
		{
			name: "min width above chrome",
			spec: LayoutSpec{CloseButtons: true, ChromePadding: 2, ButtonWidth: 3, MinTabWidth: 12},
			want: derived{Chrome: 5, Budget: NoBudget, Floor: 7},
		},
		{
			name: "max width below chrome",
			spec: LayoutSpec{CloseButtons: true, ChromePadding: 2, ButtonWidth: 3, MaxTabWidth: 4},
			want: derived{Chrome: 5, Budget: 0, Floor: 3},
		},
		{
			name: "negative padding ignored",
			spec: LayoutSpec{ChromePadding: -4, MinTabWidth: 6},
			want: derived{Chrome: 0, Budget: NoBudget, Floor: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derived{tt.spec.Chrome(), tt.spec.LabelBudget(), tt.spec.LabelFloor()}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("derived sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRebuild(t *testing.T) {
	spec := LayoutSpec{CloseButtons: true, ChromePadding: 2, ButtonWidth: 1, MaxTabWidth: 8}
	got := Rebuild([]string{"One", "Interaction", ""}, NewShapeCache(perRune(1)), spec)
	want := Table{
		{Display: "One", Width: 6, Position: 0},
		{Display: "Inte" + Ellipsis, Width: 8, Position: 6},
		{Display: "", Width: 4, Position: 14},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rebuild() mismatch (-want +got):\n%s", diff)
	}
	if got.Total() != 18 {
		t.Errorf("Total() = %d, want 18", got.Total())
	}
}

func TestRebuildEmpty(t *testing.T) {
	got := Rebuild(nil, NewShapeCache(nil), LayoutSpec{})
	if got != nil {
		t.Errorf("Rebuild(nil) = %v, want nil", got)
	}
	if got.Total() != 0 {
		t.Errorf("Total() = %d, want 0", got.Total())
	}
}

func TestRebuildMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"Tab", "Filler", "Interaction", "Test", "日本", "Color", "Change", "x"}
	for round := 0; round < 200; round++ {
		labels := make([]string, rng.Intn(12))
		for i := range labels {
			parts := make([]string, 1+rng.Intn(3))
			for j := range parts {
				parts[j] = words[rng.Intn(len(words))]
			}
			labels[i] = strings.Join(parts, " ")
		}
		spec := LayoutSpec{
			CloseButtons:  rng.Intn(2) == 0,
			MinTabWidth:   rng.Intn(10),
			MaxTabWidth:   rng.Intn(30),
			ChromePadding: rng.Intn(4),
			ButtonWidth:   rng.Intn(4),
		}
		table := Rebuild(labels, NewShapeCache(nil), spec)
		for i, tab := range table {
			if i == 0 && tab.Position != 0 {
				t.Fatalf("round %d: first position = %d, want 0", round, tab.Position)
			}
			if i > 0 && tab.Position != table[i-1].End() {
				t.Fatalf("round %d: position[%d] = %d, want %d", round, i, tab.Position, table[i-1].End())
			}
			if tab.Width < 0 {
				t.Fatalf("round %d: width[%d] = %d, want >= 0", round, i, tab.Width)
			}
			if spec.CloseButtons && tab.Width < spec.Chrome()+spec.ButtonWidth {
				t.Fatalf("round %d: width[%d] = %d narrower than close button floor", round, i, tab.Width)
			}
		}
	}
}

func TestTableAt(t *testing.T) {
	table := Table{
		{Width: 10, Position: 0},
		{Width: 5, Position: 10},
	}
	tests := []struct {
		x    int
		want int
	}{
		{x: -1, want: -1},
		{x: 0, want: 0},
		{x: 9, want: 0},
		{x: 10, want: 1}, // shared edge belongs to the tab starting there
		{x: 14, want: 1},
		{x: 15, want: -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("x=%d", tt.x), func(t *testing.T) {
			if got := table.At(tt.x); got != tt.want {
				t.Errorf("At(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestDeriveStrip(t *testing.T) {
	container := Rect{X: 10, Y: 5, W: 80, H: 20}
	tests := []struct {
		name      string
		children  []Rect
		minHeight int
		maxButton int
		want      Strip
	}{
		{
			name: "no children spans container",
			want: Strip{Height: 20, ButtonWidth: 20},
		},
		{
			name:     "top band",
			children: []Rect{{X: 10, Y: 8, W: 80, H: 17}},
			want:     Strip{Height: 3, ButtonWidth: 3},
		},
		{
			name:     "smallest gap wins",
			children: []Rect{{X: 10, Y: 8, W: 80, H: 17}, {X: 10, Y: 7, W: 80, H: 18}},
			want:     Strip{Height: 2, ButtonWidth: 2},
		},
		{
			name:     "bottom band when larger",
			children: []Rect{{X: 10, Y: 5, W: 80, H: 18}},
			want:     Strip{Height: 2, ButtonWidth: 2, Bottom: true},
		},
		{
			name:     "equal gaps stay on top",
			children: []Rect{{X: 10, Y: 6, W: 80, H: 18}},
			want:     Strip{Height: 1, ButtonWidth: 1},
		},
		{
			name:      "minimum height",
			children:  []Rect{{X: 10, Y: 5, W: 80, H: 20}},
			minHeight: 1,
			want:      Strip{Height: 1, ButtonWidth: 1},
		},
		{
			name:      "button width capped",
			children:  []Rect{{X: 10, Y: 9, W: 80, H: 16}},
			maxButton: 3,
			want:      Strip{Height: 4, ButtonWidth: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStrip(container, tt.children, tt.minHeight, tt.maxButton)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeriveStrip() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
