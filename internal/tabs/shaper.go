package tabs

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/patrickmn/go-cache"
	"github.com/rivo/uniseg"
)

// Ellipsis is appended to labels that were shortened to fit a budget.
const Ellipsis = "…"

// NoBudget disables truncation in Shape.
const NoBudget = -1

// Metrics measures rendered text. It stands in for the font: replacing it
// changes every shaped label.
type Metrics interface {
	StringWidth(s string) int
}

// RuneWidthMetrics measures terminal cell widths with go-runewidth.
type RuneWidthMetrics struct {
	cond *runewidth.Condition
}

// NewRuneWidthMetrics returns metrics using the given East Asian width
// setting. Emoji are measured as neutral.
func NewRuneWidthMetrics(eastAsian bool) RuneWidthMetrics {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	cond.StrictEmojiNeutral = true
	return RuneWidthMetrics{cond: cond}
}

// DefaultMetrics is the narrow (non East Asian) cell measure.
func DefaultMetrics() Metrics {
	return NewRuneWidthMetrics(false)
}

func (m RuneWidthMetrics) StringWidth(s string) int {
	if m.cond == nil {
		return runewidth.StringWidth(s)
	}
	return m.cond.StringWidth(s)
}

// Shape fits label into budget cells, dropping trailing grapheme clusters
// and appending Ellipsis until it fits. A negative budget never truncates.
// The returned width is at least floor.
func Shape(label string, m Metrics, budget, floor int) (string, int) {
	return shape(label, m, Ellipsis, budget, floor)
}

func shape(label string, m Metrics, ellipsis string, budget, floor int) (string, int) {
	if floor < 0 {
		floor = 0
	}
	if label == "" {
		return "", floor
	}
	display, width := label, m.StringWidth(label)
	if budget >= 0 && width > budget {
		display, width = truncate(label, m, ellipsis, budget)
	}
	return display, max(width, floor)
}

// truncate returns the longest cluster prefix of label that fits budget
// together with the ellipsis. When no prefix fits, the ellipsis alone is
// returned if it fits, otherwise the empty string.
func truncate(label string, m Metrics, ellipsis string, budget int) (string, int) {
	ends := clusterEnds(label)
	for n := len(ends) - 1; n > 0; n-- {
		candidate := label[:ends[n-1]] + ellipsis
		if w := m.StringWidth(candidate); w <= budget {
			return candidate, w
		}
	}
	if w := m.StringWidth(ellipsis); w <= budget {
		return ellipsis, w
	}
	return "", 0
}

// clusterEnds lists the byte offset at which each grapheme cluster ends.
func clusterEnds(s string) []int {
	ends := make([]int, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		ends = append(ends, to)
	}
	return ends
}

// Shaper produces display labels for the layout table.
type Shaper interface {
	Shape(label string, budget, floor int) (string, int)
}

type shaped struct {
	display string
	width   int
}

// ShapeCache memoises Shape results for one set of metrics. Changing the
// metrics or the ellipsis flushes every entry.
type ShapeCache struct {
	store    *cache.Cache
	metrics  Metrics
	ellipsis string
}

// NewShapeCache returns an empty cache measuring with m.
func NewShapeCache(m Metrics) *ShapeCache {
	if m == nil {
		m = DefaultMetrics()
	}
	return &ShapeCache{
		store:    cache.New(cache.NoExpiration, 0),
		metrics:  m,
		ellipsis: Ellipsis,
	}
}

// Shape returns the cached result for the arguments, computing it on miss.
func (c *ShapeCache) Shape(label string, budget, floor int) (string, int) {
	key := fmt.Sprintf("%d|%d|%s", budget, floor, label)
	if v, ok := c.store.Get(key); ok {
		s := v.(shaped)
		return s.display, s.width
	}
	display, width := shape(label, c.metrics, c.ellipsis, budget, floor)
	c.store.Set(key, shaped{display: display, width: width}, cache.NoExpiration)
	return display, width
}

// Metrics returns the measure in use.
func (c *ShapeCache) Metrics() Metrics {
	return c.metrics
}

// SetMetrics replaces the measure and drops every cached label.
func (c *ShapeCache) SetMetrics(m Metrics) {
	if m == nil {
		m = DefaultMetrics()
	}
	c.metrics = m
	c.store.Flush()
}

// SetEllipsis replaces the truncation marker and drops every cached label.
func (c *ShapeCache) SetEllipsis(e string) {
	if e == "" {
		e = Ellipsis
	}
	if e == c.ellipsis {
		return
	}
	c.ellipsis = e
	c.store.Flush()
}

// Flush drops every cached label.
func (c *ShapeCache) Flush() {
	c.store.Flush()
}

// Len reports the number of cached labels.
func (c *ShapeCache) Len() int {
	return c.store.ItemCount()
}
