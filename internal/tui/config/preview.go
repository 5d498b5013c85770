package config

import (
	"fmt"
	"time"

	"github.com/Digital-Shane/scroll-tabs/internal/config"
	"github.com/Digital-Shane/scroll-tabs/internal/tabs"
)

// previewLabels are the tabs shown in the live preview. The long one shows
// truncation once a maximum width is set.
var previewLabels = []string{
	"Test Tab 1",
	"Interaction Test",
	"Color Change Tab",
	"A Considerably Longer Label",
	"Filler Tab 5",
	"Filler Tab 6",
	"Filler Tab 7",
	"Tab Index",
}

type preview struct {
	label string
	value string
}

// buildPreviews summarises what the edited settings do.
func buildPreviews(section Section, cfg *config.Config) []preview {
	switch section {
	case SectionRepeat:
		hold := time.Duration(cfg.InitialRepeatMS) * time.Millisecond
		every := time.Duration(cfg.RepeatIntervalMS) * time.Millisecond
		perSecond := 0
		if every > 0 {
			perSecond = int(time.Second/every) * cfg.RepeatBurst
		}
		return []preview{
			{"Click", fmt.Sprintf("moves %d tab(s)", cfg.ScrollStep)},
			{"Hold", fmt.Sprintf("repeats after %s", hold)},
			{"Speed", fmt.Sprintf("about %d steps per second", perSecond)},
		}
	case SectionLogging:
		status := "Disabled"
		if cfg.EnableLogging {
			status = "Enabled"
		}
		return []preview{
			{"Journal", status},
			{"Retention", fmt.Sprintf("%d days", cfg.LogRetentionDays)},
			{"Location", "~/.scroll-tabs/logs/"},
		}
	}
	return nil
}

// renderStrip draws a tab strip built from cfg into width cells, scrolled
// so the selected tab is visible.
func renderStrip(cfg *config.Config, width int) string {
	if width <= 0 {
		return ""
	}
	opts := cfg.TabOptions()
	rows := max(opts.MinTabHeight, 1)

	strip := tabs.New(
		tabs.WithOptions(opts),
		tabs.WithTheme(cfg.Theme()),
		tabs.WithBounds(tabs.Rect{W: width, H: rows}),
	)
	for _, label := range previewLabels {
		strip.Add(tabs.NewPane(label, tabs.Rect{Y: rows, W: width, H: 1}))
	}
	strip.SelectIndex(1)
	strip.BringIntoView(1)
	return strip.View()
}
