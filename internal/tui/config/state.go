package config

import (
	"strconv"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/config"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Section represents each top-level configuration panel.
type Section int

const (
	SectionStrip Section = iota
	SectionRepeat
	SectionLogging
)

// FieldKind tells a section how to edit a field.
type FieldKind int

const (
	FieldToggle FieldKind = iota
	FieldNumber
)

// Field is one editable setting.
type Field struct {
	Label string
	Help  string
	Kind  FieldKind

	On    bool
	Input textinput.Model

	// DependsOn names a toggle in the same section that must be on for the
	// field to be editable; -1 when the field is always editable.
	DependsOn int
}

// Int parses a number field. Empty or malformed input reports false.
func (f *Field) Int() (int, bool) {
	v, err := strconv.Atoi(stripNullChars(strings.TrimSpace(f.Input.Value())))
	return v, err == nil
}

// SetInt replaces the value of a number field.
func (f *Field) SetInt(v int) {
	f.Input.SetValue(strconv.Itoa(v))
	f.Input.CursorEnd()
}

// FieldsState tracks the fields of one section and which has focus.
type FieldsState struct {
	Fields []Field
	Focus  int
}

// Current returns the focused field.
func (s *FieldsState) Current() *Field {
	if s.Focus < 0 || s.Focus >= len(s.Fields) {
		return nil
	}
	return &s.Fields[s.Focus]
}

// Enabled reports whether field i can be edited.
func (s *FieldsState) Enabled(i int) bool {
	dep := s.Fields[i].DependsOn
	return dep < 0 || s.Fields[dep].On
}

// Strip section fields.
const (
	StripCloseButtons = iota
	StripASCII
	StripMinWidth
	StripMaxWidth
	StripPadding
	StripHeight
	StripButtonWidth
)

// Repeat section fields.
const (
	RepeatInitial = iota
	RepeatInterval
	RepeatBurst
	RepeatStep
	RepeatSnap
)

// Logging section fields.
const (
	LoggingEnabled = iota
	LoggingRetention
)

// ConfigState aggregates all section-specific state objects.
type ConfigState struct {
	Strip   FieldsState
	Repeat  FieldsState
	Logging FieldsState
}

// For returns the state associated with the given section.
func (c *ConfigState) For(section Section) *FieldsState {
	switch section {
	case SectionStrip:
		return &c.Strip
	case SectionRepeat:
		return &c.Repeat
	case SectionLogging:
		return &c.Logging
	default:
		return nil
	}
}

func toggle(label, help string, on bool) Field {
	return Field{Label: label, Help: help, Kind: FieldToggle, On: on, DependsOn: -1}
}

func number(label, help string, value int, th theme.Theme) Field {
	ti := textinput.New()
	configureInput(&ti, th)
	ti.CharLimit = 5
	f := Field{Label: label, Help: help, Kind: FieldNumber, Input: ti, DependsOn: -1}
	f.SetInt(value)
	return f
}

func buildStateFromConfig(cfg *config.Config, th theme.Theme) ConfigState {
	retention := number("Retention Days", "Journals older than this are deleted on startup.", cfg.LogRetentionDays, th)
	retention.DependsOn = LoggingEnabled

	return ConfigState{
		Strip: FieldsState{Fields: []Field{
			toggle("Close Buttons", "Draw a close glyph on every tab.", cfg.CloseButtons),
			toggle("ASCII Glyphs", "Use plain ASCII for arrows and icons.", cfg.ASCIIGlyphs),
			number("Min Tab Width", "Narrow labels are padded to this width. 0 disables.", cfg.MinTabWidth, th),
			number("Max Tab Width", "Longer labels are truncated. 0 disables.", cfg.MaxTabWidth, th),
			number("Chrome Padding", "Cells added around every label.", cfg.ChromePadding, th),
			number("Min Tab Height", "Rows the strip takes at least.", cfg.MinTabHeight, th),
			number("Max Button Width", "Widest a scroll button may grow. 0 disables.", cfg.MaxButtonWidth, th),
		}},
		Repeat: FieldsState{Fields: []Field{
			number("Initial Delay (ms)", "Hold time before a scroll button repeats.", cfg.InitialRepeatMS, th),
			number("Repeat Interval (ms)", "Time between repeated steps.", cfg.RepeatIntervalMS, th),
			number("Repeat Burst", "Steps taken on every repeat.", cfg.RepeatBurst, th),
			number("Scroll Step", "Tabs moved by a single click.", cfg.ScrollStep, th),
			toggle("Snap On Release", "Align the first visible tab when the button is released.", cfg.SnapOnRelease),
		}},
		Logging: FieldsState{Fields: []Field{
			toggle("Session Journal", "Record demo interactions for the log command.", cfg.EnableLogging),
			retention,
		}},
	}
}

// applyState copies the edited values onto cfg. Number fields that do not
// parse leave the old value in place; Validate fixes the rest.
func applyState(state *ConfigState, cfg *config.Config) {
	setInt := func(s *FieldsState, i int, dst *int) {
		if v, ok := s.Fields[i].Int(); ok {
			*dst = v
		}
	}

	cfg.CloseButtons = state.Strip.Fields[StripCloseButtons].On
	cfg.ASCIIGlyphs = state.Strip.Fields[StripASCII].On
	setInt(&state.Strip, StripMinWidth, &cfg.MinTabWidth)
	setInt(&state.Strip, StripMaxWidth, &cfg.MaxTabWidth)
	setInt(&state.Strip, StripPadding, &cfg.ChromePadding)
	setInt(&state.Strip, StripHeight, &cfg.MinTabHeight)
	setInt(&state.Strip, StripButtonWidth, &cfg.MaxButtonWidth)

	setInt(&state.Repeat, RepeatInitial, &cfg.InitialRepeatMS)
	setInt(&state.Repeat, RepeatInterval, &cfg.RepeatIntervalMS)
	setInt(&state.Repeat, RepeatBurst, &cfg.RepeatBurst)
	setInt(&state.Repeat, RepeatStep, &cfg.ScrollStep)
	cfg.SnapOnRelease = state.Repeat.Fields[RepeatSnap].On

	cfg.EnableLogging = state.Logging.Fields[LoggingEnabled].On
	setInt(&state.Logging, LoggingRetention, &cfg.LogRetentionDays)

	cfg.Validate()
}

func configureInput(ti *textinput.Model, th theme.Theme) {
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.Cursor.Style = lipgloss.NewStyle().Background(th.Colors().Accent).Foreground(th.Colors().Background)
	ti.TextStyle = lipgloss.NewStyle().Foreground(th.Colors().Primary)
}

func stripNullChars(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
