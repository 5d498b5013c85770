package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Digital-Shane/scroll-tabs/internal/tabs"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/theme"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCROLL_TABS_MAX_TAB_WIDTH.
const EnvPrefix = "SCROLL_TABS"

// Config holds the user preferences for the tab strip and the journal
type Config struct {
	CloseButtons     bool `json:"close_buttons" mapstructure:"close_buttons"`
	MinTabWidth      int  `json:"min_tab_width" mapstructure:"min_tab_width"`
	MaxTabWidth      int  `json:"max_tab_width" mapstructure:"max_tab_width"`
	ChromePadding    int  `json:"chrome_padding" mapstructure:"chrome_padding"`
	MinTabHeight     int  `json:"min_tab_height" mapstructure:"min_tab_height"`
	MaxButtonWidth   int  `json:"max_button_width" mapstructure:"max_button_width"`
	InitialRepeatMS  int  `json:"initial_repeat_ms" mapstructure:"initial_repeat_ms"`
	RepeatIntervalMS int  `json:"repeat_interval_ms" mapstructure:"repeat_interval_ms"`
	RepeatBurst      int  `json:"repeat_burst" mapstructure:"repeat_burst"`
	ScrollStep       int  `json:"scroll_step" mapstructure:"scroll_step"`
	SnapOnRelease    bool `json:"snap_on_release" mapstructure:"snap_on_release"`
	ASCIIGlyphs      bool `json:"ascii_glyphs" mapstructure:"ascii_glyphs"`

	EnableLogging    bool `json:"enable_logging" mapstructure:"enable_logging"`
	LogRetentionDays int  `json:"log_retention_days" mapstructure:"log_retention_days"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := tabs.DefaultOptions()
	return &Config{
		CloseButtons:     opts.CloseButtons,
		MinTabWidth:      opts.MinTabWidth,
		MaxTabWidth:      24,
		ChromePadding:    opts.ChromePadding,
		MinTabHeight:     opts.MinTabHeight,
		MaxButtonWidth:   opts.MaxButtonWidth,
		InitialRepeatMS:  int(opts.InitialRepeat / time.Millisecond),
		RepeatIntervalMS: int(opts.RepeatInterval / time.Millisecond),
		RepeatBurst:      opts.RepeatBurst,
		ScrollStep:       opts.ScrollStep,
		SnapOnRelease:    opts.SnapOnRelease,
		ASCIIGlyphs:      false,
		EnableLogging:    true,
		LogRetentionDays: 30,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".scroll-tabs", "config.json"), nil
}

// Load reads the configuration from the default path
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields the
// defaults; SCROLL_TABS_* environment variables override both.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Validate()
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("close_buttons", cfg.CloseButtons)
	v.SetDefault("min_tab_width", cfg.MinTabWidth)
	v.SetDefault("max_tab_width", cfg.MaxTabWidth)
	v.SetDefault("chrome_padding", cfg.ChromePadding)
	v.SetDefault("min_tab_height", cfg.MinTabHeight)
	v.SetDefault("max_button_width", cfg.MaxButtonWidth)
	v.SetDefault("initial_repeat_ms", cfg.InitialRepeatMS)
	v.SetDefault("repeat_interval_ms", cfg.RepeatIntervalMS)
	v.SetDefault("repeat_burst", cfg.RepeatBurst)
	v.SetDefault("scroll_step", cfg.ScrollStep)
	v.SetDefault("snap_on_release", cfg.SnapOnRelease)
	v.SetDefault("ascii_glyphs", cfg.ASCIIGlyphs)
	v.SetDefault("enable_logging", cfg.EnableLogging)
	v.SetDefault("log_retention_days", cfg.LogRetentionDays)
}

// Save writes the configuration to the default path
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return cfg.SaveTo(path)
}

// SaveTo writes the configuration to path, creating its directory.
func (cfg *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate replaces values the strip cannot work with. It reports whether
// anything was changed.
func (cfg *Config) Validate() bool {
	defaults := DefaultConfig()
	changed := false
	fix := func(bad bool, field *int, value int) {
		if bad {
			*field = value
			changed = true
		}
	}

	fix(cfg.MinTabWidth < 0, &cfg.MinTabWidth, 0)
	fix(cfg.MaxTabWidth < 0, &cfg.MaxTabWidth, 0)
	fix(cfg.MaxTabWidth > 0 && cfg.MaxTabWidth < cfg.MinTabWidth, &cfg.MaxTabWidth, cfg.MinTabWidth)
	fix(cfg.ChromePadding < 0, &cfg.ChromePadding, 0)
	fix(cfg.MinTabHeight < 1, &cfg.MinTabHeight, 1)
	fix(cfg.MaxButtonWidth < 0, &cfg.MaxButtonWidth, 0)
	fix(cfg.InitialRepeatMS <= 0, &cfg.InitialRepeatMS, defaults.InitialRepeatMS)
	fix(cfg.RepeatIntervalMS <= 0, &cfg.RepeatIntervalMS, defaults.RepeatIntervalMS)
	fix(cfg.RepeatBurst <= 0, &cfg.RepeatBurst, defaults.RepeatBurst)
	fix(cfg.ScrollStep <= 0, &cfg.ScrollStep, defaults.ScrollStep)
	fix(cfg.LogRetentionDays <= 0, &cfg.LogRetentionDays, defaults.LogRetentionDays)

	return changed
}

// TabOptions converts the configuration into tab container options.
func (cfg *Config) TabOptions() tabs.Options {
	opts := tabs.DefaultOptions()
	opts.CloseButtons = cfg.CloseButtons
	opts.MinTabWidth = cfg.MinTabWidth
	opts.MaxTabWidth = cfg.MaxTabWidth
	opts.ChromePadding = cfg.ChromePadding
	opts.MinTabHeight = cfg.MinTabHeight
	opts.MaxButtonWidth = cfg.MaxButtonWidth
	opts.InitialRepeat = time.Duration(cfg.InitialRepeatMS) * time.Millisecond
	opts.RepeatInterval = time.Duration(cfg.RepeatIntervalMS) * time.Millisecond
	opts.RepeatBurst = cfg.RepeatBurst
	opts.ScrollStep = cfg.ScrollStep
	opts.SnapOnRelease = cfg.SnapOnRelease
	return opts
}

// Theme builds the theme the configuration asks for.
func (cfg *Config) Theme(opts ...theme.Option) theme.Theme {
	if cfg.ASCIIGlyphs {
		opts = append([]theme.Option{theme.WithASCII()}, opts...)
	}
	return theme.New(opts...)
}
