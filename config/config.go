// Package config resolves presets, the optional TOML config file and validation into one Config.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/term-life/input"
)

// Backends
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Duration decodes Go duration strings ("100ms") from TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Timing controls generation pacing and polling
type Timing struct {
	Delay          Duration `toml:"delay"`
	DelayStep      Duration `toml:"delay_step"`
	MinDelay       Duration `toml:"min_delay"`
	EditInterval   Duration `toml:"edit_interval"`
	PollInterval   Duration `toml:"poll_interval"`
	NoticeDuration Duration `toml:"notice_duration"`
}

// Glyphs are single-character strings in TOML
type Glyphs struct {
	Alive    string `toml:"alive"`
	DeadEdit string `toml:"dead_edit"`
	DeadRun  string `toml:"dead_run"`
	Cursor   string `toml:"cursor"`
	// CellColor is an xterm-256 palette index, -1 for the terminal default
	CellColor int `toml:"cell_color"`
}

// Layout positions the world and the bar
type Layout struct {
	Margin int `toml:"margin"`
	BarRow int `toml:"bar_row"`
}

// Text holds the bar and splash strings
type Text struct {
	SplashTitle  string `toml:"splash_title"`
	SplashPrompt string `toml:"splash_prompt"`
	EditBar      string `toml:"edit_bar"`
	PauseBar     string `toml:"pause_bar"`
	RunHint      string `toml:"run_hint"`
	SizeNotice   string `toml:"size_notice"`
}

// Audio toggles click feedback
type Audio struct {
	Enabled bool `toml:"enabled"`
	// Volume is a base-2 gain: 0 unchanged, -1 half, 1 double
	Volume float64 `toml:"volume"`
}

// Config is the resolved runtime configuration
type Config struct {
	Preset  string `toml:"preset"`
	Backend string `toml:"backend"`
	Timing  Timing `toml:"timing"`
	Glyphs  Glyphs `toml:"glyphs"`
	Layout  Layout `toml:"layout"`
	Text    Text   `toml:"text"`
	Audio   Audio  `toml:"audio"`

	// Keys holds [keys.<phase>] overrides as written in the file
	Keys map[string]map[string]string `toml:"keys"`

	// KeyTable is the preset table merged with Keys
	KeyTable *input.KeyTable `toml:"-"`
}

// Load reads path (if non-empty) over the preset it names, or over preset when given
// An explicit preset argument wins over the file's preset key
func Load(path, preset string) (*Config, error) {
	if path == "" {
		name := preset
		if name == "" {
			name = PresetRusty
		}
		cfg, err := Preset(name)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.finish()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, preset)
}

// Parse decodes TOML data over a preset
func Parse(data []byte, preset string) (*Config, error) {
	// First pass only to find the preset the file builds on
	var head struct {
		Preset string `toml:"preset"`
	}
	if _, err := toml.Decode(string(data), &head); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}

	name := preset
	if name == "" {
		name = head.Preset
	}
	if name == "" {
		name = PresetRusty
	}

	cfg, err := Preset(name)
	if err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Preset = name

	return cfg, cfg.finish()
}

// finish merges key overrides and validates
func (c *Config) finish() error {
	base, err := presetKeys(c.Preset)
	if err != nil {
		return err
	}
	if len(c.Keys) > 0 {
		override, err := input.LoadKeyConfig(c.Keys)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		c.KeyTable = input.MergeKeyTable(base, override)
	} else {
		c.KeyTable = base
	}
	return c.Validate()
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	t := c.Timing
	switch {
	case t.Delay.Duration <= 0:
		return fmt.Errorf("config: timing.delay must be positive, got %v", t.Delay.Duration)
	case t.DelayStep.Duration <= 0:
		return fmt.Errorf("config: timing.delay_step must be positive, got %v", t.DelayStep.Duration)
	case t.MinDelay.Duration <= 0:
		return fmt.Errorf("config: timing.min_delay must be positive, got %v", t.MinDelay.Duration)
	case t.MinDelay.Duration > t.Delay.Duration:
		return fmt.Errorf("config: timing.min_delay %v exceeds timing.delay %v", t.MinDelay.Duration, t.Delay.Duration)
	case t.EditInterval.Duration < 0 || t.PollInterval.Duration <= 0 || t.NoticeDuration.Duration < 0:
		return fmt.Errorf("config: timing intervals must not be negative and poll_interval must be positive")
	}

	glyphs := []struct {
		name, value string
	}{
		{"glyphs.alive", c.Glyphs.Alive},
		{"glyphs.dead_edit", c.Glyphs.DeadEdit},
		{"glyphs.dead_run", c.Glyphs.DeadRun},
		{"glyphs.cursor", c.Glyphs.Cursor},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("config: %s must be exactly one character, got %q", g.name, g.value)
		}
	}
	if c.Glyphs.Alive == c.Glyphs.DeadEdit || c.Glyphs.Alive == c.Glyphs.DeadRun {
		return fmt.Errorf("config: alive and dead glyphs must differ")
	}
	if c.Glyphs.CellColor < -1 || c.Glyphs.CellColor > 255 {
		return fmt.Errorf("config: glyphs.cell_color must be -1..255, got %d", c.Glyphs.CellColor)
	}

	if c.Layout.Margin < 1 {
		return fmt.Errorf("config: layout.margin must be at least 1 to leave room for the bar, got %d", c.Layout.Margin)
	}
	if c.Layout.BarRow < 0 || c.Layout.BarRow >= c.Layout.Margin {
		return fmt.Errorf("config: layout.bar_row %d must be above the world (margin %d)", c.Layout.BarRow, c.Layout.Margin)
	}

	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Backend, BackendANSI, BackendTcell)
	}

	if c.Audio.Volume < -8 || c.Audio.Volume > 2 {
		return fmt.Errorf("config: audio.volume must be within -8..2, got %v", c.Audio.Volume)
	}

	if c.KeyTable == nil {
		return fmt.Errorf("config: no key table")
	}
	return c.KeyTable.Validate()
}

// Rune returns the first rune of a validated glyph string
func Rune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
