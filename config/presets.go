package config

import (
	"fmt"

	"github.com/lixenwraith/term-life/input"
	"github.com/lixenwraith/term-life/parameter"
)

// Preset names
const (
	PresetRusty = "rusty"
	PresetTidy  = "tidy"
)

// PresetNames lists the built-in presets
var PresetNames = []string{PresetRusty, PresetTidy}

// Preset returns a fresh copy of a built-in configuration
// Its KeyTable is unset until the config is finished
func Preset(name string) (*Config, error) {
	switch name {
	case PresetRusty:
		return rusty(), nil
	case PresetTidy:
		return tidy(), nil
	}
	return nil, fmt.Errorf("config: unknown preset %q (want one of %v)", name, PresetNames)
}

func presetKeys(name string) (*input.KeyTable, error) {
	switch name {
	case PresetRusty:
		return input.DefaultKeyTable(), nil
	case PresetTidy:
		return input.TidyKeyTable(), nil
	}
	return nil, fmt.Errorf("config: unknown preset %q (want one of %v)", name, PresetNames)
}

// rusty uses a one-cell margin, 'p' to start and pause and a 10ms floor
func rusty() *Config {
	return &Config{
		Preset:  PresetRusty,
		Backend: BackendANSI,
		Timing: Timing{
			Delay:          Duration{parameter.DefaultDelay},
			DelayStep:      Duration{parameter.DelayStep},
			MinDelay:       Duration{parameter.MinDelayRusty},
			EditInterval:   Duration{parameter.EditInterval},
			PollInterval:   Duration{parameter.PollInterval},
			NoticeDuration: Duration{parameter.NoticeDuration},
		},
		Glyphs: Glyphs{
			Alive:     string(parameter.GlyphAlive),
			DeadEdit:  string(parameter.GlyphDeadEdit),
			DeadRun:   string(parameter.GlyphDeadRun),
			Cursor:    string(parameter.GlyphCursor),
			CellColor: -1,
		},
		Layout: Layout{
			Margin: parameter.MarginRusty,
			BarRow: parameter.BarRow,
		},
		Text: Text{
			SplashTitle:  parameter.SplashTitle,
			SplashPrompt: parameter.SplashPrompt,
			EditBar:      parameter.EditBarRusty,
			PauseBar:     parameter.PauseBar,
			RunHint:      parameter.RunHintRusty,
			SizeNotice:   parameter.SizeNotice,
		},
	}
}

// tidy leaves a blank row under the bar, adds diagonals and floors the delay at 50ms
func tidy() *Config {
	c := rusty()
	c.Preset = PresetTidy
	c.Timing.MinDelay = Duration{parameter.MinDelayTidy}
	c.Glyphs.Alive = string(parameter.GlyphAliveTidy)
	c.Glyphs.DeadEdit = string(parameter.GlyphDeadTidy)
	c.Glyphs.Cursor = string(parameter.GlyphCursorTidy)
	c.Layout.Margin = parameter.MarginTidy
	c.Text.EditBar = parameter.EditBarTidy
	c.Text.RunHint = parameter.RunHintTidy
	return c
}
