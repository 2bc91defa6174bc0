package input

import (
	"fmt"
	"strings"
)

// Byte aliases for keys that can't be bare single-char TOML keys
var byteAliases = map[string][]byte{
	"space":     {' '},
	"enter":     {'\r', '\n'},
	"return":    {'\r', '\n'},
	"tab":       {'\t'},
	"esc":       {0x1b},
	"escape":    {0x1b},
	"plus":      {'+'},
	"minus":     {'-'},
	"backslash": {'\\'},
}

// LoadKeyConfig turns [keys.<phase>] sections of key → action name into a sparse override KeyTable
// Only sections/keys present are populated
// Returns error on unknown sections, action names or key names
func LoadKeyConfig(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	for name, bindings := range sections {
		phase, ok := phaseByName(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown section [%s]", name)
		}

		m, err := parseSection(name, bindings)
		if err != nil {
			return nil, err
		}
		kt.setSection(phase, m)
	}

	return kt, nil
}

func phaseByName(name string) (Phase, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, s := range phaseSections {
		if s == name {
			return Phase(p), true
		}
	}
	return 0, false
}

// parseSection parses a section of key → action name bindings
func parseSection(section string, data map[string]string) (map[byte]Action, error) {
	result := make(map[byte]Action, len(data))

	for keyStr, actionName := range data {
		keys, err := resolveKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[%s] key %q: unknown action: %q", section, keyStr, actionName)
		}

		for _, k := range keys {
			result[k] = action
		}
	}

	return result, nil
}

// resolveKey converts a TOML key string to input bytes
// Accepts single ASCII characters and named aliases
func resolveKey(s string) ([]byte, error) {
	// Named alias
	if b, ok := byteAliases[strings.ToLower(s)]; ok {
		return b, nil
	}

	// Single byte
	if len(s) == 1 {
		return []byte{s[0]}, nil
	}

	return nil, fmt.Errorf("invalid key: %q (expected single ASCII character or alias)", s)
}
