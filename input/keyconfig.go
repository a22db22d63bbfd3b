package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-mandel/terminal"
)

// Rune aliases for keys that are awkward as bare TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"plus":      '+',
	"minus":     '-',
	"equal":     '=',
	"backslash": '\\',
}

// TOML section names
const (
	sectionKeys        = "keys"         // single character -> action
	sectionSpecialKeys = "special_keys" // terminal key name -> action
)

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated; other top-level entries are ignored
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if sectionData, ok := raw[sectionKeys]; ok {
		sectionMap, ok := sectionData.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [%s]: expected table, got %T", sectionKeys, sectionData)
		}
		runes, err := parseRuneSection(sectionKeys, sectionMap)
		if err != nil {
			return nil, err
		}
		kt.Runes = runes
	}

	if sectionData, ok := raw[sectionSpecialKeys]; ok {
		sectionMap, ok := sectionData.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [%s]: expected table, got %T", sectionSpecialKeys, sectionData)
		}
		keys, err := parseSpecialKeySection(sectionSpecialKeys, sectionMap)
		if err != nil {
			return nil, err
		}
		kt.Keys = keys
	}

	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the default table
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}

	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	if err := kt.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kt, nil
}

// parseRuneSection parses a TOML section of rune key -> action name bindings
func parseRuneSection(section string, data map[string]any) (map[rune]Action, error) {
	result := make(map[rune]Action, len(data))

	for keyStr, val := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		action, err := resolveValue(val)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = action
	}

	return result, nil
}

// parseSpecialKeySection parses a TOML section of terminal.Key name -> action name bindings
func parseSpecialKeySection(section string, data map[string]any) (map[terminal.Key]Action, error) {
	result := make(map[terminal.Key]Action, len(data))

	for keyStr, val := range data {
		k, ok := terminal.KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		action, err := resolveValue(val)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[k] = action
	}

	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveValue converts a TOML value to an Action
func resolveValue(val any) (Action, error) {
	name, ok := val.(string)
	if !ok {
		return ActionNone, fmt.Errorf("value must be string, got %T", val)
	}

	name = strings.ToLower(strings.TrimSpace(name))
	action, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return action, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
