package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-mandel/terminal"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
w = "pan_up"
s = "pan_down"
plus = "zoom_in"
"=" = "none"
Q = "QUIT"

[special_keys]
page_up = "zoom_in"
PAGE_DOWN = "zoom_out"
`)

	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	wantRunes := map[rune]Action{
		'w': ActionPanUp,
		's': ActionPanDown,
		'+': ActionZoomIn,
		'=': ActionNone,
		'Q': ActionQuit,
	}
	if len(kt.Runes) != len(wantRunes) {
		t.Fatalf("Expected %d rune bindings, got %d", len(wantRunes), len(kt.Runes))
	}
	for r, want := range wantRunes {
		if got := kt.Runes[r]; got != want {
			t.Errorf("Rune %q: expected %v, got %v", r, want, got)
		}
	}

	if kt.Keys[terminal.KeyPageUp] != ActionZoomIn || kt.Keys[terminal.KeyPageDown] != ActionZoomOut {
		t.Errorf("Unexpected special keys: %v", kt.Keys)
	}
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"Syntax", "[keys\nq = ", "keymap parse"},
		{"Unknown action", "[keys]\nq = \"explode\"", "unknown action"},
		{"Long rune key", "[keys]\nqq = \"quit\"", "invalid rune key"},
		{"Non-string value", "[keys]\nq = 3", "value must be string"},
		{"Unknown key name", "[special_keys]\nhyper = \"quit\"", "unknown key name"},
		{"Section not a table", "keys = \"quit\"", "expected table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Expected error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestLoadKeyConfig_Empty(t *testing.T) {
	kt, err := LoadKeyConfig(nil)
	if err != nil {
		t.Fatalf("Expected empty keymap to parse, got %v", err)
	}
	if kt.Runes != nil || kt.Keys != nil {
		t.Errorf("Expected sparse table with nil maps, got %+v", kt)
	}

	merged := MergeKeyTable(DefaultKeyTable(), kt)
	if merged.Help() != DefaultKeyTable().Help() {
		t.Error("Expected empty override to leave defaults intact")
	}
}

func TestMergeKeyTable(t *testing.T) {
	override := &KeyTable{
		Runes: map[rune]Action{
			'=': ActionNone,
			'z': ActionZoomIn,
			'q': ActionIterUp,
		},
		Keys: map[terminal.Key]Action{
			terminal.KeyLeft: ActionNone,
		},
	}

	base := DefaultKeyTable()
	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['=']; ok {
		t.Error("Expected '=' to be unbound")
	}
	if merged.Runes['z'] != ActionZoomIn {
		t.Error("Expected 'z' to zoom in")
	}
	if merged.Runes['q'] != ActionIterUp {
		t.Error("Expected 'q' rebound to iter_up")
	}
	if _, ok := merged.Keys[terminal.KeyLeft]; ok {
		t.Error("Expected left arrow to be unbound")
	}

	// Base untouched
	if base.Runes['='] != ActionZoomIn || base.Runes['q'] != ActionQuit {
		t.Error("MergeKeyTable mutated base")
	}
}

func TestLoadKeyConfigFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	if err := os.WriteFile(good, []byte("[keys]\nx = \"quit\"\nq = \"none\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	kt, err := LoadKeyConfigFile(good)
	if err != nil {
		t.Fatalf("LoadKeyConfigFile failed: %v", err)
	}
	if kt.Runes['x'] != ActionQuit {
		t.Error("Expected 'x' to quit")
	}
	if _, ok := kt.Runes['q']; ok {
		t.Error("Expected 'q' to be unbound")
	}
	if kt.Runes['h'] != ActionPanLeft {
		t.Error("Expected defaults to survive merge")
	}

	noQuit := filepath.Join(dir, "noquit.toml")
	data := "[keys]\nq = \"none\"\n[special_keys]\nctrl_c = \"none\"\n"
	if err := os.WriteFile(noQuit, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeyConfigFile(noQuit); !errors.Is(err, ErrNoQuitBinding) {
		t.Errorf("Expected ErrNoQuitBinding, got %v", err)
	}

	if _, err := LoadKeyConfigFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
