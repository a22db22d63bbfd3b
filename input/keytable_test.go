package input

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-mandel/terminal"
)

func runeEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func TestDefaultKeyTable_Lookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   terminal.Event
		want Action
	}{
		{"q quits", runeEvent('q'), ActionQuit},
		{"ctrl+c quits", keyEvent(terminal.KeyCtrlC), ActionQuit},
		{"plus zooms in", runeEvent('+'), ActionZoomIn},
		{"equal zooms in", runeEvent('='), ActionZoomIn},
		{"minus zooms out", runeEvent('-'), ActionZoomOut},
		{"left arrow", keyEvent(terminal.KeyLeft), ActionPanLeft},
		{"h", runeEvent('h'), ActionPanLeft},
		{"right arrow", keyEvent(terminal.KeyRight), ActionPanRight},
		{"l", runeEvent('l'), ActionPanRight},
		{"up arrow", keyEvent(terminal.KeyUp), ActionPanUp},
		{"k", runeEvent('k'), ActionPanUp},
		{"down arrow", keyEvent(terminal.KeyDown), ActionPanDown},
		{"j", runeEvent('j'), ActionPanDown},
		{"i", runeEvent('i'), ActionIterUp},
		{"d", runeEvent('d'), ActionIterDown},
		{"unbound rune", runeEvent('x'), ActionNone},
		{"uppercase Q is unbound", runeEvent('Q'), ActionNone},
		{"unbound key", keyEvent(terminal.KeyF5), ActionNone},
		{"resize event", terminal.Event{Type: terminal.EventResize, Width: 10, Height: 10}, ActionNone},
		{"mouse event", terminal.Event{Type: terminal.EventMouse}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKeyTable_Help(t *testing.T) {
	want := "Controls: q quit | +=/- zoom | arrows/hjkl move | i/d iterations"
	if got := DefaultKeyTable().Help(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	kt := DefaultKeyTable()
	delete(kt.Keys, terminal.KeyUp)
	delete(kt.Runes, 'i')
	want = "Controls: q quit | +=/- zoom | hjkl move | d iterations"
	if got := kt.Help(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestKeyTable_Validate(t *testing.T) {
	kt := DefaultKeyTable()
	if err := kt.Validate(); err != nil {
		t.Fatalf("Expected default table to validate, got %v", err)
	}

	delete(kt.Runes, 'q')
	if err := kt.Validate(); err != nil {
		t.Errorf("Expected ctrl+c to keep table valid, got %v", err)
	}

	delete(kt.Keys, terminal.KeyCtrlC)
	if err := kt.Validate(); !errors.Is(err, ErrNoQuitBinding) {
		t.Errorf("Expected ErrNoQuitBinding, got %v", err)
	}
}

func TestKeyTable_CloneIsIndependent(t *testing.T) {
	base := DefaultKeyTable()
	c := base.Clone()
	c.Runes['x'] = ActionQuit
	delete(c.Keys, terminal.KeyLeft)

	if _, ok := base.Runes['x']; ok {
		t.Error("Clone shares rune map with base")
	}
	if _, ok := base.Keys[terminal.KeyLeft]; !ok {
		t.Error("Clone shares key map with base")
	}
}

func TestActionNames(t *testing.T) {
	for _, name := range ActionNames() {
		a, ok := ActionByName(name)
		if !ok {
			t.Errorf("ActionByName(%q) failed", name)
			continue
		}
		if a.String() != name {
			t.Errorf("Expected %q, got %q", name, a.String())
		}
	}
	if _, ok := ActionByName("warp"); ok {
		t.Error("Expected unknown action to fail")
	}
	if Action(200).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", Action(200).String())
	}
}
