package input

import (
	"errors"
	"sort"
	"strings"

	"github.com/lixenwraith/vi-mandel/terminal"
)

// ErrNoQuitBinding is returned when a key table leaves no way to exit
var ErrNoQuitBinding = errors.New("keymap has no quit binding")

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable characters
	Runes map[rune]Action

	// Special keys (arrows, Ctrl+*, function keys)
	Keys map[terminal.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'q': ActionQuit,
			'+': ActionZoomIn,
			'=': ActionZoomIn,
			'-': ActionZoomOut,
			'h': ActionPanLeft,
			'l': ActionPanRight,
			'k': ActionPanUp,
			'j': ActionPanDown,
			'i': ActionIterUp,
			'd': ActionIterDown,
		},
		Keys: map[terminal.Key]Action{
			terminal.KeyCtrlC: ActionQuit,
			terminal.KeyLeft:  ActionPanLeft,
			terminal.KeyRight: ActionPanRight,
			terminal.KeyUp:    ActionPanUp,
			terminal.KeyDown:  ActionPanDown,
		},
	}
}

// Lookup resolves an event to an action; non-key and unbound events yield ActionNone
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// Validate checks the table can still exit the program
func (kt *KeyTable) Validate() error {
	for _, a := range kt.Runes {
		if a == ActionQuit {
			return nil
		}
	}
	for _, a := range kt.Keys {
		if a == ActionQuit {
			return nil
		}
	}
	return ErrNoQuitBinding
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: cloneMap(kt.Runes),
		Keys:  cloneMap(kt.Keys),
	}
}

func cloneMap[K comparable](m map[K]Action) map[K]Action {
	c := make(map[K]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// runesFor returns the sorted runes bound to an action as one string
func (kt *KeyTable) runesFor(a Action) string {
	var rs []rune
	for r, bound := range kt.Runes {
		if bound == a {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}

// arrowsBound reports whether all four arrow keys pan in their own direction
func (kt *KeyTable) arrowsBound() bool {
	return kt.Keys[terminal.KeyLeft] == ActionPanLeft &&
		kt.Keys[terminal.KeyRight] == ActionPanRight &&
		kt.Keys[terminal.KeyUp] == ActionPanUp &&
		kt.Keys[terminal.KeyDown] == ActionPanDown
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Help renders the controls line from the current bindings
// Default table: "Controls: q quit | +=/- zoom | arrows/hjkl move | i/d iterations"
func (kt *KeyTable) Help() string {
	var parts []string
	add := func(keys, label string) {
		if keys != "" {
			parts = append(parts, keys+" "+label)
		}
	}

	add(kt.runesFor(ActionQuit), "quit")
	add(joinNonEmpty("/", kt.runesFor(ActionZoomIn), kt.runesFor(ActionZoomOut)), "zoom")

	// Vi order: left, down, up, right
	move := kt.runesFor(ActionPanLeft) + kt.runesFor(ActionPanDown) +
		kt.runesFor(ActionPanUp) + kt.runesFor(ActionPanRight)
	if kt.arrowsBound() {
		move = joinNonEmpty("/", "arrows", move)
	}
	add(move, "move")

	add(joinNonEmpty("/", kt.runesFor(ActionIterUp), kt.runesFor(ActionIterDown)), "iterations")

	return "Controls: " + strings.Join(parts, " | ")
}
