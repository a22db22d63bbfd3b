package terminal

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventMouse
	EventInterrupt
	EventError
	EventClosed
)

// Event is a translated terminal event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// tcellKeys maps tcell special keys to Key; unlisted keys translate to KeyNone
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlC: KeyCtrlC,
	tcell.KeyCtrlD: KeyCtrlD,
	tcell.KeyCtrlL: KeyCtrlL,
	tcell.KeyCtrlQ: KeyCtrlQ,
	tcell.KeyCtrlZ: KeyCtrlZ,
}

// ctrlRunes resolves Ctrl+letter delivered as a rune with the Ctrl modifier
var ctrlRunes = map[rune]Key{
	'c': KeyCtrlC,
	'd': KeyCtrlD,
	'l': KeyCtrlL,
	'q': KeyCtrlQ,
	'z': KeyCtrlZ,
}

func translateModifiers(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// translateEvent converts a tcell event; nil means the screen was finalized
func translateEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		out := Event{Type: EventKey, Modifiers: translateModifiers(ev.Modifiers())}
		if ev.Key() == tcell.KeyRune {
			if k, ok := ctrlRunes[unicode.ToLower(ev.Rune())]; ok && out.Modifiers&ModCtrl != 0 {
				out.Key = k
				return out
			}
			out.Key = KeyRune
			out.Rune = ev.Rune()
		} else {
			out.Key = tcellKeys[ev.Key()]
		}
		return out
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventMouse:
		return Event{Type: EventMouse}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	case *tcell.EventError:
		return Event{Type: EventError, Err: fmt.Errorf("terminal event: %s", ev.Error())}
	default:
		return Event{Type: EventNone}
	}
}
