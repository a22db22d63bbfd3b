package input

// Action is a semantic viewer command produced by a key
type Action uint8

const (
	ActionNone Action = iota // Unbound key, or the "none" unbind sentinel in keymaps
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionIterUp
	ActionIterDown
	actionCount
)

// actionNames holds canonical names used by keymap files and logs
var actionNames = [actionCount]string{
	ActionNone:     "none",
	ActionQuit:     "quit",
	ActionZoomIn:   "zoom_in",
	ActionZoomOut:  "zoom_out",
	ActionPanLeft:  "pan_left",
	ActionPanRight: "pan_right",
	ActionPanUp:    "pan_up",
	ActionPanDown:  "pan_down",
	ActionIterUp:   "iter_up",
	ActionIterDown: "iter_down",
}

// actionRegistry maps canonical names back to actions
// Used by keymap config loader to resolve TOML action strings
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, actionCount)
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// String returns the canonical action name
func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all canonical action names in declaration order
func ActionNames() []string {
	names := make([]string, len(actionNames))
	copy(names, actionNames[:])
	return names
}
