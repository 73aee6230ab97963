package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionFire                // Space, J
	ActionShield              // X, K
	ActionToggleScroll        // F9
	ActionConfirm             // Enter
	ActionBack                // Escape
	ActionPause               // P
	ActionQuit                // Q, Ctrl+C
	ActionSpawnSaucer         // B (debug)
	ActionSpawnSpider         // N (debug)
	ActionSpawnWalker         // M (debug)
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionFire:         "Fire",
	ActionShield:       "Shield",
	ActionToggleScroll: "ToggleScroll",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionPause:        "Pause",
	ActionQuit:         "Quit",
	ActionSpawnSaucer:  "SpawnSaucer",
	ActionSpawnSpider:  "SpawnSpider",
	ActionSpawnWalker:  "SpawnWalker",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions held or triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Any reports whether any action other than the listed ones is active.
func (f InputFrame) Any(except ...Action) bool {
	for a, on := range f.Actions {
		if !on {
			continue
		}
		skip := false
		for _, e := range except {
			if a == e {
				skip = true
				break
			}
		}
		if !skip {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
