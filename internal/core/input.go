package core

// Action is what a key means to the game, independent of the key itself.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Deflect the stick up
	ActionDown           // Deflect the stick down
	ActionLeft           // Deflect the stick left
	ActionRight          // Deflect the stick right
	ActionButton         // Press the stick button
	ActionRestart        // Start over after game over
	ActionQuit           // Leave the program
	ActionPause          // Toggle pause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionButton:  "Button",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action deflects the stick.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions seen between two ticks.
type InputFrame struct {
	Actions map[Action]bool
	// Last is the latest direction in the frame. When two directions arrive
	// before a tick, the later one steers.
	Last Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.Last = a
	}
}

// Has reports whether a was recorded. A zero frame has nothing.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Last = ActionNone
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for a, on := range f.Actions {
		c.Actions[a] = on
	}
	c.Last = f.Last
	return c
}
