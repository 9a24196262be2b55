package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu up, letter up
	ActionDown           // S, Down arrow - menu down, letter down
	ActionLeft           // A, Left arrow - walk left, previous slot
	ActionRight          // D, Right arrow - walk right, next slot
	ActionJump           // Space, W, Up - jump
	ActionCrouch         // S, Down - crouch
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the key presses that arrived during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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

// DefaultHoldTime is how long a key press counts as "held" in seconds.
// Terminals only report presses (and auto-repeat), never releases, so a held
// key is approximated by refreshing a short hold window on every press.
const DefaultHoldTime = 0.35

// Controls turns per-frame key presses into the continuous queries used by
// gameplay plus edge-triggered presses used by menus.
type Controls struct {
	holdTime float64
	held     map[Action]float64 // Remaining hold time per action
	pressed  map[Action]bool    // Presses not consumed yet
}

// NewControls creates a controls tracker. holdTime <= 0 uses DefaultHoldTime.
func NewControls(holdTime float64) *Controls {
	if holdTime <= 0 {
		holdTime = DefaultHoldTime
	}
	return &Controls{
		holdTime: holdTime,
		held:     make(map[Action]float64),
		pressed:  make(map[Action]bool),
	}
}

// Apply records the presses of one input frame.
func (c *Controls) Apply(in InputFrame) {
	for a, on := range in.Actions {
		if !on {
			continue
		}
		c.held[a] = c.holdTime
		c.pressed[a] = true

		// Opposite directions cancel each other immediately.
		switch a {
		case ActionLeft:
			delete(c.held, ActionRight)
		case ActionRight:
			delete(c.held, ActionLeft)
		case ActionJump:
			delete(c.held, ActionCrouch)
		case ActionCrouch:
			delete(c.held, ActionJump)
		}
	}
}

// Update decays hold windows by dt seconds.
func (c *Controls) Update(dt float64) {
	for a, left := range c.held {
		left -= dt
		if left <= 0 {
			delete(c.held, a)
			continue
		}
		c.held[a] = left
	}
}

// Reset drops all held and pending presses.
func (c *Controls) Reset() {
	clear(c.held)
	clear(c.pressed)
}

// Held reports whether an action is currently held.
func (c *Controls) Held(a Action) bool {
	return c.held[a] > 0
}

// IsJumping reports whether jump is held.
func (c *Controls) IsJumping() bool {
	return c.Held(ActionJump)
}

// IsCrouching reports whether crouch is held.
func (c *Controls) IsCrouching() bool {
	return c.Held(ActionCrouch)
}

// HorizontalDirection returns -1, 0 or 1.
func (c *Controls) HorizontalDirection() int {
	dir := 0
	if c.Held(ActionLeft) {
		dir--
	}
	if c.Held(ActionRight) {
		dir++
	}
	return dir
}

// HasMovement reports whether a horizontal direction is held.
func (c *Controls) HasMovement() bool {
	return c.HorizontalDirection() != 0
}

// ConsumeKey returns true once per press of the action and clears it.
func (c *Controls) ConsumeKey(a Action) bool {
	if !c.pressed[a] {
		return false
	}
	delete(c.pressed, a)
	return true
}

// ClearPresses drops unconsumed presses, keeping hold state.
func (c *Controls) ClearPresses() {
	clear(c.pressed)
}
