package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents like "move left" or "shoot" and never see raw key events.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // A, Left arrow - move one lane left
	ActionRight               // D, Right arrow - move one lane right
	ActionShoot               // Space, W, Up - fire the current weapon
	ActionSwitchWeapon        // Tab, S, Down - cycle to the next weapon
	ActionWeapon1             // 1 - select SpikyBall
	ActionWeapon2             // 2 - select Ball
	ActionWeapon3             // 3 - select Star
	ActionWeapon4             // 4 - select Arrow
	ActionConfirm             // Enter - start game / submit quiz answer
	ActionBackspace           // Backspace - delete last typed character
	ActionBack                // Escape - return to the home screen
	ActionRestart             // R - restart after game over
	ActionToggleKey           // I - toggle the weapon legend
	ActionQuit                // Q, Ctrl+C - exit session
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionShoot:        "Shoot",
	ActionSwitchWeapon: "SwitchWeapon",
	ActionWeapon1:      "Weapon1",
	ActionWeapon2:      "Weapon2",
	ActionWeapon3:      "Weapon3",
	ActionWeapon4:      "Weapon4",
	ActionConfirm:      "Confirm",
	ActionBackspace:    "Backspace",
	ActionBack:         "Back",
	ActionRestart:      "Restart",
	ActionToggleKey:    "ToggleKey",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus any text
// typed while the game accepts free-form input.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text holds runes typed this frame, in order. Only filled while the
	// game reports GameState.TextInput.
	Text []rune
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

// Type appends a typed rune to this frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether the frame carries neither actions nor text.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets all actions and text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Text) > 0 {
		clone.Text = append([]rune(nil), f.Text...)
	}
	return clone
}
