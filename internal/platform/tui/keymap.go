package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/virus-defense/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Shoot     key.Binding
	Switch    key.Binding
	Weapon1   key.Binding
	Weapon2   key.Binding
	Weapon3   key.Binding
	Weapon4   key.Binding
	ToggleKey key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Back      key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "shoot"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "s", "down"),
			key.WithHelp("tab", "next weapon"),
		),
		Weapon1:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "spiky ball")),
		Weapon2:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "ball")),
		Weapon3:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "star")),
		Weapon4:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "arrow")),
		ToggleKey: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "weapon key")),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/submit"),
		),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "home"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot, k.Switch},
		{k.Weapon1, k.Weapon2, k.Weapon3, k.Weapon4, k.ToggleKey},
		{k.Confirm, k.Back, k.Restart, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame updates an input frame based on a key message.
// With textInput set, printable keys are typed into the frame instead of
// being treated as commands, so only ctrl+c quits.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, textInput bool) bool {
	if msg.Type == tea.KeyCtrlC {
		return true
	}

	if textInput {
		switch {
		case key.Matches(msg, km.keys.Confirm):
			frame.Set(core.ActionConfirm)
		case key.Matches(msg, km.keys.Backspace):
			frame.Set(core.ActionBackspace)
		case key.Matches(msg, km.keys.Back):
			frame.Set(core.ActionBack)
		case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
			for _, r := range msg.Runes {
				frame.Type(r)
			}
			if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
				frame.Type(' ')
			}
		}
		return false
	}

	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Shoot):
		frame.Set(core.ActionShoot)
	case key.Matches(msg, k.Switch):
		frame.Set(core.ActionSwitchWeapon)
	case key.Matches(msg, k.Weapon1):
		frame.Set(core.ActionWeapon1)
	case key.Matches(msg, k.Weapon2):
		frame.Set(core.ActionWeapon2)
	case key.Matches(msg, k.Weapon3):
		frame.Set(core.ActionWeapon3)
	case key.Matches(msg, k.Weapon4):
		frame.Set(core.ActionWeapon4)
	case key.Matches(msg, k.ToggleKey):
		frame.Set(core.ActionToggleKey)
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Back):
		frame.Set(core.ActionBack)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
