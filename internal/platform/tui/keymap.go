package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// KeyMap defines the terminal key bindings. Each binding feeds one or more
// game actions; see Actions.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Fire        key.Binding
	SwitchLeft  key.Binding
	SwitchRight key.Binding
	Dash        key.Binding
	Bomb        key.Binding
	Pause       key.Binding
	Shop        key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Help        key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.SwitchLeft, k.SwitchRight, k.Dash, k.Bomb, k.Pause, k.Shop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.SwitchLeft, k.SwitchRight, k.Dash, k.Bomb},
		{k.Pause, k.Shop, k.Confirm, k.Back, k.Help},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Terminals report no bare
// modifier presses, so dash lives on K and X instead of Shift.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "j"),
			key.WithHelp("space/j", "fire"),
		),
		SwitchLeft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "prev weapon"),
		),
		SwitchRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "next weapon"),
		),
		Dash: key.NewBinding(
			key.WithKeys("k", "x", "K"),
			key.WithHelp("k/x", "dash"),
		),
		Bomb: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bomb"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Shop: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "shop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "how to play"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Actions translates a key message into game actions. Arrow keys drive both
// movement and menu navigation; Esc both pauses and backs out, and the game
// picks whichever its current screen understands.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	add := func(b key.Binding, actions ...core.Action) {
		if key.Matches(msg, b) {
			out = append(out, actions...)
		}
	}

	add(k.Up, core.ActionMoveUp, core.ActionMenuUp)
	add(k.Down, core.ActionMoveDown, core.ActionMenuDown)
	add(k.Left, core.ActionMoveLeft)
	add(k.Right, core.ActionMoveRight)
	add(k.Fire, core.ActionFire)
	add(k.SwitchLeft, core.ActionSwitchLeft)
	add(k.SwitchRight, core.ActionSwitchRight)
	add(k.Dash, core.ActionDash)
	add(k.Bomb, core.ActionBomb)
	add(k.Pause, core.ActionPause)
	add(k.Shop, core.ActionShop)
	add(k.Confirm, core.ActionConfirm)
	add(k.Back, core.ActionCancel)
	add(k.Help, core.ActionHelp)
	return out
}
