package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends map keys and gamepad buttons onto these; the game never sees raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveUp             // W, Up arrow
	ActionMoveDown           // S, Down arrow
	ActionMoveLeft           // A, Left arrow
	ActionMoveRight          // D, Right arrow
	ActionFire               // Space, J
	ActionSwitchLeft         // Q
	ActionSwitchRight        // E
	ActionDash               // Shift, K
	ActionBomb               // B
	ActionPause              // P, Escape
	ActionShop               // Tab
	ActionConfirm            // Enter
	ActionCancel             // Escape, M
	ActionMenuUp             // Up arrow in menus
	ActionMenuDown           // Down arrow in menus
	ActionHelp               // H
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionSwitchLeft:
		return "SwitchLeft"
	case ActionSwitchRight:
		return "SwitchRight"
	case ActionDash:
		return "Dash"
	case ActionBomb:
		return "Bomb"
	case ActionPause:
		return "Pause"
	case ActionShop:
		return "Shop"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// AxisDeadZone is the analog stick magnitude below which axes are ignored.
const AxisDeadZone = 0.1

// InputFrame is the input snapshot for one simulation tick: which actions are
// currently held plus the analog movement axes.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// MoveX and MoveY are analog axes in [-1, 1]. Zero when no stick is present.
	MoveX, MoveY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetAxes stores the analog axes, clamped to [-1, 1].
func (f *InputFrame) SetAxes(x, y float64) {
	f.MoveX = ClampF(x, -1, 1)
	f.MoveY = ClampF(y, -1, 1)
}

// Axes returns the analog axes, or zero when inside the dead zone.
func (f InputFrame) Axes() Vec2 {
	v := Vec2{f.MoveX, f.MoveY}
	if v.Len() <= AxisDeadZone {
		return Vec2{}
	}
	return v
}

// Direction combines the directional actions and the analog axes into a
// movement vector of length at most 1.
func (f InputFrame) Direction() Vec2 {
	d := f.Axes()
	if f.Has(ActionMoveLeft) {
		d.X--
	}
	if f.Has(ActionMoveRight) {
		d.X++
	}
	if f.Has(ActionMoveUp) {
		d.Y--
	}
	if f.Has(ActionMoveDown) {
		d.Y++
	}
	if d.LenSq() > 1 {
		return d.Normalize()
	}
	return d
}

// Pressed returns true when a is held in f but was not held in prev.
func (f InputFrame) Pressed(prev InputFrame, a Action) bool {
	return f.Has(a) && !prev.Has(a)
}

// Clear resets all actions and axes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MoveX, f.MoveY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MoveX, clone.MoveY = f.MoveX, f.MoveY
	return clone
}
