package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// binding maps one physical control to the actions it triggers.
type binding[T comparable] struct {
	control T
	actions []core.Action
}

var keyBindings = []binding[ebiten.Key]{
	{ebiten.KeyW, []core.Action{core.ActionMoveUp}},
	{ebiten.KeyArrowUp, []core.Action{core.ActionMoveUp, core.ActionMenuUp}},
	{ebiten.KeyS, []core.Action{core.ActionMoveDown}},
	{ebiten.KeyArrowDown, []core.Action{core.ActionMoveDown, core.ActionMenuDown}},
	{ebiten.KeyA, []core.Action{core.ActionMoveLeft}},
	{ebiten.KeyArrowLeft, []core.Action{core.ActionMoveLeft}},
	{ebiten.KeyD, []core.Action{core.ActionMoveRight}},
	{ebiten.KeyArrowRight, []core.Action{core.ActionMoveRight}},
	{ebiten.KeySpace, []core.Action{core.ActionFire}},
	{ebiten.KeyJ, []core.Action{core.ActionFire}},
	{ebiten.KeyQ, []core.Action{core.ActionSwitchLeft}},
	{ebiten.KeyE, []core.Action{core.ActionSwitchRight}},
	{ebiten.KeyShift, []core.Action{core.ActionDash}},
	{ebiten.KeyK, []core.Action{core.ActionDash}},
	{ebiten.KeyB, []core.Action{core.ActionBomb}},
	{ebiten.KeyP, []core.Action{core.ActionPause}},
	{ebiten.KeyEscape, []core.Action{core.ActionPause, core.ActionCancel}},
	{ebiten.KeyTab, []core.Action{core.ActionShop}},
	{ebiten.KeyEnter, []core.Action{core.ActionConfirm}},
	{ebiten.KeyM, []core.Action{core.ActionCancel}},
	{ebiten.KeyH, []core.Action{core.ActionHelp}},
}

// Standard layout: RightBottom is A, RightLeft X, RightRight B, RightTop Y.
var buttonBindings = []binding[ebiten.StandardGamepadButton]{
	{ebiten.StandardGamepadButtonRightBottom, []core.Action{core.ActionFire, core.ActionConfirm}},
	{ebiten.StandardGamepadButtonRightLeft, []core.Action{core.ActionDash}},
	{ebiten.StandardGamepadButtonRightTop, []core.Action{core.ActionBomb}},
	{ebiten.StandardGamepadButtonRightRight, []core.Action{core.ActionCancel}},
	{ebiten.StandardGamepadButtonFrontTopLeft, []core.Action{core.ActionSwitchLeft}},
	{ebiten.StandardGamepadButtonFrontTopRight, []core.Action{core.ActionSwitchRight}},
	{ebiten.StandardGamepadButtonCenterRight, []core.Action{core.ActionPause}},
	{ebiten.StandardGamepadButtonCenterLeft, []core.Action{core.ActionShop}},
	{ebiten.StandardGamepadButtonLeftTop, []core.Action{core.ActionMoveUp, core.ActionMenuUp}},
	{ebiten.StandardGamepadButtonLeftBottom, []core.Action{core.ActionMoveDown, core.ActionMenuDown}},
	{ebiten.StandardGamepadButtonLeftLeft, []core.Action{core.ActionMoveLeft}},
	{ebiten.StandardGamepadButtonLeftRight, []core.Action{core.ActionMoveRight}},
}

// InputSource is the device state polled once per frame.
type InputSource interface {
	KeyPressed(k ebiten.Key) bool
	Gamepads() []ebiten.GamepadID
	Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	Button(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
}

// deviceInput reads the live ebiten state.
type deviceInput struct {
	ids []ebiten.GamepadID
}

func (d *deviceInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// Gamepads lists connected pads that ebiten can map to the standard layout.
func (d *deviceInput) Gamepads() []ebiten.GamepadID {
	d.ids = ebiten.AppendGamepadIDs(d.ids[:0])
	pads := d.ids[:0]
	for _, id := range d.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			pads = append(pads, id)
		}
	}
	return pads
}

func (d *deviceInput) Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (d *deviceInput) Button(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

// Poll builds the input snapshot for this frame. Held keys and buttons of
// every pad are merged; the analog axes come from the first pad whose left
// stick is outside the dead zone.
func Poll(src InputSource, frame *core.InputFrame) {
	frame.Clear()

	for _, b := range keyBindings {
		if src.KeyPressed(b.control) {
			for _, a := range b.actions {
				frame.Set(a)
			}
		}
	}

	stickSet := false
	for _, id := range src.Gamepads() {
		for _, b := range buttonBindings {
			if src.Button(id, b.control) {
				for _, a := range b.actions {
					frame.Set(a)
				}
			}
		}
		if stickSet {
			continue
		}
		x := src.Axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := src.Axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if core.V(x, y).Len() > core.AxisDeadZone {
			frame.SetAxes(x, y)
			stickSet = true
		}
	}
}
