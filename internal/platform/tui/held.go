package tui

import (
	"time"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its first press
// or last repeat. It must outlast the terminal's initial repeat delay
// (commonly 500ms), or a held key is released and pressed again.
const DefaultHoldWindow = 600 * time.Millisecond

// RepeatHoldWindow is the shorter window used for movement, fire, dash and
// bomb once the key is auto-repeating, so the ship stops soon after release.
const RepeatHoldWindow = 150 * time.Millisecond

// latched actions toggle or navigate on a press. They keep the full window
// even while repeating and only re-arm after a full window without a repeat.
var latched = map[core.Action]bool{
	core.ActionPause:       true,
	core.ActionShop:        true,
	core.ActionSwitchLeft:  true,
	core.ActionSwitchRight: true,
	core.ActionConfirm:     true,
	core.ActionCancel:      true,
	core.ActionMenuUp:      true,
	core.ActionMenuDown:    true,
	core.ActionHelp:        true,
}

type heldKey struct {
	last      time.Time
	repeating bool
}

// HeldKeys approximates key-up events, which terminals do not report:
// an action stays held until no press or repeat has arrived for the hold
// window.
type HeldKeys struct {
	window time.Duration
	repeat time.Duration
	seen   map[core.Action]heldKey
}

// NewHeldKeys creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		repeat: min(window, RepeatHoldWindow),
		seen:   make(map[core.Action]heldKey),
	}
}

// Press records actions as seen at now. A press that arrives while the
// action is still held counts as an auto-repeat.
func (h *HeldKeys) Press(now time.Time, actions ...core.Action) {
	for _, a := range actions {
		k, ok := h.seen[a]
		repeating := ok && now.Sub(k.last) <= h.limit(a, k)
		h.seen[a] = heldKey{last: now, repeating: repeating}
	}
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, k := range h.seen {
		if now.Sub(k.last) > h.limit(a, k) {
			delete(h.seen, a)
			continue
		}
		in.Set(a)
	}
	return in
}

// Release forgets every held action.
func (h *HeldKeys) Release() {
	clear(h.seen)
}

func (h *HeldKeys) limit(a core.Action, k heldKey) time.Duration {
	if k.repeating && !latched[a] {
		return h.repeat
	}
	return h.window
}
