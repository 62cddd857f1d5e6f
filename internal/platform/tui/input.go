package tui

import (
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// HoldInput turns terminal key presses into per-tick input frames.
//
// Terminals report key presses and auto-repeat but never releases, so a
// direction counts as held for holdTicks ticks after its last press.
// Discrete presses are delivered on the next tick only.
type HoldInput struct {
	holdTicks int
	left      int // Remaining ticks the direction stays held
	right     int
	muted     bool // Directions are tracked but not delivered
	pending   core.InputFrame
}

// NewHoldInput creates an input tracker. holdTicks below 1 is treated as 1.
func NewHoldInput(holdTicks int) *HoldInput {
	return &HoldInput{
		holdTicks: core.Max(holdTicks, 1),
		pending:   core.NewInputFrame(),
	}
}

// Press records a key press mapped to action.
// Every press is also an "any key" press, except repeats of a direction
// that is still held, so holding a key does not restart a finished game.
func (h *HoldInput) Press(action core.Action) {
	switch action {
	case core.ActionLeft:
		fresh := h.left == 0
		h.left = h.holdTicks
		h.right = 0
		if fresh {
			h.anyKey()
		}
		return
	case core.ActionRight:
		fresh := h.right == 0
		h.right = h.holdTicks
		h.left = 0
		if fresh {
			h.anyKey()
		}
		return
	case core.ActionNone:
	default:
		h.pending.Set(action)
	}
	if action != core.ActionCancel && action != core.ActionQuit {
		h.anyKey()
	}
}

// anyKey queues a fresh key press. A fresh press also ends a Release.
func (h *HoldInput) anyKey() {
	h.pending.Set(core.ActionAnyKey)
	h.muted = false
}

// Next returns the input for the coming tick and advances hold timers.
func (h *HoldInput) Next() core.InputFrame {
	in := h.pending.Clone()
	h.pending.Clear()

	if h.left > 0 {
		if !h.muted {
			in.Set(core.ActionLeft)
		}
		h.left--
	}
	if h.right > 0 {
		if !h.muted {
			in.Set(core.ActionRight)
		}
		h.right--
	}
	if h.left == 0 && h.right == 0 {
		h.muted = false
	}
	return in
}

// Release stops delivering held directions. The hold timers keep running,
// so auto-repeat of a key that is still down stays a repeat and is not
// mistaken for a fresh press.
func (h *HoldInput) Release() {
	h.muted = h.left > 0 || h.right > 0
}
