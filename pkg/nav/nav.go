// Package nav owns the presentation's navigation state: one index into
// the loaded sequence, gated by a hard cooldown between moves.
package nav

import "time"

// DefaultCooldown is the rate limit between navigation actions. It arms
// on every accepted action, whether or not the index moved.
const DefaultCooldown = 700 * time.Millisecond

// Command is one navigation request produced by a gesture interpreter.
// Commands rejected by the cooldown gate are dropped, never replayed.
type Command int

const (
	// Stay requests nothing; interpreters emit it when a gesture does
	// not clear their intent threshold.
	Stay Command = iota
	// Advance moves to the next frame.
	Advance
	// Retreat moves to the previous frame.
	Retreat
)

// Controller steps a clamped index through a fixed-length sequence.
// All mutation goes through Handle/SetIndex; there is no wraparound and
// boundary moves rest in place.
type Controller struct {
	index    int
	length   int
	cooldown time.Duration
	readyAt  time.Time
}

// NewController starts at index 0 over a sequence of the given length.
// A non-positive cooldown falls back to DefaultCooldown.
func NewController(length int, cooldown time.Duration) *Controller {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Controller{length: length, cooldown: cooldown}
}

// Index returns the current position. Meaningless when Length is zero.
func (c *Controller) Index() int { return c.index }

// Length returns the sequence length the controller was loaded with.
func (c *Controller) Length() int { return c.length }

// Ready reports whether the cooldown gate would accept a command now.
func (c *Controller) Ready(now time.Time) bool {
	return !now.Before(c.readyAt)
}

// Handle applies one command at the given instant. While the cooldown is
// pending the command is dropped. An accepted Advance or Retreat re-arms
// the cooldown even when clamping leaves the index unchanged. The return
// value reports whether the index actually moved.
func (c *Controller) Handle(cmd Command, now time.Time) bool {
	if cmd == Stay || c.length == 0 {
		return false
	}
	if !c.Ready(now) {
		return false
	}
	c.readyAt = now.Add(c.cooldown)

	delta := 1
	if cmd == Retreat {
		delta = -1
	}
	return c.SetIndex(c.index + delta)
}

// SetIndex clamps target into [0, length-1] and moves there. A target
// that clamps to the current index is a no-op and reports false, so the
// caller skips re-marking the active frame.
func (c *Controller) SetIndex(target int) bool {
	if c.length == 0 {
		return false
	}
	if target < 0 {
		target = 0
	}
	if target > c.length-1 {
		target = c.length - 1
	}
	if target == c.index {
		return false
	}
	c.index = target
	return true
}
