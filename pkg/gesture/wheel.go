// Package gesture turns raw input events into navigation commands. Each
// interpreter carries its own intent-detection policy; none of them know
// about the cooldown gate they feed.
package gesture

import (
	"time"

	"github.com/quietfield/drift/pkg/nav"
)

// DefaultWheelThreshold is the accumulated scroll magnitude one
// navigation intent must reach. Empirically tuned, like the quiet
// window below.
const DefaultWheelThreshold = 60.0

// WheelQuiet is how long the wheel must stay silent before the
// accumulated deltas are evaluated.
const WheelQuiet = 60 * time.Millisecond

// Accumulator sums signed wheel deltas between decision points. Every
// Add bumps a generation counter so a pending quiet-timer from an
// earlier event can recognize itself as superseded.
type Accumulator struct {
	sum       float64
	threshold float64
	gen       int
}

// NewAccumulator uses DefaultWheelThreshold when threshold is not
// positive.
func NewAccumulator(threshold float64) *Accumulator {
	if threshold <= 0 {
		threshold = DefaultWheelThreshold
	}
	return &Accumulator{threshold: threshold}
}

// Add folds one wheel event into the running sum and returns the new
// generation. The caller schedules a quiet-timer carrying that
// generation; only the timer matching Generation at expiry may
// evaluate.
func (a *Accumulator) Add(delta float64) int {
	a.sum += delta
	a.gen++
	return a.gen
}

// Generation returns the id of the most recent Add.
func (a *Accumulator) Generation() int { return a.gen }

// Evaluate decides the accumulated intent and resets the sum. The sum
// resets on every evaluation, whatever the outcome.
func (a *Accumulator) Evaluate() nav.Command {
	sum := a.sum
	a.sum = 0
	switch {
	case sum > a.threshold:
		return nav.Advance
	case sum < -a.threshold:
		return nav.Retreat
	}
	return nav.Stay
}
