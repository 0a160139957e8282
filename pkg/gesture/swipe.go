package gesture

import "github.com/quietfield/drift/pkg/nav"

// DefaultSwipeThreshold is the minimum vertical displacement, in input
// units, below which a drag is treated as noise.
const DefaultSwipeThreshold = 45.0

// Swipe interprets a press-drag-release sequence on the vertical axis.
// An upward swipe advances (content moves on), a downward swipe
// retreats.
type Swipe struct {
	threshold float64
	startY    float64
	tracking  bool
}

// NewSwipe uses DefaultSwipeThreshold when threshold is not positive.
func NewSwipe(threshold float64) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{threshold: threshold}
}

// Start records the vertical coordinate where the gesture began.
func (s *Swipe) Start(y float64) {
	s.startY = y
	s.tracking = true
}

// End closes the gesture and decides its intent. Without a matching
// Start, or with displacement under the threshold, it reports Stay.
func (s *Swipe) End(y float64) nav.Command {
	if !s.tracking {
		return nav.Stay
	}
	s.tracking = false

	dy := s.startY - y
	if dy > s.threshold {
		return nav.Advance
	}
	if dy < -s.threshold {
		return nav.Retreat
	}
	return nav.Stay
}
