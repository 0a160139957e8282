package signal

import (
	"sort"
	"strings"
)

// Section is the coarse category label on a signal. It is the primary
// sort key for presentation order.
type Section string

const (
	Arrival Section = "arrival"
	Tension Section = "tension"
	Rupture Section = "rupture"
	After   Section = "after"
	Hidden  Section = "hidden"
)

// unrankedSection sorts unrecognized sections after every known one.
const unrankedSection = 999

// Rank maps a section to its fixed presentation priority.
func (s Section) Rank() int {
	switch s {
	case Arrival:
		return 1
	case Tension:
		return 2
	case Rupture:
		return 3
	case After:
		return 4
	case Hidden:
		return 5
	}
	return unrankedSection
}

// Signal is one content record retrieved from the content source. The
// JSON tags match the content API projection.
type Signal struct {
	ID       string  `json:"_id"`
	Text     string  `json:"text,omitempty"`
	Mood     string  `json:"mood,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Section  Section `json:"section,omitempty"`
	Order    int     `json:"order,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// HasText reports whether the signal carries a displayable caption.
// Whitespace-only text counts as absent.
func (s *Signal) HasText() bool {
	return strings.TrimSpace(s.Text) != ""
}

// Sort orders signals in place: section rank ascending, then Order
// ascending within a section. The sort is stable so records the source
// considers equal keep their wire order.
func Sort(signals []*Signal) {
	sort.SliceStable(signals, func(i, j int) bool {
		ri, rj := signals[i].Section.Rank(), signals[j].Section.Rank()
		if ri != rj {
			return ri < rj
		}
		return signals[i].Order < signals[j].Order
	})
}
