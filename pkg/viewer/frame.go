package viewer

import (
	"html"
	"image"
	"strings"

	"github.com/quietfield/drift/pkg/signal"
)

// FitMode is how a frame's image occupies the frame bounds. It is
// decided only once the image's natural dimensions are known.
type FitMode int

const (
	// FitUnknown means the image has not been measured yet.
	FitUnknown FitMode = iota
	// FitCover fills the frame and center-crops the overflow.
	FitCover
	// FitContain letterboxes the whole image inside the frame.
	FitContain
)

// PortraitRatio is the width/height ratio below which an image is
// extreme-portrait and letterboxed instead of cropped. Empirically
// tuned.
const PortraitRatio = 0.65

// Frame is the display unit for one signal. Frames are built once per
// load; only the image fields mutate as lazy loads complete.
type Frame struct {
	Signal  *signal.Signal
	Index   int
	Caption string

	Fit       FitMode
	Image     image.Image
	Broken    bool
	requested bool
}

// BuildFrames converts the loaded sequence into display units, indexed
// 0..len-1. Captions are escaped here, once, because the content source
// is untrusted; whitespace-only captions are dropped entirely.
func BuildFrames(signals []*signal.Signal) []*Frame {
	frames := make([]*Frame, 0, len(signals))
	for i, s := range signals {
		f := &Frame{Signal: s, Index: i}
		if s.HasText() {
			f.Caption = EscapeText(strings.TrimSpace(s.Text))
		}
		frames = append(frames, f)
	}
	return frames
}

// EscapeText escapes &, <, >, " and ' so source text can never read as
// markup.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// SetImage records a completed lazy load and decides the fit mode from
// the image's natural dimensions.
func (f *Frame) SetImage(img image.Image) {
	f.Image = img
	f.Broken = false
	b := img.Bounds()
	if b.Dy() <= 0 {
		f.Fit = FitCover
		return
	}
	f.Fit = fitFor(float64(b.Dx()) / float64(b.Dy()))
}

func fitFor(ratio float64) FitMode {
	if ratio < PortraitRatio {
		return FitContain
	}
	return FitCover
}

// Loadable reports whether the frame still wants an image fetch.
func (f *Frame) Loadable() bool {
	return f.Signal.ImageURL != "" && !f.requested
}
