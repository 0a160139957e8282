package view

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/quietfield/drift/pkg/feed"
	"github.com/quietfield/drift/pkg/store"
	"github.com/quietfield/drift/pkg/viewer"
)

// View launches the full-screen presentation.
type View struct {
	Config store.Config
}

func (v *View) Do(ctx context.Context) error {
	if v.Config == nil {
		return errors.New("can not view, no config")
	}
	if v.Config.Endpoint() == "" {
		return errors.New("no content endpoint configured; set endpoint in .drift or DRIFT_ENDPOINT")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("the viewer needs a terminal")
	}

	client := &feed.Client{
		Endpoint: v.Config.Endpoint(),
		Limit:    v.Config.Limit(),
	}

	return viewer.Run(viewer.Options{
		Client:         client,
		Cooldown:       v.Config.Cooldown(),
		WheelThreshold: v.Config.WheelThreshold(),
		SwipeRows:      v.Config.SwipeRows(),
		ReducedMotion:  v.Config.ReducedMotion(),
	})
}
