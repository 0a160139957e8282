package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quietfield/drift/pkg/feed"
	"github.com/quietfield/drift/pkg/printers"
)

// Get fetches the signal sequence once and prints it without entering
// the viewer.
type Get struct {
	ShowID bool
	JSON   bool
	Client *feed.Client
}

func (g *Get) Do(ctx context.Context) error {
	if g.Client == nil {
		return errors.New("can not get, no content client")
	}

	signals, err := g.Client.Fetch(ctx)
	if err != nil {
		return err
	}

	if g.JSON {
		b, err := json.Marshal(signals)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.NewLine()
	if len(signals) == 0 {
		fmt.Println("no content yet")
		return nil
	}
	pp.TitleWithCount("Signals", len(signals))
	pp.Signals(signals...)
	return nil
}
