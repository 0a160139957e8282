package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quietfield/drift/pkg/commands/options"
	"github.com/quietfield/drift/pkg/feed"
	"github.com/quietfield/drift/pkg/runner/get"
	"github.com/quietfield/drift/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "fetch and list the signal sequence without the viewer",
		Example: `
drift get
drift get --id
drift get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Client: &feed.Client{Endpoint: cfg.Endpoint(), Limit: cfg.Limit()},
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
