package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quietfield/drift/pkg/runner/view"
	"github.com/quietfield/drift/pkg/store"
)

func addView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "open the full-screen presentation",
		Example: `
drift view
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			v := view.View{Config: cfg}
			return v.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
