package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/runner/ui"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addUI(topLevel *cobra.Command, s *store.Store) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			u := ui.UI{Store: s}
			return u.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
