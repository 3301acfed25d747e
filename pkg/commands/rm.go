package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/runner/remove"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addRm(topLevel *cobra.Command, s *store.Store) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an event.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := remove.Remove{
				ID:    args[0],
				Store: s,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
