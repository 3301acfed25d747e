package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/commands/options"
	"github.com/DimaFrost/glass-cal/pkg/runner/move"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addMove(topLevel *cobra.Command, s *store.Store) {
	lo := &options.LevelOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an event to another backlog level.",
		Example: `
glass-cal move ev-001 --level month --on 2024-06-01
glass-cal move ev-001 --level year
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := lo.GetLevel()
			if err != nil {
				return err
			}
			on, err := do.GetDate()
			if err != nil {
				return err
			}
			mv := move.Move{
				ID:    args[0],
				Level: level,
				On:    &on,
				Store: s,
			}
			return mv.Do(context.Background())
		},
	}

	options.AddLevelArgs(cmd, lo)
	options.AddOnArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
