package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/commands/options"
	"github.com/DimaFrost/glass-cal/pkg/runner/add"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addAdd(topLevel *cobra.Command, s *store.Store) {
	lo := &options.LevelOptions{}
	do := &options.DateOptions{}
	description := ""

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event to a backlog level.",
		Example: `
glass-cal add write report --level month --on 2024-03-15
glass-cal add standup notes --level week
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := lo.GetLevel()
			if err != nil {
				return err
			}
			on, err := do.GetDate()
			if err != nil {
				return err
			}
			a := add.Add{
				Title:       strings.Join(args, " "),
				Description: description,
				Level:       level,
				On:          &on,
				Store:       s,
			}
			return a.Do(context.Background())
		},
	}

	options.AddLevelArgs(cmd, lo)
	options.AddOnArgs(cmd, do)
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Optional description.")

	topLevel.AddCommand(cmd)
}
