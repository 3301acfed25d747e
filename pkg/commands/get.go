package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/commands/options"
	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/runner/get"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addGet(topLevel *cobra.Command, s *store.Store) {
	lo := &options.LevelOptions{}
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	ro := &options.RollupOptions{}

	cmd := &cobra.Command{
		Use:   "get [level]",
		Short: "Show a backlog or a day.",
		Example: `
glass-cal get month --date 2024-03-01
glass-cal get week --rollup
glass-cal get day --date 2024-03-15
`,
		ValidArgs: []string{"year", "month", "week", "day", "timed"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one level")
			}
			if len(args) == 1 {
				lo.LevelString = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := lo.GetLevel()
			if err != nil {
				return err
			}
			if level == event.LevelNone {
				level = event.LevelDay
			}
			date, err := do.GetDate()
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID: io.ShowID,
				Level:  level,
				Date:   date,
				Rollup: ro.Rollup,
				Store:  s,
			}
			return g.Do(context.Background())
		},
	}

	options.AddLevelArgs(cmd, lo)
	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddRollupArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
