package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/runner/assign"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func addAssign(topLevel *cobra.Command, s *store.Store) {
	cmd := &cobra.Command{
		Use:   "assign <id> <yyyy-MM-dd>",
		Short: "Schedule an event to a calendar day.",
		Example: `
glass-cal assign ev-001 2024-03-15
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := period.ParseDay(args[1])
			if err != nil {
				return err
			}
			a := assign.Assign{
				ID:    args[0],
				Date:  date,
				Store: s,
			}
			return a.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
