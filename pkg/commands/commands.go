// Package commands wires the CLI surface. Every command operates on one
// session-scoped store; nothing is persisted between invocations.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/store"
)

func New() *cobra.Command {
	cfg, err := store.LoadConfig()
	if err != nil {
		cfg = nil
	}
	s := store.New(store.WithConfig(cfg))

	cmd := &cobra.Command{
		Use:   "glass-cal",
		Short: "A hierarchical backlog calendar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd, s)
	return cmd
}

func AddCommands(topLevel *cobra.Command, s *store.Store) {
	addAdd(topLevel, s)
	addGet(topLevel, s)
	addMove(topLevel, s)
	addAssign(topLevel, s)
	addRm(topLevel, s)
	addUI(topLevel, s)
	addVersion(topLevel)
}
