package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls id display on list output.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the show-id flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show event ids in list output.")
}

// RollupOptions toggles the inheritance-aware backlog view.
type RollupOptions struct {
	Rollup bool
}

// AddRollupArgs wires the rollup flag on the provided command.
func AddRollupArgs(cmd *cobra.Command, o *RollupOptions) {
	cmd.Flags().BoolVar(&o.Rollup, "rollup", false,
		"Include items inherited from coarser backlog levels.")
}
