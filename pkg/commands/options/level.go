// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/event"
)

// LevelOptions captures the backlog level selection flag.
type LevelOptions struct {
	LevelString string
}

// AddLevelArgs wires the level flag on the provided command.
func AddLevelArgs(cmd *cobra.Command, o *LevelOptions) {
	cmd.Flags().StringVarP(&o.LevelString, "level", "l", string(event.LevelDay),
		"Backlog level: year, month, week, day or timed.")
}

// GetLevel parses the selected level.
func (o *LevelOptions) GetLevel() (event.Level, error) {
	return event.ParseLevel(o.LevelString)
}
