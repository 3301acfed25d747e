package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/DimaFrost/glass-cal/pkg/period"
)

// DateOptions captures an optional calendar date flag.
type DateOptions struct {
	DateString string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Specify a date, example: --date="2024-03-15". Defaults to today.`)
}

// AddOnArgs wires the same flag under the name used by add.
func AddOnArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "on", "",
		`Selected date anchoring the new event, example: --on="2024-03-15".`)
}

// GetDate parses the flag, defaulting to today when unset.
func (o *DateOptions) GetDate() (time.Time, error) {
	if o.DateString == "" {
		return time.Now(), nil
	}
	return period.ParseDay(o.DateString)
}
