package cli

import (
	"packlist/internal/model"
	"packlist/internal/stats"

	"github.com/spf13/cobra"
)

type summaryOutput struct {
	model.Summary
}

func (o summaryOutput) Text() string { return o.Message }

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the packing summary for the startup list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, _, err := startupState(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, envelope{Data: summaryOutput{stats.Summarize(items)}})
		},
	}
}
