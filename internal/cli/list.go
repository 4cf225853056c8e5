package cli

import (
	"strconv"
	"strings"

	"packlist/internal/model"
	"packlist/internal/view"

	"github.com/spf13/cobra"
)

type listOutput struct {
	Sort  model.SortMode `json:"sort"`
	Items []model.Item   `json:"items"`
}

func (o listOutput) Text() string {
	if len(o.Items) == 0 {
		return "No items yet"
	}
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		box := "[ ]"
		if it.Packed {
			box = "[x]"
		}
		lines = append(lines, box+" "+strconv.Itoa(it.Quantity)+" "+it.Description)
	}
	return strings.Join(lines, "\n")
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the startup list in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, mode, err := startupState(app)
			if err != nil {
				return err
			}
			p := view.Project(items, mode)
			var hints []string
			if p.Empty() {
				hints = append(hints, "list is empty; add list.items to config.toml or drop --no-seed")
			}
			return writeOut(cmd, app, envelope{
				Data:  listOutput{Sort: p.Mode, Items: p.Items},
				Hints: hints,
			})
		},
	}
}
