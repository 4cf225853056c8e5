package cli

import (
	"fmt"
	"os"
	"strings"

	"packlist/internal/config"
	"packlist/internal/format"
	"packlist/internal/model"
	"packlist/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	PrettyJSON bool
	Format     string
	NoSeed     bool
	Sort       string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "packlist",
		Short:        "Travel packing list (TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  packlist

  # Start with an empty list, sorted by packed state
  packlist --no-seed --sort packed

  # Print the startup list / summary
  packlist list --format text
  packlist stats
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return err
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $PACKLIST_CONFIG or ~/.config/packlist/config.toml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PACKLIST_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().BoolVar(&app.NoSeed, "no-seed", false, "Start with an empty list")
	cmd.PersistentFlags().StringVar(&app.Sort, "sort", "", "Initial sort mode (default|description|packed; overrides list.sort)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	items, mode, err := startupState(app)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Items:    items,
		Sort:     mode,
		Theme:    app.cfg.UI.Theme,
		Glyphs:   app.cfg.UI.Glyphs,
		DebugLog: app.cfg.Debug.Log,
	})
}

// startupState resolves the initial list and sort mode. Flags win over config.
func startupState(app *App) ([]model.Item, model.SortMode, error) {
	mode, err := app.cfg.SortMode()
	if err != nil {
		return nil, model.SortDefault, err
	}
	if strings.TrimSpace(app.Sort) != "" {
		mode, err = model.ParseSortMode(app.Sort)
		if err != nil {
			return nil, model.SortDefault, fmt.Errorf("--sort: %w", err)
		}
	}

	items := []model.Item{}
	if !app.NoSeed {
		items = app.cfg.StartupItems()
	}
	return items, mode, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the JSON shape of every command's output.
type envelope struct {
	Data  any      `json:"data"`
	Hints []string `json:"_hints,omitempty"`
}

func (e envelope) Text() string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Text()
	}
	return fmt.Sprint(e.Data)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
