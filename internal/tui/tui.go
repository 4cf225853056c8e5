package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"packlist/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Items []model.Item
	Sort  model.SortMode

	// Theme is auto|light|dark, Glyphs is unicode|ascii.
	Theme  string
	Glyphs string

	// DebugLog is a file path; empty disables logging.
	DebugLog string
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	logger := log.New(io.Discard, "", 0)
	if p := strings.TrimSpace(opts.DebugLog); p != "" {
		f, err := tea.LogToFile(p, "packlist")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
		logger.Printf("start items=%d sort=%s", len(opts.Items), opts.Sort)
	}

	m := newAppModel(opts.Items, opts.Sort, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
