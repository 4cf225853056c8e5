package tui

import (
	"strconv"
	"strings"

	"packlist/internal/model"
	"packlist/internal/stats"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardDoneMsg struct {
	n   int
	err error
}

// clipboardWriter is swapped in tests; the real one needs a display server.
var clipboardWriter = clipboard.WriteAll

// listAsText renders items as a plain checklist followed by the summary line.
func listAsText(items []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		if it.Packed {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(strconv.Itoa(it.Quantity))
		b.WriteString(" ")
		b.WriteString(it.Description)
		b.WriteString("\n")
	}
	b.WriteString(stats.Summarize(items).Message)
	return b.String()
}

func copyListCmd(items []model.Item) tea.Cmd {
	txt := listAsText(items)
	n := len(items)
	return func() tea.Msg {
		return clipboardDoneMsg{n: n, err: clipboardWriter(txt)}
	}
}
