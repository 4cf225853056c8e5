package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type packItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	packed   lipgloss.Style
}

func newPackItemDelegate() packItemDelegate {
	return packItemDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		packed: lipgloss.NewStyle().
			Foreground(colorPacked).
			Strikethrough(true),
	}
}

func (d packItemDelegate) Height() int  { return 1 }
func (d packItemDelegate) Spacing() int { return 0 }
func (d packItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d packItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(packItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}

	fmt.Fprint(w, d.renderRow(it, contentW, index == m.Index()))
}

func (d packItemDelegate) renderRow(it packItem, contentW int, selected bool) string {
	box := glyphCheckbox(it.item.Packed)
	title := it.Title()

	prefix := "  "
	if selected {
		prefix = glyphBullet() + " "
	}
	head := prefix + box + " "
	avail := contentW - xansi.StringWidth(head)
	if avail < 1 {
		avail = 1
	}
	if xansi.StringWidth(title) > avail {
		title = xansi.Truncate(title, avail, "…")
	}
	if it.item.Packed {
		title = d.packed.Render(title)
	}

	line := head + title
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	if selected {
		return d.selected.Render(line)
	}
	return d.normal.Render(line)
}
