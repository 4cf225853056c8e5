package tui

import (
	"strconv"
	"strings"

	"packlist/internal/form"
	"packlist/internal/stats"

	"github.com/charmbracelet/lipgloss"
)

const emptyListText = "No items yet"

func (m appModel) View() string {
	w := m.contentWidth()

	if m.showHelp {
		box := renderModalBox(m.width, "Help", m.helpView.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	if m.modal == modalConfirmClear {
		body := "Remove all " + strconv.Itoa(m.store.Len()) + " items from the list?"
		box := renderConfirmModal(m.width, "Clear list", body, "Clear", "Cancel", m.confirmFocus)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	parts := []string{
		styleHeader().Render("Travel list"),
		"",
		m.renderForm(w),
		"",
		m.renderListBody(w),
		m.renderSortControls(w),
		"",
		m.renderStats(w),
		m.renderFlash(w),
		m.renderFooter(),
	}
	return lipgloss.NewStyle().Padding(1, marginX, 0, marginX).Render(strings.Join(parts, "\n"))
}

func (m appModel) renderForm(w int) string {
	active := m.focus == focusForm
	qty := styleControl(active).Render("‹ " + strconv.Itoa(m.form.Quantity) + " ›")
	label := styleMuted().Render("Qty")
	if active {
		label = lipgloss.NewStyle().Bold(true).Render("Qty")
	}
	input := lipgloss.NewStyle().Background(colorInputBg).Render(m.input.View())
	line := lipgloss.JoinHorizontal(lipgloss.Top, label, " ", qty, "  ", input)
	return lipgloss.NewStyle().MaxWidth(w).Render(line)
}

func (m appModel) renderListBody(w int) string {
	if m.projection.Empty() {
		// Placeholder keeps the list area's height so the layout doesn't jump.
		return lipgloss.Place(w, minListH, lipgloss.Center, lipgloss.Center, styleMuted().Render(emptyListText))
	}
	return m.list.View()
}

func (m appModel) renderSortControls(w int) string {
	if !m.projection.ShowSortControls() {
		return ""
	}
	active := m.focus == focusList
	mode := styleControl(active).Render(m.sort.Mode().Label())
	clearBtn := styleControl(false).Render("Clear")
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styleMuted().Render("Sort by "), mode, "  ", clearBtn,
	)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), w))
	return rule + "\n" + line
}

func (m appModel) renderStats(w int) string {
	sum := stats.Summarize(m.store.Items())
	return styleStats().Width(w).Render(plainMessage(sum.Message))
}

func (m appModel) renderFlash(w int) string {
	if strings.TrimSpace(m.flashText) == "" {
		return ""
	}
	st := styleMuted()
	if m.flashErr {
		st = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorFlashErrorBg).Padding(0, 1)
	}
	return st.MaxWidth(w).Render(m.flashText)
}

func (m appModel) renderFooter() string {
	if m.focus == focusForm {
		hint := styleMuted().Render(
			"qty " + strconv.Itoa(form.MinQuantity) + "-" + strconv.Itoa(form.MaxQuantity) + "  ",
		)
		return hint + m.help.ShortHelpView(m.keys.formBindings())
	}
	return m.help.ShortHelpView(m.keys.listBindings(m.projection.Empty()))
}
