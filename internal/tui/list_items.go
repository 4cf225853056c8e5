package tui

import (
	"strconv"

	"packlist/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type packItem struct {
	item model.Item
}

func (i packItem) FilterValue() string { return i.item.Description }
func (i packItem) Title() string {
	return strconv.Itoa(i.item.Quantity) + " " + i.item.Description
}
func (i packItem) Description() string { return i.item.ID }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, packItem{item: it})
	}
	return out
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newPackItemDelegate(), defaultListW, defaultListH)
	l.Title = "Items"
	// We render our own header, sort controls and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	// Add Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	// "?" opens our help overlay instead of the list's built-in help.
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	return l
}
