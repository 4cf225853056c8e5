package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	FocusSwitch key.Binding
	Back        key.Binding
	Submit      key.Binding
	QtyUp       key.Binding
	QtyDown     key.Binding

	AddForm key.Binding
	Toggle  key.Binding
	Remove  key.Binding
	Sort    key.Binding
	Clear   key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding

	ForceQuit key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		FocusSwitch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		QtyUp:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "qty+")),
		QtyDown:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "qty-")),

		AddForm: key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "packed")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc", "ctrl+g"), key.WithHelp("n", "cancel")),
	}
}

func (k keyMap) formBindings() []key.Binding {
	return []key.Binding{k.Submit, k.QtyUp, k.QtyDown, k.FocusSwitch, k.Back}
}

// listBindings hides sort/clear/copy when there is nothing to act on.
func (k keyMap) listBindings(empty bool) []key.Binding {
	if empty {
		return []key.Binding{k.AddForm, k.Help, k.Quit}
	}
	return []key.Binding{k.Toggle, k.Remove, k.Sort, k.Clear, k.Copy, k.AddForm, k.Help, k.Quit}
}
