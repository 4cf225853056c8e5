package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
			m.flashErr = false
		}
		return m, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			m.logger.Printf("clipboard: %v", msg.err)
			return m, m.flash("Clipboard unavailable: "+msg.err.Error(), true)
		}
		return m, m.flash(fmt.Sprintf("Copied %d items", msg.n), false)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		return m.updateHelp(msg)
	}
	if m.modal != modalNone {
		return m.updateModal(msg)
	}
	if m.focus == focusForm {
		return m.updateForm(msg)
	}
	return m.updateList(msg)
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmClear:
		switch {
		case msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab:
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
			return m, nil
		case msg.Type == tea.KeyEnter:
			if m.confirmFocus == confirmFocusConfirm {
				return m.clearList()
			}
			m.modal = modalNone
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			return m.clearList()
		case key.Matches(msg, m.keys.Cancel):
			m.modal = modalNone
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSwitch), key.Matches(msg, m.keys.Back):
		m.setFocus(focusList)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.QtyUp):
		m.form.IncQuantity()
		return m, nil
	case key.Matches(msg, m.keys.QtyDown):
		m.form.DecQuantity()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.form.Description = m.input.Value()
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	m.form.Description = m.input.Value()
	it, ok := m.form.Submit()
	if !ok {
		return m, nil
	}
	m.store.Add(it)
	m.input.Reset()
	m.logger.Printf("add item=%s qty=%d desc=%q", it.ID, it.Quantity, it.Description)
	m.refresh(it.ID)
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	empty := m.projection.Empty()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusSwitch), key.Matches(msg, m.keys.AddForm):
		m.setFocus(focusForm)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.layout()
		return m, nil
	}
	if empty {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		id := m.selectedID()
		m.store.TogglePacked(id)
		if it, err := m.store.Lookup(id); err == nil {
			m.logger.Printf("toggle item=%s packed=%v", id, it.Packed)
		}
		m.refresh(id)
		return m, nil
	case key.Matches(msg, m.keys.Remove):
		id := m.selectedID()
		m.store.Remove(id)
		m.logger.Printf("remove item=%s", id)
		m.refresh("")
		if m.projection.Empty() {
			m.setFocus(focusForm)
		}
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		mode := m.sort.Cycle()
		m.logger.Printf("sort mode=%s", mode)
		m.refresh(m.selectedID())
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.modal = modalConfirmClear
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyListCmd(m.projection.Items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) clearList() (tea.Model, tea.Cmd) {
	n := m.store.Len()
	m.store.Clear()
	m.modal = modalNone
	m.logger.Printf("clear removed=%d", n)
	m.refresh("")
	m.setFocus(focusForm)
	return m, m.flash(fmt.Sprintf("Cleared %d items", n), false)
}
