package tui

import (
	"errors"
	"strings"
	"testing"

	"packlist/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func TestListAsText(t *testing.T) {
	t.Parallel()

	got := listAsText([]model.Item{
		{ID: "1", Quantity: 4, Description: "socks", Packed: true},
		{ID: "2", Quantity: 6, Description: "passport"},
	})
	want := "[x] 4 socks\n[ ] 6 passport\nYou have 2 items in your list. You have packed 1 items. (50)%"
	if got != want {
		t.Fatalf("listAsText:\n got: %q\nwant: %q", got, want)
	}
}

func TestCopyKey_WritesProjectedList(t *testing.T) {
	var copied string
	prev := clipboardWriter
	clipboardWriter = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriter = prev })

	m := newAppModel(threeItems(), model.SortByDescription, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatalf("expected clipboard cmd")
	}
	msg := cmd()
	if !strings.HasPrefix(copied, "[ ] 2 bags\n[ ] 6 passport\n[ ] 4 socks\n") {
		t.Fatalf("copied text: %q", copied)
	}

	m = send(t, m, msg)
	if m.flashText != "Copied 3 items" || m.flashErr {
		t.Fatalf("flash: %q err=%v", m.flashText, m.flashErr)
	}
}

func TestCopyKey_ReportsClipboardErrors(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, model.SortDefault, nil)
	m = send(t, m, clipboardDoneMsg{err: errors.New("no display")})
	if !m.flashErr || !strings.Contains(m.flashText, "no display") {
		t.Fatalf("flash: %q err=%v", m.flashText, m.flashErr)
	}
}
