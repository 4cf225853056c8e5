package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

func focusToString(f focusArea) string {
	switch f {
	case focusList:
		return "list"
	default:
		return "form"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmClear
)

type flashDoneMsg struct{ seq int }

const flashDuration = 2 * time.Second

func flashAfter(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
