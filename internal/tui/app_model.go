package tui

import (
	"io"
	"log"

	"packlist/internal/form"
	"packlist/internal/model"
	"packlist/internal/store"
	"packlist/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	store      *store.ListStore
	sort       *view.SortState
	form       *form.State
	projection view.Projection

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	focus        focusArea
	modal        modalKind
	confirmFocus confirmModalFocus

	showHelp bool
	helpView viewport.Model

	width  int
	height int

	flashText string
	flashErr  bool
	flashSeq  int

	logger *log.Logger
}

const (
	defaultW     = 80
	defaultH     = 24
	defaultListW = defaultW - 2*marginX
	defaultListH = defaultH - chromeLines

	maxContentW = 72
	marginX     = 2
	// header, form, sort controls, stats, flash, footer and the gaps between them.
	chromeLines = 11
	minListH    = 3
)

func newAppModel(items []model.Item, mode model.SortMode, logger *log.Logger) appModel {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := appModel{
		store:  store.New(items...),
		sort:   view.NewSortState(mode),
		form:   form.NewState(),
		help:   help.New(),
		keys:   defaultKeyMap(),
		width:  defaultW,
		height: defaultH,
		logger: logger,
	}

	m.input = textinput.New()
	m.input.Placeholder = "Add item.."
	m.input.CharLimit = 200
	m.input.Width = 40
	m.input.Focus()

	m.list = newList(nil)
	m.refresh("")
	m.layout()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-derives the projection from the store and keeps selectID
// selected when it is still visible.
func (m *appModel) refresh(selectID string) {
	prevIdx := m.list.Index()
	m.projection = view.Project(m.store.Items(), m.sort.Mode())
	m.list.SetItems(toListItems(m.projection.Items))

	n := len(m.projection.Items)
	if n == 0 {
		return
	}
	if selectID != "" {
		for i, it := range m.projection.Items {
			if it.ID == selectID {
				m.list.Select(i)
				return
			}
		}
	}
	if prevIdx >= n {
		prevIdx = n - 1
	}
	if prevIdx < 0 {
		prevIdx = 0
	}
	m.list.Select(prevIdx)
}

func (m *appModel) layout() {
	w := m.contentWidth()
	h := m.height - chromeLines
	if h < minListH {
		h = minListH
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 16
	if m.input.Width < 10 {
		m.input.Width = 10
	}
	m.help.Width = w
	if m.showHelp {
		m.helpView = newHelpViewport(w, m.height-4)
	}
}

func (m appModel) contentWidth() int {
	w := m.width - 2*marginX
	if w > maxContentW {
		w = maxContentW
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m appModel) selectedID() string {
	it, ok := m.list.SelectedItem().(packItem)
	if !ok {
		return ""
	}
	return it.item.ID
}

func (m *appModel) setFocus(f focusArea) {
	if m.focus != f {
		m.logger.Printf("focus %s -> %s", focusToString(m.focus), focusToString(f))
	}
	m.focus = f
	if f == focusForm {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *appModel) flash(text string, isErr bool) tea.Cmd {
	m.flashSeq++
	m.flashText = text
	m.flashErr = isErr
	return flashAfter(m.flashSeq)
}
