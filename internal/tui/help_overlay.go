package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
)

const helpMarkdown = `
# Packing list

## Add form

- type a description, **enter** adds it
- **up/down** change the quantity (1-20)
- **tab** moves to the list

## List

- **space** toggle packed
- **x** / **delete** remove
- **s** cycle sort: default, description, packed
- **C** clear the whole list (asks first)
- **y** copy the list to the clipboard
- **tab** / **a** back to the add form

## Anywhere

- **?** this help, **esc** closes it
- **q** quit (from the list), **ctrl+c** quit
`

func newHelpViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.SetContent(renderMarkdown(helpMarkdown, width))
	return vp
}
