// Package render maps the world grid and game state onto drawing calls against a text sink.
package render

import "github.com/lixenwraith/term-life/terminal"

// Sink is the text-and-cursor output a frame is composed on
// Nothing is guaranteed visible until Flush returns
type Sink interface {
	Clear()
	ClearLine()
	MoveTo(col, row int)
	SetStyle(s terminal.Style)
	WriteString(s string)
	ShowCursor(visible bool)
	Flush() error
}
