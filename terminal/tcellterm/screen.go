// Package tcellterm adapts a tcell.Screen to the same drawing and polling surface as terminal.Terminal.
package tcellterm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-life/terminal"
)

// inputBuffer bounds the bytes queued between the event goroutine and Poll
const inputBuffer = 256

// Screen draws at a tracked cursor position with SetContent and shows on Flush
type Screen struct {
	screen tcell.Screen
	input  chan byte
	quit   chan struct{}
	done   chan struct{}

	col, row int
	style    tcell.Style

	finiOnce sync.Once
}

// New creates a Screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		input:  make(chan byte, inputBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		style:  tcell.StyleDefault,
	}
}

// Init starts the screen and the event goroutine
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.screen.Show()

	go s.pollEvents()
	return nil
}

// pollEvents translates key events into bytes until the screen is finalized
func (s *Screen) pollEvents() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		b, ok := keyByte(key)
		if !ok {
			continue
		}
		select {
		case s.input <- b:
		case <-s.quit:
			return
		default:
			// Drop when the session is not reading
		}
	}
}

// keyByte maps ASCII runes and control keys to the byte a raw terminal would send
func keyByte(ev *tcell.EventKey) (byte, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r < 0x80 {
			return byte(r), true
		}
		return 0, false
	}
	if k := ev.Key(); k >= 0 && k < 0x80 {
		return byte(k), true
	}
	return 0, false
}

// Fini restores the terminal, safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Abort tears down the screen after an I/O failure; tcell has no mode-only restore
func (s *Screen) Abort() {
	s.Fini()
}

// Size returns the screen dimensions
func (s *Screen) Size() (int, int, error) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("tcell: screen reports zero size")
	}
	return w, h, nil
}

// Poll returns a pending input byte without blocking
func (s *Screen) Poll() (byte, bool, error) {
	select {
	case b := <-s.input:
		return b, true, nil
	case <-s.done:
		return 0, false, errors.New("tcell: event stream closed")
	default:
		return 0, false, nil
	}
}

// Clear erases the whole screen
func (s *Screen) Clear() {
	s.style = tcell.StyleDefault
	s.screen.Clear()
}

// ClearLine blanks the current row
func (s *Screen) ClearLine() {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, s.row, ' ', nil, tcell.StyleDefault)
	}
}

// MoveTo positions the write cursor (0-indexed)
func (s *Screen) MoveTo(col, row int) {
	s.col, s.row = col, row
}

// SetStyle maps a terminal style onto tcell
func (s *Screen) SetStyle(st terminal.Style) {
	s.style = convertStyle(st)
}

func convertStyle(st terminal.Style) tcell.Style {
	ts := tcell.StyleDefault
	if st.Fg >= 0 {
		ts = ts.Foreground(tcell.PaletteColor(st.Fg))
	}
	ts = ts.Bold(st.Attrs&terminal.AttrBold != 0).
		Dim(st.Attrs&terminal.AttrDim != 0).
		Underline(st.Attrs&terminal.AttrUnderline != 0).
		Reverse(st.Attrs&terminal.AttrReverse != 0)
	return ts
}

// WriteString places text cell by cell and advances the cursor
func (s *Screen) WriteString(text string) {
	for _, r := range text {
		s.screen.SetContent(s.col, s.row, r, nil, s.style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		s.col += w
	}
}

// ShowCursor shows the hardware cursor at the write position or hides it
func (s *Screen) ShowCursor(visible bool) {
	if visible {
		s.screen.ShowCursor(s.col, s.row)
	} else {
		s.screen.HideCursor()
	}
}

// Flush pushes pending cells to the terminal
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}
