package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Style is a foreground colour plus attributes
// Fg < 0 selects the terminal default, otherwise an xterm-256 palette index
type Style struct {
	Fg    int
	Attrs Attr
}

// StyleDefault resets colour and attributes
var StyleDefault = Style{Fg: -1}

// Bold returns s with the bold attribute set
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Terminal is a buffered text/cursor/style sink and byte source over a Backend
// Writes accumulate until Flush; the first write error is sticky and reported by Flush
type Terminal struct {
	backend Backend
	w       *bufio.Writer

	style      Style
	styleValid bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal over an arbitrary backend
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		w:       bufio.NewWriterSize(backendWriter{b}, 32768),
	}
}

// Init enters raw mode, hides the cursor and clears the screen
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	// Initialize backend (raw mode)
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.initialized = true

	t.w.Write(csiCursorHide)
	// Prevents terminal scroll/wrap on bottom-right corner write
	t.w.Write(csiAutoWrapOff)
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.styleValid = false
	return t.w.Flush()
}

// Fini resets colour, clears the screen, shows the cursor and leaves raw mode
// Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.w.Write(csiDefaultFg)
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.w.Write(csiHome)
	t.w.Write(csiAutoWrapOn)
	t.w.Write(csiCursorShow)
	t.w.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Abort leaves raw mode without writing anything further to the output
// Used when the output channel itself has failed
func (t *Terminal) Abort() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.backend.Fini()
	t.finalized = true
}

// Size returns the terminal dimensions or an error if they cannot be queried
func (t *Terminal) Size() (int, int, error) {
	return t.backend.Size()
}

// Poll returns the next input byte if one is ready, never blocks
func (t *Terminal) Poll() (byte, bool, error) {
	return t.backend.ReadByte()
}

// Clear erases the screen and homes the cursor
func (t *Terminal) Clear() {
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.styleValid = false
}

// ClearLine erases the line under the cursor
func (t *Terminal) ClearLine() {
	t.w.Write(csiClrEOL)
}

// MoveTo positions the cursor (0-indexed)
func (t *Terminal) MoveTo(col, row int) {
	writeCursorPos(t.w, col, row)
}

// SetStyle switches colour/attributes for subsequent text, coalescing repeats
func (t *Terminal) SetStyle(s Style) {
	if t.styleValid && s == t.style {
		return
	}
	writeStyle(t.w, s)
	t.style = s
	t.styleValid = true
}

// WriteString writes text at the cursor
func (t *Terminal) WriteString(s string) {
	t.w.WriteString(s)
}

// ShowCursor shows/hides the hardware cursor
func (t *Terminal) ShowCursor(visible bool) {
	if visible {
		t.w.Write(csiCursorShow)
	} else {
		t.w.Write(csiCursorHide)
	}
}

// Flush writes the buffered frame to the terminal
func (t *Terminal) Flush() error {
	return t.w.Flush()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via stty - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
