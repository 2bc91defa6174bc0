// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi       = []byte("\x1b[")
	csiClear  = []byte("\x1b[2J\x1b[H")
	csiHome   = []byte("\x1b[H")
	csiRIS    = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0   = []byte("\x1b[0m")
	csiClrEOL = []byte("\x1b[2K")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Default foreground
	csiDefaultFg = []byte("\x1b[39m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeStyle emits a single combined SGR sequence: reset, attributes, foreground
func writeStyle(w *bufio.Writer, s Style) {
	w.Write(csi)
	w.WriteByte('0')
	if s.Attrs&AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if s.Attrs&AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if s.Attrs&AttrUnderline != 0 {
		w.Write([]byte(";4"))
	}
	if s.Attrs&AttrReverse != 0 {
		w.Write([]byte(";7"))
	}
	if s.Fg >= 0 {
		// 256-color: 38;5;N
		w.Write([]byte(";38;5;"))
		writeInt(w, s.Fg)
	}
	w.WriteByte('m')
}
