// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the life board.
//
// Features:
//   - Raw mode entry/exit via golang.org/x/term
//   - Non-blocking single-byte input polling (zero-timeout poll on stdin)
//   - Buffered text, cursor and style output flushed once per frame
//   - Window size query with explicit failure reporting
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
