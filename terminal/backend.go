package terminal

// Backend abstracts platform-specific terminal operations.
// Input is non-blocking: ReadByte returns ok=false immediately when nothing was typed.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the window size in character cells, or an error when it cannot be queried
	Size() (width, height int, err error)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// ReadByte polls for one input byte without blocking
	ReadByte() (b byte, ok bool, err error)
}

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
