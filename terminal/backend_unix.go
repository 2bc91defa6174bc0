//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	// Bytes read by a previous poll but not yet handed out
	pending []byte
	buf     [64]byte
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, fmt.Errorf("query window size: terminal reports %dx%d", ws.Col, ws.Row)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

// ReadByte polls stdin with a zero timeout; a single read may queue several bytes
func (b *unixBackend) ReadByte() (byte, bool, error) {
	if len(b.pending) > 0 {
		c := b.pending[0]
		b.pending = b.pending[1:]
		return c, true, nil
	}

	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return 0, false, fmt.Errorf("poll stdin: revents %#x", fds[0].Revents)
	}

	rn, err := unix.Read(b.inFd, b.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if rn == 0 {
		// EOF: input channel is gone
		return 0, false, fmt.Errorf("read stdin: %w", io.EOF)
	}

	b.pending = append(b.pending[:0], b.buf[1:rn]...)
	return b.buf[0], true, nil
}
