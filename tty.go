//go:build linux || darwin

package panes

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by OpenTTY for files that are not terminals.
var ErrNotTerminal = errors.New("panes: not a terminal")

// TTY reads key presses from a terminal in cbreak mode: input arrives a key
// at a time without echo, while Ctrl-C still raises SIGINT.
type TTY struct {
	file    *os.File
	fd      int
	orig    *unix.Termios
	pending []byte
	buf     [64]byte
}

// OpenTTY wraps f, usually os.Stdin. The terminal mode is not changed until
// Cbreak is called.
func OpenTTY(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("open tty %s: %w", f.Name(), ErrNotTerminal)
	}
	return &TTY{file: f, fd: fd}, nil
}

// Cbreak disables line buffering and echo. Call Restore to undo it.
func (t *TTY) Cbreak() error {
	if t.orig != nil {
		return nil
	}

	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}

	cb := *termios
	// Local flags: no canonical mode, no echo; signals stay on
	cb.Lflag &^= unix.ICANON | unix.ECHO
	// Control chars: reads return as soon as one byte is available
	cb.Cc[unix.VMIN] = 1
	cb.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &cb); err != nil {
		return fmt.Errorf("failed to set cbreak mode: %w", err)
	}
	t.orig = termios
	return nil
}

// Restore puts the terminal back the way Cbreak found it.
func (t *TTY) Restore() error {
	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.orig); err != nil {
		return fmt.Errorf("failed to restore termios: %w", err)
	}
	t.orig = nil
	return nil
}

// Size returns the terminal dimensions.
func (t *TTY) Size() (width, height int, err error) {
	return term.GetSize(t.fd)
}

// PollKey implements KeySource. It never blocks: the descriptor is polled
// with a zero timeout before reading, and partial UTF-8 sequences wait in a
// buffer until the rest arrives.
func (t *TTY) PollKey() (rune, bool, error) {
	if r, ok := t.decode(); ok {
		return r, true, nil
	}

	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if errors.Is(err, unix.EINTR) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("poll tty: %w", err)
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
		return 0, false, nil
	}

	read, err := unix.Read(t.fd, t.buf[:])
	switch {
	case errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("read tty: %w", err)
	case read == 0:
		return 0, false, io.EOF
	}
	t.pending = append(t.pending, t.buf[:read]...)

	r, ok := t.decode()
	return r, ok, nil
}

// decode takes one rune off the pending input.
func (t *TTY) decode() (rune, bool) {
	if len(t.pending) == 0 || !utf8.FullRune(t.pending) {
		return 0, false
	}
	r, size := utf8.DecodeRune(t.pending)
	t.pending = t.pending[size:]
	return r, true
}
