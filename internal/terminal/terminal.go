package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/kiln-editor/kiln/internal/key"
)

// ErrNotTerminal reports that standard input is not attached to a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Terminal wraps the controlling terminal: raw-mode lifecycle, decoded key
// input with a bounded read timeout, frame output and size queries.
type Terminal struct {
	in   *os.File
	out  *os.File
	fd   int
	prev *term.State
}

// Open wraps the process's controlling terminal on stdin and stdout.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &Terminal{in: os.Stdin, out: os.Stdout, fd: fd}, nil
}

// EnableRawMode snapshots the current attributes and switches to raw
// input: no canonical line buffering, no echo, no signal keys, no output
// post-processing. Reads are then given VMIN=0/VTIME=1 semantics so they
// return within about 100ms whether or not a byte arrived; that bounded
// timeout is what lets the editor loop treat "no key yet" as a normal,
// retried condition.
func (t *Terminal) EnableRawMode() error {
	prev, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.prev = prev

	tio, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		_ = t.Restore()
		return fmt.Errorf("read termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, tio); err != nil {
		_ = t.Restore()
		return fmt.Errorf("set read timeout: %w", err)
	}
	return nil
}

// Restore puts the terminal back into the attributes captured by
// EnableRawMode. Calling it again, or before raw mode was ever enabled,
// is harmless.
func (t *Terminal) Restore() error {
	if t.prev == nil {
		return nil
	}
	return term.Restore(t.fd, t.prev)
}

// Write sends a composed frame to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// PollKey reads and decodes one key. A timeout with no pending input
// yields the zero event and no error.
func (t *Terminal) PollKey() (key.Event, error) {
	c, ok, err := t.readByteErr()
	if err != nil {
		return key.Event{}, err
	}
	if !ok {
		return key.Event{}, nil
	}
	return decodeKey(c, t.readByte), nil
}

// Size returns the terminal dimensions in character cells. When the
// direct query fails or reports a zero width, the cursor is driven to the
// bottom-right corner and its reported position read back instead.
func (t *Terminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(t.fd)
	if err == nil && cols > 0 {
		return cols, rows, nil
	}
	return t.cursorPositionSize()
}

// readByteErr reads one byte from the terminal, distinguishing the VTIME
// timeout (no byte, no error) from real read failures. Interrupted reads
// are retried.
func (t *Terminal) readByteErr() (byte, bool, error) {
	var b [1]byte
	for {
		n, err := unix.Read(t.fd, b[:])
		switch {
		case n == 1:
			return b[0], true, nil
		case n == 0:
			return 0, false, nil
		case errors.Is(err, unix.EINTR):
			continue
		default:
			return 0, false, fmt.Errorf("read key: %w", err)
		}
	}
}

// readByte is the byteReader for escape continuations; read failures count
// as timeouts so a torn sequence decodes as a plain Escape.
func (t *Terminal) readByte() (byte, bool) {
	c, ok, err := t.readByteErr()
	if err != nil {
		return 0, false
	}
	return c, ok
}

// cursorPositionSize measures the screen by moving the cursor to an
// extreme bottom-right position and asking the terminal where it ended up.
func (t *Terminal) cursorPositionSize() (cols, rows int, err error) {
	if _, err := t.out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}

	var buf [32]byte
	n := 0
	for n < len(buf) {
		c, ok := t.readByte()
		if !ok || c == 'R' {
			break
		}
		buf[n] = c
		n++
	}

	cols, rows, ok := parseCursorReport(buf[:n])
	if !ok {
		return 0, 0, fmt.Errorf("bad cursor report %q", buf[:n])
	}
	return cols, rows, nil
}

// parseCursorReport extracts the dimensions from an ESC [ rows ; cols R
// device status report, with the trailing R already stripped.
func parseCursorReport(resp []byte) (cols, rows int, ok bool) {
	if len(resp) < 2 || resp[0] != escByte || resp[1] != '[' {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(string(resp[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}
