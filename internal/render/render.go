// Package render composes complete screen frames and flushes each one to
// the terminal in a single write.
//
// Every frame is accumulated into one growable byte buffer: cursor hide,
// cursor home, the visible text rows, a reverse-video status bar, the
// message bar, the cursor position escape and cursor show. Nothing is
// written to the terminal until the frame is complete, so a frame can
// never flicker half-drawn.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kiln-editor/kiln/internal/buffer"
	"github.com/kiln-editor/kiln/internal/viewport"
)

// State is everything one frame needs: the buffer, the viewport, the
// cursor in buffer coordinates (render column already derived), and the
// status strip inputs.
type State struct {
	Buffer *buffer.Buffer
	View   *viewport.Viewport

	// CursorY is the cursor row; CursorRX its render column.
	CursorY  int
	CursorRX int

	// Filename is empty for an unnamed buffer.
	Filename string

	// Message is drawn on the bottom line; the caller handles expiry and
	// passes "" once the message is stale.
	Message string
}

// Renderer draws editor frames to a terminal writer.
type Renderer struct {
	out     io.Writer
	version string
	frame   bytes.Buffer
}

// New creates a renderer writing to out. The version string appears in the
// welcome banner shown for an empty document.
func New(out io.Writer, version string) *Renderer {
	return &Renderer{out: out, version: version}
}

// Refresh composes one complete frame from st and writes it with a single
// Write call.
func (r *Renderer) Refresh(st State) error {
	r.frame.Reset()

	r.frame.WriteString(escHideCursor)
	r.frame.WriteString(escCursorHome)

	r.drawRows(st)
	r.drawStatusBar(st)
	r.drawMessageBar(st)

	row, col := st.View.Relative(st.CursorY, st.CursorRX)
	fmt.Fprintf(&r.frame, "\x1b[%d;%dH", row+1, col+1)

	r.frame.WriteString(escShowCursor)

	_, err := r.out.Write(r.frame.Bytes())
	return err
}

// Clear erases the screen and homes the cursor in one write. Used on exit
// so the shell prompt returns to a clean terminal.
func (r *Renderer) Clear() error {
	_, err := r.out.Write([]byte(escClearScreen + escCursorHome))
	return err
}

// drawRows emits one line per visible screen row: a slice of the row's
// render form, or a filler tilde past end of document. An empty document
// gets a centered welcome banner a third of the way down.
func (r *Renderer) drawRows(st State) {
	cols := st.View.Cols()
	for y := 0; y < st.View.Rows(); y++ {
		fileRow := y + st.View.RowOffset()
		if fileRow >= st.Buffer.NumRows() {
			if st.Buffer.NumRows() == 0 && y == st.View.Rows()/3 {
				r.drawWelcome(cols)
			} else {
				r.frame.WriteByte('~')
			}
		} else {
			render := st.Buffer.Row(fileRow).Render()
			start := st.View.ColOffset()
			if start > len(render) {
				start = len(render)
			}
			end := start + cols
			if end > len(render) {
				end = len(render)
			}
			r.frame.Write(render[start:end])
		}

		r.frame.WriteString(escClearLine)
		r.frame.WriteString("\r\n")
	}
}

// drawWelcome centers the version banner, padded on the left by the same
// tilde the empty rows carry.
func (r *Renderer) drawWelcome(cols int) {
	welcome := fmt.Sprintf("Kiln editor -- version %s", r.version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		r.frame.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.frame.WriteByte(' ')
	}
	r.frame.WriteString(welcome)
}

// drawStatusBar emits the reverse-video status line: filename, line count
// and modified flag on the left, cursor line over total lines on the right,
// packed with spaces to the full width.
func (r *Renderer) drawStatusBar(st State) {
	name := st.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if st.Buffer.Modified() {
		modified = "(modified)"
	}

	left := fmt.Sprintf("%.20s - %d lines %s", name, st.Buffer.NumRows(), modified)
	right := fmt.Sprintf("%d/%d", st.CursorY+1, st.Buffer.NumRows())

	cols := st.View.Cols()
	if len(left) > cols {
		left = left[:cols]
	}

	r.frame.WriteString(escInvertOn)
	r.frame.WriteString(left)
	for n := len(left); n < cols; {
		if cols-n == len(right) {
			r.frame.WriteString(right)
			break
		}
		r.frame.WriteByte(' ')
		n++
	}
	r.frame.WriteString(escInvertOff)
	r.frame.WriteString("\r\n")
}

// drawMessageBar emits the bottom message line, truncated to the screen
// width.
func (r *Renderer) drawMessageBar(st State) {
	r.frame.WriteString(escClearLine)
	msg := st.Message
	if len(msg) > st.View.Cols() {
		msg = msg[:st.View.Cols()]
	}
	r.frame.WriteString(msg)
}
