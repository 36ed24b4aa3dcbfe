package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kiln-editor/kiln/internal/buffer"
	"github.com/kiln-editor/kiln/internal/viewport"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func testState(text string, cols, rows int) State {
	return State{
		Buffer: buffer.NewFromString(text, 8),
		View:   viewport.New(cols, rows),
	}
}

func TestRefreshSingleWrite(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Refresh(testState("hello\nworld", 40, 5)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if out.writes != 1 {
		t.Errorf("Refresh() issued %d writes, want 1", out.writes)
	}

	out.writes = 0
	if err := r.Refresh(testState("hello\nworld", 40, 5)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if out.writes != 1 {
		t.Errorf("second Refresh() issued %d writes, want 1", out.writes)
	}
}

func TestRefreshFrameEnvelope(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Refresh(testState("hello", 40, 5)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	frame := out.String()
	if !strings.HasPrefix(frame, escHideCursor+escCursorHome) {
		t.Errorf("frame does not start with hide+home: %q", frame[:20])
	}
	if !strings.HasSuffix(frame, escShowCursor) {
		t.Errorf("frame does not end with show cursor")
	}
	if strings.Contains(frame, escClearScreen) {
		t.Errorf("frame contains whole-screen clear")
	}
}

func TestRefreshDrawsRowsAndFillers(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Refresh(testState("hello\nworld", 40, 4)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	lines := strings.Split(out.String(), "\r\n")
	if len(lines) < 5 {
		t.Fatalf("frame has %d lines, want at least 5", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("line 0 = %q, want hello", lines[0])
	}
	if !strings.Contains(lines[1], "world") {
		t.Errorf("line 1 = %q, want world", lines[1])
	}
	for _, i := range []int{2, 3} {
		if !strings.HasPrefix(stripLeadingEscapes(lines[i]), "~") {
			t.Errorf("line %d = %q, want tilde filler", i, lines[i])
		}
	}
	for i := 0; i < 4; i++ {
		if !strings.Contains(lines[i], escClearLine) {
			t.Errorf("line %d missing clear-to-eol", i)
		}
	}
}

// stripLeadingEscapes drops the hide/home prefix from the first line.
func stripLeadingEscapes(s string) string {
	s = strings.TrimPrefix(s, escHideCursor)
	s = strings.TrimPrefix(s, escCursorHome)
	return s
}

func TestRefreshWelcomeBanner(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Refresh(testState("", 40, 9)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	lines := strings.Split(out.String(), "\r\n")
	want := "~      Kiln editor -- version 1.0"
	if got := strings.TrimSuffix(lines[3], escClearLine); got != want {
		t.Errorf("welcome line = %q, want %q", got, want)
	}
}

func TestRefreshNoWelcomeWhenDocumentHasRows(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Refresh(testState("x", 40, 9)); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if strings.Contains(out.String(), "Kiln editor") {
		t.Error("welcome banner drawn for non-empty document")
	}
}

func TestRefreshColumnWindow(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	st := testState("0123456789abcdefghij", 10, 2)
	st.CursorRX = 14
	st.View.Scroll(0, st.CursorRX)

	if err := r.Refresh(st); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	lines := strings.Split(out.String(), "\r\n")
	got := strings.TrimSuffix(stripLeadingEscapes(lines[0]), escClearLine)
	if got != "56789abcde" {
		t.Errorf("windowed row = %q, want %q", got, "56789abcde")
	}
}

func TestStatusBar(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	st := testState("a\nb\nc", 40, 3)
	st.Filename = "notes.txt"
	st.CursorY = 1

	if err := r.Refresh(st); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	frame := out.String()
	start := strings.Index(frame, escInvertOn)
	end := strings.Index(frame, escInvertOff)
	if start < 0 || end < 0 || end < start {
		t.Fatalf("no reverse-video status bar in frame")
	}
	bar := frame[start+len(escInvertOn) : end]

	if len(bar) != 40 {
		t.Errorf("status bar width = %d, want 40", len(bar))
	}
	if !strings.HasPrefix(bar, "notes.txt - 3 lines ") {
		t.Errorf("status bar = %q, want notes.txt prefix", bar)
	}
	if !strings.HasSuffix(bar, "2/3") {
		t.Errorf("status bar = %q, want 2/3 suffix", bar)
	}
}

func TestStatusBarUnnamedModified(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	st := testState("a", 60, 3)
	st.Buffer.InsertChar(0, 0, 'x')

	if err := r.Refresh(st); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	frame := out.String()
	if !strings.Contains(frame, "[No Name]") {
		t.Error("status bar missing [No Name] placeholder")
	}
	if !strings.Contains(frame, "(modified)") {
		t.Error("status bar missing (modified) flag")
	}
}

func TestMessageBarTruncated(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	st := testState("a", 10, 2)
	st.Message = "this message is far too long for the screen"

	if err := r.Refresh(st); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	frame := out.String()
	if !strings.Contains(frame, "this messa") {
		t.Error("message prefix not drawn")
	}
	if strings.Contains(frame, "this message") {
		t.Error("message not truncated to screen width")
	}
}

func TestCursorEscapePosition(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	st := testState("one\ntwo\nthree\nfour\nfive", 40, 3)
	st.CursorY = 4
	st.CursorRX = 2
	st.View.Scroll(st.CursorY, st.CursorRX)

	if err := r.Refresh(st); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	// Row offset is 2, so buffer row 4 is screen row 3 (one-based).
	if !strings.Contains(out.String(), "\x1b[3;3H") {
		t.Errorf("frame missing cursor escape \\x1b[3;3H")
	}
}

func TestClear(t *testing.T) {
	out := &countingWriter{}
	r := New(out, "1.0")

	if err := r.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := out.String(); got != escClearScreen+escCursorHome {
		t.Errorf("Clear() wrote %q", got)
	}
	if out.writes != 1 {
		t.Errorf("Clear() issued %d writes, want 1", out.writes)
	}
}
