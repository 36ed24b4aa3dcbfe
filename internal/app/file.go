package app

import (
	"errors"
	"os"

	"github.com/kiln-editor/kiln/internal/buffer"
	"github.com/kiln-editor/kiln/internal/cursor"
	"github.com/kiln-editor/kiln/internal/key"
)

// OpenFile loads path into the session's buffer. The file must exist; new
// files are created by saving under a fresh name instead.
func (s *Session) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	defer f.Close()

	buf, err := buffer.NewFromReader(f, s.cfg.Editor.TabStop)
	if err != nil {
		return NewOperationError("open", path, err)
	}

	s.buf = buf
	s.filename = path
	s.cur = cursor.Cursor{}
	s.log.Info("opened %s (%d rows)", path, buf.NumRows())
	return nil
}

// save writes the buffer to its file, prompting for a name first when the
// session has none. A canceled prompt aborts quietly; an I/O failure is
// reported on the status bar with the buffer left intact. The returned
// error is non-nil only for terminal failures during the prompt.
func (s *Session) save() error {
	if s.filename == "" {
		name, err := s.prompt("Save as: %s (ESC to cancel)")
		if errors.Is(err, ErrPromptCanceled) {
			s.SetStatusMessage("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		s.filename = name
	}

	text := s.buf.Contents()
	if err := os.WriteFile(s.filename, []byte(text), 0o644); err != nil {
		s.log.Error("save %s: %v", s.filename, err)
		s.SetStatusMessage("Can't save! I/O error: %s", err)
		return nil
	}

	s.buf.MarkClean()
	s.SetStatusMessage("%d bytes written to disk", len(text))
	s.log.Info("saved %s (%d bytes)", s.filename, len(text))
	return nil
}

// prompt runs a minibuffer on the status bar. The format must contain one
// %s verb for the input echo. Enter accepts non-empty input; Escape or an
// empty Enter cancels with ErrPromptCanceled. Backspace, Delete and
// Ctrl-H erase; printable ASCII appends.
func (s *Session) prompt(format string) (string, error) {
	var input []byte
	for {
		s.SetStatusMessage(format, input)
		if err := s.refresh(); err != nil {
			return "", err
		}

		ev, err := s.term.PollKey()
		if err != nil {
			return "", err
		}
		if ev.IsNone() {
			s.drainResize()
			continue
		}

		switch {
		case ev.Key == key.KeyBackspace, ev.Key == key.KeyDelete, ev.IsCtrl('h'):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case ev.Key == key.KeyEscape:
			s.SetStatusMessage("")
			return "", ErrPromptCanceled

		case ev.Key == key.KeyEnter:
			s.SetStatusMessage("")
			if len(input) == 0 {
				return "", ErrPromptCanceled
			}
			return string(input), nil

		case ev.IsChar() && ev.Rune != '\t' && ev.Rune < 128:
			input = append(input, byte(ev.Rune))
		}
	}
}
