package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/kiln-editor/kiln/internal/buffer"
	"github.com/kiln-editor/kiln/internal/config"
	"github.com/kiln-editor/kiln/internal/cursor"
	"github.com/kiln-editor/kiln/internal/key"
	"github.com/kiln-editor/kiln/internal/render"
	"github.com/kiln-editor/kiln/internal/viewport"
)

// barRows is the screen space reserved below the text area: the status
// bar and the message bar.
const barRows = 2

// helpMessage greets a fresh session until it expires or is replaced.
const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// Console is the terminal surface the session drives. *terminal.Terminal
// implements it; tests substitute a scripted fake.
type Console interface {
	// PollKey reads one decoded key, or the zero event on timeout.
	PollKey() (key.Event, error)
	// Size returns the screen dimensions in character cells.
	Size() (cols, rows int, err error)
	// Write sends a composed frame to the terminal.
	Write(p []byte) (int, error)
}

// Options configures a session.
type Options struct {
	// Terminal is the console the session runs on.
	Terminal Console
	// Config carries the editor settings; zero values fall back to the
	// built-in defaults.
	Config config.Config
	// Logger receives session events. Nil means no logging.
	Logger *Logger
	// Version appears in the welcome banner.
	Version string
}

// Session is one editing session: a buffer, a cursor, a viewport and the
// terminal they live on. All methods run on the caller's goroutine; the
// session is not safe for concurrent use.
type Session struct {
	term Console
	rend *render.Renderer
	buf  *buffer.Buffer
	cur  cursor.Cursor
	view *viewport.Viewport
	cfg  config.Config
	log  *Logger

	filename   string
	statusMsg  string
	statusTime time.Time

	// quitLeft counts the further Ctrl-Q presses a dirty buffer demands.
	quitLeft int

	winch chan os.Signal
}

// NewSession creates a session on the given terminal. The screen is
// measured once here; later changes arrive via SIGWINCH.
func NewSession(opts Options) (*Session, error) {
	if opts.Terminal == nil {
		return nil, errors.New("session requires a terminal")
	}
	if opts.Config == (config.Config{}) {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}

	cols, rows, err := opts.Terminal.Size()
	if err != nil {
		return nil, fmt.Errorf("measure screen: %w", err)
	}

	s := &Session{
		term:     opts.Terminal,
		rend:     render.New(opts.Terminal, opts.Version),
		buf:      buffer.New(opts.Config.Editor.TabStop),
		view:     viewport.New(cols, rows-barRows),
		cfg:      opts.Config,
		log:      opts.Logger.WithField("session", uuid.New().String()),
		quitLeft: opts.Config.Editor.QuitConfirmations,
		winch:    make(chan os.Signal, 1),
	}
	signal.Notify(s.winch, unix.SIGWINCH)

	s.SetStatusMessage(helpMessage)
	s.log.Info("session started (%dx%d)", cols, rows)
	return s, nil
}

// Run drives the frame loop until the user quits or the terminal fails:
// drain any pending resize, compose and flush a frame, poll for one key,
// apply it. Returns ErrQuit on a normal exit.
func (s *Session) Run() error {
	for {
		s.drainResize()

		if err := s.refresh(); err != nil {
			return err
		}

		ev, err := s.term.PollKey()
		if err != nil {
			return err
		}
		if ev.IsNone() {
			continue
		}

		if err := s.handleKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				_ = s.rend.Clear()
				s.log.Info("session ended")
			}
			return err
		}
	}
}

// handleKey applies one key event to the session state.
func (s *Session) handleKey(ev key.Event) error {
	switch {
	case ev.IsCtrl('q'):
		if s.buf.Modified() && s.quitLeft > 0 {
			s.SetStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", s.quitLeft)
			s.quitLeft--
			return nil
		}
		return ErrQuit

	case ev.IsCtrl('s'):
		if err := s.save(); err != nil {
			return err
		}

	case ev.Key == key.KeyEnter:
		s.insertNewline()

	case ev.Key == key.KeyBackspace, ev.IsCtrl('h'):
		s.deleteChar()

	case ev.Key == key.KeyDelete:
		s.cur = s.cur.Move(cursor.Right, s.buf)
		s.deleteChar()

	case ev.Key == key.KeyHome:
		s.cur.X = 0

	case ev.Key == key.KeyEnd:
		if s.cur.Y < s.buf.NumRows() {
			s.cur.X = s.buf.RowLen(s.cur.Y)
		}

	case ev.Key == key.KeyPageUp, ev.Key == key.KeyPageDown:
		s.movePage(ev.Key)

	case ev.Key.IsArrow():
		s.cur = s.cur.Move(directionFor(ev.Key), s.buf)

	case ev.Key == key.KeyTab:
		s.insertChar('\t')

	case ev.IsCtrl('l'), ev.Key == key.KeyEscape:
		// The screen is already rebuilt every frame; nothing to do.

	case ev.IsChar():
		s.insertChar(byte(ev.Rune))
	}

	// Anything that did not quit restarts the confirmation countdown.
	s.quitLeft = s.cfg.Editor.QuitConfirmations
	return nil
}

// directionFor maps an arrow key to its cursor direction.
func directionFor(k key.Key) cursor.Direction {
	switch k {
	case key.KeyUp:
		return cursor.Up
	case key.KeyDown:
		return cursor.Down
	case key.KeyLeft:
		return cursor.Left
	default:
		return cursor.Right
	}
}

// refresh recomputes the cursor's render column, scrolls the viewport to
// keep it visible, and flushes one composed frame.
func (s *Session) refresh() error {
	rx := 0
	if s.cur.Y < s.buf.NumRows() {
		rx = s.buf.RenderColumn(s.cur.Y, s.cur.X)
	}
	s.view.Scroll(s.cur.Y, rx)

	return s.rend.Refresh(render.State{
		Buffer:   s.buf,
		View:     s.view,
		CursorY:  s.cur.Y,
		CursorRX: rx,
		Filename: s.filename,
		Message:  s.currentMessage(),
	})
}

// SetStatusMessage formats a message for the bottom bar and restarts its
// expiry clock.
func (s *Session) SetStatusMessage(format string, args ...any) {
	s.statusMsg = fmt.Sprintf(format, args...)
	s.statusTime = time.Now()
}

// currentMessage returns the status message while it is still fresh.
func (s *Session) currentMessage() string {
	if s.statusMsg == "" {
		return ""
	}
	if time.Since(s.statusTime) >= s.cfg.Editor.MessageTimeout() {
		return ""
	}
	return s.statusMsg
}

// drainResize handles at most one pending window-size change, on the
// loop's goroutine.
func (s *Session) drainResize() {
	select {
	case <-s.winch:
		s.Resize()
	default:
	}
}

// Close releases the session's signal registration. The terminal itself
// is owned and restored by the caller.
func (s *Session) Close() {
	signal.Stop(s.winch)
}

// Resize re-measures the screen and adjusts the viewport.
func (s *Session) Resize() {
	cols, rows, err := s.term.Size()
	if err != nil {
		s.log.Warn("measure screen: %v", err)
		return
	}
	s.view.Resize(cols, rows-barRows)
	s.log.Debug("resized to %dx%d", cols, rows)
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Filename returns the file backing the session, or "" when unnamed.
func (s *Session) Filename() string {
	return s.filename
}
