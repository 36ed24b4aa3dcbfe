package render

// VT100 escape sequences used to compose frames. Per-line erase plus a
// full-frame rewrite replaces whole-screen clears, which would flash on
// slower terminals.
const (
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escCursorHome  = "\x1b[H"
	escClearScreen = "\x1b[2J"
	escClearLine   = "\x1b[K"
	escInvertOn    = "\x1b[7m"
	escInvertOff   = "\x1b[m"
)
