package terminal

import (
	"github.com/kiln-editor/kiln/internal/key"
)

const escByte = 0x1b

// byteReader reads the next input byte, reporting false when the bounded
// read timeout expires before one arrives.
type byteReader func() (byte, bool)

// decodeKey decodes one logical key from its lead byte, pulling escape
// continuation bytes through read as needed. A byte that is not the escape
// byte is the key verbatim: Enter, Tab and Backspace map to their keys,
// remaining control bytes surface as Ctrl-letter events, and everything
// else is a plain character.
func decodeKey(c byte, read byteReader) key.Event {
	switch {
	case c == escByte:
		return decodeEscape(read)
	case c == '\r':
		return key.NewSpecial(key.KeyEnter)
	case c == '\t':
		return key.NewSpecial(key.KeyTab)
	case c == 127:
		return key.NewSpecial(key.KeyBackspace)
	case c >= 1 && c <= 26:
		return key.NewCtrl(rune('a' + c - 1))
	case c < 32:
		return key.Event{Key: key.KeyRune, Rune: rune(c), Ctrl: true}
	default:
		return key.NewRune(rune(c))
	}
}

// decodeEscape decodes the bytes after an escape lead. Any sequence that
// times out mid-read or does not match a known encoding collapses to a
// plain Escape, which callers use as cancel in prompts and as a no-op in
// the main loop.
//
// Recognized encodings:
//
//	ESC [ A/B/C/D        arrows
//	ESC [ H, ESC [ F     home, end
//	ESC O H, ESC O F     home, end (legacy)
//	ESC [ 1~ / 7~        home (legacy)
//	ESC [ 4~ / 8~        end (legacy)
//	ESC [ 3~             delete
//	ESC [ 5~ / 6~        page up / page down
func decodeEscape(read byteReader) key.Event {
	b0, ok := read()
	if !ok {
		return key.NewSpecial(key.KeyEscape)
	}
	b1, ok := read()
	if !ok {
		return key.NewSpecial(key.KeyEscape)
	}

	if b0 == '[' {
		if b1 >= '0' && b1 <= '9' {
			b2, ok := read()
			if !ok {
				return key.NewSpecial(key.KeyEscape)
			}
			if b2 == '~' {
				switch b1 {
				case '1', '7':
					return key.NewSpecial(key.KeyHome)
				case '3':
					return key.NewSpecial(key.KeyDelete)
				case '4', '8':
					return key.NewSpecial(key.KeyEnd)
				case '5':
					return key.NewSpecial(key.KeyPageUp)
				case '6':
					return key.NewSpecial(key.KeyPageDown)
				}
			}
		} else {
			switch b1 {
			case 'A':
				return key.NewSpecial(key.KeyUp)
			case 'B':
				return key.NewSpecial(key.KeyDown)
			case 'C':
				return key.NewSpecial(key.KeyRight)
			case 'D':
				return key.NewSpecial(key.KeyLeft)
			case 'H':
				return key.NewSpecial(key.KeyHome)
			case 'F':
				return key.NewSpecial(key.KeyEnd)
			}
		}
	} else if b0 == 'O' {
		switch b1 {
		case 'H':
			return key.NewSpecial(key.KeyHome)
		case 'F':
			return key.NewSpecial(key.KeyEnd)
		}
	}

	return key.NewSpecial(key.KeyEscape)
}
