package key

import (
	"fmt"
	"strings"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Ctrl reports that the character arrived as a control byte,
	// e.g. Ctrl-S is Event{Key: KeyRune, Rune: 's', Ctrl: true}.
	Ctrl bool
}

// NewRune creates a key event for a character.
func NewRune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewCtrl creates a key event for a control-letter combination.
func NewCtrl(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Ctrl: true}
}

// NewSpecial creates a key event for a special key.
func NewSpecial(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a plain printable character, the kind
// the editor inserts verbatim. Control combinations never qualify.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.Ctrl && e.Rune != 127 && (e.Rune >= 32 || e.Rune == '\t')
}

// IsCtrl returns true if this is the given letter with Ctrl held.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Ctrl && e.Rune == r
}

// IsNone returns true for the zero event a poll timeout produces.
func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Ctrl == other.Ctrl
}

// String returns a canonical representation such as "a", "Ctrl-S" or "Enter".
func (e Event) String() string {
	var parts []string
	if e.Ctrl {
		parts = append(parts, "Ctrl")
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else if e.Ctrl {
			name = strings.ToUpper(string(e.Rune))
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return strings.Join(parts, "-")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Ctrl: %v}", e.Key.String(), e.Rune, e.Ctrl)
}
